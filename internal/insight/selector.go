package insight

import (
	"sort"

	"go.uber.org/zap"

	"github.com/gulfwise/finclinic/internal/model"
)

// DefaultMaxInsights caps the number of advisory messages returned per
// assessment when the caller does not say otherwise.
const DefaultMaxInsights = 5

// categoryPriority breaks score ties when ranking weak categories.
// Lower value resolves first.
var categoryPriority = map[model.Category]int{
	model.CategoryIncomeStream:     1,
	model.CategoryEmergencySavings: 2,
	model.CategorySavingsHabit:     3,
	model.CategoryRetirement:       4,
	model.CategoryDebtManagement:   5,
	model.CategoryProtectingFamily: 6,
}

// CategoryPriority returns a category's fixed tie-break priority;
// unknown categories rank last.
func CategoryPriority(cat model.Category) int {
	if p, ok := categoryPriority[cat]; ok {
		return p
	}
	return 99
}

// Selector picks advisory messages for the weakest categories of an
// assessment. Stateless apart from the immutable matrix.
type Selector struct {
	matrix *Matrix
}

// NewSelector creates a Selector over a validated matrix.
func NewSelector(m *Matrix) *Selector {
	return &Selector{matrix: m}
}

// Select ranks categories worst-first by contribution (ties broken by
// fixed priority), truncates the ranking to the top maxInsights, and
// resolves each remaining category's message from the matrix. The
// ranking alone decides which categories are reported: a category whose
// bucket is empty or resolves to no applicable tag yields fewer
// insights, never a backfill from further down the ranking.
func (s *Selector) Select(scores map[model.Category]model.CategoryScore, p model.Profile, maxInsights int) []model.Insight {
	if maxInsights <= 0 {
		maxInsights = DefaultMaxInsights
	}

	// Build the ranking from the fixed category order so equal inputs
	// sort identically across calls.
	ranked := make([]model.CategoryScore, 0, len(scores))
	for _, cat := range model.Categories() {
		if cs, ok := scores[cat]; ok {
			ranked = append(ranked, cs)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Contribution != ranked[j].Contribution {
			return ranked[i].Contribution < ranked[j].Contribution
		}
		return CategoryPriority(ranked[i].Category) < CategoryPriority(ranked[j].Category)
	})

	if len(ranked) > maxInsights {
		ranked = ranked[:maxInsights]
	}

	insights := make([]model.Insight, 0, len(ranked))
	for _, cs := range ranked {
		if len(s.matrix.Bucket(cs.Category, cs.StatusLevel)) == 0 {
			continue
		}

		entry, ok := s.matrix.Resolve(cs.Category, cs.StatusLevel, p)
		if !ok {
			// Unreachable with a validated matrix (default always
			// matches); degrade to fewer insights rather than fail.
			zap.L().Warn("insight: no applicable entry in bucket",
				zap.String("category", string(cs.Category)),
				zap.String("status_level", string(cs.StatusLevel)),
			)
			continue
		}

		insights = append(insights, model.Insight{
			Category:    cs.Category,
			StatusLevel: cs.StatusLevel,
			Text:        entry.Text,
			TextAr:      entry.TextAr,
			Priority:    CategoryPriority(cs.Category),
		})
	}

	return insights
}
