// Package scoring implements the weighted assessment scoring engine:
// answer validation, per-category aggregation, and status classification.
package scoring

import (
	"math"

	"github.com/gulfwise/finclinic/internal/catalog"
	"github.com/gulfwise/finclinic/internal/model"
)

// maxAnswerValue is the best answer on the five-point scale; it is also
// the non-penalizing default for a non-applicable conditional question.
const maxAnswerValue = 5

// Engine scores answer sets against one immutable catalog revision.
// It holds no mutable state; concurrent use needs no coordination.
type Engine struct {
	cat *catalog.Catalog
}

// NewEngine creates an Engine bound to a validated catalog.
func NewEngine(cat *catalog.Catalog) *Engine {
	return &Engine{cat: cat}
}

// Catalog returns the catalog revision the engine scores against.
func (e *Engine) Catalog() *catalog.Catalog { return e.cat }

// Score computes the overall score and per-category breakdown for an
// answer set. Callers are expected to have run Validate first; Score
// itself never mutates the caller's answer set.
//
// A respondent without children is not asked the conditional question;
// it is auto-scored at the maximum value so category contribution is
// always computed against the same 100-point total.
func (e *Engine) Score(answers model.AnswerSet, children int) (model.OverallScore, map[model.Category]model.CategoryScore) {
	effective := answers.Clone()
	if condID := e.cat.ConditionalID(); condID != "" && children == 0 {
		if _, answered := effective[condID]; !answered {
			effective[condID] = maxAnswerValue
		}
	}

	scores := make(map[model.Category]model.CategoryScore, len(model.Categories()))
	var total float64

	// Fixed iteration order (category, then question number) keeps the
	// floating-point accumulation reproducible.
	for _, cat := range model.Categories() {
		cs := e.scoreCategory(cat, effective)
		scores[cat] = cs
		total += cs.Contribution
	}

	overall := model.OverallScore{Total: round2(total)}
	overall.StatusBand = StatusBandFor(overall.Total)
	return overall, scores
}

// scoreCategory aggregates one category over the full catalog, including
// the conditional question, so weighting always reflects the catalog's
// complete 100-point distribution.
func (e *Engine) scoreCategory(cat model.Category, answers model.AnswerSet) model.CategoryScore {
	var actual, max float64
	for _, q := range e.cat.QuestionsInCategory(cat) {
		actual += float64(answers[q.ID] * q.Weight)
		max += float64(maxAnswerValue * q.Weight)
	}

	var pct float64
	if max > 0 {
		pct = actual / max * 100
	}
	contribution := pct / 100 * float64(e.cat.CategoryWeight(cat))

	return model.CategoryScore{
		Category:     cat,
		ActualPoints: actual,
		MaxPoints:    max,
		Percentage:   round2(pct),
		Contribution: round2(contribution),
		StatusLevel:  StatusLevelFor(pct),
	}
}

// round2 rounds to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
