package scoring

import (
	"github.com/gulfwise/finclinic/internal/catalog"
	"github.com/gulfwise/finclinic/internal/insight"
	"github.com/gulfwise/finclinic/internal/model"
)

// Assessor runs the full assessment flow: validate the answer set,
// score it, and select insights for the weakest categories.
type Assessor struct {
	engine      *Engine
	selector    *insight.Selector
	maxInsights int
}

// NewAssessor wires an Assessor over one catalog revision and one
// insight matrix. maxInsights <= 0 selects the default cap.
func NewAssessor(cat *catalog.Catalog, matrix *insight.Matrix, maxInsights int) *Assessor {
	return &Assessor{
		engine:      NewEngine(cat),
		selector:    insight.NewSelector(matrix),
		maxInsights: maxInsights,
	}
}

// Engine exposes the underlying scoring engine.
func (a *Assessor) Engine() *Engine { return a.engine }

// Assess validates and scores an answer set for the given profile.
// Validation failures return a non-empty violation list and no result;
// a valid submission always produces a complete result.
func (a *Assessor) Assess(answers model.AnswerSet, p model.Profile) (*model.AssessmentResult, []Violation) {
	if violations := a.engine.Validate(answers, p.Children); len(violations) > 0 {
		return nil, violations
	}

	overall, scores := a.engine.Score(answers, p.Children)
	insights := a.selector.Select(scores, p, a.maxInsights)

	answered := 0
	for _, q := range a.engine.cat.QuestionsFor(p.Children) {
		if _, ok := answers[q.ID]; ok {
			answered++
		}
	}

	return &model.AssessmentResult{
		Overall:           overall,
		CategoryScores:    scores,
		Insights:          insights,
		QuestionsAnswered: answered,
		TotalQuestions:    a.engine.cat.Len(),
		CatalogRevision:   a.engine.cat.Revision(),
	}, nil
}
