// Package catalog defines the versioned question catalog: the questions,
// their categories and weights, and the load-time invariants that must
// hold before any scoring call.
package catalog

import (
	"sort"

	"github.com/rotisserie/eris"

	"github.com/gulfwise/finclinic/internal/model"
)

// Option is one of the five answer choices for a question.
type Option struct {
	Value   int    `json:"value" yaml:"value"`
	Label   string `json:"label" yaml:"label"`
	LabelAr string `json:"label_ar" yaml:"label_ar"`
}

// Question is an immutable catalog entry. Weight is the percentage-point
// contribution of the question to the 100-point overall score.
type Question struct {
	ID          string         `json:"id" yaml:"id"`
	Number      int            `json:"number" yaml:"number"`
	Category    model.Category `json:"category" yaml:"category"`
	Weight      int            `json:"weight" yaml:"weight"`
	Text        string         `json:"text" yaml:"text"`
	TextAr      string         `json:"text_ar" yaml:"text_ar"`
	Options     []Option       `json:"options" yaml:"options"`
	Conditional bool           `json:"conditional,omitempty" yaml:"conditional,omitempty"`
}

// Catalog is an immutable, validated question set for one revision.
type Catalog struct {
	revision      string
	questions     []Question // sorted by (category order, number)
	byID          map[string]Question
	byCategory    map[model.Category][]Question
	weights       map[model.Category]int
	conditionalID string
}

// New validates the question set and builds a Catalog. It fails fast on
// any invariant violation so a broken catalog never serves a request:
// weights must sum to exactly 100, every question needs exactly five
// options valued 1..5, ids and numbers must be unique, categories must
// be known, and at most one question may be conditional.
func New(revision string, questions []Question) (*Catalog, error) {
	if revision == "" {
		return nil, eris.New("catalog: revision must not be empty")
	}
	if len(questions) == 0 {
		return nil, eris.Errorf("catalog %s: no questions", revision)
	}

	c := &Catalog{
		revision:   revision,
		byID:       make(map[string]Question, len(questions)),
		byCategory: make(map[model.Category][]Question),
		weights:    make(map[model.Category]int),
	}

	seenNumbers := make(map[int]bool, len(questions))
	totalWeight := 0
	for _, q := range questions {
		if q.ID == "" {
			return nil, eris.Errorf("catalog %s: question %d has empty id", revision, q.Number)
		}
		if _, dup := c.byID[q.ID]; dup {
			return nil, eris.Errorf("catalog %s: duplicate question id %s", revision, q.ID)
		}
		if seenNumbers[q.Number] {
			return nil, eris.Errorf("catalog %s: duplicate question number %d", revision, q.Number)
		}
		if !model.ValidCategory(q.Category) {
			return nil, eris.Errorf("catalog %s: question %s has unknown category %q", revision, q.ID, q.Category)
		}
		if q.Weight <= 0 {
			return nil, eris.Errorf("catalog %s: question %s has non-positive weight %d", revision, q.ID, q.Weight)
		}
		if err := validateOptions(q); err != nil {
			return nil, eris.Wrapf(err, "catalog %s", revision)
		}
		if q.Conditional {
			if c.conditionalID != "" {
				return nil, eris.Errorf("catalog %s: more than one conditional question (%s, %s)",
					revision, c.conditionalID, q.ID)
			}
			c.conditionalID = q.ID
		}

		seenNumbers[q.Number] = true
		c.byID[q.ID] = q
		c.byCategory[q.Category] = append(c.byCategory[q.Category], q)
		c.weights[q.Category] += q.Weight
		totalWeight += q.Weight
	}

	if totalWeight != 100 {
		return nil, eris.Errorf("catalog %s: question weights sum to %d, want 100", revision, totalWeight)
	}

	// Fix iteration order: category order first, question number second.
	for cat := range c.byCategory {
		qs := c.byCategory[cat]
		sort.Slice(qs, func(i, j int) bool { return qs[i].Number < qs[j].Number })
		c.byCategory[cat] = qs
	}
	for _, cat := range model.Categories() {
		c.questions = append(c.questions, c.byCategory[cat]...)
	}

	return c, nil
}

// validateOptions checks that a question has exactly five options with
// each value 1..5 appearing exactly once.
func validateOptions(q Question) error {
	if len(q.Options) != 5 {
		return eris.Errorf("question %s: has %d options, want 5", q.ID, len(q.Options))
	}
	seen := make(map[int]bool, 5)
	for _, o := range q.Options {
		if o.Value < 1 || o.Value > 5 {
			return eris.Errorf("question %s: option value %d outside [1,5]", q.ID, o.Value)
		}
		if seen[o.Value] {
			return eris.Errorf("question %s: duplicate option value %d", q.ID, o.Value)
		}
		seen[o.Value] = true
	}
	return nil
}

// Revision returns the catalog revision label.
func (c *Catalog) Revision() string { return c.revision }

// Questions returns every question in the catalog, including the
// conditional one, in the fixed scoring order.
func (c *Catalog) Questions() []Question {
	out := make([]Question, len(c.questions))
	copy(out, c.questions)
	return out
}

// QuestionsFor returns the questions applicable to a respondent. For a
// profile without children the conditional question is excluded; it is
// still scored (at the maximum default) by the scoring engine.
func (c *Catalog) QuestionsFor(children int) []Question {
	if children > 0 || c.conditionalID == "" {
		return c.Questions()
	}
	out := make([]Question, 0, len(c.questions)-1)
	for _, q := range c.questions {
		if q.ID != c.conditionalID {
			out = append(out, q)
		}
	}
	return out
}

// QuestionsInCategory returns a category's questions ordered by number.
func (c *Catalog) QuestionsInCategory(cat model.Category) []Question {
	qs := c.byCategory[cat]
	out := make([]Question, len(qs))
	copy(out, qs)
	return out
}

// QuestionByID looks up a question by its stable id.
func (c *Catalog) QuestionByID(id string) (Question, bool) {
	q, ok := c.byID[id]
	return q, ok
}

// ConditionalID returns the id of the conditional question, or "" if
// the catalog has none.
func (c *Catalog) ConditionalID() string { return c.conditionalID }

// CategoryWeight returns the percentage-point ceiling a category can
// contribute to the overall score.
func (c *Catalog) CategoryWeight(cat model.Category) int { return c.weights[cat] }

// TotalWeight returns the sum of all question weights. Always 100 for a
// catalog that passed New.
func (c *Catalog) TotalWeight() int {
	total := 0
	for _, w := range c.weights {
		total += w
	}
	return total
}

// Len returns the number of questions including the conditional one.
func (c *Catalog) Len() int { return len(c.questions) }
