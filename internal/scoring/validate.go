package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/gulfwise/finclinic/internal/model"
)

// Violation codes.
const (
	CodeMissingAnswer   = "missing_answer"
	CodeValueOutOfRange = "value_out_of_range"
	CodeUnknownQuestion = "unknown_question"
)

// Violation describes one validation failure for a submitted answer set.
type Violation struct {
	QuestionID string `json:"question_id"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

// Validate checks an answer set against the applicable questions for
// the respondent and returns the complete list of violations, so the
// caller can render every problem in a single response. Values are
// never coerced: an out-of-range answer is a violation, not a clamp.
func (e *Engine) Validate(answers model.AnswerSet, children int) []Violation {
	var violations []Violation

	// Every applicable question must be answered. Catalog order keeps
	// the violation list deterministic.
	for _, q := range e.cat.QuestionsFor(children) {
		if _, ok := answers[q.ID]; !ok {
			violations = append(violations, Violation{
				QuestionID: q.ID,
				Code:       CodeMissingAnswer,
				Message:    fmt.Sprintf("missing answer for question %d (%s)", q.Number, q.ID),
			})
		}
	}

	// Every supplied answer must reference a catalog question and carry
	// a value in [1,5]. Sorted ids keep output order stable.
	ids := make([]string, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		value := answers[id]
		if _, known := e.cat.QuestionByID(id); !known {
			violations = append(violations, Violation{
				QuestionID: id,
				Code:       CodeUnknownQuestion,
				Message:    fmt.Sprintf("question %s is not part of catalog %s", id, e.cat.Revision()),
			})
			continue
		}
		if value < 1 || value > maxAnswerValue {
			violations = append(violations, Violation{
				QuestionID: id,
				Code:       CodeValueOutOfRange,
				Message:    fmt.Sprintf("invalid answer value %d for %s, must be 1-5", value, id),
			})
		}
	}

	return violations
}

// ViolationsError collapses a violation list into a single error for
// callers that do not surface structured violations (the CLI).
func ViolationsError(violations []Violation) error {
	if len(violations) == 0 {
		return nil
	}
	msgs := make([]string, len(violations))
	for i, v := range violations {
		msgs[i] = v.Message
	}
	return eris.Errorf("invalid answers: %s", strings.Join(msgs, "; "))
}
