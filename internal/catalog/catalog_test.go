package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gulfwise/finclinic/internal/model"
)

func fiveOptions() []Option {
	return []Option{
		{Value: 1, Label: "Never"},
		{Value: 2, Label: "Rarely"},
		{Value: 3, Label: "Sometimes"},
		{Value: 4, Label: "Often"},
		{Value: 5, Label: "Always"},
	}
}

func testQuestion(id string, number, weight int, cat model.Category) Question {
	return Question{
		ID:       id,
		Number:   number,
		Category: cat,
		Weight:   weight,
		Text:     "placeholder",
		Options:  fiveOptions(),
	}
}

func TestNew_InvariantViolations(t *testing.T) {
	tests := []struct {
		name      string
		questions []Question
		wantErr   string
	}{
		{
			name:    "no questions",
			wantErr: "no questions",
		},
		{
			name: "weights do not sum to 100",
			questions: []Question{
				testQuestion("q1", 1, 40, model.CategoryIncomeStream),
				testQuestion("q2", 2, 40, model.CategorySavingsHabit),
			},
			wantErr: "sum to 80",
		},
		{
			name: "duplicate id",
			questions: []Question{
				testQuestion("q1", 1, 50, model.CategoryIncomeStream),
				testQuestion("q1", 2, 50, model.CategorySavingsHabit),
			},
			wantErr: "duplicate question id",
		},
		{
			name: "duplicate number",
			questions: []Question{
				testQuestion("q1", 1, 50, model.CategoryIncomeStream),
				testQuestion("q2", 1, 50, model.CategorySavingsHabit),
			},
			wantErr: "duplicate question number",
		},
		{
			name: "unknown category",
			questions: []Question{
				testQuestion("q1", 1, 100, "Crypto Holdings"),
			},
			wantErr: "unknown category",
		},
		{
			name: "zero weight",
			questions: []Question{
				testQuestion("q1", 1, 0, model.CategoryIncomeStream),
				testQuestion("q2", 2, 100, model.CategorySavingsHabit),
			},
			wantErr: "non-positive weight",
		},
		{
			name: "missing option",
			questions: []Question{
				{
					ID: "q1", Number: 1, Category: model.CategoryIncomeStream, Weight: 100,
					Options: fiveOptions()[:4],
				},
			},
			wantErr: "4 options",
		},
		{
			name: "duplicate option value",
			questions: []Question{
				{
					ID: "q1", Number: 1, Category: model.CategoryIncomeStream, Weight: 100,
					Options: []Option{
						{Value: 1}, {Value: 2}, {Value: 3}, {Value: 4}, {Value: 4},
					},
				},
			},
			wantErr: "duplicate option value",
		},
		{
			name: "two conditional questions",
			questions: func() []Question {
				q1 := testQuestion("q1", 1, 50, model.CategoryIncomeStream)
				q2 := testQuestion("q2", 2, 50, model.CategoryProtectingFamily)
				q1.Conditional = true
				q2.Conditional = true
				return []Question{q1, q2}
			}(),
			wantErr: "more than one conditional",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New("test-rev", tt.questions)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNew_EmptyRevision(t *testing.T) {
	_, err := New("", []Question{testQuestion("q1", 1, 100, model.CategoryIncomeStream)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "revision")
}

func TestDefault_Invariants(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	assert.Equal(t, ActiveRevision, cat.Revision())
	assert.Equal(t, 15, cat.Len())
	assert.Equal(t, 100, cat.TotalWeight())
	assert.Equal(t, "fc_q15", cat.ConditionalID())

	wantWeights := map[model.Category]int{
		model.CategoryIncomeStream:     15,
		model.CategorySavingsHabit:     20,
		model.CategoryEmergencySavings: 20,
		model.CategoryDebtManagement:   15,
		model.CategoryRetirement:       20,
		model.CategoryProtectingFamily: 10,
	}
	for cat2, want := range wantWeights {
		assert.Equal(t, want, cat.CategoryWeight(cat2), string(cat2))
	}
}

func TestDefault_QuestionOrder(t *testing.T) {
	cat := MustDefault()

	questions := cat.Questions()
	require.Len(t, questions, 15)

	// Category order first, then question number within category.
	lastIdx, lastNum := 0, 0
	for _, q := range questions {
		idx := model.CategoryIndex(q.Category)
		require.GreaterOrEqual(t, idx, lastIdx)
		if idx > lastIdx {
			lastNum = 0
		}
		require.Greater(t, q.Number, lastNum)
		lastIdx, lastNum = idx, q.Number
	}
}

func TestQuestionsFor_ConditionalFiltering(t *testing.T) {
	cat := MustDefault()

	withChildren := cat.QuestionsFor(2)
	assert.Len(t, withChildren, 15)

	without := cat.QuestionsFor(0)
	assert.Len(t, without, 14)
	for _, q := range without {
		assert.NotEqual(t, cat.ConditionalID(), q.ID)
	}
}

func TestDefault_Bilingual(t *testing.T) {
	cat := MustDefault()
	for _, q := range cat.Questions() {
		assert.NotEmpty(t, q.Text, q.ID)
		assert.NotEmpty(t, q.TextAr, q.ID)
		for _, o := range q.Options {
			assert.NotEmpty(t, o.Label, q.ID)
			assert.NotEmpty(t, o.LabelAr, q.ID)
		}
	}
}

func TestQuestionByID(t *testing.T) {
	cat := MustDefault()

	q, ok := cat.QuestionByID("fc_q7")
	require.True(t, ok)
	assert.Equal(t, model.CategoryEmergencySavings, q.Category)
	assert.Equal(t, 10, q.Weight)

	_, ok = cat.QuestionByID("fc_q99")
	assert.False(t, ok)
}
