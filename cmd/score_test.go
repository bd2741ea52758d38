package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gulfwise/finclinic/internal/model"
)

func TestParseAnswers(t *testing.T) {
	answers, err := parseAnswers("fc_q1=3, fc_q2=5,fc_q3=1")
	require.NoError(t, err)
	assert.Equal(t, model.AnswerSet{"fc_q1": 3, "fc_q2": 5, "fc_q3": 1}, answers)
}

func TestParseAnswers_Errors(t *testing.T) {
	_, err := parseAnswers("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no answers")

	_, err = parseAnswers("fc_q1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed")

	_, err = parseAnswers("fc_q1=three")
	require.Error(t, err)
}

func TestFormatResult(t *testing.T) {
	result := &model.AssessmentResult{
		Overall: model.OverallScore{Total: 56.0, StatusBand: model.BandNeedsImprovement},
		CategoryScores: map[model.Category]model.CategoryScore{
			model.CategoryIncomeStream: {
				Category:     model.CategoryIncomeStream,
				ActualPoints: 35,
				MaxPoints:    75,
				Percentage:   46.67,
				Contribution: 7.0,
				StatusLevel:  model.StatusGood,
			},
			model.CategoryRetirement: {
				Category:     model.CategoryRetirement,
				ActualPoints: 20,
				MaxPoints:    100,
				Percentage:   20.0,
				Contribution: 4.0,
				StatusLevel:  model.StatusAtRisk,
			},
		},
		Insights: []model.Insight{
			{Category: model.CategoryRetirement, Text: "Start planning for retirement today."},
		},
	}

	var buf bytes.Buffer
	formatResult(&buf, result)
	out := buf.String()

	assert.Contains(t, out, "56.00 / 100")
	assert.Contains(t, out, "Needs Improvement")
	assert.Contains(t, out, "Income Stream")
	assert.Contains(t, out, "at_risk")
	assert.Contains(t, out, "Start planning for retirement today.")
}
