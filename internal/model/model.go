// Package model defines the core domain types shared across the
// assessment engine: categories, status labels, profiles, answer sets,
// and scoring results.
package model

import (
	"strings"
	"time"

	"github.com/rotisserie/eris"
)

// Category is one of the six fixed financial-health dimensions.
type Category string

const (
	CategoryIncomeStream     Category = "Income Stream"
	CategorySavingsHabit     Category = "Savings Habit"
	CategoryEmergencySavings Category = "Emergency Savings"
	CategoryDebtManagement   Category = "Debt Management"
	CategoryRetirement       Category = "Retirement Planning"
	CategoryProtectingFamily Category = "Protecting Your Family"
)

// categoryOrder fixes the iteration order over categories so that
// scoring arithmetic is reproducible across runs and implementations.
var categoryOrder = []Category{
	CategoryIncomeStream,
	CategorySavingsHabit,
	CategoryEmergencySavings,
	CategoryDebtManagement,
	CategoryRetirement,
	CategoryProtectingFamily,
}

// Categories returns all six categories in their fixed order.
// The returned slice is a copy; callers may not mutate shared state.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// CategoryIndex returns the position of a category in the fixed order,
// or -1 for an unknown category.
func CategoryIndex(c Category) int {
	for i, cat := range categoryOrder {
		if cat == c {
			return i
		}
	}
	return -1
}

// ValidCategory reports whether c is one of the six known categories.
func ValidCategory(c Category) bool {
	return CategoryIndex(c) >= 0
}

// StatusLevel is the three-tier qualitative label for a single
// category's percentage.
type StatusLevel string

const (
	StatusAtRisk    StatusLevel = "at_risk"
	StatusGood      StatusLevel = "good"
	StatusExcellent StatusLevel = "excellent"
)

// StatusBand is the four-tier qualitative label for the overall score.
type StatusBand string

const (
	BandAtRisk           StatusBand = "At Risk"
	BandNeedsImprovement StatusBand = "Needs Improvement"
	BandGood             StatusBand = "Good"
	BandExcellent        StatusBand = "Excellent"
)

// IncomeBracket is a monthly income range in AED.
type IncomeBracket string

const (
	IncomeBelow5000 IncomeBracket = "below_5000"
	Income5to10k    IncomeBracket = "5000_10000"
	Income10to20k   IncomeBracket = "10000_20000"
	Income20to30k   IncomeBracket = "20000_30000"
	Income30to45k   IncomeBracket = "30000_45000"
	Income45to60k   IncomeBracket = "45000_60000"
	Income60to75k   IncomeBracket = "60000_75000"
	IncomeAbove75k  IncomeBracket = "above_75000"
)

// lowBrackets and highBrackets partition the bracket enumeration at the
// 30k boundary. Membership drives insight condition matching.
var lowBrackets = map[IncomeBracket]bool{
	IncomeBelow5000: true,
	Income5to10k:    true,
	Income10to20k:   true,
	Income20to30k:   true,
}

var highBrackets = map[IncomeBracket]bool{
	Income30to45k:  true,
	Income45to60k:  true,
	Income60to75k:  true,
	IncomeAbove75k: true,
}

// IsHigh reports whether the bracket is at or above 30k AED per month.
func (b IncomeBracket) IsHigh() bool { return highBrackets[b] }

// IsLow reports whether the bracket is below 30k AED per month.
func (b IncomeBracket) IsLow() bool { return lowBrackets[b] }

// Valid reports whether b is a known bracket label.
func (b IncomeBracket) Valid() bool { return lowBrackets[b] || highBrackets[b] }

// IncomeBrackets returns all bracket labels from lowest to highest.
func IncomeBrackets() []IncomeBracket {
	return []IncomeBracket{
		IncomeBelow5000, Income5to10k, Income10to20k, Income20to30k,
		Income30to45k, Income45to60k, Income60to75k, IncomeAbove75k,
	}
}

// Nationality values recognised by insight selection.
const (
	NationalityEmirati    = "Emirati"
	NationalityNonEmirati = "Non-Emirati"
)

// Gender values recognised by insight selection.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

// Profile holds the respondent facts relevant to conditional scoring
// and insight selection. Immutable for the duration of an assessment.
type Profile struct {
	IncomeBracket IncomeBracket `json:"income_bracket"`
	Nationality   string        `json:"nationality"`
	Gender        string        `json:"gender"`
	Children      int           `json:"children"`
}

// Validate checks the profile fields against their closed enumerations.
// All problems are reported in a single error.
func (p Profile) Validate() error {
	var problems []string
	if !p.IncomeBracket.Valid() {
		problems = append(problems, "income_bracket must be one of the eight bracket labels")
	}
	if p.Nationality != NationalityEmirati && p.Nationality != NationalityNonEmirati {
		problems = append(problems, "nationality must be Emirati or Non-Emirati")
	}
	if p.Gender != GenderMale && p.Gender != GenderFemale {
		problems = append(problems, "gender must be Male or Female")
	}
	if p.Children < 0 {
		problems = append(problems, "children must be zero or positive")
	}
	if len(problems) > 0 {
		return eris.Errorf("profile: %s", strings.Join(problems, "; "))
	}
	return nil
}

// AnswerSet maps question id to an answer value in [1,5].
type AnswerSet map[string]int

// Clone returns an independent copy of the answer set. A nil receiver
// yields an empty, non-nil set.
func (a AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(a)+1)
	for id, v := range a {
		out[id] = v
	}
	return out
}

// CategoryScore is the derived score for a single category.
type CategoryScore struct {
	Category     Category    `json:"category"`
	ActualPoints float64     `json:"actual_points"`
	MaxPoints    float64     `json:"max_points"`
	Percentage   float64     `json:"percentage"`
	Contribution float64     `json:"contribution"`
	StatusLevel  StatusLevel `json:"status_level"`
}

// OverallScore is the weighted 0-100 total with its status band.
type OverallScore struct {
	Total      float64    `json:"total"`
	StatusBand StatusBand `json:"status_band"`
}

// Insight is a selected advisory message for a weak category.
type Insight struct {
	Category    Category    `json:"category"`
	StatusLevel StatusLevel `json:"status_level"`
	Text        string      `json:"text"`
	TextAr      string      `json:"text_ar"`
	Priority    int         `json:"priority"`
}

// AssessmentResult is the complete engine output for one submission.
type AssessmentResult struct {
	Overall           OverallScore               `json:"overall"`
	CategoryScores    map[Category]CategoryScore `json:"category_scores"`
	Insights          []Insight                  `json:"insights"`
	QuestionsAnswered int                        `json:"questions_answered"`
	TotalQuestions    int                        `json:"total_questions"`
	CatalogRevision   string                     `json:"catalog_revision"`
}

// Submission is a stored assessment: inputs plus computed result.
type Submission struct {
	ID        string            `json:"id"`
	Profile   Profile           `json:"profile"`
	Answers   AnswerSet         `json:"answers"`
	Result    *AssessmentResult `json:"result,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}
