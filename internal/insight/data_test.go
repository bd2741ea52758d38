package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gulfwise/finclinic/internal/model"
)

func TestDefaultMatrix_Complete(t *testing.T) {
	m, err := DefaultMatrix()
	require.NoError(t, err)

	levels := []model.StatusLevel{model.StatusAtRisk, model.StatusGood, model.StatusExcellent}
	for _, cat := range model.Categories() {
		for _, level := range levels {
			entries := m.Bucket(cat, level)
			require.NotEmpty(t, entries, "%s/%s", cat, level)

			hasDefault := false
			for _, e := range entries {
				assert.NotEmpty(t, e.Text, "%s/%s/%s", cat, level, e.Tag)
				assert.NotEmpty(t, e.TextAr, "%s/%s/%s", cat, level, e.Tag)
				if e.Tag == TagDefault {
					hasDefault = true
				}
			}
			assert.True(t, hasDefault, "%s/%s", cat, level)
		}
	}
}

func TestDefaultMatrix_ConditionalVariants(t *testing.T) {
	m := MustDefaultMatrix()

	tests := []struct {
		name    string
		cat     model.Category
		level   model.StatusLevel
		profile model.Profile
		wantTag ConditionTag
	}{
		{
			name:  "low income income stream advice",
			cat:   model.CategoryIncomeStream,
			level: model.StatusAtRisk,
			profile: model.Profile{
				IncomeBracket: model.IncomeBelow5000,
				Nationality:   model.NationalityNonEmirati,
				Gender:        model.GenderMale,
			},
			wantTag: TagIncomeBelow30k,
		},
		{
			name:  "high earner savings advice",
			cat:   model.CategorySavingsHabit,
			level: model.StatusAtRisk,
			profile: model.Profile{
				IncomeBracket: model.IncomeAbove75k,
				Nationality:   model.NationalityNonEmirati,
				Gender:        model.GenderFemale,
			},
			wantTag: TagIncomeAbove30k,
		},
		{
			name:  "parents get family-framed emergency advice",
			cat:   model.CategoryEmergencySavings,
			level: model.StatusAtRisk,
			profile: model.Profile{
				IncomeBracket: model.Income30to45k,
				Nationality:   model.NationalityNonEmirati,
				Gender:        model.GenderMale,
				Children:      2,
			},
			wantTag: TagChildrenAboveZero,
		},
		{
			name:  "emirati woman retirement advice",
			cat:   model.CategoryRetirement,
			level: model.StatusAtRisk,
			profile: model.Profile{
				IncomeBracket: model.Income45to60k,
				Nationality:   model.NationalityEmirati,
				Gender:        model.GenderFemale,
			},
			wantTag: TagEmiratiWoman,
		},
		{
			name:  "childless protection advice",
			cat:   model.CategoryProtectingFamily,
			level: model.StatusAtRisk,
			profile: model.Profile{
				IncomeBracket: model.Income45to60k,
				Nationality:   model.NationalityNonEmirati,
				Gender:        model.GenderMale,
				Children:      0,
			},
			wantTag: TagChildrenZero,
		},
		{
			name:  "fallback when nothing specific applies",
			cat:   model.CategoryEmergencySavings,
			level: model.StatusAtRisk,
			profile: model.Profile{
				IncomeBracket: model.Income10to20k,
				Nationality:   model.NationalityNonEmirati,
				Gender:        model.GenderMale,
				Children:      0,
			},
			wantTag: TagDefault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := m.Resolve(tt.cat, tt.level, tt.profile)
			require.True(t, ok)
			assert.Equal(t, tt.wantTag, e.Tag)
		})
	}
}
