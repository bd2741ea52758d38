package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gulfwise/finclinic/internal/model"
)

func TestStatusLevelFor(t *testing.T) {
	tests := []struct {
		pct  float64
		want model.StatusLevel
	}{
		{0, model.StatusAtRisk},
		{39.99, model.StatusAtRisk},
		{40, model.StatusGood},
		{79.99, model.StatusGood},
		{80, model.StatusExcellent},
		{100, model.StatusExcellent},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusLevelFor(tt.pct), "pct=%v", tt.pct)
	}
}

func TestStatusBandFor(t *testing.T) {
	tests := []struct {
		total float64
		want  model.StatusBand
	}{
		{0, model.BandAtRisk},
		{29.99, model.BandAtRisk},
		{30, model.BandNeedsImprovement},
		{59.99, model.BandNeedsImprovement},
		{60, model.BandGood},
		{79.99, model.BandGood},
		{80, model.BandExcellent},
		{100, model.BandExcellent},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusBandFor(tt.total), "total=%v", tt.total)
	}
}
