package scoring

import "github.com/gulfwise/finclinic/internal/model"

// StatusLevelFor maps a category percentage to its three-tier status
// level. Thresholds are category thresholds, distinct from the overall
// bands below.
func StatusLevelFor(percentage float64) model.StatusLevel {
	switch {
	case percentage >= 80:
		return model.StatusExcellent
	case percentage >= 40:
		return model.StatusGood
	default:
		return model.StatusAtRisk
	}
}

// StatusBandFor maps a 0-100 total score to the overall status band.
// The bands partition [0,100]; the final case doubles as a defensive
// fallback for any value that slips below the partition.
func StatusBandFor(total float64) model.StatusBand {
	switch {
	case total >= 80:
		return model.BandExcellent
	case total >= 60:
		return model.BandGood
	case total >= 30:
		return model.BandNeedsImprovement
	default:
		return model.BandAtRisk
	}
}
