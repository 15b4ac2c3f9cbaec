package report

import (
	"math"

	"ia-admin/internal/models"
)

type CSFAverages struct {
	ATP     float64
	AC      float64
	PAW     float64
	Overall float64
}

// AverageCSF averages each score group and the three group averages, each
// rounded to two decimals.
func AverageCSF(s models.CSFScores) CSFAverages {
	atp := round2((s.ATP1 + s.ATP2 + s.ATP3 + s.ATP4 + s.ATP5 + s.ATP6) / 6)
	ac := round2((s.AC1 + s.AC2 + s.AC3 + s.AC4 + s.AC5 + s.AC6) / 6)
	paw := round2((s.PAW1 + s.PAW2 + s.PAW3) / 3)

	return CSFAverages{
		ATP:     atp,
		AC:      ac,
		PAW:     paw,
		Overall: round2((atp + ac + paw) / 3),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
