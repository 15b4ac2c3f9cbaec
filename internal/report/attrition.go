package report

import (
	"strconv"

	"ia-admin/internal/models"
)

// AttritionRate is (resigned + transferred) / starting headcount as a
// percentage with up to two decimals, or "-%" without a starting headcount.
func AttritionRate(a models.YearlyAttrition) string {
	if a.StartHeadcount == 0 {
		return "-%"
	}
	rate := float64(a.ResignedCount+a.TransferCount) / float64(a.StartHeadcount)
	return strconv.FormatFloat(round2(rate*100), 'f', -1, 64) + "%"
}

// CurrentHeadcount is the starting headcount after the year's movements.
func CurrentHeadcount(a models.YearlyAttrition) int {
	return a.StartHeadcount + a.JoinedCount - (a.ResignedCount + a.TransferCount)
}
