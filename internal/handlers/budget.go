package handlers

import (
	"fmt"
	"net/http"

	"ia-admin/internal/database"
	"ia-admin/internal/logging"
	"ia-admin/internal/models"
	"ia-admin/internal/report"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const resourceBudget = "budget"

// budgetPeriod reads and validates the {year}/{month} path parameters.
func budgetPeriod(c *gin.Context) (int, int, bool) {
	year, ok := pathInt(c, "year")
	if !ok {
		return 0, 0, false
	}
	month, ok := pathInt(c, "month")
	if !ok {
		return 0, 0, false
	}
	if month < 1 || month > 12 {
		abortDetail(c, http.StatusUnprocessableEntity, "month must be between 1 and 12")
		return 0, 0, false
	}
	return year, month, true
}

func duplicateBudget(detail string) error {
	return &httpError{Status: http.StatusInternalServerError, Detail: detail}
}

// findSingle returns the only row matching the query, the zero value when
// there is none, and a 500 when the period holds more than one.
func findSingle[T any](db *gorm.DB, dupDetail string, query string, args ...any) (T, error) {
	var rows []T
	var zero T
	if err := db.Where(query, args...).Order("id asc").Limit(2).Find(&rows).Error; err != nil {
		return zero, err
	}
	switch len(rows) {
	case 0:
		return zero, nil
	case 1:
		return rows[0], nil
	default:
		return zero, duplicateBudget(dupDetail)
	}
}

func loadBudgetPeriod(db *gorm.DB, year, month int) (report.BudgetPeriod, error) {
	p := report.BudgetPeriod{Year: year, Month: month}

	yearly, err := findSingle[models.YearlyBudget](db,
		fmt.Sprintf("Multiple YearlyBudget entries for given year (%d) were found!", year),
		"year = ?", year)
	if err != nil {
		return p, err
	}
	p.BudgetYear = yearly.BudgetFigures

	monthly, err := findSingle[models.MonthlyBudget](db,
		fmt.Sprintf("Multiple MonthBudget entries for given year/month (%d/%d) were found!", year, month),
		"year = ? AND month = ?", year, month)
	if err != nil {
		return p, err
	}
	p.BudgetMonth = monthly.BudgetFigures

	actual, err := findSingle[models.MonthlyActualBudget](db,
		fmt.Sprintf("Multiple MonthlyActualBudget entries for given year/month (%d/%d) were found!", year, month),
		"year = ? AND month = ?", year, month)
	if err != nil {
		return p, err
	}
	p.ActualMonth = actual.BudgetFigures

	var monthsTD []models.MonthlyBudget
	if err := db.Where("year = ? AND month <= ?", year, month).Find(&monthsTD).Error; err != nil {
		return p, err
	}
	for _, m := range monthsTD {
		p.BudgetMonthTD = p.BudgetMonthTD.Add(m.BudgetFigures)
	}

	var actualsTD []models.MonthlyActualBudget
	if err := db.Where("year = ? AND month <= ?", year, month).Find(&actualsTD).Error; err != nil {
		return p, err
	}
	for _, a := range actualsTD {
		p.ActualMonthTD = p.ActualMonthTD.Add(a.BudgetFigures)
	}

	return p, nil
}

// GetBudget renders the reconciliation table for one month.
func GetBudget(c *gin.Context) {
	year, month, ok := budgetPeriod(c)
	if !ok {
		return
	}

	p, err := loadBudgetPeriod(database.DB, year, month)
	if err != nil {
		respondError(c, resourceBudget, logging.OpList, err)
		return
	}
	c.JSON(http.StatusOK, report.ReconcileBudget(p))
}

type budgetInput struct {
	Expenses    *string  `json:"expenses"`
	BudgetYear  *float64 `json:"budgetYear"`
	BudgetMonth *float64 `json:"budgetMonth"`
	ActualMonth *float64 `json:"actualMonth"`
}

// setBudgetColumn writes value into column of the period row described by
// row and conds, creating a zeroed row first when the period has none.
func setBudgetColumn(tx *gorm.DB, row any, conds map[string]any, column string, value float64, dupDetail string) error {
	var ids []uint
	if err := tx.Model(row).Where(conds).Order("id asc").Limit(2).Pluck("id", &ids).Error; err != nil {
		return err
	}

	var id uint
	switch len(ids) {
	case 0:
		if err := tx.Create(row).Error; err != nil {
			return err
		}
		var created []uint
		if err := tx.Model(row).Where(conds).Limit(1).Pluck("id", &created).Error; err != nil {
			return err
		}
		if len(created) == 0 {
			return fmt.Errorf("budget row for %v vanished after insert", conds)
		}
		id = created[0]
	case 1:
		id = ids[0]
	default:
		return duplicateBudget(dupDetail)
	}

	return tx.Model(row).Where("id = ?", id).Update(column, value).Error
}

// UpdateBudget stores the figures given for one expense category. Each
// figure lands in the same column of the yearly, monthly and actual tables.
func UpdateBudget(c *gin.Context) {
	year, month, ok := budgetPeriod(c)
	if !ok {
		return
	}

	var in budgetInput
	if !bindJSON(c, &in) {
		return
	}

	if err := requireFields(need("expenses", in.Expenses != nil)); err != nil {
		respondError(c, resourceBudget, logging.OpUpdate, err)
		return
	}

	column, err := report.BudgetColumn(*in.Expenses)
	if err != nil {
		respondError(c, resourceBudget, logging.OpUpdate, err)
		return
	}

	period := map[string]any{"year": year, "month": month}
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if in.BudgetYear != nil {
			if err := setBudgetColumn(tx, &models.YearlyBudget{Year: year},
				map[string]any{"year": year}, column, *in.BudgetYear,
				fmt.Sprintf("Multiple YearlyBudget entries for given year (%d) were found!", year)); err != nil {
				return err
			}
		}
		if in.BudgetMonth != nil {
			if err := setBudgetColumn(tx, &models.MonthlyBudget{Year: year, Month: month},
				period, column, *in.BudgetMonth,
				fmt.Sprintf("Multiple MonthBudget entries for given year/month (%d/%d) were found!", year, month)); err != nil {
				return err
			}
		}
		if in.ActualMonth != nil {
			if err := setBudgetColumn(tx, &models.MonthlyActualBudget{Year: year, Month: month},
				period, column, *in.ActualMonth,
				fmt.Sprintf("Multiple MonthlyActualBudget entries for given year/month (%d/%d) were found!", year, month)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		respondError(c, resourceBudget, logging.OpUpdate, err)
		return
	}

	p, err := loadBudgetPeriod(database.DB, year, month)
	if err != nil {
		respondError(c, resourceBudget, logging.OpUpdate, err)
		return
	}
	c.JSON(http.StatusAccepted, report.ReconcileBudget(p))
}
