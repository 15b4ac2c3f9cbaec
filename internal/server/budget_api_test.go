package server

import (
	"net/http"
	"testing"

	"ia-admin/internal/database"
	"ia-admin/internal/models"
	"ia-admin/internal/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const budgetPath = "/admin/budget_data/api/table_data/"

func TestBudgetEmptyPeriod(t *testing.T) {
	r := newTestAPI(t)

	rr := do(t, r, http.MethodGet, budgetPath+"2024/6", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rows := decode[[]report.BudgetRow](t, rr)
	require.Len(t, rows, 11)
	assert.Equal(t, report.ExpenseCategories()[0], rows[0].Expenses)
	for i, row := range rows {
		assert.Equal(t, report.ExpenseCategories()[i], row.Expenses)
		assert.Zero(t, row.BudgetYear)
		assert.Zero(t, row.ActualMonthTD)
		assert.Equal(t, "-%", row.MTD)
		assert.Equal(t, "-%", row.YTD)
		assert.Equal(t, "-%", row.OverUnderBudget)
		assert.Equal(t, "50%", row.STDProRate)
	}
}

func TestBudgetMonthOutOfRange(t *testing.T) {
	r := newTestAPI(t)

	for _, m := range []string{"0", "13"} {
		rr := do(t, r, http.MethodGet, budgetPath+"2024/"+m, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

		rr = do(t, r, http.MethodPatch, budgetPath+"2024/"+m, map[string]any{"expenses": "Others", "budgetYear": 1})
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	}
}

func TestBudgetEditTouchesOneColumn(t *testing.T) {
	r := newTestAPI(t)

	rr := do(t, r, http.MethodPatch, budgetPath+"2024/3", map[string]any{
		"expenses":    "IT Related (Softwares)",
		"budgetYear":  1200,
		"budgetMonth": 100,
		"actualMonth": 90,
	})
	require.Equal(t, http.StatusAccepted, rr.Code, rr.Body.String())

	var yearly []models.YearlyBudget
	require.NoError(t, database.DB.Find(&yearly).Error)
	require.Len(t, yearly, 1)
	assert.Equal(t, 2024, yearly[0].Year)
	assert.Equal(t, models.BudgetFigures{ITRelated: 1200}, yearly[0].BudgetFigures)

	var monthly []models.MonthlyBudget
	require.NoError(t, database.DB.Find(&monthly).Error)
	require.Len(t, monthly, 1)
	assert.Equal(t, 3, monthly[0].Month)
	assert.Equal(t, models.BudgetFigures{ITRelated: 100}, monthly[0].BudgetFigures)

	var actual []models.MonthlyActualBudget
	require.NoError(t, database.DB.Find(&actual).Error)
	require.Len(t, actual, 1)
	assert.Equal(t, models.BudgetFigures{ITRelated: 90}, actual[0].BudgetFigures)

	// A second edit on another column leaves the first one alone.
	rr = do(t, r, http.MethodPatch, budgetPath+"2024/3", map[string]any{
		"expenses":   "Others",
		"budgetYear": 50,
	})
	require.Equal(t, http.StatusAccepted, rr.Code, rr.Body.String())

	require.NoError(t, database.DB.Find(&yearly).Error)
	require.Len(t, yearly, 1)
	assert.Equal(t, models.BudgetFigures{ITRelated: 1200, OtherOther: 50}, yearly[0].BudgetFigures)

	require.NoError(t, database.DB.Find(&monthly).Error)
	assert.Equal(t, models.BudgetFigures{ITRelated: 100}, monthly[0].BudgetFigures)
}

func TestBudgetRejectsFormulatedAndUnknownCategories(t *testing.T) {
	r := newTestAPI(t)

	for _, category := range []string{"Staff Expense", "Other Related", "Direct Expense", "Indirect Expense"} {
		rr := do(t, r, http.MethodPatch, budgetPath+"2024/1", map[string]any{"expenses": category, "budgetYear": 10})
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code, category)
		assert.Contains(t, detail(t, rr), "formulated value")
	}

	rr := do(t, r, http.MethodPatch, budgetPath+"2024/1", map[string]any{"expenses": "Bonuses", "budgetYear": 10})
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, "Given Expense field (Bonuses) is not allowed", detail(t, rr))

	var count int64
	require.NoError(t, database.DB.Model(&models.YearlyBudget{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestBudgetReconciliation(t *testing.T) {
	r := newTestAPI(t)

	edits := []struct {
		month string
		body  map[string]any
	}{
		{"1", map[string]any{"expenses": "Staff Expense (Salaries)", "budgetMonth": 100, "actualMonth": 50}},
		{"2", map[string]any{"expenses": "Staff Expense (Salaries)", "budgetYear": 1200, "budgetMonth": 100, "actualMonth": 100}},
		{"3", map[string]any{"expenses": "Staff Expense (Salaries)", "budgetMonth": 100, "actualMonth": 100}},
	}
	for _, e := range edits {
		rr := do(t, r, http.MethodPatch, budgetPath+"2024/"+e.month, e.body)
		require.Equal(t, http.StatusAccepted, rr.Code, rr.Body.String())
	}

	rr := do(t, r, http.MethodGet, budgetPath+"2024/2", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	rows := decode[[]report.BudgetRow](t, rr)
	require.Len(t, rows, 11)

	for _, i := range []int{0, 1, 9} { // Staff Expense, Salaries, Direct Expense
		row := rows[i]
		assert.Equal(t, 1200.0, row.BudgetYear, row.Expenses)
		assert.Equal(t, 100.0, row.BudgetMonth, row.Expenses)
		assert.Equal(t, 200.0, row.BudgetMonthTD, row.Expenses)
		assert.Equal(t, 100.0, row.ActualMonth, row.Expenses)
		assert.Equal(t, 150.0, row.ActualMonthTD, row.Expenses)
		assert.Equal(t, "75%", row.MTD, row.Expenses)
		assert.Equal(t, "12%", row.YTD, row.Expenses)
		assert.Equal(t, "17%", row.STDProRate, row.Expenses)
		assert.Equal(t, "-4%", row.OverUnderBudget, row.Expenses)
	}
	assert.Equal(t, "-%", rows[10].MTD)
}

func TestBudgetDuplicateRowsFail(t *testing.T) {
	r := newTestAPI(t)

	require.NoError(t, database.DB.Create(&models.YearlyBudget{Year: 2024}).Error)
	require.NoError(t, database.DB.Create(&models.YearlyBudget{Year: 2024}).Error)

	rr := do(t, r, http.MethodGet, budgetPath+"2024/1", nil)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "Multiple YearlyBudget entries for given year (2024) were found!", detail(t, rr))

	rr = do(t, r, http.MethodPatch, budgetPath+"2024/1", map[string]any{"expenses": "Others", "budgetYear": 1})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
