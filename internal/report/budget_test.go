package report

import (
	"errors"
	"testing"

	"ia-admin/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileBudgetEmptyPeriod(t *testing.T) {
	rows := ReconcileBudget(BudgetPeriod{Year: 2024, Month: 6})

	require.Len(t, rows, 11)
	assert.Equal(t, ExpenseCategories(), []string{
		"Staff Expense",
		"Staff Expense (Salaries)",
		"Staff Training & Regional Meeting",
		"Revenue Related (Communications)",
		"IT Related (Softwares)",
		"Occupancy Related (Premises)",
		"Other Related",
		"Transport & Travel",
		"Others",
		"Direct Expense",
		"Indirect Expense",
	})

	for i, r := range rows {
		assert.Equal(t, ExpenseCategories()[i], r.Expenses)
		assert.Zero(t, r.BudgetYear, r.Expenses)
		assert.Zero(t, r.BudgetMonth, r.Expenses)
		assert.Zero(t, r.BudgetMonthTD, r.Expenses)
		assert.Zero(t, r.ActualMonth, r.Expenses)
		assert.Zero(t, r.ActualMonthTD, r.Expenses)
		assert.Equal(t, "-%", r.MTD, r.Expenses)
		assert.Equal(t, "-%", r.YTD, r.Expenses)
		assert.Equal(t, "-%", r.OverUnderBudget, r.Expenses)
		assert.Equal(t, "50%", r.STDProRate, r.Expenses)
		assert.Empty(t, r.Variance)
	}
	assert.Equal(t, "1", rows[0].ID)
	assert.Equal(t, "11", rows[10].ID)
}

func TestReconcileBudgetRatios(t *testing.T) {
	rows := ReconcileBudget(BudgetPeriod{
		Year:          2024,
		Month:         3,
		BudgetYear:    models.BudgetFigures{StaffSalaries: 1200},
		BudgetMonth:   models.BudgetFigures{StaffSalaries: 100},
		BudgetMonthTD: models.BudgetFigures{StaffSalaries: 300},
		ActualMonth:   models.BudgetFigures{StaffSalaries: 40},
		ActualMonthTD: models.BudgetFigures{StaffSalaries: 150},
	})

	for _, idx := range []int{0, 1, 9} { // salaries feed Staff Expense and Direct Expense
		r := rows[idx]
		assert.Equal(t, 1200.0, r.BudgetYear, r.Expenses)
		assert.Equal(t, 100.0, r.BudgetMonth, r.Expenses)
		assert.Equal(t, 40.0, r.ActualMonth, r.Expenses)
		assert.Equal(t, "50%", r.MTD, r.Expenses)
		assert.Equal(t, "12%", r.YTD, r.Expenses) // 12.5 rounds half to even
		assert.Equal(t, "25%", r.STDProRate, r.Expenses)
		assert.Equal(t, "-12%", r.OverUnderBudget, r.Expenses)
	}

	assert.Equal(t, "-%", rows[10].MTD)
	assert.Zero(t, rows[6].ActualMonthTD)
}

func TestReconcileBudgetRollUps(t *testing.T) {
	f := models.BudgetFigures{
		StaffSalaries:           10,
		StaffTrainingRegMeeting: 5,
		RevenueRelated:          3,
		ITRelated:               2,
		OccupancyRelated:        1,
		OtherTransportTravel:    4,
		OtherOther:              6,
		IndirectExpense:         100,
	}
	rows := ReconcileBudget(BudgetPeriod{Year: 2024, Month: 12, BudgetYear: f, ActualMonthTD: f})

	assert.Equal(t, 15.0, rows[0].BudgetYear)
	assert.Equal(t, 10.0, rows[6].BudgetYear)
	assert.Equal(t, 31.0, rows[9].BudgetYear)
	assert.Equal(t, 100.0, rows[10].BudgetYear)
	assert.Equal(t, 31.0, rows[9].ActualMonthTD)
	assert.Equal(t, "100%", rows[9].YTD)
	assert.Equal(t, "0%", rows[9].OverUnderBudget)
}

func TestBudgetColumn(t *testing.T) {
	col, err := BudgetColumn("Others")
	require.NoError(t, err)
	assert.Equal(t, "other_other", col)

	col, err = BudgetColumn("IT Related (Softwares)")
	require.NoError(t, err)
	assert.Equal(t, "it_related", col)

	for _, c := range []string{"Staff Expense", "Other Related", "Direct Expense", "Indirect Expense"} {
		_, err := BudgetColumn(c)
		require.Error(t, err, c)
		assert.True(t, errors.Is(err, ErrFormulatedCategory), c)
		assert.Contains(t, err.Error(), "formulated value")
	}

	_, err = BudgetColumn("Coffee")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownCategory))
	assert.Equal(t, "Given Expense field (Coffee) is not allowed", err.Error())
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "8%", Percent(1.0/12))
	assert.Equal(t, "100%", Percent(1))
	assert.Equal(t, "0%", Percent(-0.001))
	assert.Equal(t, "-50%", Percent(-0.5))
}

func TestBudgetFiguresAdd(t *testing.T) {
	a := models.BudgetFigures{StaffSalaries: 1, IndirectExpense: 2}
	b := models.BudgetFigures{StaffSalaries: 3, OtherOther: 4}
	assert.Equal(t, models.BudgetFigures{StaffSalaries: 4, OtherOther: 4, IndirectExpense: 2}, a.Add(b))
}
