package report

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"ia-admin/internal/models"
)

var (
	ErrUnknownCategory    = errors.New("unknown expense category")
	ErrFormulatedCategory = errors.New("formulated expense category")
)

// CategoryError reports an expense category that cannot be written.
type CategoryError struct {
	Category string
	Err      error
}

func (e *CategoryError) Error() string {
	if errors.Is(e.Err, ErrFormulatedCategory) {
		return fmt.Sprintf("Given Expense field (%s) is formulated value (Cannot be modified)", e.Category)
	}
	return fmt.Sprintf("Given Expense field (%s) is not allowed", e.Category)
}

func (e *CategoryError) Unwrap() error { return e.Err }

type expenseCategory struct {
	name   string
	column string // empty for roll-ups
	value  func(models.BudgetFigures) float64
}

func staffExpense(f models.BudgetFigures) float64 {
	return f.StaffSalaries + f.StaffTrainingRegMeeting
}

func otherRelated(f models.BudgetFigures) float64 {
	return f.OtherTransportTravel + f.OtherOther
}

// Order matters: it is the row order and the row id of the budget table.
var expenseCategories = []expenseCategory{
	{"Staff Expense", "", staffExpense},
	{"Staff Expense (Salaries)", "staff_salaries", func(f models.BudgetFigures) float64 { return f.StaffSalaries }},
	{"Staff Training & Regional Meeting", "staff_training_reg_meeting", func(f models.BudgetFigures) float64 { return f.StaffTrainingRegMeeting }},
	{"Revenue Related (Communications)", "revenue_related", func(f models.BudgetFigures) float64 { return f.RevenueRelated }},
	{"IT Related (Softwares)", "it_related", func(f models.BudgetFigures) float64 { return f.ITRelated }},
	{"Occupancy Related (Premises)", "occupancy_related", func(f models.BudgetFigures) float64 { return f.OccupancyRelated }},
	{"Other Related", "", otherRelated},
	{"Transport & Travel", "other_transport_travel", func(f models.BudgetFigures) float64 { return f.OtherTransportTravel }},
	{"Others", "other_other", func(f models.BudgetFigures) float64 { return f.OtherOther }},
	{"Direct Expense", "", func(f models.BudgetFigures) float64 {
		return staffExpense(f) + f.RevenueRelated + f.ITRelated + f.OccupancyRelated + otherRelated(f)
	}},
	// Stored, but maintained outside the editable grid.
	{"Indirect Expense", "", func(f models.BudgetFigures) float64 { return f.IndirectExpense }},
}

// ExpenseCategories returns the category names in table order.
func ExpenseCategories() []string {
	names := make([]string, len(expenseCategories))
	for i, c := range expenseCategories {
		names[i] = c.name
	}
	return names
}

// BudgetColumn maps an editable category to its stored column.
func BudgetColumn(category string) (string, error) {
	for _, c := range expenseCategories {
		if c.name != category {
			continue
		}
		if c.column == "" {
			return "", &CategoryError{Category: category, Err: ErrFormulatedCategory}
		}
		return c.column, nil
	}
	return "", &CategoryError{Category: category, Err: ErrUnknownCategory}
}

// BudgetPeriod carries the figures of one reconciliation period. The TD
// fields are sums over months 1..Month of Year.
type BudgetPeriod struct {
	Year  int
	Month int

	BudgetYear    models.BudgetFigures
	BudgetMonth   models.BudgetFigures
	BudgetMonthTD models.BudgetFigures
	ActualMonth   models.BudgetFigures
	ActualMonthTD models.BudgetFigures
}

type BudgetRow struct {
	ID              string  `json:"id"`
	Expenses        string  `json:"expenses"`
	BudgetYear      float64 `json:"budgetYear"`
	BudgetMonth     float64 `json:"budgetMonth"`
	BudgetMonthTD   float64 `json:"budgetMonthTD"`
	ActualMonth     float64 `json:"actualMonth"`
	ActualMonthTD   float64 `json:"actualMonthTD"`
	MTD             string  `json:"MTD"`
	YTD             string  `json:"YTD"`
	STDProRate      string  `json:"STDProRate"`
	OverUnderBudget string  `json:"overUnderBudget"`
	Variance        string  `json:"variance"`
}

// ReconcileBudget builds the budget table for p.
func ReconcileBudget(p BudgetPeriod) []BudgetRow {
	proRate := float64(p.Month) / 12

	rows := make([]BudgetRow, 0, len(expenseCategories))
	for i, c := range expenseCategories {
		row := BudgetRow{
			ID:            strconv.Itoa(i + 1),
			Expenses:      c.name,
			BudgetYear:    c.value(p.BudgetYear),
			BudgetMonth:   c.value(p.BudgetMonth),
			BudgetMonthTD: c.value(p.BudgetMonthTD),
			ActualMonth:   c.value(p.ActualMonth),
			ActualMonthTD: c.value(p.ActualMonthTD),
			STDProRate:    Percent(proRate),
		}

		row.MTD = "-%"
		if row.BudgetMonthTD != 0 {
			row.MTD = Percent(row.ActualMonthTD / row.BudgetMonthTD)
		}

		row.YTD = "-%"
		row.OverUnderBudget = "-%"
		if row.BudgetYear != 0 {
			ytd := row.ActualMonthTD / row.BudgetYear
			row.YTD = Percent(ytd)
			row.OverUnderBudget = Percent(ytd - proRate)
		}

		rows = append(rows, row)
	}
	return rows
}

// Percent renders a ratio as a whole percentage, rounding half to even.
func Percent(ratio float64) string {
	return strconv.FormatInt(int64(math.RoundToEven(ratio*100)), 10) + "%"
}
