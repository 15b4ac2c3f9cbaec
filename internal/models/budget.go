package models

// BudgetFigures are the stored expense columns shared by all budget tables.
// Roll-up categories are derived from these and never stored.
type BudgetFigures struct {
	StaffSalaries           float64
	StaffTrainingRegMeeting float64
	RevenueRelated          float64
	ITRelated               float64 `gorm:"column:it_related"`
	OccupancyRelated        float64
	OtherTransportTravel    float64
	OtherOther              float64
	IndirectExpense         float64
}

// Add returns the column-wise sum of f and o.
func (f BudgetFigures) Add(o BudgetFigures) BudgetFigures {
	return BudgetFigures{
		StaffSalaries:           f.StaffSalaries + o.StaffSalaries,
		StaffTrainingRegMeeting: f.StaffTrainingRegMeeting + o.StaffTrainingRegMeeting,
		RevenueRelated:          f.RevenueRelated + o.RevenueRelated,
		ITRelated:               f.ITRelated + o.ITRelated,
		OccupancyRelated:        f.OccupancyRelated + o.OccupancyRelated,
		OtherTransportTravel:    f.OtherTransportTravel + o.OtherTransportTravel,
		OtherOther:              f.OtherOther + o.OtherOther,
		IndirectExpense:         f.IndirectExpense + o.IndirectExpense,
	}
}

type YearlyBudget struct {
	Base
	Year          int `gorm:"index;not null"`
	BudgetFigures `gorm:"embedded"`
}

type MonthlyBudget struct {
	Base
	Year          int `gorm:"index:idx_monthly_budget_period;not null"`
	Month         int `gorm:"index:idx_monthly_budget_period;not null"`
	BudgetFigures `gorm:"embedded"`
}

type MonthlyActualBudget struct {
	Base
	Year          int `gorm:"index:idx_monthly_actual_period;not null"`
	Month         int `gorm:"index:idx_monthly_actual_period;not null"`
	BudgetFigures `gorm:"embedded"`
	Remark        string `gorm:"type:text"`
}

// DomainTables lists every non-lookup model, in migration order.
func DomainTables() []any {
	return []any{
		&Employee{},
		&Certification{},
		&Project{},
		&QAIP{},
		&CSF{},
		&Training{},
		&SocialContrib{},
		&BUSUEngagement{},
		&YearlyAttrition{},
		&YearlyBudget{},
		&MonthlyBudget{},
		&MonthlyActualBudget{},
	}
}
