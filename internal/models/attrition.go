package models

// YearlyAttrition is the headcount movement of one division over a year.
type YearlyAttrition struct {
	Base
	Year            int `gorm:"index;not null"`
	StartHeadcount  int
	BudgetHeadcount int
	JoinedCount     int
	ResignedCount   int
	TransferCount   int

	DivisionID uint
	Division   Division
}
