package models

// Project is an audit engagement planned for a given year.
type Project struct {
	Base
	Name          string `gorm:"size:255;not null"`
	UsedDA        bool   `gorm:"column:used_da"`
	CompletionPA  bool   `gorm:"column:completion_pa"`
	IsCarriedOver bool
	TimelyReport  bool
	Year          int `gorm:"index;not null"`

	StatusID   uint
	Status     ProjectStatus
	DivisionID uint
	Division   Division

	QAIPs []QAIP `gorm:"constraint:OnDelete:CASCADE"`
	CSFs  []CSF  `gorm:"constraint:OnDelete:CASCADE"`
}
