package models

import "time"

type Training struct {
	Base
	Name          string    `gorm:"size:255;not null"`
	Date          time.Time `gorm:"index"`
	DurationHours float64
	Proof         bool
	Budget        float64
	Realization   float64
	ChargedByFin  float64
	MandatoryFrom string `gorm:"size:100"`
	Remark        string `gorm:"type:text"`

	EmployeeID *uint
	Employee   *Employee `gorm:"constraint:OnDelete:SET NULL"`
}
