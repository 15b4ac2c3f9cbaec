package models

import "time"

type Employee struct {
	Base
	Name         string `gorm:"size:255;not null"`
	Email        string `gorm:"size:255"`
	PasswordHash string `gorm:"not null"`

	StaffID        string `gorm:"size:32;uniqueIndex;not null"` // NIK
	DivStream      string `gorm:"size:100"`
	CorporateTitle string `gorm:"size:100"`
	CorporateGrade string `gorm:"size:50"`

	DateOfBirth         *time.Time
	DateFirstEmployment *time.Time
	DateFirstUOB        *time.Time `gorm:"column:date_first_uob"`
	DateFirstIA         *time.Time `gorm:"column:date_first_ia"`

	Gender          string `gorm:"size:16"`
	YearAuditNonUOB int    `gorm:"column:year_audit_non_uob"`
	EduLevel        string `gorm:"size:50"`
	EduMajor        string `gorm:"size:100"`
	EduCategory     string `gorm:"size:100"`
	IABackground    bool   `gorm:"column:ia_background"`
	EABackground    bool   `gorm:"column:ea_background"`
	Active          bool

	DivisionID uint
	Division   Division
	RoleID     uint
	Role       Role

	Certifications []Certification `gorm:"constraint:OnDelete:CASCADE"`
}

type Certification struct {
	Base
	Name       string `gorm:"size:255;not null"`
	Proof      bool
	EmployeeID uint `gorm:"index"`
}
