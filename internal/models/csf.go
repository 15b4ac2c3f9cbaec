package models

import "time"

// CSF is a client satisfaction feedback form collected after a project.
type CSF struct {
	Base
	ProjectID uint
	Project   Project

	TLID *uint     `gorm:"column:tl_id"`
	TL   *Employee `gorm:"foreignKey:TLID;constraint:OnDelete:SET NULL"`

	ByInvDivisionID uint
	ByInvDivision   Division `gorm:"foreignKey:ByInvDivisionID"`

	ClientName string     `gorm:"size:255"`
	ClientUnit string     `gorm:"size:255"`
	CSFDate    *time.Time `gorm:"column:csf_date"`

	CSFScores `gorm:"embedded"`
}

// CSFScores are the questionnaire answers, grouped as ATP (audit team
// performance), AC (audit communication) and PAW (post audit work).
type CSFScores struct {
	ATP1 float64 `gorm:"column:atp_1"`
	ATP2 float64 `gorm:"column:atp_2"`
	ATP3 float64 `gorm:"column:atp_3"`
	ATP4 float64 `gorm:"column:atp_4"`
	ATP5 float64 `gorm:"column:atp_5"`
	ATP6 float64 `gorm:"column:atp_6"`
	AC1  float64 `gorm:"column:ac_1"`
	AC2  float64 `gorm:"column:ac_2"`
	AC3  float64 `gorm:"column:ac_3"`
	AC4  float64 `gorm:"column:ac_4"`
	AC5  float64 `gorm:"column:ac_5"`
	AC6  float64 `gorm:"column:ac_6"`
	PAW1 float64 `gorm:"column:paw_1"`
	PAW2 float64 `gorm:"column:paw_2"`
	PAW3 float64 `gorm:"column:paw_3"`
}
