package models

import "time"

// SocialContrib is an article or post published by a division.
type SocialContrib struct {
	Base
	Date      time.Time `gorm:"index"`
	TopicName string    `gorm:"size:255;not null"`

	DivisionID   uint
	Division     Division
	SocialTypeID uint
	SocialType   SocialType
}

// BUSUEngagement is a meeting or workshop held with a business or support
// unit.
type BUSUEngagement struct {
	Base
	ActivityName string    `gorm:"size:255;not null"`
	Date         time.Time `gorm:"index"`
	Proof        bool

	EngagementTypeID uint
	EngagementType   EngagementType
	DivisionID       uint
	Division         Division
}

func (BUSUEngagement) TableName() string { return "busu_engagements" }
