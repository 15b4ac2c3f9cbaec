package models

import "time"

// Base replaces gorm.Model: rows are hard-deleted, so there is no DeletedAt.
type Base struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
