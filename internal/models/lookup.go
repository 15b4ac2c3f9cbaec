package models

// Lookup tables. Rows are seeded from the catalog and referenced by name from
// the flat API payloads.

type Division struct {
	Base
	Name string `gorm:"size:64;uniqueIndex;not null"`
}

type ProjectStatus struct {
	Base
	Name string `gorm:"size:64;uniqueIndex;not null"`
}

type Role struct {
	Base
	Name string `gorm:"size:64;uniqueIndex;not null"`
}

type SocialType struct {
	Base
	Name string `gorm:"size:64;uniqueIndex;not null"`
}

type EngagementType struct {
	Base
	Name string `gorm:"size:64;uniqueIndex;not null"`
}

type QAType struct {
	Base
	Name string `gorm:"size:64;uniqueIndex;not null"`
}

type QAGradingResult struct {
	Base
	Name string `gorm:"size:64;uniqueIndex;not null"`
}

// LookupTables lists every lookup model, in seeding order.
func LookupTables() []any {
	return []any{
		&Division{},
		&ProjectStatus{},
		&Role{},
		&SocialType{},
		&EngagementType{},
		&QAType{},
		&QAGradingResult{},
	}
}
