package models

// QAIP is a quality assurance review of one audit project.
type QAIP struct {
	Base
	QATypeID uint
	QAType   QAType

	ProjectID uint
	Project   Project

	TLID *uint     `gorm:"column:tl_id"`
	TL   *Employee `gorm:"foreignKey:TLID;constraint:OnDelete:SET NULL"`

	DivisionHead string `gorm:"size:255"`

	QAGradingResultID uint
	QAGradingResult   QAGradingResult

	QAChecklist `gorm:"embedded"`

	IssueCount int
	QASample   bool `gorm:"column:qa_sample"`
}

// QAChecklist holds the findings flags of a review.
type QAChecklist struct {
	CategoryClarity      bool
	CategoryCompleteness bool
	CategoryConsistency  bool
	CategoryOthers       bool

	StagePlanning     bool
	StageFieldwork    bool
	StageReporting    bool
	StagePostAuditAct bool

	Deliverable1a bool `gorm:"column:deliverable_1a"`
	Deliverable1b bool `gorm:"column:deliverable_1b"`
	Deliverable1c bool `gorm:"column:deliverable_1c"`
	Deliverable1d bool `gorm:"column:deliverable_1d"`
	Deliverable1e bool `gorm:"column:deliverable_1e"`
	Deliverable1f bool `gorm:"column:deliverable_1f"`
	Deliverable1g bool `gorm:"column:deliverable_1g"`
	Deliverable1h bool `gorm:"column:deliverable_1h"`
	Deliverable1i bool `gorm:"column:deliverable_1i"`
	Deliverable1j bool `gorm:"column:deliverable_1j"`
	Deliverable1k bool `gorm:"column:deliverable_1k"`
	Deliverable2  bool `gorm:"column:deliverable_2"`
	Deliverable3  bool `gorm:"column:deliverable_3"`
	Deliverable4  bool `gorm:"column:deliverable_4"`
	Deliverable5  bool `gorm:"column:deliverable_5"`
	Deliverable6  bool `gorm:"column:deliverable_6"`
	Deliverable7  bool `gorm:"column:deliverable_7"`
}
