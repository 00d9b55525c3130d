package models

type CaseModel struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"not null;index"`
	Description string `gorm:"type:text;not null"`
	Status      string `gorm:"size:20;not null;default:pending;index"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (CaseModel) TableName() string {
	return "cases"
}

type RespondentModel struct {
	ID         uint   `gorm:"primaryKey"`
	CaseID     uint   `gorm:"uniqueIndex;not null"`
	FirstName  string `gorm:"size:100;not null"`
	MiddleName string `gorm:"size:100"`
	LastName   string `gorm:"size:100;not null"`
	Suffix     string `gorm:"size:20"`
	Street     string `gorm:"size:255;not null"`
	City       string `gorm:"size:100;not null"`
	State      string `gorm:"size:100"`
	PostalCode string `gorm:"size:20"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null"`
}

func (RespondentModel) TableName() string {
	return "respondents"
}

type AttachmentModel struct {
	ID          uint   `gorm:"primaryKey"`
	CaseID      uint   `gorm:"not null;index"`
	FileName    string `gorm:"size:255;not null"`
	ContentType string `gorm:"size:100"`
	SizeBytes   int64  `gorm:"not null;default:0"`
	StorageKey  string `gorm:"size:512;not null"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
}

func (AttachmentModel) TableName() string {
	return "case_attachments"
}
