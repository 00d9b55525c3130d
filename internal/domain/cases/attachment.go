package cases

import (
	"fmt"
	"strings"
	"time"

	"casefile/internal/shared/biztime"
)

// Attachment is file metadata for a case. The bytes themselves live in an
// external object store; storageKey points at them.
type Attachment struct {
	id          uint
	caseID      uint
	fileName    string
	contentType string
	sizeBytes   int64
	storageKey  string
	createdAt   time.Time
}

func NewAttachment(caseID uint, fileName, contentType string, sizeBytes int64, storageKey string) (*Attachment, error) {
	fileName = strings.TrimSpace(fileName)

	if caseID == 0 {
		return nil, fmt.Errorf("case ID is required")
	}
	if fileName == "" {
		return nil, fmt.Errorf("file name is required")
	}
	if sizeBytes < 0 {
		return nil, fmt.Errorf("size cannot be negative")
	}
	if storageKey == "" {
		return nil, fmt.Errorf("storage key is required")
	}

	return &Attachment{
		caseID:      caseID,
		fileName:    fileName,
		contentType: contentType,
		sizeBytes:   sizeBytes,
		storageKey:  storageKey,
		createdAt:   biztime.NowUTC(),
	}, nil
}

func ReconstructAttachment(
	id uint,
	caseID uint,
	fileName, contentType string,
	sizeBytes int64,
	storageKey string,
	createdAt time.Time,
) (*Attachment, error) {
	if id == 0 {
		return nil, fmt.Errorf("attachment ID cannot be zero")
	}
	if caseID == 0 {
		return nil, fmt.Errorf("attachment case ID cannot be zero")
	}

	return &Attachment{
		id:          id,
		caseID:      caseID,
		fileName:    fileName,
		contentType: contentType,
		sizeBytes:   sizeBytes,
		storageKey:  storageKey,
		createdAt:   createdAt,
	}, nil
}

func (a *Attachment) ID() uint             { return a.id }
func (a *Attachment) CaseID() uint         { return a.caseID }
func (a *Attachment) FileName() string     { return a.fileName }
func (a *Attachment) ContentType() string  { return a.contentType }
func (a *Attachment) SizeBytes() int64     { return a.sizeBytes }
func (a *Attachment) StorageKey() string   { return a.storageKey }
func (a *Attachment) CreatedAt() time.Time { return a.createdAt }

func (a *Attachment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("attachment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("attachment ID cannot be zero")
	}
	a.id = id
	return nil
}
