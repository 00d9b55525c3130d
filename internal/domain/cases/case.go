// Package cases contains the Case aggregate: a complaint filed by a user
// against a respondent, with optional file attachments. A case always has
// exactly one owning user and, once created, exactly one respondent.
package cases

import (
	"fmt"
	"strings"
	"time"

	"casefile/internal/shared/biztime"

	vo "casefile/internal/domain/cases/valueobjects"
)

const maxDescriptionLength = 5000

type Case struct {
	id          uint
	userID      uint
	description string
	status      vo.Status
	respondent  *Respondent
	attachments []*Attachment
	createdAt   time.Time
	updatedAt   time.Time
}

// NewCase builds a case for the given owner. An empty status defaults to
// pending; otherwise the status must already be normalized and valid.
func NewCase(userID uint, description string, status vo.Status) (*Case, error) {
	description = strings.TrimSpace(description)

	if userID == 0 {
		return nil, fmt.Errorf("owning user ID is required")
	}
	if description == "" {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > maxDescriptionLength {
		return nil, fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	if status == "" {
		status = vo.StatusPending
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	now := biztime.NowUTC()
	return &Case{
		userID:      userID,
		description: description,
		status:      status,
		attachments: []*Attachment{},
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructCase(
	id uint,
	userID uint,
	description string,
	status vo.Status,
	createdAt, updatedAt time.Time,
) (*Case, error) {
	if id == 0 {
		return nil, fmt.Errorf("case ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("owning user ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Case{
		id:          id,
		userID:      userID,
		description: description,
		status:      status,
		attachments: []*Attachment{},
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (c *Case) ID() uint {
	return c.id
}

func (c *Case) UserID() uint {
	return c.userID
}

func (c *Case) Description() string {
	return c.description
}

func (c *Case) Status() vo.Status {
	return c.status
}

func (c *Case) Respondent() *Respondent {
	return c.respondent
}

func (c *Case) Attachments() []*Attachment {
	attachmentsCopy := make([]*Attachment, len(c.attachments))
	copy(attachmentsCopy, c.attachments)
	return attachmentsCopy
}

func (c *Case) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Case) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Case) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("case ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("case ID cannot be zero")
	}
	c.id = id
	return nil
}

// AttachRespondent binds the respondent to this case. A case holds exactly
// one respondent for its whole life.
func (c *Case) AttachRespondent(r *Respondent) error {
	if r == nil {
		return fmt.Errorf("respondent cannot be nil")
	}
	if c.respondent != nil {
		return fmt.Errorf("case already has a respondent")
	}
	if r.CaseID() != 0 && r.CaseID() != c.id {
		return fmt.Errorf("respondent case ID mismatch")
	}

	c.respondent = r
	return nil
}

func (c *Case) UpdateDescription(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return fmt.Errorf("description is required")
	}
	if len(description) > maxDescriptionLength {
		return fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}

	c.description = description
	c.updatedAt = biztime.NowUTC()
	return nil
}

func (c *Case) ChangeStatus(status vo.Status) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid status: %s", status)
	}
	if c.status == status {
		return nil
	}

	c.status = status
	c.updatedAt = biztime.NowUTC()
	return nil
}

func (c *Case) AddAttachment(a *Attachment) error {
	if a == nil {
		return fmt.Errorf("attachment cannot be nil")
	}
	if a.CaseID() != c.id {
		return fmt.Errorf("attachment case ID mismatch")
	}

	c.attachments = append(c.attachments, a)
	return nil
}

// IsOwnedBy reports whether the case belongs to the given user. All reads
// and writes are additionally filtered by owner at the repository level;
// this is the in-memory counterpart.
func (c *Case) IsOwnedBy(userID uint) bool {
	return c.userID == userID
}
