package cases

import "context"

// Repository is the persistence boundary for the Case aggregate. Save and
// SaveRespondent are separate writes so the use case can run them inside a
// single transaction; Delete is the idempotent compensation used when no
// transaction support is available.
type Repository interface {
	Save(ctx context.Context, c *Case) error
	SaveRespondent(ctx context.Context, r *Respondent) error
	Update(ctx context.Context, c *Case) error
	Delete(ctx context.Context, id uint) error

	// FindByID and FindAllByUser load the case joined with its respondent
	// and attachments, always scoped to the owning user.
	FindByID(ctx context.Context, id uint, userID uint) (*Case, error)
	FindAllByUser(ctx context.Context, userID uint) ([]*Case, error)
	ExistsForUser(ctx context.Context, id uint, userID uint) (bool, error)
}

// AttachmentRepository persists attachment metadata for a case.
type AttachmentRepository interface {
	Save(ctx context.Context, a *Attachment) error
	FindByCase(ctx context.Context, caseID uint) ([]*Attachment, error)
}
