package usecases

import (
	"context"

	"casefile/internal/domain/cases"
	"casefile/internal/shared/errors"
	"casefile/internal/shared/logger"
)

type ListAttachmentsQuery struct {
	CaseID uint
	UserID uint
}

// AttachmentWithURL pairs attachment metadata with a short-lived download URL.
type AttachmentWithURL struct {
	Attachment  *cases.Attachment
	DownloadURL string
}

type ListAttachmentsUseCase struct {
	caseRepo       cases.Repository
	attachmentRepo cases.AttachmentRepository
	storage        ObjectStorage
	logger         logger.Interface
}

func NewListAttachmentsUseCase(
	caseRepo cases.Repository,
	attachmentRepo cases.AttachmentRepository,
	storage ObjectStorage,
	logger logger.Interface,
) *ListAttachmentsUseCase {
	return &ListAttachmentsUseCase{
		caseRepo:       caseRepo,
		attachmentRepo: attachmentRepo,
		storage:        storage,
		logger:         logger,
	}
}

func (uc *ListAttachmentsUseCase) Execute(ctx context.Context, query ListAttachmentsQuery) ([]AttachmentWithURL, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	exists, err := uc.caseRepo.ExistsForUser(ctx, query.CaseID, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to check case ownership", "error", err, "case_id", query.CaseID, "user_id", query.UserID)
		return nil, errors.NewInternalError("failed to check case")
	}
	if !exists {
		return nil, errors.NewNotFoundError("case not found")
	}

	attachments, err := uc.attachmentRepo.FindByCase(ctx, query.CaseID)
	if err != nil {
		uc.logger.Errorw("failed to list attachments", "error", err, "case_id", query.CaseID)
		return nil, errors.NewInternalError("failed to list attachments")
	}

	result := make([]AttachmentWithURL, 0, len(attachments))
	for _, attachment := range attachments {
		downloadURL, err := uc.storage.PresignGet(ctx, attachment.StorageKey())
		if err != nil {
			uc.logger.Warnw("failed to presign download, omitting URL",
				"error", err, "attachment_id", attachment.ID(), "key", attachment.StorageKey())
			downloadURL = ""
		}
		result = append(result, AttachmentWithURL{
			Attachment:  attachment,
			DownloadURL: downloadURL,
		})
	}

	return result, nil
}
