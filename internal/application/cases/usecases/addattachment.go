package usecases

import (
	"context"

	"casefile/internal/domain/cases"
	"casefile/internal/shared/errors"
	"casefile/internal/shared/logger"
)

type AddAttachmentCommand struct {
	CaseID      uint
	UserID      uint
	FileName    string
	ContentType string
	SizeBytes   int64
}

type AddAttachmentResult struct {
	Attachment *cases.Attachment
	UploadURL  string
}

type AddAttachmentUseCase struct {
	caseRepo       cases.Repository
	attachmentRepo cases.AttachmentRepository
	storage        ObjectStorage
	logger         logger.Interface
}

func NewAddAttachmentUseCase(
	caseRepo cases.Repository,
	attachmentRepo cases.AttachmentRepository,
	storage ObjectStorage,
	logger logger.Interface,
) *AddAttachmentUseCase {
	return &AddAttachmentUseCase{
		caseRepo:       caseRepo,
		attachmentRepo: attachmentRepo,
		storage:        storage,
		logger:         logger,
	}
}

func (uc *AddAttachmentUseCase) Execute(ctx context.Context, cmd AddAttachmentCommand) (*AddAttachmentResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	exists, err := uc.caseRepo.ExistsForUser(ctx, cmd.CaseID, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to check case ownership", "error", err, "case_id", cmd.CaseID, "user_id", cmd.UserID)
		return nil, errors.NewInternalError("failed to check case")
	}
	if !exists {
		return nil, errors.NewNotFoundError("case not found")
	}

	key := uc.storage.NewKey(cmd.CaseID)

	attachment, err := cases.NewAttachment(cmd.CaseID, cmd.FileName, cmd.ContentType, cmd.SizeBytes, key)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.attachmentRepo.Save(ctx, attachment); err != nil {
		uc.logger.Errorw("failed to save attachment", "error", err, "case_id", cmd.CaseID)
		return nil, errors.NewInternalError("failed to save attachment")
	}

	uploadURL, err := uc.storage.PresignPut(ctx, key)
	if err != nil {
		uc.logger.Errorw("failed to presign upload", "error", err, "case_id", cmd.CaseID, "key", key)
		return nil, errors.NewInternalError("failed to generate upload URL")
	}

	uc.logger.Infow("attachment registered", "attachment_id", attachment.ID(), "case_id", cmd.CaseID)

	return &AddAttachmentResult{
		Attachment: attachment,
		UploadURL:  uploadURL,
	}, nil
}
