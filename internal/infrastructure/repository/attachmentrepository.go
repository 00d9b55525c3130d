package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"casefile/internal/domain/cases"
	"casefile/internal/infrastructure/persistence/mappers"
	"casefile/internal/infrastructure/persistence/models"
	"casefile/internal/shared/db"
)

type AttachmentRepository struct {
	db     *gorm.DB
	mapper mappers.CaseMapper
}

func NewAttachmentRepository(database *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{
		db:     database,
		mapper: mappers.NewCaseMapper(),
	}
}

func (r *AttachmentRepository) Save(ctx context.Context, a *cases.Attachment) error {
	model := r.mapper.AttachmentToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save attachment: %w", err)
	}

	if err := a.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *AttachmentRepository) FindByCase(ctx context.Context, caseID uint) ([]*cases.Attachment, error) {
	var attachmentModels []models.AttachmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("case_id = ?", caseID).
		Order("created_at ASC").
		Find(&attachmentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}

	result := make([]*cases.Attachment, 0, len(attachmentModels))
	for i := range attachmentModels {
		attachment, err := r.mapper.AttachmentToDomain(&attachmentModels[i])
		if err != nil {
			return nil, err
		}
		result = append(result, attachment)
	}

	return result, nil
}
