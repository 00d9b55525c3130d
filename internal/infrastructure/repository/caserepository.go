package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"casefile/internal/domain/cases"
	"casefile/internal/infrastructure/persistence/mappers"
	"casefile/internal/infrastructure/persistence/models"
	"casefile/internal/shared/db"
	apperrors "casefile/internal/shared/errors"
)

type CaseRepository struct {
	db     *gorm.DB
	mapper mappers.CaseMapper
}

func NewCaseRepository(database *gorm.DB) *CaseRepository {
	return &CaseRepository{
		db:     database,
		mapper: mappers.NewCaseMapper(),
	}
}

func (r *CaseRepository) Save(ctx context.Context, c *cases.Case) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save case: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *CaseRepository) SaveRespondent(ctx context.Context, respondent *cases.Respondent) error {
	model := r.mapper.RespondentToModel(respondent)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save respondent: %w", err)
	}

	if err := respondent.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *CaseRepository) Update(ctx context.Context, c *cases.Case) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.CaseModel{}).
		Where("id = ? AND user_id = ?", model.ID, model.UserID).
		Updates(map[string]interface{}{
			"description": model.Description,
			"status":      model.Status,
			"updated_at":  model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update case: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

// Delete removes a case row. It is idempotent: deleting an already-deleted
// case is not an error, so the compensation path can retry safely.
func (r *CaseRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Delete(&models.CaseModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete case: %w", err)
	}

	return nil
}

func (r *CaseRepository) FindByID(ctx context.Context, id uint, userID uint) (*cases.Case, error) {
	var model models.CaseModel
	tx := db.GetTxFromContext(ctx, r.db)

	// Ownership and existence are indistinguishable to the caller: a case
	// owned by someone else reads as not found.
	if err := tx.
		Where("id = ? AND user_id = ?", id, userID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("case not found")
		}
		return nil, fmt.Errorf("failed to find case: %w", err)
	}

	c, err := r.mapper.ToDomain(&model)
	if err != nil {
		return nil, err
	}

	if err := r.loadAssociations(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (r *CaseRepository) FindAllByUser(ctx context.Context, userID uint) ([]*cases.Case, error) {
	var caseModels []models.CaseModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&caseModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}

	result := make([]*cases.Case, 0, len(caseModels))
	for i := range caseModels {
		c, err := r.mapper.ToDomain(&caseModels[i])
		if err != nil {
			return nil, err
		}
		if err := r.loadAssociations(ctx, c); err != nil {
			return nil, err
		}
		result = append(result, c)
	}

	return result, nil
}

func (r *CaseRepository) ExistsForUser(ctx context.Context, id uint, userID uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.CaseModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check case existence: %w", err)
	}

	return count > 0, nil
}

// loadAssociations attaches the respondent and attachments to a case.
func (r *CaseRepository) loadAssociations(ctx context.Context, c *cases.Case) error {
	tx := db.GetTxFromContext(ctx, r.db)

	var respondentModel models.RespondentModel
	err := tx.Where("case_id = ?", c.ID()).First(&respondentModel).Error
	if err == nil {
		respondent, mapErr := r.mapper.RespondentToDomain(&respondentModel)
		if mapErr != nil {
			return mapErr
		}
		if attachErr := c.AttachRespondent(respondent); attachErr != nil {
			return attachErr
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to load respondent: %w", err)
	}

	var attachmentModels []models.AttachmentModel
	if err := tx.
		Where("case_id = ?", c.ID()).
		Order("created_at ASC").
		Find(&attachmentModels).Error; err != nil {
		return fmt.Errorf("failed to load attachments: %w", err)
	}

	for i := range attachmentModels {
		attachment, err := r.mapper.AttachmentToDomain(&attachmentModels[i])
		if err != nil {
			return err
		}
		if err := c.AddAttachment(attachment); err != nil {
			return err
		}
	}

	return nil
}
