package mappers

import (
	"fmt"
	"time"

	"casefile/internal/domain/cases"
	vo "casefile/internal/domain/cases/valueobjects"
	"casefile/internal/infrastructure/persistence/models"
)

// CaseMapper handles the conversion between Case domain entities and persistence models.
type CaseMapper interface {
	ToModel(c *cases.Case) *models.CaseModel
	ToDomain(model *models.CaseModel) (*cases.Case, error)

	RespondentToModel(r *cases.Respondent) *models.RespondentModel
	RespondentToDomain(model *models.RespondentModel) (*cases.Respondent, error)

	AttachmentToModel(a *cases.Attachment) *models.AttachmentModel
	AttachmentToDomain(model *models.AttachmentModel) (*cases.Attachment, error)
}

type CaseMapperImpl struct{}

func NewCaseMapper() CaseMapper {
	return &CaseMapperImpl{}
}

func (m *CaseMapperImpl) ToModel(c *cases.Case) *models.CaseModel {
	return &models.CaseModel{
		ID:          c.ID(),
		UserID:      c.UserID(),
		Description: c.Description(),
		Status:      c.Status().String(),
		CreatedAt:   c.CreatedAt().UnixMilli(),
		UpdatedAt:   c.UpdatedAt().UnixMilli(),
	}
}

func (m *CaseMapperImpl) ToDomain(model *models.CaseModel) (*cases.Case, error) {
	c, err := cases.ReconstructCase(
		model.ID,
		model.UserID,
		model.Description,
		vo.Status(model.Status),
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct case: %w", err)
	}

	return c, nil
}

func (m *CaseMapperImpl) RespondentToModel(r *cases.Respondent) *models.RespondentModel {
	return &models.RespondentModel{
		ID:         r.ID(),
		CaseID:     r.CaseID(),
		FirstName:  r.FirstName(),
		MiddleName: r.MiddleName(),
		LastName:   r.LastName(),
		Suffix:     r.Suffix(),
		Street:     r.Street(),
		City:       r.City(),
		State:      r.State(),
		PostalCode: r.PostalCode(),
		CreatedAt:  r.CreatedAt().UnixMilli(),
	}
}

func (m *CaseMapperImpl) RespondentToDomain(model *models.RespondentModel) (*cases.Respondent, error) {
	r, err := cases.ReconstructRespondent(
		model.ID,
		model.CaseID,
		model.FirstName,
		model.MiddleName,
		model.LastName,
		model.Suffix,
		model.Street,
		model.City,
		model.State,
		model.PostalCode,
		time.UnixMilli(model.CreatedAt).UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct respondent: %w", err)
	}

	return r, nil
}

func (m *CaseMapperImpl) AttachmentToModel(a *cases.Attachment) *models.AttachmentModel {
	return &models.AttachmentModel{
		ID:          a.ID(),
		CaseID:      a.CaseID(),
		FileName:    a.FileName(),
		ContentType: a.ContentType(),
		SizeBytes:   a.SizeBytes(),
		StorageKey:  a.StorageKey(),
		CreatedAt:   a.CreatedAt().UnixMilli(),
	}
}

func (m *CaseMapperImpl) AttachmentToDomain(model *models.AttachmentModel) (*cases.Attachment, error) {
	a, err := cases.ReconstructAttachment(
		model.ID,
		model.CaseID,
		model.FileName,
		model.ContentType,
		model.SizeBytes,
		model.StorageKey,
		time.UnixMilli(model.CreatedAt).UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct attachment: %w", err)
	}

	return a, nil
}
