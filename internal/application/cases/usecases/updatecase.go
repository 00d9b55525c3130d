package usecases

import (
	"context"

	"casefile/internal/domain/cases"
	vo "casefile/internal/domain/cases/valueobjects"
	"casefile/internal/shared/errors"
	"casefile/internal/shared/logger"
)

// UpdateCaseCommand patches only the supplied fields; nil means "leave as is".
type UpdateCaseCommand struct {
	CaseID      uint
	UserID      uint
	Description *string
	Status      *string
}

type UpdateCaseUseCase struct {
	caseRepo cases.Repository
	logger   logger.Interface
}

func NewUpdateCaseUseCase(caseRepo cases.Repository, logger logger.Interface) *UpdateCaseUseCase {
	return &UpdateCaseUseCase{
		caseRepo: caseRepo,
		logger:   logger,
	}
}

func (uc *UpdateCaseUseCase) Execute(ctx context.Context, cmd UpdateCaseCommand) (*cases.Case, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if cmd.Description == nil && cmd.Status == nil {
		return nil, errors.NewValidationError("at least one of description or status must be provided")
	}

	// Ownership read first; not-owned and nonexistent look the same.
	existingCase, err := uc.caseRepo.FindByID(ctx, cmd.CaseID, cmd.UserID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get case", "error", err, "case_id", cmd.CaseID, "user_id", cmd.UserID)
		return nil, errors.NewInternalError("failed to get case")
	}

	if cmd.Description != nil {
		if err := existingCase.UpdateDescription(sanitizeDescription(*cmd.Description)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Status != nil {
		status := vo.NormalizeStatus(*cmd.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError("invalid status: " + *cmd.Status)
		}
		if err := existingCase.ChangeStatus(status); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.caseRepo.Update(ctx, existingCase); err != nil {
		uc.logger.Errorw("failed to update case", "error", err, "case_id", cmd.CaseID)
		return nil, errors.NewInternalError("failed to update case")
	}

	uc.logger.Infow("case updated successfully", "case_id", existingCase.ID(), "user_id", cmd.UserID)

	return existingCase, nil
}
