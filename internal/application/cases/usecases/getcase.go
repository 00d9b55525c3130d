package usecases

import (
	"context"

	"casefile/internal/domain/cases"
	"casefile/internal/shared/errors"
	"casefile/internal/shared/logger"
)

type GetCaseQuery struct {
	CaseID uint
	UserID uint
}

type GetCaseUseCase struct {
	caseRepo cases.Repository
	logger   logger.Interface
}

func NewGetCaseUseCase(caseRepo cases.Repository, logger logger.Interface) *GetCaseUseCase {
	return &GetCaseUseCase{
		caseRepo: caseRepo,
		logger:   logger,
	}
}

func (uc *GetCaseUseCase) Execute(ctx context.Context, query GetCaseQuery) (*cases.Case, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	foundCase, err := uc.caseRepo.FindByID(ctx, query.CaseID, query.UserID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get case", "error", err, "case_id", query.CaseID, "user_id", query.UserID)
		return nil, errors.NewInternalError("failed to get case")
	}

	return foundCase, nil
}
