package usecases

import (
	"context"

	"casefile/internal/domain/cases"
	"casefile/internal/shared/errors"
	"casefile/internal/shared/logger"
)

type ListCasesQuery struct {
	UserID uint
}

type ListCasesUseCase struct {
	caseRepo cases.Repository
	logger   logger.Interface
}

func NewListCasesUseCase(caseRepo cases.Repository, logger logger.Interface) *ListCasesUseCase {
	return &ListCasesUseCase{
		caseRepo: caseRepo,
		logger:   logger,
	}
}

func (uc *ListCasesUseCase) Execute(ctx context.Context, query ListCasesQuery) ([]*cases.Case, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	userCases, err := uc.caseRepo.FindAllByUser(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to list cases", "error", err, "user_id", query.UserID)
		return nil, errors.NewInternalError("failed to list cases")
	}

	return userCases, nil
}
