package usecases

import (
	"context"

	"casefile/internal/domain/user"
	"casefile/internal/shared/errors"
	"casefile/internal/shared/logger"
)

type GetUserQuery struct {
	UserID uint
}

type GetUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.Repository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, query GetUserQuery) (*user.User, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	existingUser, err := uc.userRepo.FindByID(ctx, query.UserID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get user", "error", err, "user_id", query.UserID)
		return nil, errors.NewInternalError("failed to get user")
	}

	return existingUser, nil
}
