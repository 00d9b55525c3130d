package usecases

import (
	"context"

	"casefile/internal/domain/user"
	"casefile/internal/shared/errors"
	"casefile/internal/shared/logger"
)

type CompleteProfileCommand struct {
	UserID      uint
	DisplayName string
}

type CompleteProfileUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewCompleteProfileUseCase(userRepo user.Repository, logger logger.Interface) *CompleteProfileUseCase {
	return &CompleteProfileUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *CompleteProfileUseCase) Execute(ctx context.Context, cmd CompleteProfileCommand) (*user.User, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	existingUser, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get user", "error", err, "user_id", cmd.UserID)
		return nil, errors.NewInternalError("failed to get user")
	}

	if err := existingUser.CompleteProfile(cmd.DisplayName); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, existingUser); err != nil {
		uc.logger.Errorw("failed to update user profile", "error", err, "user_id", cmd.UserID)
		return nil, errors.NewInternalError("failed to update profile")
	}

	uc.logger.Infow("profile completed", "user_id", existingUser.ID())

	return existingUser, nil
}
