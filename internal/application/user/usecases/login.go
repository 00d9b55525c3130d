package usecases

import (
	"context"

	"casefile/internal/domain/user"
	"casefile/internal/shared/errors"
	"casefile/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	User      *user.User
	Token     string
	ExpiresIn int64
}

type LoginUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	tokenService   TokenService
	logger         logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	tokenService TokenService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		tokenService:   tokenService,
		logger:         logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	existingUser, err := uc.userRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		// Unknown email and bad password must be indistinguishable.
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("invalid email or password")
		}
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, errors.NewInternalError("failed to get user")
	}

	if err := existingUser.VerifyPassword(cmd.Password, uc.passwordHasher); err != nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	token, err := uc.tokenService.Generate(existingUser.ID(), existingUser.Email().String())
	if err != nil {
		uc.logger.Errorw("failed to generate token", "error", err, "user_id", existingUser.ID())
		return nil, errors.NewInternalError("failed to generate token")
	}

	uc.logger.Infow("user logged in successfully", "user_id", existingUser.ID())

	return &LoginResult{
		User:      existingUser,
		Token:     token,
		ExpiresIn: int64(uc.tokenService.TokenExpHours()) * 3600,
	}, nil
}
