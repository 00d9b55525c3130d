package usecases

import (
	"context"

	"casefile/internal/domain/user"
	vo "casefile/internal/domain/user/valueobjects"
	"casefile/internal/shared/errors"
	"casefile/internal/shared/logger"
)

type RegisterCommand struct {
	Email    string
	Password string
}

type RegisterResult struct {
	UserID uint
	Email  string
}

type RegisterUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	emailService   EmailService
	logger         logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	emailService EmailService,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		emailService:   emailService,
		logger:         logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	password, err := vo.NewPassword(cmd.Password)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to check email existence", "error", err)
		return nil, errors.NewInternalError("failed to check email availability")
	}
	if exists {
		return nil, errors.NewConflictError("email already registered")
	}

	newUser, err := user.NewUser(email)
	if err != nil {
		uc.logger.Errorw("failed to create user aggregate", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := newUser.SetPassword(password, uc.passwordHasher); err != nil {
		uc.logger.Errorw("failed to set password", "error", err)
		return nil, errors.NewInternalError("failed to process password")
	}

	// Create relies on the unique index as the final arbiter; the
	// ExistsByEmail check above only gives a friendlier fast path.
	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		if errors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to create user in database", "error", err)
		return nil, errors.NewInternalError("failed to create user")
	}

	if uc.emailService != nil {
		if err := uc.emailService.SendWelcomeEmail(email.String()); err != nil {
			uc.logger.Warnw("failed to send welcome email", "error", err, "email", email.String())
		}
	}

	uc.logger.Infow("user registered successfully", "user_id", newUser.ID(), "email", email.String())

	return &RegisterResult{
		UserID: newUser.ID(),
		Email:  email.String(),
	}, nil
}
