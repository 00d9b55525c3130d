package usecases

import (
	"context"

	"casefile/internal/domain/user"
)

type RegisterExecutor interface {
	Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type GetUserExecutor interface {
	Execute(ctx context.Context, query GetUserQuery) (*user.User, error)
}

type CompleteProfileExecutor interface {
	Execute(ctx context.Context, cmd CompleteProfileCommand) (*user.User, error)
}

// TokenService issues signed bearer tokens for authenticated users.
type TokenService interface {
	Generate(userID uint, email string) (string, error)
	TokenExpHours() int
}

// EmailService sends account lifecycle email. Delivery failures are logged
// and never fail the calling use case.
type EmailService interface {
	SendWelcomeEmail(to string) error
}
