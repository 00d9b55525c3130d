// Package user contains the User aggregate and its invariants: a unique
// email identity with a bcrypt password hash that is never exposed outside
// the domain.
package user

import (
	"fmt"
	"time"

	"casefile/internal/shared/biztime"

	vo "casefile/internal/domain/user/valueobjects"
)

// PasswordHasher abstracts the adaptive hash used for credentials.
// Verify must be resistant to timing side-channels.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

type User struct {
	id               uint
	email            *vo.Email
	passwordHash     string
	displayName      string
	profileCompleted bool
	createdAt        time.Time
	updatedAt        time.Time
}

func NewUser(email *vo.Email) (*User, error) {
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}

	now := biztime.NowUTC()
	return &User{
		email:     email,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructUser(
	id uint,
	email *vo.Email,
	passwordHash string,
	displayName string,
	profileCompleted bool,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	return &User{
		id:               id,
		email:            email,
		passwordHash:     passwordHash,
		displayName:      displayName,
		profileCompleted: profileCompleted,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Email() *vo.Email {
	return u.email
}

// PasswordHash returns the stored hash. It is only read by the persistence
// mapper; handlers must never serialize it.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) DisplayName() string {
	return u.displayName
}

func (u *User) ProfileCompleted() bool {
	return u.profileCompleted
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// SetPassword hashes and stores the given password. The plaintext is never
// retained on the aggregate.
func (u *User) SetPassword(password *vo.Password, hasher PasswordHasher) error {
	if password == nil {
		return fmt.Errorf("password is required")
	}
	if hasher == nil {
		return fmt.Errorf("password hasher is required")
	}

	hash, err := hasher.Hash(password.String())
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	u.passwordHash = hash
	u.updatedAt = biztime.NowUTC()
	return nil
}

// VerifyPassword checks the supplied password against the stored hash.
func (u *User) VerifyPassword(password string, hasher PasswordHasher) error {
	if u.passwordHash == "" {
		return fmt.Errorf("no password set")
	}
	return hasher.Verify(password, u.passwordHash)
}

// CompleteProfile sets the display name and marks the profile as completed.
func (u *User) CompleteProfile(displayName string) error {
	if len(displayName) == 0 {
		return fmt.Errorf("display name is required")
	}
	if len(displayName) > 100 {
		return fmt.Errorf("display name cannot exceed 100 characters")
	}

	u.displayName = displayName
	u.profileCompleted = true
	u.updatedAt = biztime.NowUTC()
	return nil
}
