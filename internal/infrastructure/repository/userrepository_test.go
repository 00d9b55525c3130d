package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"casefile/internal/domain/user"
	vo "casefile/internal/domain/user/valueobjects"
	"casefile/internal/infrastructure/persistence/models"
	apperrors "casefile/internal/shared/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = database.AutoMigrate(
		&models.UserModel{},
		&models.CaseModel{},
		&models.RespondentModel{},
		&models.AttachmentModel{},
	)
	require.NoError(t, err)

	return database
}

func newTestUser(t *testing.T, email string) *user.User {
	t.Helper()

	emailVO, err := vo.NewEmail(email)
	require.NoError(t, err)

	u, err := user.NewUser(emailVO)
	require.NoError(t, err)

	password, err := vo.NewPassword("pw1")
	require.NoError(t, err)
	err = u.SetPassword(password, fakeHasher{})
	require.NoError(t, err)

	return u
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (fakeHasher) Verify(password, hash string) error   { return nil }

func TestUserRepository_Create(t *testing.T) {
	database := setupTestDB(t)
	repo := NewUserRepository(database)
	ctx := context.Background()

	t.Run("create assigns an ID", func(t *testing.T) {
		u := newTestUser(t, "alice@example.com")

		err := repo.Create(ctx, u)
		require.NoError(t, err)
		assert.NotZero(t, u.ID())
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		first := newTestUser(t, "dup@example.com")
		require.NoError(t, repo.Create(ctx, first))

		second := newTestUser(t, "dup@example.com")
		err := repo.Create(ctx, second)
		require.Error(t, err)
		assert.True(t, apperrors.IsConflictError(err))
	})
}

func TestUserRepository_FindByEmail(t *testing.T) {
	database := setupTestDB(t)
	repo := NewUserRepository(database)
	ctx := context.Background()

	created := newTestUser(t, "bob@example.com")
	require.NoError(t, repo.Create(ctx, created))

	t.Run("found", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "bob@example.com")
		require.NoError(t, err)
		assert.Equal(t, created.ID(), found.ID())
		assert.Equal(t, "hashed:pw1", found.PasswordHash())
	})

	t.Run("unknown email is not found", func(t *testing.T) {
		_, err := repo.FindByEmail(ctx, "nobody@example.com")
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestUserRepository_Update(t *testing.T) {
	database := setupTestDB(t)
	repo := NewUserRepository(database)
	ctx := context.Background()

	created := newTestUser(t, "carol@example.com")
	require.NoError(t, repo.Create(ctx, created))

	require.NoError(t, created.CompleteProfile("Carol C."))
	require.NoError(t, repo.Update(ctx, created))

	found, err := repo.FindByID(ctx, created.ID())
	require.NoError(t, err)
	assert.Equal(t, "Carol C.", found.DisplayName())
	assert.True(t, found.ProfileCompleted())
}

func TestUserRepository_ExistsByEmail(t *testing.T) {
	database := setupTestDB(t)
	repo := NewUserRepository(database)
	ctx := context.Background()

	created := newTestUser(t, "dave@example.com")
	require.NoError(t, repo.Create(ctx, created))

	exists, err := repo.ExistsByEmail(ctx, "dave@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}
