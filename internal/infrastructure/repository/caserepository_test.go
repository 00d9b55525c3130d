package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casefile/internal/domain/cases"
	vo "casefile/internal/domain/cases/valueobjects"
	"casefile/internal/shared/db"
	apperrors "casefile/internal/shared/errors"
)

func newTestCase(t *testing.T, userID uint, description string) *cases.Case {
	t.Helper()

	c, err := cases.NewCase(userID, description, vo.StatusPending)
	require.NoError(t, err)
	return c
}

func newTestRespondent(t *testing.T) *cases.Respondent {
	t.Helper()

	r, err := cases.NewRespondent("John", "", "Doe", "", "123 Main St", "Springfield", "IL", "62704")
	require.NoError(t, err)
	return r
}

func createCaseWithRespondent(t *testing.T, repo *CaseRepository, userID uint, description string) *cases.Case {
	t.Helper()
	ctx := context.Background()

	c := newTestCase(t, userID, description)
	require.NoError(t, repo.Save(ctx, c))

	r := newTestRespondent(t)
	require.NoError(t, r.BindToCase(c.ID()))
	require.NoError(t, repo.SaveRespondent(ctx, r))

	return c
}

func TestCaseRepository_SaveAndFind(t *testing.T) {
	database := setupTestDB(t)
	repo := NewCaseRepository(database)
	ctx := context.Background()

	created := createCaseWithRespondent(t, repo, 1, "Defective product delivered")

	found, err := repo.FindByID(ctx, created.ID(), 1)
	require.NoError(t, err)
	assert.Equal(t, created.ID(), found.ID())
	assert.Equal(t, "Defective product delivered", found.Description())
	assert.Equal(t, vo.StatusPending, found.Status())

	require.NotNil(t, found.Respondent())
	assert.Equal(t, "John Doe", found.Respondent().FullName())
	assert.Equal(t, created.ID(), found.Respondent().CaseID())
}

func TestCaseRepository_FindByID_ScopedToOwner(t *testing.T) {
	database := setupTestDB(t)
	repo := NewCaseRepository(database)
	ctx := context.Background()

	created := createCaseWithRespondent(t, repo, 1, "Owner one's case")

	_, err := repo.FindByID(ctx, created.ID(), 2)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err), "another user's case must read as not found")

	_, err = repo.FindByID(ctx, 9999, 1)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestCaseRepository_FindAllByUser(t *testing.T) {
	database := setupTestDB(t)
	repo := NewCaseRepository(database)
	ctx := context.Background()

	first := createCaseWithRespondent(t, repo, 1, "First case")
	time.Sleep(2 * time.Millisecond)
	second := createCaseWithRespondent(t, repo, 1, "Second case")
	createCaseWithRespondent(t, repo, 2, "Other user's case")

	result, err := repo.FindAllByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, result, 2)

	// Newest first.
	assert.Equal(t, second.ID(), result[0].ID())
	assert.Equal(t, first.ID(), result[1].ID())
	for _, c := range result {
		require.NotNil(t, c.Respondent())
	}
}

func TestCaseRepository_Update(t *testing.T) {
	database := setupTestDB(t)
	repo := NewCaseRepository(database)
	ctx := context.Background()

	created := createCaseWithRespondent(t, repo, 1, "Original description")

	require.NoError(t, created.UpdateDescription("Amended description"))
	require.NoError(t, created.ChangeStatus(vo.StatusResolved))
	require.NoError(t, repo.Update(ctx, created))

	found, err := repo.FindByID(ctx, created.ID(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Amended description", found.Description())
	assert.Equal(t, vo.StatusResolved, found.Status())
}

func TestCaseRepository_Delete_Idempotent(t *testing.T) {
	database := setupTestDB(t)
	repo := NewCaseRepository(database)
	ctx := context.Background()

	created := createCaseWithRespondent(t, repo, 1, "To be removed")

	require.NoError(t, repo.Delete(ctx, created.ID()))
	require.NoError(t, repo.Delete(ctx, created.ID()), "repeat delete must not error")

	_, err := repo.FindByID(ctx, created.ID(), 1)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestCaseRepository_ExistsForUser(t *testing.T) {
	database := setupTestDB(t)
	repo := NewCaseRepository(database)
	ctx := context.Background()

	created := createCaseWithRespondent(t, repo, 1, "Existence check")

	exists, err := repo.ExistsForUser(ctx, created.ID(), 1)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsForUser(ctx, created.ID(), 2)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCaseRepository_TransactionRollback(t *testing.T) {
	database := setupTestDB(t)
	repo := NewCaseRepository(database)
	txMgr := db.NewTransactionManager(database)
	ctx := context.Background()

	c := newTestCase(t, 1, "Rolled back case")
	err := txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := repo.Save(txCtx, c); err != nil {
			return err
		}
		r := newTestRespondent(t)
		if err := r.BindToCase(c.ID()); err != nil {
			return err
		}
		if err := repo.SaveRespondent(txCtx, r); err != nil {
			return err
		}
		// Second respondent for the same case trips the unique index.
		dup := newTestRespondent(t)
		if err := dup.BindToCase(c.ID()); err != nil {
			return err
		}
		return repo.SaveRespondent(txCtx, dup)
	})
	require.Error(t, err)

	// The whole transaction rolled back: the case row is gone too.
	exists, checkErr := repo.ExistsForUser(ctx, c.ID(), 1)
	require.NoError(t, checkErr)
	assert.False(t, exists)
}

func TestAttachmentRepository_SaveAndList(t *testing.T) {
	database := setupTestDB(t)
	caseRepo := NewCaseRepository(database)
	attachmentRepo := NewAttachmentRepository(database)
	ctx := context.Background()

	created := createCaseWithRespondent(t, caseRepo, 1, "Case with files")

	first, err := cases.NewAttachment(created.ID(), "receipt.pdf", "application/pdf", 2048, "cases/1/key-a")
	require.NoError(t, err)
	require.NoError(t, attachmentRepo.Save(ctx, first))
	assert.NotZero(t, first.ID())

	time.Sleep(2 * time.Millisecond)
	second, err := cases.NewAttachment(created.ID(), "photo.jpg", "image/jpeg", 4096, "cases/1/key-b")
	require.NoError(t, err)
	require.NoError(t, attachmentRepo.Save(ctx, second))

	listed, err := attachmentRepo.FindByCase(ctx, created.ID())
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "receipt.pdf", listed[0].FileName())

	// FindByID surfaces attachments on the aggregate as well.
	found, err := caseRepo.FindByID(ctx, created.ID(), 1)
	require.NoError(t, err)
	assert.Len(t, found.Attachments(), 2)
}
