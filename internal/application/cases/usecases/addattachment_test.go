package usecases

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casefile/internal/domain/cases"
	"casefile/internal/shared/errors"
)

func TestAddAttachmentUseCase_Execute_Success(t *testing.T) {
	var savedAttachment *cases.Attachment
	mockRepo := &mockCaseRepository{
		ExistsForUserFunc: func(ctx context.Context, id uint, userID uint) (bool, error) {
			assert.Equal(t, uint(10), id)
			assert.Equal(t, uint(1), userID)
			return true, nil
		},
	}
	mockAttachments := &mockAttachmentRepository{
		SaveFunc: func(ctx context.Context, a *cases.Attachment) error {
			if err := a.SetID(55); err != nil {
				return err
			}
			savedAttachment = a
			return nil
		},
	}
	mockStorage := &mockObjectStorage{
		NewKeyFunc: func(caseID uint) string {
			return "cases/10/generated-key"
		},
		PresignPutFunc: func(ctx context.Context, key string) (string, error) {
			assert.Equal(t, "cases/10/generated-key", key)
			return "https://bucket.example.com/upload", nil
		},
	}

	useCase := NewAddAttachmentUseCase(mockRepo, mockAttachments, mockStorage, &mockLogger{})
	result, err := useCase.Execute(context.Background(), AddAttachmentCommand{
		CaseID:      10,
		UserID:      1,
		FileName:    "receipt.pdf",
		ContentType: "application/pdf",
		SizeBytes:   2048,
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "https://bucket.example.com/upload", result.UploadURL)
	assert.Equal(t, uint(55), result.Attachment.ID())
	assert.Equal(t, "cases/10/generated-key", result.Attachment.StorageKey())

	require.NotNil(t, savedAttachment)
	assert.Equal(t, "receipt.pdf", savedAttachment.FileName())
}

func TestAddAttachmentUseCase_Execute_CaseNotOwned(t *testing.T) {
	mockRepo := &mockCaseRepository{
		ExistsForUserFunc: func(ctx context.Context, id uint, userID uint) (bool, error) {
			return false, nil
		},
	}
	saved := false
	mockAttachments := &mockAttachmentRepository{
		SaveFunc: func(ctx context.Context, a *cases.Attachment) error {
			saved = true
			return nil
		},
	}

	useCase := NewAddAttachmentUseCase(mockRepo, mockAttachments, &mockObjectStorage{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), AddAttachmentCommand{
		CaseID:   10,
		UserID:   2,
		FileName: "receipt.pdf",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
	assert.False(t, saved)
}

func TestAddAttachmentUseCase_Execute_PresignFailure(t *testing.T) {
	mockRepo := &mockCaseRepository{
		ExistsForUserFunc: func(ctx context.Context, id uint, userID uint) (bool, error) {
			return true, nil
		},
	}
	mockStorage := &mockObjectStorage{
		PresignPutFunc: func(ctx context.Context, key string) (string, error) {
			return "", stderrors.New("storage unreachable")
		},
	}

	useCase := NewAddAttachmentUseCase(mockRepo, &mockAttachmentRepository{}, mockStorage, &mockLogger{})
	result, err := useCase.Execute(context.Background(), AddAttachmentCommand{
		CaseID:   10,
		UserID:   1,
		FileName: "receipt.pdf",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeInternal, appErr.Type)
}

func TestListAttachmentsUseCase_Execute(t *testing.T) {
	now := time.Now().UTC()
	first, err := cases.ReconstructAttachment(1, 10, "receipt.pdf", "application/pdf", 2048, "cases/10/key-a", now)
	require.NoError(t, err)
	second, err := cases.ReconstructAttachment(2, 10, "photo.jpg", "image/jpeg", 4096, "cases/10/key-b", now)
	require.NoError(t, err)

	mockRepo := &mockCaseRepository{
		ExistsForUserFunc: func(ctx context.Context, id uint, userID uint) (bool, error) {
			return true, nil
		},
	}
	mockAttachments := &mockAttachmentRepository{
		FindByCaseFunc: func(ctx context.Context, caseID uint) ([]*cases.Attachment, error) {
			return []*cases.Attachment{first, second}, nil
		},
	}

	useCase := NewListAttachmentsUseCase(mockRepo, mockAttachments, &mockObjectStorage{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListAttachmentsQuery{CaseID: 10, UserID: 1})

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "receipt.pdf", result[0].Attachment.FileName())
	assert.Equal(t, "https://bucket.example.com/get/cases/10/key-a", result[0].DownloadURL)
}

func TestListAttachmentsUseCase_Execute_CaseNotOwned(t *testing.T) {
	mockRepo := &mockCaseRepository{
		ExistsForUserFunc: func(ctx context.Context, id uint, userID uint) (bool, error) {
			return false, nil
		},
	}

	useCase := NewListAttachmentsUseCase(mockRepo, &mockAttachmentRepository{}, &mockObjectStorage{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListAttachmentsQuery{CaseID: 10, UserID: 2})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
}
