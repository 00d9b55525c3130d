package usecases

import (
	"context"
	"fmt"

	"casefile/internal/domain/cases"
	"casefile/internal/shared/logger"
)

type mockCaseRepository struct {
	SaveFunc           func(ctx context.Context, c *cases.Case) error
	SaveRespondentFunc func(ctx context.Context, r *cases.Respondent) error
	UpdateFunc         func(ctx context.Context, c *cases.Case) error
	DeleteFunc         func(ctx context.Context, id uint) error
	FindByIDFunc       func(ctx context.Context, id uint, userID uint) (*cases.Case, error)
	FindAllByUserFunc  func(ctx context.Context, userID uint) ([]*cases.Case, error)
	ExistsForUserFunc  func(ctx context.Context, id uint, userID uint) (bool, error)
}

func (m *mockCaseRepository) Save(ctx context.Context, c *cases.Case) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockCaseRepository) SaveRespondent(ctx context.Context, r *cases.Respondent) error {
	if m.SaveRespondentFunc != nil {
		return m.SaveRespondentFunc(ctx, r)
	}
	return nil
}

func (m *mockCaseRepository) Update(ctx context.Context, c *cases.Case) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCaseRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockCaseRepository) FindByID(ctx context.Context, id uint, userID uint) (*cases.Case, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id, userID)
	}
	return nil, nil
}

func (m *mockCaseRepository) FindAllByUser(ctx context.Context, userID uint) ([]*cases.Case, error) {
	if m.FindAllByUserFunc != nil {
		return m.FindAllByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockCaseRepository) ExistsForUser(ctx context.Context, id uint, userID uint) (bool, error) {
	if m.ExistsForUserFunc != nil {
		return m.ExistsForUserFunc(ctx, id, userID)
	}
	return false, nil
}

type mockAttachmentRepository struct {
	SaveFunc       func(ctx context.Context, a *cases.Attachment) error
	FindByCaseFunc func(ctx context.Context, caseID uint) ([]*cases.Attachment, error)
}

func (m *mockAttachmentRepository) Save(ctx context.Context, a *cases.Attachment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockAttachmentRepository) FindByCase(ctx context.Context, caseID uint) ([]*cases.Attachment, error) {
	if m.FindByCaseFunc != nil {
		return m.FindByCaseFunc(ctx, caseID)
	}
	return nil, nil
}

type mockObjectStorage struct {
	NewKeyFunc     func(caseID uint) string
	PresignPutFunc func(ctx context.Context, key string) (string, error)
	PresignGetFunc func(ctx context.Context, key string) (string, error)
}

func (m *mockObjectStorage) NewKey(caseID uint) string {
	if m.NewKeyFunc != nil {
		return m.NewKeyFunc(caseID)
	}
	return fmt.Sprintf("cases/%d/key", caseID)
}

func (m *mockObjectStorage) PresignPut(ctx context.Context, key string) (string, error) {
	if m.PresignPutFunc != nil {
		return m.PresignPutFunc(ctx, key)
	}
	return "https://bucket.example.com/put/" + key, nil
}

func (m *mockObjectStorage) PresignGet(ctx context.Context, key string) (string, error) {
	if m.PresignGetFunc != nil {
		return m.PresignGetFunc(ctx, key)
	}
	return "https://bucket.example.com/get/" + key, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any) {}

func (m *mockLogger) Info(msg string, args ...any) {}

func (m *mockLogger) Warn(msg string, args ...any) {}

func (m *mockLogger) Error(msg string, args ...any) {}

func (m *mockLogger) With(args ...any) logger.Interface { return m }

func (m *mockLogger) Named(name string) logger.Interface { return m }

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
