package usecases

import (
	"context"

	"casefile/internal/domain/cases"
)

type CreateCaseExecutor interface {
	Execute(ctx context.Context, cmd CreateCaseCommand) (*cases.Case, error)
}

type UpdateCaseExecutor interface {
	Execute(ctx context.Context, cmd UpdateCaseCommand) (*cases.Case, error)
}

type GetCaseExecutor interface {
	Execute(ctx context.Context, query GetCaseQuery) (*cases.Case, error)
}

type ListCasesExecutor interface {
	Execute(ctx context.Context, query ListCasesQuery) ([]*cases.Case, error)
}

type AddAttachmentExecutor interface {
	Execute(ctx context.Context, cmd AddAttachmentCommand) (*AddAttachmentResult, error)
}

type ListAttachmentsExecutor interface {
	Execute(ctx context.Context, query ListAttachmentsQuery) ([]AttachmentWithURL, error)
}

// ObjectStorage presigns direct-to-bucket upload and download URLs for
// attachment payloads. The API server never proxies file bytes.
type ObjectStorage interface {
	NewKey(caseID uint) string
	PresignPut(ctx context.Context, key string) (string, error)
	PresignGet(ctx context.Context, key string) (string, error)
}
