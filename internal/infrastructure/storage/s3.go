// Package storage provides presigned access to the object store holding
// case attachment files. The server never proxies file bytes; clients
// upload and download directly against short-lived presigned URLs.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"casefile/internal/shared/config"
)

type S3Storage struct {
	cfg config.StorageConfig
}

func NewS3Storage(cfg config.StorageConfig) *S3Storage {
	return &S3Storage{cfg: cfg}
}

// NewStorageKey generates a collision-free object key for a case attachment.
func NewStorageKey(caseID uint) string {
	return fmt.Sprintf("cases/%d/%s", caseID, uuid.New())
}

func (s *S3Storage) NewKey(caseID uint) string {
	return NewStorageKey(caseID)
}

func (s *S3Storage) presignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(s.cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.cfg.AccessKeyID,
			s.cfg.SecretAccessKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("failed to load storage config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if s.cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(s.cfg.Endpoint)
		}
		o.UsePathStyle = true
	})

	return s3.NewPresignClient(client), nil
}

func (s *S3Storage) expiry() time.Duration {
	minutes := s.cfg.PresignExpiryMinutes
	if minutes <= 0 {
		minutes = 15
	}
	return time.Duration(minutes) * time.Minute
}

// PresignPut returns a URL the client can PUT the attachment bytes to.
func (s *S3Storage) PresignPut(ctx context.Context, key string) (string, error) {
	client, err := s.presignClient(ctx)
	if err != nil {
		return "", err
	}

	req, err := client.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.expiry()))
	if err != nil {
		return "", fmt.Errorf("failed to presign upload: %w", err)
	}

	return req.URL, nil
}

// PresignGet returns a URL the client can GET the attachment bytes from.
func (s *S3Storage) PresignGet(ctx context.Context, key string) (string, error) {
	client, err := s.presignClient(ctx)
	if err != nil {
		return "", err
	}

	req, err := client.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.expiry()))
	if err != nil {
		return "", fmt.Errorf("failed to presign download: %w", err)
	}

	return req.URL, nil
}
