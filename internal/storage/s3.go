package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/devansh21640/Kanoonwise-sub002/internal/config"
)

// Store wraps the S3 client with the upload policy the product wants:
// bounded retry on put/delete, presigned GETs for downloads, and best-effort
// cleanup of replaced files.
type Store struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
	log     *zap.Logger
}

func New(cfg *config.Config, log *zap.Logger) *Store {
	client := s3.New(s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	})

	return &Store{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  cfg.S3Bucket,
		log:     log,
	}
}

// NewKey builds an object key under the given prefix, keeping the original
// extension.
func NewKey(prefix, filename string) string {
	return fmt.Sprintf("%s/%s%s", prefix, uuid.New().String(), path.Ext(filename))
}

func (s *Store) Put(ctx context.Context, key string, data []byte, contentType string) error {
	return withRetry(ctx, func() error {
		_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(s.bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(data),
			ContentType: aws.String(contentType),
		})
		return err
	})
}

func (s *Store) Delete(ctx context.Context, key string) error {
	return withRetry(ctx, func() error {
		_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(key),
		})
		return err
	})
}

// DeleteAsync removes a stale object after its replacement uploaded fine.
// Failures are logged and forgotten.
func (s *Store) DeleteAsync(key string) {
	if key == "" {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.Delete(ctx, key); err != nil {
			s.log.Warn("stale file cleanup failed", zap.String("key", key), zap.Error(err))
		}
	}()
}

func (s *Store) SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	out, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", err
	}

	return out.URL, nil
}
