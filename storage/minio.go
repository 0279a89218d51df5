package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"audiokit/config"
	"audiokit/logger"
)

// Store reads artwork objects from a MinIO bucket. Items with a file source
// type keep their artwork alongside the media objects; Fetch satisfies the
// artwork package's Fetcher contract with object keys as URLs.
type Store struct {
	client *minio.Client
	bucket string
}

// NewStore connects to MinIO and ensures the configured bucket exists.
func NewStore(cfg *config.Config) (*Store, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
		Region: cfg.MinioRegion,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.MinioBucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{Region: cfg.MinioRegion}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
		logger.Info("created artwork bucket", logger.String("bucket", cfg.MinioBucket))
	}

	return &Store{client: client, bucket: cfg.MinioBucket}, nil
}

// Fetch reads the object at key in full.
func (s *Store) Fetch(ctx context.Context, key string) ([]byte, error) {
	object, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get object %q: %w", key, err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		return nil, fmt.Errorf("read object %q: %w", key, err)
	}

	logger.Debug("artwork object fetched",
		logger.String("bucket", s.bucket),
		logger.String("key", key),
		logger.Int("bytes", len(data)))

	return data, nil
}

// Put uploads artwork bytes, for producers that stage artwork next to media.
func (s *Store) Put(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("put object %q: %w", key, err)
	}
	return nil
}

// Ping verifies connectivity by checking the bucket.
func (s *Store) Ping(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("ping minio: %w", err)
	}
	if !exists {
		return fmt.Errorf("bucket %q does not exist", s.bucket)
	}
	return nil
}
