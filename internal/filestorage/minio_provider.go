package filestorage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/soundvault/soundvault/internal/usecase"
)

// Config carries the object store settings. PublicBaseURL is the
// prefix derived file URLs are built from; when empty the client
// endpoint and bucket are used.
type Config struct {
	Bucket          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	UseSSL          bool
	PublicBaseURL   string
}

func NewMinIOStorage(cfg Config) (*MinIOStorage, error) {
	m, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	return &MinIOStorage{client: m, cfg: cfg}, nil
}

// implements usecase.BlobStorage
type MinIOStorage struct {
	client *minio.Client
	cfg    Config
}

// EnsureBucket creates the bucket if absent. Existence is checked on
// every call; nothing is cached between calls.
func (f *MinIOStorage) EnsureBucket(ctx context.Context) error {
	exists, err := f.client.BucketExists(ctx, f.cfg.Bucket)
	if err != nil {
		return fmt.Errorf("%w: bucket check: %v", usecase.ErrStorageWrite, err)
	}
	if exists {
		return nil
	}
	if err := f.client.MakeBucket(ctx, f.cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("%w: make bucket: %v", usecase.ErrStorageWrite, err)
	}
	log.Printf("[FileStorage] created bucket %q", f.cfg.Bucket)
	return nil
}

func (f *MinIOStorage) Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	_, err := f.client.PutObject(ctx, f.cfg.Bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("%w: put %q: %v", usecase.ErrStorageWrite, key, err)
	}
	return nil
}

func (f *MinIOStorage) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	obj, err := f.client.GetObject(ctx, f.cfg.Bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("%w: get %q: %v", usecase.ErrStorageRead, key, err)
	}
	// GetObject is lazy; Stat forces the first request so absence is
	// caught here.
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		var resp minio.ErrorResponse
		if errors.As(err, &resp) && resp.Code == "NoSuchKey" {
			return nil, fmt.Errorf("%w: %q", usecase.ErrStorageNotFound, key)
		}
		return nil, fmt.Errorf("%w: stat %q: %v", usecase.ErrStorageRead, key, err)
	}
	return obj, nil
}

// Remove deletes the object. Removing an absent key is not an error.
func (f *MinIOStorage) Remove(ctx context.Context, key string) error {
	err := f.client.RemoveObject(ctx, f.cfg.Bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		var resp minio.ErrorResponse
		if errors.As(err, &resp) && resp.Code == "NoSuchKey" {
			return nil
		}
		return fmt.Errorf("%w: remove %q: %v", usecase.ErrStorageWrite, key, err)
	}
	return nil
}

func (f *MinIOStorage) ListObjects(ctx context.Context) ([]usecase.BlobObject, error) {
	var objects []usecase.BlobObject
	for obj := range f.client.ListObjects(ctx, f.cfg.Bucket, minio.ListObjectsOptions{Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("%w: list: %v", usecase.ErrStorageRead, obj.Err)
		}
		objects = append(objects, usecase.BlobObject{
			Key:          obj.Key,
			LastModified: obj.LastModified,
		})
	}
	return objects, nil
}

func (f *MinIOStorage) ObjectURL(key string) string {
	if f.cfg.PublicBaseURL != "" {
		return fmt.Sprintf("%s/%s", f.cfg.PublicBaseURL, key)
	}
	return fmt.Sprintf("%s/%s/%s", f.client.EndpointURL(), f.cfg.Bucket, key)
}
