package filestorage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/soundvault/soundvault/internal/usecase"
)

// S3Config carries the settings for the S3 backend. Credentials and
// region come from the default AWS config chain.
type S3Config struct {
	Bucket        string
	PublicBaseURL string
}

func NewS3Storage(ctx context.Context, cfg S3Config) (*S3Storage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	return &S3Storage{
		client: s3.NewFromConfig(awsCfg),
		region: awsCfg.Region,
		cfg:    cfg,
	}, nil
}

// implements usecase.BlobStorage
type S3Storage struct {
	client *s3.Client
	region string
	cfg    S3Config
}

// EnsureBucket creates the bucket if absent. Existence is checked on
// every call; nothing is cached between calls.
func (f *S3Storage) EnsureBucket(ctx context.Context) error {
	_, err := f.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(f.cfg.Bucket),
	})
	if err == nil {
		return nil
	}

	var notFound *types.NotFound
	if !errors.As(err, &notFound) {
		return fmt.Errorf("%w: bucket check: %v", usecase.ErrStorageWrite, err)
	}

	_, err = f.client.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(f.cfg.Bucket),
	})
	if err != nil {
		return fmt.Errorf("%w: create bucket: %v", usecase.ErrStorageWrite, err)
	}
	log.Printf("[FileStorage] created bucket %q", f.cfg.Bucket)
	return nil
}

func (f *S3Storage) Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	_, err := f.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(f.cfg.Bucket),
		Key:           aws.String(key),
		Body:          r,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("%w: put %q: %v", usecase.ErrStorageWrite, key, err)
	}
	return nil
}

func (f *S3Storage) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	out, err := f.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(f.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, fmt.Errorf("%w: %q", usecase.ErrStorageNotFound, key)
		}
		return nil, fmt.Errorf("%w: get %q: %v", usecase.ErrStorageRead, key, err)
	}
	return out.Body, nil
}

// Remove deletes the object. S3 delete of an absent key succeeds.
func (f *S3Storage) Remove(ctx context.Context, key string) error {
	_, err := f.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(f.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("%w: remove %q: %v", usecase.ErrStorageWrite, key, err)
	}
	return nil
}

func (f *S3Storage) ListObjects(ctx context.Context) ([]usecase.BlobObject, error) {
	var objects []usecase.BlobObject

	paginator := s3.NewListObjectsV2Paginator(f.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(f.cfg.Bucket),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: list: %v", usecase.ErrStorageRead, err)
		}
		for _, obj := range page.Contents {
			objects = append(objects, usecase.BlobObject{
				Key:          aws.ToString(obj.Key),
				LastModified: aws.ToTime(obj.LastModified),
			})
		}
	}
	return objects, nil
}

func (f *S3Storage) ObjectURL(key string) string {
	if f.cfg.PublicBaseURL != "" {
		return fmt.Sprintf("%s/%s", f.cfg.PublicBaseURL, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", f.cfg.Bucket, f.region, key)
}
