package filestorage

import (
	"context"
	"os"

	"github.com/soundvault/soundvault/internal/config"
	"github.com/soundvault/soundvault/internal/usecase"
)

// FromEnv picks the blob backend from FILE_STORAGE_PROVIDER.
// Defaults to MinIO; "s3" selects the AWS backend.
func FromEnv(ctx context.Context) (usecase.BlobStorage, error) {
	if os.Getenv(config.ENV_KEY_FILE_STORAGE_PROVIDER) == "s3" {
		return NewS3Storage(ctx, S3Config{
			Bucket:        os.Getenv(config.ENV_KEY_S3_BUCKET),
			PublicBaseURL: os.Getenv(config.ENV_KEY_S3_PUBLIC_URL),
		})
	}
	return NewMinIOStorage(Config{
		Bucket:          os.Getenv(config.ENV_KEY_MINIO_BUCKET),
		Endpoint:        os.Getenv(config.ENV_KEY_MINIO_ENDPOINT),
		AccessKeyID:     os.Getenv(config.ENV_KEY_MINIO_ACCESS_KEY),
		SecretAccessKey: os.Getenv(config.ENV_KEY_MINIO_SECRET_KEY),
		UseSSL:          os.Getenv(config.ENV_KEY_MINIO_USE_SSL) == "true",
		PublicBaseURL:   os.Getenv(config.ENV_KEY_MINIO_PUBLIC_URL),
	})
}
