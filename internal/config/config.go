package config

// Environment variable keys.
const (
	ENV_KEY_PORT = "PORT"

	ENV_KEY_DB_DATABASE             = "DB_DATABASE"
	ENV_KEY_DB_PASSWORD             = "DB_PASSWORD"
	ENV_KEY_DB_USER                 = "DB_USER"
	ENV_KEY_DB_PORT                 = "DB_PORT"
	ENV_KEY_DB_HOST                 = "DB_HOST"
	ENV_KEY_DB_MAX_OPEN_CONNECTIONS = "DB_MAX_OPEN_CONNECTIONS"

	ENV_KEY_FILE_STORAGE_PROVIDER = "FILE_STORAGE_PROVIDER"

	ENV_KEY_MINIO_BUCKET     = "MINIO_BUCKET"
	ENV_KEY_MINIO_ENDPOINT   = "MINIO_ENDPOINT"
	ENV_KEY_MINIO_ACCESS_KEY = "MINIO_ACCESS_KEY"
	ENV_KEY_MINIO_SECRET_KEY = "MINIO_SECRET_KEY"
	ENV_KEY_MINIO_USE_SSL    = "MINIO_USE_SSL"
	ENV_KEY_MINIO_PUBLIC_URL = "MINIO_PUBLIC_URL"

	ENV_KEY_S3_BUCKET     = "S3_BUCKET"
	ENV_KEY_S3_PUBLIC_URL = "S3_PUBLIC_URL"

	ENV_KEY_OIDC_SERVER_URL    = "OIDC_SERVER_URL"
	ENV_KEY_OIDC_REALM         = "OIDC_REALM"
	ENV_KEY_OIDC_CLIENT_ID     = "OIDC_CLIENT_ID"
	ENV_KEY_OIDC_CLIENT_SECRET = "OIDC_CLIENT_SECRET"

	ENV_KEY_REDIS_HOST     = "REDIS_HOST"
	ENV_KEY_REDIS_PORT     = "REDIS_PORT"
	ENV_KEY_REDIS_PASSWORD = "REDIS_PASSWORD"

	ENV_KEY_WORKER_CONCURRENCY = "WORKER_CONCURRENCY"
	ENV_KEY_LOG_LEVEL          = "LOG_LEVEL"
)

type ContextKey uint

const (
	_ ContextKey = iota
	CTX_KEY_USER_ID
)
