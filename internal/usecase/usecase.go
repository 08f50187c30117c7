package usecase

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
)

// Repository is the metadata store contract. Absence of a record is
// reported as a boolean, not an error; the orchestrators decide whether
// absence is exceptional.
type Repository interface {
	Health() map[string]string
	Close() error

	CreateTrack(context.Context, Track) (Track, error)
	ListTracks(context.Context) ([]Track, error)
	GetTrackByID(context.Context, uuid.UUID) (Track, bool, error)
	SaveTrack(context.Context, Track) (Track, error)
	DeleteTrackByID(context.Context, uuid.UUID) (bool, error)
	ListStorageKeys(context.Context) ([]string, error)

	CreateCustomer(context.Context, Customer) (Customer, error)
	ListCustomers(context.Context) ([]Customer, error)
}

// BlobObject describes one stored binary in a bucket listing.
type BlobObject struct {
	Key          string
	LastModified time.Time
}

// BlobStorage is the object store contract. Remove is idempotent;
// removing an absent key is not an error.
type BlobStorage interface {
	EnsureBucket(context.Context) error
	Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	Remove(ctx context.Context, key string) error
	ListObjects(context.Context) ([]BlobObject, error)
	ObjectURL(key string) string
}

// IdentityProvider exchanges credentials with the external identity
// collaborator. Authorization decisions stay upstream.
type IdentityProvider interface {
	CreateUser(context.Context, RegisterCustomer) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
}

// TaskClient enqueues background tasks for the worker.
type TaskClient interface {
	EnqueueReconcile(context.Context) error
}

func New(repo Repository, blob BlobStorage, idp IdentityProvider, tasks TaskClient) Usecase {
	return Usecase{repo: repo, blob: blob, identityProvider: idp, tasks: tasks}
}

type Usecase struct {
	repo             Repository
	blob             BlobStorage
	identityProvider IdentityProvider
	tasks            TaskClient
}

func (u Usecase) Health() map[string]string {
	return u.repo.Health()
}

func (u Usecase) Close() error {
	return u.repo.Close()
}
