package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
)

// memRepo is an in-memory Repository.
type memRepo struct {
	mu        sync.Mutex
	order     []uuid.UUID
	tracks    map[uuid.UUID]Track
	customers map[uuid.UUID]Customer

	failCreate bool
	failRead   bool
}

func newMemRepo() *memRepo {
	return &memRepo{
		tracks:    make(map[uuid.UUID]Track),
		customers: make(map[uuid.UUID]Customer),
	}
}

func (r *memRepo) Health() map[string]string { return map[string]string{"status": "up"} }
func (r *memRepo) Close() error              { return nil }

func (r *memRepo) CreateTrack(_ context.Context, t Track) (Track, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failCreate {
		return Track{}, fmt.Errorf("%w: boom", ErrMetadataWrite)
	}
	t.ID = uuid.New()
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	r.tracks[t.ID] = t
	r.order = append(r.order, t.ID)
	return t, nil
}

func (r *memRepo) ListTracks(context.Context) ([]Track, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failRead {
		return nil, fmt.Errorf("%w: boom", ErrMetadataRead)
	}
	list := make([]Track, 0, len(r.order))
	for _, id := range r.order {
		list = append(list, r.tracks[id])
	}
	return list, nil
}

func (r *memRepo) GetTrackByID(_ context.Context, id uuid.UUID) (Track, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failRead {
		return Track{}, false, fmt.Errorf("%w: boom", ErrMetadataRead)
	}
	t, ok := r.tracks[id]
	return t, ok, nil
}

func (r *memRepo) SaveTrack(_ context.Context, t Track) (Track, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t.UpdatedAt = time.Now()
	if _, ok := r.tracks[t.ID]; !ok {
		r.order = append(r.order, t.ID)
	}
	r.tracks[t.ID] = t
	return t, nil
}

func (r *memRepo) DeleteTrackByID(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tracks[id]; !ok {
		return false, nil
	}
	delete(r.tracks, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}

func (r *memRepo) ListStorageKeys(context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	keys := make([]string, 0, len(r.tracks))
	for _, t := range r.tracks {
		keys = append(keys, t.StorageKey)
	}
	return keys, nil
}

func (r *memRepo) CreateCustomer(_ context.Context, c Customer) (Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = uuid.New()
	c.CreatedAt = time.Now()
	r.customers[c.ID] = c
	return c, nil
}

func (r *memRepo) ListCustomers(context.Context) ([]Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]Customer, 0, len(r.customers))
	for _, c := range r.customers {
		list = append(list, c)
	}
	return list, nil
}

// memBlob is an in-memory BlobStorage.
type memBlob struct {
	mu           sync.Mutex
	objects      map[string][]byte
	contentTypes map[string]string
	modified     map[string]time.Time
	bucketCalls  int

	failUpload bool
	failRemove bool
}

func newMemBlob() *memBlob {
	return &memBlob{
		objects:      make(map[string][]byte),
		contentTypes: make(map[string]string),
		modified:     make(map[string]time.Time),
	}
}

func (b *memBlob) EnsureBucket(context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.bucketCalls++
	return nil
}

func (b *memBlob) Upload(_ context.Context, key string, r io.Reader, _ int64, contentType string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failUpload {
		return fmt.Errorf("%w: boom", ErrStorageWrite)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}
	b.objects[key] = data
	b.contentTypes[key] = contentType
	b.modified[key] = time.Now()
	return nil
}

func (b *memBlob) Download(_ context.Context, key string) (io.ReadCloser, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	data, ok := b.objects[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStorageNotFound, key)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (b *memBlob) Remove(_ context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failRemove {
		return fmt.Errorf("%w: boom", ErrStorageWrite)
	}
	// Absent keys are not an error.
	delete(b.objects, key)
	delete(b.modified, key)
	return nil
}

func (b *memBlob) ListObjects(context.Context) ([]BlobObject, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	objects := make([]BlobObject, 0, len(b.objects))
	for k := range b.objects {
		objects = append(objects, BlobObject{Key: k, LastModified: b.modified[k]})
	}
	return objects, nil
}

// backdate shifts an object's modification time into the past.
func (b *memBlob) backdate(key string, d time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.modified[key] = b.modified[key].Add(-d)
}

func (b *memBlob) ObjectURL(key string) string {
	return "http://blob.local/tracks/" + key
}

func (b *memBlob) len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.objects)
}

// memFile is an in-memory File payload.
type memFile struct {
	name        string
	contentType string
	data        []byte
}

func (f memFile) Name() string        { return f.name }
func (f memFile) ContentType() string { return f.contentType }
func (f memFile) Size() int64         { return int64(len(f.data)) }
func (f memFile) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(f.data)), nil
}

// fakeIdentity is an in-memory IdentityProvider.
type fakeIdentity struct {
	users map[string]string // email -> password
}

func newFakeIdentity() *fakeIdentity {
	return &fakeIdentity{users: make(map[string]string)}
}

func (p *fakeIdentity) CreateUser(_ context.Context, rc RegisterCustomer) (string, error) {
	p.users[rc.Email] = rc.Password
	return "uid-" + rc.Email, nil
}

func (p *fakeIdentity) Login(_ context.Context, email, password string) (string, error) {
	if pw, ok := p.users[email]; !ok || pw != password {
		return "", errors.New("invalid credentials")
	}
	return "token-" + email, nil
}

func (p *fakeIdentity) VerifyToken(_ context.Context, token string) (string, error) {
	if len(token) < len("token-") {
		return "", errors.New("invalid token")
	}
	return "uid-" + token[len("token-"):], nil
}

// fakeTasks records reconcile enqueues.
type fakeTasks struct {
	mu       sync.Mutex
	enqueued int

	failEnqueue bool
}

func (t *fakeTasks) EnqueueReconcile(context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.failEnqueue {
		return errors.New("redis down")
	}
	t.enqueued++
	return nil
}
