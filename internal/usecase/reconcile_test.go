package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileStorage(t *testing.T) {
	ctx := context.Background()
	uc, repo, blob := newTestUsecase()

	// One properly referenced track.
	created, err := uc.CreateTrack(ctx, validTrack(), validFile())
	require.NoError(t, err)

	// One orphan from a failed metadata insert, old enough to sweep.
	repo.failCreate = true
	_, err = uc.CreateTrack(ctx, validTrack(), validFile())
	require.ErrorIs(t, err, ErrMetadataWrite)
	repo.failCreate = false
	require.Equal(t, 2, blob.len())

	for _, obj := range mustListObjects(t, blob) {
		if obj.Key != created.StorageKey {
			blob.backdate(obj.Key, 2*time.Hour)
		}
	}

	report, err := uc.ReconcileStorage(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Scanned)
	assert.Len(t, report.Orphans, 1)
	assert.Equal(t, 1, report.Removed)
	assert.Zero(t, report.Skipped)

	// Referenced binary survives the sweep.
	r, err := blob.Download(ctx, created.StorageKey)
	require.NoError(t, err)
	r.Close()
	assert.Equal(t, 1, blob.len())
}

// A freshly uploaded object whose metadata insert has not landed yet
// must not be swept, and must still be readable once the insert lands.
func TestReconcileStorageSparesRecentUploads(t *testing.T) {
	ctx := context.Background()
	uc, repo, blob := newTestUsecase()

	key := NewStorageKey("song.mp3")
	f := validFile()
	src, err := f.Open()
	require.NoError(t, err)
	require.NoError(t, blob.Upload(ctx, key, src, f.Size(), f.ContentType()))
	src.Close()

	report, err := uc.ReconcileStorage(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Scanned)
	assert.Equal(t, 1, report.Skipped)
	assert.Empty(t, report.Orphans)
	assert.Zero(t, report.Removed)

	// The delayed insert lands; its binary is intact.
	track := validTrack()
	track.StorageKey = key
	saved, err := repo.CreateTrack(ctx, track)
	require.NoError(t, err)

	r, err := blob.Download(ctx, saved.StorageKey)
	require.NoError(t, err)
	r.Close()
}

func TestReconcileStorageNothingToDo(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newTestUsecase()

	report, err := uc.ReconcileStorage(ctx)
	require.NoError(t, err)
	assert.Zero(t, report.Scanned)
	assert.Empty(t, report.Orphans)
}

func TestRequestReconcile(t *testing.T) {
	ctx := context.Background()

	t.Run("enqueues when a task client is wired", func(t *testing.T) {
		repo, blob := newMemRepo(), newMemBlob()
		tasks := &fakeTasks{}
		uc := New(repo, blob, newFakeIdentity(), tasks)

		require.NoError(t, uc.RequestReconcile(ctx))
		assert.Equal(t, 1, tasks.enqueued)
	})

	t.Run("surfaces enqueue failures", func(t *testing.T) {
		repo, blob := newMemRepo(), newMemBlob()
		tasks := &fakeTasks{failEnqueue: true}
		uc := New(repo, blob, newFakeIdentity(), tasks)

		assert.Error(t, uc.RequestReconcile(ctx))
	})

	t.Run("runs inline without a task client", func(t *testing.T) {
		uc, _, blob := newTestUsecase()

		key := NewStorageKey("stale.mp3")
		f := validFile()
		src, err := f.Open()
		require.NoError(t, err)
		require.NoError(t, blob.Upload(ctx, key, src, f.Size(), f.ContentType()))
		src.Close()
		blob.backdate(key, 2*time.Hour)

		require.NoError(t, uc.RequestReconcile(ctx))
		assert.Zero(t, blob.len())
	})
}

func mustListObjects(t *testing.T, blob *memBlob) []BlobObject {
	t.Helper()
	objects, err := blob.ListObjects(context.Background())
	require.NoError(t, err)
	return objects
}
