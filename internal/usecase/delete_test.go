package usecase

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteTrack(t *testing.T) {
	ctx := context.Background()
	uc, repo, blob := newTestUsecase()

	created, err := uc.CreateTrack(ctx, validTrack(), validFile())
	require.NoError(t, err)

	require.NoError(t, uc.DeleteTrack(ctx, created.ID))

	_, found, err := repo.GetTrackByID(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Zero(t, blob.len())
}

func TestDeleteTrackNotFound(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newTestUsecase()

	err := uc.DeleteTrack(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteTrackBlobFailureKeepsMetadata(t *testing.T) {
	ctx := context.Background()
	uc, repo, blob := newTestUsecase()

	created, err := uc.CreateTrack(ctx, validTrack(), validFile())
	require.NoError(t, err)

	blob.failRemove = true
	err = uc.DeleteTrack(ctx, created.ID)
	assert.ErrorIs(t, err, ErrStorageWrite)

	// Metadata is intact when the binary could not be removed.
	_, found, err := repo.GetTrackByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestBlobRemoveIdempotent(t *testing.T) {
	ctx := context.Background()
	blob := newMemBlob()

	require.NoError(t, blob.Upload(ctx, "k", bytes.NewReader([]byte("0123456789")), 10, "audio/mpeg"))
	require.NoError(t, blob.Remove(ctx, "k"))
	// Removing an already removed key does not raise.
	require.NoError(t, blob.Remove(ctx, "k"))
}
