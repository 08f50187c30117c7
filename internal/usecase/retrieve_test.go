package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTracksEmptyCatalog(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newTestUsecase()

	list, err := uc.ListTracks(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestListTracks(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newTestUsecase()

	created, err := uc.CreateTrack(ctx, validTrack(), validFile())
	require.NoError(t, err)

	list, err := uc.ListTracks(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	got := list[0]
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "A", got.Title)
	assert.Equal(t, "B", got.Artist)
	assert.Equal(t, "rock", got.Genre)
	assert.Equal(t, "2024-01-01", got.Date)
	assert.NotEmpty(t, got.FileURL)
}

func TestListTracksToleratesUnreadableBlob(t *testing.T) {
	ctx := context.Background()
	uc, _, blob := newTestUsecase()

	created, err := uc.CreateTrack(ctx, validTrack(), validFile())
	require.NoError(t, err)

	// Drop the binary behind the record's back.
	blob.mu.Lock()
	delete(blob.objects, created.StorageKey)
	blob.mu.Unlock()

	list, err := uc.ListTracks(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.NotEmpty(t, list[0].FileURL)
}

func TestGetTrackByID(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newTestUsecase()

	created, err := uc.CreateTrack(ctx, validTrack(), validFile())
	require.NoError(t, err)

	got, err := uc.GetTrackByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "A", got.Title)
	assert.NotEmpty(t, got.FileURL)
}

func TestGetTrackByIDNotFound(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newTestUsecase()

	_, err := uc.GetTrackByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetTrackByIDUnreadableBlob(t *testing.T) {
	ctx := context.Background()
	uc, _, blob := newTestUsecase()

	created, err := uc.CreateTrack(ctx, validTrack(), validFile())
	require.NoError(t, err)

	blob.mu.Lock()
	delete(blob.objects, created.StorageKey)
	blob.mu.Unlock()

	_, err = uc.GetTrackByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrStorageNotFound)
}
