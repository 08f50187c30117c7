package usecase

import (
	"context"
	"fmt"
	"log"
)

func validateTrackFields(t Track) error {
	for field, v := range map[string]string{
		"title":  t.Title,
		"artist": t.Artist,
		"genre":  t.Genre,
		"date":   t.Date,
	} {
		if v == "" {
			return fmt.Errorf("%w: %s", ErrValidation, field)
		}
	}
	return nil
}

func validatePayload(file File) error {
	if file == nil || file.Size() == 0 {
		return fmt.Errorf("%w: file", ErrValidation)
	}
	if !IsSupportedAudioType(file.ContentType()) {
		return fmt.Errorf("%w: %s", ErrUnsupportedMedia, file.ContentType())
	}
	return nil
}

// uploadBlob writes the payload under a fresh storage key and returns
// the key. The bucket is checked on every call rather than caching an
// exists flag.
func (u Usecase) uploadBlob(ctx context.Context, file File) (string, error) {
	if err := u.blob.EnsureBucket(ctx); err != nil {
		return "", err
	}

	key := NewStorageKey(file.Name())

	r, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("%w: open payload: %v", ErrStorageWrite, err)
	}
	defer r.Close()

	if err := u.blob.Upload(ctx, key, r, file.Size(), file.ContentType()); err != nil {
		return "", err
	}
	return key, nil
}

// CreateTrack validates the metadata and payload, writes the binary to
// the object store and then the record to the metadata store. The
// binary is written first: a record never references a blob that was
// not confirmed written. If the metadata insert fails after a
// successful upload the blob is left as an orphan; it is logged here
// and collected later by the reconciliation sweep.
//
// Concurrent mutations of the same track are not serialized; the two
// stores are written by independent calls with no cross-store
// transaction.
func (u Usecase) CreateTrack(ctx context.Context, track Track, file File) (Track, error) {
	if err := validateTrackFields(track); err != nil {
		return Track{}, err
	}
	if err := validatePayload(file); err != nil {
		return Track{}, err
	}

	key, err := u.uploadBlob(ctx, file)
	if err != nil {
		return Track{}, err
	}

	track.StorageKey = key
	created, err := u.repo.CreateTrack(ctx, track)
	if err != nil {
		log.Printf("[Ingest] orphaned object %q: metadata insert failed: %v", key, err)
		return Track{}, err
	}

	created.FileURL = u.blob.ObjectURL(created.StorageKey)
	return created, nil
}

// UpdateTrack overwrites the metadata fields of an existing track and,
// only when a new payload is supplied, replaces the binary. The old
// blob is removed before the new upload; a failed removal is logged
// and the update proceeds, trading a possible stale object for
// completing the user-visible update.
func (u Usecase) UpdateTrack(ctx context.Context, track Track, file File) (Track, error) {
	if err := validateTrackFields(track); err != nil {
		return Track{}, err
	}
	if file != nil {
		if err := validatePayload(file); err != nil {
			return Track{}, err
		}
	}

	existing, found, err := u.repo.GetTrackByID(ctx, track.ID)
	if err != nil {
		return Track{}, err
	}
	if !found {
		return Track{}, fmt.Errorf("%w: track %s", ErrNotFound, track.ID)
	}

	track.StorageKey = existing.StorageKey
	track.CreatedAt = existing.CreatedAt

	if file != nil {
		if err := u.blob.Remove(ctx, existing.StorageKey); err != nil {
			log.Printf("[Ingest] stale object %q: removal failed: %v", existing.StorageKey, err)
		}
		key, err := u.uploadBlob(ctx, file)
		if err != nil {
			return Track{}, err
		}
		track.StorageKey = key
	}

	saved, err := u.repo.SaveTrack(ctx, track)
	if err != nil {
		return Track{}, err
	}

	saved.FileURL = u.blob.ObjectURL(saved.StorageKey)
	return saved, nil
}

// UploadFile stores a bare payload without a metadata record and
// returns its storage key.
func (u Usecase) UploadFile(ctx context.Context, file File) (string, error) {
	if err := validatePayload(file); err != nil {
		return "", err
	}
	return u.uploadBlob(ctx, file)
}
