package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
)

// ListTracks returns every track with its derived URL. An empty
// catalog is an empty slice, not an error. A blob that cannot be read
// back does not exclude its record from the listing.
func (u Usecase) ListTracks(ctx context.Context) ([]Track, error) {
	tracks, err := u.repo.ListTracks(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]Track, 0, len(tracks))
	for _, t := range tracks {
		if r, err := u.blob.Download(ctx, t.StorageKey); err != nil {
			log.Printf("[Retrieve] object %q unreadable: %v", t.StorageKey, err)
		} else {
			r.Close()
		}
		t.FileURL = u.blob.ObjectURL(t.StorageKey)
		list = append(list, t)
	}
	return list, nil
}

// GetTrackByID returns one track with its derived URL. Unlike listing,
// an unreadable blob here is surfaced to the caller.
func (u Usecase) GetTrackByID(ctx context.Context, id uuid.UUID) (Track, error) {
	track, found, err := u.repo.GetTrackByID(ctx, id)
	if err != nil {
		return Track{}, err
	}
	if !found {
		return Track{}, fmt.Errorf("%w: track %s", ErrNotFound, id)
	}

	r, err := u.blob.Download(ctx, track.StorageKey)
	if err != nil {
		return Track{}, err
	}
	r.Close()

	track.FileURL = u.blob.ObjectURL(track.StorageKey)
	return track, nil
}
