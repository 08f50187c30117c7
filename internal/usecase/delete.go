package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
)

// DeleteTrack removes the binary first and the metadata record second.
// A failed blob removal aborts the operation with the record intact:
// metadata pointing at nothing is the failure mode this ordering
// avoids, an orphaned blob merely wastes storage. Deleting an unknown
// id is reported as not found, not as a silent success.
func (u Usecase) DeleteTrack(ctx context.Context, id uuid.UUID) error {
	track, found, err := u.repo.GetTrackByID(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: track %s", ErrNotFound, id)
	}

	if err := u.blob.Remove(ctx, track.StorageKey); err != nil {
		return err
	}

	deleted, err := u.repo.DeleteTrackByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		// Row vanished between lookup and delete; blob is already gone.
		log.Printf("[Delete] track %s disappeared mid-delete", id)
		return fmt.Errorf("%w: track %s", ErrNotFound, id)
	}
	return nil
}
