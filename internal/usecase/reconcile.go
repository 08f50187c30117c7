package usecase

import (
	"context"
	"log"
	"time"
)

// Objects younger than this are skipped by the sweep. A create that
// has finished its upload but not yet its metadata insert is
// indistinguishable from an orphan by key alone; the grace window
// keeps the sweep from deleting the binary out from under an
// in-flight pipeline.
const reconcileGrace = time.Hour

// ReconcileReport summarizes one sweep over the object store.
type ReconcileReport struct {
	Scanned int
	Skipped int
	Orphans []string
	Removed int
}

// ReconcileStorage lists object store keys, removes those no metadata
// record references, and reports what it found. Orphans come from
// create pipelines that uploaded a binary but failed the metadata
// insert; the sweep runs periodically from the worker and on request
// from the admin endpoint.
func (u Usecase) ReconcileStorage(ctx context.Context) (ReconcileReport, error) {
	objects, err := u.blob.ListObjects(ctx)
	if err != nil {
		return ReconcileReport{}, err
	}

	referenced, err := u.repo.ListStorageKeys(ctx)
	if err != nil {
		return ReconcileReport{}, err
	}

	known := make(map[string]struct{}, len(referenced))
	for _, k := range referenced {
		known[k] = struct{}{}
	}

	cutoff := time.Now().Add(-reconcileGrace)

	report := ReconcileReport{Scanned: len(objects)}
	for _, obj := range objects {
		if _, ok := known[obj.Key]; ok {
			continue
		}
		if obj.LastModified.After(cutoff) {
			report.Skipped++
			continue
		}
		report.Orphans = append(report.Orphans, obj.Key)
		if err := u.blob.Remove(ctx, obj.Key); err != nil {
			log.Printf("[Reconcile] failed to remove orphan %q: %v", obj.Key, err)
			continue
		}
		report.Removed++
	}

	if len(report.Orphans) > 0 {
		log.Printf("[Reconcile] scanned=%d skipped=%d orphans=%d removed=%d",
			report.Scanned, report.Skipped, len(report.Orphans), report.Removed)
	}
	return report, nil
}

// RequestReconcile hands the sweep to the worker queue. Without a
// task client the sweep runs inline.
func (u Usecase) RequestReconcile(ctx context.Context) error {
	if u.tasks == nil {
		_, err := u.ReconcileStorage(ctx)
		return err
	}
	return u.tasks.EnqueueReconcile(ctx)
}
