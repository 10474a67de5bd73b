// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/meguri-app/meguri/internal/adapter"
	"github.com/meguri-app/meguri/internal/logger"
	"github.com/meguri-app/meguri/internal/store"
	"github.com/meguri-app/meguri/models"
)

// clientReconcileService runs the once-per-login comparison of the local
// visited set against the remote record set ("smart merge") and executes the
// three user-decision handlers for the conflict case.
type clientReconcileService struct {
	localStore  store.LocalVisitStore
	remote      adapter.VisitRecordClient
	syncService ClientSyncService
	logger      *logger.Logger
}

// NewClientReconcileService wires the reconciliation engine.
func NewClientReconcileService(
	localStore store.LocalVisitStore,
	remote adapter.VisitRecordClient,
	syncService ClientSyncService,
	logger *logger.Logger,
) ClientReconcileService {
	return &clientReconcileService{
		localStore:  localStore,
		remote:      remote,
		syncService: syncService,
		logger:      logger,
	}
}

// SmartMerge implements ClientReconcileService. The cases are evaluated in
// order, first match wins:
//
//  0. leftover pending operations are drained first; a fully successful drain
//     short-circuits with use_cloud and keeps the local cache as an
//     offline-capable read cache;
//  1. fetch local set L and remote set R;
//  2. L empty: use_cloud;
//  3. R empty: upload all of L, uploaded_local;
//  4. L == R: clear local, use_cloud (prefer remote as canonical);
//  5. L subset of R: clear local, use_cloud;
//  6. R subset of L: upload L minus R, uploaded_local;
//  7. otherwise: ask_user with the {onlyLocal, onlyCloud, common} partition.
//
// An unreachable or unauthorized remote store yields skip: local state stays
// authoritative and nothing is mutated.
func (r *clientReconcileService) SmartMerge(ctx context.Context) (models.ReconcileOutcome, error) {
	log := logger.FromContext(ctx)

	var outcome models.ReconcileOutcome

	if count, err := r.localStore.PendingCount(ctx); err == nil && count > 0 {
		report, drainErr := r.syncService.SyncPending(ctx)
		if drainErr != nil {
			log.Err(drainErr).Msg("pre-merge pending drain failed")
		}
		outcome.SyncedPending = report.Synced
		outcome.FailedPending = report.Failed

		if drainErr == nil && !report.Skipped && report.Failed == 0 {
			// The queued work is now reflected server-side; the local cache
			// stays as-is to keep serving offline reads.
			outcome.Action = models.ReconcileUseCloud
			outcome.LocalKept = true
			return outcome, nil
		}
	}

	local, err := r.localStore.GetAll(ctx)
	if err != nil {
		// A local read failure degrades to the empty set rather than
		// aborting the merge.
		log.Err(err).Msg("failed to read local visited set, treating as empty")
		local = nil
	}

	records, err := r.remote.List(ctx)
	if err != nil {
		log.Err(err).Msg("remote list failed, keeping local state authoritative")
		outcome.Action = models.ReconcileSkip
		return outcome, nil
	}

	cloud := make([]int64, 0, len(records))
	for _, record := range records {
		cloud = append(cloud, record.ShrineID)
	}
	slices.Sort(local)
	slices.Sort(cloud)

	onlyLocal := difference(local, cloud)
	onlyCloud := difference(cloud, local)

	switch {
	case len(local) == 0:
		outcome.Action = models.ReconcileUseCloud

	case len(cloud) == 0:
		outcome.Uploaded = r.uploadAll(ctx, local)
		r.clearAfterFullUpload(ctx, outcome.Uploaded, len(local))
		outcome.Action = models.ReconcileUploadedLocal

	case len(onlyLocal) == 0:
		// Covers both L == R and L strictly contained in R: the remote set
		// subsumes local, so local is cleared on outcome determination.
		if err = r.localStore.Clear(ctx); err != nil {
			log.Err(err).Msg("failed to clear local visited set")
		}
		outcome.Action = models.ReconcileUseCloud

	case len(onlyCloud) == 0:
		outcome.Uploaded = r.uploadAll(ctx, onlyLocal)
		r.clearAfterFullUpload(ctx, outcome.Uploaded, len(onlyLocal))
		outcome.Action = models.ReconcileUploadedLocal

	default:
		outcome.Action = models.ReconcileAskUser
		outcome.Conflict = &models.ConflictPartition{
			OnlyLocal: onlyLocal,
			OnlyCloud: onlyCloud,
			Common:    intersection(local, cloud),
		}
	}

	log.Info().
		Str("action", string(outcome.Action)).
		Int("uploaded", outcome.Uploaded).
		Msg("smart merge finished")

	return outcome, nil
}

// MergeAll implements ClientReconcileService. Idempotent: re-invoking uploads
// already-present records, which the remote store dedups via upsert.
func (r *clientReconcileService) MergeAll(ctx context.Context, conflict *models.ConflictPartition) ([]int64, error) {
	log := logger.FromContext(ctx)

	if conflict == nil {
		return nil, fmt.Errorf("no conflict partition to merge")
	}

	r.uploadAll(ctx, conflict.OnlyLocal)

	if err := r.localStore.Clear(ctx); err != nil {
		log.Err(err).Msg("failed to clear local visited set after merge")
	}

	union := make([]int64, 0, len(conflict.OnlyLocal)+len(conflict.OnlyCloud)+len(conflict.Common))
	union = append(union, conflict.OnlyLocal...)
	union = append(union, conflict.OnlyCloud...)
	union = append(union, conflict.Common...)
	slices.Sort(union)

	// The union is already known to be the end state; the remote store may
	// exhibit read-after-write lag, so it is not re-read here.
	return slices.Compact(union), nil
}

// UseCloud implements ClientReconcileService: discard local-only ids and
// reload from the remote store.
func (r *clientReconcileService) UseCloud(ctx context.Context) ([]int64, error) {
	if err := r.localStore.Clear(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear local visited set: %w", err)
	}

	records, err := r.remote.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reload remote visited set: %w", err)
	}

	ids := make([]int64, 0, len(records))
	for _, record := range records {
		ids = append(ids, record.ShrineID)
	}
	slices.Sort(ids)

	return ids, nil
}

// ReplaceCloudWithLocal implements ClientReconcileService: the device's set
// becomes the remote truth.
func (r *clientReconcileService) ReplaceCloudWithLocal(ctx context.Context, conflict *models.ConflictPartition) ([]int64, error) {
	log := logger.FromContext(ctx)

	if conflict == nil {
		return nil, fmt.Errorf("no conflict partition to resolve")
	}

	for _, id := range conflict.OnlyCloud {
		// A 404 here is success: the record being gone is the desired state.
		if err := r.remote.Delete(ctx, id); err != nil {
			log.Err(err).Int64("shrine_id", id).Msg("failed to delete cloud-only record")
		}
	}

	local := make([]int64, 0, len(conflict.OnlyLocal)+len(conflict.Common))
	local = append(local, conflict.OnlyLocal...)
	local = append(local, conflict.Common...)
	slices.Sort(local)

	r.uploadAll(ctx, local)

	if err := r.localStore.Clear(ctx); err != nil {
		log.Err(err).Msg("failed to clear local visited set after replace")
	}

	// Return the set already known to be correct instead of re-reading the
	// remote store.
	return local, nil
}

// clearAfterFullUpload clears the local cache once every record has been
// confirmed remotely; after a partial upload local stays authoritative for
// the records still missing server-side.
func (r *clientReconcileService) clearAfterFullUpload(ctx context.Context, uploaded, wanted int) {
	if uploaded != wanted {
		return
	}
	if err := r.localStore.Clear(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Msg("failed to clear local visited set after upload")
	}
}

// uploadAll pushes every id via idempotent upsert and returns the number of
// confirmed uploads. Failures are logged and skipped, matching the
// best-effort policy of the sync engine.
func (r *clientReconcileService) uploadAll(ctx context.Context, ids []int64) int {
	log := logger.FromContext(ctx)

	uploaded := 0
	for _, id := range ids {
		if _, err := r.remote.Upsert(ctx, id); err != nil {
			log.Err(err).Int64("shrine_id", id).Msg("failed to upload visit record")
			continue
		}
		uploaded++
	}

	return uploaded
}

// difference returns the elements of a not present in b. Both inputs must be
// sorted; the result is sorted.
func difference(a, b []int64) []int64 {
	var out []int64
	for _, v := range a {
		if _, found := slices.BinarySearch(b, v); !found {
			out = append(out, v)
		}
	}
	return out
}

// intersection returns the elements present in both sorted slices.
func intersection(a, b []int64) []int64 {
	var out []int64
	for _, v := range a {
		if _, found := slices.BinarySearch(b, v); found {
			out = append(out, v)
		}
	}
	return out
}
