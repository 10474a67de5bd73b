// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/meguri-app/meguri/internal/adapter"
	"github.com/meguri-app/meguri/internal/auth"
	"github.com/meguri-app/meguri/internal/logger"
	"github.com/meguri-app/meguri/internal/store"
	"github.com/meguri-app/meguri/models"
)

// clientVisitService is the facade the UI talks to. Writes are local-first:
// they land in the local store, enqueue a coalesced pending operation when a
// session is active, and kick the background drain. Reads route to the remote
// store when authenticated and fall back to local silently on any failure.
type clientVisitService struct {
	localStore  store.LocalVisitStore
	remote      adapter.VisitRecordClient
	credentials auth.CredentialProvider
	terminator  SessionTerminator
	coalescer   *pendingCoalescer
	syncService ClientSyncService
	logger      *logger.Logger
}

// NewClientVisitService wires the exposed visit surface.
func NewClientVisitService(
	localStore store.LocalVisitStore,
	remote adapter.VisitRecordClient,
	credentials auth.CredentialProvider,
	terminator SessionTerminator,
	syncService ClientSyncService,
	logger *logger.Logger,
) ClientVisitService {
	return &clientVisitService{
		localStore:  localStore,
		remote:      remote,
		credentials: credentials,
		terminator:  terminator,
		coalescer:   newPendingCoalescer(localStore),
		syncService: syncService,
		logger:      logger,
	}
}

// GetVisits implements ClientVisitService. No remote failure propagates to
// the caller: an unauthorized or unreachable remote store degrades to the
// local set, and a local storage failure degrades to the empty set.
func (v *clientVisitService) GetVisits(ctx context.Context) ([]int64, error) {
	log := logger.FromContext(ctx)

	if v.credentials.IsAuthenticated() {
		records, err := v.remote.List(ctx)
		if err == nil {
			ids := make([]int64, 0, len(records))
			for _, record := range records {
				ids = append(ids, record.ShrineID)
			}
			slices.Sort(ids)
			return ids, nil
		}
		log.Err(err).Str("func", "GetVisits").Msg("remote list failed, falling back to local set")
	}

	ids, err := v.localStore.GetAll(ctx)
	if err != nil {
		log.Err(err).Str("func", "GetVisits").Msg("local read failed, returning empty set")
		return []int64{}, nil
	}

	return ids, nil
}

// AddVisitOptimistic implements ClientVisitService.
func (v *clientVisitService) AddVisitOptimistic(ctx context.Context, shrineID int64) ([]int64, error) {
	return v.mutate(ctx, models.PendingAdd, shrineID)
}

// RemoveVisitOptimistic implements ClientVisitService.
func (v *clientVisitService) RemoveVisitOptimistic(ctx context.Context, shrineID int64) ([]int64, error) {
	return v.mutate(ctx, models.PendingRemove, shrineID)
}

// ToggleVisitOptimistic implements ClientVisitService.
func (v *clientVisitService) ToggleVisitOptimistic(ctx context.Context, shrineID int64, currentSet []int64) ([]int64, error) {
	if slices.Contains(currentSet, shrineID) {
		if _, err := v.RemoveVisitOptimistic(ctx, shrineID); err != nil {
			return currentSet, err
		}
		next := make([]int64, 0, len(currentSet))
		for _, id := range currentSet {
			if id != shrineID {
				next = append(next, id)
			}
		}
		return next, nil
	}

	if _, err := v.AddVisitOptimistic(ctx, shrineID); err != nil {
		return currentSet, err
	}
	next := append(slices.Clone(currentSet), shrineID)
	slices.Sort(next)
	return next, nil
}

// mutate applies the local write, folds the intent into the pending queue when
// a session is active, kicks the background drain, and returns the new local
// set. Anonymous mutations stay purely local: nothing is enqueued for a user
// that does not exist yet.
func (v *clientVisitService) mutate(ctx context.Context, action models.PendingAction, shrineID int64) ([]int64, error) {
	log := logger.FromContext(ctx)

	var err error
	if action == models.PendingAdd {
		err = v.localStore.Add(ctx, shrineID)
	} else {
		err = v.localStore.Remove(ctx, shrineID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to apply local mutation: %w", err)
	}

	if v.credentials.IsAuthenticated() {
		if err = v.coalescer.Apply(ctx, action, shrineID); err != nil {
			// The local write already succeeded; a queueing failure degrades
			// to local-only behaviour instead of rolling back.
			log.Err(err).
				Str("action", string(action)).
				Int64("shrine_id", shrineID).
				Msg("failed to queue remote mutation")
		} else {
			v.syncService.TriggerSync(ctx)
		}
	}

	ids, err := v.localStore.GetAll(ctx)
	if err != nil {
		log.Err(err).Str("func", "mutate").Msg("local read failed, returning empty set")
		return []int64{}, nil
	}

	return ids, nil
}

// PendingCount implements ClientVisitService.
func (v *clientVisitService) PendingCount(ctx context.Context) int {
	count, err := v.localStore.PendingCount(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "PendingCount").Msg("failed to count pending queue")
		return 0
	}
	return count
}

// ClearPendingQueue implements ClientVisitService.
func (v *clientVisitService) ClearPendingQueue(ctx context.Context) error {
	return v.localStore.ClearPending(ctx)
}

// Logout implements ClientVisitService. The ordering is correctness-critical:
// the pending queue must be gone before the credential is cleared, otherwise
// operations queued under this account would replay against the next one. A
// failed queue clear therefore aborts the logout.
func (v *clientVisitService) Logout(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if err := v.localStore.ClearPending(ctx); err != nil {
		return fmt.Errorf("failed to clear pending queue, aborting logout: %w", err)
	}

	if err := v.localStore.Clear(ctx); err != nil {
		log.Err(err).Str("func", "Logout").Msg("failed to clear local visited set")
	}

	return v.terminator.SignOut(ctx)
}
