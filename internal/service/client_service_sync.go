// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/meguri-app/meguri/internal/adapter"
	"github.com/meguri-app/meguri/internal/auth"
	"github.com/meguri-app/meguri/internal/logger"
	"github.com/meguri-app/meguri/internal/netwatch"
	"github.com/meguri-app/meguri/internal/store"
	"github.com/meguri-app/meguri/models"
)

// clientSyncService drains the pending queue against the remote store. It is
// event-triggered (local mutation, reconnect, login), never timer-driven, and
// enforces the single-flight discipline with an atomic compare-and-swap since
// drains can be triggered from parallel goroutines.
type clientSyncService struct {
	localStore  store.LocalVisitStore
	remote      adapter.VisitRecordClient
	credentials auth.CredentialProvider
	online      netwatch.Signal
	logger      *logger.Logger

	syncing atomic.Bool
}

// NewClientSyncService wires the background sync engine.
func NewClientSyncService(
	localStore store.LocalVisitStore,
	remote adapter.VisitRecordClient,
	credentials auth.CredentialProvider,
	online netwatch.Signal,
	logger *logger.Logger,
) ClientSyncService {
	return &clientSyncService{
		localStore:  localStore,
		remote:      remote,
		credentials: credentials,
		online:      online,
		logger:      logger,
	}
}

// SyncPending implements ClientSyncService. The entry guards mirror the
// engine's state machine: refuse to start when offline, unauthenticated, or
// when another drain is already in flight.
func (s *clientSyncService) SyncPending(ctx context.Context) (models.SyncReport, error) {
	log := logger.FromContext(ctx)

	if !s.credentials.IsAuthenticated() {
		log.Debug().Str("func", "SyncPending").Msg("no active session, skipping drain")
		return models.SyncReport{Skipped: true}, nil
	}
	if !s.online.Online() {
		log.Debug().Str("func", "SyncPending").Msg("device offline, skipping drain")
		return models.SyncReport{Skipped: true}, nil
	}

	if !s.syncing.CompareAndSwap(false, true) {
		log.Debug().Str("func", "SyncPending").Msg("drain already in flight, dropping trigger")
		return models.SyncReport{Skipped: true}, nil
	}
	defer s.syncing.Store(false)

	ops, err := s.localStore.ListPending(ctx)
	if err != nil {
		return models.SyncReport{}, fmt.Errorf("failed to read pending queue: %w", err)
	}

	var report models.SyncReport
	for _, op := range ops {
		if err = s.execute(ctx, op); err != nil {
			// Best-effort policy: a failed operation stays queued and does
			// not block later ones.
			log.Err(err).
				Str("action", string(op.Action)).
				Int64("shrine_id", op.ShrineID).
				Msg("pending operation failed, leaving queued")
			report.Failed++
			continue
		}

		if err = s.localStore.DequeuePending(ctx, op.ID); err != nil {
			log.Err(err).Int64("op_id", op.ID).Msg("failed to dequeue confirmed operation")
			report.Failed++
			continue
		}
		report.Synced++
	}

	log.Debug().
		Int("synced", report.Synced).
		Int("failed", report.Failed).
		Msg("pending queue drain finished")

	return report, nil
}

func (s *clientSyncService) execute(ctx context.Context, op models.PendingOperation) error {
	switch op.Action {
	case models.PendingAdd:
		_, err := s.remote.Upsert(ctx, op.ShrineID)
		return err
	case models.PendingRemove:
		// The adapter already treats a 404 as success.
		return s.remote.Delete(ctx, op.ShrineID)
	default:
		return fmt.Errorf("unknown pending action %q", op.Action)
	}
}

// TriggerSync implements ClientSyncService. The drain runs on a detached
// context so an unmounting caller does not abort it mid-pass.
func (s *clientSyncService) TriggerSync(ctx context.Context) {
	drainCtx := logger.FromContext(ctx).WithContext(context.WithoutCancel(ctx))

	go func() {
		if _, err := s.SyncPending(drainCtx); err != nil {
			s.logger.Err(err).Str("func", "TriggerSync").Msg("background drain failed")
		}
	}()
}
