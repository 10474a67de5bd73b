// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"

	"github.com/meguri-app/meguri/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// ClientSyncService drains the pending-operation queue against the remote
// store. The drain is single-flight process-wide: concurrent triggers while a
// drain is running are dropped, not queued.
type ClientSyncService interface {
	// SyncPending runs one drain pass synchronously. The pass is skipped
	// (SyncReport.Skipped) when the device is offline, no session is active,
	// or another drain holds the single-flight lock. Operations are drained
	// in insertion order; a failed operation stays queued and does not block
	// later ones.
	SyncPending(ctx context.Context) (models.SyncReport, error)

	// TriggerSync starts a drain pass in the background and returns
	// immediately. Failures are logged, never surfaced.
	TriggerSync(ctx context.Context)
}

// ClientReconcileService compares the local visited set against the remote
// record set once per login transition and either auto-resolves or reports a
// conflict for the user to settle.
type ClientReconcileService interface {
	// SmartMerge classifies the local/remote relationship and auto-resolves
	// every case except a true conflict, which is returned as
	// models.ReconcileAskUser together with the id partition.
	SmartMerge(ctx context.Context) (models.ReconcileOutcome, error)

	// MergeAll resolves a conflict by keeping everything: local-only ids are
	// uploaded, the local cache is cleared, and the union is returned as the
	// authoritative set. The remote store is deliberately not re-read.
	MergeAll(ctx context.Context, conflict *models.ConflictPartition) ([]int64, error)

	// UseCloud resolves a conflict by discarding local-only ids: the local
	// cache is cleared and the set is reloaded from the remote store.
	UseCloud(ctx context.Context) ([]int64, error)

	// ReplaceCloudWithLocal resolves a conflict in favour of the device:
	// cloud-only ids are deleted remotely, the full local set is uploaded,
	// the local cache is cleared, and the local set is returned directly as
	// the authoritative result without a re-read.
	ReplaceCloudWithLocal(ctx context.Context, conflict *models.ConflictPartition) ([]int64, error)
}

// ClientVisitService is the surface exposed to the UI layer. Every method
// returns immediately; remote confirmation is detached, and remote failures
// degrade to local-store behaviour instead of surfacing as errors.
type ClientVisitService interface {
	// GetVisits returns the visited set, sourced from the remote store when a
	// session is active and falling back to the local store silently on any
	// remote failure.
	GetVisits(ctx context.Context) ([]int64, error)

	// AddVisitOptimistic marks shrineID visited locally, queues the remote
	// upsert when authenticated, and returns the new local set.
	AddVisitOptimistic(ctx context.Context, shrineID int64) ([]int64, error)

	// RemoveVisitOptimistic unmarks shrineID locally, queues the remote
	// delete when authenticated, and returns the new local set.
	RemoveVisitOptimistic(ctx context.Context, shrineID int64) ([]int64, error)

	// ToggleVisitOptimistic flips shrineID against currentSet and returns the
	// updated set immediately. currentSet is the set the caller is displaying,
	// which may be remote-sourced; the toggle is applied to it rather than to
	// a fresh local read so the UI never flickers through stale state.
	ToggleVisitOptimistic(ctx context.Context, shrineID int64, currentSet []int64) ([]int64, error)

	// PendingCount returns the length of the pending queue, 0 on storage
	// failure.
	PendingCount(ctx context.Context) int

	// ClearPendingQueue empties the pending queue.
	ClearPendingQueue(ctx context.Context) error

	// Logout clears the pending queue and the visited set, then ends the
	// session. The queue is cleared first: operations queued under one
	// account must never replay against the next one.
	Logout(ctx context.Context) error
}

// SessionTerminator ends the active session after the facade has finished its
// local cleanup. Implemented by auth.ServerProvider.
type SessionTerminator interface {
	SignOut(ctx context.Context) error
}
