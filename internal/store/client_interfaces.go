// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"

	"github.com/meguri-app/meguri/internal/auth"
	"github.com/meguri-app/meguri/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/local_store_mock.go -package=mock

// LocalVisitStore is the on-device record store of the sync core: the durable
// visited-shrine set, the FIFO queue of not-yet-acknowledged mutations, and
// the cached session row.
//
// The store is scoped to the device, not the user. Switching accounts on the
// same device must explicitly clear both the visited set and the pending
// queue, otherwise operations queued under one account would replay against
// the next one's record set.
type LocalVisitStore interface {
	// GetAll returns every currently visited shrine id, sorted ascending.
	GetAll(ctx context.Context) ([]int64, error)

	// Add marks shrineID visited. Idempotent: re-adding rewrites visited_at.
	Add(ctx context.Context, shrineID int64) error

	// Remove unmarks shrineID. Removing an absent id is a no-op success.
	Remove(ctx context.Context, shrineID int64) error

	// Clear empties the visited set (used after successful cloud
	// reconciliation).
	Clear(ctx context.Context) error

	// EnqueuePending appends an operation to the queue and returns its
	// sequence id.
	EnqueuePending(ctx context.Context, action models.PendingAction, shrineID int64) (int64, error)

	// ListPending returns the queue in insertion order.
	ListPending(ctx context.Context) ([]models.PendingOperation, error)

	// DequeuePending removes a single confirmed operation.
	DequeuePending(ctx context.Context, opID int64) error

	// DeletePendingForShrine removes every queued operation for shrineID
	// (the coalescer's cancel path).
	DeletePendingForShrine(ctx context.Context, shrineID int64) error

	// ClearPending empties the queue. Must be called on logout, before the
	// credential is cleared.
	ClearPending(ctx context.Context) error

	// PendingCount returns the queue length.
	PendingCount(ctx context.Context) (int, error)

	auth.SessionStore
}
