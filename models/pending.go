// SPDX-License-Identifier: Apache-2.0

package models

import "time"

// PendingAction is the kind of remote mutation a queued operation represents.
type PendingAction string

const (
	// PendingAdd means the shrine must be upserted into the remote store.
	PendingAdd PendingAction = "add"

	// PendingRemove means the shrine must be deleted from the remote store.
	PendingRemove PendingAction = "remove"
)

// Opposite returns the cancelling action for a.
func (a PendingAction) Opposite() PendingAction {
	if a == PendingAdd {
		return PendingRemove
	}
	return PendingAdd
}

// PendingOperation is an intended remote mutation that has not yet been
// confirmed by the server. Operations live in the local queue in FIFO order
// and are removed once the corresponding remote call succeeds (a "not found"
// response on a delete counts as success).
//
// Invariant: at most one operation's worth of net effect exists per ShrineID;
// the coalescer collapses same-action duplicates and cancels opposite pairs
// before anything is enqueued.
type PendingOperation struct {
	// ID is the queue sequence id (sqlite autoincrement); it defines drain order.
	ID int64 `json:"id"`

	Action   PendingAction `json:"action"`
	ShrineID int64         `json:"shrine_id"`

	CreatedAt time.Time `json:"created_at"`
}

// SyncReport summarizes a single background drain pass over the pending queue.
type SyncReport struct {
	// Synced is the number of operations confirmed and dequeued in this pass.
	Synced int

	// Failed is the number of operations that errored and remain queued.
	Failed int

	// Skipped reports that the pass did not run at all: the device was
	// offline, no session was active, or another drain held the
	// single-flight lock.
	Skipped bool
}
