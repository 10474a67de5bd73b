// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"

	"github.com/meguri-app/meguri/internal/logger"
	"github.com/meguri-app/meguri/internal/store"
	"github.com/meguri-app/meguri/models"
)

// pendingCoalescer collapses redundant or opposing queued operations for the
// same shrine id before anything new is enqueued. This bounds queue growth
// under rapid toggling to the number of distinct shrine ids touched, not the
// number of toggle events.
type pendingCoalescer struct {
	localStore store.LocalVisitStore
}

func newPendingCoalescer(localStore store.LocalVisitStore) *pendingCoalescer {
	return &pendingCoalescer{localStore: localStore}
}

// Apply folds a new (action, shrineID) intent into the pending queue:
//
//   - no existing op for the shrine: enqueue the new one;
//   - most recent existing op has the same action: no-op, the intent is
//     already represented;
//   - most recent existing op has the opposite action: remove every queued op
//     for the shrine and enqueue nothing, the pair cancels algebraically.
func (c *pendingCoalescer) Apply(ctx context.Context, action models.PendingAction, shrineID int64) error {
	log := logger.FromContext(ctx)

	ops, err := c.localStore.ListPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to inspect pending queue: %w", err)
	}

	var latest *models.PendingOperation
	for i := range ops {
		if ops[i].ShrineID == shrineID {
			latest = &ops[i]
		}
	}

	switch {
	case latest == nil:
		if _, err = c.localStore.EnqueuePending(ctx, action, shrineID); err != nil {
			return fmt.Errorf("failed to enqueue pending operation: %w", err)
		}

	case latest.Action == action:
		log.Debug().
			Str("action", string(action)).
			Int64("shrine_id", shrineID).
			Msg("pending operation already queued, dropping duplicate")

	default:
		// Opposite actions cancel: the queue's net effect for this shrine
		// becomes empty, matching the real-world effect of toggle-toggle.
		if err = c.localStore.DeletePendingForShrine(ctx, shrineID); err != nil {
			return fmt.Errorf("failed to cancel opposing pending operations: %w", err)
		}
		log.Debug().
			Str("action", string(action)).
			Int64("shrine_id", shrineID).
			Msg("pending operations cancelled out")
	}

	return nil
}
