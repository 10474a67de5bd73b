// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"sync"

	"github.com/meguri-app/meguri/internal/auth"
	"github.com/meguri-app/meguri/internal/logger"
	"github.com/meguri-app/meguri/internal/service"
	"github.com/meguri-app/meguri/models"
)

// loginReconcileWorker runs a smart merge once per anonymous-to-authenticated
// transition. Repeated notifications for the same user and logout
// notifications are ignored.
type loginReconcileWorker struct {
	ctx         context.Context
	credentials auth.CredentialProvider
	reconciler  service.ClientReconcileService
	onOutcome   func(models.ReconcileOutcome)
	logger      *logger.Logger

	mu       sync.Mutex
	lastUser *int64
}

func newLoginReconcileWorker(
	ctx context.Context,
	credentials auth.CredentialProvider,
	reconciler service.ClientReconcileService,
	onOutcome func(models.ReconcileOutcome),
	logger *logger.Logger,
) *loginReconcileWorker {
	return &loginReconcileWorker{
		ctx:         ctx,
		credentials: credentials,
		reconciler:  reconciler,
		onOutcome:   onOutcome,
		logger:      logger,
	}
}

func (w *loginReconcileWorker) Run() {
	w.credentials.OnAuthChange(w.handleAuthChange)
}

func (w *loginReconcileWorker) handleAuthChange(user *models.User) {
	w.mu.Lock()
	wasAnonymous := w.lastUser == nil
	sameUser := w.lastUser != nil && user != nil && *w.lastUser == user.UserID
	if user == nil {
		w.lastUser = nil
	} else {
		id := user.UserID
		w.lastUser = &id
	}
	w.mu.Unlock()

	if user == nil || sameUser {
		return
	}
	if !wasAnonymous {
		// Account switch without an intervening logout notification. Treat it
		// as a fresh login.
		w.logger.Warn().Int64("user_id", user.UserID).Msg("auth changed without logout, reconciling")
	}

	// OnAuthChange callbacks run on the provider's goroutine; the merge goes
	// to its own so a slow server cannot stall other subscribers.
	go func() {
		outcome, err := w.reconciler.SmartMerge(w.ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("smart merge after login failed")
			return
		}

		w.logger.Info().
			Str("action", string(outcome.Action)).
			Int("uploaded", outcome.Uploaded).
			Msg("smart merge after login finished")

		if w.onOutcome != nil {
			w.onOutcome(outcome)
		}
	}()
}
