// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"

	"github.com/meguri-app/meguri/internal/auth"
	"github.com/meguri-app/meguri/internal/logger"
	"github.com/meguri-app/meguri/internal/netwatch"
	"github.com/meguri-app/meguri/internal/service"
	"github.com/meguri-app/meguri/models"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the background workers that keep the local and cloud
// record sets converging without user action: one reconciles on login, one
// re-triggers the sync engine when connectivity returns.
//
// onOutcome receives every reconciliation outcome produced by the login
// worker; the UI uses it to surface three-way conflicts. A nil onOutcome
// drops outcomes silently.
func NewWorkers(
	ctx context.Context,
	credentials auth.CredentialProvider,
	online *netwatch.Monitor,
	services *service.ClientServices,
	onOutcome func(models.ReconcileOutcome),
	logger *logger.Logger,
) *Workers {
	return &Workers{
		workers: []Worker{
			newLoginReconcileWorker(ctx, credentials, services.ReconcileService, onOutcome, logger),
			newConnectivityWorker(ctx, online, services.SyncService, logger),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
