// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"

	"github.com/meguri-app/meguri/internal/logger"
	"github.com/meguri-app/meguri/internal/netwatch"
	"github.com/meguri-app/meguri/internal/service"
)

// connectivityWorker re-triggers the sync engine on the offline-to-online
// transition so ops queued while disconnected drain as soon as the server is
// reachable again. Offline transitions need no action: the engine checks the
// signal itself before draining.
type connectivityWorker struct {
	ctx     context.Context
	monitor *netwatch.Monitor
	syncer  service.ClientSyncService
	logger  *logger.Logger
}

func newConnectivityWorker(
	ctx context.Context,
	monitor *netwatch.Monitor,
	syncer service.ClientSyncService,
	logger *logger.Logger,
) *connectivityWorker {
	return &connectivityWorker{
		ctx:     ctx,
		monitor: monitor,
		syncer:  syncer,
		logger:  logger,
	}
}

func (w *connectivityWorker) Run() {
	w.monitor.Subscribe(func(online bool) {
		if !online {
			return
		}

		w.logger.Debug().Msg("back online, triggering sync")
		w.syncer.TriggerSync(w.ctx)
	})
}
