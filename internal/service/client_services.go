// SPDX-License-Identifier: Apache-2.0

package service

import (
	"github.com/meguri-app/meguri/internal/adapter"
	"github.com/meguri-app/meguri/internal/auth"
	"github.com/meguri-app/meguri/internal/logger"
	"github.com/meguri-app/meguri/internal/netwatch"
	"github.com/meguri-app/meguri/internal/store"
)

// ClientServices aggregates the sync core behind one constructor.
type ClientServices struct {
	SyncService      ClientSyncService
	ReconcileService ClientReconcileService
	VisitService     ClientVisitService
}

func NewClientServices(
	storages *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	credentials auth.CredentialProvider,
	terminator SessionTerminator,
	online netwatch.Signal,
	logger *logger.Logger,
) *ClientServices {
	syncSvc := NewClientSyncService(storages.Visits, serverAdapter, credentials, online, logger)

	return &ClientServices{
		SyncService:      syncSvc,
		ReconcileService: NewClientReconcileService(storages.Visits, serverAdapter, syncSvc, logger),
		VisitService:     NewClientVisitService(storages.Visits, serverAdapter, credentials, terminator, syncSvc, logger),
	}
}
