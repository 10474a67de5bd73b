// SPDX-License-Identifier: Apache-2.0

package service

import (
	"github.com/meguri-app/meguri/internal/config"
	"github.com/meguri-app/meguri/internal/logger"
	"github.com/meguri-app/meguri/internal/store"
)

// Services aggregates the server-side business logic behind one constructor.
type Services struct {
	AuthService  AuthService
	VisitService VisitService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:  NewAuthService(storages.Users, cfg.App, logger),
		VisitService: NewVisitService(storages.Visits, logger),
	}
}
