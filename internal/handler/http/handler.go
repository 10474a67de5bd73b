// SPDX-License-Identifier: Apache-2.0

package http

import (
	"github.com/meguri-app/meguri/internal/logger"
	"github.com/meguri-app/meguri/internal/service"
)

type Handler struct {
	services *service.Services
	version  string

	logger *logger.Logger
}

func NewHandler(services *service.Services, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		version:  version,
		logger:   logger,
	}
}
