// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/meguri-app/meguri/internal/adapter"
	"github.com/meguri-app/meguri/internal/auth"
	"github.com/meguri-app/meguri/internal/catalog"
	"github.com/meguri-app/meguri/internal/config"
	"github.com/meguri-app/meguri/internal/logger"
	"github.com/meguri-app/meguri/internal/netwatch"
	"github.com/meguri-app/meguri/internal/service"
	"github.com/meguri-app/meguri/internal/store"
	"github.com/meguri-app/meguri/internal/tui"
	"github.com/meguri-app/meguri/internal/workers"
)

type App struct {
	services *service.ClientServices
	provider *auth.ServerProvider
	monitor  *netwatch.Monitor
	workers  *workers.Workers
	tui      *tui.TUI
	logger   *logger.Logger
}

// NewApp assembles the full client dependency graph. ctx bounds the
// background pieces (probe loop, sync workers); cancelling it stops them.
func NewApp(ctx context.Context, log *logger.Logger) (*App, error) {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return nil, fmt.Errorf("load client config: %w", err)
	}
	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	serverAdapter := adapter.NewHTTPServerAdapter(cfg.Adapter)

	provider := auth.NewServerProvider(serverAdapter, storages.Visits, log)
	provider.Load(ctx)

	monitor := netwatch.NewMonitor(serverAdapter.Ping, cfg.Workers.NetProbeInterval, log)

	svcs := service.NewClientServices(storages, serverAdapter, provider, provider, monitor, log)

	shrines, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("load shrine catalog: %w", err)
	}

	ui := tui.New(svcs, provider, shrines, log)

	wrk := workers.NewWorkers(ctx, provider, monitor, svcs, ui.DeliverOutcome, log)

	return &App{
		services: svcs,
		provider: provider,
		monitor:  monitor,
		workers:  wrk,
		tui:      ui,
		logger:   log,
	}, nil
}

// Run starts the background workers and drives the UI: login flow, then the
// shrine list, looping back to login after a logout.
func (a *App) Run(ctx context.Context) error {
	a.monitor.Start(ctx)
	a.workers.Run()

	for {
		if err := a.tui.LoginFlow(ctx); err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return fmt.Errorf("login flow: %w", err)
		}

		logout, err := a.tui.MainLoop(ctx)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		a.logger.Info().Msg("logged out, returning to login flow")
	}
}
