// SPDX-License-Identifier: Apache-2.0

// Package tui is the terminal front end: login/register flow, the shrine list
// with visited toggles, and the three-way conflict prompt raised by the
// smart merge.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/meguri-app/meguri/internal/auth"
	"github.com/meguri-app/meguri/internal/catalog"
	"github.com/meguri-app/meguri/internal/logger"
	"github.com/meguri-app/meguri/internal/service"
	"github.com/meguri-app/meguri/models"
)

// ErrUserQuit reports that the user closed the program from the login flow.
var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services *service.ClientServices
	provider *auth.ServerProvider
	shrines  []catalog.Shrine
	outcomes chan models.ReconcileOutcome
	logger   *logger.Logger
}

func New(services *service.ClientServices, provider *auth.ServerProvider, shrines []catalog.Shrine, logger *logger.Logger) *TUI {
	return &TUI{
		services: services,
		provider: provider,
		shrines:  shrines,
		outcomes: make(chan models.ReconcileOutcome, 4),
		logger:   logger,
	}
}

// DeliverOutcome hands a background reconciliation outcome to the running UI.
// Safe to call from any goroutine; outcomes are dropped when the buffer is
// full rather than blocking the sync worker.
func (t *TUI) DeliverOutcome(outcome models.ReconcileOutcome) {
	select {
	case t.outcomes <- outcome:
	default:
		t.logger.Warn().Str("action", string(outcome.Action)).Msg("reconcile outcome dropped, UI buffer full")
	}
}

// LoginFlow runs the menu/login/register screens. It returns once the user is
// signed in or chose to continue offline; ErrUserQuit when they closed the
// program instead.
func (t *TUI) LoginFlow(ctx context.Context) error {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(t.provider.IsAuthenticated()),
		"login":    NewLoginModel(ctx, t.provider),
		"register": NewRegisterModel(ctx, t.provider),
	}

	root := NewRootModel(pages, "menu")
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}

// MainLoop runs the shrine list until the user quits or logs out. A logout
// returns (true, nil) so the caller can restart the login flow.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services, t.provider, t.shrines, t.outcomes)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
