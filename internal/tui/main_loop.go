// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/meguri-app/meguri/internal/auth"
	"github.com/meguri-app/meguri/internal/catalog"
	"github.com/meguri-app/meguri/internal/service"
	"github.com/meguri-app/meguri/models"
)

// conflictChoice is the three-way resolution the user picks on the overlay.
type conflictChoice int

const (
	choiceMergeAll conflictChoice = iota
	choiceUseCloud
	choiceLocalWins
)

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices
	provider *auth.ServerProvider
	shrines  []catalog.Shrine
	outcomes chan models.ReconcileOutcome

	visited []int64
	idx     int
	pending int
	loading bool
	status  string
	errMsg  string

	conflict  *models.ConflictPartition
	resolving bool

	logout bool
}

func newMainLoopModel(
	ctx context.Context,
	services *service.ClientServices,
	provider *auth.ServerProvider,
	shrines []catalog.Shrine,
	outcomes chan models.ReconcileOutcome,
) mainLoopModel {
	return mainLoopModel{
		ctx:      ctx,
		services: services,
		provider: provider,
		shrines:  shrines,
		outcomes: outcomes,
		loading:  true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadVisits(), m.cmdWaitOutcome())
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case visitsLoadedMsg:
		m.loading = false
		m.pending = msg.pending
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.visited = msg.ids
		return m, nil

	case toggleDoneMsg:
		m.pending = msg.pending
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.visited = msg.ids
		return m, nil

	case reconcileOutcomeMsg:
		cmds := []tea.Cmd{m.cmdWaitOutcome()}
		outcome := msg.outcome

		if outcome.Action == models.ReconcileAskUser && outcome.Conflict != nil {
			m.conflict = outcome.Conflict
			return m, tea.Batch(cmds...)
		}

		m.status = mergeStatusLine(outcome)
		m.loading = true
		cmds = append(cmds, m.cmdLoadVisits(), m.cmdClearStatusLater())
		return m, tea.Batch(cmds...)

	case resolveDoneMsg:
		m.resolving = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.conflict = nil
		m.errMsg = ""
		m.visited = msg.ids
		m.status = "conflict resolved"
		return m, m.cmdClearStatusLater()

	case logoutDoneMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.logout = true
		return m, tea.Quit

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "clipboard: " + msg.err.Error()
			return m, nil
		}
		m.status = "visited list copied"
		return m, m.cmdClearStatusLater()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		if m.conflict != nil {
			return m.updateConflict(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m mainLoopModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.shrines)-1 {
			m.idx++
		}
	case "enter", " ":
		if len(m.shrines) == 0 {
			return m, nil
		}
		return m, m.cmdToggle(m.shrines[m.idx].ID)
	case "r":
		m.loading = true
		return m, m.cmdLoadVisits()
	case "s":
		m.services.SyncService.TriggerSync(m.ctx)
		m.status = "sync triggered"
		return m, m.cmdClearStatusLater()
	case "c":
		return m, m.cmdCopyVisited()
	case "L":
		return m, m.cmdLogout()
	}

	return m, nil
}

func (m mainLoopModel) updateConflict(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.resolving {
		return m, nil
	}

	switch msg.String() {
	case "m":
		m.resolving = true
		return m, m.cmdResolve(choiceMergeAll)
	case "r":
		m.resolving = true
		return m, m.cmdResolve(choiceUseCloud)
	case "l":
		m.resolving = true
		return m, m.cmdResolve(choiceLocalWins)
	case "q", "ctrl+c":
		return m, tea.Quit
	}

	return m, nil
}

func (m mainLoopModel) View() string {
	if m.conflict != nil {
		return m.viewConflict()
	}

	var b strings.Builder

	if m.loading {
		b.WriteString("Loading...\n")
	} else if len(m.shrines) == 0 {
		b.WriteString("No shrines in the catalog\n")
	} else {
		for i, shrine := range m.shrines {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}

			mark := "[ ]"
			if slices.Contains(m.visited, shrine.ID) {
				mark = "[x]"
			}

			b.WriteString(fmt.Sprintf("%s%s %s", cursor, mark, fitText(shrine.Name, 34)))
			b.WriteString(helpStyle.Render(fmt.Sprintf("  %s, %s", shrine.City, shrine.Prefecture)))
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	footer := "enter: toggle │ c: copy │ s: sync │ r: reload │ L: log out │ q: quit"
	return renderPage(m.header(), strings.TrimRight(b.String(), "\n"), footer)
}

func (m mainLoopModel) header() string {
	header := "MEGURI"
	if m.provider.IsAuthenticated() {
		if user := m.provider.CurrentUser(); user != nil {
			header += "  " + helpStyle.Render("("+user.Login+")")
		}
	} else {
		header += "  " + helpStyle.Render("(offline)")
	}
	if m.pending > 0 {
		header += fmt.Sprintf("  %d pending", m.pending)
	}
	return header
}

func (m mainLoopModel) viewConflict() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Your device and the cloud disagree"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("only on this device : %s\n", formatIDList(m.conflict.OnlyLocal)))
	b.WriteString(fmt.Sprintf("only in the cloud   : %s\n", formatIDList(m.conflict.OnlyCloud)))
	b.WriteString(fmt.Sprintf("in both             : %s\n", formatIDList(m.conflict.Common)))
	b.WriteString("\n")

	if m.resolving {
		b.WriteString("Resolving...\n")
	} else {
		b.WriteString("m: keep everything │ r: cloud wins │ l: this device wins\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return overlayBoxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func (m mainLoopModel) cmdLoadVisits() tea.Cmd {
	ctx := m.ctx
	visits := m.services.VisitService

	return func() tea.Msg {
		ids, err := visits.GetVisits(ctx)
		return visitsLoadedMsg{ids: ids, pending: visits.PendingCount(ctx), err: err}
	}
}

func (m mainLoopModel) cmdToggle(shrineID int64) tea.Cmd {
	ctx := m.ctx
	visits := m.services.VisitService
	current := m.visited

	return func() tea.Msg {
		ids, err := visits.ToggleVisitOptimistic(ctx, shrineID, current)
		return toggleDoneMsg{ids: ids, pending: visits.PendingCount(ctx), err: err}
	}
}

func (m mainLoopModel) cmdResolve(choice conflictChoice) tea.Cmd {
	ctx := m.ctx
	reconciler := m.services.ReconcileService
	conflict := m.conflict

	return func() tea.Msg {
		var (
			ids []int64
			err error
		)
		switch choice {
		case choiceMergeAll:
			ids, err = reconciler.MergeAll(ctx, conflict)
		case choiceUseCloud:
			ids, err = reconciler.UseCloud(ctx)
		case choiceLocalWins:
			ids, err = reconciler.ReplaceCloudWithLocal(ctx, conflict)
		}
		return resolveDoneMsg{ids: ids, err: err}
	}
}

func (m mainLoopModel) cmdCopyVisited() tea.Cmd {
	visited := m.visited

	return func() tea.Msg {
		parts := make([]string, len(visited))
		for i, id := range visited {
			parts[i] = strconv.FormatInt(id, 10)
		}
		return copiedMsg{err: clipboard.WriteAll(strings.Join(parts, ", "))}
	}
}

func (m mainLoopModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	visits := m.services.VisitService

	return func() tea.Msg {
		return logoutDoneMsg{err: visits.Logout(ctx)}
	}
}

func (m mainLoopModel) cmdWaitOutcome() tea.Cmd {
	outcomes := m.outcomes

	return func() tea.Msg {
		outcome, ok := <-outcomes
		if !ok {
			return nil
		}
		return reconcileOutcomeMsg{outcome: outcome}
	}
}

func (m mainLoopModel) cmdClearStatusLater() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func mergeStatusLine(outcome models.ReconcileOutcome) string {
	switch outcome.Action {
	case models.ReconcileUploadedLocal:
		return fmt.Sprintf("synced: uploaded %d visits", outcome.Uploaded)
	case models.ReconcileUseCloud:
		if outcome.SyncedPending > 0 {
			return fmt.Sprintf("synced: %d queued ops sent", outcome.SyncedPending)
		}
		return "synced with the cloud"
	case models.ReconcileSkip:
		return "sync skipped (offline)"
	default:
		return "synced"
	}
}

func formatIDList(ids []int64) string {
	if len(ids) == 0 {
		return "-"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ", ")
}
