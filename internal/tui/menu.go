// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type MenuModel struct {
	items  []string
	idx    int
	status string

	// hasSession skips straight to the list: a restored session needs no
	// login round trip.
	hasSession bool
}

func NewMenuModel(hasSession bool) *MenuModel {
	return &MenuModel{
		items:      []string{"Sign in", "Register", "Continue offline"},
		hasSession: hasSession,
	}
}

func (m *MenuModel) Init() tea.Cmd {
	if m.hasSession {
		return func() tea.Msg { return continueOffline{} }
	}
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "enter":
		switch m.idx {
		case 0:
			return m, func() tea.Msg { return NavigateTo{Page: "login"} }
		case 1:
			return m, func() tea.Msg { return NavigateTo{Page: "register"} }
		default:
			return m, func() tea.Msg { return continueOffline{} }
		}
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder

	if m.status != "" {
		b.WriteString("OK: ")
		b.WriteString(m.status)
		b.WriteString("\n\n")
	}

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %d. %s\n", cursor, i+1, item))
	}

	return renderPage("MEGURI", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: move")
}
