// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/meguri-app/meguri/models"
)

// NavigateTo switches the root router to another page. Payload, when set, is
// re-delivered to the target page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload interface{}
}

// LoginResult finishes the login flow on success; on error the login page
// shows it inline.
type LoginResult struct {
	Err      error
	Username string
	UserID   int64
}

// continueOffline ends the login flow without a session.
type continueOffline struct{}

type visitsLoadedMsg struct {
	ids     []int64
	pending int
	err     error
}

type toggleDoneMsg struct {
	ids     []int64
	pending int
	err     error
}

type reconcileOutcomeMsg struct {
	outcome models.ReconcileOutcome
}

type resolveDoneMsg struct {
	ids []int64
	err error
}

type logoutDoneMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
