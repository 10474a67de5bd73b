// SPDX-License-Identifier: Apache-2.0

// Package auth defines the credential-provider boundary of the sync core.
//
// The sync engine and the reconciler depend only on CredentialProvider; they
// never see a concrete backend. Two variants ship with the application: a
// server-backed provider that logs in against the meguri API and persists the
// session locally, and a static provider fed a fixed token from the
// environment for headless runs.
package auth

import (
	"context"
	"errors"
	"sync"

	"github.com/meguri-app/meguri/models"
)

//go:generate mockgen -source=provider.go -destination=../mock/credential_provider_mock.go -package=mock

// ErrNoSession is returned by a SessionStore when no session row exists.
var ErrNoSession = errors.New("no local session")

// CredentialProvider exposes the current authentication state to the sync
// core.
//
// IsAuthenticated must reflect cached state and never require a network round
// trip: the sync engine consults it on every trigger, including while
// offline.
type CredentialProvider interface {
	// AccessToken returns the current bearer credential, or "" if the user is
	// anonymous.
	AccessToken(ctx context.Context) (string, error)

	// IsAuthenticated reports whether a user session is active.
	IsAuthenticated() bool

	// OnAuthChange registers fn to be invoked with the current user (nil when
	// anonymous). fn is guaranteed to fire at least once after the provider
	// finishes its initial load. The returned function unsubscribes.
	OnAuthChange(fn func(user *models.User)) (unsubscribe func())
}

// SessionStore persists the bearer credential across process restarts so the
// provider can answer IsAuthenticated offline.
type SessionStore interface {
	SaveSession(ctx context.Context, userID int64, login, token string) error
	// LoadSession returns ErrNoSession when no session row exists.
	LoadSession(ctx context.Context) (userID int64, login, token string, err error)
	ClearSession(ctx context.Context) error
}

// authFeed implements the OnAuthChange contract: subscribers registered after
// the initial load receive the current state immediately, every subscriber
// receives every subsequent transition, and unsubscribe is idempotent.
type authFeed struct {
	mu     sync.Mutex
	nextID int64
	subs   map[int64]func(*models.User)
	last   *models.User
	loaded bool
}

func newAuthFeed() *authFeed {
	return &authFeed{subs: make(map[int64]func(*models.User))}
}

func (f *authFeed) subscribe(fn func(*models.User)) func() {
	f.mu.Lock()
	id := f.nextID
	f.nextID++
	f.subs[id] = fn
	loaded, last := f.loaded, f.last
	f.mu.Unlock()

	// Late subscribers still get the guaranteed post-load invocation.
	if loaded {
		fn(last)
	}

	return func() {
		f.mu.Lock()
		delete(f.subs, id)
		f.mu.Unlock()
	}
}

func (f *authFeed) notify(user *models.User) {
	f.mu.Lock()
	f.last = user
	f.loaded = true
	fns := make([]func(*models.User), 0, len(f.subs))
	for _, fn := range f.subs {
		fns = append(fns, fn)
	}
	f.mu.Unlock()

	for _, fn := range fns {
		fn(user)
	}
}
