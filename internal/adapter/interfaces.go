// SPDX-License-Identifier: Apache-2.0

// Package adapter implements the client-side transport to the meguri server:
// a stateless request wrapper issuing authenticated list/upsert/delete calls
// against the remote visit store, plus the auth endpoints.
//
// The adapter performs no retries; retry policy lives in the background sync
// engine. Remote failures are classified into the two sentinel errors the
// sync core cares about: ErrUnauthorized and ErrUnavailable.
package adapter

import (
	"context"

	"github.com/meguri-app/meguri/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// VisitRecordClient is the surface the sync core depends on: per-record
// operations against the remote visit store for the current user. All calls
// require a bearer credential to have been set on the adapter.
type VisitRecordClient interface {
	// List returns every visit record of the authenticated user.
	List(ctx context.Context) ([]models.VisitRecord, error)

	// Upsert marks shrineID visited. Idempotent by design: the remote store
	// keys records by a deterministic composite id, so repeating the call
	// rewrites visited_at and nothing else.
	Upsert(ctx context.Context, shrineID int64) (models.VisitRecord, error)

	// Delete unmarks shrineID. A "not found" response is success: the record
	// being already gone is the desired end state, not an error.
	Delete(ctx context.Context, shrineID int64) error
}

// ServerAdapter is the full client transport: record operations plus session
// establishment and the connectivity probe.
type ServerAdapter interface {
	VisitRecordClient

	// Register creates an account and caches the returned bearer token.
	Register(ctx context.Context, user models.User) (models.Token, error)

	// Login authenticates and caches the returned bearer token.
	Login(ctx context.Context, user models.User) (models.Token, error)

	// Ping performs an unauthenticated reachability check, used by the
	// connectivity monitor.
	Ping(ctx context.Context) error

	// SetToken replaces the cached bearer credential ("" clears it).
	SetToken(token string)

	// Token returns the cached bearer credential.
	Token() string
}
