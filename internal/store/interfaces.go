// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"

	"github.com/meguri-app/meguri/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_repositories_mock.go -package=mock

// UserRepository persists user accounts on the server side.
type UserRepository interface {
	// CreateUser inserts a new account and returns it with the assigned
	// UserID. Returns ErrLoginAlreadyExists on a duplicate login.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByLogin returns the account for login, or ErrNoUserWasFound.
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// VisitRepository persists per-user visit records on the server side.
// Records are keyed by the deterministic composite id
// models.RemoteRecordID(userID, shrineID), which makes every write
// idempotent.
type VisitRepository interface {
	// GetAllVisits returns every visit record of userID ordered by shrine id.
	GetAllVisits(ctx context.Context, userID int64) ([]models.VisitRecord, error)

	// UpsertVisit inserts the record or, if it already exists, rewrites its
	// visited_at. Returns the stored record.
	UpsertVisit(ctx context.Context, userID, shrineID int64) (models.VisitRecord, error)

	// DeleteVisit removes the record. Returns ErrVisitNotFound if it did not
	// exist.
	DeleteVisit(ctx context.Context, userID, shrineID int64) error
}
