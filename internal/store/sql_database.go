// SPDX-License-Identifier: Apache-2.0

// Package store contains both persistence layers of the application: the
// server's PostgreSQL repositories (users, visit records) and the client's
// SQLite-backed local store (visited set, pending-operation queue, cached
// session).
package store

import (
	"database/sql"

	"github.com/meguri-app/meguri/internal/logger"
	"github.com/meguri-app/meguri/migrations"
)

// DB wraps a sql.DB handle together with the application logger. The same
// wrapper is shared by the PostgreSQL (server) and SQLite (client)
// constructors.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// MigrateServer applies the embedded PostgreSQL migrations.
func (db *DB) MigrateServer() error {
	return migrations.MigrateServer(db.DB)
}
