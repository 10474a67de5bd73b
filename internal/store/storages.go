// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"

	"github.com/meguri-app/meguri/internal/config"
	"github.com/meguri-app/meguri/internal/logger"
)

// Storages aggregates every server-side repository behind one constructor.
type Storages struct {
	Users  UserRepository
	Visits VisitRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations, and wires the
// repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if err = db.MigrateServer(); err != nil {
		return nil, fmt.Errorf("migrate server database: %w", err)
	}

	return &Storages{
		Users:  NewUserRepository(db, log),
		Visits: NewVisitRepository(db, log),
		db:     db,
	}, nil
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
