// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"

	"github.com/meguri-app/meguri/internal/config"
	"github.com/meguri-app/meguri/internal/logger"
)

// ClientStorages aggregates the client-side persistence layer.
type ClientStorages struct {
	Visits LocalVisitStore

	db *DB
}

// NewClientStorages opens the local SQLite database and wires the local visit
// store.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("connect sqlite: %w", err)
	}

	return &ClientStorages{
		Visits: NewLocalVisitRepository(db, log),
		db:     db,
	}, nil
}

// Close releases the underlying database handle.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}
