// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/meguri-app/meguri/internal/auth"
	"github.com/meguri-app/meguri/internal/logger"
	"github.com/meguri-app/meguri/models"
)

type localVisitRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalVisitRepository wraps the client SQLite handle with the
// LocalVisitStore contract.
func NewLocalVisitRepository(db *DB, logger *logger.Logger) LocalVisitStore {
	return &localVisitRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localVisitRepository) GetAll(ctx context.Context) ([]int64, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, getAllVisits)
	if err != nil {
		log.Err(err).Str("func", "localVisitRepository.GetAll").Msg("failed to query visited set")
		return nil, fmt.Errorf("failed to query visited set: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			log.Err(err).Str("func", "localVisitRepository.GetAll").Msg("failed to scan visit row")
			return nil, fmt.Errorf("failed to scan visit row: %w", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating visit rows: %w", err)
	}

	return ids, nil
}

func (l *localVisitRepository) Add(ctx context.Context, shrineID int64) error {
	log := logger.FromContext(ctx)

	if _, err := l.DB.ExecContext(ctx, upsertVisit, shrineID, time.Now().UTC()); err != nil {
		log.Err(err).Str("func", "localVisitRepository.Add").Int64("shrine_id", shrineID).Msg("failed to upsert visit")
		return fmt.Errorf("failed to upsert visit (shrine_id=%d): %w", shrineID, err)
	}

	return nil
}

func (l *localVisitRepository) Remove(ctx context.Context, shrineID int64) error {
	log := logger.FromContext(ctx)

	// Deleting an absent row affects zero rows, which is the no-op success
	// the contract asks for.
	if _, err := l.DB.ExecContext(ctx, deleteVisit, shrineID); err != nil {
		log.Err(err).Str("func", "localVisitRepository.Remove").Int64("shrine_id", shrineID).Msg("failed to delete visit")
		return fmt.Errorf("failed to delete visit (shrine_id=%d): %w", shrineID, err)
	}

	return nil
}

func (l *localVisitRepository) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, err := l.DB.ExecContext(ctx, clearVisits); err != nil {
		log.Err(err).Str("func", "localVisitRepository.Clear").Msg("failed to clear visited set")
		return fmt.Errorf("failed to clear visited set: %w", err)
	}

	return nil
}

func (l *localVisitRepository) EnqueuePending(ctx context.Context, action models.PendingAction, shrineID int64) (int64, error) {
	log := logger.FromContext(ctx)

	res, err := l.DB.ExecContext(ctx, enqueuePendingOp, string(action), shrineID, time.Now().UTC())
	if err != nil {
		log.Err(err).Str("func", "localVisitRepository.EnqueuePending").
			Str("action", string(action)).
			Int64("shrine_id", shrineID).
			Msg("failed to enqueue pending operation")
		return 0, fmt.Errorf("failed to enqueue pending operation: %w", err)
	}

	opID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read pending operation id: %w", err)
	}

	return opID, nil
}

func (l *localVisitRepository) ListPending(ctx context.Context) ([]models.PendingOperation, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, listPendingOps)
	if err != nil {
		log.Err(err).Str("func", "localVisitRepository.ListPending").Msg("failed to query pending queue")
		return nil, fmt.Errorf("failed to query pending queue: %w", err)
	}
	defer rows.Close()

	var ops []models.PendingOperation
	for rows.Next() {
		var op models.PendingOperation
		var action string
		if err = rows.Scan(&op.ID, &action, &op.ShrineID, &op.CreatedAt); err != nil {
			log.Err(err).Str("func", "localVisitRepository.ListPending").Msg("failed to scan pending operation row")
			return nil, fmt.Errorf("failed to scan pending operation row: %w", err)
		}
		op.Action = models.PendingAction(action)
		ops = append(ops, op)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating pending operation rows: %w", err)
	}

	return ops, nil
}

func (l *localVisitRepository) DequeuePending(ctx context.Context, opID int64) error {
	if _, err := l.DB.ExecContext(ctx, dequeuePendingOp, opID); err != nil {
		return fmt.Errorf("failed to dequeue pending operation (id=%d): %w", opID, err)
	}
	return nil
}

func (l *localVisitRepository) DeletePendingForShrine(ctx context.Context, shrineID int64) error {
	if _, err := l.DB.ExecContext(ctx, deletePendingOpsForShrine, shrineID); err != nil {
		return fmt.Errorf("failed to delete pending operations (shrine_id=%d): %w", shrineID, err)
	}
	return nil
}

func (l *localVisitRepository) ClearPending(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, err := l.DB.ExecContext(ctx, clearPendingOps); err != nil {
		log.Err(err).Str("func", "localVisitRepository.ClearPending").Msg("failed to clear pending queue")
		return fmt.Errorf("failed to clear pending queue: %w", err)
	}

	return nil
}

func (l *localVisitRepository) PendingCount(ctx context.Context) (int, error) {
	var count int
	if err := l.DB.QueryRowContext(ctx, countPendingOps).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count pending queue: %w", err)
	}
	return count, nil
}

func (l *localVisitRepository) SaveSession(ctx context.Context, userID int64, login, token string) error {
	if _, err := l.DB.ExecContext(ctx, saveLocalSession, userID, login, token, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (l *localVisitRepository) LoadSession(ctx context.Context) (int64, string, string, error) {
	var userID int64
	var login, token string

	err := l.DB.QueryRowContext(ctx, loadLocalSession).Scan(&userID, &login, &token)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, "", "", auth.ErrNoSession
	}
	if err != nil {
		return 0, "", "", fmt.Errorf("failed to load session: %w", err)
	}

	return userID, login, token, nil
}

func (l *localVisitRepository) ClearSession(ctx context.Context) error {
	if _, err := l.DB.ExecContext(ctx, clearLocalSession); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
