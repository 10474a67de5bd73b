// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meguri-app/meguri/internal/logger"
	"github.com/meguri-app/meguri/internal/store"
	"github.com/meguri-app/meguri/models"
)

// ─────────────────────────────────────────────
// Mock: store.VisitRepository
// ─────────────────────────────────────────────

type mockVisitRepository struct {
	getAllFn func(ctx context.Context, userID int64) ([]models.VisitRecord, error)
	upsertFn func(ctx context.Context, userID, shrineID int64) (models.VisitRecord, error)
	deleteFn func(ctx context.Context, userID, shrineID int64) error
}

func (m *mockVisitRepository) GetAllVisits(ctx context.Context, userID int64) ([]models.VisitRecord, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockVisitRepository) UpsertVisit(ctx context.Context, userID, shrineID int64) (models.VisitRecord, error) {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, userID, shrineID)
	}
	return models.VisitRecord{}, nil
}

func (m *mockVisitRepository) DeleteVisit(ctx context.Context, userID, shrineID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, shrineID)
	}
	return nil
}

func TestVisitService_ListVisits(t *testing.T) {
	visited := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	repo := &mockVisitRepository{
		getAllFn: func(_ context.Context, userID int64) ([]models.VisitRecord, error) {
			require.EqualValues(t, 5, userID)
			return []models.VisitRecord{
				{RecordID: "visit_5_7", UserID: 5, ShrineID: 7, VisitedAt: visited},
			}, nil
		},
	}
	svc := NewVisitService(repo, logger.Nop())

	records, err := svc.ListVisits(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.EqualValues(t, 7, records[0].ShrineID)
}

func TestVisitService_RecordVisit(t *testing.T) {
	repo := &mockVisitRepository{
		upsertFn: func(_ context.Context, userID, shrineID int64) (models.VisitRecord, error) {
			return models.VisitRecord{
				RecordID: models.RemoteRecordID(userID, shrineID),
				UserID:   userID,
				ShrineID: shrineID,
			}, nil
		},
	}
	svc := NewVisitService(repo, logger.Nop())

	record, err := svc.RecordVisit(context.Background(), 5, 7)
	require.NoError(t, err)
	assert.Equal(t, "visit_5_7", record.RecordID)
}

func TestVisitService_RecordVisit_StorageError(t *testing.T) {
	boom := errors.New("connection reset")
	repo := &mockVisitRepository{
		upsertFn: func(_ context.Context, _, _ int64) (models.VisitRecord, error) {
			return models.VisitRecord{}, boom
		},
	}
	svc := NewVisitService(repo, logger.Nop())

	_, err := svc.RecordVisit(context.Background(), 5, 7)
	assert.ErrorIs(t, err, boom)
}

func TestVisitService_RemoveVisit_NotFound(t *testing.T) {
	repo := &mockVisitRepository{
		deleteFn: func(_ context.Context, _, _ int64) error {
			return store.ErrVisitNotFound
		},
	}
	svc := NewVisitService(repo, logger.Nop())

	err := svc.RemoveVisit(context.Background(), 5, 9000)
	assert.ErrorIs(t, err, store.ErrVisitNotFound)
}
