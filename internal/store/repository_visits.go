// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/meguri-app/meguri/internal/logger"
	"github.com/meguri-app/meguri/models"
)

type visitRepository struct {
	*DB
	logger *logger.Logger
}

// NewVisitRepository wraps the server database handle with the
// VisitRepository contract.
func NewVisitRepository(db *DB, logger *logger.Logger) VisitRepository {
	return &visitRepository{
		DB:     db,
		logger: logger,
	}
}

func (v *visitRepository) GetAllVisits(ctx context.Context, userID int64) ([]models.VisitRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetAllVisitsQuery(userID)
	if err != nil {
		return nil, err
	}

	rows, err := v.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "visitRepository.GetAllVisits").Int64("user_id", userID).Msg("failed to query visits")
		return nil, fmt.Errorf("failed to query visits: %w", err)
	}
	defer rows.Close()

	var records []models.VisitRecord
	for rows.Next() {
		var record models.VisitRecord
		if err = rows.Scan(&record.RecordID, &record.UserID, &record.ShrineID, &record.VisitedAt); err != nil {
			log.Err(err).Str("func", "visitRepository.GetAllVisits").Int64("user_id", userID).Msg("failed to scan visit row")
			return nil, fmt.Errorf("failed to scan visit row: %w", err)
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating visit rows: %w", err)
	}

	return records, nil
}

func (v *visitRepository) UpsertVisit(ctx context.Context, userID, shrineID int64) (models.VisitRecord, error) {
	log := logger.FromContext(ctx)

	recordID := models.RemoteRecordID(userID, shrineID)
	query, args, err := buildUpsertVisitQuery(recordID, userID, shrineID, time.Now().UTC())
	if err != nil {
		return models.VisitRecord{}, err
	}

	var record models.VisitRecord
	row := v.DB.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&record.RecordID, &record.UserID, &record.ShrineID, &record.VisitedAt); err != nil {
		log.Err(err).
			Str("func", "visitRepository.UpsertVisit").
			Str("record_id", recordID).
			Msg("failed to upsert visit")
		return models.VisitRecord{}, fmt.Errorf("failed to upsert visit (record_id=%s): %w", recordID, err)
	}

	return record, nil
}

func (v *visitRepository) DeleteVisit(ctx context.Context, userID, shrineID int64) error {
	log := logger.FromContext(ctx)

	recordID := models.RemoteRecordID(userID, shrineID)
	query, args, err := buildDeleteVisitQuery(recordID)
	if err != nil {
		return err
	}

	res, err := v.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "visitRepository.DeleteVisit").
			Str("record_id", recordID).
			Msg("failed to delete visit")
		return fmt.Errorf("failed to delete visit (record_id=%s): %w", recordID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrVisitNotFound
	}

	return nil
}
