// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"

	"github.com/meguri-app/meguri/internal/logger"
	"github.com/meguri-app/meguri/internal/store"
	"github.com/meguri-app/meguri/models"
)

type visitService struct {
	visitRepository store.VisitRepository
	logger          *logger.Logger
}

// NewVisitService wraps a VisitRepository with the VisitService contract.
func NewVisitService(visitRepository store.VisitRepository, logger *logger.Logger) VisitService {
	return &visitService{
		visitRepository: visitRepository,
		logger:          logger,
	}
}

// ListVisits returns every visit record belonging to userID, ordered by
// shrine ID.
func (v *visitService) ListVisits(ctx context.Context, userID int64) ([]models.VisitRecord, error) {
	records, err := v.visitRepository.GetAllVisits(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list visits: %w", err)
	}

	return records, nil
}

// RecordVisit marks shrineID as visited for userID. Repeated calls for the
// same shrine refresh the visit timestamp instead of failing.
func (v *visitService) RecordVisit(ctx context.Context, userID, shrineID int64) (models.VisitRecord, error) {
	log := logger.FromContext(ctx)

	record, err := v.visitRepository.UpsertVisit(ctx, userID, shrineID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Int64("shrine_id", shrineID).Msg("failed to record visit")
		return models.VisitRecord{}, fmt.Errorf("failed to record visit: %w", err)
	}

	return record, nil
}

// RemoveVisit deletes the visit record for shrineID. Returns
// store.ErrVisitNotFound when no such record exists; the handler maps that to
// 404 and clients treat it as an already-satisfied delete.
func (v *visitService) RemoveVisit(ctx context.Context, userID, shrineID int64) error {
	return v.visitRepository.DeleteVisit(ctx, userID, shrineID)
}
