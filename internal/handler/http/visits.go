// SPDX-License-Identifier: Apache-2.0

package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/meguri-app/meguri/internal/logger"
	"github.com/meguri-app/meguri/internal/store"
	"github.com/meguri-app/meguri/internal/utils"
	"github.com/meguri-app/meguri/models"
)

// listVisits returns every visit record of the authenticated user as a bare
// JSON array.
func (h *Handler) listVisits(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	records, err := h.services.VisitService.ListVisits(ctx, userID)
	if err != nil {
		log.Err(err).Msg("failed to list visits")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if records == nil {
		records = []models.VisitRecord{}
	}
	utils.WriteJSON(w, records, http.StatusOK)
}

// upsertVisit marks the shrine visited. Repeating the call for the same
// shrine is not an error: the record's visited_at is rewritten.
func (h *Handler) upsertVisit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	shrineID, err := shrineIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid shrine id")
		http.Error(w, "invalid shrine id", http.StatusBadRequest)
		return
	}

	record, err := h.services.VisitService.RecordVisit(ctx, userID, shrineID)
	if err != nil {
		log.Err(err).Int64("shrine_id", shrineID).Msg("failed to record visit")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}

// deleteVisit unmarks the shrine. A missing record yields 404, which clients
// are expected to treat as success: the record being gone is the desired end
// state.
func (h *Handler) deleteVisit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	shrineID, err := shrineIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid shrine id")
		http.Error(w, "invalid shrine id", http.StatusBadRequest)
		return
	}

	if err = h.services.VisitService.RemoveVisit(ctx, userID, shrineID); err != nil {
		if errors.Is(err, store.ErrVisitNotFound) {
			http.Error(w, "visit not found", http.StatusNotFound)
			return
		}
		log.Err(err).Int64("shrine_id", shrineID).Msg("failed to remove visit")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func shrineIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "shrineID"), 10, 64)
}
