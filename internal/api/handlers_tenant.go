/**
 * @description
 * This file contains the HTTP handlers for the tenant portal surfaces that
 * are not complaint threads: the neighbors page, the respondent unit picker,
 * the knowledge-base concierge, and the sidebar's unread-inquiry badge.
 */
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Sedictt/Leasely/internal/store"
)

// handleNeighbors lists the occupied units in the caller's property, the
// caller's own unit excluded.
func (h *Handler) handleNeighbors(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	neighbors, err := h.service.Neighbors(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrLeaseNotFound) {
			http.Error(w, "No active lease for caller", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to load neighbors", http.StatusInternalServerError)
		return
	}
	respondWithJSON(w, http.StatusOK, neighbors)
}

// handleRespondentUnits lists the units in the caller's property that a
// complaint can be filed against.
func (h *Handler) handleRespondentUnits(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	units, err := h.service.RespondentUnits(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrLeaseNotFound) {
			http.Error(w, "No active lease for caller", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to load units", http.StatusInternalServerError)
		return
	}
	respondWithJSON(w, http.StatusOK, units)
}

// handleConciergeAsk answers a tenant question from the property's knowledge
// base. Unanswerable questions get a fixed fallback, never an error.
func (h *Handler) handleConciergeAsk(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		Query string `json:"query"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	answer, err := h.service.Ask(r.Context(), userID, req.Query)
	if err != nil {
		if errors.Is(err, store.ErrLeaseNotFound) {
			http.Error(w, "No active lease for caller", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to answer question", http.StatusInternalServerError)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"answer": answer})
}

// handleUnreadInquiryCount returns the count behind the sidebar badge. The
// value is served from the cache kept warm by the refresh job, falling back
// to the database when the cache is cold.
func (h *Handler) handleUnreadInquiryCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.UnreadInquiryCount(r.Context())
	if err != nil {
		http.Error(w, "Failed to load unread count", http.StatusInternalServerError)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]int{"count": count})
}
