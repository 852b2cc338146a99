/**
 * @description
 * This file contains the core HTTP handler plumbing plus the lease-facing
 * handlers: the tenant directory, renewal alerts, and the early-termination
 * penalty quote. Handlers parse the request, call the service layer, and
 * write the response; no business rules live here.
 */
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Sedictt/Leasely/internal/app"
	"github.com/Sedictt/Leasely/internal/store"
)

// Handler holds the application service that handlers will interact with.
type Handler struct {
	service *app.Service
}

// NewHandler creates a new Handler with the given service.
func NewHandler(service *app.Service) *Handler {
	return &Handler{service: service}
}

// handleListLeases returns every active lease with its tenant, unit, and
// property labels joined in, backing the landlord's tenant directory.
func (h *Handler) handleListLeases(w http.ResponseWriter, r *http.Request) {
	leases, err := h.service.TenantDirectory(r.Context())
	if err != nil {
		http.Error(w, "Failed to load leases", http.StatusInternalServerError)
		return
	}
	respondWithJSON(w, http.StatusOK, leases)
}

// handleRenewalAlerts returns the leases expiring within the renewal window,
// soonest first.
func (h *Handler) handleRenewalAlerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.service.RenewalAlerts(r.Context())
	if err != nil {
		http.Error(w, "Failed to load renewal alerts", http.StatusInternalServerError)
		return
	}
	respondWithJSON(w, http.StatusOK, alerts)
}

// handleTerminationQuote computes the early-termination penalty for a lease
// given a proposed move-out date. Nothing is persisted.
func (h *Handler) handleTerminationQuote(w http.ResponseWriter, r *http.Request) {
	leaseID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid lease ID", http.StatusBadRequest)
		return
	}

	var req struct {
		MoveOutDate string `json:"move_out_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	moveOut, err := time.Parse("2006-01-02", req.MoveOutDate)
	if err != nil {
		http.Error(w, "move_out_date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	result, err := h.service.TerminationQuote(r.Context(), leaseID, moveOut)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrLeaseNotFound):
			http.Error(w, "Lease not found", http.StatusNotFound)
		case errors.Is(err, app.ErrLeaseNotActive):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, app.ErrMoveOutInPast), errors.Is(err, app.ErrMoveOutBeforeLeaseStart):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		default:
			http.Error(w, "Failed to calculate termination quote", http.StatusInternalServerError)
		}
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

// respondWithJSON is a helper function to write JSON responses.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
