/**
 * @description
 * This file contains the HTTP handlers for the complaint lifecycle: filing a
 * complaint, listing the caller's property thread, posting chat messages, and
 * the escalate / resolve transitions.
 */
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Sedictt/Leasely/internal/app"
	"github.com/Sedictt/Leasely/internal/domain"
	"github.com/Sedictt/Leasely/internal/store"
)

// handleCreateComplaint files a new complaint against a unit in the caller's
// property and seeds the thread with an opening system message.
func (h *Handler) handleCreateComplaint(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		RespondentUnitID string `json:"respondent_unit_id"`
		Category         string `json:"category"`
		Description      string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	unitID, err := uuid.Parse(req.RespondentUnitID)
	if err != nil {
		http.Error(w, "Invalid respondent unit ID", http.StatusBadRequest)
		return
	}

	complaint, err := h.service.CreateComplaint(r.Context(), userID, unitID, req.Category, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidCategory), errors.Is(err, app.ErrEmptyDescription):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, store.ErrUnitNotFound):
			http.Error(w, "Respondent unit not found", http.StatusNotFound)
		default:
			http.Error(w, "Failed to create complaint", http.StatusInternalServerError)
		}
		return
	}
	respondWithJSON(w, http.StatusCreated, complaint)
}

// handleListComplaints returns the complaints in the caller's property,
// newest first.
func (h *Handler) handleListComplaints(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	complaints, err := h.service.ListComplaints(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrLeaseNotFound) {
			http.Error(w, "No active lease for caller", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to load complaints", http.StatusInternalServerError)
		return
	}
	respondWithJSON(w, http.StatusOK, complaints)
}

// handleListComplaintMessages returns a complaint's thread oldest first.
func (h *Handler) handleListComplaintMessages(w http.ResponseWriter, r *http.Request) {
	complaintID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid complaint ID", http.StatusBadRequest)
		return
	}

	messages, err := h.service.ListComplaintMessages(r.Context(), complaintID)
	if err != nil {
		http.Error(w, "Failed to load messages", http.StatusInternalServerError)
		return
	}
	respondWithJSON(w, http.StatusOK, messages)
}

// handlePostComplaintMessage appends a chat message to a complaint thread.
// Empty content and unknown complaints are silently accepted; the thread
// simply does not change.
func (h *Handler) handlePostComplaintMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	complaintID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid complaint ID", http.StatusBadRequest)
		return
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.PostMessage(r.Context(), complaintID, userID, req.Content); err != nil {
		if errors.Is(err, app.ErrMessageRateLimited) {
			http.Error(w, err.Error(), http.StatusTooManyRequests)
			return
		}
		http.Error(w, "Failed to post message", http.StatusInternalServerError)
		return
	}
	respondWithJSON(w, http.StatusAccepted, map[string]string{"status": "ok"})
}

// handleEscalateComplaint moves an open complaint to escalated and notifies
// the landlord.
func (h *Handler) handleEscalateComplaint(w http.ResponseWriter, r *http.Request) {
	h.handleComplaintTransition(w, r, h.service.Escalate)
}

// handleResolveComplaint moves a complaint to resolved.
func (h *Handler) handleResolveComplaint(w http.ResponseWriter, r *http.Request) {
	h.handleComplaintTransition(w, r, h.service.Resolve)
}

func (h *Handler) handleComplaintTransition(
	w http.ResponseWriter,
	r *http.Request,
	transition func(ctx context.Context, complaintID, actorID uuid.UUID) (*domain.Complaint, error),
) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	complaintID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid complaint ID", http.StatusBadRequest)
		return
	}

	complaint, err := transition(r.Context(), complaintID, userID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrComplaintNotFound):
			http.Error(w, "Complaint not found", http.StatusNotFound)
		case errors.Is(err, app.ErrComplaintClosed), errors.Is(err, app.ErrAlreadyEscalated):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, "Failed to update complaint", http.StatusInternalServerError)
		}
		return
	}
	respondWithJSON(w, http.StatusOK, complaint)
}
