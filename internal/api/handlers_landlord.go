/**
 * @description
 * This file contains the HTTP handlers backing the landlord portal: the task
 * list, the income/expense ledger with its summary, and the portfolio
 * statistics page.
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
	"github.com/Sedictt/Leasely/internal/domain"
	"github.com/Sedictt/Leasely/internal/store"
)

// handleCreateTask adds a task to the landlord's list. Priority defaults to
// medium when omitted.
func (h *Handler) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		Title       string  `json:"title"`
		Description *string `json:"description"`
		Priority    string  `json:"priority"`
		PropertyID  *string `json:"property_id"`
		DueDate     *string `json:"due_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	task := &domain.Task{
		LandlordID:  userID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
	}
	if req.PropertyID != nil {
		propertyID, err := uuid.Parse(*req.PropertyID)
		if err != nil {
			http.Error(w, "Invalid property ID", http.StatusBadRequest)
			return
		}
		task.PropertyID = &propertyID
	}
	if req.DueDate != nil {
		due, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			http.Error(w, "due_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		task.DueDate = &due
	}

	created, err := h.service.CreateTask(r.Context(), task)
	if err != nil {
		if errors.Is(err, app.ErrEmptyTitle) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Failed to create task", http.StatusInternalServerError)
		return
	}
	respondWithJSON(w, http.StatusCreated, created)
}

// handleListTasks returns the landlord's tasks, pending first.
func (h *Handler) handleListTasks(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	tasks, err := h.service.ListTasks(r.Context(), userID)
	if err != nil {
		http.Error(w, "Failed to load tasks", http.StatusInternalServerError)
		return
	}
	respondWithJSON(w, http.StatusOK, tasks)
}

// handleToggleTask flips a task between pending and completed.
func (h *Handler) handleToggleTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid task ID", http.StatusBadRequest)
		return
	}

	task, err := h.service.ToggleTask(r.Context(), taskID)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			http.Error(w, "Task not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to update task", http.StatusInternalServerError)
		return
	}
	respondWithJSON(w, http.StatusOK, task)
}

// handleDeleteTask removes a task.
func (h *Handler) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid task ID", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteTask(r.Context(), taskID); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			http.Error(w, "Task not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to delete task", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleCreateTransaction records an income or expense entry in the ledger.
func (h *Handler) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		Type        string  `json:"type"`
		Category    string  `json:"category"`
		Description *string `json:"description"`
		Amount      int64   `json:"amount"`
		Date        string  `json:"date"`
		PropertyID  *string `json:"property_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	tx := &domain.Transaction{
		LandlordID:  userID,
		Type:        req.Type,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        time.Now(),
	}
	if req.Date != "" {
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		tx.Date = date
	}
	if req.PropertyID != nil {
		propertyID, err := uuid.Parse(*req.PropertyID)
		if err != nil {
			http.Error(w, "Invalid property ID", http.StatusBadRequest)
			return
		}
		tx.PropertyID = &propertyID
	}

	created, err := h.service.RecordTransaction(r.Context(), tx)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidTransactionType),
			errors.Is(err, app.ErrInvalidAmount),
			errors.Is(err, app.ErrEmptyCategory):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "Failed to record transaction", http.StatusInternalServerError)
		}
		return
	}
	respondWithJSON(w, http.StatusCreated, created)
}

// handleListTransactions returns the landlord's ledger, newest first. An
// optional ?type=income|expense query filters by direction.
func (h *Handler) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	transactions, err := h.service.ListTransactions(r.Context(), userID, r.URL.Query().Get("type"))
	if err != nil {
		http.Error(w, "Failed to load transactions", http.StatusInternalServerError)
		return
	}
	respondWithJSON(w, http.StatusOK, transactions)
}

// handleFinanceSummary returns the totals for the finances page header cards.
func (h *Handler) handleFinanceSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	summary, err := h.service.FinanceSummary(r.Context(), userID)
	if err != nil {
		http.Error(w, "Failed to load finance summary", http.StatusInternalServerError)
		return
	}
	respondWithJSON(w, http.StatusOK, summary)
}

// handleStatistics returns per-property occupancy and revenue plus portfolio
// totals and the monthly income/expense series.
func (h *Handler) handleStatistics(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	stats, err := h.service.Statistics(r.Context(), userID)
	if err != nil {
		http.Error(w, "Failed to load statistics", http.StatusInternalServerError)
		return
	}
	respondWithJSON(w, http.StatusOK, stats)
}
