/**
 * @description
 * This file sets up the HTTP router for the property service using the
 * go-chi/chi router. It defines the API routes, applies middleware for
 * logging, CORS, and authentication, and maps the routes to their
 * corresponding handler functions.
 */
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new Chi router and registers the property service routes.
func NewRouter(h *Handler, jwksURL string) *chi.Mux {
	r := chi.NewRouter()

	// Setup middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any major browsers
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Property service is healthy"))
	})

	// Protected routes that require authentication
	r.Group(func(r chi.Router) {
		// Use the Supabase JWT validation middleware
		r.Use(SupabaseAuthMiddleware(jwksURL))

		r.Get("/leases", h.handleListLeases)
		r.Get("/leases/renewal-alerts", h.handleRenewalAlerts)
		r.Post("/leases/{id}/termination-quote", h.handleTerminationQuote)

		r.Get("/complaints", h.handleListComplaints)
		r.Post("/complaints", h.handleCreateComplaint)
		r.Get("/complaints/{id}/messages", h.handleListComplaintMessages)
		r.Post("/complaints/{id}/messages", h.handlePostComplaintMessage)
		r.Post("/complaints/{id}/escalate", h.handleEscalateComplaint)
		r.Post("/complaints/{id}/resolve", h.handleResolveComplaint)

		r.Get("/neighbors", h.handleNeighbors)
		r.Get("/units", h.handleRespondentUnits)

		r.Get("/tasks", h.handleListTasks)
		r.Post("/tasks", h.handleCreateTask)
		r.Patch("/tasks/{id}/toggle", h.handleToggleTask)
		r.Delete("/tasks/{id}", h.handleDeleteTask)

		r.Get("/transactions", h.handleListTransactions)
		r.Post("/transactions", h.handleCreateTransaction)
		r.Get("/finances/summary", h.handleFinanceSummary)

		r.Get("/statistics", h.handleStatistics)

		r.Post("/concierge/ask", h.handleConciergeAsk)

		r.Get("/inquiries/unread-count", h.handleUnreadInquiryCount)
	})

	return r
}
