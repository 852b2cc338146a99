package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Sedictt/Leasely/internal/app"
)

func newTestHandler() *Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := app.NewService(nil, nil, logger, "leasely.events")
	return NewHandler(service)
}

// requestWithURLParam injects a chi route parameter so handlers can be
// called without going through the router and its auth middleware.
func requestWithURLParam(req *http.Request, key, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

func TestHandleTerminationQuote_RejectsBadLeaseID(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/leases/not-a-uuid/termination-quote", strings.NewReader(`{"move_out_date":"2025-09-01"}`))
	req = req.WithContext(context.WithValue(req.Context(), authUserIDKey, uuid.New()))
	rec := httptest.NewRecorder()

	h.handleTerminationQuote(rec, requestWithURLParam(req, "id", "not-a-uuid"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed lease id, got %d", rec.Code)
	}
}

func TestHandleTerminationQuote_RejectsBadDate(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/leases/x/termination-quote", strings.NewReader(`{"move_out_date":"09/01/2025"}`))
	rec := httptest.NewRecorder()

	h.handleTerminationQuote(rec, requestWithURLParam(req, "id", uuid.NewString()))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed date, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "YYYY-MM-DD") {
		t.Fatalf("expected date format hint, got %q", rec.Body.String())
	}
}

func TestProtectedRoutesRequireAuthorization(t *testing.T) {
	h := newTestHandler()
	router := NewRouter(h, "http://localhost/jwks")

	req := httptest.NewRequest(http.MethodGet, "/leases", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without Authorization header, got %d", rec.Code)
	}
}

func TestHealthEndpointIsPublic(t *testing.T) {
	h := newTestHandler()
	router := NewRouter(h, "http://localhost/jwks")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from health check, got %d", rec.Code)
	}
}

func TestGetUserID_RoundTrip(t *testing.T) {
	userID := uuid.New()
	ctx := context.WithValue(context.Background(), authUserIDKey, userID)

	got, ok := GetUserID(ctx)
	if !ok || got != userID {
		t.Fatalf("expected user id %v from context, got %v (ok=%t)", userID, got, ok)
	}

	if _, ok := GetUserID(context.Background()); ok {
		t.Fatal("expected no user id on a bare context")
	}
}
