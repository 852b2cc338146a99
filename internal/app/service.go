/**
 * @description
 * This file defines the application Service and the interfaces it depends on.
 * The Service orchestrates the repository, the event publisher, the message
 * rate limiter, and the badge cache; the HTTP handlers and the scheduled jobs
 * are thin callers into it. All collaborators are injected so tests can
 * substitute stubs.
 */
package app

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/Sedictt/Leasely/internal/store"
)

// Publisher is the subset of the event producer the service needs.
type Publisher interface {
	Publish(ctx context.Context, exchange, routingKey string, body interface{}) error
}

// RateLimiter throttles repeated actions per subject within a window.
// A nil limiter disables throttling.
type RateLimiter interface {
	ConsumeRateLimit(ctx context.Context, scope, subject string, limit int, window time.Duration) (count int, retryAfterSeconds int, err error)
}

// BadgeCache stores the precomputed unread-inquiry count between refresh
// ticks so the sidebar badge never hits the database on read.
type BadgeCache interface {
	SetNewInquiryCount(ctx context.Context, count int) error
	GetNewInquiryCount(ctx context.Context) (int, bool, error)
}

// Service provides the business logic for the property portals.
type Service struct {
	repo           store.Repository
	events         Publisher
	limiter        RateLimiter
	badges         BadgeCache
	logger         *slog.Logger
	eventsExchange string
	responder      Responder
	rentIncrease   func() float64 // renewal heuristic increase in [0.05, 0.10)
	now            func() time.Time
}

// Option customizes a Service.
type Option func(*Service)

// WithResponder swaps the concierge response strategy.
func WithResponder(r Responder) Option {
	return func(s *Service) { s.responder = r }
}

// WithRateLimiter attaches a message rate limiter.
func WithRateLimiter(l RateLimiter) Option {
	return func(s *Service) { s.limiter = l }
}

// WithBadgeCache attaches the unread-badge cache.
func WithBadgeCache(c BadgeCache) Option {
	return func(s *Service) { s.badges = c }
}

// WithClock overrides the service clock. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithRentIncrease overrides the renewal increase source. Used by tests.
func WithRentIncrease(f func() float64) Option {
	return func(s *Service) { s.rentIncrease = f }
}

// NewService creates a new Service.
func NewService(repo store.Repository, events Publisher, logger *slog.Logger, eventsExchange string, opts ...Option) *Service {
	s := &Service{
		repo:           repo,
		events:         events,
		logger:         logger,
		eventsExchange: eventsExchange,
		responder:      KeywordResponder{},
		rentIncrease:   func() float64 { return 0.05 + rand.Float64()*0.05 },
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
