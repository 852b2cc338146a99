/**
 * @description
 * Cron scheduler setup for the recurring jobs: badge refresh, renewal scan,
 * and lease expiry.
 */
package app

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/Sedictt/Leasely/internal/config"
)

// Scheduler manages the cron jobs.
type Scheduler struct {
	cron    *cron.Cron
	service *Service
	logger  *slog.Logger
	config  config.Config
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(service *Service, logger *slog.Logger, cfg config.Config) *Scheduler {
	cronLogger := cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelInfo))
	c := cron.New(cron.WithChain(cron.Recover(cronLogger)))

	return &Scheduler{
		cron:    c,
		service: service,
		logger:  logger,
		config:  cfg,
	}
}

// Start registers the jobs and starts the cron scheduler.
func (s *Scheduler) Start() {
	if _, err := s.cron.AddFunc(s.config.BadgeRefreshSchedule, s.service.RefreshInquiryBadge); err != nil {
		s.logger.Error("failed to schedule badge refresh job", "error", err)
	} else {
		s.logger.Info("scheduled badge refresh job", "schedule", s.config.BadgeRefreshSchedule)
	}

	if _, err := s.cron.AddFunc(s.config.RenewalScanSchedule, s.service.ScanRenewals); err != nil {
		s.logger.Error("failed to schedule renewal scan job", "error", err)
	} else {
		s.logger.Info("scheduled renewal scan job", "schedule", s.config.RenewalScanSchedule)
	}

	if _, err := s.cron.AddFunc(s.config.LeaseExpirySchedule, s.service.ExpireLeases); err != nil {
		s.logger.Error("failed to schedule lease expiry job", "error", err)
	} else {
		s.logger.Info("scheduled lease expiry job", "schedule", s.config.LeaseExpirySchedule)
	}

	s.cron.Start()
}

// Stop gracefully stops the cron scheduler.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}
