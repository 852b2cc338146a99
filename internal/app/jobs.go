/**
 * @description
 * Scheduled job implementations: the unread-badge refresh, the renewal scan,
 * and the nightly lease-expiry sweep.
 */
package app

import (
	"context"
	"time"

	"github.com/Sedictt/Leasely/internal/domain"
)

const jobTimeout = 45 * time.Second

// RefreshInquiryBadge recounts unread listing inquiries and stores the
// result in the badge cache. Runs every 30 seconds.
func (s *Service) RefreshInquiryBadge() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	count, err := s.repo.CountNewInquiries(ctx)
	if err != nil {
		s.logger.Error("failed to count new inquiries", "error", err)
		return
	}
	if s.badges == nil {
		return
	}
	if err := s.badges.SetNewInquiryCount(ctx, count); err != nil {
		s.logger.Error("failed to cache inquiry badge", "error", err)
	}
}

// ScanRenewals publishes a renewal-due event for every lease entering its
// renewal window. Runs daily.
func (s *Service) ScanRenewals() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	s.logger.Info("starting renewal scan job")
	alerts, err := s.RenewalAlerts(ctx)
	if err != nil {
		s.logger.Error("renewal scan failed", "error", err)
		return
	}
	if len(alerts) == 0 {
		s.logger.Info("no leases in renewal window")
		return
	}

	for _, alert := range alerts {
		event := domain.RenewalDueEvent{
			LeaseID:          alert.Lease.ID,
			TenantID:         alert.Lease.TenantID,
			DaysUntilExpiry:  alert.DaysUntilExpiry,
			SuggestedNewRent: alert.SuggestedNewRent,
			Timestamp:        s.now(),
		}
		if err := s.events.Publish(ctx, s.eventsExchange, domain.EventRenewalDue, event); err != nil {
			s.logger.Error("failed to publish renewal event", "lease_id", alert.Lease.ID, "error", err)
		}
	}
	s.logger.Info("renewal scan job finished", "alerts", len(alerts))
}

// ExpireLeases flips active leases past their end date to 'ended'. Runs
// nightly after midnight.
func (s *Service) ExpireLeases() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	s.logger.Info("starting lease expiry job")
	leases, err := s.repo.ListActiveLeases(ctx)
	if err != nil {
		s.logger.Error("failed to list leases for expiry", "error", err)
		return
	}

	today := truncateToDay(s.now())
	expired := 0
	for _, lease := range leases {
		if !lease.EndDate.Before(today) {
			continue
		}
		if err := s.repo.MarkLeaseEnded(ctx, lease.ID); err != nil {
			s.logger.Error("failed to end lease", "lease_id", lease.ID, "error", err)
			continue
		}
		expired++
	}
	s.logger.Info("lease expiry job finished", "expired", expired)
}
