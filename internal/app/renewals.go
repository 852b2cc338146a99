/**
 * @description
 * This file implements the renewal alert heuristic: leases within 90 days of
 * their end date get an alert with a suggested new rent. The suggested
 * increase is a 5-10% bump; the increase source is injected so tests are
 * deterministic.
 */
package app

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/Sedictt/Leasely/internal/domain"
)

// renewalWindowDays is how far ahead of a lease's end date an alert fires.
const renewalWindowDays = 90

// RenewalAlerts returns alerts for active leases expiring within the renewal
// window, soonest first.
func (s *Service) RenewalAlerts(ctx context.Context) ([]domain.RenewalAlert, error) {
	leases, err := s.repo.ListActiveLeases(ctx)
	if err != nil {
		return nil, err
	}
	return buildRenewalAlerts(leases, s.now(), s.rentIncrease), nil
}

func buildRenewalAlerts(leases []domain.Lease, now time.Time, increase func() float64) []domain.RenewalAlert {
	var alerts []domain.RenewalAlert
	for _, lease := range leases {
		days := daysUntil(lease.EndDate, now)
		if days <= 0 || days > renewalWindowDays {
			continue
		}
		inc := increase()
		alerts = append(alerts, domain.RenewalAlert{
			Lease:            lease,
			DaysUntilExpiry:  days,
			SuggestedNewRent: int64(math.Round(float64(lease.RentAmount) * (1 + inc))),
			MarketAnalysis:   marketAnalysis(inc),
		})
	}
	sort.Slice(alerts, func(i, j int) bool {
		return alerts[i].DaysUntilExpiry < alerts[j].DaysUntilExpiry
	})
	return alerts
}

// daysUntil counts whole days from now to end, rounding partial days up.
func daysUntil(end, now time.Time) int {
	return int(math.Ceil(end.Sub(now).Hours() / 24))
}

func marketAnalysis(increase float64) string {
	pct := int(math.Round(increase * 100))
	return fmt.Sprintf("Market analysis suggests %d%% increase based on comparable properties.", pct)
}
