/**
 * @description
 * This file contains the lease early-termination penalty engine. Given a
 * lease and a proposed move-out date it computes the penalty, a
 * recommendation, and a ready-to-send notice. The calculation is pure;
 * nothing is persisted.
 *
 * Penalty policy (first matching rule wins):
 *   - move-out inside the 6-month lock-in window -> 2x monthly rent
 *   - more than 3 months left on the lease       -> 1x monthly rent
 *   - otherwise                                  -> no penalty (goodwill waiver)
 */
package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Sedictt/Leasely/internal/domain"
)

var (
	ErrMoveOutInPast          = errors.New("move-out date must be on or after today")
	ErrMoveOutBeforeLeaseStart = errors.New("move-out date precedes lease start")
	ErrLeaseNotActive         = errors.New("lease is not active")
)

// lockInMonths is the fixed lock-in window from lease start during which
// early termination draws the maximum penalty.
const lockInMonths = 6

// TerminationQuote loads the lease and computes an early-termination quote.
func (s *Service) TerminationQuote(ctx context.Context, leaseID uuid.UUID, moveOutDate time.Time) (*domain.TerminationResult, error) {
	lease, err := s.repo.FindLeaseByID(ctx, leaseID)
	if err != nil {
		return nil, err
	}
	if lease.Status != domain.LeaseStatusActive {
		return nil, ErrLeaseNotActive
	}
	if lease.TenantName == "" {
		// The join leaves the name blank when the profile row lags behind
		// auth signup; fetch it directly before rendering the notice.
		if profile, perr := s.repo.FindProfileByID(ctx, lease.TenantID); perr == nil {
			lease.TenantName = profile.DisplayName()
		}
	}
	return CalculateTermination(*lease, moveOutDate, s.now())
}

// CalculateTermination computes the penalty and notice for terminating lease
// on moveOutDate. now anchors the "not in the past" validation.
func CalculateTermination(lease domain.Lease, moveOutDate time.Time, now time.Time) (*domain.TerminationResult, error) {
	if moveOutDate.Before(truncateToDay(now)) {
		return nil, ErrMoveOutInPast
	}
	if moveOutDate.Before(lease.StartDate) {
		return nil, ErrMoveOutBeforeLeaseStart
	}

	remaining := remainingMonths(lease.EndDate, moveOutDate)
	lockInEnd := lease.StartDate.AddDate(0, lockInMonths, 0)
	withinLockIn := moveOutDate.Before(lockInEnd)

	var penalty int64
	penaltyType, penaltyValue := "none", 0
	switch {
	case withinLockIn:
		penalty = lease.RentAmount * 2
		penaltyType, penaltyValue = "months_rent", 2
	case remaining > 3:
		penalty = lease.RentAmount
		penaltyType, penaltyValue = "months_rent", 1
	}

	name := lease.TenantName
	if name == "" {
		name = "Tenant"
	}
	prop := lease.PropertyName
	if prop == "" {
		prop = "property"
	}

	var recommendation string
	switch {
	case withinLockIn:
		recommendation = fmt.Sprintf("%s is within lock-in period. Penalty of ₱%s (2 months rent) applies.", name, formatAmount(penalty))
	case remaining > 3:
		recommendation = fmt.Sprintf("%s is outside lock-in with %d months remaining. Standard penalty of ₱%s applies.", name, remaining, formatAmount(penalty))
	default:
		recommendation = fmt.Sprintf("%s has only %d months left. Consider waiving penalty as goodwill.", name, remaining)
	}

	unitLabel := ""
	if lease.UnitNumber != "" {
		unitLabel = fmt.Sprintf(" Unit %s", lease.UnitNumber)
	}
	feeLine := "No penalty applies given the remaining lease term."
	if penalty > 0 {
		feeLine = fmt.Sprintf("A termination fee of ₱%s applies based on your lease terms.", formatAmount(penalty))
	}

	result := &domain.TerminationResult{
		Lease:             lease,
		MoveOutDate:       moveOutDate,
		CalculatedPenalty: penalty,
		RemainingMonths:   remaining,
		WithinLockIn:      withinLockIn,
		Breakdown: domain.PenaltyBreakdown{
			MonthlyRent:  lease.RentAmount,
			PenaltyType:  penaltyType,
			PenaltyValue: penaltyValue,
		},
		Recommendation: recommendation,
		NoticeSubject:  fmt.Sprintf("Re: Early Move-Out Request - %s", name),
		NoticeBody: fmt.Sprintf(
			"Dear %s,\n\nThank you for your request to terminate early at %s%s.\n\n%s\n\nPlease confirm to proceed.\n\nBest regards",
			name, prop, unitLabel, feeLine,
		),
	}
	return result, nil
}

// remainingMonths counts the calendar months still owed between the move-out
// and the lease end, both months inclusive, ignoring the day of month. A
// move-out in the lease's final month leaves 1; past the end date leaves 0.
func remainingMonths(endDate, moveOutDate time.Time) int {
	diff := (endDate.Year()-moveOutDate.Year())*12 + int(endDate.Month()) - int(moveOutDate.Month()) + 1
	if diff < 0 {
		return 0
	}
	return diff
}

// formatAmount renders n with thousands separators, e.g. 20000 -> "20,000".
func formatAmount(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
