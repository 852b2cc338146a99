/**
 * @description
 * This file defines the lease-related domain models for the property service.
 * It includes the Lease struct that maps to the `leases` table, the ephemeral
 * termination request/result types used by the penalty engine, and the renewal
 * alert DTO surfaced on the landlord dashboard.
 */
package domain

import (
	"time"

	"github.com/google/uuid"
)

// LeaseStatus enumerates the lifecycle states of a lease.
const (
	LeaseStatusActive = "active"
	LeaseStatusEnded  = "ended"
)

// Lease represents a tenancy agreement as stored in the `leases` table.
// The tenant profile and unit/property labels are joined in by the store so
// callers can render a lease without extra round trips.
type Lease struct {
	ID         uuid.UUID `json:"id"`
	TenantID   uuid.UUID `json:"tenant_id"`
	UnitID     uuid.UUID `json:"unit_id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	RentAmount int64     `json:"rent_amount"`
	Status     string    `json:"status"`

	// Joined display fields (nullable in the database).
	TenantName   string `json:"tenant_name"`
	TenantEmail  string `json:"tenant_email,omitempty"`
	UnitNumber   string `json:"unit_number"`
	PropertyName string `json:"property_name"`
}

// TerminationRequest is the input to the penalty engine. It is never persisted.
type TerminationRequest struct {
	LeaseID     uuid.UUID `json:"lease_id"`
	MoveOutDate time.Time `json:"move_out_date"`
	Reason      string    `json:"reason,omitempty"`
}

// PenaltyBreakdown explains how a termination penalty was derived.
type PenaltyBreakdown struct {
	MonthlyRent  int64  `json:"monthly_rent"`
	PenaltyType  string `json:"penalty_type"`  // "months_rent" or "none"
	PenaltyValue int    `json:"penalty_value"` // multiplier applied to the rent
}

// TerminationResult is the computed outcome of an early-termination quote.
// It is derived fresh on every calculation and never stored.
type TerminationResult struct {
	Lease             Lease            `json:"lease"`
	MoveOutDate       time.Time        `json:"move_out_date"`
	CalculatedPenalty int64            `json:"calculated_penalty"`
	RemainingMonths   int              `json:"remaining_months"`
	WithinLockIn      bool             `json:"within_lock_in"`
	Breakdown         PenaltyBreakdown `json:"breakdown"`
	Recommendation    string           `json:"recommendation"`
	NoticeSubject     string           `json:"notice_subject"`
	NoticeBody        string           `json:"notice_body"`
}

// RenewalAlert flags a lease approaching its end date, with a suggested new
// rent produced by the renewal heuristic.
type RenewalAlert struct {
	Lease            Lease  `json:"lease"`
	DaysUntilExpiry  int    `json:"days_until_expiry"`
	SuggestedNewRent int64  `json:"suggested_new_rent"`
	MarketAnalysis   string `json:"market_analysis"`
}
