/**
 * @description
 * This file defines the event payloads published to RabbitMQ. Events are the
 * only cross-process signal in the system; the in-process consumer turns them
 * into landlord notifications.
 */
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Routing keys for the property events exchange.
const (
	EventComplaintEscalated = "complaint.escalated"
	EventRenewalDue         = "lease.renewal_due"
)

// ComplaintEscalatedEvent is published when a tenant escalates a complaint
// to the landlord.
type ComplaintEscalatedEvent struct {
	ComplaintID uuid.UUID `json:"complaint_id"`
	PropertyID  uuid.UUID `json:"property_id"`
	EscalatedBy uuid.UUID `json:"escalated_by"`
	Category    string    `json:"category"`
	UnitNumber  string    `json:"unit_number"`
	Timestamp   time.Time `json:"timestamp"`
}

// RenewalDueEvent is published by the renewal scan job for each lease
// entering its renewal window.
type RenewalDueEvent struct {
	LeaseID          uuid.UUID `json:"lease_id"`
	TenantID         uuid.UUID `json:"tenant_id"`
	DaysUntilExpiry  int       `json:"days_until_expiry"`
	SuggestedNewRent int64     `json:"suggested_new_rent"`
	Timestamp        time.Time `json:"timestamp"`
}

// LandlordNotification is an in-app notification row written by the event
// consumer and read by the landlord portal badge.
type LandlordNotification struct {
	ID         uuid.UUID `json:"id"`
	PropertyID uuid.UUID `json:"property_id"`
	Kind       string    `json:"kind"`
	Body       string    `json:"body"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"created_at"`
}
