/**
 * @description
 * This file defines the domain models for the tenant-to-tenant complaint
 * workflow: the Complaint itself, its append-only message log, and the
 * category/status enumerations enforced by the lifecycle manager.
 */
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Complaint status values. Transitions are monotone: open -> escalated,
// open -> resolved, escalated -> resolved. There is no path back to open.
const (
	ComplaintStatusOpen      = "open"
	ComplaintStatusEscalated = "escalated"
	ComplaintStatusResolved  = "resolved"
)

// ComplaintCategories lists the categories accepted on creation.
var ComplaintCategories = []string{"Noise", "Cleanliness", "Parking", "Pet Issue", "Other"}

// IsValidComplaintCategory reports whether category is one of the accepted values.
func IsValidComplaintCategory(category string) bool {
	for _, c := range ComplaintCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Complaint represents a row in the `tenant_complaints` table.
type Complaint struct {
	ID               uuid.UUID  `json:"id"`
	ComplainantID    uuid.UUID  `json:"complainant_id"`
	RespondentUnitID uuid.UUID  `json:"respondent_unit_id"`
	PropertyID       uuid.UUID  `json:"property_id"`
	Category         string     `json:"category"`
	Description      string     `json:"description"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	EscalatedAt      *time.Time `json:"escalated_at,omitempty"`

	// Joined display field.
	RespondentUnitNumber string `json:"respondent_unit_number,omitempty"`
}

// ComplaintMessage is a single immutable entry in a complaint's message log.
// Messages belong to exactly one complaint and are ordered by CreatedAt.
type ComplaintMessage struct {
	ID          uuid.UUID `json:"id"`
	ComplaintID uuid.UUID `json:"complaint_id"`
	SenderID    uuid.UUID `json:"sender_id"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
}
