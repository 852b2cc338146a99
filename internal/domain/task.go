/**
 * @description
 * This file defines the Task domain model backing the landlord task list.
 */
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Task statuses.
const (
	TaskStatusPending   = "pending"
	TaskStatusCompleted = "completed"
)

// Task priorities.
const (
	TaskPriorityLow    = "low"
	TaskPriorityMedium = "medium"
	TaskPriorityHigh   = "high"
)

// Task represents a row in the `tasks` table.
type Task struct {
	ID          uuid.UUID  `json:"id"`
	LandlordID  uuid.UUID  `json:"landlord_id"`
	PropertyID  *uuid.UUID `json:"property_id,omitempty"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
