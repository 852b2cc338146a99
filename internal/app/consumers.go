/**
 * @description
 * This file contains the event handler that turns complaint escalation
 * events into in-app landlord notifications. It is invoked by the RabbitMQ
 * consumer loop; the boolean return drives ack/nack.
 *
 * @dependencies
 * - context, encoding/json, log: Standard Go libraries.
 * - The service's internal packages for domain models and storage.
 */
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/Sedictt/Leasely/internal/domain"
	"github.com/Sedictt/Leasely/internal/store"
)

// NotificationEventHandler handles the processing of notification-worthy events.
type NotificationEventHandler struct {
	repo store.Repository
}

// NewNotificationEventHandler creates a new instance of NotificationEventHandler.
func NewNotificationEventHandler(repo store.Repository) *NotificationEventHandler {
	return &NotificationEventHandler{repo: repo}
}

// HandleComplaintEscalatedEvent writes a landlord notification for an
// escalated complaint. Returns true to ack, false to nack and requeue.
func (h *NotificationEventHandler) HandleComplaintEscalatedEvent(body []byte) bool {
	var event domain.ComplaintEscalatedEvent
	if err := json.Unmarshal(body, &event); err != nil {
		log.Printf("Error unmarshaling complaint.escalated event: %v", err)
		return true // Acknowledge malformed message.
	}

	if event.ComplaintID == uuid.Nil {
		log.Printf("complaint.escalated event missing complaint id; acking")
		return true
	}

	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	unitLabel := event.UnitNumber
	if unitLabel == "" {
		unitLabel = "a unit"
	} else {
		unitLabel = "Unit " + unitLabel
	}

	notification := &domain.LandlordNotification{
		PropertyID: event.PropertyID,
		Kind:       "complaint_escalated",
		Body:       fmt.Sprintf("A %s complaint involving %s was escalated and needs your attention.", event.Category, unitLabel),
	}
	if err := h.repo.CreateLandlordNotification(ctx, notification); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			log.Printf("WARN: timed out writing notification for complaint %s; requeueing", event.ComplaintID)
			return false
		}
		log.Printf("ERROR: failed to write notification for complaint %s: %v", event.ComplaintID, err)
		return false // Retryable database error.
	}
	return true
}
