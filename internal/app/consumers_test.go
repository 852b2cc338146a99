package app

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Sedictt/Leasely/internal/domain"
)

func TestHandleComplaintEscalatedEvent_WritesNotification(t *testing.T) {
	repo := &repoStub{}
	handler := NewNotificationEventHandler(repo)

	event := domain.ComplaintEscalatedEvent{
		ComplaintID: uuid.New(),
		PropertyID:  uuid.New(),
		EscalatedBy: uuid.New(),
		Category:    "Noise",
		UnitNumber:  "3A",
		Timestamp:   time.Now(),
	}
	body, _ := json.Marshal(event)

	if !handler.HandleComplaintEscalatedEvent(body) {
		t.Fatal("expected ack for a valid event")
	}
	if len(repo.notifications) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(repo.notifications))
	}
	n := repo.notifications[0]
	if n.PropertyID != event.PropertyID || n.Kind != "complaint_escalated" {
		t.Fatalf("unexpected notification: %+v", n)
	}
	if !strings.Contains(n.Body, "Noise") || !strings.Contains(n.Body, "Unit 3A") {
		t.Fatalf("notification body missing details: %q", n.Body)
	}
}

func TestHandleComplaintEscalatedEvent_AcksMalformedPayload(t *testing.T) {
	repo := &repoStub{}
	handler := NewNotificationEventHandler(repo)

	if !handler.HandleComplaintEscalatedEvent([]byte("not json")) {
		t.Fatal("malformed payloads must be acked, not requeued")
	}
	if len(repo.notifications) != 0 {
		t.Fatal("malformed payloads must not produce notifications")
	}
}

func TestHandleComplaintEscalatedEvent_AcksMissingComplaintID(t *testing.T) {
	repo := &repoStub{}
	handler := NewNotificationEventHandler(repo)

	body, _ := json.Marshal(domain.ComplaintEscalatedEvent{Category: "Noise"})
	if !handler.HandleComplaintEscalatedEvent(body) {
		t.Fatal("events without a complaint id must be acked")
	}
	if len(repo.notifications) != 0 {
		t.Fatal("events without a complaint id must not produce notifications")
	}
}
