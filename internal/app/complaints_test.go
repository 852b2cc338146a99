package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Sedictt/Leasely/internal/domain"
	"github.com/Sedictt/Leasely/internal/store"
)

func TestCreateComplaint_SeedsSystemMessage(t *testing.T) {
	unitID := uuid.New()
	propertyID := uuid.New()
	repo := &repoStub{
		units: map[uuid.UUID]*domain.Unit{
			unitID: {ID: unitID, PropertyID: propertyID, UnitNumber: "3A"},
		},
	}
	service := newTestService(repo, &publisherStub{})

	complaint, err := service.CreateComplaint(context.Background(), uuid.New(), unitID, "Noise", "Loud music after midnight")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if complaint.Status != domain.ComplaintStatusOpen {
		t.Fatalf("expected new complaint to be open, got %q", complaint.Status)
	}
	if complaint.PropertyID != propertyID {
		t.Fatal("expected property resolved from the respondent unit")
	}
	if complaint.RespondentUnitNumber != "3A" {
		t.Fatalf("expected unit number joined in, got %q", complaint.RespondentUnitNumber)
	}
	want := "Opened resolution regarding Noise: Loud music after midnight"
	if repo.seedContent != want {
		t.Fatalf("expected seed message %q, got %q", want, repo.seedContent)
	}
}

func TestCreateComplaint_RejectsInvalidInput(t *testing.T) {
	unitID := uuid.New()
	repo := &repoStub{
		units: map[uuid.UUID]*domain.Unit{unitID: {ID: unitID}},
	}
	service := newTestService(repo, &publisherStub{})

	if _, err := service.CreateComplaint(context.Background(), uuid.New(), unitID, "Weather", "desc"); !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
	if _, err := service.CreateComplaint(context.Background(), uuid.New(), unitID, "Noise", "   "); !errors.Is(err, ErrEmptyDescription) {
		t.Fatalf("expected ErrEmptyDescription, got %v", err)
	}
	if _, err := service.CreateComplaint(context.Background(), uuid.New(), uuid.New(), "Noise", "desc"); !errors.Is(err, store.ErrUnitNotFound) {
		t.Fatalf("expected ErrUnitNotFound, got %v", err)
	}
}

func TestEscalate_PublishesEventAndStampsTime(t *testing.T) {
	complaintID := uuid.New()
	propertyID := uuid.New()
	repo := &repoStub{
		complaints: map[uuid.UUID]*domain.Complaint{
			complaintID: {
				ID:                   complaintID,
				PropertyID:           propertyID,
				Category:             "Noise",
				Status:               domain.ComplaintStatusOpen,
				RespondentUnitNumber: "3A",
			},
		},
	}
	events := &publisherStub{}
	escalatedAt := date(2025, time.May, 10)
	service := newTestService(repo, events, WithClock(fixedClock(escalatedAt)))

	actorID := uuid.New()
	complaint, err := service.Escalate(context.Background(), complaintID, actorID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if complaint.Status != domain.ComplaintStatusEscalated {
		t.Fatalf("expected escalated status, got %q", complaint.Status)
	}
	if complaint.EscalatedAt == nil || !complaint.EscalatedAt.Equal(escalatedAt) {
		t.Fatalf("expected escalation timestamp %v, got %v", escalatedAt, complaint.EscalatedAt)
	}

	if len(repo.createdMessages) != 1 || repo.createdMessages[0].Content != "⚠️ Issue escalated to Landlord." {
		t.Fatalf("expected escalation system message, got %+v", repo.createdMessages)
	}

	if len(events.routingKeys) != 1 || events.routingKeys[0] != domain.EventComplaintEscalated {
		t.Fatalf("expected complaint.escalated event, got %v", events.routingKeys)
	}
	event, ok := events.bodies[0].(domain.ComplaintEscalatedEvent)
	if !ok {
		t.Fatalf("unexpected event payload type %T", events.bodies[0])
	}
	if event.ComplaintID != complaintID || event.PropertyID != propertyID || event.EscalatedBy != actorID {
		t.Fatalf("event carries wrong identifiers: %+v", event)
	}
}

func TestEscalate_SucceedsWhenBrokerDown(t *testing.T) {
	complaintID := uuid.New()
	repo := &repoStub{
		complaints: map[uuid.UUID]*domain.Complaint{
			complaintID: {ID: complaintID, Status: domain.ComplaintStatusOpen},
		},
	}
	events := &publisherStub{err: errors.New("broker unreachable")}
	service := newTestService(repo, events)

	complaint, err := service.Escalate(context.Background(), complaintID, uuid.New())
	if err != nil {
		t.Fatalf("escalation must not fail on publish errors, got %v", err)
	}
	if complaint.Status != domain.ComplaintStatusEscalated {
		t.Fatalf("expected escalated status, got %q", complaint.Status)
	}
}

func TestComplaintTransitionsAreMonotone(t *testing.T) {
	escalated := uuid.New()
	resolved := uuid.New()
	repo := &repoStub{
		complaints: map[uuid.UUID]*domain.Complaint{
			escalated: {ID: escalated, Status: domain.ComplaintStatusEscalated},
			resolved:  {ID: resolved, Status: domain.ComplaintStatusResolved},
		},
	}
	service := newTestService(repo, &publisherStub{})

	if _, err := service.Escalate(context.Background(), escalated, uuid.New()); !errors.Is(err, ErrAlreadyEscalated) {
		t.Fatalf("expected ErrAlreadyEscalated, got %v", err)
	}
	if _, err := service.Escalate(context.Background(), resolved, uuid.New()); !errors.Is(err, ErrComplaintClosed) {
		t.Fatalf("expected ErrComplaintClosed on escalating resolved, got %v", err)
	}
	if _, err := service.Resolve(context.Background(), resolved, uuid.New()); !errors.Is(err, ErrComplaintClosed) {
		t.Fatalf("expected ErrComplaintClosed on re-resolving, got %v", err)
	}

	// escalated -> resolved is the one remaining legal transition.
	complaint, err := service.Resolve(context.Background(), escalated, uuid.New())
	if err != nil {
		t.Fatalf("unexpected error resolving escalated complaint: %v", err)
	}
	if complaint.Status != domain.ComplaintStatusResolved {
		t.Fatalf("expected resolved status, got %q", complaint.Status)
	}
	found := false
	for _, m := range repo.createdMessages {
		if m.Content == "✅ Issue marked as resolved." {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected resolution system message, got %+v", repo.createdMessages)
	}
}

func TestPostMessage_SilentNoOps(t *testing.T) {
	repo := &repoStub{complaints: map[uuid.UUID]*domain.Complaint{}}
	service := newTestService(repo, &publisherStub{})

	if err := service.PostMessage(context.Background(), uuid.New(), uuid.New(), "   "); err != nil {
		t.Fatalf("empty content must be a no-op, got %v", err)
	}
	if err := service.PostMessage(context.Background(), uuid.New(), uuid.New(), "hello"); err != nil {
		t.Fatalf("unknown complaint must be a no-op, got %v", err)
	}
	if len(repo.createdMessages) != 0 {
		t.Fatalf("expected no messages written, got %d", len(repo.createdMessages))
	}
}

func TestPostMessage_RateLimited(t *testing.T) {
	complaintID := uuid.New()
	repo := &repoStub{
		complaints: map[uuid.UUID]*domain.Complaint{
			complaintID: {ID: complaintID, Status: domain.ComplaintStatusOpen},
		},
	}
	service := newTestService(repo, &publisherStub{}, WithRateLimiter(&limiterStub{count: messageRateLimit + 1}))

	err := service.PostMessage(context.Background(), complaintID, uuid.New(), "spam")
	if !errors.Is(err, ErrMessageRateLimited) {
		t.Fatalf("expected ErrMessageRateLimited, got %v", err)
	}
	if len(repo.createdMessages) != 0 {
		t.Fatal("rate-limited message must not be written")
	}
}

func TestPostMessage_LimiterOutageDoesNotBlock(t *testing.T) {
	complaintID := uuid.New()
	repo := &repoStub{
		complaints: map[uuid.UUID]*domain.Complaint{
			complaintID: {ID: complaintID, Status: domain.ComplaintStatusOpen},
		},
	}
	service := newTestService(repo, &publisherStub{}, WithRateLimiter(&limiterStub{err: errors.New("redis down")}))

	if err := service.PostMessage(context.Background(), complaintID, uuid.New(), "hello"); err != nil {
		t.Fatalf("limiter outage must not block messages, got %v", err)
	}
	if len(repo.createdMessages) != 1 {
		t.Fatalf("expected 1 message written, got %d", len(repo.createdMessages))
	}
}
