/**
 * @description
 * This file contains the complaint lifecycle manager. Complaints move
 * open -> escalated or open -> resolved (and escalated -> resolved); there is
 * no path back to open. Every lifecycle action appends a system message to
 * the complaint's append-only log, and escalations additionally publish an
 * event so the landlord gets notified.
 */
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Sedictt/Leasely/internal/domain"
)

var (
	ErrInvalidCategory    = errors.New("invalid complaint category")
	ErrEmptyDescription   = errors.New("description is required")
	ErrComplaintClosed    = errors.New("complaint is already resolved")
	ErrAlreadyEscalated   = errors.New("complaint is already escalated")
	ErrMessageRateLimited = errors.New("too many messages, slow down")
)

const (
	messageRateLimit  = 30
	messageRateWindow = time.Minute
)

// CreateComplaint opens a complaint against a unit and seeds its message log
// with a system-authored summary. The complaint and the seed message are
// written in one transaction.
func (s *Service) CreateComplaint(ctx context.Context, complainantID, respondentUnitID uuid.UUID, category, description string) (*domain.Complaint, error) {
	if !domain.IsValidComplaintCategory(category) {
		return nil, ErrInvalidCategory
	}
	if strings.TrimSpace(description) == "" {
		return nil, ErrEmptyDescription
	}

	// Resolve the property through the respondent unit; a missing unit
	// short-circuits the whole operation.
	unit, err := s.repo.FindUnitByID(ctx, respondentUnitID)
	if err != nil {
		return nil, err
	}

	complaint := &domain.Complaint{
		ComplainantID:    complainantID,
		RespondentUnitID: respondentUnitID,
		PropertyID:       unit.PropertyID,
		Category:         category,
		Description:      description,
	}
	seed := fmt.Sprintf("Opened resolution regarding %s: %s", category, description)

	created, err := s.repo.CreateComplaintWithSeedMessage(ctx, complaint, seed)
	if err != nil {
		return nil, err
	}
	created.RespondentUnitNumber = unit.UnitNumber
	return created, nil
}

// ListComplaints returns the complaints for the caller's property, newest
// first. The property is resolved from the caller's active lease.
func (s *Service) ListComplaints(ctx context.Context, tenantID uuid.UUID) ([]domain.Complaint, error) {
	lease, err := s.repo.FindActiveLeaseByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	unit, err := s.repo.FindUnitByID(ctx, lease.UnitID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListComplaintsByProperty(ctx, unit.PropertyID)
}

// ListComplaintMessages returns a complaint's log in creation order.
func (s *Service) ListComplaintMessages(ctx context.Context, complaintID uuid.UUID) ([]domain.ComplaintMessage, error) {
	return s.repo.ListComplaintMessages(ctx, complaintID)
}

// PostMessage appends a message to a complaint. Empty content and unknown
// complaints are silent no-ops, matching the conversation UI's behavior.
func (s *Service) PostMessage(ctx context.Context, complaintID, senderID uuid.UUID, content string) error {
	if strings.TrimSpace(content) == "" {
		return nil
	}
	if _, err := s.repo.FindComplaintByID(ctx, complaintID); err != nil {
		return nil
	}

	if s.limiter != nil {
		count, _, err := s.limiter.ConsumeRateLimit(ctx, "complaint_message", senderID.String(), messageRateLimit, messageRateWindow)
		if err != nil {
			// Limiter outage should not block conversations.
			s.logger.Warn("message rate limiter unavailable", "error", err)
		} else if count > messageRateLimit {
			return ErrMessageRateLimited
		}
	}

	message := &domain.ComplaintMessage{
		ComplaintID: complaintID,
		SenderID:    senderID,
		Content:     content,
	}
	return s.repo.CreateComplaintMessage(ctx, message)
}

// Escalate promotes an open complaint to landlord visibility. Resolved and
// already-escalated complaints are rejected; status transitions are monotone.
func (s *Service) Escalate(ctx context.Context, complaintID, actorID uuid.UUID) (*domain.Complaint, error) {
	complaint, err := s.repo.FindComplaintByID(ctx, complaintID)
	if err != nil {
		return nil, err
	}
	switch complaint.Status {
	case domain.ComplaintStatusResolved:
		return nil, ErrComplaintClosed
	case domain.ComplaintStatusEscalated:
		return nil, ErrAlreadyEscalated
	}

	escalatedAt := s.now()
	if err := s.repo.UpdateComplaintStatus(ctx, complaintID, domain.ComplaintStatusEscalated, &escalatedAt); err != nil {
		return nil, err
	}
	complaint.Status = domain.ComplaintStatusEscalated
	complaint.EscalatedAt = &escalatedAt

	s.appendSystemMessage(ctx, complaintID, actorID, "⚠️ Issue escalated to Landlord.")

	event := domain.ComplaintEscalatedEvent{
		ComplaintID: complaint.ID,
		PropertyID:  complaint.PropertyID,
		EscalatedBy: actorID,
		Category:    complaint.Category,
		UnitNumber:  complaint.RespondentUnitNumber,
		Timestamp:   escalatedAt,
	}
	if err := s.events.Publish(ctx, s.eventsExchange, domain.EventComplaintEscalated, event); err != nil {
		// The escalation itself is committed; notification delivery is best-effort.
		s.logger.Warn("failed to publish complaint.escalated event", "complaint_id", complaint.ID, "error", err)
	}

	return complaint, nil
}

// Resolve closes a complaint from any non-terminal state. There is no
// re-open operation.
func (s *Service) Resolve(ctx context.Context, complaintID, actorID uuid.UUID) (*domain.Complaint, error) {
	complaint, err := s.repo.FindComplaintByID(ctx, complaintID)
	if err != nil {
		return nil, err
	}
	if complaint.Status == domain.ComplaintStatusResolved {
		return nil, ErrComplaintClosed
	}

	if err := s.repo.UpdateComplaintStatus(ctx, complaintID, domain.ComplaintStatusResolved, nil); err != nil {
		return nil, err
	}
	complaint.Status = domain.ComplaintStatusResolved

	s.appendSystemMessage(ctx, complaintID, actorID, "✅ Issue marked as resolved.")
	return complaint, nil
}

func (s *Service) appendSystemMessage(ctx context.Context, complaintID, senderID uuid.UUID, content string) {
	message := &domain.ComplaintMessage{
		ComplaintID: complaintID,
		SenderID:    senderID,
		Content:     content,
	}
	if err := s.repo.CreateComplaintMessage(ctx, message); err != nil {
		s.logger.Warn("failed to append system message", "complaint_id", complaintID, "error", err)
	}
}
