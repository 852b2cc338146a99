/**
 * @description
 * This file implements the property concierge: a deterministic
 * keyword-overlap responder over the property's knowledge base. The scoring
 * is intentionally simple and is hidden behind the Responder interface so a
 * real inference backend can be dropped in without touching callers.
 */
package app

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/Sedictt/Leasely/internal/domain"
)

// conciergeFallback is returned when nothing in the knowledge base scores
// above the match threshold.
const conciergeFallback = "I'm sorry, I don't have information about that yet. You might want to contact your landlord directly or check the community forum."

// Responder turns a tenant question into an answer given the property's
// knowledge base.
type Responder interface {
	Respond(query string, knowledge []domain.KnowledgeItem) string
}

// Ask answers a tenant question against their property's knowledge base.
// The property is resolved from the tenant's active lease.
func (s *Service) Ask(ctx context.Context, tenantID uuid.UUID, query string) (string, error) {
	lease, err := s.repo.FindActiveLeaseByTenant(ctx, tenantID)
	if err != nil {
		return "", err
	}
	unit, err := s.repo.FindUnitByID(ctx, lease.UnitID)
	if err != nil {
		return "", err
	}
	knowledge, err := s.repo.ListKnowledgeBase(ctx, unit.PropertyID)
	if err != nil {
		return "", err
	}
	return s.responder.Respond(query, knowledge), nil
}

// KeywordResponder scores knowledge entries by keyword overlap:
// an exact topic substring scores 50, a category substring 20, and each
// query word longer than three characters adds 10 for a topic hit and 5 for
// a content hit. The best entry wins if it clears a score of 10.
type KeywordResponder struct{}

func (KeywordResponder) Respond(query string, knowledge []domain.KnowledgeItem) string {
	lowerQuery := strings.ToLower(query)
	words := strings.Fields(lowerQuery)

	var best *domain.KnowledgeItem
	highest := 0
	for i := range knowledge {
		item := &knowledge[i]
		topic := strings.ToLower(item.Topic)
		category := strings.ToLower(item.Category)
		content := strings.ToLower(item.Content)

		score := 0
		if strings.Contains(lowerQuery, topic) {
			score += 50
		}
		if strings.Contains(lowerQuery, category) {
			score += 20
		}
		for _, word := range words {
			if len(word) <= 3 {
				continue
			}
			if strings.Contains(topic, word) {
				score += 10
			}
			if strings.Contains(content, word) {
				score += 5
			}
		}

		if score > highest {
			highest = score
			best = item
		}
	}

	if best != nil && highest > 10 {
		return best.Content
	}
	return conciergeFallback
}
