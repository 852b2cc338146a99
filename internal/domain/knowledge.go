/**
 * @description
 * This file defines the knowledge-base domain model consumed by the property
 * concierge. Each property carries a set of topic/content entries the
 * concierge matches tenant questions against.
 */
package domain

import "github.com/google/uuid"

// KnowledgeItem is a row in the `property_knowledge_base` table.
type KnowledgeItem struct {
	ID         uuid.UUID `json:"id"`
	PropertyID uuid.UUID `json:"property_id"`
	Category   string    `json:"category"`
	Topic      string    `json:"topic"`
	Content    string    `json:"content"`
}
