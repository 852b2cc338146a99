/**
 * @description
 * PostgreSQL queries for the complaint workflow: the `tenant_complaints`
 * table and its append-only `complaint_messages` log. Complaint creation and
 * its seed message are inserted in a single database transaction so a crash
 * can never leave a complaint with an empty log.
 */

package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Sedictt/Leasely/internal/domain"
)

const complaintColumns = `
	c.id, c.complainant_id, c.respondent_unit_id, c.property_id, c.category,
	c.description, c.status, c.created_at, c.escalated_at,
	COALESCE(u.unit_number, '')
`

const complaintJoins = `
	FROM tenant_complaints c
	LEFT JOIN units u ON u.id = c.respondent_unit_id
`

func scanComplaint(row pgx.Row, c *domain.Complaint) error {
	return row.Scan(
		&c.ID,
		&c.ComplainantID,
		&c.RespondentUnitID,
		&c.PropertyID,
		&c.Category,
		&c.Description,
		&c.Status,
		&c.CreatedAt,
		&c.EscalatedAt,
		&c.RespondentUnitNumber,
	)
}

// CreateComplaintWithSeedMessage inserts a complaint and its first (system)
// message atomically and returns the stored complaint.
func (r *PostgresRepository) CreateComplaintWithSeedMessage(ctx context.Context, complaint *domain.Complaint, seedContent string) (*domain.Complaint, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var created domain.Complaint
	insertComplaint := `
		INSERT INTO tenant_complaints (complainant_id, respondent_unit_id, property_id, category, description, status)
		VALUES ($1, $2, $3, $4, $5, 'open')
		RETURNING id, complainant_id, respondent_unit_id, property_id, category, description, status, created_at, escalated_at
	`
	err = tx.QueryRow(ctx, insertComplaint,
		complaint.ComplainantID,
		complaint.RespondentUnitID,
		complaint.PropertyID,
		complaint.Category,
		complaint.Description,
	).Scan(
		&created.ID,
		&created.ComplainantID,
		&created.RespondentUnitID,
		&created.PropertyID,
		&created.Category,
		&created.Description,
		&created.Status,
		&created.CreatedAt,
		&created.EscalatedAt,
	)
	if err != nil {
		return nil, err
	}

	insertSeed := `
		INSERT INTO complaint_messages (complaint_id, sender_id, content)
		VALUES ($1, $2, $3)
	`
	if _, err := tx.Exec(ctx, insertSeed, created.ID, complaint.ComplainantID, seedContent); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListComplaintsByProperty returns the property's complaints, newest first.
func (r *PostgresRepository) ListComplaintsByProperty(ctx context.Context, propertyID uuid.UUID) ([]domain.Complaint, error) {
	query := `SELECT ` + complaintColumns + complaintJoins + `
		WHERE c.property_id = $1
		ORDER BY c.created_at DESC`
	rows, err := r.db.Query(ctx, query, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var complaints []domain.Complaint
	for rows.Next() {
		var c domain.Complaint
		if err := scanComplaint(rows, &c); err != nil {
			return nil, err
		}
		complaints = append(complaints, c)
	}
	return complaints, rows.Err()
}

// FindComplaintByID retrieves a single complaint.
func (r *PostgresRepository) FindComplaintByID(ctx context.Context, complaintID uuid.UUID) (*domain.Complaint, error) {
	query := `SELECT ` + complaintColumns + complaintJoins + ` WHERE c.id = $1`
	var c domain.Complaint
	if err := scanComplaint(r.db.QueryRow(ctx, query, complaintID), &c); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrComplaintNotFound
		}
		return nil, err
	}
	return &c, nil
}

// UpdateComplaintStatus sets the complaint status and, for escalations, the
// escalated_at timestamp.
func (r *PostgresRepository) UpdateComplaintStatus(ctx context.Context, complaintID uuid.UUID, status string, escalatedAt *time.Time) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE tenant_complaints SET status = $2, escalated_at = COALESCE($3, escalated_at) WHERE id = $1`,
		complaintID, status, escalatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrComplaintNotFound
	}
	return nil
}

// CreateComplaintMessage appends a message to a complaint's log.
func (r *PostgresRepository) CreateComplaintMessage(ctx context.Context, message *domain.ComplaintMessage) error {
	query := `
		INSERT INTO complaint_messages (complaint_id, sender_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	return r.db.QueryRow(ctx, query, message.ComplaintID, message.SenderID, message.Content).
		Scan(&message.ID, &message.CreatedAt)
}

// ListComplaintMessages returns a complaint's messages ordered by creation
// time ascending. Insertion order is significant to the conversation view.
func (r *PostgresRepository) ListComplaintMessages(ctx context.Context, complaintID uuid.UUID) ([]domain.ComplaintMessage, error) {
	query := `
		SELECT id, complaint_id, sender_id, content, created_at
		FROM complaint_messages
		WHERE complaint_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.db.Query(ctx, query, complaintID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.ComplaintMessage
	for rows.Next() {
		var m domain.ComplaintMessage
		if err := rows.Scan(&m.ID, &m.ComplaintID, &m.SenderID, &m.Content, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
