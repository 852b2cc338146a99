/**
 * @description
 * PostgreSQL queries for the landlord task list.
 */

package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Sedictt/Leasely/internal/domain"
)

const taskColumns = `id, landlord_id, property_id, title, description, priority, status, due_date, completed_at, created_at`

func scanTask(row pgx.Row, t *domain.Task) error {
	return row.Scan(
		&t.ID,
		&t.LandlordID,
		&t.PropertyID,
		&t.Title,
		&t.Description,
		&t.Priority,
		&t.Status,
		&t.DueDate,
		&t.CompletedAt,
		&t.CreatedAt,
	)
}

// CreateTask inserts a task in the 'pending' state and returns the stored row.
func (r *PostgresRepository) CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	query := `
		INSERT INTO tasks (landlord_id, property_id, title, description, priority, status, due_date)
		VALUES ($1, $2, $3, $4, $5, 'pending', $6)
		RETURNING ` + taskColumns
	var created domain.Task
	err := scanTask(r.db.QueryRow(ctx, query,
		task.LandlordID,
		task.PropertyID,
		task.Title,
		task.Description,
		task.Priority,
		task.DueDate,
	), &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// ListTasks returns the landlord's tasks, newest first.
func (r *PostgresRepository) ListTasks(ctx context.Context, landlordID uuid.UUID) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE landlord_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, landlordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		var t domain.Task
		if err := scanTask(rows, &t); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// FindTaskByID retrieves a single task.
func (r *PostgresRepository) FindTaskByID(ctx context.Context, taskID uuid.UUID) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`
	var t domain.Task
	if err := scanTask(r.db.QueryRow(ctx, query, taskID), &t); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return &t, nil
}

// UpdateTaskStatus sets the task status and completion timestamp together.
// completedAt is nil when the task moves back to pending.
func (r *PostgresRepository) UpdateTaskStatus(ctx context.Context, taskID uuid.UUID, status string, completedAt *time.Time) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE tasks SET status = $2, completed_at = $3 WHERE id = $1`,
		taskID, status, completedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// DeleteTask removes a task.
func (r *PostgresRepository) DeleteTask(ctx context.Context, taskID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, taskID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTaskNotFound
	}
	return nil
}
