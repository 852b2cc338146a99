/**
 * @description
 * PostgreSQL queries for the landlord's financial transactions. Aggregation
 * (totals, monthly series) happens in the app layer over the listed rows,
 * matching how the portal computes its figures.
 */

package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/Sedictt/Leasely/internal/domain"
)

const transactionColumns = `id, landlord_id, property_id, type, category, description, amount, date, created_at`

// CreateTransaction inserts an income or expense row and returns it.
func (r *PostgresRepository) CreateTransaction(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (landlord_id, property_id, type, category, description, amount, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + transactionColumns
	var created domain.Transaction
	err := r.db.QueryRow(ctx, query,
		tx.LandlordID,
		tx.PropertyID,
		tx.Type,
		tx.Category,
		tx.Description,
		tx.Amount,
		tx.Date,
	).Scan(
		&created.ID,
		&created.LandlordID,
		&created.PropertyID,
		&created.Type,
		&created.Category,
		&created.Description,
		&created.Amount,
		&created.Date,
		&created.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// ListTransactions returns the landlord's transactions, most recent date first.
func (r *PostgresRepository) ListTransactions(ctx context.Context, landlordID uuid.UUID) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE landlord_id = $1 ORDER BY date DESC, created_at DESC`
	rows, err := r.db.Query(ctx, query, landlordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		err := rows.Scan(
			&t.ID,
			&t.LandlordID,
			&t.PropertyID,
			&t.Type,
			&t.Category,
			&t.Description,
			&t.Amount,
			&t.Date,
			&t.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}
