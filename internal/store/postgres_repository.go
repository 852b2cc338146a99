/**
 * @description
 * This file provides the PostgreSQL implementation of the `Repository`
 * interface for leases and profiles. Sibling files in this package implement
 * the complaint, property, task, and transaction method sets on the same
 * receiver.
 *
 * @dependencies
 * - context, errors: Standard Go libraries.
 * - github.com/jackc/pgx/v5: The PostgreSQL driver for database operations.
 * - internal/domain: Contains the domain models used for data transfer.
 */

package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Sedictt/Leasely/internal/domain"
)

// PostgresRepository is a concrete implementation of the Repository interface for PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new instance of PostgresRepository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// leaseColumns is the select list shared by the lease queries. Tenant and
// unit labels are joined in so the directory renders without extra queries.
const leaseColumns = `
	l.id, l.tenant_id, l.unit_id, l.start_date, l.end_date, l.rent_amount, l.status,
	COALESCE(p.full_name, 'Tenant'), COALESCE(p.email, ''),
	COALESCE(u.unit_number, ''), COALESCE(pr.name, 'property')
`

const leaseJoins = `
	FROM leases l
	LEFT JOIN profiles p ON p.id = l.tenant_id
	LEFT JOIN units u ON u.id = l.unit_id
	LEFT JOIN properties pr ON pr.id = u.property_id
`

func scanLease(row pgx.Row, lease *domain.Lease) error {
	return row.Scan(
		&lease.ID,
		&lease.TenantID,
		&lease.UnitID,
		&lease.StartDate,
		&lease.EndDate,
		&lease.RentAmount,
		&lease.Status,
		&lease.TenantName,
		&lease.TenantEmail,
		&lease.UnitNumber,
		&lease.PropertyName,
	)
}

// ListActiveLeases returns all active leases with tenant and unit labels,
// ordered by start date descending.
func (r *PostgresRepository) ListActiveLeases(ctx context.Context) ([]domain.Lease, error) {
	query := `SELECT ` + leaseColumns + leaseJoins + `
		WHERE l.status = 'active'
		ORDER BY l.start_date DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leases []domain.Lease
	for rows.Next() {
		var lease domain.Lease
		if err := scanLease(rows, &lease); err != nil {
			return nil, err
		}
		leases = append(leases, lease)
	}
	return leases, rows.Err()
}

// FindLeaseByID retrieves a single lease by its ID.
func (r *PostgresRepository) FindLeaseByID(ctx context.Context, leaseID uuid.UUID) (*domain.Lease, error) {
	query := `SELECT ` + leaseColumns + leaseJoins + ` WHERE l.id = $1`
	var lease domain.Lease
	if err := scanLease(r.db.QueryRow(ctx, query, leaseID), &lease); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrLeaseNotFound
		}
		return nil, err
	}
	return &lease, nil
}

// FindActiveLeaseByTenant returns the tenant's current active lease. Tenants
// hold at most one active lease at a time.
func (r *PostgresRepository) FindActiveLeaseByTenant(ctx context.Context, tenantID uuid.UUID) (*domain.Lease, error) {
	query := `SELECT ` + leaseColumns + leaseJoins + `
		WHERE l.tenant_id = $1 AND l.status = 'active'
		LIMIT 1`
	var lease domain.Lease
	if err := scanLease(r.db.QueryRow(ctx, query, tenantID), &lease); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrLeaseNotFound
		}
		return nil, err
	}
	return &lease, nil
}

// MarkLeaseEnded flips an expired lease to 'ended'. Used by the nightly
// lease-expiry job.
func (r *PostgresRepository) MarkLeaseEnded(ctx context.Context, leaseID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `UPDATE leases SET status = 'ended' WHERE id = $1 AND status = 'active'`, leaseID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrLeaseNotFound
	}
	return nil
}

// FindProfileByID retrieves a user profile by its ID.
func (r *PostgresRepository) FindProfileByID(ctx context.Context, profileID uuid.UUID) (*domain.Profile, error) {
	query := `SELECT id, full_name, email, avatar_url, COALESCE(role, '') FROM profiles WHERE id = $1`
	var profile domain.Profile
	err := r.db.QueryRow(ctx, query, profileID).Scan(
		&profile.ID,
		&profile.FullName,
		&profile.Email,
		&profile.AvatarURL,
		&profile.Role,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// CountNewInquiries counts listing inquiries still in the 'new' state. The
// result backs the sidebar badge and is cached by the badge refresh job.
func (r *PostgresRepository) CountNewInquiries(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM listing_inquiries WHERE status = 'new'`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// CreateLandlordNotification inserts an in-app notification row.
func (r *PostgresRepository) CreateLandlordNotification(ctx context.Context, n *domain.LandlordNotification) error {
	query := `
		INSERT INTO landlord_notifications (property_id, kind, body, read)
		VALUES ($1, $2, $3, false)
	`
	_, err := r.db.Exec(ctx, query, n.PropertyID, n.Kind, n.Body)
	return err
}
