/**
 * @description
 * PostgreSQL queries for properties, units, neighbors, and the per-property
 * knowledge base consumed by the concierge.
 */

package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Sedictt/Leasely/internal/domain"
)

// ListProperties returns the landlord's properties for dropdowns.
func (r *PostgresRepository) ListProperties(ctx context.Context, landlordID uuid.UUID) ([]domain.Property, error) {
	query := `
		SELECT id, landlord_id, name, COALESCE(address, ''), created_at
		FROM properties
		WHERE landlord_id = $1
		ORDER BY name ASC
	`
	rows, err := r.db.Query(ctx, query, landlordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []domain.Property
	for rows.Next() {
		var p domain.Property
		if err := rows.Scan(&p.ID, &p.LandlordID, &p.Name, &p.Address, &p.CreatedAt); err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}
	return properties, rows.Err()
}

// ListPropertiesWithUnits returns the landlord's properties each bundled
// with its units, for the statistics aggregation.
func (r *PostgresRepository) ListPropertiesWithUnits(ctx context.Context, landlordID uuid.UUID) ([]domain.PropertyWithUnits, error) {
	properties, err := r.ListProperties(ctx, landlordID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.PropertyWithUnits, 0, len(properties))
	for _, p := range properties {
		units, err := r.listUnits(ctx, p.ID, uuid.Nil)
		if err != nil {
			return nil, err
		}
		result = append(result, domain.PropertyWithUnits{Property: p, Units: units})
	}
	return result, nil
}

// ListUnitsInProperty returns a property's units, optionally excluding one
// unit (the caller's own, when building the complaint respondent dropdown).
func (r *PostgresRepository) ListUnitsInProperty(ctx context.Context, propertyID uuid.UUID, excludeUnitID uuid.UUID) ([]domain.Unit, error) {
	return r.listUnits(ctx, propertyID, excludeUnitID)
}

func (r *PostgresRepository) listUnits(ctx context.Context, propertyID uuid.UUID, excludeUnitID uuid.UUID) ([]domain.Unit, error) {
	query := `
		SELECT id, property_id, unit_number, COALESCE(rent_amount, 0), status
		FROM units
		WHERE property_id = $1 AND ($2::uuid IS NULL OR id <> $2)
		ORDER BY unit_number ASC
	`
	var exclude *uuid.UUID
	if excludeUnitID != uuid.Nil {
		exclude = &excludeUnitID
	}
	rows, err := r.db.Query(ctx, query, propertyID, exclude)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var units []domain.Unit
	for rows.Next() {
		var u domain.Unit
		if err := rows.Scan(&u.ID, &u.PropertyID, &u.UnitNumber, &u.RentAmount, &u.Status); err != nil {
			return nil, err
		}
		units = append(units, u)
	}
	return units, rows.Err()
}

// FindUnitByID retrieves a single unit.
func (r *PostgresRepository) FindUnitByID(ctx context.Context, unitID uuid.UUID) (*domain.Unit, error) {
	query := `SELECT id, property_id, unit_number, COALESCE(rent_amount, 0), status FROM units WHERE id = $1`
	var u domain.Unit
	err := r.db.QueryRow(ctx, query, unitID).Scan(&u.ID, &u.PropertyID, &u.UnitNumber, &u.RentAmount, &u.Status)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrUnitNotFound
		}
		return nil, err
	}
	return &u, nil
}

// ListNeighbors returns tenants with active leases in the property,
// excluding the caller. Rows without a resolvable profile are skipped.
func (r *PostgresRepository) ListNeighbors(ctx context.Context, propertyID uuid.UUID, excludeTenantID uuid.UUID) ([]domain.Neighbor, error) {
	query := `
		SELECT p.id, COALESCE(p.full_name, 'Unknown'), u.unit_number, p.avatar_url
		FROM leases l
		JOIN units u ON u.id = l.unit_id
		JOIN profiles p ON p.id = l.tenant_id
		WHERE u.property_id = $1 AND l.status = 'active' AND l.tenant_id <> $2
		ORDER BY u.unit_number ASC
	`
	rows, err := r.db.Query(ctx, query, propertyID, excludeTenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var neighbors []domain.Neighbor
	for rows.Next() {
		var n domain.Neighbor
		if err := rows.Scan(&n.TenantID, &n.TenantName, &n.UnitNumber, &n.AvatarURL); err != nil {
			return nil, err
		}
		neighbors = append(neighbors, n)
	}
	return neighbors, rows.Err()
}

// ListKnowledgeBase returns the property's concierge knowledge entries.
func (r *PostgresRepository) ListKnowledgeBase(ctx context.Context, propertyID uuid.UUID) ([]domain.KnowledgeItem, error) {
	query := `
		SELECT id, property_id, category, topic, content
		FROM property_knowledge_base
		WHERE property_id = $1
	`
	rows, err := r.db.Query(ctx, query, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.KnowledgeItem
	for rows.Next() {
		var item domain.KnowledgeItem
		if err := rows.Scan(&item.ID, &item.PropertyID, &item.Category, &item.Topic, &item.Content); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
