/**
 * @description
 * This file defines the property and unit domain models, plus the aggregated
 * statistics DTOs served to the landlord statistics page.
 */
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Unit occupancy statuses. Units marked "neardue" are still occupied; their
// lease is simply approaching its end date.
const (
	UnitStatusVacant   = "vacant"
	UnitStatusOccupied = "occupied"
	UnitStatusNearDue  = "neardue"
)

// Property represents a row in the `properties` table.
type Property struct {
	ID         uuid.UUID `json:"id"`
	LandlordID uuid.UUID `json:"landlord_id"`
	Name       string    `json:"name"`
	Address    string    `json:"address,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Unit represents a rentable unit within a property.
type Unit struct {
	ID         uuid.UUID `json:"id"`
	PropertyID uuid.UUID `json:"property_id"`
	UnitNumber string    `json:"unit_number"`
	RentAmount int64     `json:"rent_amount"`
	Status     string    `json:"status"`
}

// IsOccupied reports whether the unit currently generates rent.
func (u Unit) IsOccupied() bool {
	return u.Status == UnitStatusOccupied || u.Status == UnitStatusNearDue
}

// PropertyWithUnits bundles a property with its units for aggregation.
type PropertyWithUnits struct {
	Property
	Units []Unit `json:"units"`
}

// PropertyStats is the per-property aggregation row on the statistics page.
type PropertyStats struct {
	Name          string `json:"name"`
	TotalUnits    int    `json:"total_units"`
	OccupiedUnits int    `json:"occupied_units"`
	Revenue       int64  `json:"revenue"`
}

// PortfolioTotals summarizes the landlord's whole portfolio.
type PortfolioTotals struct {
	TotalRevenue    int64 `json:"total_revenue"`
	TotalProperties int   `json:"total_properties"`
	TotalUnits      int   `json:"total_units"`
	OccupancyRate   int   `json:"occupancy_rate"` // rounded percentage, 0 when no units
}

// MonthlyFlow is one bucket in the month-keyed income/expense series.
type MonthlyFlow struct {
	Month    string `json:"month"` // "2006-01" format
	Income   int64  `json:"income"`
	Expenses int64  `json:"expenses"`
}

// Statistics is the full payload for the statistics endpoint.
type Statistics struct {
	Properties []PropertyStats `json:"properties"`
	Totals     PortfolioTotals `json:"totals"`
	Monthly    []MonthlyFlow   `json:"monthly"`
}

// Neighbor is a fellow tenant in the caller's property, shown on the
// community page.
type Neighbor struct {
	TenantID   uuid.UUID `json:"tenant_id"`
	TenantName string    `json:"tenant_name"`
	UnitNumber string    `json:"unit_number"`
	AvatarURL  *string   `json:"avatar_url,omitempty"`
}
