/**
 * @description
 * This file covers the tenant directory and community lookups: active leases
 * for the landlord's directory table, the caller's neighbors, the units
 * eligible as complaint respondents, and the sidebar's unread-inquiry badge.
 */
package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/Sedictt/Leasely/internal/domain"
)

// TenantDirectory returns all active leases with tenant and unit labels.
func (s *Service) TenantDirectory(ctx context.Context) ([]domain.Lease, error) {
	return s.repo.ListActiveLeases(ctx)
}

// Neighbors returns the other tenants in the caller's property.
func (s *Service) Neighbors(ctx context.Context, tenantID uuid.UUID) ([]domain.Neighbor, error) {
	lease, err := s.repo.FindActiveLeaseByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	unit, err := s.repo.FindUnitByID(ctx, lease.UnitID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListNeighbors(ctx, unit.PropertyID, tenantID)
}

// RespondentUnits returns the units in the caller's property that can be
// named in a complaint, excluding the caller's own unit.
func (s *Service) RespondentUnits(ctx context.Context, tenantID uuid.UUID) ([]domain.Unit, error) {
	lease, err := s.repo.FindActiveLeaseByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	unit, err := s.repo.FindUnitByID(ctx, lease.UnitID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListUnitsInProperty(ctx, unit.PropertyID, lease.UnitID)
}

// UnreadInquiryCount serves the sidebar badge. It prefers the cached value
// maintained by the refresh job and falls back to a direct count when the
// cache is cold or absent.
func (s *Service) UnreadInquiryCount(ctx context.Context) (int, error) {
	if s.badges != nil {
		count, ok, err := s.badges.GetNewInquiryCount(ctx)
		if err != nil {
			s.logger.Warn("badge cache read failed", "error", err)
		} else if ok {
			return count, nil
		}
	}
	return s.repo.CountNewInquiries(ctx)
}
