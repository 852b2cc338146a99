/**
 * @description
 * This file computes the landlord statistics page: per-property occupancy
 * and revenue, portfolio totals, and a month-keyed income/expense series
 * built from the transaction history.
 */
package app

import (
	"context"
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/Sedictt/Leasely/internal/domain"
)

// Statistics aggregates the landlord's portfolio numbers.
func (s *Service) Statistics(ctx context.Context, landlordID uuid.UUID) (*domain.Statistics, error) {
	properties, err := s.repo.ListPropertiesWithUnits(ctx, landlordID)
	if err != nil {
		return nil, err
	}
	transactions, err := s.repo.ListTransactions(ctx, landlordID)
	if err != nil {
		return nil, err
	}

	stats := &domain.Statistics{
		Properties: make([]domain.PropertyStats, 0, len(properties)),
		Monthly:    monthlySeries(transactions),
	}

	totalUnits, occupiedUnits := 0, 0
	for _, p := range properties {
		occupied := 0
		var revenue int64
		for _, u := range p.Units {
			if u.IsOccupied() {
				occupied++
				revenue += u.RentAmount
			}
		}
		totalUnits += len(p.Units)
		occupiedUnits += occupied
		stats.Totals.TotalRevenue += revenue

		stats.Properties = append(stats.Properties, domain.PropertyStats{
			Name:          p.Name,
			TotalUnits:    len(p.Units),
			OccupiedUnits: occupied,
			Revenue:       revenue,
		})
	}

	stats.Totals.TotalProperties = len(properties)
	stats.Totals.TotalUnits = totalUnits
	if totalUnits > 0 {
		stats.Totals.OccupancyRate = int(math.Round(float64(occupiedUnits) / float64(totalUnits) * 100))
	}
	return stats, nil
}

// monthlySeries buckets transactions by "YYYY-MM", oldest month first.
func monthlySeries(transactions []domain.Transaction) []domain.MonthlyFlow {
	buckets := make(map[string]*domain.MonthlyFlow)
	for _, t := range transactions {
		month := t.Date.Format("2006-01")
		flow, ok := buckets[month]
		if !ok {
			flow = &domain.MonthlyFlow{Month: month}
			buckets[month] = flow
		}
		switch t.Type {
		case domain.TransactionTypeIncome:
			flow.Income += t.Amount
		case domain.TransactionTypeExpense:
			flow.Expenses += t.Amount
		}
	}

	series := make([]domain.MonthlyFlow, 0, len(buckets))
	for _, flow := range buckets {
		series = append(series, *flow)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Month < series[j].Month })
	return series
}
