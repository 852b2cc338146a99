/**
 * @description
 * This file contains the finances logic: recording income/expense
 * transactions and aggregating the header-card summary the portal shows.
 */
package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Sedictt/Leasely/internal/domain"
)

var (
	ErrInvalidTransactionType = errors.New("transaction type must be income or expense")
	ErrInvalidAmount          = errors.New("amount must be positive")
	ErrEmptyCategory          = errors.New("category is required")
)

// RecordTransaction validates and stores an income or expense entry.
func (s *Service) RecordTransaction(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	if tx.Type != domain.TransactionTypeIncome && tx.Type != domain.TransactionTypeExpense {
		return nil, ErrInvalidTransactionType
	}
	if tx.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if strings.TrimSpace(tx.Category) == "" {
		return nil, ErrEmptyCategory
	}
	if tx.Date.IsZero() {
		tx.Date = s.now()
	}
	return s.repo.CreateTransaction(ctx, tx)
}

// ListTransactions returns the landlord's transactions, optionally filtered
// by type ("income" or "expense"; empty means all).
func (s *Service) ListTransactions(ctx context.Context, landlordID uuid.UUID, typeFilter string) ([]domain.Transaction, error) {
	transactions, err := s.repo.ListTransactions(ctx, landlordID)
	if err != nil {
		return nil, err
	}
	if typeFilter == "" {
		return transactions, nil
	}
	filtered := make([]domain.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t.Type == typeFilter {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

// FinanceSummary aggregates all-time and current-month totals.
func (s *Service) FinanceSummary(ctx context.Context, landlordID uuid.UUID) (*domain.FinanceSummary, error) {
	transactions, err := s.repo.ListTransactions(ctx, landlordID)
	if err != nil {
		return nil, err
	}
	summary := summarizeTransactions(transactions, s.now())
	return &summary, nil
}

func summarizeTransactions(transactions []domain.Transaction, now time.Time) domain.FinanceSummary {
	var summary domain.FinanceSummary
	for _, t := range transactions {
		thisMonth := t.Date.Year() == now.Year() && t.Date.Month() == now.Month()
		switch t.Type {
		case domain.TransactionTypeIncome:
			summary.TotalIncome += t.Amount
			if thisMonth {
				summary.MonthlyIncome += t.Amount
			}
		case domain.TransactionTypeExpense:
			summary.TotalExpense += t.Amount
			if thisMonth {
				summary.MonthlyExpense += t.Amount
			}
		}
	}
	summary.NetBalance = summary.TotalIncome - summary.TotalExpense
	return summary
}
