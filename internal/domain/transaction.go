/**
 * @description
 * This file defines the financial transaction domain model and the summary
 * DTO aggregated for the finances page.
 */
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Transaction types.
const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

// Transaction represents a row in the `transactions` table. Amounts are
// whole currency units, always positive; Type carries the direction.
type Transaction struct {
	ID          uuid.UUID  `json:"id"`
	LandlordID  uuid.UUID  `json:"landlord_id"`
	PropertyID  *uuid.UUID `json:"property_id,omitempty"`
	Type        string     `json:"type"`
	Category    string     `json:"category"`
	Description *string    `json:"description,omitempty"`
	Amount      int64      `json:"amount"`
	Date        time.Time  `json:"date"`
	CreatedAt   time.Time  `json:"created_at"`
}

// FinanceSummary aggregates totals for the finances page header cards.
type FinanceSummary struct {
	TotalIncome    int64 `json:"total_income"`
	TotalExpense   int64 `json:"total_expense"`
	NetBalance     int64 `json:"net_balance"`
	MonthlyIncome  int64 `json:"monthly_income"`
	MonthlyExpense int64 `json:"monthly_expense"`
}
