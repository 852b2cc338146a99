package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Sedictt/Leasely/internal/domain"
)

func TestRecordTransaction_Validation(t *testing.T) {
	repo := &repoStub{}
	service := newTestService(repo, &publisherStub{})
	landlordID := uuid.New()

	cases := []struct {
		name string
		tx   domain.Transaction
		want error
	}{
		{"bad type", domain.Transaction{LandlordID: landlordID, Type: "transfer", Category: "Rent", Amount: 100}, ErrInvalidTransactionType},
		{"zero amount", domain.Transaction{LandlordID: landlordID, Type: "income", Category: "Rent", Amount: 0}, ErrInvalidAmount},
		{"negative amount", domain.Transaction{LandlordID: landlordID, Type: "expense", Category: "Repairs", Amount: -5}, ErrInvalidAmount},
		{"blank category", domain.Transaction{LandlordID: landlordID, Type: "income", Category: "  ", Amount: 100}, ErrEmptyCategory},
	}
	for _, tc := range cases {
		tx := tc.tx
		if _, err := service.RecordTransaction(context.Background(), &tx); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestRecordTransaction_DefaultsDateToNow(t *testing.T) {
	now := date(2025, time.April, 10)
	repo := &repoStub{}
	service := newTestService(repo, &publisherStub{}, WithClock(fixedClock(now)))

	tx := domain.Transaction{LandlordID: uuid.New(), Type: "income", Category: "Rent", Amount: 5000}
	created, err := service.RecordTransaction(context.Background(), &tx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created.Date.Equal(now) {
		t.Fatalf("expected date defaulted to %v, got %v", now, created.Date)
	}
}

func TestListTransactions_TypeFilter(t *testing.T) {
	repo := &repoStub{
		transactions: []domain.Transaction{
			{Type: "income", Amount: 5000},
			{Type: "expense", Amount: 1200},
			{Type: "income", Amount: 7000},
		},
	}
	service := newTestService(repo, &publisherStub{})

	all, err := service.ListTransactions(context.Background(), uuid.New(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 transactions unfiltered, got %d", len(all))
	}

	incomes, err := service.ListTransactions(context.Background(), uuid.New(), "income")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(incomes) != 2 {
		t.Fatalf("expected 2 income transactions, got %d", len(incomes))
	}
	for _, tx := range incomes {
		if tx.Type != "income" {
			t.Fatalf("filter leaked a %q transaction", tx.Type)
		}
	}
}

func TestFinanceSummary_SplitsMonthlyTotals(t *testing.T) {
	now := date(2025, time.April, 20)
	repo := &repoStub{
		transactions: []domain.Transaction{
			{Type: "income", Amount: 5000, Date: date(2025, time.April, 1)},
			{Type: "income", Amount: 7000, Date: date(2025, time.March, 1)},
			{Type: "expense", Amount: 1500, Date: date(2025, time.April, 5)},
			{Type: "expense", Amount: 500, Date: date(2024, time.April, 5)}, // same month, prior year
		},
	}
	service := newTestService(repo, &publisherStub{}, WithClock(fixedClock(now)))

	summary, err := service.FinanceSummary(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.TotalIncome != 12000 || summary.TotalExpense != 2000 {
		t.Fatalf("unexpected totals: %+v", summary)
	}
	if summary.NetBalance != 10000 {
		t.Fatalf("expected net balance 10000, got %d", summary.NetBalance)
	}
	if summary.MonthlyIncome != 5000 || summary.MonthlyExpense != 1500 {
		t.Fatalf("monthly totals must match the current year and month: %+v", summary)
	}
}
