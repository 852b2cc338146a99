package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Sedictt/Leasely/internal/domain"
)

func TestRefreshInquiryBadge_WritesCache(t *testing.T) {
	repo := &repoStub{newInquiries: 7}
	cache := &badgeCacheStub{}
	service := newTestService(repo, &publisherStub{}, WithBadgeCache(cache))

	service.RefreshInquiryBadge()

	if !cache.hasCount || cache.count != 7 {
		t.Fatalf("expected cached count 7, got %+v", cache)
	}
}

func TestRefreshInquiryBadge_SkipsCacheOnCountError(t *testing.T) {
	repo := &repoStub{inquiriesErr: errors.New("db down")}
	cache := &badgeCacheStub{}
	service := newTestService(repo, &publisherStub{}, WithBadgeCache(cache))

	service.RefreshInquiryBadge()

	if cache.hasCount {
		t.Fatal("expected no cache write when the count fails")
	}
}

func TestUnreadInquiryCount_PrefersCache(t *testing.T) {
	repo := &repoStub{newInquiries: 3}
	cache := &badgeCacheStub{count: 9, hasCount: true}
	service := newTestService(repo, &publisherStub{}, WithBadgeCache(cache))

	count, err := service.UnreadInquiryCount(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 9 {
		t.Fatalf("expected cached count 9, got %d", count)
	}
}

func TestUnreadInquiryCount_FallsBackToDatabase(t *testing.T) {
	repo := &repoStub{newInquiries: 3}
	service := newTestService(repo, &publisherStub{}, WithBadgeCache(&badgeCacheStub{}))

	count, err := service.UnreadInquiryCount(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected database count 3 on cold cache, got %d", count)
	}
}

func TestScanRenewals_PublishesEventPerAlert(t *testing.T) {
	now := date(2025, time.June, 1)
	repo := &repoStub{
		leases: []domain.Lease{
			{ID: uuid.New(), TenantID: uuid.New(), RentAmount: 10000, EndDate: date(2025, time.July, 1)},
			{ID: uuid.New(), TenantID: uuid.New(), RentAmount: 12000, EndDate: date(2025, time.August, 1)},
			{ID: uuid.New(), TenantID: uuid.New(), RentAmount: 9000, EndDate: date(2026, time.June, 1)},
		},
	}
	events := &publisherStub{}
	service := newTestService(repo, events,
		WithClock(fixedClock(now)),
		WithRentIncrease(func() float64 { return 0.05 }),
	)

	service.ScanRenewals()

	if len(events.routingKeys) != 2 {
		t.Fatalf("expected 2 renewal events, got %d", len(events.routingKeys))
	}
	for _, key := range events.routingKeys {
		if key != domain.EventRenewalDue {
			t.Fatalf("unexpected routing key %q", key)
		}
	}
	event, ok := events.bodies[0].(domain.RenewalDueEvent)
	if !ok {
		t.Fatalf("unexpected event payload type %T", events.bodies[0])
	}
	if event.DaysUntilExpiry != 30 || event.SuggestedNewRent != 10500 {
		t.Fatalf("unexpected renewal event: %+v", event)
	}
}

func TestExpireLeases_EndsOnlyPastLeases(t *testing.T) {
	now := date(2025, time.June, 15)
	expired := uuid.New()
	current := uuid.New()
	repo := &repoStub{
		leases: []domain.Lease{
			{ID: expired, EndDate: date(2025, time.June, 1), Status: domain.LeaseStatusActive},
			{ID: current, EndDate: date(2025, time.December, 31), Status: domain.LeaseStatusActive},
		},
	}
	service := newTestService(repo, &publisherStub{}, WithClock(fixedClock(now)))

	service.ExpireLeases()

	if len(repo.endedLeaseIDs) != 1 {
		t.Fatalf("expected exactly 1 lease ended, got %d", len(repo.endedLeaseIDs))
	}
	if repo.endedLeaseIDs[0] != expired {
		t.Fatal("expected the past-dated lease to be the one ended")
	}
}
