package app

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Sedictt/Leasely/internal/domain"
	"github.com/Sedictt/Leasely/internal/store"
)

// repoStub is a configurable in-memory stand-in for store.Repository. Only
// the methods a test exercises need backing fields; anything else panics via
// the embedded nil interface.
type repoStub struct {
	store.Repository

	leases              []domain.Lease
	leasesErr           error
	leaseByID           map[uuid.UUID]*domain.Lease
	activeLeaseByTenant map[uuid.UUID]*domain.Lease
	endedLeaseIDs       []uuid.UUID

	units               map[uuid.UUID]*domain.Unit
	unitsInProperty     []domain.Unit
	neighbors           []domain.Neighbor
	knowledge           []domain.KnowledgeItem
	propertiesWithUnits []domain.PropertyWithUnits

	complaints       map[uuid.UUID]*domain.Complaint
	createdComplaint *domain.Complaint
	seedContent      string
	createdMessages  []domain.ComplaintMessage
	statusUpdates    []complaintStatusUpdate

	tasks        map[uuid.UUID]*domain.Task
	createdTasks []domain.Task
	taskUpdates  []taskStatusUpdate

	transactions   []domain.Transaction
	createdTx      *domain.Transaction
	transactionErr error

	newInquiries  int
	inquiriesErr  error
	notifications []domain.LandlordNotification
}

type complaintStatusUpdate struct {
	complaintID uuid.UUID
	status      string
	escalatedAt *time.Time
}

type taskStatusUpdate struct {
	taskID      uuid.UUID
	status      string
	completedAt *time.Time
}

func (r *repoStub) ListActiveLeases(ctx context.Context) ([]domain.Lease, error) {
	if r.leasesErr != nil {
		return nil, r.leasesErr
	}
	return r.leases, nil
}

func (r *repoStub) FindLeaseByID(ctx context.Context, leaseID uuid.UUID) (*domain.Lease, error) {
	if lease, ok := r.leaseByID[leaseID]; ok {
		return lease, nil
	}
	return nil, store.ErrLeaseNotFound
}

func (r *repoStub) FindActiveLeaseByTenant(ctx context.Context, tenantID uuid.UUID) (*domain.Lease, error) {
	if lease, ok := r.activeLeaseByTenant[tenantID]; ok {
		return lease, nil
	}
	return nil, store.ErrLeaseNotFound
}

func (r *repoStub) MarkLeaseEnded(ctx context.Context, leaseID uuid.UUID) error {
	r.endedLeaseIDs = append(r.endedLeaseIDs, leaseID)
	return nil
}

func (r *repoStub) CreateComplaintWithSeedMessage(ctx context.Context, complaint *domain.Complaint, seedContent string) (*domain.Complaint, error) {
	created := *complaint
	created.ID = uuid.New()
	created.Status = domain.ComplaintStatusOpen
	created.CreatedAt = time.Now()
	r.createdComplaint = &created
	r.seedContent = seedContent
	return &created, nil
}

func (r *repoStub) ListComplaintsByProperty(ctx context.Context, propertyID uuid.UUID) ([]domain.Complaint, error) {
	var out []domain.Complaint
	for _, c := range r.complaints {
		if c.PropertyID == propertyID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *repoStub) FindComplaintByID(ctx context.Context, complaintID uuid.UUID) (*domain.Complaint, error) {
	if c, ok := r.complaints[complaintID]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, store.ErrComplaintNotFound
}

func (r *repoStub) UpdateComplaintStatus(ctx context.Context, complaintID uuid.UUID, status string, escalatedAt *time.Time) error {
	r.statusUpdates = append(r.statusUpdates, complaintStatusUpdate{complaintID, status, escalatedAt})
	if c, ok := r.complaints[complaintID]; ok {
		c.Status = status
		if escalatedAt != nil {
			c.EscalatedAt = escalatedAt
		}
	}
	return nil
}

func (r *repoStub) CreateComplaintMessage(ctx context.Context, message *domain.ComplaintMessage) error {
	message.ID = uuid.New()
	message.CreatedAt = time.Now()
	r.createdMessages = append(r.createdMessages, *message)
	return nil
}

func (r *repoStub) ListComplaintMessages(ctx context.Context, complaintID uuid.UUID) ([]domain.ComplaintMessage, error) {
	var out []domain.ComplaintMessage
	for _, m := range r.createdMessages {
		if m.ComplaintID == complaintID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *repoStub) ListPropertiesWithUnits(ctx context.Context, landlordID uuid.UUID) ([]domain.PropertyWithUnits, error) {
	return r.propertiesWithUnits, nil
}

func (r *repoStub) ListUnitsInProperty(ctx context.Context, propertyID uuid.UUID, excludeUnitID uuid.UUID) ([]domain.Unit, error) {
	return r.unitsInProperty, nil
}

func (r *repoStub) FindUnitByID(ctx context.Context, unitID uuid.UUID) (*domain.Unit, error) {
	if u, ok := r.units[unitID]; ok {
		return u, nil
	}
	return nil, store.ErrUnitNotFound
}

func (r *repoStub) ListNeighbors(ctx context.Context, propertyID uuid.UUID, excludeTenantID uuid.UUID) ([]domain.Neighbor, error) {
	return r.neighbors, nil
}

func (r *repoStub) CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	created := *task
	created.ID = uuid.New()
	created.Status = domain.TaskStatusPending
	created.CreatedAt = time.Now()
	r.createdTasks = append(r.createdTasks, created)
	return &created, nil
}

func (r *repoStub) ListTasks(ctx context.Context, landlordID uuid.UUID) ([]domain.Task, error) {
	var out []domain.Task
	for _, t := range r.tasks {
		out = append(out, *t)
	}
	return out, nil
}

func (r *repoStub) FindTaskByID(ctx context.Context, taskID uuid.UUID) (*domain.Task, error) {
	if t, ok := r.tasks[taskID]; ok {
		copied := *t
		return &copied, nil
	}
	return nil, store.ErrTaskNotFound
}

func (r *repoStub) UpdateTaskStatus(ctx context.Context, taskID uuid.UUID, status string, completedAt *time.Time) error {
	r.taskUpdates = append(r.taskUpdates, taskStatusUpdate{taskID, status, completedAt})
	return nil
}

func (r *repoStub) DeleteTask(ctx context.Context, taskID uuid.UUID) error {
	if _, ok := r.tasks[taskID]; !ok {
		return store.ErrTaskNotFound
	}
	delete(r.tasks, taskID)
	return nil
}

func (r *repoStub) CreateTransaction(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	if r.transactionErr != nil {
		return nil, r.transactionErr
	}
	created := *tx
	created.ID = uuid.New()
	created.CreatedAt = time.Now()
	r.createdTx = &created
	return &created, nil
}

func (r *repoStub) ListTransactions(ctx context.Context, landlordID uuid.UUID) ([]domain.Transaction, error) {
	return r.transactions, nil
}

func (r *repoStub) ListKnowledgeBase(ctx context.Context, propertyID uuid.UUID) ([]domain.KnowledgeItem, error) {
	return r.knowledge, nil
}

func (r *repoStub) CountNewInquiries(ctx context.Context) (int, error) {
	if r.inquiriesErr != nil {
		return 0, r.inquiriesErr
	}
	return r.newInquiries, nil
}

func (r *repoStub) CreateLandlordNotification(ctx context.Context, n *domain.LandlordNotification) error {
	r.notifications = append(r.notifications, *n)
	return nil
}

// publisherStub records published events.
type publisherStub struct {
	exchanges   []string
	routingKeys []string
	bodies      []interface{}
	err         error
}

func (p *publisherStub) Publish(ctx context.Context, exchange, routingKey string, body interface{}) error {
	if p.err != nil {
		return p.err
	}
	p.exchanges = append(p.exchanges, exchange)
	p.routingKeys = append(p.routingKeys, routingKey)
	p.bodies = append(p.bodies, body)
	return nil
}

// badgeCacheStub records the cached count.
type badgeCacheStub struct {
	count    int
	hasCount bool
	getErr   error
	setErr   error
}

func (b *badgeCacheStub) SetNewInquiryCount(ctx context.Context, count int) error {
	if b.setErr != nil {
		return b.setErr
	}
	b.count = count
	b.hasCount = true
	return nil
}

func (b *badgeCacheStub) GetNewInquiryCount(ctx context.Context) (int, bool, error) {
	if b.getErr != nil {
		return 0, false, b.getErr
	}
	return b.count, b.hasCount, nil
}

// limiterStub returns a fixed count from ConsumeRateLimit.
type limiterStub struct {
	count int
	err   error
}

func (l *limiterStub) ConsumeRateLimit(ctx context.Context, scope, subject string, limit int, window time.Duration) (int, int, error) {
	if l.err != nil {
		return 0, 0, l.err
	}
	return l.count, 1, nil
}

func newTestService(repo store.Repository, events Publisher, opts ...Option) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(repo, events, logger, "leasely.events", opts...)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
