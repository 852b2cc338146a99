/**
 * @description
 * This file defines the `Repository` interface, the contract for all data
 * access the property service needs. Business logic in `internal/app` depends
 * on this interface rather than on PostgreSQL directly, so tests can
 * substitute an in-memory stub.
 *
 * @dependencies
 * - context, time: Standard Go libraries.
 * - github.com/google/uuid: For UUID handling.
 * - internal/domain: The service's domain models.
 */

package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Sedictt/Leasely/internal/domain"
)

var (
	ErrLeaseNotFound     = errors.New("lease not found")
	ErrUnitNotFound      = errors.New("unit not found")
	ErrComplaintNotFound = errors.New("complaint not found")
	ErrTaskNotFound      = errors.New("task not found")
	ErrProfileNotFound   = errors.New("profile not found")
)

// Repository defines the set of methods for interacting with the database.
type Repository interface {
	// Lease methods
	ListActiveLeases(ctx context.Context) ([]domain.Lease, error)
	FindLeaseByID(ctx context.Context, leaseID uuid.UUID) (*domain.Lease, error)
	FindActiveLeaseByTenant(ctx context.Context, tenantID uuid.UUID) (*domain.Lease, error)
	MarkLeaseEnded(ctx context.Context, leaseID uuid.UUID) error

	// Complaint methods
	CreateComplaintWithSeedMessage(ctx context.Context, complaint *domain.Complaint, seedContent string) (*domain.Complaint, error)
	ListComplaintsByProperty(ctx context.Context, propertyID uuid.UUID) ([]domain.Complaint, error)
	FindComplaintByID(ctx context.Context, complaintID uuid.UUID) (*domain.Complaint, error)
	UpdateComplaintStatus(ctx context.Context, complaintID uuid.UUID, status string, escalatedAt *time.Time) error
	CreateComplaintMessage(ctx context.Context, message *domain.ComplaintMessage) error
	ListComplaintMessages(ctx context.Context, complaintID uuid.UUID) ([]domain.ComplaintMessage, error)

	// Property and unit methods
	ListProperties(ctx context.Context, landlordID uuid.UUID) ([]domain.Property, error)
	ListPropertiesWithUnits(ctx context.Context, landlordID uuid.UUID) ([]domain.PropertyWithUnits, error)
	ListUnitsInProperty(ctx context.Context, propertyID uuid.UUID, excludeUnitID uuid.UUID) ([]domain.Unit, error)
	FindUnitByID(ctx context.Context, unitID uuid.UUID) (*domain.Unit, error)
	ListNeighbors(ctx context.Context, propertyID uuid.UUID, excludeTenantID uuid.UUID) ([]domain.Neighbor, error)

	// Task methods
	CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error)
	ListTasks(ctx context.Context, landlordID uuid.UUID) ([]domain.Task, error)
	FindTaskByID(ctx context.Context, taskID uuid.UUID) (*domain.Task, error)
	UpdateTaskStatus(ctx context.Context, taskID uuid.UUID, status string, completedAt *time.Time) error
	DeleteTask(ctx context.Context, taskID uuid.UUID) error

	// Financial transaction methods
	CreateTransaction(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, landlordID uuid.UUID) ([]domain.Transaction, error)

	// Knowledge base methods
	ListKnowledgeBase(ctx context.Context, propertyID uuid.UUID) ([]domain.KnowledgeItem, error)

	// Profile methods
	FindProfileByID(ctx context.Context, profileID uuid.UUID) (*domain.Profile, error)

	// Inquiry and notification methods
	CountNewInquiries(ctx context.Context) (int, error)
	CreateLandlordNotification(ctx context.Context, n *domain.LandlordNotification) error
}
