/**
 * @description
 * This file contains the landlord task list logic. Toggling completion
 * stamps or clears the completed_at timestamp alongside the status flip.
 */
package app

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/Sedictt/Leasely/internal/domain"
)

var ErrEmptyTitle = errors.New("title is required")

// CreateTask validates and stores a new pending task.
func (s *Service) CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if strings.TrimSpace(task.Title) == "" {
		return nil, ErrEmptyTitle
	}
	switch task.Priority {
	case domain.TaskPriorityLow, domain.TaskPriorityMedium, domain.TaskPriorityHigh:
	default:
		task.Priority = domain.TaskPriorityMedium
	}
	return s.repo.CreateTask(ctx, task)
}

// ListTasks returns the landlord's tasks, newest first.
func (s *Service) ListTasks(ctx context.Context, landlordID uuid.UUID) ([]domain.Task, error) {
	return s.repo.ListTasks(ctx, landlordID)
}

// ToggleTask flips a task between pending and completed, maintaining the
// completion timestamp.
func (s *Service) ToggleTask(ctx context.Context, taskID uuid.UUID) (*domain.Task, error) {
	task, err := s.repo.FindTaskByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if task.Status == domain.TaskStatusCompleted {
		task.Status = domain.TaskStatusPending
		task.CompletedAt = nil
	} else {
		now := s.now()
		task.Status = domain.TaskStatusCompleted
		task.CompletedAt = &now
	}

	if err := s.repo.UpdateTaskStatus(ctx, taskID, task.Status, task.CompletedAt); err != nil {
		return nil, err
	}
	return task, nil
}

// DeleteTask removes a task.
func (s *Service) DeleteTask(ctx context.Context, taskID uuid.UUID) error {
	return s.repo.DeleteTask(ctx, taskID)
}
