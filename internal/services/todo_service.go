package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vaibhav/lifehub-api/internal/models"
	"github.com/vaibhav/lifehub-api/internal/repository"
	"github.com/vaibhav/lifehub-api/internal/statemachine"
	"gorm.io/gorm"
)

// TodoService manages todos. Status only moves through the state machine;
// updates never write the status column directly.
type TodoService struct {
	todoRepo repository.TodoRepository
}

// NewTodoService creates a new todo service
func NewTodoService(todoRepo repository.TodoRepository) *TodoService {
	return &TodoService{todoRepo: todoRepo}
}

// CreateTodoInput carries the fields for creating a todo
type CreateTodoInput struct {
	Title       string     `json:"title" binding:"required"`
	Description *string    `json:"description"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
}

// CreateTodo creates a todo in pending status
func (s *TodoService) CreateTodo(ctx context.Context, input CreateTodoInput) (*models.Todo, error) {
	priority := input.Priority
	if priority == "" {
		priority = models.TodoPriorityMedium
	}
	if !isValidTodoPriority(priority) {
		return nil, fmt.Errorf("%w: unknown priority %q", ErrValidation, priority)
	}

	todo := &models.Todo{
		Title:       input.Title,
		Description: input.Description,
		Status:      models.TodoStatusPending,
		Priority:    priority,
		DueDate:     input.DueDate,
	}
	if err := s.todoRepo.Create(ctx, todo); err != nil {
		return nil, fmt.Errorf("creating todo: %w", err)
	}
	return todo, nil
}

// GetTodo returns a todo by ID
func (s *TodoService) GetTodo(ctx context.Context, id uint) (*models.Todo, error) {
	todo, err := s.todoRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return todo, nil
}

// ListTodos returns todos, optionally filtered by status
func (s *TodoService) ListTodos(ctx context.Context, status string) ([]models.Todo, error) {
	if status == "" {
		return s.todoRepo.FindAll(ctx)
	}
	if !isValidTodoStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	return s.todoRepo.FindByStatus(ctx, status)
}

// UpdateTodoInput carries the updatable todo fields. Status is absent on
// purpose: it only moves through Start/Complete/Reopen.
type UpdateTodoInput struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Priority    *string    `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
}

// UpdateTodo applies a partial update to a todo's editable fields
func (s *TodoService) UpdateTodo(ctx context.Context, id uint, input UpdateTodoInput) (*models.Todo, error) {
	todo, err := s.GetTodo(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		todo.Title = *input.Title
	}
	if input.Description != nil {
		todo.Description = input.Description
	}
	if input.Priority != nil {
		if !isValidTodoPriority(*input.Priority) {
			return nil, fmt.Errorf("%w: unknown priority %q", ErrValidation, *input.Priority)
		}
		todo.Priority = *input.Priority
	}
	if input.DueDate != nil {
		todo.DueDate = input.DueDate
	}

	if err := s.todoRepo.Update(ctx, todo); err != nil {
		return nil, fmt.Errorf("updating todo %d: %w", id, err)
	}
	return todo, nil
}

// DeleteTodo removes a todo
func (s *TodoService) DeleteTodo(ctx context.Context, id uint) error {
	if _, err := s.GetTodo(ctx, id); err != nil {
		return err
	}
	return s.todoRepo.Delete(ctx, id)
}

// StartTodo moves a pending todo to in_progress
func (s *TodoService) StartTodo(ctx context.Context, id uint) (*models.Todo, error) {
	return s.transition(ctx, id, func(f *statemachine.TodoFSM) error {
		return f.Start(ctx)
	})
}

// CompleteTodo moves a pending or in-progress todo to completed
func (s *TodoService) CompleteTodo(ctx context.Context, id uint) (*models.Todo, error) {
	return s.transition(ctx, id, func(f *statemachine.TodoFSM) error {
		return f.Complete(ctx)
	})
}

// ReopenTodo moves a completed todo back to pending
func (s *TodoService) ReopenTodo(ctx context.Context, id uint) (*models.Todo, error) {
	return s.transition(ctx, id, func(f *statemachine.TodoFSM) error {
		return f.Reopen(ctx)
	})
}

func (s *TodoService) transition(ctx context.Context, id uint, event func(*statemachine.TodoFSM) error) (*models.Todo, error) {
	todo, err := s.GetTodo(ctx, id)
	if err != nil {
		return nil, err
	}

	machine := statemachine.NewTodoFSM(todo)
	if err := event(machine); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidState, err)
	}

	if err := s.todoRepo.Update(ctx, todo); err != nil {
		return nil, fmt.Errorf("persisting todo %d: %w", id, err)
	}
	return todo, nil
}

// TodoSummary is the headline todo counts for the dashboard
type TodoSummary struct {
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
	Overdue    int `json:"overdue"`
	DueToday   int `json:"due_today"`
}

// Summary counts todos by status and due-date classification against today
func (s *TodoService) Summary(ctx context.Context, today time.Time) (*TodoSummary, error) {
	todos, err := s.todoRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	summary := &TodoSummary{}
	for i := range todos {
		t := &todos[i]
		switch t.Status {
		case models.TodoStatusPending:
			summary.Pending++
		case models.TodoStatusInProgress:
			summary.InProgress++
		case models.TodoStatusCompleted:
			summary.Completed++
		}
		if t.IsOverdue(today) {
			summary.Overdue++
		}
		if t.IsDueToday(today) && !t.IsCompleted() {
			summary.DueToday++
		}
	}
	return summary, nil
}

func isValidTodoStatus(status string) bool {
	switch status {
	case models.TodoStatusPending, models.TodoStatusInProgress, models.TodoStatusCompleted:
		return true
	}
	return false
}

func isValidTodoPriority(priority string) bool {
	switch priority {
	case models.TodoPriorityLow, models.TodoPriorityMedium, models.TodoPriorityHigh:
		return true
	}
	return false
}
