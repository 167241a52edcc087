package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vaibhav/lifehub-api/internal/models"
	"github.com/vaibhav/lifehub-api/internal/repository"
	"gorm.io/gorm"
)

type mockTodoRepo struct {
	repository.TodoRepository
	mockFindByID func(ctx context.Context, id uint) (*models.Todo, error)
	mockFindAll  func(ctx context.Context) ([]models.Todo, error)
	mockCreate   func(ctx context.Context, todo *models.Todo) error
	mockUpdate   func(ctx context.Context, todo *models.Todo) error
}

func (m *mockTodoRepo) FindByID(ctx context.Context, id uint) (*models.Todo, error) {
	return m.mockFindByID(ctx, id)
}

func (m *mockTodoRepo) FindAll(ctx context.Context) ([]models.Todo, error) {
	return m.mockFindAll(ctx)
}

func (m *mockTodoRepo) Create(ctx context.Context, todo *models.Todo) error {
	if m.mockCreate != nil {
		return m.mockCreate(ctx, todo)
	}
	return nil
}

func (m *mockTodoRepo) Update(ctx context.Context, todo *models.Todo) error {
	if m.mockUpdate != nil {
		return m.mockUpdate(ctx, todo)
	}
	return nil
}

func TestTodoService_GetTodo(t *testing.T) {
	repo := &mockTodoRepo{}
	service := NewTodoService(repo)

	repo.mockFindByID = func(ctx context.Context, id uint) (*models.Todo, error) {
		return &models.Todo{ID: id, Title: "file taxes", Status: models.TodoStatusPending}, nil
	}

	todo, err := service.GetTodo(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), todo.ID)
	assert.Equal(t, "file taxes", todo.Title)

	repo.mockFindByID = func(ctx context.Context, id uint) (*models.Todo, error) {
		return nil, gorm.ErrRecordNotFound
	}

	_, err = service.GetTodo(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTodoService_CompleteTodo_StampsCompletedAt(t *testing.T) {
	repo := &mockTodoRepo{}
	service := NewTodoService(repo)

	repo.mockFindByID = func(ctx context.Context, id uint) (*models.Todo, error) {
		return &models.Todo{ID: id, Status: models.TodoStatusPending}, nil
	}

	todo, err := service.CompleteTodo(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, models.TodoStatusCompleted, todo.Status)
	assert.NotNil(t, todo.CompletedAt)
}

func TestTodoService_ReopenTodo_ClearsCompletedAt(t *testing.T) {
	repo := &mockTodoRepo{}
	service := NewTodoService(repo)

	now := time.Now()
	repo.mockFindByID = func(ctx context.Context, id uint) (*models.Todo, error) {
		return &models.Todo{ID: id, Status: models.TodoStatusCompleted, CompletedAt: &now}, nil
	}

	todo, err := service.ReopenTodo(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, models.TodoStatusPending, todo.Status)
	assert.Nil(t, todo.CompletedAt)
}

func TestTodoService_StartTodo_RejectsCompleted(t *testing.T) {
	repo := &mockTodoRepo{}
	service := NewTodoService(repo)

	repo.mockFindByID = func(ctx context.Context, id uint) (*models.Todo, error) {
		return &models.Todo{ID: id, Status: models.TodoStatusCompleted}, nil
	}

	_, err := service.StartTodo(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestTodoService_Summary_Classification(t *testing.T) {
	repo := &mockTodoRepo{}
	service := NewTodoService(repo)
	today := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	yesterday := today.AddDate(0, 0, -1)
	tomorrow := today.AddDate(0, 0, 1)
	repo.mockFindAll = func(ctx context.Context) ([]models.Todo, error) {
		return []models.Todo{
			{Status: models.TodoStatusPending, DueDate: &yesterday},   // overdue
			{Status: models.TodoStatusInProgress, DueDate: &today},    // due today
			{Status: models.TodoStatusCompleted, DueDate: &yesterday}, // done, never overdue
			{Status: models.TodoStatusPending, DueDate: &tomorrow},
			{Status: models.TodoStatusPending},
		}, nil
	}

	summary, err := service.Summary(context.Background(), today)
	assert.NoError(t, err)
	assert.Equal(t, 3, summary.Pending)
	assert.Equal(t, 1, summary.InProgress)
	assert.Equal(t, 1, summary.Completed)
	assert.Equal(t, 1, summary.Overdue)
	assert.Equal(t, 1, summary.DueToday)
}

func TestTodoService_CreateTodo_DefaultsPendingMedium(t *testing.T) {
	repo := &mockTodoRepo{}
	service := NewTodoService(repo)

	created := false
	repo.mockCreate = func(ctx context.Context, todo *models.Todo) error {
		created = true
		return nil
	}

	todo, err := service.CreateTodo(context.Background(), CreateTodoInput{Title: "file taxes"})
	assert.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, models.TodoStatusPending, todo.Status)
	assert.Equal(t, models.TodoPriorityMedium, todo.Priority)
}

func TestTodoService_UpdateTodo_RejectsBadPriority(t *testing.T) {
	repo := &mockTodoRepo{}
	service := NewTodoService(repo)

	repo.mockFindByID = func(ctx context.Context, id uint) (*models.Todo, error) {
		return &models.Todo{ID: id, Status: models.TodoStatusPending}, nil
	}

	bad := "urgent"
	_, err := service.UpdateTodo(context.Background(), 1, UpdateTodoInput{Priority: &bad})
	assert.ErrorIs(t, err, ErrValidation)
}
