package repository

import (
	"context"
	"time"

	"github.com/vaibhav/lifehub-api/internal/models"

	"gorm.io/gorm"
)

// TodoRepository defines the interface for todo data access
type TodoRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Todo, error)
	FindAll(ctx context.Context) ([]models.Todo, error)
	FindByStatus(ctx context.Context, status string) ([]models.Todo, error)
	FindCompletedBetween(ctx context.Context, start, end time.Time) ([]models.Todo, error)
	Create(ctx context.Context, todo *models.Todo) error
	Update(ctx context.Context, todo *models.Todo) error
	Delete(ctx context.Context, id uint) error
}

type todoRepository struct {
	db *gorm.DB
}

// NewTodoRepository creates a new todo repository
func NewTodoRepository(db *gorm.DB) TodoRepository {
	return &todoRepository{db: db}
}

func (r *todoRepository) FindByID(ctx context.Context, id uint) (*models.Todo, error) {
	var todo models.Todo
	if err := r.db.WithContext(ctx).First(&todo, id).Error; err != nil {
		return nil, err
	}
	return &todo, nil
}

func (r *todoRepository) FindAll(ctx context.Context) ([]models.Todo, error) {
	var todos []models.Todo
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&todos).Error
	return todos, err
}

func (r *todoRepository) FindByStatus(ctx context.Context, status string) ([]models.Todo, error) {
	var todos []models.Todo
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&todos).Error
	return todos, err
}

// FindCompletedBetween returns todos completed inside [start, end], used to
// flag activity-calendar days.
func (r *todoRepository) FindCompletedBetween(ctx context.Context, start, end time.Time) ([]models.Todo, error) {
	var todos []models.Todo
	err := r.db.WithContext(ctx).
		Where("status = ?", models.TodoStatusCompleted).
		Where("completed_at BETWEEN ? AND ?", start, end).
		Find(&todos).Error
	return todos, err
}

func (r *todoRepository) Create(ctx context.Context, todo *models.Todo) error {
	return r.db.WithContext(ctx).Create(todo).Error
}

func (r *todoRepository) Update(ctx context.Context, todo *models.Todo) error {
	return r.db.WithContext(ctx).Save(todo).Error
}

func (r *todoRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Todo{}, id).Error
}
