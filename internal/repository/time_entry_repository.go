package repository

import (
	"context"
	"time"

	"github.com/vaibhav/lifehub-api/internal/models"

	"gorm.io/gorm"
)

// TimeEntryRepository defines the interface for time entry data access
type TimeEntryRepository interface {
	FindByID(ctx context.Context, id uint) (*models.TimeEntry, error)
	FindAll(ctx context.Context) ([]models.TimeEntry, error)
	FindByDate(ctx context.Context, date time.Time) ([]models.TimeEntry, error)
	FindBetween(ctx context.Context, start, end time.Time) ([]models.TimeEntry, error)
	Create(ctx context.Context, entry *models.TimeEntry) error
	Delete(ctx context.Context, id uint) error
}

type timeEntryRepository struct {
	db *gorm.DB
}

// NewTimeEntryRepository creates a new time entry repository
func NewTimeEntryRepository(db *gorm.DB) TimeEntryRepository {
	return &timeEntryRepository{db: db}
}

func (r *timeEntryRepository) FindByID(ctx context.Context, id uint) (*models.TimeEntry, error) {
	var entry models.TimeEntry
	if err := r.db.WithContext(ctx).First(&entry, id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *timeEntryRepository) FindAll(ctx context.Context) ([]models.TimeEntry, error) {
	var entries []models.TimeEntry
	err := r.db.WithContext(ctx).
		Order("date DESC, created_at DESC").
		Find(&entries).Error
	return entries, err
}

func (r *timeEntryRepository) FindByDate(ctx context.Context, date time.Time) ([]models.TimeEntry, error) {
	var entries []models.TimeEntry
	err := r.db.WithContext(ctx).
		Where("date = ?", date.Format("2006-01-02")).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}

func (r *timeEntryRepository) FindBetween(ctx context.Context, start, end time.Time) ([]models.TimeEntry, error) {
	var entries []models.TimeEntry
	err := r.db.WithContext(ctx).
		Where("date BETWEEN ? AND ?", start.Format("2006-01-02"), end.Format("2006-01-02")).
		Order("date ASC").
		Find(&entries).Error
	return entries, err
}

func (r *timeEntryRepository) Create(ctx context.Context, entry *models.TimeEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *timeEntryRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.TimeEntry{}, id).Error
}
