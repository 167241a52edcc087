package repository

import (
	"context"
	"time"

	"github.com/vaibhav/lifehub-api/internal/models"

	"gorm.io/gorm"
)

// DailyHours is a per-calendar-day hours sum
type DailyHours struct {
	Date  time.Time `json:"date"`
	Hours float64   `json:"hours"`
}

// AnalyticsRepository holds the aggregate queries behind the dashboard and
// the activity calendar.
type AnalyticsRepository interface {
	DailyHoursBetween(ctx context.Context, start, end time.Time) ([]DailyHours, error)
	JournalDatesBetween(ctx context.Context, start, end time.Time) ([]time.Time, error)
	CompletedTodoDatesBetween(ctx context.Context, start, end time.Time) ([]time.Time, error)
}

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) DailyHoursBetween(ctx context.Context, start, end time.Time) ([]DailyHours, error) {
	var rows []DailyHours
	err := r.db.WithContext(ctx).
		Model(&models.TimeEntry{}).
		Select("date, COALESCE(SUM(hours), 0) AS hours").
		Where("date BETWEEN ? AND ?", start.Format("2006-01-02"), end.Format("2006-01-02")).
		Group("date").
		Order("date ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *analyticsRepository) JournalDatesBetween(ctx context.Context, start, end time.Time) ([]time.Time, error) {
	var dates []time.Time
	err := r.db.WithContext(ctx).
		Model(&models.JournalEntry{}).
		Where("entry_date BETWEEN ? AND ?", start.Format("2006-01-02"), end.Format("2006-01-02")).
		Order("entry_date ASC").
		Pluck("entry_date", &dates).Error
	return dates, err
}

// CompletedTodoDatesBetween returns one completion date per completed todo,
// so callers can count completions per day.
func (r *analyticsRepository) CompletedTodoDatesBetween(ctx context.Context, start, end time.Time) ([]time.Time, error) {
	var dates []time.Time
	err := r.db.WithContext(ctx).
		Model(&models.Todo{}).
		Where("status = ?", models.TodoStatusCompleted).
		Where("DATE(completed_at) BETWEEN ? AND ?", start.Format("2006-01-02"), end.Format("2006-01-02")).
		Order("completed_at ASC").
		Pluck("DATE(completed_at)", &dates).Error
	return dates, err
}
