package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vaibhav/lifehub-api/internal/finance"
	"github.com/vaibhav/lifehub-api/internal/models"
	"github.com/vaibhav/lifehub-api/internal/repository"
	"gorm.io/gorm"
)

// TimeService manages time entries and their daily/weekly rollups. Effort
// points are derived server-side at creation; clients never submit them.
type TimeService struct {
	timeRepo repository.TimeEntryRepository
}

// NewTimeService creates a new time service
func NewTimeService(timeRepo repository.TimeEntryRepository) *TimeService {
	return &TimeService{timeRepo: timeRepo}
}

// CreateTimeEntryInput carries the fields for logging a session
type CreateTimeEntryInput struct {
	Date        time.Time `json:"date" binding:"required"`
	Category    string    `json:"category" binding:"required"`
	Hours       float64   `json:"hours" binding:"required,gt=0"`
	Description *string   `json:"description"`
}

// CreateEntry logs a session. The category must be one of the fixed set and
// effort points are computed here, never taken from the request.
func (s *TimeService) CreateEntry(ctx context.Context, input CreateTimeEntryInput) (*models.TimeEntry, error) {
	if !models.IsValidTimeCategory(input.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, input.Category)
	}

	entry := &models.TimeEntry{
		Date:         input.Date,
		Category:     input.Category,
		Hours:        input.Hours,
		EffortPoints: finance.EffortPoints(input.Category, input.Hours),
		Description:  input.Description,
	}
	if err := s.timeRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("creating time entry: %w", err)
	}
	return entry, nil
}

// DeleteEntry removes a time entry
func (s *TimeService) DeleteEntry(ctx context.Context, id uint) error {
	if _, err := s.timeRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.timeRepo.Delete(ctx, id)
}

// ListEntries returns all entries, newest first
func (s *TimeService) ListEntries(ctx context.Context) ([]models.TimeEntry, error) {
	return s.timeRepo.FindAll(ctx)
}

// EntriesForDate returns the entries logged on one calendar day
func (s *TimeService) EntriesForDate(ctx context.Context, date time.Time) ([]models.TimeEntry, error) {
	return s.timeRepo.FindByDate(ctx, date)
}

// DaySummary rolls up one calendar day of logged time
type DaySummary struct {
	Date         time.Time          `json:"date"`
	TotalHours   float64            `json:"total_hours"`
	EffortPoints float64            `json:"effort_points"`
	ByCategory   map[string]float64 `json:"by_category"`
	Entries      []models.TimeEntry `json:"entries"`
}

// TodaySummary rolls up today's entries
func (s *TimeService) TodaySummary(ctx context.Context, today time.Time) (*DaySummary, error) {
	entries, err := s.timeRepo.FindByDate(ctx, today)
	if err != nil {
		return nil, err
	}

	summary := &DaySummary{
		Date:       today,
		ByCategory: make(map[string]float64),
		Entries:    entries,
	}
	for _, e := range entries {
		summary.TotalHours += e.Hours
		summary.EffortPoints += e.EffortPoints
		summary.ByCategory[e.Category] += e.Hours
	}
	return summary, nil
}

// WeekSummary is seven day buckets starting on Sunday
type WeekSummary struct {
	WeekStart    time.Time    `json:"week_start"`
	Days         []DaySummary `json:"days"`
	TotalHours   float64      `json:"total_hours"`
	EffortPoints float64      `json:"effort_points"`
}

// WeekSummary buckets the current week's entries into seven Sunday-keyed
// days. Days without entries appear as empty buckets.
func (s *TimeService) WeekSummary(ctx context.Context, today time.Time) (*WeekSummary, error) {
	weekStart := startOfWeek(today)
	weekEnd := weekStart.AddDate(0, 0, 6)

	entries, err := s.timeRepo.FindBetween(ctx, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}

	week := &WeekSummary{
		WeekStart: weekStart,
		Days:      make([]DaySummary, 7),
	}
	for i := range week.Days {
		week.Days[i] = DaySummary{
			Date:       weekStart.AddDate(0, 0, i),
			ByCategory: make(map[string]float64),
			Entries:    []models.TimeEntry{},
		}
	}

	for _, e := range entries {
		// normalize both sides to UTC midnight; entry dates come back from
		// the DB in UTC while weekStart carries the caller's zone
		idx := int(dateOnly(e.Date).Sub(dateOnly(weekStart)).Hours() / 24)
		if idx < 0 || idx > 6 {
			continue
		}
		day := &week.Days[idx]
		day.TotalHours += e.Hours
		day.EffortPoints += e.EffortPoints
		day.ByCategory[e.Category] += e.Hours
		day.Entries = append(day.Entries, e)
		week.TotalHours += e.Hours
		week.EffortPoints += e.EffortPoints
	}
	return week, nil
}

// Categories returns the fixed category list in display order
func (s *TimeService) Categories() []string {
	return models.TimeCategories
}

// startOfWeek returns midnight of the Sunday on or before t
func startOfWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -int(day.Weekday()))
}
