package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vaibhav/lifehub-api/internal/models"
	"github.com/vaibhav/lifehub-api/internal/repository"
)

type mockTimeRepo struct {
	repository.TimeEntryRepository
	mockCreate      func(ctx context.Context, entry *models.TimeEntry) error
	mockFindByDate  func(ctx context.Context, date time.Time) ([]models.TimeEntry, error)
	mockFindBetween func(ctx context.Context, start, end time.Time) ([]models.TimeEntry, error)
}

func (m *mockTimeRepo) Create(ctx context.Context, entry *models.TimeEntry) error {
	if m.mockCreate != nil {
		return m.mockCreate(ctx, entry)
	}
	return nil
}

func (m *mockTimeRepo) FindByDate(ctx context.Context, date time.Time) ([]models.TimeEntry, error) {
	return m.mockFindByDate(ctx, date)
}

func (m *mockTimeRepo) FindBetween(ctx context.Context, start, end time.Time) ([]models.TimeEntry, error) {
	return m.mockFindBetween(ctx, start, end)
}

func TestTimeService_CreateEntry_DerivesEffortPoints(t *testing.T) {
	repo := &mockTimeRepo{}
	service := NewTimeService(repo)
	date := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

	entry, err := service.CreateEntry(context.Background(), CreateTimeEntryInput{
		Date:     date,
		Category: models.TimeCategoryThesisWork,
		Hours:    2.5,
	})
	assert.NoError(t, err)
	assert.Equal(t, 2.5, entry.EffortPoints)

	// A gym session is worth exactly 1 point no matter how long it ran
	entry, err = service.CreateEntry(context.Background(), CreateTimeEntryInput{
		Date:     date,
		Category: models.TimeCategoryGym,
		Hours:    3,
	})
	assert.NoError(t, err)
	assert.Equal(t, 1.0, entry.EffortPoints)
}

func TestTimeService_CreateEntry_RejectsUnknownCategory(t *testing.T) {
	service := NewTimeService(&mockTimeRepo{})

	_, err := service.CreateEntry(context.Background(), CreateTimeEntryInput{
		Date:     time.Now(),
		Category: "Cooking",
		Hours:    1,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestTimeService_TodaySummary(t *testing.T) {
	repo := &mockTimeRepo{}
	service := NewTimeService(repo)
	today := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

	repo.mockFindByDate = func(ctx context.Context, date time.Time) ([]models.TimeEntry, error) {
		return []models.TimeEntry{
			{Date: today, Category: models.TimeCategoryUniStudy, Hours: 2, EffortPoints: 2},
			{Date: today, Category: models.TimeCategoryUniStudy, Hours: 1.5, EffortPoints: 1.5},
			{Date: today, Category: models.TimeCategoryGym, Hours: 1.5, EffortPoints: 1},
		}, nil
	}

	summary, err := service.TodaySummary(context.Background(), today)
	assert.NoError(t, err)
	assert.Equal(t, 5.0, summary.TotalHours)
	assert.Equal(t, 4.5, summary.EffortPoints)
	assert.Equal(t, 3.5, summary.ByCategory[models.TimeCategoryUniStudy])
}

func TestTimeService_WeekSummary_BucketsSundayStart(t *testing.T) {
	repo := &mockTimeRepo{}
	service := NewTimeService(repo)

	// 2026-08-28 is a Friday; the week starts Sunday 2026-08-23
	today := time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)

	repo.mockFindBetween = func(ctx context.Context, start, end time.Time) ([]models.TimeEntry, error) {
		assert.Equal(t, sunday, start)
		return []models.TimeEntry{
			{Date: sunday, Category: models.TimeCategoryGym, Hours: 1, EffortPoints: 1},
			{Date: sunday.AddDate(0, 0, 5), Category: models.TimeCategoryCEOWork, Hours: 4, EffortPoints: 4},
		}, nil
	}

	week, err := service.WeekSummary(context.Background(), today)
	assert.NoError(t, err)
	assert.Equal(t, sunday, week.WeekStart)
	assert.Len(t, week.Days, 7)
	assert.Equal(t, 1.0, week.Days[0].TotalHours)
	assert.Equal(t, 4.0, week.Days[5].TotalHours)
	assert.Equal(t, 0.0, week.Days[3].TotalHours)
	assert.Equal(t, 5.0, week.TotalHours)
}

func TestTimeService_WeekSummary_LocalZoneDoesNotShiftBuckets(t *testing.T) {
	repo := &mockTimeRepo{}
	service := NewTimeService(repo)

	// caller clock in a UTC-negative zone, entry dates scanned as UTC midnight
	denver := time.FixedZone("America/Denver", -6*60*60)
	today := time.Date(2026, 8, 28, 15, 0, 0, 0, denver)
	wednesday := time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)

	repo.mockFindBetween = func(ctx context.Context, start, end time.Time) ([]models.TimeEntry, error) {
		return []models.TimeEntry{
			{Date: wednesday, Category: models.TimeCategoryUniStudy, Hours: 2, EffortPoints: 2},
		}, nil
	}

	week, err := service.WeekSummary(context.Background(), today)
	assert.NoError(t, err)
	assert.Equal(t, 2.0, week.Days[3].TotalHours)
	assert.Equal(t, 0.0, week.Days[2].TotalHours)
}
