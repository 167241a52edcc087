package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vaibhav/lifehub-api/internal/repository"
)

type mockAnalyticsRepo struct {
	repository.AnalyticsRepository
	mockDailyHoursBetween         func(ctx context.Context, start, end time.Time) ([]repository.DailyHours, error)
	mockJournalDatesBetween       func(ctx context.Context, start, end time.Time) ([]time.Time, error)
	mockCompletedTodoDatesBetween func(ctx context.Context, start, end time.Time) ([]time.Time, error)
}

func (m *mockAnalyticsRepo) DailyHoursBetween(ctx context.Context, start, end time.Time) ([]repository.DailyHours, error) {
	return m.mockDailyHoursBetween(ctx, start, end)
}

func (m *mockAnalyticsRepo) JournalDatesBetween(ctx context.Context, start, end time.Time) ([]time.Time, error) {
	return m.mockJournalDatesBetween(ctx, start, end)
}

func (m *mockAnalyticsRepo) CompletedTodoDatesBetween(ctx context.Context, start, end time.Time) ([]time.Time, error) {
	return m.mockCompletedTodoDatesBetween(ctx, start, end)
}

func TestDashboardService_Calendar_PadsToFullWeeks(t *testing.T) {
	analytics := &mockAnalyticsRepo{}
	service := NewDashboardService(nil, nil, nil, nil, nil, analytics)

	var gridStart, gridEnd time.Time
	analytics.mockDailyHoursBetween = func(ctx context.Context, start, end time.Time) ([]repository.DailyHours, error) {
		gridStart, gridEnd = start, end
		return []repository.DailyHours{
			{Date: day(2026, 8, 10), Hours: 3.5},
		}, nil
	}
	analytics.mockJournalDatesBetween = func(ctx context.Context, start, end time.Time) ([]time.Time, error) {
		return []time.Time{day(2026, 8, 10)}, nil
	}
	analytics.mockCompletedTodoDatesBetween = func(ctx context.Context, start, end time.Time) ([]time.Time, error) {
		return []time.Time{day(2026, 8, 10), day(2026, 8, 10)}, nil
	}

	calendar, err := service.Calendar(context.Background(), 2026, time.August)
	assert.NoError(t, err)

	// August 2026 starts on a Saturday and ends on a Monday, so the grid
	// pads back to Sunday 26 July and forward to Saturday 5 September.
	assert.Equal(t, day(2026, 7, 26), gridStart)
	assert.Equal(t, day(2026, 9, 5), gridEnd)
	assert.Len(t, calendar.Weeks, 6)

	first := calendar.Weeks[0][0]
	assert.Equal(t, day(2026, 7, 26), first.Date)
	assert.False(t, first.InMonth)

	// 2026-08-10 is the Monday of week 3
	active := calendar.Weeks[2][1]
	assert.Equal(t, day(2026, 8, 10), active.Date)
	assert.True(t, active.InMonth)
	assert.Equal(t, 3.5, active.Hours)
	assert.True(t, active.JournalWritten)
	assert.Equal(t, 2, active.TodosCompleted)
}

func TestDashboardService_Calendar_CountsCompletionOnLastGridDay(t *testing.T) {
	analytics := &mockAnalyticsRepo{}
	service := NewDashboardService(nil, nil, nil, nil, nil, analytics)

	analytics.mockDailyHoursBetween = func(ctx context.Context, start, end time.Time) ([]repository.DailyHours, error) {
		return nil, nil
	}
	analytics.mockJournalDatesBetween = func(ctx context.Context, start, end time.Time) ([]time.Time, error) {
		return nil, nil
	}
	analytics.mockCompletedTodoDatesBetween = func(ctx context.Context, start, end time.Time) ([]time.Time, error) {
		// a completion stamped mid-morning on the trailing Saturday
		return []time.Time{time.Date(2026, 9, 5, 9, 0, 0, 0, time.UTC)}, nil
	}

	calendar, err := service.Calendar(context.Background(), 2026, time.August)
	assert.NoError(t, err)

	last := calendar.Weeks[len(calendar.Weeks)-1][6]
	assert.Equal(t, day(2026, 9, 5), last.Date)
	assert.Equal(t, 1, last.TodosCompleted)
}
