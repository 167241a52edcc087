package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vaibhav/lifehub-api/internal/models"
	"github.com/vaibhav/lifehub-api/internal/repository"
)

type mockJournalRepo struct {
	repository.JournalRepository
	mockUpsert           func(ctx context.Context, entry *models.JournalEntry) error
	mockFindDatesBetween func(ctx context.Context, start, end time.Time) ([]time.Time, error)
}

func (m *mockJournalRepo) Upsert(ctx context.Context, entry *models.JournalEntry) error {
	return m.mockUpsert(ctx, entry)
}

func (m *mockJournalRepo) FindDatesBetween(ctx context.Context, start, end time.Time) ([]time.Time, error) {
	return m.mockFindDatesBetween(ctx, start, end)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestJournalService_SaveEntry_RejectsBadScores(t *testing.T) {
	service := NewJournalService(&mockJournalRepo{})

	_, err := service.SaveEntry(context.Background(), SaveEntryInput{
		EntryDate: day(2026, 8, 28),
		Content:   "a day",
		Mood:      6,
		Energy:    3,
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.SaveEntry(context.Background(), SaveEntryInput{
		EntryDate: day(2026, 8, 28),
		Content:   "a day",
		Mood:      3,
		Energy:    0,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestJournalService_SaveEntry_TruncatesToDate(t *testing.T) {
	repo := &mockJournalRepo{}
	service := NewJournalService(repo)

	var saved *models.JournalEntry
	repo.mockUpsert = func(ctx context.Context, entry *models.JournalEntry) error {
		saved = entry
		return nil
	}

	_, err := service.SaveEntry(context.Background(), SaveEntryInput{
		EntryDate: time.Date(2026, 8, 28, 17, 45, 3, 0, time.UTC),
		Content:   "evening write-up",
		Mood:      4,
		Energy:    3,
	})
	assert.NoError(t, err)
	assert.Equal(t, day(2026, 8, 28), saved.EntryDate)
}

func TestJournalService_Streak_CountsBackFromToday(t *testing.T) {
	repo := &mockJournalRepo{}
	service := NewJournalService(repo)
	today := day(2026, 8, 28)

	repo.mockFindDatesBetween = func(ctx context.Context, start, end time.Time) ([]time.Time, error) {
		return []time.Time{
			day(2026, 8, 28),
			day(2026, 8, 27),
			day(2026, 8, 26),
			// gap on the 25th
			day(2026, 8, 24),
		}, nil
	}

	streak, err := service.Streak(context.Background(), today)
	assert.NoError(t, err)
	assert.Equal(t, 3, streak.Current)
	assert.True(t, streak.WroteToday)
	assert.True(t, streak.ActiveStreak)
}

func TestJournalService_Streak_MissingTodayMeansZero(t *testing.T) {
	repo := &mockJournalRepo{}
	service := NewJournalService(repo)
	today := day(2026, 8, 28)

	repo.mockFindDatesBetween = func(ctx context.Context, start, end time.Time) ([]time.Time, error) {
		return []time.Time{
			day(2026, 8, 27),
			day(2026, 8, 26),
		}, nil
	}

	streak, err := service.Streak(context.Background(), today)
	assert.NoError(t, err)
	assert.Equal(t, 0, streak.Current)
	assert.False(t, streak.WroteToday)
	assert.False(t, streak.ActiveStreak)
}

func TestJournalService_Streak_NoEntries(t *testing.T) {
	repo := &mockJournalRepo{}
	service := NewJournalService(repo)

	repo.mockFindDatesBetween = func(ctx context.Context, start, end time.Time) ([]time.Time, error) {
		return nil, nil
	}

	streak, err := service.Streak(context.Background(), day(2026, 8, 28))
	assert.NoError(t, err)
	assert.Equal(t, 0, streak.Current)
	assert.False(t, streak.WroteToday)
}
