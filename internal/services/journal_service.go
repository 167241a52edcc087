package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vaibhav/lifehub-api/internal/models"
	"github.com/vaibhav/lifehub-api/internal/repository"
	"gorm.io/gorm"
)

// streakLookbackDays bounds how far back the streak walk queries. A streak
// longer than a year is counted up to this window.
const streakLookbackDays = 366

// JournalService manages the one-entry-per-day journal and its streak.
type JournalService struct {
	journalRepo repository.JournalRepository
}

// NewJournalService creates a new journal service
func NewJournalService(journalRepo repository.JournalRepository) *JournalService {
	return &JournalService{journalRepo: journalRepo}
}

// SaveEntryInput carries the fields for writing a day's entry
type SaveEntryInput struct {
	EntryDate time.Time `json:"entry_date" binding:"required"`
	Content   string    `json:"content" binding:"required"`
	Mood      int       `json:"mood" binding:"required"`
	Energy    int       `json:"energy" binding:"required"`
}

// SaveEntry upserts the journal entry for a calendar day. Writing the same
// date twice overwrites the earlier entry.
func (s *JournalService) SaveEntry(ctx context.Context, input SaveEntryInput) (*models.JournalEntry, error) {
	entry := &models.JournalEntry{
		EntryDate: dateOnly(input.EntryDate),
		Content:   input.Content,
		Mood:      input.Mood,
		Energy:    input.Energy,
	}
	if !entry.HasValidScores() {
		return nil, fmt.Errorf("%w: mood and energy must be between %d and %d",
			ErrValidation, models.ScoreMin, models.ScoreMax)
	}
	if err := s.journalRepo.Upsert(ctx, entry); err != nil {
		return nil, fmt.Errorf("saving journal entry: %w", err)
	}
	return entry, nil
}

// GetEntry returns the entry for a calendar day, or ErrNotFound
func (s *JournalService) GetEntry(ctx context.Context, date time.Time) (*models.JournalEntry, error) {
	entry, err := s.journalRepo.FindByDate(ctx, dateOnly(date))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return entry, nil
}

// ListEntries returns all journal entries, newest first
func (s *JournalService) ListEntries(ctx context.Context) ([]models.JournalEntry, error) {
	return s.journalRepo.FindAll(ctx)
}

// DeleteEntry removes the entry for a calendar day
func (s *JournalService) DeleteEntry(ctx context.Context, date time.Time) error {
	if _, err := s.GetEntry(ctx, date); err != nil {
		return err
	}
	return s.journalRepo.DeleteByDate(ctx, dateOnly(date))
}

// StreakInfo reports the current consecutive-day writing streak
type StreakInfo struct {
	Current      int  `json:"current"`
	WroteToday   bool `json:"wrote_today"`
	ActiveStreak bool `json:"active_streak"`
}

// Streak counts consecutive days with an entry, walking backward from today.
// Any missing day breaks the walk, so no entry today means a streak of zero;
// WroteToday lets callers distinguish "not yet today" from a longer gap.
func (s *JournalService) Streak(ctx context.Context, today time.Time) (*StreakInfo, error) {
	day := dateOnly(today)
	start := day.AddDate(0, 0, -streakLookbackDays)
	dates, err := s.journalRepo.FindDatesBetween(ctx, start, day)
	if err != nil {
		return nil, err
	}

	written := make(map[time.Time]bool, len(dates))
	for _, d := range dates {
		written[dateOnly(d)] = true
	}

	info := &StreakInfo{WroteToday: written[day]}
	for cursor := day; written[cursor]; cursor = cursor.AddDate(0, 0, -1) {
		info.Current++
	}
	info.ActiveStreak = info.Current > 0
	return info, nil
}

// dateOnly truncates a time to midnight UTC so map keys and unique-index
// comparisons line up regardless of the incoming zone.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
