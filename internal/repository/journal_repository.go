package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/vaibhav/lifehub-api/internal/models"

	"gorm.io/gorm"
)

// JournalRepository defines the interface for journal entry data access.
// entry_date is unique: writes go through Upsert.
type JournalRepository interface {
	FindByDate(ctx context.Context, date time.Time) (*models.JournalEntry, error)
	FindAll(ctx context.Context) ([]models.JournalEntry, error)
	FindDatesBetween(ctx context.Context, start, end time.Time) ([]time.Time, error)
	Upsert(ctx context.Context, entry *models.JournalEntry) error
	DeleteByDate(ctx context.Context, date time.Time) error
}

type journalRepository struct {
	db *gorm.DB
}

// NewJournalRepository creates a new journal repository
func NewJournalRepository(db *gorm.DB) JournalRepository {
	return &journalRepository{db: db}
}

func (r *journalRepository) FindByDate(ctx context.Context, date time.Time) (*models.JournalEntry, error) {
	var entry models.JournalEntry
	err := r.db.WithContext(ctx).
		Where("entry_date = ?", date.Format("2006-01-02")).
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *journalRepository) FindAll(ctx context.Context) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry
	err := r.db.WithContext(ctx).
		Order("entry_date DESC").
		Find(&entries).Error
	return entries, err
}

// FindDatesBetween returns just the entry dates in [start, end], ascending.
// Streak counting and the activity calendar only need the dates.
func (r *journalRepository) FindDatesBetween(ctx context.Context, start, end time.Time) ([]time.Time, error) {
	var dates []time.Time
	err := r.db.WithContext(ctx).
		Model(&models.JournalEntry{}).
		Where("entry_date BETWEEN ? AND ?", start.Format("2006-01-02"), end.Format("2006-01-02")).
		Order("entry_date ASC").
		Pluck("entry_date", &dates).Error
	return dates, err
}

// Upsert writes the entry for its date, updating in place when one already
// exists. A unique-violation race falls back to the in-place update.
func (r *journalRepository) Upsert(ctx context.Context, entry *models.JournalEntry) error {
	var existing models.JournalEntry
	err := r.db.WithContext(ctx).
		Where("entry_date = ?", entry.EntryDate.Format("2006-01-02")).
		First(&existing).Error

	if err == nil {
		existing.Content = entry.Content
		existing.Mood = entry.Mood
		existing.Energy = entry.Energy
		if saveErr := r.db.WithContext(ctx).Save(&existing).Error; saveErr != nil {
			return saveErr
		}
		*entry = existing
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if createErr := r.db.WithContext(ctx).Create(entry).Error; createErr != nil {
		if isUniqueViolation(createErr) {
			return r.Upsert(ctx, entry)
		}
		return createErr
	}
	return nil
}

func (r *journalRepository) DeleteByDate(ctx context.Context, date time.Time) error {
	return r.db.WithContext(ctx).
		Where("entry_date = ?", date.Format("2006-01-02")).
		Delete(&models.JournalEntry{}).Error
}

// isUniqueViolation reports whether err is a Postgres 23505
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
