package models

import (
	"time"
)

// JournalEntry is the daily journal record. entry_date carries a unique
// constraint: at most one entry per calendar day, written with upsert
// semantics.
type JournalEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	EntryDate time.Time `gorm:"type:date;not null;uniqueIndex" json:"entry_date"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Mood      int       `gorm:"not null" json:"mood"`
	Energy    int       `gorm:"not null" json:"energy"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for JournalEntry
func (JournalEntry) TableName() string {
	return "journal_entries"
}

// Mood/energy scores run 1 (lowest) through 5 (highest)
const (
	ScoreMin = 1
	ScoreMax = 5
)

// HasValidScores reports whether mood and energy are within the 1-5 scale
func (j *JournalEntry) HasValidScores() bool {
	return j.Mood >= ScoreMin && j.Mood <= ScoreMax &&
		j.Energy >= ScoreMin && j.Energy <= ScoreMax
}
