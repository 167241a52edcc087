package models

import (
	"time"
)

// TimeEntry is one logged work/study session. Effort points are derived at
// creation time and stored alongside the raw hours.
type TimeEntry struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Date         time.Time `gorm:"type:date;not null;index" json:"date"`
	Category     string    `gorm:"not null;index" json:"category"`
	Hours        float64   `gorm:"type:decimal(5,2);not null" json:"hours"`
	EffortPoints float64   `gorm:"type:decimal(5,2);not null" json:"effort_points"`
	Description  *string   `json:"description,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName specifies the table name for TimeEntry
func (TimeEntry) TableName() string {
	return "time_entries"
}

// Time entry categories (fixed set)
const (
	TimeCategoryApplyJobs    = "Apply Jobs"
	TimeCategoryThesisWork   = "Thesis Work"
	TimeCategoryUniStudy     = "Uni Study"
	TimeCategoryGym          = "Gym"
	TimeCategoryPersonalWork = "Personal work"
	TimeCategoryCEOWork      = "CEO work"
)

// TimeCategories lists every valid category in display order
var TimeCategories = []string{
	TimeCategoryApplyJobs,
	TimeCategoryThesisWork,
	TimeCategoryUniStudy,
	TimeCategoryGym,
	TimeCategoryPersonalWork,
	TimeCategoryCEOWork,
}

// IsValidTimeCategory reports whether category is one of the fixed set
func IsValidTimeCategory(category string) bool {
	for _, c := range TimeCategories {
		if c == category {
			return true
		}
	}
	return false
}
