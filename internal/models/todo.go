package models

import (
	"time"
)

// Todo is a task item. Status is the canonical tri-state lifecycle field;
// the boolean "completed" shape of older clients is derived from it.
type Todo struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Description *string    `gorm:"type:text" json:"description,omitempty"`
	Status      string     `gorm:"default:pending;not null;index" json:"status"`
	Priority    string     `gorm:"default:medium;not null" json:"priority"`
	DueDate     *time.Time `gorm:"type:date;index" json:"due_date,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TableName specifies the table name for Todo
func (Todo) TableName() string {
	return "todos"
}

// Todo status constants
const (
	TodoStatusPending    = "pending"
	TodoStatusInProgress = "in_progress"
	TodoStatusCompleted  = "completed"
)

// Todo priority constants
const (
	TodoPriorityLow    = "low"
	TodoPriorityMedium = "medium"
	TodoPriorityHigh   = "high"
)

// IsCompleted returns true if the todo has been completed
func (t *Todo) IsCompleted() bool {
	return t.Status == TodoStatusCompleted
}

// MayStart returns true if the todo can transition to in_progress
func (t *Todo) MayStart() bool {
	return t.Status == TodoStatusPending
}

// MayComplete returns true if the todo can be completed
func (t *Todo) MayComplete() bool {
	return t.Status == TodoStatusPending || t.Status == TodoStatusInProgress
}

// MayReopen returns true if a completed todo can go back to pending
func (t *Todo) MayReopen() bool {
	return t.Status == TodoStatusCompleted
}

// IsOverdue reports whether the todo's due date is strictly before today,
// comparing calendar days, not instants. Completed todos are never overdue.
func (t *Todo) IsOverdue(today time.Time) bool {
	if t.DueDate == nil || t.IsCompleted() {
		return false
	}
	due := toDateOnly(*t.DueDate)
	return due.Before(toDateOnly(today))
}

// IsDueToday reports whether the due date falls on today's calendar day
func (t *Todo) IsDueToday(today time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	return toDateOnly(*t.DueDate).Equal(toDateOnly(today))
}

func toDateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// TodoResponse is the JSON response format for todos. It carries both the
// tri-state status and the derived boolean for older clients.
type TodoResponse struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Status      string     `json:"status"`
	Completed   bool       `json:"completed"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Overdue     bool       `json:"overdue"`
	DueToday    bool       `json:"due_today"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ToResponse converts Todo to TodoResponse, classifying against today
func (t *Todo) ToResponse(today time.Time) TodoResponse {
	return TodoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Completed:   t.IsCompleted(),
		Priority:    t.Priority,
		DueDate:     t.DueDate,
		Overdue:     t.IsOverdue(today),
		DueToday:    t.IsDueToday(today),
		CompletedAt: t.CompletedAt,
		CreatedAt:   t.CreatedAt,
	}
}
