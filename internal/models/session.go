package models

import (
	"time"
)

// Session is a server-side login session created after PIN verification.
// Sessions expire and can be revoked; there is no indefinite client-trust
// flag anywhere.
type Session struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Token      string     `gorm:"not null;uniqueIndex" json:"token"`
	ExpiresAt  time.Time  `gorm:"not null;index" json:"expires_at"`
	LastSeenAt *time.Time `json:"last_seen_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// TableName specifies the table name for Session
func (Session) TableName() string {
	return "sessions"
}

// IsExpired returns true if the session has expired
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
