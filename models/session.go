package models

import "time"

// Session represents an authenticated session identified by an opaque token
type Session struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Token     string    `gorm:"size:64;uniqueIndex;not null" json:"-"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// IsExpired reports whether the session is past its expiry
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// TableName specifies the table name
func (Session) TableName() string {
	return "sessions"
}
