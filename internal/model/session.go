package model

import "time"

// Session is the explicit authentication context of one staff chat.
// Every call to the backend receives it instead of reading ambient state.
type Session struct {
	TelegramID int64     `json:"telegram_id"`
	Token      string    `json:"-"`
	StaffName  string    `json:"staff_name"`
	StaffEmail string    `json:"staff_email"`
	ExpiresAt  time.Time `json:"expires_at"`
	CreatedAt  time.Time `json:"created_at"`
}

// Expired reports whether the session must be torn down at the given moment
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
