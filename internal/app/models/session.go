package models

import "time"

type Session struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *Session) IsDoctor() bool {
	return s.Role == "doctor"
}

// CanAccess reports whether the session may read resources owned by userID.
func (s *Session) CanAccess(userID string) bool {
	return s.IsDoctor() || s.UserID == userID
}
