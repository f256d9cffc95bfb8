package model

import "time"

// Session is a bearer token issued to a signed-in player
type Session struct {
	Token     string
	PlayerID  PlayerID
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session is no longer usable at now
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
