package entity

import "time"

// Session represents a logged-in browser session.
// The record lives in Redis; the browser only holds a signed token carrying
// the session ID.
type Session struct {
	ID        string     // Session identifier (UUID)
	UserID    uint       // Associated user ID
	UserName  string     // Display name, denormalized for page rendering
	CreatedAt time.Time  // Session creation time
	ExpiresAt time.Time  // Session expiration time
	RevokedAt *time.Time // Revocation time (nil if active)
}

// IsExpired returns true if the session has passed its expiration time.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// IsRevoked returns true if the session has been revoked.
func (s *Session) IsRevoked() bool {
	return s.RevokedAt != nil
}

// IsValid returns true if the session is neither expired nor revoked.
func (s *Session) IsValid() bool {
	return !s.IsExpired() && !s.IsRevoked()
}
