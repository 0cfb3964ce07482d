package models

import "time"

// Session is the server-side authentication state created on successful
// login. The authoritative record lives in the session store; the client
// only ever holds a signed token referencing SessionID.
type Session struct {
	// SessionID is the unique identifier of the session (UUID).
	SessionID string `json:"session_id"`

	// UserID is the identifier of the authenticated user.
	UserID int64 `json:"user_id"`

	// Username is a cached copy of the principal's username, kept so
	// request handlers can log the actor without a user-store lookup.
	Username string `json:"username"`

	// CreatedAt is the instant the session was established.
	CreatedAt time.Time `json:"created_at"`

	// ExpiresAt is the absolute expiry of the session. The instant itself
	// is already invalid: a request arriving exactly at ExpiresAt is
	// treated as expired.
	ExpiresAt time.Time `json:"expires_at"`
}

// ExpiredAt reports whether the session is expired at the given instant.
// The expiry boundary is inclusive: now == ExpiresAt counts as expired.
func (s Session) ExpiredAt(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
