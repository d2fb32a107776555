package entities

import "time"

// SessionTTL is the fixed lifetime of a login session.
const SessionTTL = 8 * time.Hour

// Session is the server-side proof of a login, keyed by an opaque token.
//
// Storage model (DynamoDB):
//   - PK: id (the token handed to the browser as the session_id cookie)
//
// Expired rows stay in the table; validity is decided on read. There is no
// sweep job.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
