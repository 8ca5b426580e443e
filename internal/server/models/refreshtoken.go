package models

import "time"

// RefreshToken is a server-stored credential that lets a client obtain a new
// token pair without re-entering the password. Tokens are single use: the
// refresh flow deletes the presented token and issues a replacement in the
// same transaction.
type RefreshToken struct {
	ID        string
	UserID    string
	Token     string
	Expires   time.Time
	CreatedAt time.Time
}

// Expired reports whether the token lifetime has passed at the given time.
func (t *RefreshToken) Expired(now time.Time) bool {
	return t.Expires.Before(now)
}
