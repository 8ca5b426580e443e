package models

import "time"

// User is one account row: credentials only. Display name and role live on
// the Profile created by the post-signup completion step.
type User struct {
	ID           string
	UserName     string
	PasswordHash []byte
	CreatedAt    time.Time
}
