// Package models defines server-side data models persisted in the database.
package models

import (
	"time"

	"timeboard/internal/common"
)

// Profile carries the display data for one account. It is created by the
// explicit profile-completion step after registration, and its role changes
// only through the allow-list-gated elevation operation.
type Profile struct {
	UserID      string
	DisplayName string
	Role        string
	CreatedAt   time.Time
}

// IsManager reports whether the profile may use manager-only operations.
// Authorization is a string comparison against the role column; exactly two
// variants exist.
func (p *Profile) IsManager() bool {
	return p.Role == common.RoleManager
}
