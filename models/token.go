package models

import "time"

// StoredToken is a bearer token persisted on the local machine.
// ExpiresAt is informational only: it is read from the token's claims
// without verification, shown on the profile screen and never used to deny
// access.
type StoredToken struct {
	Role      Role
	Value     string
	ExpiresAt *time.Time
	UpdatedAt time.Time
}

// TableName returns the name of the database table
// associated with the StoredToken model.
func (StoredToken) TableName() string {
	return "tokens"
}
