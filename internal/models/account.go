package models

import "time"

// Account is one local user record. The current StateRecord is mirrored into
// the signed-in account on every mutation so switching accounts keeps each
// user's history intact.
type Account struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Identifier     string        `json:"identifier"` // email or chosen handle
	State          StateRecord   `json:"state"`
	CreatedAt      time.Time     `json:"created_at"`
	LastLogin      time.Time     `json:"last_login"`
	TotalTimeSpent time.Duration `json:"total_time_spent"`
}

// Session tracks who is signed in for the current store. A zero AccountID
// means nobody is signed in (guest usage).
type Session struct {
	AccountID string     `json:"account_id,omitempty"`
	Guest     bool       `json:"guest,omitempty"`
	StartedAt *time.Time `json:"started_at,omitempty"`
}

// SignedIn reports whether a non-guest account is active.
func (s Session) SignedIn() bool {
	return s.AccountID != "" && !s.Guest
}
