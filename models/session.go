package models

import "time"

// Role identifies which identity a session or persisted token belongs to.
// User and admin sessions are fully independent.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// TokenKey returns the well-known key the role's bearer token is stored under.
func (r Role) TokenKey() string {
	switch r {
	case RoleAdmin:
		return "AdminToken"
	default:
		return "Access-Token"
	}
}

// LoginPage returns the screen a guard for this role redirects to.
func (r Role) LoginPage() string {
	switch r {
	case RoleAdmin:
		return "admin_login"
	default:
		return "login"
	}
}

// SessionStatus is the lifecycle state of a session manager.
type SessionStatus int

const (
	SessionUninitialized SessionStatus = iota
	SessionLoading
	SessionReady
	// SessionErrored is reserved. Failed profile fetches end in SessionReady with Err set.
	SessionErrored
)

func (s SessionStatus) String() string {
	switch s {
	case SessionLoading:
		return "loading"
	case SessionReady:
		return "ready"
	case SessionErrored:
		return "errored"
	default:
		return "uninitialized"
	}
}

// Session is a point-in-time snapshot of a session manager's state.
type Session struct {
	Role  Role
	Token string
	// TokenExpiresAt is the exp claim of Token when it carried one. Display only.
	TokenExpiresAt *time.Time
	Profile        *UserProfile
	Status         SessionStatus
	Err            error
}

// Authenticated reports whether a profile was fetched with the current token.
func (s Session) Authenticated() bool {
	return s.Token != "" && s.Profile != nil
}

// GuardDecision is the outcome of a route guard check. When Allowed is false
// the caller should offer navigation to LoginPage.
type GuardDecision struct {
	Allowed   bool
	Role      Role
	LoginPage string
}
