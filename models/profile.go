package models

// UserProfile is the server-owned view of the signed-in account.
// It is always replaced wholesale, never merged.
type UserProfile struct {
	FullName          string `json:"full_name"`
	Email             string `json:"email"`
	IsVerified        bool   `json:"is_verified"`
	PlanID            *int64 `json:"plan_id"`
	PlanName          string `json:"plan_name"`
	SearchesRemaining *int   `json:"searches_limit"`
	DateJoined        string `json:"date_joined"`
	LastLogin         string `json:"last_login"`
}

// ProfileResponse is the envelope returned by POST /auth/profile/.
type ProfileResponse struct {
	User *UserProfile `json:"user"`
}

// Plan is a purchasable subscription plan.
type Plan struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	SearchesLimit *int    `json:"searches_limit"`
	Description   string  `json:"description"`
	Current       bool    `json:"-"`
}

// PlansResponse is the envelope returned by POST /auth/plan/.
type PlansResponse struct {
	Data []Plan `json:"data"`
}
