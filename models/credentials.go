package models

// Credentials are submitted to the login endpoints.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role,omitempty"`
}

// SignupRequest creates a new user account.
type SignupRequest struct {
	FullName        string `json:"full_name" validate:"required,personname"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,strongpassword"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// ResetPasswordRequest completes a password reset started by an emailed link.
type ResetPasswordRequest struct {
	UID             string `json:"-" validate:"required"`
	Token           string `json:"-" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,strongpassword"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=NewPassword"`
}

// ContactRequest is a message sent through the contact form.
type ContactRequest struct {
	Name       string `json:"name" validate:"required,personname"`
	Email      string `json:"email" validate:"required,email"`
	PartNumber string `json:"part_number"`
	Message    string `json:"message" validate:"required"`
}

// LoginResponse is returned by both login endpoints.
type LoginResponse struct {
	Tokens struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	} `json:"tokens"`
}
