package service

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-xref/internal/app"
	"github.com/MKhiriev/go-xref/models"
	"github.com/go-playground/validator/v10"
)

const passwordSpecials = "!@#$%^&*()_-+=[]{};:'\",.<>/?\\|`~"

var (
	validate = newValidator()

	personNameRe = regexp.MustCompile(`^[A-Za-z\s]+$`)

	// Rejects quotes, statement separators, comment markers, SQL keywords as
	// whole words and "or x=x" style tautologies. UX only; the API sanitises.
	suspiciousQueryRe = regexp.MustCompile(
		"(?i)(['\"`;#]|--|/\\*|\\*/|\\b(select|insert|update|delete|drop|union|exec|alter|create|truncate)\\b|\\bor\\s+\\w+\\s*=\\s*\\w+)",
	)

	catalogExtensions = []string{".csv", ".xlsx", ".xls"}
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("strongpassword", func(fl validator.FieldLevel) bool {
		return IsStrongPassword(fl.Field().String())
	})
	_ = v.RegisterValidation("personname", func(fl validator.FieldLevel) bool {
		return personNameRe.MatchString(strings.TrimSpace(fl.Field().String()))
	})
	return v
}

// IsStrongPassword reports whether s has at least 8 characters, one
// uppercase ASCII letter and one special character.
func IsStrongPassword(s string) bool {
	if utf8.RuneCountInString(s) < 8 {
		return false
	}

	var upper, special bool
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			upper = true
		}
		if strings.ContainsRune(passwordSpecials, r) {
			special = true
		}
	}
	return upper && special
}

// validateStruct runs the struct tags of v and converts the first failure
// into a *ValidationError with a display-ready message.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	fe := fieldErrs[0]
	return newValidationError(fe.Field(), validationMessage(fe), nil)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fieldLabel(fe.Field()) + " is required."
	case "email":
		return app.MsgInvalidEmail
	case "strongpassword":
		return app.MsgWeakPassword
	case "personname":
		return app.MsgInvalidName
	case "eqfield":
		return app.MsgPasswordMismatch
	}
	return fieldLabel(fe.Field()) + " is invalid."
}

func fieldLabel(field string) string {
	switch field {
	case "FullName":
		return "Full name"
	case "ConfirmPassword":
		return "Password confirmation"
	case "NewPassword":
		return "New password"
	case "PartNumber":
		return "Part number"
	case "UID", "Token":
		return "Reset link"
	}
	return field
}

func validateCredentials(creds models.Credentials) error {
	if creds.Email == "" && creds.Password == "" {
		return newValidationError("Email", app.MsgCredentialsRequired, nil)
	}
	return validateStruct(creds)
}

// NormalizeQuery trims and validates q and clamps its paging. It never
// touches the network.
func NormalizeQuery(q models.SearchQuery) (models.SearchQuery, error) {
	q.Text = strings.TrimSpace(q.Text)
	q.Manufacturer = strings.TrimSpace(q.Manufacturer)

	if q.Text == "" {
		return q, newValidationError("Text", app.MsgEmptyQuery, ErrEmptyQuery)
	}
	if suspiciousQueryRe.MatchString(q.Text) {
		return q, newValidationError("Text", app.MsgSuspiciousQuery, ErrSuspiciousQuery)
	}

	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = models.DefaultSearchPageSize
	}
	if q.PageSize > models.MaxSearchPageSize {
		q.PageSize = models.MaxSearchPageSize
	}
	return q, nil
}

func validateCatalogFile(name string) error {
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range catalogExtensions {
		if ext == allowed {
			return nil
		}
	}
	return newValidationError("File", app.MsgUnsupportedFile, ErrUnsupportedFile)
}
