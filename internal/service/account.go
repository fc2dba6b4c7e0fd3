package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-xref/internal/adapter"
	"github.com/MKhiriev/go-xref/internal/app"
	"github.com/MKhiriev/go-xref/internal/logger"
	"github.com/MKhiriev/go-xref/models"
)

type accountService struct {
	adapter adapter.ServerAdapter
	session SessionManager
	logger  *logger.Logger
}

// NewAccountService returns the account operations of the end-user identity.
// session must be the user-role manager.
func NewAccountService(serverAdapter adapter.ServerAdapter, session SessionManager, logger *logger.Logger) AccountService {
	return &accountService{adapter: serverAdapter, session: session, logger: logger}
}

func (a *accountService) Signup(ctx context.Context, req models.SignupRequest) error {
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.TrimSpace(req.Email)

	if err := validateStruct(req); err != nil {
		return err
	}

	if err := a.adapter.Signup(ctx, req); err != nil {
		return fmt.Errorf("signup: %w", err)
	}
	return nil
}

func (a *accountService) ForgotPassword(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return newValidationError("Email", app.MsgEmailRequired, nil)
	}
	if err := validate.Var(email, "email"); err != nil {
		return newValidationError("Email", app.MsgInvalidEmail, nil)
	}

	if err := a.adapter.ForgotPassword(ctx, email); err != nil {
		return fmt.Errorf("forgot password: %w", err)
	}
	return nil
}

func (a *accountService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	if req.NewPassword == "" || req.ConfirmPassword == "" {
		return newValidationError("NewPassword", app.MsgPasswordsRequired, nil)
	}
	if err := validateStruct(req); err != nil {
		return err
	}

	if err := a.adapter.ResetPassword(ctx, req); err != nil {
		return fmt.Errorf("reset password: %w", err)
	}
	return nil
}

func (a *accountService) VerifyEmail(ctx context.Context, uid, token string) error {
	uid, token = strings.TrimSpace(uid), strings.TrimSpace(token)
	if uid == "" || token == "" {
		return newValidationError("Token", app.MsgIncompleteLink, nil)
	}

	if err := a.adapter.VerifyEmail(ctx, uid, token); err != nil {
		return fmt.Errorf("verify email: %w", err)
	}
	return nil
}

func (a *accountService) ContactUs(ctx context.Context, req models.ContactRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.PartNumber = strings.TrimSpace(req.PartNumber)
	req.Message = strings.TrimSpace(req.Message)

	if req.Name == "" || req.Email == "" || req.Message == "" {
		return newValidationError("Name", app.MsgAllFieldsRequired, nil)
	}
	if err := validateStruct(req); err != nil {
		return err
	}

	if err := a.adapter.ContactUs(ctx, req); err != nil {
		return fmt.Errorf("contact us: %w", err)
	}
	return nil
}

func (a *accountService) DeleteAccount(ctx context.Context, password string) error {
	if !IsStrongPassword(password) {
		return newValidationError("Password", app.MsgInvalidPassword, nil)
	}

	token := a.session.Snapshot().Token
	if token == "" {
		return ErrNoToken
	}

	if err := a.adapter.DeleteAccount(ctx, token, password); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}

	if err := a.session.Logout(ctx); err != nil {
		a.logger.Err(err).Msg("account deleted but local token was not cleared")
		return err
	}
	return nil
}

func (a *accountService) Plans(ctx context.Context) ([]models.Plan, error) {
	plans, err := a.adapter.Plans(ctx)
	if err != nil {
		return nil, fmt.Errorf("plans: %w", err)
	}

	var current *int64
	if profile := a.session.Snapshot().Profile; profile != nil {
		current = profile.PlanID
	}

	out := make([]models.Plan, len(plans))
	for i, p := range plans {
		p.Current = current != nil && p.ID == *current
		out[i] = p
	}
	return out, nil
}
