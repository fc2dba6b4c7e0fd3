package tui

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-xref/internal/app"
	"github.com/MKhiriev/go-xref/internal/service"
	"github.com/MKhiriev/go-xref/models"
)

func newLoginForm(ctx context.Context, session service.SessionManager) *formModel {
	role := session.Role()
	title, next := "LOG IN", pageHome
	if role == models.RoleAdmin {
		title, next = "ADMIN LOG IN", pageDashboard
	}

	fields := []formField{
		{label: "Email", placeholder: "you@example.com"},
		{label: "Password", placeholder: "password", secret: true},
	}
	submit := func(ctx context.Context, v []string) (string, error) {
		snap, err := session.Login(ctx, models.Credentials{Email: v[0], Password: v[1]})
		if err != nil {
			return "", err
		}
		if snap.Profile != nil && snap.Profile.FullName != "" {
			return "Welcome, " + snap.Profile.FullName + ".", nil
		}
		return "Logged in.", nil
	}

	return newFormModel(ctx, role.LoginPage(), title, fields, submit).withNavigation(pageHome, next)
}

func newSignupForm(ctx context.Context, account service.AccountService) *formModel {
	fields := []formField{
		{label: "Full name", placeholder: "Ada Lovelace"},
		{label: "Email", placeholder: "you@example.com"},
		{label: "Password", placeholder: "min 8 chars, 1 uppercase, 1 special", secret: true},
		{label: "Confirm password", secret: true},
	}
	submit := func(ctx context.Context, v []string) (string, error) {
		err := account.Signup(ctx, models.SignupRequest{
			FullName: v[0], Email: v[1], Password: v[2], ConfirmPassword: v[3],
		})
		if err != nil {
			return "", err
		}
		return "Account created. Check your inbox to verify your email.", nil
	}

	return newFormModel(ctx, pageSignup, "SIGN UP", fields, submit).withNavigation(pageHome, pageLogin)
}

func newForgotPasswordForm(ctx context.Context, account service.AccountService) *formModel {
	fields := []formField{{label: "Email", placeholder: "you@example.com"}}
	submit := func(ctx context.Context, v []string) (string, error) {
		if err := account.ForgotPassword(ctx, v[0]); err != nil {
			return "", err
		}
		return "If the address is registered, a reset link is on its way.", nil
	}

	return newFormModel(ctx, pageForgot, "FORGOT PASSWORD", fields, submit)
}

func newResetPasswordForm(ctx context.Context, account service.AccountService) *formModel {
	fields := []formField{
		{label: "Link uid", placeholder: "from the reset email"},
		{label: "Link token", placeholder: "from the reset email"},
		{label: "New password", secret: true},
		{label: "Confirm password", secret: true},
	}
	submit := func(ctx context.Context, v []string) (string, error) {
		err := account.ResetPassword(ctx, models.ResetPasswordRequest{
			UID:             strings.TrimSpace(v[0]),
			Token:           strings.TrimSpace(v[1]),
			NewPassword:     v[2],
			ConfirmPassword: v[3],
		})
		if err != nil {
			return "", err
		}
		return "Password updated. You can log in now.", nil
	}

	return newFormModel(ctx, pageReset, "RESET PASSWORD", fields, submit).withNavigation(pageHome, pageLogin)
}

func newVerifyEmailForm(ctx context.Context, account service.AccountService) *formModel {
	fields := []formField{
		{label: "Link uid", placeholder: "from the verification email"},
		{label: "Link token", placeholder: "from the verification email"},
	}
	submit := func(ctx context.Context, v []string) (string, error) {
		if err := account.VerifyEmail(ctx, v[0], v[1]); err != nil {
			return "", err
		}
		return "Email verified. You can log in now.", nil
	}

	return newFormModel(ctx, pageVerify, "VERIFY EMAIL", fields, submit).withNavigation(pageHome, pageLogin)
}

func newContactForm(ctx context.Context, account service.AccountService) *formModel {
	fields := []formField{
		{label: "Name"},
		{label: "Email", placeholder: "you@example.com"},
		{label: "Part number", placeholder: "optional"},
		{label: "Message", limit: 2000},
	}
	submit := func(ctx context.Context, v []string) (string, error) {
		err := account.ContactUs(ctx, models.ContactRequest{
			Name: v[0], Email: v[1], PartNumber: v[2], Message: v[3],
		})
		if err != nil {
			return "", err
		}
		return "Thanks, we will get back to you shortly.", nil
	}

	return newFormModel(ctx, pageContact, "CONTACT US", fields, submit)
}

func newDeleteAccountForm(ctx context.Context, account service.AccountService) *formModel {
	fields := []formField{{label: "Password", placeholder: "confirm with your password", secret: true}}
	submit := func(ctx context.Context, v []string) (string, error) {
		if err := account.DeleteAccount(ctx, v[0]); err != nil {
			return "", err
		}
		return "Your account has been deleted.", nil
	}

	return newFormModel(ctx, pageDeleteAccount, "DELETE ACCOUNT", fields, submit).withNavigation(pageProfile, pageHome)
}

const uploadFormID = "upload_catalog"

func newUploadForm(ctx context.Context, admin service.AdminService) *formModel {
	fields := []formField{{label: "File", placeholder: "/path/to/catalog.csv", limit: 4096}}
	submit := func(ctx context.Context, v []string) (string, error) {
		path := strings.TrimSpace(v[0])
		if path == "" {
			return "", &service.ValidationError{Field: "File", Message: app.MsgNoFileSelected}
		}

		f, err := os.Open(path)
		if err != nil {
			return "", &service.ValidationError{Field: "File", Message: "Cannot open " + filepath.Base(path) + "."}
		}
		defer f.Close()

		return admin.UploadCatalog(ctx, filepath.Base(path), f)
	}

	m := newFormModel(ctx, uploadFormID, "UPLOAD CATALOG", fields, submit)
	m.back = ""
	return m
}

const editFormID = "edit_part"

func newEditPartForm(ctx context.Context, admin service.AdminService, part models.Part) *formModel {
	edit := models.EditFromPart(part)
	values := edit.Values()

	fields := make([]formField, len(models.PartEditColumns))
	for i, c := range models.PartEditColumns {
		fields[i] = formField{label: c.Column, value: values[c.Field], limit: 1000}
	}

	submit := func(ctx context.Context, v []string) (string, error) {
		var changed models.PartEdit
		changed.PartNumber, changed.Description, changed.Manufacturer = v[0], v[1], v[2]
		changed.Size, changed.Crossovers, changed.SchB, changed.DistributorInfo = v[3], v[4], v[5], v[6]

		if err := admin.EditPart(ctx, part, changed); err != nil {
			return "", err
		}
		return "Part updated.", nil
	}

	m := newFormModel(ctx, editFormID, "EDIT PART "+part.ID, fields, submit)
	m.back = ""
	return m
}
