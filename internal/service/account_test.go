package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-xref/internal/adapter"
	"github.com/MKhiriev/go-xref/internal/logger"
	"github.com/MKhiriev/go-xref/internal/mock"
	"github.com/MKhiriev/go-xref/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAccountSvc(t *testing.T, ctrl *gomock.Controller) (AccountService, *mock.MockServerAdapter, *mock.MockSessionManager) {
	t.Helper()
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	session := mock.NewMockSessionManager(ctrl)
	return NewAccountService(serverAdapter, session, logger.Nop()), serverAdapter, session
}

// ── Signup ───────────────────────────────────────────────────────────────────

func TestAccountService_Signup_Validation(t *testing.T) {
	valid := models.SignupRequest{
		FullName:        "Ada Lovelace",
		Email:           "ada@example.com",
		Password:        "Secret#123",
		ConfirmPassword: "Secret#123",
	}

	tests := []struct {
		name   string
		mutate func(r *models.SignupRequest)
		want   string
	}{
		{name: "weak password", mutate: func(r *models.SignupRequest) { r.Password, r.ConfirmPassword = "abc12345", "abc12345" },
			want: "Password must be at least 8 characters with 1 uppercase letter and 1 special character."},
		{name: "short password", mutate: func(r *models.SignupRequest) { r.Password, r.ConfirmPassword = "Ab#1", "Ab#1" },
			want: "Password must be at least 8 characters with 1 uppercase letter and 1 special character."},
		{name: "mismatch", mutate: func(r *models.SignupRequest) { r.ConfirmPassword = "Secret#124" },
			want: "Passwords do not match."},
		{name: "digits in name", mutate: func(r *models.SignupRequest) { r.FullName = "R2D2" },
			want: "Name should only contain letters and spaces."},
		{name: "blank name", mutate: func(r *models.SignupRequest) { r.FullName = "   " },
			want: "Full name is required."},
		{name: "bad email", mutate: func(r *models.SignupRequest) { r.Email = "ada@" },
			want: "Enter a valid email address."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, _ := newTestAccountSvc(t, ctrl)

			req := valid
			tt.mutate(&req)
			err := svc.Signup(context.Background(), req)
			require.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, tt.want, UserMessage(err))
		})
	}
}

func TestAccountService_Signup_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, serverAdapter, _ := newTestAccountSvc(t, ctrl)

	serverAdapter.EXPECT().Signup(gomock.Any(), models.SignupRequest{
		FullName: "Ada Lovelace", Email: "ada@example.com", Password: "Secret#123", ConfirmPassword: "Secret#123",
	}).Return(nil)

	err := svc.Signup(context.Background(), models.SignupRequest{
		FullName: " Ada Lovelace ", Email: " ada@example.com", Password: "Secret#123", ConfirmPassword: "Secret#123",
	})
	require.NoError(t, err)
}

func TestAccountService_Signup_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, serverAdapter, _ := newTestAccountSvc(t, ctrl)

	serverAdapter.EXPECT().Signup(gomock.Any(), gomock.Any()).
		Return(&adapter.APIError{Status: 409, Message: "user with this email already exists."})

	err := svc.Signup(context.Background(), models.SignupRequest{
		FullName: "Ada", Email: "ada@example.com", Password: "Secret#123", ConfirmPassword: "Secret#123",
	})
	assert.Equal(t, "user with this email already exists.", UserMessage(err))
}

// ── Password reset / verification / contact ─────────────────────────────────

func TestAccountService_ForgotPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, serverAdapter, _ := newTestAccountSvc(t, ctrl)

	assert.Equal(t, "Please enter your email.", UserMessage(svc.ForgotPassword(context.Background(), " ")))
	assert.Equal(t, "Enter a valid email address.", UserMessage(svc.ForgotPassword(context.Background(), "nope")))

	serverAdapter.EXPECT().ForgotPassword(gomock.Any(), "ada@example.com").Return(nil)
	require.NoError(t, svc.ForgotPassword(context.Background(), " ada@example.com "))
}

func TestAccountService_ResetPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, serverAdapter, _ := newTestAccountSvc(t, ctrl)

	err := svc.ResetPassword(context.Background(), models.ResetPasswordRequest{UID: "u", Token: "t"})
	assert.Equal(t, "Please fill both password fields.", UserMessage(err))

	err = svc.ResetPassword(context.Background(), models.ResetPasswordRequest{
		UID: "u", Token: "t", NewPassword: "Secret#123", ConfirmPassword: "Secret#12",
	})
	assert.Equal(t, "Passwords do not match.", UserMessage(err))

	err = svc.ResetPassword(context.Background(), models.ResetPasswordRequest{
		NewPassword: "Secret#123", ConfirmPassword: "Secret#123",
	})
	assert.Equal(t, "Reset link is required.", UserMessage(err))

	req := models.ResetPasswordRequest{UID: "u", Token: "t", NewPassword: "Secret#123", ConfirmPassword: "Secret#123"}
	serverAdapter.EXPECT().ResetPassword(gomock.Any(), req).Return(nil)
	require.NoError(t, svc.ResetPassword(context.Background(), req))
}

func TestAccountService_VerifyEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, serverAdapter, _ := newTestAccountSvc(t, ctrl)

	assert.ErrorIs(t, svc.VerifyEmail(context.Background(), "", "t"), ErrValidation)

	serverAdapter.EXPECT().VerifyEmail(gomock.Any(), "u", "t").Return(&adapter.APIError{Status: 400, Message: "Link expired"})
	err := svc.VerifyEmail(context.Background(), " u ", "t")
	assert.Equal(t, "Link expired", UserMessage(err))
}

func TestAccountService_ContactUs(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, serverAdapter, _ := newTestAccountSvc(t, ctrl)

	err := svc.ContactUs(context.Background(), models.ContactRequest{Name: "Ada"})
	assert.Equal(t, "All fields are required.", UserMessage(err))

	err = svc.ContactUs(context.Background(), models.ContactRequest{Name: "Ada 2", Email: "a@b.co", Message: "hi"})
	assert.Equal(t, "Name should only contain letters and spaces.", UserMessage(err))

	serverAdapter.EXPECT().ContactUs(gomock.Any(), models.ContactRequest{
		Name: "Ada", Email: "a@b.co", PartNumber: "J72", Message: "need a crossover",
	}).Return(nil)
	err = svc.ContactUs(context.Background(), models.ContactRequest{
		Name: "Ada ", Email: "a@b.co", PartNumber: " J72", Message: "need a crossover ",
	})
	require.NoError(t, err)
}

// ── DeleteAccount ────────────────────────────────────────────────────────────

func TestAccountService_DeleteAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, serverAdapter, session := newTestAccountSvc(t, ctrl)

	gomock.InOrder(
		session.EXPECT().Snapshot().Return(models.Session{Token: "tok"}),
		serverAdapter.EXPECT().DeleteAccount(gomock.Any(), "tok", "Secret#123").Return(nil),
		session.EXPECT().Logout(gomock.Any()).Return(nil),
	)

	require.NoError(t, svc.DeleteAccount(context.Background(), "Secret#123"))
}

func TestAccountService_DeleteAccount_Rejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, serverAdapter, session := newTestAccountSvc(t, ctrl)

	assert.ErrorIs(t, svc.DeleteAccount(context.Background(), "weak"), ErrValidation)

	session.EXPECT().Snapshot().Return(models.Session{})
	assert.ErrorIs(t, svc.DeleteAccount(context.Background(), "Secret#123"), ErrNoToken)

	// Logout must not run when the server refuses.
	session.EXPECT().Snapshot().Return(models.Session{Token: "tok"})
	serverAdapter.EXPECT().DeleteAccount(gomock.Any(), "tok", "Secret#123").
		Return(&adapter.APIError{Status: 400, Message: "Incorrect password"})
	err := svc.DeleteAccount(context.Background(), "Secret#123")
	assert.Equal(t, "Incorrect password", UserMessage(err))
}

// ── Plans ────────────────────────────────────────────────────────────────────

func TestAccountService_Plans_MarksCurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, serverAdapter, session := newTestAccountSvc(t, ctrl)

	profile := testProfile()
	serverAdapter.EXPECT().Plans(gomock.Any()).Return([]models.Plan{{ID: 1, Name: "Free"}, {ID: 2, Name: "Pro"}}, nil)
	session.EXPECT().Snapshot().Return(models.Session{Token: "tok", Profile: &profile})

	plans, err := svc.Plans(context.Background())
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.False(t, plans[0].Current)
	assert.True(t, plans[1].Current)
}

func TestAccountService_Plans_Guest(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, serverAdapter, session := newTestAccountSvc(t, ctrl)

	serverAdapter.EXPECT().Plans(gomock.Any()).Return([]models.Plan{{ID: 1}}, nil)
	session.EXPECT().Snapshot().Return(models.Session{})

	plans, err := svc.Plans(context.Background())
	require.NoError(t, err)
	assert.False(t, plans[0].Current)
}
