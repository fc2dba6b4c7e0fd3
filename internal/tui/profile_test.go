package tui

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-xref/internal/adapter"
	"github.com/MKhiriev/go-xref/internal/mock"
	"github.com/MKhiriev/go-xref/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProfileModel_ReloadOnEnter(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockSessionManager(ctrl)

	left := 3
	planID := int64(2)
	ready := models.Session{
		Role:   models.RoleUser,
		Token:  "tok",
		Status: models.SessionReady,
		Profile: &models.UserProfile{
			FullName: "Ada Lovelace", Email: "ada@example.com", IsVerified: true,
			PlanID: &planID, PlanName: "Pro", SearchesRemaining: &left,
		},
	}
	session.EXPECT().Snapshot().Return(models.Session{Role: models.RoleUser, Token: "tok", Status: models.SessionLoading})
	session.EXPECT().Reload(gomock.Any()).Return(ready)

	m := NewProfileModel(t.Context(), session)
	cmd := m.Init()
	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Loading profile...")

	_, _ = m.Update(cmd())
	view := m.View()
	assert.Contains(t, view, "Ada Lovelace")
	assert.Contains(t, view, "Pro")
	assert.Contains(t, view, "Searches left │ 3")
	assert.Contains(t, view, "Token expires │ -")
}

func TestProfileModel_ShowsTokenExpiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockSessionManager(ctrl)
	m := NewProfileModel(t.Context(), session)

	exp := time.Date(2026, 11, 1, 12, 30, 0, 0, time.UTC)
	_, _ = m.Update(sessionMsg{session: models.Session{
		Token:          "tok",
		TokenExpiresAt: &exp,
		Status:         models.SessionReady,
		Profile:        &models.UserProfile{FullName: "Ada Lovelace"},
	}})

	assert.Contains(t, m.View(), "Token expires │ 2026-11-01 12:30 UTC")
}

func TestProfileModel_FetchErrorShown(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockSessionManager(ctrl)
	m := NewProfileModel(t.Context(), session)

	_, _ = m.Update(sessionMsg{session: models.Session{
		Token:  "tok",
		Status: models.SessionReady,
		Err:    &adapter.APIError{Status: 401, Message: "Token expired."},
	}})

	view := m.View()
	assert.Contains(t, view, "Profile unavailable.")
	assert.Contains(t, view, "Error: Token expired.")
}

func TestProfileModel_Keys(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockSessionManager(ctrl)
	m := NewProfileModel(t.Context(), session)

	session.EXPECT().Logout(gomock.Any()).Return(nil)
	_, cmd := m.Update(keyRunes("l"))
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageHome, Payload: noticeMsg{text: "Logged out."}}, cmd())

	_, cmd = m.Update(keyRunes("d"))
	assert.Equal(t, NavigateTo{Page: pageDeleteAccount}, cmd())

	session.EXPECT().Reload(gomock.Any()).Return(models.Session{})
	_, cmd = m.Update(keyRunes("r"))
	assert.Equal(t, sessionMsg{}, cmd())
}

func TestPlansModel(t *testing.T) {
	ctrl := gomock.NewController(t)
	account := mock.NewMockAccountService(ctrl)

	limit := 100
	gomock.InOrder(
		account.EXPECT().Plans(gomock.Any()).Return(nil, adapter.ErrNetwork),
		account.EXPECT().Plans(gomock.Any()).Return([]models.Plan{
			{ID: 1, Name: "Free", SearchesLimit: &limit},
			{ID: 2, Name: "Pro", Price: 19.5, Current: true},
		}, nil),
	)

	m := NewPlansModel(t.Context(), account)
	_, _ = m.Update(m.Init()())
	assert.Contains(t, m.View(), "Error: Network error. Please try again.")

	_, cmd := m.Update(keyRunes("r"))
	require.NotNil(t, cmd)
	_, _ = m.Update(cmd())

	view := m.View()
	assert.NotContains(t, view, "Network error")
	assert.Contains(t, view, "$19.50")
	assert.Contains(t, view, "current")
	assert.Contains(t, view, "100")
}
