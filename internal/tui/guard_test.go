package tui

import (
	"testing"

	"github.com/MKhiriev/go-xref/internal/mock"
	"github.com/MKhiriev/go-xref/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGuardedModel_Denied(t *testing.T) {
	ctrl := gomock.NewController(t)
	guard := mock.NewMockRouteGuard(ctrl)
	guard.EXPECT().Check(gomock.Any()).
		Return(models.GuardDecision{Allowed: false, Role: models.RoleUser, LoginPage: pageLogin}).
		Times(1)

	inner := &fakePage{view: "profile"}
	g := newGuardedModel(t.Context(), guard, inner)

	cmd := g.Init()
	require.NotNil(t, cmd)
	assert.Contains(t, g.View(), "CHECKING ACCESS")

	_, _ = g.Update(keyRunes("x"))
	assert.Empty(t, inner.msgs, "keys are swallowed until the check completes")

	_, _ = g.Update(cmd())
	assert.Contains(t, g.View(), "LOGIN REQUIRED")
	assert.Zero(t, inner.inits)

	_, cmd = g.Update(keyOf(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageLogin}, cmd())
	assert.Empty(t, inner.msgs)
}

func TestGuardedModel_Allowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	guard := mock.NewMockRouteGuard(ctrl)
	guard.EXPECT().Check(gomock.Any()).
		Return(models.GuardDecision{Allowed: true, Role: models.RoleAdmin, LoginPage: pageAdminLogin}).
		Times(1)

	inner := &fakePage{view: "dashboard"}
	g := newGuardedModel(t.Context(), guard, inner)

	_, _ = g.Update(g.Init()())
	assert.Equal(t, 1, inner.inits)
	assert.Equal(t, "dashboard", g.View())

	_, _ = g.Update(keyRunes("3"))
	require.Len(t, inner.msgs, 1)
}

func TestGuardedModel_AdminPrompt(t *testing.T) {
	ctrl := gomock.NewController(t)
	guard := mock.NewMockRouteGuard(ctrl)
	guard.EXPECT().Check(gomock.Any()).
		Return(models.GuardDecision{Role: models.RoleAdmin, LoginPage: pageAdminLogin})

	g := newGuardedModel(t.Context(), guard, &fakePage{})
	_, _ = g.Update(g.Init()())

	assert.Contains(t, g.View(), "administrator")

	_, cmd := g.Update(keyOf(tea.KeyEsc))
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageHome}, cmd())
}
