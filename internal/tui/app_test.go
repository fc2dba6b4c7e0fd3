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

func TestRootModel_NavigateToInitsPage(t *testing.T) {
	home, search := &fakePage{view: "home"}, &fakePage{view: "search"}
	root := NewRootModel(map[string]tea.Model{pageHome: home, pageSearch: search}, pageHome, models.RoleUser, nil, models.AppBuildInfo{})

	updated, cmd := root.Update(NavigateTo{Page: pageSearch})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, search.inits)
	assert.Equal(t, "search", updated.View())

	updated, _ = updated.Update(NavigateTo{Page: pageHome})
	updated, _ = updated.Update(NavigateTo{Page: pageSearch})
	assert.Equal(t, 2, search.inits, "every visit re-initialises the page")
	assert.Equal(t, "search", updated.View())
}

func TestRootModel_NavigateToWithPayload(t *testing.T) {
	home := &fakePage{view: "home"}
	root := NewRootModel(map[string]tea.Model{pageHome: home}, pageHome, models.RoleUser, nil, models.AppBuildInfo{})

	_, cmd := root.Update(NavigateTo{Page: pageHome, Payload: noticeMsg{text: "Logged out."}})
	require.NotNil(t, cmd)
	assert.Equal(t, 1, home.inits)
}

func TestRootModel_UnknownPageIgnored(t *testing.T) {
	home := &fakePage{view: "home"}
	root := NewRootModel(map[string]tea.Model{pageHome: home}, pageHome, models.RoleUser, nil, models.AppBuildInfo{})

	updated, cmd := root.Update(NavigateTo{Page: "nowhere"})
	assert.Nil(t, cmd)
	assert.Equal(t, "home", updated.View())
	assert.Zero(t, home.inits)
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	root := NewRootModel(map[string]tea.Model{pageHome: &fakePage{}}, pageHome, models.RoleUser, nil, models.AppBuildInfo{})

	_, cmd := root.Update(keyOf(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestRootModel_DelegatesToCurrentPage(t *testing.T) {
	home := &fakePage{}
	root := NewRootModel(map[string]tea.Model{pageHome: home}, pageHome, models.RoleUser, nil, models.AppBuildInfo{})

	_, _ = root.Update(keyRunes("x"))
	require.Len(t, home.msgs, 1)
	assert.Equal(t, keyRunes("x"), home.msgs[0])
}

func TestRootModel_ForwardsSessionFeed(t *testing.T) {
	home := &fakePage{}
	ch := make(chan models.Session, 1)
	root := NewRootModel(map[string]tea.Model{pageHome: home}, pageHome, models.RoleUser, ch, models.AppBuildInfo{})

	snap := models.Session{Role: models.RoleUser, Token: "tok", Status: models.SessionReady}
	_, cmd := root.Update(sessionFeedMsg{session: snap})
	require.NotNil(t, cmd, "the subscription is re-armed")

	require.Len(t, home.msgs, 1)
	assert.Equal(t, sessionMsg{session: snap}, home.msgs[0])

	ch <- snap
	close(ch)
	assert.Equal(t, sessionFeedMsg{session: snap}, waitForSession(ch)())
	assert.Nil(t, waitForSession(ch)())
}

func TestRootModel_BuildInfoOnlyFromMenu(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockSessionManager(ctrl)
	session.EXPECT().Role().Return(models.RoleUser).AnyTimes()
	session.EXPECT().Snapshot().Return(models.Session{Role: models.RoleUser, Status: models.SessionReady}).AnyTimes()

	search := &fakePage{view: "search"}
	pages := map[string]tea.Model{pageHome: NewMenuModel(t.Context(), session), pageSearch: search}
	info := models.NewAppBuildInfo("v1.2.3", "2026-01-01", "abc123")
	root := NewRootModel(pages, pageHome, models.RoleUser, nil, info)

	updated, _ := root.Update(keyRunes("v"))
	assert.Contains(t, updated.View(), "v1.2.3")
	assert.Contains(t, updated.View(), "user")

	updated, _ = updated.Update(keyOf(tea.KeyEsc))
	assert.NotContains(t, updated.View(), "v1.2.3")

	updated, _ = updated.Update(NavigateTo{Page: pageSearch})
	updated, _ = updated.Update(keyRunes("v"))
	assert.Equal(t, "search", updated.View())
	assert.Len(t, search.msgs, 1, "v is an ordinary key outside the menu")
}
