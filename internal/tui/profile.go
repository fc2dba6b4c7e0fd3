package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-xref/internal/service"
	"github.com/MKhiriev/go-xref/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ProfileModel shows the signed-in user's profile. It refreshes the profile
// every time it is entered.
type ProfileModel struct {
	ctx     context.Context
	session service.SessionManager

	snapshot models.Session
	notice   string
}

func NewProfileModel(ctx context.Context, session service.SessionManager) *ProfileModel {
	return &ProfileModel{ctx: ctx, session: session}
}

func (m *ProfileModel) Init() tea.Cmd {
	m.snapshot = m.session.Snapshot()
	m.notice = ""
	return m.cmdReload()
}

func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionMsg:
		m.snapshot = msg.session
		return m, nil
	case noticeMsg:
		m.notice = msg.text
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.notice = ""
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageHome} }
		case key.Matches(msg, keys.reload), key.Matches(msg, keys.retry):
			return m, m.cmdReload()
		case key.Matches(msg, keys.logout):
			ctx, session := m.ctx, m.session
			return m, func() tea.Msg {
				if err := session.Logout(ctx); err != nil {
					return noticeMsg{text: humanizeError(err)}
				}
				return NavigateTo{Page: pageHome, Payload: noticeMsg{text: "Logged out."}}
			}
		case key.Matches(msg, keys.delete):
			return m, func() tea.Msg { return NavigateTo{Page: pageDeleteAccount} }
		}
	}
	return m, nil
}

func (m *ProfileModel) View() string {
	var b strings.Builder

	s := m.snapshot
	switch {
	case s.Status == models.SessionLoading:
		b.WriteString("Loading profile...\n")
	case s.Profile == nil:
		b.WriteString("Profile unavailable.\n")
	default:
		p := s.Profile
		verified := "no"
		if p.IsVerified {
			verified = "yes"
		}
		rows := [][2]string{
			{"Name", valueOrDash(p.FullName)},
			{"Email", valueOrDash(p.Email)},
			{"Verified", verified},
			{"Plan", valueOrDash(p.PlanName)},
			{"Searches left", intOrDash(p.SearchesRemaining)},
			{"Joined", valueOrDash(p.DateJoined)},
			{"Last login", valueOrDash(p.LastLogin)},
			{"Token expires", timeOrDash(s.TokenExpiresAt)},
		}
		for _, r := range rows {
			b.WriteString(fmt.Sprintf("%-13s │ %s\n", r[0], r[1]))
		}
	}
	renderStatus(&b, m.notice, humanizeError(s.Err))

	return renderPage("MY PROFILE", strings.TrimRight(b.String(), "\n"), "r: reload │ l: log out │ d: delete account │ esc: back")
}

func (m *ProfileModel) cmdReload() tea.Cmd {
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		return sessionMsg{session: session.Reload(ctx)}
	}
}
