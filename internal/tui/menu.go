package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-xref/internal/service"
	"github.com/MKhiriev/go-xref/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type menuItem struct {
	label string
	page  string
	// signedIn limits the item to a session with (true) or without (false)
	// a token; nil shows it always.
	signedIn *bool
	logout   bool
}

var (
	whenSignedIn  = ptrTo(true)
	whenSignedOut = ptrTo(false)
)

func ptrTo[T any](v T) *T { return &v }

// MenuModel is the home screen. Its entries depend on the run mode and on
// whether the mode's session currently holds a token.
type MenuModel struct {
	ctx     context.Context
	session service.SessionManager
	items   []menuItem

	snapshot models.Session
	idx      int
	notice   string
	errMsg   string
}

func NewMenuModel(ctx context.Context, session service.SessionManager) *MenuModel {
	m := &MenuModel{ctx: ctx, session: session, snapshot: session.Snapshot()}
	if session.Role() == models.RoleAdmin {
		m.items = []menuItem{
			{label: "Admin log in", page: pageAdminLogin, signedIn: whenSignedOut},
			{label: "Dashboard", page: pageDashboard},
			{label: "Parts catalog", page: pageParts},
			{label: "Log out", logout: true, signedIn: whenSignedIn},
		}
	} else {
		m.items = []menuItem{
			{label: "Search parts", page: pageSearch},
			{label: "My profile", page: pageProfile},
			{label: "Plans", page: pagePlans},
			{label: "Log in", page: pageLogin, signedIn: whenSignedOut},
			{label: "Sign up", page: pageSignup, signedIn: whenSignedOut},
			{label: "Forgot password", page: pageForgot, signedIn: whenSignedOut},
			{label: "Reset password", page: pageReset, signedIn: whenSignedOut},
			{label: "Verify email", page: pageVerify},
			{label: "Contact us", page: pageContact},
			{label: "Log out", logout: true, signedIn: whenSignedIn},
		}
	}
	return m
}

func (m *MenuModel) Init() tea.Cmd {
	m.snapshot = m.session.Snapshot()
	m.idx = min(m.idx, max(len(m.visible())-1, 0))
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionMsg:
		m.snapshot = msg.session
		m.idx = min(m.idx, max(len(m.visible())-1, 0))
		return m, nil
	case noticeMsg:
		m.notice = msg.text
		m.errMsg = ""
		return m, cmdClearStatus()
	case formDoneMsg:
		if msg.id == pageHome {
			m.notice, m.errMsg = msg.notice, humanizeError(msg.err)
			return m, cmdClearStatus()
		}
		return m, nil
	case clearStatusMsg:
		m.notice = ""
		return m, nil
	case tea.KeyMsg:
		items := m.visible()
		switch {
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(items)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.enter):
			if len(items) == 0 {
				return m, nil
			}
			item := items[m.idx]
			if item.logout {
				return m, m.cmdLogout()
			}
			page := item.page
			return m, func() tea.Msg { return NavigateTo{Page: page} }
		}
	}
	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder

	b.WriteString(m.sessionLine())
	b.WriteString("\n\n")

	items := m.visible()
	width := 0
	for _, item := range items {
		width = max(width, lipgloss.Width(item.label))
	}
	for i, item := range items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %-*s\n", cursor, width, item.label))
	}
	renderStatus(&b, m.notice, m.errMsg)

	return renderPage("XREF", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate │ v: version")
}

func (m *MenuModel) sessionLine() string {
	s := m.snapshot
	switch {
	case s.Status == models.SessionLoading:
		return "Loading account..."
	case s.Token == "":
		return "Not logged in"
	case s.Profile == nil:
		return "Logged in (profile unavailable)"
	}

	line := "Logged in as " + valueOrDash(s.Profile.FullName)
	if s.Profile.SearchesRemaining != nil {
		line += fmt.Sprintf(" · %d searches left", *s.Profile.SearchesRemaining)
	}
	return line
}

func (m *MenuModel) visible() []menuItem {
	hasToken := m.snapshot.Token != ""
	out := make([]menuItem, 0, len(m.items))
	for _, item := range m.items {
		if item.signedIn == nil || *item.signedIn == hasToken {
			out = append(out, item)
		}
	}
	return out
}

func (m *MenuModel) cmdLogout() tea.Cmd {
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		err := session.Logout(ctx)
		return formDoneMsg{id: pageHome, notice: "Logged out.", err: err}
	}
}
