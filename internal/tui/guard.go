package tui

import (
	"context"

	"github.com/MKhiriev/go-xref/internal/service"
	"github.com/MKhiriev/go-xref/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// guardedModel shows inner only when the guard allows it. The check runs
// once each time the page is entered and is kept until the page is left.
type guardedModel struct {
	ctx      context.Context
	guard    service.RouteGuard
	inner    tea.Model
	decision *models.GuardDecision
}

func newGuardedModel(ctx context.Context, guard service.RouteGuard, inner tea.Model) *guardedModel {
	return &guardedModel{ctx: ctx, guard: guard, inner: inner}
}

func (g *guardedModel) Init() tea.Cmd {
	g.decision = nil
	ctx, guard := g.ctx, g.guard
	return func() tea.Msg {
		return guardCheckedMsg{decision: guard.Check(ctx)}
	}
}

func (g *guardedModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if checked, ok := msg.(guardCheckedMsg); ok {
		g.decision = &checked.decision
		if checked.decision.Allowed {
			return g, g.inner.Init()
		}
		return g, nil
	}

	if g.decision == nil {
		return g, nil
	}

	if !g.decision.Allowed {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch {
			case key.Matches(keyMsg, keys.enter):
				page := g.decision.LoginPage
				return g, func() tea.Msg { return NavigateTo{Page: page} }
			case key.Matches(keyMsg, keys.esc):
				return g, func() tea.Msg { return NavigateTo{Page: pageHome} }
			}
		}
		return g, nil
	}

	var cmd tea.Cmd
	g.inner, cmd = g.inner.Update(msg)
	return g, cmd
}

func (g *guardedModel) View() string {
	switch {
	case g.decision == nil:
		return renderPage("CHECKING ACCESS", "...", "")
	case !g.decision.Allowed:
		body := "You need to be logged in to view this page."
		if g.decision.Role == models.RoleAdmin {
			body = "You need to be logged in as an administrator to view this page."
		}
		return renderPage("LOGIN REQUIRED", body, "enter: go to login │ esc: back")
	}
	return g.inner.View()
}
