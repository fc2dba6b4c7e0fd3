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

type PlansModel struct {
	ctx     context.Context
	account service.AccountService

	plans   []models.Plan
	loading bool
	errMsg  string
}

func NewPlansModel(ctx context.Context, account service.AccountService) *PlansModel {
	return &PlansModel{ctx: ctx, account: account}
}

func (m *PlansModel) Init() tea.Cmd {
	return m.cmdLoad()
}

func (m *PlansModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case plansMsg:
		m.loading = false
		m.errMsg = humanizeError(msg.err)
		if msg.err == nil {
			m.plans = msg.plans
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageHome} }
		case key.Matches(msg, keys.retry), key.Matches(msg, keys.reload):
			return m, m.cmdLoad()
		}
	}
	return m, nil
}

func (m *PlansModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Loading plans...\n")
	case len(m.plans) == 0 && m.errMsg == "":
		b.WriteString("No plans available.\n")
	case len(m.plans) > 0:
		rows := make([][]string, len(m.plans))
		for i, p := range m.plans {
			current := ""
			if p.Current {
				current = "current"
			}
			rows[i] = []string{p.Name, fmt.Sprintf("$%.2f", p.Price), intOrDash(p.SearchesLimit), p.Description, current}
		}
		b.WriteString(renderTable([]string{"PLAN", "PRICE", "SEARCHES", "DESCRIPTION", ""}, rows, 40, -1))
		b.WriteString("\n")
	}
	renderStatus(&b, "", m.errMsg)

	return renderPage("PLANS", strings.TrimRight(b.String(), "\n"), "r: reload │ esc: back")
}

func (m *PlansModel) cmdLoad() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	ctx, account := m.ctx, m.account
	return func() tea.Msg {
		plans, err := account.Plans(ctx)
		return plansMsg{plans: plans, err: err}
	}
}
