package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-xref/internal/service"
	"github.com/MKhiriev/go-xref/internal/table"
	"github.com/MKhiriev/go-xref/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const seriesRows = 14

// DashboardModel is the admin overview: counters, the daily search series,
// top and failed queries, and the usage-per-user table.
type DashboardModel struct {
	ctx      context.Context
	admin    service.AdminService
	debounce time.Duration

	dashboard models.Dashboard
	series    []models.SeriesPoint
	usage     *table.View
	loaded    bool
	loading   bool
	notice    string
	errMsg    string

	filter        textinput.Model
	filterFocused bool
	seq           int
}

func NewDashboardModel(ctx context.Context, admin service.AdminService, debounce time.Duration) *DashboardModel {
	in := textinput.New()
	in.Placeholder = "filter by name or email"
	in.Width = 32
	in.CharLimit = 128

	return &DashboardModel{
		ctx:      ctx,
		admin:    admin,
		debounce: debounce,
		usage:    table.NewView(nil),
		filter:   in,
	}
}

func (m *DashboardModel) Init() tea.Cmd {
	m.filterFocused = false
	m.filter.Blur()
	return m.cmdLoad()
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.loaded = true
		m.dashboard = msg.dashboard
		m.series = service.MergeSeries(msg.dashboard.Graph)

		m.usage.Replace(msg.dashboard.Usage)
		return m, nil

	case debounceMsg:
		if msg.seq == m.seq {
			m.usage.SetFilter(m.filter.Value())
		}
		return m, nil

	case noticeMsg:
		m.notice = msg.text
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.notice = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *DashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.tab) || key.Matches(msg, keys.backtab) {
		m.filterFocused = !m.filterFocused
		if m.filterFocused {
			m.filter.Focus()
			return m, textinput.Blink
		}
		m.filter.Blur()
		return m, nil
	}

	if m.filterFocused {
		if key.Matches(msg, keys.esc) {
			m.filterFocused = false
			m.filter.Blur()
			return m, nil
		}
		before := m.filter.Value()
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		if m.filter.Value() != before {
			m.seq++
			return m, tea.Batch(cmd, cmdDebounce(m.debounce, m.seq))
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Page: pageHome} }
	case key.Matches(msg, keys.reload), key.Matches(msg, keys.retry):
		return m, m.cmdLoad()
	case key.Matches(msg, keys.sortName):
		m.usage.ToggleSort(table.SortByName)
	case key.Matches(msg, keys.sortMail):
		m.usage.ToggleSort(table.SortByEmail)
	case key.Matches(msg, keys.sortHits):
		m.usage.ToggleSort(table.SortBySearchCount)
	case key.Matches(msg, keys.pageSize):
		m.usage.CyclePageSize()
	case key.Matches(msg, keys.nextPage):
		m.usage.NextPage()
	case key.Matches(msg, keys.prevPage):
		m.usage.PrevPage()
	}
	return m, nil
}

func (m *DashboardModel) View() string {
	var b strings.Builder

	if m.loading && !m.loaded {
		b.WriteString("Loading dashboard...\n")
	}
	if m.loaded {
		d := m.dashboard
		b.WriteString(fmt.Sprintf("Users %s · verified %s · active subscriptions %s\n",
			intOrDash(d.TotalUsers), intOrDash(d.VerifiedUsers), intOrDash(d.ActiveSubscriptions)))
		b.WriteString(fmt.Sprintf("Searches this week %s · this month %s\n\n",
			intOrDash(d.WeeklySearches), intOrDash(d.MonthlySearches)))

		b.WriteString(m.renderSeries())
		b.WriteString("\n\n")
		b.WriteString(renderStats("TOP SEARCHES", d.TopSearches))
		b.WriteString("\n\n")
		b.WriteString(renderStats("FAILED SEARCHES", d.FailedSearches))
		b.WriteString("\n\n")
		b.WriteString(m.renderUsage())
		b.WriteString("\n")
	}
	renderStatus(&b, m.notice, m.errMsg)

	help := "1/2/3: sort │ s: page size │ n/p: page │ tab: filter │ r: reload │ esc: back"
	if m.filterFocused {
		help = "type to filter │ tab/esc: leave filter"
	}
	return renderPage("ADMIN DASHBOARD", strings.TrimRight(b.String(), "\n"), help)
}

func (m *DashboardModel) renderSeries() string {
	points := m.series
	if len(points) > seriesRows {
		points = points[len(points)-seriesRows:]
	}
	if len(points) == 0 {
		return "No searches recorded."
	}
	rows := make([][]string, len(points))
	for i, p := range points {
		rows[i] = []string{p.Date, fmt.Sprint(p.Success), fmt.Sprint(p.Failed)}
	}
	return renderTable([]string{"DATE", "SUCCESS", "FAILED"}, rows, 12, -1)
}

func renderStats(title string, stats []models.SearchStat) string {
	if len(stats) == 0 {
		return title + ": -"
	}
	rows := make([][]string, len(stats))
	for i, s := range stats {
		rows[i] = []string{valueOrDash(s.Query), fmt.Sprint(s.Count)}
	}
	return renderTable([]string{title, "COUNT"}, rows, 32, -1)
}

func (m *DashboardModel) renderUsage() string {
	var b strings.Builder

	b.WriteString("Filter │ [")
	b.WriteString(m.filter.View())
	b.WriteString("]\n\n")

	page := m.usage.Rows()
	if page.Total == 0 {
		b.WriteString("No users match.")
		return b.String()
	}

	total := m.usage.TotalSearches()
	rows := make([][]string, len(page.Rows))
	for i, r := range page.Rows {
		share := 0.0
		if total > 0 {
			share = float64(r.SearchCount) * 100 / float64(total)
		}
		rows[i] = []string{
			fmt.Sprint(page.Offset + i + 1),
			valueOrDash(r.UserName),
			valueOrDash(r.UserEmail),
			fmt.Sprint(r.SearchCount),
			fmt.Sprintf("%.1f%%", share),
		}
	}
	b.WriteString(renderTable([]string{"#", "NAME", "EMAIL", "SEARCHES", "SHARE"}, rows, 32, -1))

	sortKey, dir := m.usage.SortState()
	b.WriteString(fmt.Sprintf("\n\npage %d/%d · %d users · sort %s %s · %d per page",
		page.Page, page.TotalPages, page.Total, sortKey, dir, m.usage.PageSize()))
	return b.String()
}

func (m *DashboardModel) cmdLoad() tea.Cmd {
	m.loading = true
	ctx, admin := m.ctx, m.admin
	return func() tea.Msg {
		d, err := admin.Dashboard(ctx)
		return dashboardMsg{dashboard: d, err: err}
	}
}
