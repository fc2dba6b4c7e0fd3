package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-xref/internal/service"
	"github.com/MKhiriev/go-xref/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const maxPartColumns = 6

// PartsModel is the admin catalog browser. Edit and upload open an inline
// form; delete asks for confirmation first.
type PartsModel struct {
	ctx      context.Context
	admin    service.AdminService
	debounce time.Duration

	search        textinput.Model
	searchFocused bool
	seq           int

	page     int
	data     models.PartsPage
	selected int
	loading  bool

	form    *formModel
	confirm *confirmModel

	notice string
	errMsg string
}

func NewPartsModel(ctx context.Context, admin service.AdminService, debounce time.Duration) *PartsModel {
	in := textinput.New()
	in.Placeholder = "search parts"
	in.Width = 32
	in.CharLimit = 128

	return &PartsModel{
		ctx:      ctx,
		admin:    admin,
		debounce: debounce,
		search:   in,
		page:     1,
	}
}

func (m *PartsModel) Init() tea.Cmd {
	m.form, m.confirm = nil, nil
	m.searchFocused = false
	m.search.Blur()
	return m.cmdLoad()
}

func (m *PartsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case partsMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.data = msg.page
		if m.data.Page > 0 {
			m.page = m.data.Page
		}
		m.selected = min(m.selected, max(len(m.data.Results)-1, 0))
		return m, nil

	case debounceMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.page = 1
		m.selected = 0
		return m, m.cmdLoad()

	case formCancelledMsg:
		m.form = nil
		return m, nil

	case formDoneMsg:
		if m.form == nil || msg.id != m.form.id {
			return m, nil
		}
		if msg.err == nil {
			m.form = nil
			m.notice = msg.notice
			return m, tea.Batch(cmdClearStatus(), m.cmdLoad())
		}

	case partChangedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.notice = msg.notice
		return m, tea.Batch(cmdClearStatus(), m.cmdLoad())

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Could not copy to clipboard."
			return m, nil
		}
		m.notice = "Copied " + msg.text + "."
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.notice = ""
		return m, nil
	}

	if m.form != nil {
		var cmd tea.Cmd
		_, cmd = m.form.Update(msg)
		return m, cmd
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(keyMsg)
	}
	if m.searchFocused {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *PartsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		switch {
		case key.Matches(msg, keys.yes):
			m.confirm = nil
			if part, ok := m.selectedPart(); ok {
				return m, m.cmdDelete(part.ID)
			}
		case key.Matches(msg, keys.no):
			m.confirm = nil
		}
		return m, nil
	}

	if key.Matches(msg, keys.tab) || key.Matches(msg, keys.backtab) {
		m.searchFocused = !m.searchFocused
		if m.searchFocused {
			m.search.Focus()
			return m, textinput.Blink
		}
		m.search.Blur()
		return m, nil
	}

	if m.searchFocused {
		if key.Matches(msg, keys.esc) {
			m.searchFocused = false
			m.search.Blur()
			return m, nil
		}
		before := m.search.Value()
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		if m.search.Value() != before {
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
	case key.Matches(msg, keys.up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, keys.down):
		if m.selected < len(m.data.Results)-1 {
			m.selected++
		}
	case key.Matches(msg, keys.nextPage):
		if m.page < m.data.Pages {
			m.page++
			m.selected = 0
			return m, m.cmdLoad()
		}
	case key.Matches(msg, keys.prevPage):
		if m.page > 1 {
			m.page--
			m.selected = 0
			return m, m.cmdLoad()
		}
	case key.Matches(msg, keys.edit):
		if part, ok := m.selectedPart(); ok {
			m.form = newEditPartForm(m.ctx, m.admin, part)
			return m, m.form.Init()
		}
	case key.Matches(msg, keys.upload):
		m.form = newUploadForm(m.ctx, m.admin)
		return m, m.form.Init()
	case key.Matches(msg, keys.delete):
		if part, ok := m.selectedPart(); ok {
			m.confirm = &confirmModel{message: fmt.Sprintf("Delete part %s (%s)?", valueOrDash(part.Fields["PART NUMBER"]), part.ID)}
		}
	case key.Matches(msg, keys.copy):
		if part, ok := m.selectedPart(); ok && part.Fields["PART NUMBER"] != "" {
			return m, cmdCopy(part.Fields["PART NUMBER"])
		}
	}
	return m, nil
}

func (m *PartsModel) selectedPart() (models.Part, bool) {
	if m.selected < 0 || m.selected >= len(m.data.Results) {
		return models.Part{}, false
	}
	return m.data.Results[m.selected], true
}

func (m *PartsModel) columns() []string {
	cols := m.data.Columns
	if len(cols) == 0 && len(m.data.Results) > 0 {
		cols = m.data.Results[0].Keys()
	}
	if len(cols) > maxPartColumns {
		cols = cols[:maxPartColumns]
	}
	return cols
}

func (m *PartsModel) View() string {
	if m.form != nil {
		return m.form.View()
	}

	var b strings.Builder

	b.WriteString("Search │ [")
	b.WriteString(m.search.View())
	b.WriteString("]\n\n")

	switch {
	case m.loading && len(m.data.Results) == 0:
		b.WriteString("Loading parts...\n")
	case len(m.data.Results) == 0:
		b.WriteString("No parts found.\n")
	default:
		cols := m.columns()
		headers := append([]string{"ID"}, cols...)
		rows := make([][]string, len(m.data.Results))
		for i, p := range m.data.Results {
			row := make([]string, 0, len(headers))
			row = append(row, p.ID)
			for _, c := range cols {
				row = append(row, valueOrDash(p.Fields[c]))
			}
			rows[i] = row
		}
		selected := m.selected
		if m.searchFocused {
			selected = -1
		}
		b.WriteString(renderTable(headers, rows, 20, selected))
		b.WriteString(fmt.Sprintf("\n\npage %d/%d · %d parts\n", m.page, max(m.data.Pages, 1), m.data.Count))
	}
	renderStatus(&b, m.notice, m.errMsg)

	body := strings.TrimRight(b.String(), "\n")
	if m.confirm != nil {
		body += "\n\n" + m.confirm.View()
	}

	help := "↑/↓: select │ n/p: page │ e: edit │ d: delete │ u: upload │ c: copy │ tab: search │ esc: back"
	if m.searchFocused {
		help = "type to search │ tab/esc: leave search"
	}
	return renderPage("PARTS CATALOG", body, help)
}

func (m *PartsModel) cmdLoad() tea.Cmd {
	m.loading = true
	ctx, admin := m.ctx, m.admin
	page, term := m.page, m.search.Value()
	return func() tea.Msg {
		p, err := admin.Parts(ctx, page, term)
		return partsMsg{page: p, err: err}
	}
}

func (m *PartsModel) cmdDelete(id string) tea.Cmd {
	ctx, admin := m.ctx, m.admin
	return func() tea.Msg {
		if err := admin.DeletePart(ctx, id); err != nil {
			return partChangedMsg{err: err}
		}
		return partChangedMsg{notice: "Part deleted."}
	}
}
