package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-xref/internal/service"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var searchHeaders = []string{"PART", "DESCRIPTION", "CATEGORY", "MATCH", "MANUFACTURER", "SIZE", "FINISH", "CROSSOVERS"}

// writeClipboard is swapped in tests.
var writeClipboard = clipboard.WriteAll

// SearchModel is the part search screen. The query and the displayed page
// live in a service.SearchSession that survives leaving the screen.
type SearchModel struct {
	ctx     context.Context
	search  service.SearchService
	session *service.SearchSession

	input         textinput.Model
	inputFocused  bool
	manufacturers []string
	// maker indexes manufacturers; -1 means all.
	maker int

	selected int
	loading  bool
	overlay  *errorOverlayModel
	notice   string
	errMsg   string
}

func NewSearchModel(ctx context.Context, search service.SearchService, pageSize int) *SearchModel {
	in := textinput.New()
	in.Placeholder = "part number, e.g. 6204-2RS"
	in.Width = 40
	in.CharLimit = 128

	return &SearchModel{
		ctx:     ctx,
		search:  search,
		session: service.NewSearchSession(search, pageSize),
		input:   in,
		maker:   -1,
	}
}

func (m *SearchModel) Init() tea.Cmd {
	m.overlay = nil
	m.notice, m.errMsg = "", ""
	m.inputFocused = true
	m.input.Focus()

	cmds := []tea.Cmd{textinput.Blink}
	if len(m.manufacturers) == 0 {
		cmds = append(cmds, m.cmdManufacturers())
	}
	return tea.Batch(cmds...)
}

func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case manufacturersMsg:
		if msg.err == nil {
			m.manufacturers = msg.names
		}
		return m, nil

	case searchDoneMsg:
		if errors.Is(msg.err, service.ErrStaleResponse) {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			var verr *service.ValidationError
			if errors.As(msg.err, &verr) {
				m.errMsg = verr.Message
				return m, nil
			}
			m.overlay = &errorOverlayModel{message: humanizeError(msg.err), retry: true}
			return m, nil
		}
		m.errMsg = ""
		m.selected = 0
		return m, nil

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

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.inputFocused {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *SearchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.overlay != nil {
		switch {
		case key.Matches(msg, keys.retry):
			m.overlay = nil
			return m, m.cmdFetch()
		case key.Matches(msg, keys.esc):
			m.overlay = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Page: pageHome} }
	case key.Matches(msg, keys.retry):
		return m, m.cmdFetch()
	case key.Matches(msg, keys.tab), key.Matches(msg, keys.backtab):
		m.inputFocused = !m.inputFocused
		if m.inputFocused {
			m.input.Focus()
			return m, textinput.Blink
		}
		m.input.Blur()
		return m, nil
	}

	if m.inputFocused {
		if key.Matches(msg, keys.enter) {
			m.session.SetText(m.input.Value())
			return m, m.cmdFetch()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	page, _ := m.session.Current()
	switch {
	case key.Matches(msg, keys.up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, keys.down):
		if m.selected < len(page.Rows)-1 {
			m.selected++
		}
	case key.Matches(msg, keys.nextPage):
		if m.session.Next() {
			return m, m.cmdFetch()
		}
	case key.Matches(msg, keys.prevPage):
		if m.session.Prev() {
			return m, m.cmdFetch()
		}
	case key.Matches(msg, keys.maker):
		m.cycleManufacturer()
		if strings.TrimSpace(m.session.Query().Text) != "" {
			return m, m.cmdFetch()
		}
	case key.Matches(msg, keys.copy):
		if m.selected < len(page.Rows) {
			return m, cmdCopy(page.Rows[m.selected].PartNumber)
		}
	}
	return m, nil
}

func (m *SearchModel) cycleManufacturer() {
	if len(m.manufacturers) == 0 {
		return
	}
	m.maker++
	if m.maker >= len(m.manufacturers) {
		m.maker = -1
	}
	m.session.SetManufacturer(m.manufacturerName())
}

func (m *SearchModel) manufacturerName() string {
	if m.maker < 0 || m.maker >= len(m.manufacturers) {
		return ""
	}
	return m.manufacturers[m.maker]
}

func (m *SearchModel) View() string {
	var b strings.Builder

	b.WriteString("Part number  │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")
	b.WriteString("Manufacturer │ ")
	b.WriteString(valueOrDash(m.manufacturerName()))
	if m.manufacturerName() == "" {
		b.WriteString(" (all)")
	}
	b.WriteString("\n\n")

	page, loaded := m.session.Current()
	switch {
	case m.loading:
		b.WriteString("Searching...\n")
	case !loaded:
		b.WriteString("Enter a part number and press enter.\n")
	case len(page.Rows) == 0:
		b.WriteString("No results found.\n")
	default:
		rows := make([][]string, len(page.Rows))
		for i, r := range page.Rows {
			rows[i] = []string{r.PartNumber, r.Description, r.Category, string(r.Status), r.Manufacturer, r.Size, r.Finish, r.Crossovers}
		}
		selected := -1
		if !m.inputFocused {
			selected = m.selected
		}
		b.WriteString(renderTable(searchHeaders, rows, 24, selected))
		b.WriteString("\n\n")
		from, to := page.Range()
		b.WriteString(fmt.Sprintf("Showing %d-%d of %d · page %d/%d\n", from, to, page.TotalCount, page.CurrentPage, max(page.TotalPages, 1)))
	}
	renderStatus(&b, m.notice, m.errMsg)

	body := strings.TrimRight(b.String(), "\n")
	if m.overlay != nil {
		body += "\n\n" + m.overlay.View()
	}

	help := "enter: search │ tab: results │ esc: back"
	if !m.inputFocused {
		help = "↑/↓: select │ n/p: page │ m: manufacturer │ c: copy │ ctrl+r: retry │ tab: query │ esc: back"
	}
	return renderPage("SEARCH PARTS", body, help)
}

func (m *SearchModel) cmdFetch() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		page, err := session.Fetch(ctx)
		return searchDoneMsg{page: page, err: err}
	}
}

func (m *SearchModel) cmdManufacturers() tea.Cmd {
	ctx, search := m.ctx, m.search
	return func() tea.Msg {
		names, err := search.Manufacturers(ctx)
		return manufacturersMsg{names: names, err: err}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{text: text, err: writeClipboard(text)}
	}
}
