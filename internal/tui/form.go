package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type formField struct {
	label       string
	placeholder string
	secret      bool
	value       string
	limit       int
}

// submitFunc receives the raw field values in declaration order and returns
// a success notice.
type submitFunc func(ctx context.Context, values []string) (string, error)

// formModel is a column of labelled text inputs with one submit action.
// Every screen that only collects input and calls a service is a formModel.
type formModel struct {
	ctx    context.Context
	id     string
	title  string
	fields []formField
	inputs []textinput.Model
	focus  int
	submit submitFunc

	// back is the page esc returns to; empty emits formCancelledMsg instead.
	back string
	// next is the page shown after a successful submit; empty stays.
	next string

	submitting bool
	notice     string
	errMsg     string
}

func newFormModel(ctx context.Context, id, title string, fields []formField, submit submitFunc) *formModel {
	m := &formModel{
		ctx:    ctx,
		id:     id,
		title:  title,
		fields: fields,
		submit: submit,
		back:   pageHome,
	}
	m.reset()
	return m
}

func (m *formModel) withNavigation(back, next string) *formModel {
	m.back = back
	m.next = next
	return m
}

func (m *formModel) reset() {
	m.inputs = make([]textinput.Model, len(m.fields))
	for i, f := range m.fields {
		in := textinput.New()
		in.Placeholder = f.placeholder
		in.Width = 40
		in.CharLimit = 256
		if f.limit > 0 {
			in.CharLimit = f.limit
		}
		if f.secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		in.SetValue(f.value)
		m.inputs[i] = in
	}
	m.focus = 0
	if len(m.inputs) > 0 {
		m.inputs[0].Focus()
	}
	m.submitting = false
	m.notice = ""
	m.errMsg = ""
}

func (m *formModel) Init() tea.Cmd {
	m.reset()
	return textinput.Blink
}

func (m *formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case formDoneMsg:
		if msg.id != m.id {
			return m, nil
		}
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		if m.next != "" {
			notice := msg.notice
			return m, func() tea.Msg { return NavigateTo{Page: m.next, Payload: noticeMsg{text: notice}} }
		}
		m.reset()
		m.notice = msg.notice
		return m, textinput.Blink

	case noticeMsg:
		m.notice = msg.text
		return m, textinput.Blink

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			if m.back == "" {
				id := m.id
				return m, func() tea.Msg { return formCancelledMsg{id: id} }
			}
			back := m.back
			return m, func() tea.Msg { return NavigateTo{Page: back} }
		case key.Matches(msg, keys.tab), key.Matches(msg, keys.down):
			m.setFocus(m.focus + 1)
			return m, nil
		case key.Matches(msg, keys.backtab), key.Matches(msg, keys.up):
			m.setFocus(m.focus - 1)
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}
			m.submitting = true
			m.errMsg = ""
			m.notice = ""
			return m, m.cmdSubmit()
		}
	}

	if len(m.inputs) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *formModel) View() string {
	var b strings.Builder

	labelWidth := 0
	for _, f := range m.fields {
		labelWidth = max(labelWidth, lipgloss.Width(f.label))
	}

	for i, f := range m.fields {
		b.WriteString(f.label)
		b.WriteString(strings.Repeat(" ", labelWidth-lipgloss.Width(f.label)))
		b.WriteString(" │ [")
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Submitting...]\n")
	} else {
		b.WriteString("\n[Submit]\n")
	}
	renderStatus(&b, m.notice, m.errMsg)

	return renderPage(m.title, strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *formModel) values() []string {
	out := make([]string, len(m.inputs))
	for i, in := range m.inputs {
		out[i] = in.Value()
	}
	return out
}

func (m *formModel) cmdSubmit() tea.Cmd {
	ctx := m.ctx
	id := m.id
	submit := m.submit
	values := m.values()

	return func() tea.Msg {
		notice, err := submit(ctx, values)
		return formDoneMsg{id: id, notice: notice, err: err}
	}
}

func (m *formModel) setFocus(i int) {
	if len(m.inputs) == 0 {
		return
	}
	m.inputs[m.focus].Blur()
	m.focus = (i + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
