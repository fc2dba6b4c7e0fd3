package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// fakePage records what the router does to it.
type fakePage struct {
	inits int
	msgs  []tea.Msg
	view  string
}

func (p *fakePage) Init() tea.Cmd {
	p.inits++
	return nil
}

func (p *fakePage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	p.msgs = append(p.msgs, msg)
	return p, nil
}

func (p *fakePage) View() string { return p.view }
