package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	nextPage key.Binding
	prevPage key.Binding
	retry    key.Binding
	copy     key.Binding
	reload   key.Binding
	logout   key.Binding
	edit     key.Binding
	delete   key.Binding
	upload   key.Binding
	pageSize key.Binding
	maker    key.Binding
	sortName key.Binding
	sortMail key.Binding
	sortHits key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up")),
	down:     key.NewBinding(key.WithKeys("down")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	nextPage: key.NewBinding(key.WithKeys("n", "pgdown")),
	prevPage: key.NewBinding(key.WithKeys("p", "pgup")),
	retry:    key.NewBinding(key.WithKeys("ctrl+r")),
	copy:     key.NewBinding(key.WithKeys("c")),
	reload:   key.NewBinding(key.WithKeys("r")),
	logout:   key.NewBinding(key.WithKeys("l")),
	edit:     key.NewBinding(key.WithKeys("e")),
	delete:   key.NewBinding(key.WithKeys("d")),
	upload:   key.NewBinding(key.WithKeys("u")),
	pageSize: key.NewBinding(key.WithKeys("s")),
	maker:    key.NewBinding(key.WithKeys("m")),
	sortName: key.NewBinding(key.WithKeys("1")),
	sortMail: key.NewBinding(key.WithKeys("2")),
	sortHits: key.NewBinding(key.WithKeys("3")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n", "esc")),
}
