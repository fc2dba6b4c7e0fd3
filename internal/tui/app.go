package tui

import (
	"github.com/MKhiriev/go-xref/models"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages
// 4) forwards session snapshots to the active page
// 5) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	mode      models.Role
	sessions  <-chan models.Session
	startup   []tea.Cmd
	buildInfo models.AppBuildInfo

	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage. Snapshots received
// on sessions are delivered to whichever page is active.
func NewRootModel(pages map[string]tea.Model, startPage string, mode models.Role, sessions <-chan models.Session, buildInfo models.AppBuildInfo, startup ...tea.Cmd) RootModel {
	return RootModel{
		pages:     pages,
		current:   pages[startPage],
		mode:      mode,
		sessions:  sessions,
		startup:   startup,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	cmds := append([]tea.Cmd{waitForSession(r.sessions)}, r.startup...)
	if r.current != nil {
		cmds = append(cmds, r.current.Init())
	}
	return tea.Batch(cmds...)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkey for every page.
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			return r, tea.Quit
		case "v":
			if r.isMenuPage() {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	// Cross-page navigation. The page is always re-initialised; a payload
	// is delivered after that.
	if nav, ok := msg.(NavigateTo); ok {
		next, exists := r.pages[nav.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next

		cmd := r.current.Init()
		if nav.Payload != nil {
			payload := nav.Payload
			return r, tea.Sequence(cmd, func() tea.Msg { return payload })
		}
		return r, cmd
	}

	if s, ok := msg.(sessionFeedMsg); ok {
		rearm := waitForSession(r.sessions)
		if r.current == nil {
			return r, rearm
		}
		updated, cmd := r.current.Update(sessionMsg(s))
		r.current = updated
		return r, tea.Batch(cmd, rearm)
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo, r.mode)
	}
	if r.current == nil {
		return renderPage("XREF", "", "")
	}
	return r.current.View()
}

func (r RootModel) isMenuPage() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}

// waitForSession blocks until the next snapshot. A closed channel ends the
// loop.
func waitForSession(ch <-chan models.Session) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return nil
		}
		return sessionFeedMsg{session: s}
	}
}
