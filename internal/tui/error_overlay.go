package tui

type errorOverlayModel struct {
	message string
	retry   bool
}

func (m errorOverlayModel) View() string {
	content := "Error\n\n" + m.message + "\n\n"
	if m.retry {
		content += "ctrl+r retry    "
	}
	content += "esc close"
	return overlayBoxStyle.Render(content)
}
