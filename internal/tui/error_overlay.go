package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render("Errore") + "\n\n" + m.message + "\n\nenter / esc chiudi"
	return overlayBoxStyle.Render(content)
}
