package tui

import "strings"

type errorOverlayModel struct {
	message    string
	references []string
}

func (m errorOverlayModel) View() string {
	var b strings.Builder
	b.WriteString(errorStyle.Render("Error"))
	b.WriteString("\n\n")
	b.WriteString(m.message)
	if len(m.references) > 0 {
		b.WriteString("\n\nStill referenced by:\n")
		for _, ref := range m.references {
			b.WriteString("  - ")
			b.WriteString(ref)
			b.WriteString("\n")
		}
	}
	b.WriteString("\n\nenter / esc close")
	return overlayBoxStyle.Render(b.String())
}
