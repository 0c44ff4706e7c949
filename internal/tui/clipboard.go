package tui

import (
	"context"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/f4f-study-portal/internal/client"
)

func newBackend(ctx context.Context, state *client.State) *backend {
	return &backend{ctx: ctx, state: state, copy: clipboard.WriteAll}
}

// cmdCopy puts an entity id on the system clipboard.
func (b *backend) cmdCopy(id string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{id: id, err: b.copy(id)}
	}
}
