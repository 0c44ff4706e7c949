package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/f4f-study-portal/internal/adapter"
)

const listNameWidth = 28

// ListModel shows the cached entities of one resource with their local
// validation badges.
type ListModel struct {
	backend *backend

	resource adapter.Resource
	idx      int
	status   string

	confirm *confirmModel
	failure *errorOverlayModel
	pending entityRow
}

func NewListModel(b *backend) *ListModel {
	return &ListModel{backend: b, resource: adapter.ResourceStudy}
}

func (m *ListModel) Init() tea.Cmd {
	return nil
}

func (m *ListModel) rows() []entityRow {
	return rowsFor(m.resource, m.backend.state.Mirror.Snapshot().Bundle)
}

func (m *ListModel) current() (entityRow, bool) {
	rows := m.rows()
	if len(rows) == 0 {
		return entityRow{}, false
	}
	if m.idx >= len(rows) {
		m.idx = len(rows) - 1
	}
	return rows[m.idx], true
}

func (m *ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openListMsg:
		if msg.resource != m.resource {
			m.idx = 0
		}
		m.resource = msg.resource
		m.status = ""
		m.confirm = nil
		m.failure = nil
		return m, nil

	case deleteDoneMsg:
		if msg.err != nil {
			m.failure = &errorOverlayModel{message: humanizeError(msg.err), references: referencesOf(msg.err)}
			return m, nil
		}
		m.status = fmt.Sprintf("Deleted %s", msg.row.Name)
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.status = "Could not copy: " + msg.err.Error()
		} else {
			m.status = "Copied " + msg.id
		}
		return m, nil

	case refreshDoneMsg:
		m.status = "Schema refreshed"
		if msg.err != nil {
			m.status = humanizeError(msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *ListModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.failure != nil {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.failure = nil
		}
		return m, nil
	}

	if m.confirm != nil {
		switch {
		case key.Matches(msg, keys.yes):
			m.confirm = nil
			return m, m.cmdDelete(m.pending)
		case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
			m.confirm = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.rows())-1 {
			m.idx++
		}
	case key.Matches(msg, keys.refresh):
		b := m.backend
		return m, func() tea.Msg { return refreshDoneMsg{err: b.state.Refresh(b.ctx)} }
	case key.Matches(msg, keys.enter):
		if row, ok := m.current(); ok {
			res := m.resource
			return m, func() tea.Msg {
				return NavigateTo{Page: pageDetail, Payload: openDetailMsg{resource: res, row: row}}
			}
		}
	case key.Matches(msg, keys.copy):
		if row, ok := m.current(); ok {
			return m, m.backend.cmdCopy(row.ID)
		}
	case key.Matches(msg, keys.delete):
		if row, ok := m.current(); ok {
			m.pending = row
			m.confirm = &confirmModel{message: row.Name}
		}
	}
	return m, nil
}

func (m *ListModel) cmdDelete(row entityRow) tea.Cmd {
	b := m.backend
	res := m.resource
	return func() tea.Msg {
		err := b.state.Delete(b.ctx, res, row.ID)
		if errors.Is(err, adapter.ErrNotFound) {
			// already gone on the server
			err = b.state.Refresh(b.ctx)
		}
		return deleteDoneMsg{row: row, err: err}
	}
}

func (m *ListModel) View() string {
	if m.failure != nil {
		return m.failure.View()
	}
	if m.confirm != nil {
		return m.confirm.View()
	}

	snap := m.backend.state.Mirror.Snapshot()
	rows := m.rows()

	var b strings.Builder
	if !snap.Loaded() {
		b.WriteString("Schema not loaded yet\n")
	} else if len(rows) == 0 {
		b.WriteString("No entries\n")
	}

	for i, row := range rows {
		res, ok := snap.Results[row.ID]
		b.WriteString(fmt.Sprintf("%s %-4s %-*s │ %s\n",
			cursor(i == m.idx), badge(res, ok), listNameWidth, fitText(row.Name, listNameWidth), fitText(row.Detail, 40)))
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	title := strings.ToUpper(resourceTitle(m.resource))
	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"enter: open │ c: copy id │ d: delete │ r: refresh │ esc: back")
}
