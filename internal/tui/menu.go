package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/f4f-study-portal/internal/adapter"
	"github.com/MKhiriev/f4f-study-portal/internal/client"
)

type menuAction int

const (
	actionOpenList menuAction = iota
	actionIdentifier
	actionGraph
	actionExportYAML
	actionExportJSON
	actionRefresh
	actionLogout
)

type menuItem struct {
	title    string
	action   menuAction
	resource adapter.Resource
}

type MenuModel struct {
	backend *backend

	items  []menuItem
	idx    int
	busy   bool
	status string
	errMsg string
}

func NewMenuModel(b *backend) *MenuModel {
	items := make([]menuItem, 0, len(adapter.Resources)+6)
	for _, res := range adapter.Resources {
		items = append(items, menuItem{title: resourceTitle(res), action: actionOpenList, resource: res})
	}
	items = append(items,
		menuItem{title: "Check identifier", action: actionIdentifier},
		menuItem{title: "Food screen graph", action: actionGraph},
		menuItem{title: "Export YAML", action: actionExportYAML},
		menuItem{title: "Export JSON", action: actionExportJSON},
		menuItem{title: "Refresh now", action: actionRefresh},
		menuItem{title: "Sign out", action: actionLogout},
	)
	return &MenuModel{backend: b, items: items}
}

func (m *MenuModel) Init() tea.Cmd {
	m.errMsg = ""
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshDoneMsg:
		m.busy = false
		m.errMsg = humanizeError(msg.err)
		if msg.err == nil {
			m.status = "Schema refreshed"
		}
		return m, nil

	case exportDoneMsg:
		m.busy = false
		m.errMsg = humanizeError(msg.err)
		if msg.err == nil {
			m.status = "Exported to " + msg.path
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.items)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.refresh):
			return m.run(menuItem{action: actionRefresh})
		case key.Matches(msg, keys.enter):
			return m.run(m.items[m.idx])
		}
	}
	return m, nil
}

func (m *MenuModel) run(item menuItem) (tea.Model, tea.Cmd) {
	b := m.backend
	switch item.action {
	case actionOpenList:
		return m, func() tea.Msg {
			return NavigateTo{Page: pageList, Payload: openListMsg{resource: item.resource}}
		}
	case actionIdentifier:
		return m, func() tea.Msg { return NavigateTo{Page: pageIdentifier} }
	case actionGraph:
		return m, func() tea.Msg { return NavigateTo{Page: pageGraph} }
	case actionLogout:
		return m, func() tea.Msg { return sessionEndedMsg{reason: "Signed out"} }
	}

	if m.busy {
		return m, nil
	}
	m.busy = true
	m.status = ""

	switch item.action {
	case actionExportYAML, actionExportJSON:
		format := client.ExportFormatYAML
		if item.action == actionExportJSON {
			format = client.ExportFormatJSON
		}
		return m, func() tea.Msg {
			path, err := b.state.Export(b.ctx, format)
			return exportDoneMsg{path: path, err: err}
		}
	default:
		return m, func() tea.Msg {
			return refreshDoneMsg{err: b.state.Refresh(b.ctx)}
		}
	}
}

func (m *MenuModel) View() string {
	snap := m.backend.state.Mirror.Snapshot()
	info := m.backend.state.Session.Info()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Signed in as %s at %s\n", info.Username, info.ServerURL))
	if !info.ExpiresAt.IsZero() {
		b.WriteString(fmt.Sprintf("Session expires %s\n", info.ExpiresAt.Local().Format(time.DateTime)))
	}
	if snap.Loaded() {
		b.WriteString(fmt.Sprintf("Schema of server %s, fetched %s\n",
			valueOrNA(snap.Bundle.ServerVersion), snap.FetchedAt.Local().Format(time.TimeOnly)))
	} else {
		b.WriteString("Schema not loaded yet\n")
	}
	if snap.Err != nil {
		b.WriteString(errorStyle.Render("Last refresh failed: " + humanizeError(snap.Err)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	titleWidth := 0
	for _, item := range m.items {
		if w := lipgloss.Width(item.title); w > titleWidth {
			titleWidth = w
		}
	}

	for i, item := range m.items {
		line := fmt.Sprintf("%s %-*s", cursor(i == m.idx), titleWidth, item.title)
		if item.action == actionOpenList && snap.Loaded() {
			count := len(rowsFor(item.resource, snap.Bundle))
			line += fmt.Sprintf(" │ %4d", count)
			if invalid := invalidCount(item.resource, snap); invalid > 0 {
				line += " " + badgeErrorStyle.Render(fmt.Sprintf("%d invalid", invalid))
			}
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.busy {
		b.WriteString("\nWorking...\n")
	}
	if m.status != "" {
		b.WriteString("\nOK: ")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("MAIN MENU", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate │ r: refresh │ ?: version")
}
