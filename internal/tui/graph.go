package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/f4f-study-portal/internal/client"
	"github.com/MKhiriev/f4f-study-portal/internal/schema"
)

// GraphModel shows which food screens can be reached from an initial one.
type GraphModel struct {
	backend *backend

	initial textinput.Model
	loading bool
	report  *schema.FoodGraphReport
	errMsg  string
}

func NewGraphModel(b *backend) *GraphModel {
	initial := textinput.New()
	initial.Placeholder = "initial food screen id"
	initial.CharLimit = 64
	initial.Width = 40
	initial.Focus()

	return &GraphModel{backend: b, initial: initial}
}

// Init prefills the initial screen of the first study that has one.
func (m *GraphModel) Init() tea.Cmd {
	m.report = nil
	m.errMsg = ""
	if m.initial.Value() == "" {
		m.initial.SetValue(defaultInitialFoodEnum(m.backend.state.Mirror.Snapshot()))
	}
	return textinput.Blink
}

func defaultInitialFoodEnum(snap client.MirrorSnapshot) string {
	for _, s := range snap.Bundle.Studies {
		if s.InitialFoodEnum != nil && *s.InitialFoodEnum != "" {
			return *s.InitialFoodEnum
		}
	}
	return ""
}

func (m *GraphModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case graphLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.report = &msg.report
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(msg, keys.enter):
			if m.loading {
				return m, nil
			}
			m.loading = true
			return m, m.cmdLoad(strings.TrimSpace(m.initial.Value()))
		}
	}

	var cmd tea.Cmd
	m.initial, cmd = m.initial.Update(msg)
	return m, cmd
}

func (m *GraphModel) cmdLoad(initial string) tea.Cmd {
	b := m.backend
	return func() tea.Msg {
		report, err := b.state.FoodGraph(b.ctx, initial)
		return graphLoadedMsg{report: report, err: err}
	}
}

func (m *GraphModel) View() string {
	var b strings.Builder
	b.WriteString("Initial  │ [")
	b.WriteString(m.initial.View())
	b.WriteString("]\n")

	switch {
	case m.loading:
		b.WriteString("\nAnalyzing...\n")
	case m.errMsg != "":
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	case m.report != nil:
		b.WriteString("\n")
		b.WriteString(renderGraphReport(*m.report, m.backend.state.Mirror.Snapshot()))
		b.WriteString("\n")
	}

	return renderPage("FOOD SCREEN GRAPH", strings.TrimRight(b.String(), "\n"), "enter: analyze │ esc: back")
}

func renderGraphReport(r schema.FoodGraphReport, snap client.MirrorSnapshot) string {
	var b strings.Builder
	section := func(title string, ids []string) {
		b.WriteString(titleStyle.Render(fmt.Sprintf("%s (%d)", title, len(ids))))
		b.WriteString("\n")
		for _, id := range ids {
			b.WriteString("  ")
			b.WriteString(nameOf(snap, id))
			b.WriteString("\n")
		}
	}

	section("Reachable", r.Reachable)
	section("Unreachable", r.Unreachable)
	section("Without transitions", r.DeadEnds)

	b.WriteString(titleStyle.Render(fmt.Sprintf("Dangling targets (%d)", len(r.Dangling))))
	b.WriteString("\n")
	for _, d := range r.Dangling {
		b.WriteString(fmt.Sprintf("  %s transition %d -> %s\n", nameOf(snap, d.FoodEnumID), d.TransitionIndex, d.TargetEnum))
	}
	return strings.TrimRight(b.String(), "\n")
}
