package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/f4f-study-portal/internal/adapter"
	"github.com/MKhiriev/f4f-study-portal/models"
)

// identifierResources are the resources that carry an identifier.
var identifierResources = []adapter.Resource{
	adapter.ResourceForm,
	adapter.ResourceField,
	adapter.ResourceEnum,
	adapter.ResourceFoodEnum,
	adapter.ResourceFoodItem,
}

// IdentifierModel checks whether an identifier is free before it is used.
type IdentifierModel struct {
	backend *backend

	resourceIdx int
	inputs      []textinput.Model
	focus       int

	checking bool
	result   *identifierCheckedMsg
}

func NewIdentifierModel(b *backend) *IdentifierModel {
	identifier := textinput.New()
	identifier.Placeholder = "identifier"
	identifier.CharLimit = 128
	identifier.Width = 40
	identifier.Focus()

	original := textinput.New()
	original.Placeholder = "current identifier when renaming"
	original.CharLimit = 128
	original.Width = 40

	return &IdentifierModel{backend: b, inputs: []textinput.Model{identifier, original}}
}

func (m *IdentifierModel) Init() tea.Cmd {
	m.result = nil
	return textinput.Blink
}

func (m *IdentifierModel) resource() adapter.Resource {
	return identifierResources[m.resourceIdx]
}

func (m *IdentifierModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case identifierCheckedMsg:
		m.checking = false
		m.result = &msg
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(msg, keys.left):
			m.resourceIdx = (m.resourceIdx + len(identifierResources) - 1) % len(identifierResources)
			m.result = nil
			return m, nil
		case key.Matches(msg, keys.right):
			m.resourceIdx = (m.resourceIdx + 1) % len(identifierResources)
			m.result = nil
			return m, nil
		case key.Matches(msg, keys.tab), key.Matches(msg, keys.backtab):
			m.inputs[m.focus].Blur()
			m.focus = 1 - m.focus
			m.inputs[m.focus].Focus()
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.checking {
				return m, nil
			}
			m.checking = true
			m.result = nil
			return m, m.cmdCheck(m.inputs[0].Value(), strings.TrimSpace(m.inputs[1].Value()))
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *IdentifierModel) cmdCheck(identifier, original string) tea.Cmd {
	b := m.backend
	res := m.resource()
	return func() tea.Msg {
		resp, offline, err := b.state.CheckIdentifier(b.ctx, res, identifier, original)
		return identifierCheckedMsg{resp: resp, offline: offline, err: err}
	}
}

func (m *IdentifierModel) View() string {
	var b strings.Builder

	b.WriteString("Kind        │ ◀ ")
	b.WriteString(resourceTitle(m.resource()))
	b.WriteString(" ▶\n")
	b.WriteString("Identifier  │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Original    │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	switch {
	case m.checking:
		b.WriteString("\nChecking...\n")
	case m.result != nil && m.result.err != nil:
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + humanizeError(m.result.err)))
		b.WriteString("\n")
	case m.result != nil:
		b.WriteString("\n")
		b.WriteString(renderIdentifierResult(m.result.resp))
		if m.result.offline {
			b.WriteString("\n(server unreachable, checked against the cached schema)")
		}
		b.WriteString("\n")
	}

	return renderPage("CHECK IDENTIFIER", strings.TrimRight(b.String(), "\n"),
		"←/→: kind │ tab: next field │ enter: check │ esc: back")
}

func renderIdentifierResult(resp models.IdentifierCheckResponse) string {
	if resp.Result == models.IdentifierOK {
		return badgeOKStyle.Render("OK: the identifier is available")
	}

	msg := resp.Message
	if msg == "" {
		msg = resp.Result.Message()
	}
	return badgeErrorStyle.Render(string(resp.Result) + ": " + msg)
}
