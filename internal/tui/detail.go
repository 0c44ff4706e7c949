package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/f4f-study-portal/internal/adapter"
	"github.com/MKhiriev/f4f-study-portal/internal/schema"
	"github.com/MKhiriev/f4f-study-portal/models"
)

const (
	detailDefaultWidth  = 80
	detailDefaultHeight = 20
	detailChromeHeight  = 12
)

// DetailModel shows one entity as YAML together with its validation issues.
type DetailModel struct {
	backend *backend

	resource adapter.Resource
	row      entityRow
	view     viewport.Model

	serverResult *schema.Result
	validating   bool
	status       string
}

func NewDetailModel(b *backend) *DetailModel {
	return &DetailModel{backend: b, view: viewport.New(detailDefaultWidth, detailDefaultHeight)}
}

func (m *DetailModel) Init() tea.Cmd {
	return nil
}

func (m *DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.view.Width = msg.Width
		m.view.Height = max(msg.Height-detailChromeHeight, 5)
		return m, nil

	case openDetailMsg:
		m.resource = msg.resource
		m.row = msg.row
		m.serverResult = nil
		m.status = ""
		m.view.SetContent(renderYAML(msg.row.Entity))
		m.view.GotoTop()
		return m, nil

	case validatedMsg:
		m.validating = false
		if msg.err != nil {
			m.status = humanizeError(msg.err)
			return m, nil
		}
		m.serverResult = &msg.result
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.status = "Could not copy: " + msg.err.Error()
		} else {
			m.status = "Copied " + msg.id
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageList} }
		case key.Matches(msg, keys.copy):
			return m, m.backend.cmdCopy(m.row.ID)
		case key.Matches(msg, keys.validate):
			if m.validating || m.resource == adapter.ResourceFoodImage {
				return m, nil
			}
			m.validating = true
			m.status = ""
			return m, m.cmdValidate()
		}
	}

	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

func (m *DetailModel) cmdValidate() tea.Cmd {
	b := m.backend
	res := m.resource
	entity := m.row.Entity
	return func() tea.Msg {
		result, err := b.state.Validate(b.ctx, res, entity)
		return validatedMsg{result: result, err: err}
	}
}

func renderYAML(v any) string {
	out, err := yaml.Marshal(v)
	if err != nil {
		return "cannot render: " + err.Error()
	}
	return strings.TrimRight(string(out), "\n")
}

func (m *DetailModel) View() string {
	var b strings.Builder
	b.WriteString("id: ")
	b.WriteString(m.row.ID)
	b.WriteString("\n\n")
	b.WriteString(m.view.View())
	b.WriteString("\n\n")

	if field, ok := m.row.Entity.(models.InputField); ok {
		b.WriteString(titleStyle.Render("Permissions"))
		b.WriteString("\n")
		b.WriteString(renderPermissions(field))
		b.WriteString("\n\n")
	}

	b.WriteString(titleStyle.Render("Cached schema"))
	b.WriteString("\n")
	if res, ok := m.backend.state.Mirror.Snapshot().Results[m.row.ID]; ok {
		b.WriteString(renderIssues(res))
	} else {
		b.WriteString("-")
	}

	if m.validating {
		b.WriteString("\n\nValidating on the server...")
	} else if m.serverResult != nil {
		b.WriteString("\n\n")
		b.WriteString(titleStyle.Render("Server"))
		b.WriteString("\n")
		b.WriteString(renderIssues(*m.serverResult))
	}

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(m.status)
	}

	title := strings.ToUpper(resourceTitle(m.resource)) + ": " + m.row.Name
	return renderPage(title, b.String(), "↑/↓: scroll │ v: validate on server │ c: copy id │ esc: back")
}
