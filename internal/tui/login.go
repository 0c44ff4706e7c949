// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/f4f-study-portal/internal/client"
)

const (
	loginServer = iota
	loginUsername
	loginPassword
)

// LoginModel is the Bubble Tea model for the login screen. It renders the
// server address, username and password inputs and dispatches an async login
// command on submission. On success it navigates to the menu.
type LoginModel struct {
	backend *backend

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
	notice     string
}

// NewLoginModel creates a [LoginModel] prefilled with the remembered server
// and username. The first empty input receives focus.
func NewLoginModel(b *backend, defaults client.LoginDefaults) *LoginModel {
	server := textinput.New()
	server.Placeholder = "http://localhost:8080"
	server.CharLimit = 256
	server.Width = 40
	server.SetValue(defaults.ServerURL)

	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Width = 40
	username.SetValue(defaults.Username)

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	m := &LoginModel{backend: b, inputs: []textinput.Model{server, username, password}}
	switch {
	case defaults.ServerURL == "":
		m.setFocus(loginServer)
	case defaults.Username == "":
		m.setFocus(loginUsername)
	default:
		m.setFocus(loginPassword)
	}
	return m
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - loginDoneMsg     clears the submitting state and navigates to the menu on success.
//   - loginNoticeMsg   shows why the user was signed out.
//   - tab / shift+tab  move the focus.
//   - enter            validates the inputs and dispatches the login command.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.notice = ""
		m.inputs[loginPassword].SetValue("")
		return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }

	case loginNoticeMsg:
		m.notice = msg.reason
		m.setFocus(loginPassword)
		return m, textinput.Blink

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.tab), msg.Type == tea.KeyDown:
			m.setFocus((m.focus + 1) % len(m.inputs))
			return m, nil
		case key.Matches(msg, keys.backtab), msg.Type == tea.KeyUp:
			m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}

			server := strings.TrimSpace(m.inputs[loginServer].Value())
			user := strings.TrimSpace(m.inputs[loginUsername].Value())
			pass := m.inputs[loginPassword].Value()
			if server == "" || user == "" || pass == "" {
				m.errMsg = "Server, username and password are required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(server, user, pass)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model]. Renders the login form as a two-column table.
func (m *LoginModel) View() string {
	var b strings.Builder
	if m.notice != "" {
		b.WriteString(m.notice)
		b.WriteString("\n\n")
	}

	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	b.WriteString("Server    │ [")
	b.WriteString(m.inputs[loginServer].View())
	b.WriteString("]\n")
	b.WriteString("Username  │ [")
	b.WriteString(m.inputs[loginUsername].View())
	b.WriteString("]\n")
	b.WriteString("Password  │ [")
	b.WriteString(m.inputs[loginPassword].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("SIGN IN", strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: sign in")
}

func (m *LoginModel) setFocus(i int) {
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
	m.focus = i
}

func (m *LoginModel) cmdLogin(server, user, pass string) tea.Cmd {
	b := m.backend
	return func() tea.Msg {
		return loginDoneMsg{err: b.state.Login(b.ctx, server, user, pass)}
	}
}
