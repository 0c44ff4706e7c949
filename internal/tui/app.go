package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/f4f-study-portal/internal/client"
	"github.com/MKhiriev/f4f-study-portal/models"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit and the build info window
// 3) handles NavigateTo messages
// 4) returns to the login page when the session ends
// 5) delegates all other messages to the active page
type RootModel struct {
	backend *backend

	pages       map[string]tea.Model
	current     tea.Model
	currentName string

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
}

func newRootModel(b *backend, defaults client.LoginDefaults, buildInfo models.AppBuildInfo) RootModel {
	pages := map[string]tea.Model{
		pageLogin:      NewLoginModel(b, defaults),
		pageMenu:       NewMenuModel(b),
		pageList:       NewListModel(b),
		pageDetail:     NewDetailModel(b),
		pageIdentifier: NewIdentifierModel(b),
		pageGraph:      NewGraphModel(b),
	}
	return RootModel{
		backend:     b,
		pages:       pages,
		current:     pages[pageLogin],
		currentName: pageLogin,
		buildInfo:   buildInfo,
	}
}

func mirrorTick() tea.Cmd {
	return tea.Tick(mirrorTickInterval, func(time.Time) tea.Msg { return mirrorTickMsg{} })
}

func (r RootModel) Init() tea.Cmd {
	return tea.Batch(r.current.Init(), mirrorTick())
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return r, tea.Quit
		case "?":
			if r.currentName == pageMenu {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}
		if r.showBuildInfo {
			return r, nil
		}

	case tea.WindowSizeMsg:
		// every page keeps its own layout
		var cmds []tea.Cmd
		for name, page := range r.pages {
			updated, cmd := page.Update(msg)
			r.pages[name] = updated
			cmds = append(cmds, cmd)
		}
		r.current = r.pages[r.currentName]
		return r, tea.Batch(cmds...)

	case NavigateTo:
		return r.navigate(msg)

	case sessionEndedMsg:
		r.backend.state.Logout()
		return r.navigate(NavigateTo{Page: pageLogin, Payload: loginNoticeMsg(msg)})

	case mirrorTickMsg:
		if r.currentName != pageLogin && !r.backend.state.Session.Active(time.Now()) {
			return r, tea.Batch(mirrorTick(), func() tea.Msg {
				return sessionEndedMsg{reason: "The session has expired, please sign in again"}
			})
		}
		updated, cmd := r.current.Update(msg)
		r.current = updated
		r.pages[r.currentName] = updated
		return r, tea.Batch(mirrorTick(), cmd)
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	r.pages[r.currentName] = updated
	return r, cmd
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, exists := r.pages[nav.Page]
	if !exists {
		return r, nil
	}

	r.showBuildInfo = false
	r.current = next
	r.currentName = nav.Page

	if nav.Payload != nil {
		payload := nav.Payload
		return r, func() tea.Msg { return payload }
	}
	return r, r.current.Init()
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	return r.current.View()
}
