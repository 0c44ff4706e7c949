package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/f4f-study-portal/internal/adapter"
	"github.com/MKhiriev/f4f-study-portal/internal/client"
	"github.com/MKhiriev/f4f-study-portal/models"
)

func newTestRoot(t *testing.T, tb *testBackend) RootModel {
	t.Helper()
	return newRootModel(tb.backend, client.LoginDefaults{ServerURL: "http://portal:8080"}, models.NewAppBuildInfo("1.0.0", "2026-01-01", "abc123"))
}

func TestRootModel_StartsAtLogin(t *testing.T) {
	root := newTestRoot(t, newTestBackend(t))
	assert.Equal(t, pageLogin, root.currentName)
	assert.Contains(t, root.View(), "SIGN IN")
}

func TestRootModel_NavigateWithPayload(t *testing.T) {
	tb := newTestBackend(t)
	tb.signIn(testBundle())
	root := newTestRoot(t, tb)

	updated, cmd := root.Update(NavigateTo{Page: pageList, Payload: openListMsg{resource: adapter.ResourceForm}})
	root = updated.(RootModel)
	assert.Equal(t, pageList, root.currentName)

	updated, _ = root.Update(exec(cmd))
	root = updated.(RootModel)
	assert.Contains(t, root.View(), "FORMS")
	assert.Contains(t, root.View(), "baseline")
}

func TestRootModel_UnknownPageIgnored(t *testing.T) {
	root := newTestRoot(t, newTestBackend(t))
	updated, cmd := root.Update(NavigateTo{Page: "nowhere"})
	assert.Nil(t, cmd)
	assert.Equal(t, pageLogin, updated.(RootModel).currentName)
}

func TestRootModel_BuildInfoOnMenu(t *testing.T) {
	tb := newTestBackend(t)
	tb.signIn(testBundle())
	root := newTestRoot(t, tb)

	updated, _ := root.Update(NavigateTo{Page: pageMenu})
	updated, _ = updated.Update(keyRunes("?"))
	require.Contains(t, updated.View(), "abc123")

	updated, _ = updated.Update(keyType(tea.KeyEsc))
	assert.Contains(t, updated.View(), "MAIN MENU")
}

func TestRootModel_ExpiredSessionReturnsToLogin(t *testing.T) {
	tb := newTestBackend(t)
	tb.signIn(testBundle())
	root := newTestRoot(t, tb)

	updated, _ := root.Update(NavigateTo{Page: pageMenu})
	tb.state.Session.Clear()

	updated, cmd := updated.Update(mirrorTickMsg{})
	require.NotNil(t, cmd)

	tb.server.EXPECT().SetToken("")
	updated, cmd = updated.Update(sessionEndedMsg{reason: "The session has expired"})
	updated, _ = updated.Update(exec(cmd))

	root = updated.(RootModel)
	assert.Equal(t, pageLogin, root.currentName)
	assert.Contains(t, root.View(), "The session has expired")
	assert.False(t, tb.state.Mirror.Snapshot().Loaded())
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	root := newTestRoot(t, newTestBackend(t))
	_, cmd := root.Update(keyType(tea.KeyCtrlC))
	assert.IsType(t, tea.QuitMsg{}, exec(cmd))
}
