package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/f4f-study-portal/internal/adapter"
	"github.com/MKhiriev/f4f-study-portal/models"
)

func TestIdentifierModel_CycleKinds(t *testing.T) {
	tb := newTestBackend(t)
	m := NewIdentifierModel(tb.backend)
	assert.Equal(t, adapter.ResourceForm, m.resource())

	m.Update(keyType(tea.KeyRight))
	assert.Equal(t, adapter.ResourceField, m.resource())

	m.Update(keyType(tea.KeyLeft))
	m.Update(keyType(tea.KeyLeft))
	assert.Equal(t, adapter.ResourceFoodItem, m.resource())
}

func TestIdentifierModel_Check(t *testing.T) {
	tb := newTestBackend(t)
	m := NewIdentifierModel(tb.backend)

	tb.server.EXPECT().CheckIdentifier(gomock.Any(), adapter.ResourceField, "weight", "").
		Return(models.IdentifierCheckResponse{Result: models.IdentifierAlreadyInUse, Message: models.IdentifierAlreadyInUse.Message()}, nil)

	m.Update(keyType(tea.KeyRight))
	m.Update(keyRunes("weight"))
	_, cmd := m.Update(keyType(tea.KeyEnter))
	require.NotNil(t, cmd)

	m.Update(exec(cmd))
	view := m.View()
	assert.Contains(t, view, "AlreadyInUse")
	assert.Contains(t, view, "This identifier is already in use.")
	assert.NotContains(t, view, "cached schema")
}

func TestIdentifierModel_OfflineFallback(t *testing.T) {
	tb := newTestBackend(t)
	tb.signIn(testBundle())
	m := NewIdentifierModel(tb.backend)

	tb.server.EXPECT().CheckIdentifier(gomock.Any(), adapter.ResourceForm, "screening", "").
		Return(models.IdentifierCheckResponse{}, errors.New("dial tcp: connection refused"))

	m.Update(keyRunes("screening"))
	_, cmd := m.Update(keyType(tea.KeyEnter))
	m.Update(exec(cmd))

	view := m.View()
	assert.Contains(t, view, "OK: the identifier is available")
	assert.Contains(t, view, "cached schema")
}

func TestIdentifierModel_Error(t *testing.T) {
	tb := newTestBackend(t)
	m := NewIdentifierModel(tb.backend)

	m.Update(identifierCheckedMsg{err: adapter.ErrForbidden})
	assert.Contains(t, m.View(), "Only administrators")
}

func TestRenderIdentifierResult(t *testing.T) {
	assert.Contains(t, renderIdentifierResult(models.IdentifierCheckResponse{Result: models.IdentifierReserved}),
		"This identifier is reserved for internal usage.")
}
