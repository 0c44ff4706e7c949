package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/f4f-study-portal/internal/client"
	"github.com/MKhiriev/f4f-study-portal/internal/logger"
	"github.com/MKhiriev/f4f-study-portal/internal/mock"
	"github.com/MKhiriev/f4f-study-portal/models"
)

type testBackend struct {
	*backend
	server *mock.MockServerAdapter
	repo   *mock.MockClientStateRepository
	copied []string
}

func newTestBackend(t *testing.T) *testBackend {
	t.Helper()
	ctrl := gomock.NewController(t)
	tb := &testBackend{
		server: mock.NewMockServerAdapter(ctrl),
		repo:   mock.NewMockClientStateRepository(ctrl),
	}
	state := client.NewState(tb.repo, tb.server, "1.0.0", t.TempDir(), logger.Nop())
	tb.backend = &backend{
		ctx:   context.Background(),
		state: state,
		copy: func(text string) error {
			tb.copied = append(tb.copied, text)
			return nil
		},
	}
	return tb
}

// signIn opens a session and loads bundle into the mirror.
func (tb *testBackend) signIn(bundle models.SchemaBundle) {
	tb.state.Session.Start("admin", "http://portal:8080", models.LoginResponse{AccessToken: "opaque", Role: models.RoleAdministrator})
	tb.state.Mirror.Replace(tb.state.Mirror.Epoch(), bundle, time.Now())
}

func strPtr(s string) *string { return &s }

func testBundle() models.SchemaBundle {
	return models.SchemaBundle{
		ServerVersion: "1.0.0",
		Studies: []models.Study{
			{ID: "s1", Title: models.NewLocalizedStr("Pilot"), DefaultRuntimeDays: 14, InitialFoodEnum: strPtr("fe1")},
		},
		Forms: []models.InputForm{{ID: "f1", Identifier: "baseline", Fields: []string{"x1"}}},
		Fields: []models.InputField{
			{ID: "x1", Identifier: "weight", Label: &models.LocalizedStr{Plain: "Weight"}, Datatype: models.FloatType},
			{ID: "x2", Identifier: "", Datatype: models.StringType},
		},
		FoodEnums:  []models.FoodEnum{{ID: "fe1", Identifier: "breakfast", Label: models.NewLocalizedStr("Breakfast")}},
		FoodImages: []models.FoodImage{{ID: "img1", Filename: strPtr("apple.png")}},
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// exec runs cmd and returns its message, nil for a nil command.
func exec(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
