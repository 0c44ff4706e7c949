package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/f4f-study-portal/internal/adapter"
	"github.com/MKhiriev/f4f-study-portal/internal/logger"
	"github.com/MKhiriev/f4f-study-portal/internal/schema"
	"github.com/MKhiriev/f4f-study-portal/internal/store"
	"github.com/MKhiriev/f4f-study-portal/models"
)

const (
	ExportFormatYAML = "yaml"
	ExportFormatJSON = "json"
)

// LoginDefaults prefill the login screen.
type LoginDefaults struct {
	ServerURL string
	Username  string
}

// State is everything the admin client knows. It is safe for concurrent use
// by the UI and the refresh worker.
type State struct {
	Settings *Settings
	Session  *Session
	Mirror   *Mirror

	server        adapter.ServerAdapter
	clientVersion string
	exportDir     string
	now           func() time.Time

	logger *logger.Logger
}

// NewState creates the client state. clientVersion is compared with the
// server version on login; exports are written below exportDir.
func NewState(repo store.ClientStateRepository, server adapter.ServerAdapter, clientVersion, exportDir string, logger *logger.Logger) *State {
	return &State{
		Settings:      NewSettings(repo, logger),
		Session:       &Session{},
		Mirror:        &Mirror{},
		server:        server,
		clientVersion: clientVersion,
		exportDir:     exportDir,
		now:           time.Now,
		logger:        logger,
	}
}

// LoginDefaults returns the remembered server and username. The configured
// server URL is used until a login succeeded.
func (s *State) LoginDefaults(ctx context.Context) LoginDefaults {
	return LoginDefaults{
		ServerURL: s.Settings.ServerURL(ctx, s.server.ServerURL()),
		Username:  s.Settings.LastUsername(ctx),
	}
}

// Login checks that the server speaks a compatible API version, signs in
// and downloads the schema. Only administrators are accepted.
func (s *State) Login(ctx context.Context, serverURL, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return ErrCredentialsRequired
	}

	if err := s.server.SetServerURL(serverURL); err != nil {
		return err
	}

	version, err := s.server.ServerVersion(ctx)
	if err != nil {
		return fmt.Errorf("reading server version: %w", err)
	}
	if err = adapter.CheckCompatibility(version, s.clientVersion); err != nil {
		return err
	}

	resp, err := s.server.Login(ctx, models.LoginRequest{Username: username, Password: password})
	if err != nil {
		return err
	}
	if resp.Role != models.RoleAdministrator {
		s.server.SetToken("")
		return fmt.Errorf("%w: signed in as %s", ErrNotAdministrator, resp.Role)
	}

	s.Mirror.Clear()
	s.Session.Start(username, s.server.ServerURL(), resp)
	if err = s.Settings.Remember(ctx, s.server.ServerURL(), username); err != nil {
		s.logger.Warn().Err(err).Str("func", "*State.Login").Msg("could not remember login")
	}
	s.logger.Info().Str("func", "*State.Login").Str("username", username).Str("server_version", version).Msg("signed in")

	if err = s.Refresh(ctx); err != nil {
		s.logger.Warn().Err(err).Str("func", "*State.Login").Msg("initial refresh failed")
	}
	return nil
}

// Logout ends the session and drops the cached schema. The durable
// settings are kept.
func (s *State) Logout() {
	s.server.SetToken("")
	s.Session.Clear()
	s.Mirror.Clear()
}

// Refresh downloads the schema into the mirror. A rejected token ends the
// session.
func (s *State) Refresh(ctx context.Context) error {
	if !s.Session.Active(s.now()) {
		if s.Session.Info().Username != "" {
			s.Logout()
			return ErrSessionExpired
		}
		return ErrNotSignedIn
	}

	epoch := s.Mirror.Epoch()
	bundle, err := s.server.FetchSchema(ctx)
	if errors.Is(err, adapter.ErrUnauthorized) {
		if s.Mirror.Epoch() != epoch {
			return ErrNotSignedIn
		}
		s.Logout()
		return fmt.Errorf("%w: %w", ErrSessionExpired, err)
	}
	if err != nil {
		s.Mirror.Fail(epoch, err)
		return err
	}

	if !s.Mirror.Replace(epoch, bundle, s.now()) {
		s.logger.Debug().Str("func", "*State.Refresh").Msg("session changed during refresh, schema dropped")
		return ErrNotSignedIn
	}
	return nil
}

// RefreshIfSignedIn is Refresh for the background worker: without a
// session there is nothing to refresh.
func (s *State) RefreshIfSignedIn(ctx context.Context) error {
	if err := s.Refresh(ctx); !errors.Is(err, ErrNotSignedIn) {
		return err
	}
	return nil
}

// Delete removes an entity on the server and refreshes the mirror.
func (s *State) Delete(ctx context.Context, res adapter.Resource, id string) error {
	if err := s.server.Delete(ctx, res, id); err != nil {
		return err
	}
	if err := s.Refresh(ctx); err != nil {
		s.logger.Warn().Err(err).Str("func", "*State.Delete").Msg("refresh after delete failed")
	}
	return nil
}

// Validate asks the server to validate entity again.
func (s *State) Validate(ctx context.Context, res adapter.Resource, entity any) (schema.Result, error) {
	return s.server.Validate(ctx, res, entity)
}

// CheckIdentifier asks the server about identifier. When the server cannot
// be reached the cached schema answers instead and offline is true.
func (s *State) CheckIdentifier(ctx context.Context, res adapter.Resource, identifier, original string) (resp models.IdentifierCheckResponse, offline bool, err error) {
	resp, err = s.server.CheckIdentifier(ctx, res, identifier, original)
	if err == nil || !isUnreachable(err) {
		return resp, false, err
	}

	snap := s.Mirror.Snapshot()
	ns, ok := namespaceOf(res)
	if !snap.Loaded() || !ok {
		return models.IdentifierCheckResponse{}, false, err
	}

	result := schema.NewRegistryFromCatalog(snap.Catalog).Check(ns, identifier, original)
	return models.IdentifierCheckResponse{Result: result, Message: result.Message()}, true, nil
}

// FoodGraph analyzes the food screens starting at initial.
func (s *State) FoodGraph(ctx context.Context, initial string) (schema.FoodGraphReport, error) {
	return s.server.FoodGraph(ctx, initial)
}

// Export downloads the schema in format and writes it below the export
// directory. It returns the path of the written file.
func (s *State) Export(ctx context.Context, format string) (string, error) {
	if format != ExportFormatYAML && format != ExportFormatJSON {
		return "", fmt.Errorf("%w: %q", ErrUnknownExportFormat, format)
	}

	body, err := s.server.Export(ctx, format)
	if err != nil {
		return "", err
	}

	if err = os.MkdirAll(s.exportDir, 0o750); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}
	name := fmt.Sprintf("f4f-schema-%s.%s", s.now().UTC().Format("20060102-150405"), format)
	path := filepath.Join(s.exportDir, name)
	if err = os.WriteFile(path, body, 0o600); err != nil {
		return "", fmt.Errorf("writing export: %w", err)
	}
	return path, nil
}

func isUnreachable(err error) bool {
	var serverErr *adapter.ServerError
	if errors.As(err, &serverErr) {
		return errors.Is(err, adapter.ErrServerUnavailable)
	}
	return !errors.Is(err, adapter.ErrUnsupportedResource)
}

func namespaceOf(res adapter.Resource) (models.IdentifierNamespace, bool) {
	switch res {
	case adapter.ResourceForm:
		return models.NamespaceForm, true
	case adapter.ResourceField:
		return models.NamespaceField, true
	case adapter.ResourceEnum:
		return models.NamespaceEnum, true
	case adapter.ResourceFoodEnum:
		return models.NamespaceFoodEnum, true
	case adapter.ResourceFoodItem:
		return models.NamespaceFoodItem, true
	}
	return "", false
}
