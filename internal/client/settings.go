package client

import (
	"context"
	"strings"

	"github.com/MKhiriev/f4f-study-portal/internal/logger"
	"github.com/MKhiriev/f4f-study-portal/internal/store"
)

const (
	settingServerURL    = "server_url"
	settingLastUsername = "last_username"
)

// Settings is the durable part of the client state. It survives restarts
// and logouts.
type Settings struct {
	repo   store.ClientStateRepository
	logger *logger.Logger
}

func NewSettings(repo store.ClientStateRepository, logger *logger.Logger) *Settings {
	return &Settings{repo: repo, logger: logger}
}

// ServerURL returns the last server the user signed in to, or fallback.
func (s *Settings) ServerURL(ctx context.Context, fallback string) string {
	return s.get(ctx, settingServerURL, fallback)
}

// LastUsername returns the last username that signed in successfully.
func (s *Settings) LastUsername(ctx context.Context) string {
	return s.get(ctx, settingLastUsername, "")
}

// Remember stores the server and username of a successful login.
func (s *Settings) Remember(ctx context.Context, serverURL, username string) error {
	if err := s.repo.SetSetting(ctx, settingServerURL, serverURL); err != nil {
		return err
	}
	return s.repo.SetSetting(ctx, settingLastUsername, username)
}

// Forget removes the remembered username. The server URL is kept.
func (s *Settings) Forget(ctx context.Context) error {
	return s.repo.DeleteSetting(ctx, settingLastUsername)
}

func (s *Settings) get(ctx context.Context, key, fallback string) string {
	value, ok, err := s.repo.GetSetting(ctx, key)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "*Settings.get").Str("key", key).Msg("using fallback")
		return fallback
	}
	if !ok || strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
