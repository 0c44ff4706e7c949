package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
)

// ClientEnvPrefix is the environment prefix of the admin client.
const ClientEnvPrefix = EnvPrefix + "ADMIN_CLIENT_"

// ClientConfig configures the terminal admin client.
type ClientConfig struct {
	// ServerURL is the base URL of the portal server.
	ServerURL string `env:"SERVER_URL"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RefreshInterval is how often the cached schema is refetched.
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`

	// DataDir holds the local state database and the log file.
	DataDir string `env:"DATA_DIR"`

	LogLevel string `env:"LOG_LEVEL"`
}

// StatePath is the SQLite file with the durable client state.
func (c ClientConfig) StatePath() string {
	return filepath.Join(c.DataDir, "state.db")
}

// LogPath is the file the client logs to.
func (c ClientConfig) LogPath() string {
	return filepath.Join(c.DataDir, "admin.log")
}

func defaultClientConfig() ClientConfig {
	dataDir := ".f4f-admin"
	if home, err := os.UserHomeDir(); err == nil {
		dataDir = filepath.Join(home, ".f4f-admin")
	}
	return ClientConfig{
		ServerURL:       "http://localhost:8080",
		RequestTimeout:  15 * time.Second,
		RefreshInterval: time.Minute,
		DataDir:         dataDir,
		LogLevel:        "info",
	}
}

// GetClientConfig reads the admin client configuration from the
// environment and the command line, filling the rest with defaults.
func GetClientConfig() (*ClientConfig, error) {
	return buildClientConfig(commandLineArgs())
}

func buildClientConfig(args []string) (*ClientConfig, error) {
	envCfg := &ClientConfig{}
	var errs error
	if err := parseEnvWithPrefix(envCfg, ClientEnvPrefix); err != nil {
		errs = errors.Join(errs, err)
	}

	flagCfg, err := parseClientFlags(args)
	if err != nil {
		errs = errors.Join(errs, err)
	}
	if errs != nil {
		return nil, fmt.Errorf("error occurred during building client config: %w", errs)
	}

	defaults := defaultClientConfig()
	cfg := new(ClientConfig)
	for _, src := range []*ClientConfig{envCfg, flagCfg, &defaults} {
		if err := mergo.Merge(cfg, src); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return cfg, cfg.validate()
}
