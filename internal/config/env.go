package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from environment variables prefixed with [EnvPrefix].
func parseEnv(cfg any) error {
	return parseEnvWithPrefix(cfg, EnvPrefix)
}

func parseEnvWithPrefix(cfg any, prefix string) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: prefix}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	return nil
}
