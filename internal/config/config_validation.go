package config

import (
	"fmt"
	"net/url"
)

func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database uri is required", ErrInvalidStorageConfigs)
	}

	switch cfg.Storage.Images.Backend {
	case ImageBackendFile:
		if cfg.Storage.Images.Dir == "" {
			return fmt.Errorf("%w: image directory is required", ErrInvalidStorageConfigs)
		}
	case ImageBackendS3:
		s3 := cfg.Storage.Images.S3
		if s3.Endpoint == "" || s3.Bucket == "" {
			return fmt.Errorf("%w: s3 endpoint and bucket are required", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown image backend %q", ErrInvalidStorageConfigs, cfg.Storage.Images.Backend)
	}

	if cfg.Auth.TokenSignKey == "" || cfg.Auth.TokenIssuer == "" || cfg.Auth.TokenDuration <= 0 {
		return ErrInvalidAuthConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs)
	}

	if (cfg.Admin.Username == "") != (cfg.Admin.Password == "") {
		return fmt.Errorf("%w: username and password must be set together", ErrInvalidAdminConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	u, err := url.Parse(cfg.ServerURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: server url %q", ErrInvalidClientConfigs, cfg.ServerURL)
	}

	if cfg.RequestTimeout <= 0 || cfg.RefreshInterval <= 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidClientConfigs)
	}

	if cfg.DataDir == "" {
		return fmt.Errorf("%w: data directory is required", ErrInvalidClientConfigs)
	}

	return nil
}
