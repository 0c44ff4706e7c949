package service

import (
	"context"
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/MKhiriev/f4f-study-portal/internal/config"
	"github.com/MKhiriev/f4f-study-portal/internal/logger"
)

type appInfoService struct {
	appVersion *semver.Version

	logger *logger.Logger
}

// NewAppInfoService fails unless cfg.Version is a semantic version; the
// admin client compares its major version against it.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	v, err := semver.NewVersion(cfg.Version)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidVersion, err)
	}

	return &appInfoService{
		appVersion: v,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion.Original()
}
