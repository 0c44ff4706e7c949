package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/f4f-study-portal/internal/config"
	"github.com/MKhiriev/f4f-study-portal/internal/logger"
	"github.com/MKhiriev/f4f-study-portal/models"
)

const (
	ExportFormatYAML = "yaml"
	ExportFormatJSON = "json"
)

type exportService struct {
	snapshots SnapshotLoader
	version   string
	now       func() time.Time

	logger *logger.Logger
}

func NewExportService(snapshots SnapshotLoader, cfg config.App, logger *logger.Logger) ExportService {
	return &exportService{
		snapshots: snapshots,
		version:   cfg.Version,
		now:       time.Now,
		logger:    logger,
	}
}

func (s *exportService) Export(ctx context.Context) (models.SchemaBundle, error) {
	b, err := s.snapshots.Load(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*exportService.Export").Msg("error loading schema snapshot")
		return models.SchemaBundle{}, err
	}

	b.ExportedAt = s.now().UTC()
	b.ServerVersion = s.version
	return b, nil
}

func (s *exportService) Encode(bundle models.SchemaBundle, format string) ([]byte, string, error) {
	switch format {
	case ExportFormatYAML, "":
		data, err := yaml.Marshal(bundle)
		if err != nil {
			return nil, "", fmt.Errorf("error encoding yaml: %w", err)
		}
		return data, "application/yaml", nil
	case ExportFormatJSON:
		data, err := json.MarshalIndent(bundle, "", "  ")
		if err != nil {
			return nil, "", fmt.Errorf("error encoding json: %w", err)
		}
		return data, "application/json", nil
	}
	return nil, "", fmt.Errorf("%w: %q", ErrUnknownExportFormat, format)
}
