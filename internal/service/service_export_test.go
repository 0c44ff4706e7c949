package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/f4f-study-portal/internal/config"
	"github.com/MKhiriev/f4f-study-portal/internal/logger"
	"github.com/MKhiriev/f4f-study-portal/models"
)

func newExportSvc(b models.SchemaBundle) *exportService {
	svc := NewExportService(bundleLoader(b), config.App{Version: "1.4.0"}, logger.Nop()).(*exportService)
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestExportService_Export(t *testing.T) {
	svc := newExportSvc(models.SchemaBundle{Enums: []models.InputEnum{twoItemEnum(enumID, "smoking")}})

	b, err := svc.Export(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.4.0", b.ServerVersion)
	assert.Equal(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), b.ExportedAt)
	assert.Len(t, b.Enums, 1)
}

func TestExportService_Export_LoaderError(t *testing.T) {
	svc := NewExportService(failingLoader(errDB), config.App{Version: "1.4.0"}, logger.Nop())

	_, err := svc.Export(context.Background())

	assert.ErrorIs(t, err, errDB)
}

func TestExportService_Encode(t *testing.T) {
	svc := newExportSvc(models.SchemaBundle{})
	b := models.SchemaBundle{
		ServerVersion: "1.4.0",
		Forms:         []models.InputForm{{ID: formID, Identifier: "daily", Fields: []string{fieldID}}},
	}

	data, contentType, err := svc.Encode(b, ExportFormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "application/yaml", contentType)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, "1.4.0", decoded["server_version"])

	data, contentType, err = svc.Encode(b, ExportFormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "application/json", contentType)

	var fromJSON models.SchemaBundle
	require.NoError(t, json.Unmarshal(data, &fromJSON))
	assert.Equal(t, b.Forms, fromJSON.Forms)

	_, _, err = svc.Encode(b, "xml")
	assert.ErrorIs(t, err, ErrUnknownExportFormat)
}
