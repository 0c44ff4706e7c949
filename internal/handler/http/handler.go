package http

import (
	"github.com/MKhiriev/f4f-study-portal/internal/logger"
	"github.com/MKhiriev/f4f-study-portal/internal/service"
)

// defaultMaxUploadSize bounds the multipart body of a food image upload
// unless WithMaxUploadSize sets another limit.
const defaultMaxUploadSize = 10 << 20

type Handler struct {
	services *service.Services

	maxUploadSize int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		maxUploadSize: defaultMaxUploadSize,
		logger:        logger,
	}
}

// WithMaxUploadSize overrides the upload limit. Non-positive values are
// ignored.
func (h *Handler) WithMaxUploadSize(n int64) *Handler {
	if n > 0 {
		h.maxUploadSize = n
	}
	return h
}
