// Package handler builds the transport handlers of the portal server.
package handler

import (
	"github.com/MKhiriev/f4f-study-portal/internal/config"
	"github.com/MKhiriev/f4f-study-portal/internal/handler/grpc"
	"github.com/MKhiriev/f4f-study-portal/internal/handler/http"
	"github.com/MKhiriev/f4f-study-portal/internal/logger"
	"github.com/MKhiriev/f4f-study-portal/internal/service"
)

// Handlers holds the REST API and the operational gRPC surface. Either may
// be nil when its address is not configured.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")
	if services == nil {
		return nil, errNilServices
	}

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger).WithMaxUploadSize(cfg.MaxUploadSize)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
