// Package grpc exposes the operational gRPC surface of the portal: the
// standard health service, whose status follows database reachability, and
// server reflection.
package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/MKhiriev/f4f-study-portal/internal/logger"
	"github.com/MKhiriev/f4f-study-portal/internal/service"
)

// SchemaServiceName is the health service name reported next to the
// overall ("") status.
const SchemaServiceName = "f4f.portal.Schema"

const defaultProbeInterval = 10 * time.Second

// Handler is the root gRPC transport handler.
//
// It stores references to the service layer and structured logger so that
// gRPC method handlers can delegate business logic and emit consistent logs.
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	services *service.Services

	health        *health.Server
	probeInterval time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services:      services,
		health:        health.NewServer(),
		probeInterval: defaultProbeInterval,
		logger:        logger,
	}
}

// Register installs the health and reflection services on s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
	reflection.Register(s)
}

// ServerOptions returns the interceptors every call passes through.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(h.unaryLogging),
		grpc.ChainStreamInterceptor(h.streamLogging),
	}
}

// WatchHealth probes the database until ctx is done and publishes the
// result on the health service.
func (h *Handler) WatchHealth(ctx context.Context) {
	h.probe(ctx)

	ticker := time.NewTicker(h.probeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.probe(ctx)
		}
	}
}

func (h *Handler) probe(ctx context.Context) {
	status := healthpb.HealthCheckResponse_SERVING
	if err := h.services.HealthService.Check(ctx); err != nil {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(SchemaServiceName, status)
}

// Shutdown reports NOT_SERVING for every service and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
