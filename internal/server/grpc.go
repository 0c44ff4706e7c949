package server

import (
	"context"
	"fmt"
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/f4f-study-portal/internal/config"
	myGRPC "github.com/MKhiriev/f4f-study-portal/internal/handler/grpc"
	"github.com/MKhiriev/f4f-study-portal/internal/logger"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server  *grpc.Server
	address string

	healthCtx  context.Context
	stopHealth context.CancelFunc

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer(handler.ServerOptions()...)
	handler.Register(server)

	healthCtx, stopHealth := context.WithCancel(context.Background())

	return &grpcServer{
		handler:    handler,
		server:     server,
		address:    cfg.GRPCAddress,
		healthCtx:  healthCtx,
		stopHealth: stopHealth,
		logger:     logger,
	}
}

// RunServer listens on the configured address and publishes database health
// until Shutdown.
func (g *grpcServer) RunServer() error {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("gRPC listen on %s: %w", g.address, err)
	}

	go g.handler.WatchHealth(g.healthCtx)

	g.logger.Info().Str("address", g.address).Msg("gRPC server listening")
	return g.server.Serve(listener)
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.stopHealth()
	g.handler.Shutdown()
	g.server.GracefulStop()
}
