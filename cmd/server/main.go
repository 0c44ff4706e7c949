package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/f4f-study-portal/internal/config"
	"github.com/MKhiriev/f4f-study-portal/internal/handler"
	"github.com/MKhiriev/f4f-study-portal/internal/logger"
	"github.com/MKhiriev/f4f-study-portal/internal/server"
	"github.com/MKhiriev/f4f-study-portal/internal/service"
	"github.com/MKhiriev/f4f-study-portal/internal/store"
	"github.com/MKhiriev/f4f-study-portal/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("f4f-portal-server", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("f4f-portal-server", cfg.App.LogLevel)
	if !buildInfo.IsDevelopment() {
		cfg.App.Version = buildInfo.BuildVersion()
	}
	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Str("image_backend", cfg.Storage.Images.Backend).
		Msg("received configs")

	ctx := log.WithContext(context.Background())

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if err = services.AuthService.EnsureAdmin(ctx); err != nil {
		log.Fatal().Err(err).Msg("error creating the bootstrap administrator")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	for _, row := range info.Rows() {
		fmt.Printf("Build %s: %s\n", strings.ToLower(row.Label), row.Value)
	}
}
