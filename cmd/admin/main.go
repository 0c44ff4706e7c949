package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/f4f-study-portal/internal/adapter"
	"github.com/MKhiriev/f4f-study-portal/internal/client"
	"github.com/MKhiriev/f4f-study-portal/internal/config"
	"github.com/MKhiriev/f4f-study-portal/internal/logger"
	"github.com/MKhiriev/f4f-study-portal/internal/store"
	"github.com/MKhiriev/f4f-study-portal/internal/tui"
	"github.com/MKhiriev/f4f-study-portal/internal/workers"
	"github.com/MKhiriev/f4f-study-portal/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	// the terminal belongs to the UI, so the client logs to a file
	log := logger.NewFileLogger("f4f-admin", cfg.LogLevel, cfg.LogPath())
	log.Debug().
		Str("server_url", cfg.ServerURL).
		Str("data_dir", cfg.DataDir).
		Dur("refresh_interval", cfg.RefreshInterval).
		Msg("received configs")

	ctx := log.WithContext(context.Background())

	storages, err := store.NewClientStorages(ctx, cfg.StatePath(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating local storage")
	}
	defer storages.Close()

	serverAdapter, err := adapter.NewHTTPServerAdapter(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server adapter")
	}

	state := client.NewState(storages.StateRepository, serverAdapter, buildVersion, filepath.Join(cfg.DataDir, "exports"), log)
	refresher := workers.NewRefreshWorker(workers.RefreshFunc(state.RefreshIfSignedIn), cfg.RefreshInterval, log)
	ui := tui.New(state, buildInfo, log)

	app := client.NewApp(ui, workers.NewWorkers(refresher), log)
	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintf(os.Stderr, "client run error: %v\n", err)
	}
}
