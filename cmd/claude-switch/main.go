package main

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/claude-switch/internal/adapter"
	"github.com/MKhiriev/claude-switch/internal/client"
	"github.com/MKhiriev/claude-switch/internal/config"
	"github.com/MKhiriev/claude-switch/internal/logger"
	"github.com/MKhiriev/claude-switch/internal/service"
	"github.com/MKhiriev/claude-switch/internal/store"
	"github.com/MKhiriev/claude-switch/internal/tui"
	"github.com/MKhiriev/claude-switch/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Println("error getting configs:", err)
		return
	}

	log := logger.NewFileLogger("claude-switch", cfg.Logs.Path)

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create storages")
	}
	defer storages.Close()

	remote, err := adapter.NewWebDAVAdapter(cfg.Sync, log)
	if err != nil {
		if !errors.Is(err, adapter.ErrSyncDisabled) {
			log.Fatal().Err(err).Msg("create webdav adapter")
		}
		log.Info().Msg("sync is not configured, running local-only")
		remote = nil
	}

	services, err := service.NewServices(storages, remote, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create services")
	}

	ui, err := tui.New(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg.Sync, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", orNA(info.BuildVersion()))
	fmt.Printf("Build date: %s\n", orNA(info.BuildDate()))
	fmt.Printf("Build commit: %s\n", orNA(info.BuildCommit()))
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
