package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/sales-admin/internal/adapter"
	"github.com/MKhiriev/sales-admin/internal/client"
	"github.com/MKhiriev/sales-admin/internal/config"
	"github.com/MKhiriev/sales-admin/internal/crypto"
	"github.com/MKhiriev/sales-admin/internal/logger"
	"github.com/MKhiriev/sales-admin/internal/service"
	"github.com/MKhiriev/sales-admin/internal/store"
	"github.com/MKhiriev/sales-admin/internal/tui"
	"github.com/MKhiriev/sales-admin/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	log := logger.NewClientLogger("sales-admin", cfg.App.LogFile)
	log.Info().Str("build", buildInfo.String()).Msg("starting dashboard")

	sealer, err := crypto.NewTokenSealer(cfg.App.HashKey)
	if err != nil {
		log.Fatal().Err(err).Msg("create token sealer")
	}

	ctx := context.Background()
	storages, err := store.NewClientStorages(ctx, cfg.Storage, sealer, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		_ = storages.Close()
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services := service.NewClientServices(storages, serverAdapter, cfg.App, log)
	ui := tui.New(services, buildInfo, log)

	app, err := client.NewApp(services, ui, storages, cfg.Workers, log)
	if err != nil {
		_ = storages.Close()
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
