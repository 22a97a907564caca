// Command salesctl is the non-interactive companion of the dashboard. It
// shares the local session store, so a login in one is seen by the other.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/sales-admin/internal/adapter"
	"github.com/MKhiriev/sales-admin/internal/config"
	"github.com/MKhiriev/sales-admin/internal/crypto"
	"github.com/MKhiriev/sales-admin/internal/logger"
	"github.com/MKhiriev/sales-admin/internal/service"
	"github.com/MKhiriev/sales-admin/internal/store"
	"github.com/MKhiriev/sales-admin/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		color.Red("Error: %v\n", err)
		return 2
	}

	log := logger.NewLogger("salesctl")
	log.Logger = log.Level(zerolog.WarnLevel)

	sealer, err := crypto.NewTokenSealer(cfg.App.HashKey)
	if err != nil {
		color.Red("Error: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, sealer, log)
	if err != nil {
		color.Red("Error: open local store: %v\n", err)
		return 1
	}
	defer storages.Close()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		color.Red("Error: %v\n", err)
		return 1
	}

	c := &cli{
		services:  service.NewClientServices(storages, serverAdapter, cfg.App, log),
		buildInfo: models.NewBuildInfo(buildVersion, buildDate, buildCommit),
		in:        os.Stdin,
		out:       os.Stdout,
		password:  os.Getenv("SALESCTL_PASSWORD"),
	}

	if err = c.run(ctx, cfg.Args); err != nil {
		color.Red("Error: %s\n", service.UserMessage(err))
		if errors.Is(err, errUsage) || errors.Is(err, errEmailMissing) {
			return 2
		}
		return 1
	}
	return 0
}
