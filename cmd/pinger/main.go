package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-draft-keeper/internal/adapter"
	"github.com/MKhiriev/go-draft-keeper/internal/client"
	"github.com/MKhiriev/go-draft-keeper/internal/config"
	"github.com/MKhiriev/go-draft-keeper/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("draft-keeper-pinger")
	cfg, err := config.GetPingerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	app, err := client.NewApp(serverAdapter, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init pinger app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	err = app.Run(ctx)
	if errors.Is(err, client.ErrSessionLost) {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("pinger run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
