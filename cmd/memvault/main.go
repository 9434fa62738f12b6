package main

import (
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/memvault/memvault/internal/adapter"
	"github.com/memvault/memvault/internal/client"
	"github.com/memvault/memvault/internal/config"
	"github.com/memvault/memvault/internal/logger"
	"github.com/memvault/memvault/internal/notify"
	"github.com/memvault/memvault/internal/service"
	"github.com/memvault/memvault/internal/store"
	"github.com/memvault/memvault/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("memvault")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	backend, err := adapter.NewHTTPBackendAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create backend adapter")
	}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	notifier := notify.NewDesktopNotifier(cfg.App.Name, log)
	services := service.NewClientServices(cfg, storages, backend, notifier, clockwork.NewRealClock(), log)

	ui, err := tui.New(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, storages, backend, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
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
