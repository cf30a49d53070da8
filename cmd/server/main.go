package main

import (
	"context"
	"fmt"

	"github.com/truenamepath/truenamepath/internal/config"
	"github.com/truenamepath/truenamepath/internal/handler"
	"github.com/truenamepath/truenamepath/internal/logger"
	"github.com/truenamepath/truenamepath/internal/server"
	"github.com/truenamepath/truenamepath/internal/service"
	"github.com/truenamepath/truenamepath/internal/store"
	"github.com/truenamepath/truenamepath/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("truenamepath-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	services, err := service.NewServices(*storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	seedDemoClient(ctx, services, cfg.OAuth, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// seedDemoClient registers the bundled demo OAuth client when its seed
// configuration is present. A failed seed is logged but does not stop the
// server: the dashboard works without any registered client.
func seedDemoClient(ctx context.Context, services *service.Services, cfg config.OAuth, log *logger.Logger) {
	if cfg.DemoClientID == "" || cfg.DemoClientSecret == "" || cfg.DemoRedirectURI == "" {
		return
	}

	err := services.OAuthService.SeedClient(
		ctx,
		cfg.DemoClientID,
		cfg.DemoClientSecret,
		"TrueNamePath Demo",
		cfg.DemoRedirectURI,
		"",
	)
	if err != nil {
		log.Err(err).Str("client_id", cfg.DemoClientID).Msg("error seeding demo oauth client")
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
