package main

import (
	"context"
	"fmt"

	"github.com/aivahq/aiva/internal/config"
	myHTTP "github.com/aivahq/aiva/internal/handler/http"
	"github.com/aivahq/aiva/internal/logger"
	"github.com/aivahq/aiva/internal/server"
	"github.com/aivahq/aiva/internal/service"
	"github.com/aivahq/aiva/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("aiva-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = cfg.ValidateServer(); err != nil {
		log.Fatal().Err(err).Msg("invalid server configuration")
	}

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	repositories, err := store.NewRepositories(db, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating repositories")
	}

	if err = repositories.SeedAvatars(ctx, log); err != nil {
		log.Fatal().Err(err).Msg("error seeding avatars")
	}

	services := service.NewServices(repositories, *cfg, log)
	handler := myHTTP.NewHandler(services, cfg.Server, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
