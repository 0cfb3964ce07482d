package main

import (
	"context"
	"fmt"

	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/internal/config"
	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/internal/handler"
	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/internal/logger"
	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/internal/server"
	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/internal/service"
	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("stroke-records-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(*storages, *cfg, log)

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
