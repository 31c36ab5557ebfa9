package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/unibrain/internal/ai"
	"github.com/MKhiriev/unibrain/internal/config"
	"github.com/MKhiriev/unibrain/internal/handler"
	"github.com/MKhiriev/unibrain/internal/logger"
	"github.com/MKhiriev/unibrain/internal/queue"
	"github.com/MKhiriev/unibrain/internal/server"
	"github.com/MKhiriev/unibrain/internal/service"
	"github.com/MKhiriev/unibrain/internal/store"
	"github.com/MKhiriev/unibrain/internal/wallet"
	"github.com/MKhiriev/unibrain/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("unibrain-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	q, err := queue.New(ctx, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating nft queue")
	}
	defer q.Close()

	services, err := service.NewServices(service.Dependencies{
		Adapter:    storages.Adapter,
		Network:    wallet.NetworkFromConfig(cfg.Chain),
		Summarizer: ai.NewSummarizer(cfg.AI, log),
		Queue:      q,
	}, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	w := workers.NewWorkers(
		workers.NewNFTWorker(q, services.NFTService.HandleJob, cfg.Workers.Concurrency, log),
	)

	srv, err := server.NewServer(handlers, w, cfg.Server, log)
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
