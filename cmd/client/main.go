package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/unibrain/internal/ai"
	"github.com/MKhiriev/unibrain/internal/client"
	"github.com/MKhiriev/unibrain/internal/config"
	"github.com/MKhiriev/unibrain/internal/contracts"
	"github.com/MKhiriev/unibrain/internal/logger"
	"github.com/MKhiriev/unibrain/internal/queue"
	"github.com/MKhiriev/unibrain/internal/service"
	"github.com/MKhiriev/unibrain/internal/store"
	"github.com/MKhiriev/unibrain/internal/tui"
	"github.com/MKhiriev/unibrain/internal/wallet"
	"github.com/MKhiriev/unibrain/internal/workers"
	"github.com/MKhiriev/unibrain/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("unibrain-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create storages")
	}

	network := wallet.NetworkFromConfig(cfg.Chain)
	// Without a wallet the marketplace stays browsable; paying and minting
	// report ErrProviderMissing.
	var (
		provider wallet.Provider
		contract *contracts.NFTContract
		events   <-chan wallet.Event
	)
	provider, err = wallet.NewKeyedProvider(ctx, cfg.Wallet.PrivateKey, network, log)
	if err != nil {
		log.Warn().Err(err).Msg("no wallet available, running read-only")
		provider = nil
	} else {
		contract, err = contracts.NewNFTContract(provider, cfg.Chain.NFTContractAddress)
		if err != nil {
			log.Fatal().Err(err).Msg("create nft contract")
		}
		events = provider.Events()
	}

	q, err := queue.New(ctx, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create nft queue")
	}

	services, err := service.NewClientServices(service.Dependencies{
		Adapter:    storages.Adapter,
		Provider:   provider,
		Network:    network,
		Summarizer: ai.NewSummarizer(cfg.AI, log),
		Contract:   contract,
		Queue:      q,
	}, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui, err := tui.New(services, network, buildInfo, events, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	w := workers.NewWorkers(
		workers.NewNFTWorker(q, services.NFTService.HandleJob, cfg.Workers.Concurrency, log),
	)

	app, err := client.NewApp(ui, w, log, q.Close, storages.Close)
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
