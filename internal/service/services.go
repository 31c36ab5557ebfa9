package service

import (
	"github.com/MKhiriev/unibrain/internal/ai"
	"github.com/MKhiriev/unibrain/internal/config"
	"github.com/MKhiriev/unibrain/internal/contracts"
	"github.com/MKhiriev/unibrain/internal/logger"
	"github.com/MKhiriev/unibrain/internal/queue"
	"github.com/MKhiriev/unibrain/internal/store"
	"github.com/MKhiriev/unibrain/internal/validators"
	"github.com/MKhiriev/unibrain/internal/wallet"
)

// Dependencies are the collaborators shared by the services of both
// binaries. Provider and Contract are nil on the server.
type Dependencies struct {
	Adapter    *store.Adapter
	Provider   wallet.Provider
	Network    wallet.Network
	Summarizer *ai.Summarizer
	Contract   *contracts.NFTContract
	Queue      queue.Queue
}

// ClientServices back the terminal client.
type ClientServices struct {
	SessionService     SessionService
	PaymentService     PaymentService
	NFTService         NFTService
	MarketplaceService MarketplaceService
	AppInfoService     AppInfoService
}

func NewClientServices(deps Dependencies, cfg config.App, logger *logger.Logger) (*ClientServices, error) {
	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	session := NewSessionService(deps.Provider, deps.Network, deps.Adapter, logger)

	return &ClientServices{
		SessionService:     session,
		PaymentService:     NewPaymentService(deps.Provider, deps.Network, deps.Adapter, deps.Queue, logger),
		NFTService:         NewNFTService(deps.Adapter, deps.Summarizer, deps.Contract, deps.Queue, logger),
		MarketplaceService: NewMarketplaceService(deps.Adapter, session, validators.NewDocumentValidator(), deps.Summarizer, logger),
		AppInfoService:     appInfo,
	}, nil
}

// Services back the HTTP server.
type Services struct {
	AuthService        AuthService
	MarketplaceService MarketplaceService
	PaymentService     PaymentService
	NFTService         NFTService
	MiniAppService     MiniAppService
	AppInfoService     AppInfoService
}

func NewServices(deps Dependencies, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewDocumentValidator()
	// the server has no wallet of its own, so its session is never authenticated
	session := NewSessionService(nil, deps.Network, deps.Adapter, logger)

	return &Services{
		AuthService:        NewAuthService(deps.Adapter, validator, cfg, logger),
		MarketplaceService: NewMarketplaceService(deps.Adapter, session, validator, deps.Summarizer, logger),
		PaymentService:     NewPaymentService(nil, deps.Network, deps.Adapter, deps.Queue, logger),
		NFTService:         NewNFTService(deps.Adapter, deps.Summarizer, nil, deps.Queue, logger),
		MiniAppService:     NewMiniAppService(cfg, logger),
		AppInfoService:     appInfo,
	}, nil
}
