package config

import "time"

// Base Mainnet is the only network the marketplace settles on.
const (
	BaseMainnetChainID     = 8453
	BaseMainnetName        = "Base Mainnet"
	BaseMainnetRPCURL      = "https://mainnet.base.org"
	BaseMainnetExplorerURL = "https://base.blockscout.com/"
)

// ZeroAddress disables on-chain minting when used as the NFT contract.
const ZeroAddress = "0x0000000000000000000000000000000000000000"

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:          "UniBrain",
			URL:           "http://localhost:5173",
			SplashBgColor: "#ffffff",
			TokenIssuer:   "unibrain",
			TokenDuration: 24 * time.Hour,
		},
		Storage: Storage{
			Local: LocalStorage{
				DSN:      "unibrain.db",
				FilesDir: "files",
			},
			Remote: RemoteStorage{
				Timeout: 15 * time.Second,
			},
		},
		Chain: Chain{
			RPCURL:             BaseMainnetRPCURL,
			ID:                 BaseMainnetChainID,
			Name:               BaseMainnetName,
			ExplorerURL:        BaseMainnetExplorerURL,
			NFTContractAddress: ZeroAddress,
		},
		AI: AI{
			BaseURL:     "https://api.openai.com/v1",
			Model:       "gpt-3.5-turbo",
			MaxTokens:   500,
			Temperature: 0.7,
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Workers: Workers{
			QueueName:   "unibrain:nft",
			Concurrency: 1,
		},
	}
}

// HeroImageURL returns the configured hero image or the one served next to
// the app.
func (a App) HeroImageURL() string {
	if a.HeroImage != "" {
		return a.HeroImage
	}
	return a.URL + "/hero.png"
}

// SplashImageURL returns the configured splash image or the one served next
// to the app.
func (a App) SplashImageURL() string {
	if a.SplashImage != "" {
		return a.SplashImage
	}
	return a.URL + "/splash.png"
}
