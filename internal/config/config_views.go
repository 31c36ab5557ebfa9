package config

import "fmt"

// ClientConfig is the configuration view used by the terminal client.
type ClientConfig struct {
	App     App
	Storage Storage
	Chain   Chain
	Wallet  Wallet
	AI      AI
	Workers Workers
}

// ServerConfig is the configuration view used by the mini-app HTTP server.
// The server never signs transactions, so it carries no wallet key.
type ServerConfig struct {
	App     App
	Storage Storage
	Chain   Chain
	AI      AI
	Server  Server
	Workers Workers
}

// GetClientConfig builds and validates the client view from the merged
// structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.ClientView()
	return clientCfg, clientCfg.validate()
}

// GetServerConfig builds and validates the server view from the merged
// structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := cfg.ServerView()
	return serverCfg, serverCfg.validate()
}

// ClientView maps the fields relevant to the client runtime.
func (cfg *StructuredConfig) ClientView() *ClientConfig {
	return &ClientConfig{
		App:     cfg.App,
		Storage: cfg.Storage,
		Chain:   cfg.Chain,
		Wallet:  cfg.Wallet,
		AI:      cfg.AI,
		Workers: cfg.Workers,
	}
}

// ServerView maps the fields relevant to the HTTP server runtime.
func (cfg *StructuredConfig) ServerView() *ServerConfig {
	return &ServerConfig{
		App:     cfg.App,
		Storage: cfg.Storage,
		Chain:   cfg.Chain,
		AI:      cfg.AI,
		Server:  cfg.Server,
		Workers: cfg.Workers,
	}
}
