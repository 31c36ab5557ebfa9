// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// UniBrain client and server. It aggregates all sub-configurations and is
// populated by merging values from a dotenv file, environment variables,
// command-line flags, an optional JSON/YAML file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application identity, mini-app frame settings and JWT
	// parameters.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local store, the hosted backend
	// and the optional S3-compatible object storage.
	Storage Storage `envPrefix:"STORAGE_"`

	// Chain describes the target network and the NFT contract.
	Chain Chain `envPrefix:"CHAIN_"`

	// Wallet holds the signing key used by the client wallet provider.
	Wallet Wallet `envPrefix:"WALLET_"`

	// AI holds the generative text backend settings.
	AI AI `envPrefix:"AI_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for the NFT generation queue.
	Workers Workers `envPrefix:"WORKERS_"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// The format is chosen by the file extension (.yaml/.yml, otherwise JSON).
	// Populated via the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG"`

	// EnvFilePath is the optional path to a dotenv file loaded before the
	// environment is parsed. Defaults to ".env" when that file exists.
	EnvFilePath string `env:"ENV_FILE"`
}

// App holds application-level configuration.
type App struct {
	// Name is the display name of the application.
	// Env: APP_NAME
	Name string `env:"NAME"`

	// URL is the public URL of the mini-app.
	// Env: APP_URL
	URL string `env:"URL"`

	// HeroImage is the frame image URL. Defaults to <URL>/hero.png.
	// Env: APP_HERO_IMAGE
	HeroImage string `env:"HERO_IMAGE"`

	// SplashImage is the splash image URL. Defaults to <URL>/splash.png.
	// Env: APP_SPLASH_IMAGE
	SplashImage string `env:"SPLASH_IMAGE"`

	// SplashBgColor is the splash background color.
	// Env: APP_SPLASH_BG_COLOR
	SplashBgColor string `env:"SPLASH_BG_COLOR"`

	// Version is exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	Local  LocalStorage  `envPrefix:"LOCAL_"`
	Remote RemoteStorage `envPrefix:"REMOTE_"`
	Minio  Minio         `envPrefix:"MINIO_"`
}

// LocalStorage configures the on-device store.
type LocalStorage struct {
	// DSN is the SQLite file holding the local key-value table.
	// Env: STORAGE_LOCAL_DSN
	DSN string `env:"DSN"`

	// FilesDir is where uploaded files are kept when no remote object
	// storage is available.
	// Env: STORAGE_LOCAL_FILES_DIR
	FilesDir string `env:"FILES_DIR"`
}

// RemoteStorage configures the hosted backend. Remote mode is selected only
// when URL and APIKey are both present and not placeholders.
type RemoteStorage struct {
	// URL is the base URL of the hosted backend.
	// Env: STORAGE_REMOTE_URL
	URL string `env:"URL"`

	// APIKey is the anonymous API key of the hosted backend.
	// Env: STORAGE_REMOTE_API_KEY
	APIKey string `env:"API_KEY"`

	// DSN, when set, makes table operations go straight to Postgres instead
	// of the REST API.
	// Env: STORAGE_REMOTE_DSN
	DSN string `env:"DSN"`

	// Timeout bounds every outbound request to the backend.
	// Env: STORAGE_REMOTE_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Minio configures an optional S3-compatible object storage.
type Minio struct {
	Endpoint  string `env:"ENDPOINT"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`
	Bucket    string `env:"BUCKET"`
	UseSSL    bool   `env:"USE_SSL"`
}

// Chain describes the target network.
type Chain struct {
	// RPCURL is the JSON-RPC endpoint of the network.
	// Env: CHAIN_RPC_URL
	RPCURL string `env:"RPC_URL"`

	// ID is the numeric chain id (8453 for Base Mainnet).
	// Env: CHAIN_ID
	ID int64 `env:"ID"`

	// Name is the human readable network name.
	// Env: CHAIN_NAME
	Name string `env:"NAME"`

	// ExplorerURL is the block explorer base URL.
	// Env: CHAIN_EXPLORER_URL
	ExplorerURL string `env:"EXPLORER_URL"`

	// NFTContractAddress is the ERC-721 contract. The zero address disables
	// on-chain minting.
	// Env: CHAIN_NFT_CONTRACT_ADDRESS
	NFTContractAddress string `env:"NFT_CONTRACT_ADDRESS"`
}

// Wallet configures the client wallet provider.
type Wallet struct {
	// PrivateKey is the hex encoded secp256k1 key of the user's account.
	// Env: WALLET_PRIVATE_KEY
	PrivateKey string `env:"PRIVATE_KEY"`
}

// AI configures the generative text backend.
type AI struct {
	// APIKey enables real summaries. Without it mock summaries are produced.
	// Env: AI_API_KEY
	APIKey      string  `env:"API_KEY"`
	BaseURL     string  `env:"BASE_URL"`
	Model       string  `env:"MODEL"`
	MaxTokens   int     `env:"MAX_TOKENS"`
	Temperature float64 `env:"TEMPERATURE"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers configures the NFT generation queue. An empty RedisAddr selects
// the in-process queue.
type Workers struct {
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	QueueName     string `env:"QUEUE_NAME"`
	Concurrency   int    `env:"CONCURRENCY"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration. Sources are consulted in the following priority order
// (an earlier source wins for every non-zero field):
//  1. Environment variables (including those loaded from the dotenv file)
//  2. Command-line flags
//  3. JSON/YAML file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags().
		withFile().
		withDefaults().
		build()
}
