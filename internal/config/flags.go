package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d local database DSN
//	-f local files directory
//	-remote-url hosted backend URL
//	-remote-key hosted backend API key
//	-rpc network JSON-RPC endpoint
//	-chain-id network chain id
//	-nft-contract NFT contract address
//	-wallet-key wallet private key (hex)
//	-ai-key generative backend API key
//	-redis Redis address for the NFT queue
//	-c/-config JSON or YAML file path with configs
//	-env-file dotenv file path
//	-token-sign-key token signing key
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("unibrain", flag.ContinueOnError)

	var serverAddress NetAddress
	var localDSN, filesDir string
	var remoteURL, remoteKey string
	var rpcURL, nftContract string
	var chainID int64
	var walletKey, aiKey, redisAddr string
	var configPath, envFile string
	var tokenSignKey string
	var tokenDuration, requestTimeout time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&localDSN, "d", "", "Local database DSN")
	fs.StringVar(&filesDir, "f", "", "Local files directory")
	fs.StringVar(&remoteURL, "remote-url", "", "Hosted backend URL")
	fs.StringVar(&remoteKey, "remote-key", "", "Hosted backend API key")
	fs.StringVar(&rpcURL, "rpc", "", "Network JSON-RPC endpoint")
	fs.Int64Var(&chainID, "chain-id", 0, "Network chain id")
	fs.StringVar(&nftContract, "nft-contract", "", "NFT contract address")
	fs.StringVar(&walletKey, "wallet-key", "", "Wallet private key (hex)")
	fs.StringVar(&aiKey, "ai-key", "", "Generative backend API key")
	fs.StringVar(&redisAddr, "redis", "", "Redis address for the NFT queue")
	fs.StringVar(&configPath, "c", "", "JSON/YAML config file path")
	fs.StringVar(&configPath, "config", "", "JSON/YAML config file path (alias)")
	fs.StringVar(&envFile, "env-file", "", "Dotenv file path")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			Local:  LocalStorage{DSN: localDSN, FilesDir: filesDir},
			Remote: RemoteStorage{URL: remoteURL, APIKey: remoteKey},
		},
		Chain: Chain{
			RPCURL:             rpcURL,
			ID:                 chainID,
			NFTContractAddress: nftContract,
		},
		Wallet:  Wallet{PrivateKey: walletKey},
		AI:      AI{APIKey: aiKey},
		Workers: Workers{RedisAddr: redisAddr},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		FilePath:    configPath,
		EnvFilePath: envFile,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
