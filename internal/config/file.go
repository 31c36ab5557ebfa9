package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk layout of a JSON or YAML configuration file.
type FileConfig struct {
	App struct {
		Name          string   `json:"name" yaml:"name"`
		URL           string   `json:"url" yaml:"url"`
		HeroImage     string   `json:"hero_image" yaml:"hero_image"`
		SplashImage   string   `json:"splash_image" yaml:"splash_image"`
		SplashBgColor string   `json:"splash_bg_color" yaml:"splash_bg_color"`
		Version       string   `json:"version" yaml:"version"`
		TokenSignKey  string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer" yaml:"token_issuer"`
		TokenDuration Duration `json:"token_duration" yaml:"token_duration"`
	} `json:"app" yaml:"app"`

	Storage struct {
		Local struct {
			DSN      string `json:"dsn" yaml:"dsn"`
			FilesDir string `json:"files_dir" yaml:"files_dir"`
		} `json:"local" yaml:"local"`
		Remote struct {
			URL     string   `json:"url" yaml:"url"`
			APIKey  string   `json:"api_key" yaml:"api_key"`
			DSN     string   `json:"dsn" yaml:"dsn"`
			Timeout Duration `json:"timeout" yaml:"timeout"`
		} `json:"remote" yaml:"remote"`
		Minio struct {
			Endpoint  string `json:"endpoint" yaml:"endpoint"`
			AccessKey string `json:"access_key" yaml:"access_key"`
			SecretKey string `json:"secret_key" yaml:"secret_key"`
			Bucket    string `json:"bucket" yaml:"bucket"`
			UseSSL    bool   `json:"use_ssl" yaml:"use_ssl"`
		} `json:"minio" yaml:"minio"`
	} `json:"storage" yaml:"storage"`

	Chain struct {
		RPCURL             string `json:"rpc_url" yaml:"rpc_url"`
		ID                 int64  `json:"id" yaml:"id"`
		Name               string `json:"name" yaml:"name"`
		ExplorerURL        string `json:"explorer_url" yaml:"explorer_url"`
		NFTContractAddress string `json:"nft_contract_address" yaml:"nft_contract_address"`
	} `json:"chain" yaml:"chain"`

	Wallet struct {
		PrivateKey string `json:"private_key" yaml:"private_key"`
	} `json:"wallet" yaml:"wallet"`

	AI struct {
		APIKey      string  `json:"api_key" yaml:"api_key"`
		BaseURL     string  `json:"base_url" yaml:"base_url"`
		Model       string  `json:"model" yaml:"model"`
		MaxTokens   int     `json:"max_tokens" yaml:"max_tokens"`
		Temperature float64 `json:"temperature" yaml:"temperature"`
	} `json:"ai" yaml:"ai"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"server" yaml:"server"`

	Workers struct {
		RedisAddr     string `json:"redis_addr" yaml:"redis_addr"`
		RedisPassword string `json:"redis_password" yaml:"redis_password"`
		QueueName     string `json:"queue_name" yaml:"queue_name"`
		Concurrency   int    `json:"concurrency" yaml:"concurrency"`
	} `json:"workers" yaml:"workers"`
}

func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err = json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return fileCfg.toStructured(), nil
}

func (f *FileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:          f.App.Name,
			URL:           f.App.URL,
			HeroImage:     f.App.HeroImage,
			SplashImage:   f.App.SplashImage,
			SplashBgColor: f.App.SplashBgColor,
			Version:       f.App.Version,
			TokenSignKey:  f.App.TokenSignKey,
			TokenIssuer:   f.App.TokenIssuer,
			TokenDuration: time.Duration(f.App.TokenDuration),
		},
		Storage: Storage{
			Local: LocalStorage{
				DSN:      f.Storage.Local.DSN,
				FilesDir: f.Storage.Local.FilesDir,
			},
			Remote: RemoteStorage{
				URL:     f.Storage.Remote.URL,
				APIKey:  f.Storage.Remote.APIKey,
				DSN:     f.Storage.Remote.DSN,
				Timeout: time.Duration(f.Storage.Remote.Timeout),
			},
			Minio: Minio{
				Endpoint:  f.Storage.Minio.Endpoint,
				AccessKey: f.Storage.Minio.AccessKey,
				SecretKey: f.Storage.Minio.SecretKey,
				Bucket:    f.Storage.Minio.Bucket,
				UseSSL:    f.Storage.Minio.UseSSL,
			},
		},
		Chain: Chain{
			RPCURL:             f.Chain.RPCURL,
			ID:                 f.Chain.ID,
			Name:               f.Chain.Name,
			ExplorerURL:        f.Chain.ExplorerURL,
			NFTContractAddress: f.Chain.NFTContractAddress,
		},
		Wallet: Wallet{PrivateKey: f.Wallet.PrivateKey},
		AI: AI{
			APIKey:      f.AI.APIKey,
			BaseURL:     f.AI.BaseURL,
			Model:       f.AI.Model,
			MaxTokens:   f.AI.MaxTokens,
			Temperature: f.AI.Temperature,
		},
		Server: Server{
			HTTPAddress:    f.Server.HTTPAddress,
			RequestTimeout: time.Duration(f.Server.RequestTimeout),
		},
		Workers: Workers{
			RedisAddr:     f.Workers.RedisAddr,
			RedisPassword: f.Workers.RedisPassword,
			QueueName:     f.Workers.QueueName,
			Concurrency:   f.Workers.Concurrency,
		},
	}
}

// Duration is a wrapper around time.Duration that supports decoding from
// strings like "1h", "30s" in both JSON and YAML.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %v", v)
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	tmp, err := time.ParseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", node.Value, err)
	}
	*d = Duration(tmp)
	return nil
}
