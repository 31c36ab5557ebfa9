package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

type configBuilder struct {
	configs []*StructuredConfig
	args    []string
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
		args:    os.Args[1:],
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

// withDotEnv loads variables from the dotenv file into the process
// environment. Variables that are already set are left untouched.
func (b *configBuilder) withDotEnv() *configBuilder {
	path := os.Getenv("ENV_FILE")
	explicit := path != ""
	if !explicit {
		path = defaultEnvFile
	}

	if _, err := os.Stat(path); err != nil {
		if explicit {
			b.err = errors.Join(b.err, fmt.Errorf("error reading env file: %w", err))
		}
		return b
	}

	if err := godotenv.Load(path); err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error loading env file: %w", err))
	}

	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags, err := parseFlags(b.args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withFile() *configBuilder {
	var path string
	for _, cfg := range b.configs {
		if cfg.FilePath != "" {
			path = cfg.FilePath
		}
	}

	if path == "" {
		return b
	}

	fileCfg, err := parseFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, fileCfg)

	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaultConfig())
	return b
}
