// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// validate checks invariants shared by the client and the server.
func (cfg *StructuredConfig) validate() error {
	if addr := cfg.Chain.NFTContractAddress; addr != "" && !common.IsHexAddress(addr) {
		return ErrInvalidChainConfigs
	}

	if cfg.Workers.Concurrency < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.Local.DSN == "" || strings.Contains(cfg.Storage.Local.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Chain.RPCURL == "" || cfg.Chain.ID <= 0 {
		return ErrInvalidChainConfigs
	}

	if cfg.App.Name == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Storage.Local.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 || cfg.App.URL == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
