package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty local DSN or an in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing token sign key on the server).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidChainConfigs indicates an unusable network description
	// (for example, a malformed NFT contract address).
	ErrInvalidChainConfigs = errors.New("invalid chain configuration")
	// ErrInvalidServerConfigs indicates missing listen address or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, negative concurrency).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
