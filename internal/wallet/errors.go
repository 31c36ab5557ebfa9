package wallet

import (
	"errors"
	"fmt"
)

// EIP-1193 / EIP-3085 provider error codes.
const (
	CodeUserRejected      = 4001
	CodeUnauthorized      = 4100
	CodeUnsupportedMethod = 4200
	CodeDisconnected      = 4900
	CodeChainNotAdded     = 4902
)

var (
	// ErrProviderMissing is returned when no wallet is available at all.
	ErrProviderMissing = errors.New("wallet provider not available")

	// ErrNoAccount is returned when the wallet exposes no account.
	ErrNoAccount = errors.New("no account selected")

	// ErrUserRejected matches a [ProviderError] with code 4001.
	ErrUserRejected = errors.New("user rejected the request")

	// ErrChainNotAdded matches a [ProviderError] with code 4902.
	ErrChainNotAdded = errors.New("chain has not been added to the wallet")

	// ErrTransactionFailed is returned when a mined transaction reverted.
	ErrTransactionFailed = errors.New("transaction failed")

	// ErrInvalidSignature is returned when a signature cannot be decoded or
	// recovered.
	ErrInvalidSignature = errors.New("invalid signature")
)

// ProviderError is a coded wallet error.
type ProviderError struct {
	Code    int
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error %d: %s", e.Code, e.Message)
}

// Is lets errors.Is match a coded error against the package sentinels.
func (e *ProviderError) Is(target error) bool {
	switch target {
	case ErrUserRejected:
		return e.Code == CodeUserRejected
	case ErrChainNotAdded:
		return e.Code == CodeChainNotAdded
	}
	return false
}
