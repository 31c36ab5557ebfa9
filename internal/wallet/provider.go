// Package wallet abstracts the user's wallet: account access, network
// switching, native transfers, receipts and message signing. The keyed
// implementation signs locally with a secp256k1 key and talks to the network
// over JSON-RPC.
package wallet

import (
	"context"
	"math/big"
)

//go:generate mockgen -source=provider.go -destination=../mock/wallet_provider_mock.go -package=mock

// EventKind distinguishes wallet notifications.
type EventKind int

const (
	AccountsChanged EventKind = iota + 1
	ChainChanged
)

// Event is a wallet notification. Accounts is set for AccountsChanged,
// ChainID for ChainChanged.
type Event struct {
	Kind     EventKind
	Accounts []string
	ChainID  int64
}

// TxRequest is a transaction to be signed and sent. A zero GasLimit is
// estimated.
type TxRequest struct {
	From     string
	To       string
	Value    *big.Int
	GasLimit uint64
	Data     []byte
}

// Receipt is the outcome of a mined transaction. Status 1 means success.
type Receipt struct {
	TxHash      string
	Status      uint64
	BlockNumber uint64
}

// Provider is the wallet used by the session and payment flows.
type Provider interface {
	// RequestAccounts asks the wallet for access and returns its accounts.
	RequestAccounts(ctx context.Context) ([]string, error)
	// Accounts returns the accounts already granted.
	Accounts(ctx context.Context) ([]string, error)
	ChainID(ctx context.Context) (int64, error)
	// SwitchChain fails with a code 4902 [ProviderError] when the chain is
	// unknown to the wallet.
	SwitchChain(ctx context.Context, chainID int64) error
	AddChain(ctx context.Context, network Network) error
	SendTransaction(ctx context.Context, req TxRequest) (string, error)
	// WaitForReceipt blocks until the transaction is mined or ctx is done.
	WaitForReceipt(ctx context.Context, txHash string) (*Receipt, error)
	PersonalSign(ctx context.Context, message, address string) (string, error)
	Balance(ctx context.Context, address string) (*big.Int, error)
	// Events delivers account and chain changes.
	Events() <-chan Event
}
