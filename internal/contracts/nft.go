// Package contracts wraps the on-chain ERC-721 contract the marketplace mints
// ownership tokens on.
package contracts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/MKhiriev/unibrain/internal/wallet"
)

// ErrContractDisabled is returned when the contract address is the zero
// address.
var ErrContractDisabled = errors.New("nft contract not configured")

// Only the functions we call.
const nftABI = `[
{"inputs":[{"internalType":"address","name":"to","type":"address"},{"internalType":"string","name":"tokenURI","type":"string"}],"name":"mint","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"nonpayable","type":"function"}
]`

// Backend sends contract transactions. wallet.Provider satisfies it.
type Backend interface {
	SendTransaction(ctx context.Context, req wallet.TxRequest) (string, error)
}

// NFTContract wraps the ERC-721 contract interactions.
type NFTContract struct {
	backend Backend
	address common.Address
	abi     abi.ABI
}

// NewNFTContract creates a new NFTContract instance.
func NewNFTContract(backend Backend, address string) (*NFTContract, error) {
	if address != "" && !common.IsHexAddress(address) {
		return nil, fmt.Errorf("invalid nft contract address %q", address)
	}

	parsedABI, err := abi.JSON(strings.NewReader(nftABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse nft ABI: %w", err)
	}

	return &NFTContract{
		backend: backend,
		address: common.HexToAddress(address),
		abi:     parsedABI,
	}, nil
}

// Address returns the lower-cased contract address.
func (c *NFTContract) Address() string {
	return strings.ToLower(c.address.Hex())
}

// Enabled reports whether minting is possible.
func (c *NFTContract) Enabled() bool {
	return c.address != (common.Address{})
}

// Mint submits mint(to, tokenURI) from the sender account and returns the
// transaction hash without waiting for it to be mined.
func (c *NFTContract) Mint(ctx context.Context, from, to, tokenURI string) (string, error) {
	if !c.Enabled() {
		return "", ErrContractDisabled
	}
	if !common.IsHexAddress(to) {
		return "", fmt.Errorf("invalid recipient address %q", to)
	}

	callData, err := c.abi.Pack("mint", common.HexToAddress(to), tokenURI)
	if err != nil {
		return "", fmt.Errorf("failed to pack call data: %w", err)
	}

	hash, err := c.backend.SendTransaction(ctx, wallet.TxRequest{
		From: from,
		To:   c.address.Hex(),
		Data: callData,
	})
	if err != nil {
		return "", fmt.Errorf("failed to send mint: %w", err)
	}

	return hash, nil
}
