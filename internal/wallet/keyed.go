package wallet

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/MKhiriev/unibrain/internal/logger"
)

// TransferGasLimit is the gas of a plain value transfer.
const TransferGasLimit uint64 = 21000

const (
	defaultPollInterval = 2 * time.Second
	eventBuffer         = 8
)

// chainClient is the subset of *ethclient.Client the provider uses.
type chainClient interface {
	ChainID(ctx context.Context) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	Close()
}

type dialFunc func(ctx context.Context, rpcURL string) (chainClient, error)

func dialEthereum(ctx context.Context, rpcURL string) (chainClient, error) {
	return ethclient.DialContext(ctx, rpcURL)
}

type keyedProvider struct {
	mu        sync.Mutex
	key       *ecdsa.PrivateKey
	address   common.Address
	granted   bool
	client    chainClient
	chainID   int64
	networks  map[int64]Network
	dial      dialFunc
	pollEvery time.Duration
	events    chan Event
	logger    *logger.Logger
}

// NewKeyedProvider connects to network and signs with the hex encoded
// private key. An empty key yields [ErrProviderMissing].
func NewKeyedProvider(ctx context.Context, privateKey string, network Network, log *logger.Logger) (Provider, error) {
	p, err := newKeyedProvider(ctx, privateKey, network, dialEthereum, log)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func newKeyedProvider(ctx context.Context, privateKey string, network Network, dial dialFunc, log *logger.Logger) (*keyedProvider, error) {
	privateKey = strings.TrimPrefix(strings.TrimSpace(privateKey), "0x")
	if privateKey == "" {
		return nil, ErrProviderMissing
	}

	key, err := crypto.HexToECDSA(privateKey)
	if err != nil {
		return nil, fmt.Errorf("invalid wallet private key: %w", err)
	}

	client, err := dial(ctx, network.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("error connecting to %s: %w", network.Name, err)
	}

	id, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("error reading chain id: %w", err)
	}
	network.ChainID = id.Int64()

	return &keyedProvider{
		key:       key,
		address:   crypto.PubkeyToAddress(key.PublicKey),
		client:    client,
		chainID:   network.ChainID,
		networks:  map[int64]Network{network.ChainID: network},
		dial:      dial,
		pollEvery: defaultPollInterval,
		events:    make(chan Event, eventBuffer),
		logger:    log,
	}, nil
}

func (p *keyedProvider) RequestAccounts(ctx context.Context) ([]string, error) {
	p.mu.Lock()
	p.granted = true
	p.mu.Unlock()

	return p.Accounts(ctx)
}

func (p *keyedProvider) Accounts(_ context.Context) ([]string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.granted {
		return []string{}, nil
	}
	return []string{strings.ToLower(p.address.Hex())}, nil
}

func (p *keyedProvider) ChainID(_ context.Context) (int64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.chainID, nil
}

func (p *keyedProvider) SwitchChain(ctx context.Context, chainID int64) error {
	p.mu.Lock()
	if p.chainID == chainID {
		p.mu.Unlock()
		return nil
	}
	network, ok := p.networks[chainID]
	p.mu.Unlock()

	if !ok {
		return &ProviderError{Code: CodeChainNotAdded, Message: fmt.Sprintf("unrecognized chain id 0x%x", chainID)}
	}

	client, err := p.dial(ctx, network.RPCURL)
	if err != nil {
		return fmt.Errorf("error connecting to %s: %w", network.Name, err)
	}

	p.mu.Lock()
	old := p.client
	p.client = client
	p.chainID = chainID
	p.mu.Unlock()
	old.Close()

	p.emit(Event{Kind: ChainChanged, ChainID: chainID})
	return nil
}

func (p *keyedProvider) AddChain(ctx context.Context, network Network) error {
	client, err := p.dial(ctx, network.RPCURL)
	if err != nil {
		return fmt.Errorf("error connecting to %s: %w", network.Name, err)
	}
	defer client.Close()

	id, err := client.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("error reading chain id: %w", err)
	}
	if id.Int64() != network.ChainID {
		return &ProviderError{Code: CodeUnsupportedMethod, Message: fmt.Sprintf("rpc reports chain %d, expected %d", id.Int64(), network.ChainID)}
	}

	p.mu.Lock()
	p.networks[network.ChainID] = network
	p.mu.Unlock()
	return nil
}

func (p *keyedProvider) SendTransaction(ctx context.Context, req TxRequest) (string, error) {
	log := logger.FromContext(ctx)

	from, err := p.signer(req.From)
	if err != nil {
		return "", err
	}
	if !common.IsHexAddress(req.To) {
		return "", fmt.Errorf("invalid recipient address %q", req.To)
	}
	to := common.HexToAddress(req.To)

	value := req.Value
	if value == nil {
		value = new(big.Int)
	}

	p.mu.Lock()
	client, chainID := p.client, p.chainID
	p.mu.Unlock()

	nonce, err := client.PendingNonceAt(ctx, from)
	if err != nil {
		log.Err(err).Str("func", "*keyedProvider.SendTransaction").Msg("error getting nonce")
		return "", fmt.Errorf("error getting nonce: %w", err)
	}

	tip, err := client.SuggestGasTipCap(ctx)
	if err != nil {
		return "", fmt.Errorf("error suggesting gas tip: %w", err)
	}
	head, err := client.HeaderByNumber(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("error reading latest header: %w", err)
	}
	feeCap := new(big.Int).Add(tip, new(big.Int).Mul(head.BaseFee, big.NewInt(2)))

	gas := req.GasLimit
	if gas == 0 {
		gas, err = client.EstimateGas(ctx, ethereum.CallMsg{From: from, To: &to, Value: value, Data: req.Data})
		if err != nil {
			return "", fmt.Errorf("error estimating gas: %w", err)
		}
	}

	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   big.NewInt(chainID),
		Nonce:     nonce,
		GasTipCap: tip,
		GasFeeCap: feeCap,
		Gas:       gas,
		To:        &to,
		Value:     value,
		Data:      req.Data,
	})

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(big.NewInt(chainID)), p.key)
	if err != nil {
		return "", fmt.Errorf("error signing transaction: %w", err)
	}

	if err = client.SendTransaction(ctx, signed); err != nil {
		log.Err(err).Str("func", "*keyedProvider.SendTransaction").Msg("error sending transaction")
		return "", fmt.Errorf("error sending transaction: %w", err)
	}

	log.Info().Str("func", "*keyedProvider.SendTransaction").
		Str("tx_hash", signed.Hash().Hex()).
		Str("to", to.Hex()).
		Msg("transaction sent")

	return signed.Hash().Hex(), nil
}

func (p *keyedProvider) WaitForReceipt(ctx context.Context, txHash string) (*Receipt, error) {
	hash := common.HexToHash(txHash)
	ticker := time.NewTicker(p.pollEvery)
	defer ticker.Stop()

	for {
		p.mu.Lock()
		client := p.client
		p.mu.Unlock()

		receipt, err := client.TransactionReceipt(ctx, hash)
		switch {
		case err == nil:
			return &Receipt{
				TxHash:      receipt.TxHash.Hex(),
				Status:      receipt.Status,
				BlockNumber: receipt.BlockNumber.Uint64(),
			}, nil
		case !errors.Is(err, ethereum.NotFound):
			return nil, fmt.Errorf("error fetching receipt: %w", err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (p *keyedProvider) PersonalSign(_ context.Context, message, address string) (string, error) {
	if _, err := p.signer(address); err != nil {
		return "", err
	}
	return SignMessage(p.key, message)
}

func (p *keyedProvider) Balance(ctx context.Context, address string) (*big.Int, error) {
	p.mu.Lock()
	client := p.client
	p.mu.Unlock()

	return client.BalanceAt(ctx, common.HexToAddress(address), nil)
}

func (p *keyedProvider) Events() <-chan Event {
	return p.events
}

// signer checks that from names the provider's account. An empty from means
// the provider's account.
func (p *keyedProvider) signer(from string) (common.Address, error) {
	p.mu.Lock()
	granted := p.granted
	p.mu.Unlock()

	if !granted {
		return common.Address{}, &ProviderError{Code: CodeUnauthorized, Message: "account access not granted"}
	}
	if from != "" && !strings.EqualFold(from, p.address.Hex()) {
		return common.Address{}, &ProviderError{Code: CodeUnauthorized, Message: "unknown account " + from}
	}
	return p.address, nil
}

// emit never blocks; subscribers that fall behind lose events.
func (p *keyedProvider) emit(e Event) {
	select {
	case p.events <- e:
	default:
		p.logger.Warn().Str("func", "*keyedProvider.emit").Msg("wallet event dropped")
	}
}
