package wallet

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/unibrain/internal/logger"
)

// Well-known development key; never funded on a real network.
const testKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

type fakeChain struct {
	mu       sync.Mutex
	id       int64
	pending  int
	sent     []*types.Transaction
	receipts map[common.Hash]*types.Receipt
	closed   bool
}

func newFakeChain(id int64) *fakeChain {
	return &fakeChain{id: id, receipts: map[common.Hash]*types.Receipt{}}
}

func (f *fakeChain) ChainID(context.Context) (*big.Int, error) { return big.NewInt(f.id), nil }
func (f *fakeChain) PendingNonceAt(context.Context, common.Address) (uint64, error) {
	return 7, nil
}
func (f *fakeChain) SuggestGasTipCap(context.Context) (*big.Int, error) {
	return big.NewInt(1_000_000), nil
}
func (f *fakeChain) HeaderByNumber(context.Context, *big.Int) (*types.Header, error) {
	return &types.Header{BaseFee: big.NewInt(5_000_000)}, nil
}
func (f *fakeChain) EstimateGas(context.Context, ethereum.CallMsg) (uint64, error) {
	return 90_000, nil
}
func (f *fakeChain) SendTransaction(_ context.Context, tx *types.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, tx)
	return nil
}
func (f *fakeChain) TransactionReceipt(_ context.Context, h common.Hash) (*types.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pending > 0 {
		f.pending--
		return nil, ethereum.NotFound
	}
	r, ok := f.receipts[h]
	if !ok {
		return nil, ethereum.NotFound
	}
	return r, nil
}
func (f *fakeChain) BalanceAt(context.Context, common.Address, *big.Int) (*big.Int, error) {
	return big.NewInt(42), nil
}
func (f *fakeChain) Close() { f.closed = true }

func newTestProvider(t *testing.T, chains ...*fakeChain) *keyedProvider {
	t.Helper()
	byURL := map[string]*fakeChain{}
	for i, c := range chains {
		byURL["rpc"+string(rune('0'+i))] = c
	}
	dial := func(_ context.Context, url string) (chainClient, error) {
		c, ok := byURL[url]
		if !ok {
			return nil, errors.New("unreachable")
		}
		return c, nil
	}

	p, err := newKeyedProvider(context.Background(), "0x"+testKey, Network{Name: "test", RPCURL: "rpc0"}, dial, logger.Nop())
	require.NoError(t, err)
	p.pollEvery = time.Millisecond
	return p
}

func TestUnits(t *testing.T) {
	assert.Equal(t, "10000000000000000", ToWei(decimal.RequireFromString("0.01")).String())
	assert.Equal(t, "1", ToWei(decimal.RequireFromString("0.000000000000000001")).String())
	assert.Equal(t, "0", ToWei(decimal.RequireFromString("0.0000000000000000001")).String())
	assert.True(t, FromWei(big.NewInt(5_000_000_000_000_000)).Equal(decimal.RequireFromString("0.005")))
	assert.True(t, FromWei(nil).IsZero())
}

func TestProviderError_Is(t *testing.T) {
	err := error(&ProviderError{Code: CodeChainNotAdded, Message: "x"})
	assert.ErrorIs(t, err, ErrChainNotAdded)
	assert.NotErrorIs(t, err, ErrUserRejected)

	err = &ProviderError{Code: CodeUserRejected}
	assert.ErrorIs(t, err, ErrUserRejected)
}

func TestSignAndRecover(t *testing.T) {
	key, err := crypto.HexToECDSA(testKey)
	require.NoError(t, err)
	want := strings.ToLower(crypto.PubkeyToAddress(key.PublicKey).Hex())

	sig, err := SignMessage(key, "hello unibrain")
	require.NoError(t, err)

	got, err := RecoverAddress("hello unibrain", sig)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	other, err := RecoverAddress("tampered", sig)
	require.NoError(t, err)
	assert.NotEqual(t, want, other)

	_, err = RecoverAddress("hello", "0x1234")
	assert.ErrorIs(t, err, ErrInvalidSignature)
	_, err = RecoverAddress("hello", "not-hex")
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestNewKeyedProvider_MissingKey(t *testing.T) {
	provider, err := NewKeyedProvider(context.Background(), "  ", BaseMainnet(), logger.Nop())
	assert.ErrorIs(t, err, ErrProviderMissing)
	// a nil *keyedProvider must not leak out as a non-nil Provider
	assert.True(t, provider == nil)
}

func TestKeyedProvider_Accounts(t *testing.T) {
	p := newTestProvider(t, newFakeChain(8453))
	ctx := context.Background()

	accounts, err := p.Accounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, accounts)

	accounts, err = p.RequestAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, strings.ToLower(p.address.Hex()), accounts[0])

	id, err := p.ChainID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(8453), id)
}

func TestKeyedProvider_SwitchChain(t *testing.T) {
	home, base := newFakeChain(1), newFakeChain(8453)
	p := newTestProvider(t, home, base)
	ctx := context.Background()

	err := p.SwitchChain(ctx, 8453)
	assert.ErrorIs(t, err, ErrChainNotAdded)

	network := BaseMainnet()
	network.RPCURL = "rpc1"
	require.NoError(t, p.AddChain(ctx, network))
	require.NoError(t, p.SwitchChain(ctx, 8453))

	id, _ := p.ChainID(ctx)
	assert.Equal(t, int64(8453), id)
	assert.True(t, home.closed)

	select {
	case e := <-p.Events():
		assert.Equal(t, ChainChanged, e.Kind)
		assert.Equal(t, int64(8453), e.ChainID)
	default:
		t.Fatal("expected a chain changed event")
	}

	// switching to the current chain is a no-op
	require.NoError(t, p.SwitchChain(ctx, 8453))
	assert.Empty(t, p.Events())
}

func TestKeyedProvider_AddChainIDMismatch(t *testing.T) {
	p := newTestProvider(t, newFakeChain(1), newFakeChain(10))
	network := BaseMainnet()
	network.RPCURL = "rpc1"

	err := p.AddChain(context.Background(), network)
	var perr *ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, CodeUnsupportedMethod, perr.Code)
}

func TestKeyedProvider_SendTransaction(t *testing.T) {
	chain := newFakeChain(8453)
	p := newTestProvider(t, chain)
	ctx := context.Background()
	to := "0x70997970c51812dc3a010c7d01b50e0d17dc79c8"

	_, err := p.SendTransaction(ctx, TxRequest{To: to, Value: big.NewInt(1)})
	require.Error(t, err, "account access must be granted first")

	_, err = p.RequestAccounts(ctx)
	require.NoError(t, err)

	hash, err := p.SendTransaction(ctx, TxRequest{
		From:     strings.ToLower(p.address.Hex()),
		To:       to,
		Value:    ToWei(decimal.RequireFromString("0.01")),
		GasLimit: TransferGasLimit,
	})
	require.NoError(t, err)
	require.Len(t, chain.sent, 1)

	tx := chain.sent[0]
	assert.Equal(t, hash, tx.Hash().Hex())
	assert.Equal(t, uint64(21000), tx.Gas())
	assert.Equal(t, uint64(7), tx.Nonce())
	assert.Equal(t, "10000000000000000", tx.Value().String())
	assert.Equal(t, "11000000", tx.GasFeeCap().String())
	assert.Equal(t, common.HexToAddress(to), *tx.To())

	sender, err := types.Sender(types.LatestSignerForChainID(big.NewInt(8453)), tx)
	require.NoError(t, err)
	assert.Equal(t, p.address, sender)

	// zero gas limit is estimated
	_, err = p.SendTransaction(ctx, TxRequest{To: to, Data: []byte{0xde, 0xad}})
	require.NoError(t, err)
	assert.Equal(t, uint64(90_000), chain.sent[1].Gas())

	_, err = p.SendTransaction(ctx, TxRequest{From: to, To: to})
	assert.Error(t, err)
	_, err = p.SendTransaction(ctx, TxRequest{To: "bogus"})
	assert.Error(t, err)
}

func TestKeyedProvider_WaitForReceipt(t *testing.T) {
	chain := newFakeChain(8453)
	p := newTestProvider(t, chain)
	hash := common.HexToHash("0xabc")
	chain.pending = 3
	chain.receipts[hash] = &types.Receipt{TxHash: hash, Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(99)}

	r, err := p.WaitForReceipt(context.Background(), hash.Hex())
	require.NoError(t, err)
	assert.Equal(t, uint64(1), r.Status)
	assert.Equal(t, uint64(99), r.BlockNumber)
}

func TestKeyedProvider_WaitForReceiptCancelled(t *testing.T) {
	p := newTestProvider(t, newFakeChain(8453))
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := p.WaitForReceipt(ctx, "0xdead")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestKeyedProvider_PersonalSign(t *testing.T) {
	p := newTestProvider(t, newFakeChain(8453))
	ctx := context.Background()
	accounts, err := p.RequestAccounts(ctx)
	require.NoError(t, err)

	sig, err := p.PersonalSign(ctx, "Offerta di 0.5 ETH", accounts[0])
	require.NoError(t, err)

	got, err := RecoverAddress("Offerta di 0.5 ETH", sig)
	require.NoError(t, err)
	assert.Equal(t, accounts[0], got)
}

func TestNetwork(t *testing.T) {
	n := BaseMainnet()
	assert.Equal(t, "0x2105", n.HexChainID())
	assert.Equal(t, "https://base.blockscout.com/tx/0x1", n.TxURL("0x1"))
	assert.Empty(t, Network{}.TxURL("0x1"))
}
