package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/unibrain/internal/logger"
	"github.com/MKhiriev/unibrain/internal/store"
	"github.com/MKhiriev/unibrain/internal/wallet"
	"github.com/MKhiriev/unibrain/models"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// sessionService keeps the connected wallet and the profile loaded for it.
// The address is persisted under [store.KeyConnectedWallet] so that a later
// start can restore the session.
type sessionService struct {
	provider wallet.Provider
	network  wallet.Network
	adapter  *store.Adapter

	mu       sync.RWMutex
	user     *models.User
	address  string
	onResync func(ctx context.Context)

	now    func() time.Time
	logger *logger.Logger
}

func NewSessionService(provider wallet.Provider, network wallet.Network, adapter *store.Adapter, logger *logger.Logger) SessionService {
	return &sessionService{
		provider: provider,
		network:  network,
		adapter:  adapter,
		now:      time.Now,
		logger:   logger,
	}
}

func (s *sessionService) Login(ctx context.Context) (models.User, error) {
	log := logger.FromContext(ctx)

	if s.provider == nil {
		return models.User{}, wallet.ErrProviderMissing
	}

	if err := ensureNetwork(ctx, s.provider, s.network); err != nil {
		log.Err(err).Str("func", "*sessionService.Login").Int64("chain_id", s.network.ChainID).Msg("error switching network")
		return models.User{}, err
	}

	accounts, err := s.provider.RequestAccounts(ctx)
	if err != nil {
		log.Err(err).Str("func", "*sessionService.Login").Msg("account request failed")
		return models.User{}, fmt.Errorf("error requesting accounts: %w", err)
	}
	if len(accounts) == 0 {
		return models.User{}, wallet.ErrNoAccount
	}

	address := store.NormalizeAddress(accounts[0])
	if err = s.adapter.KeyValue().Set(ctx, store.KeyConnectedWallet, address); err != nil {
		log.Err(err).Str("func", "*sessionService.Login").Msg("error saving connected wallet")
		return models.User{}, err
	}

	user, err := s.loadOrCreateUser(ctx, address)
	if err != nil {
		return models.User{}, err
	}

	s.setSession(&user, address)
	log.Info().Str("func", "*sessionService.Login").Str("wallet", address).Msg("wallet connected")

	return user, nil
}

// ensureNetwork switches provider to network, registering the network first
// when the wallet does not know it.
func ensureNetwork(ctx context.Context, provider wallet.Provider, network wallet.Network) error {
	err := provider.SwitchChain(ctx, network.ChainID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, wallet.ErrChainNotAdded) {
		return err
	}

	if err = provider.AddChain(ctx, network); err != nil {
		return fmt.Errorf("error adding %s: %w", network.Name, err)
	}
	return provider.SwitchChain(ctx, network.ChainID)
}

func (s *sessionService) loadOrCreateUser(ctx context.Context, address string) (models.User, error) {
	log := logger.FromContext(ctx)

	found, err := s.adapter.GetUser(ctx, address)
	if err != nil {
		log.Err(err).Str("func", "*sessionService.loadOrCreateUser").Str("wallet", address).Msg("error loading profile")
		return models.User{}, fmt.Errorf("error loading profile: %w", err)
	}
	if found.Value != nil {
		return *found.Value, nil
	}

	created, err := s.adapter.CreateUser(ctx, models.User{
		WalletAddress: address,
		Username:      store.DefaultUsername(address),
	})
	if err != nil {
		log.Err(err).Str("func", "*sessionService.loadOrCreateUser").Str("wallet", address).Msg("error creating profile")
		return models.User{}, fmt.Errorf("error creating profile: %w", err)
	}

	return created.Value, nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	s.setSession(nil, "")

	if err := s.adapter.KeyValue().Delete(ctx, store.KeyConnectedWallet); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionService.Logout").Msg("error forgetting connected wallet")
		return err
	}
	return nil
}

func (s *sessionService) Restore(ctx context.Context) (bool, error) {
	address, ok, err := s.adapter.KeyValue().Get(ctx, store.KeyConnectedWallet)
	if err != nil {
		return false, err
	}
	if !ok || address == "" {
		return false, nil
	}
	address = store.NormalizeAddress(address)

	user, err := s.loadOrCreateUser(ctx, address)
	if err != nil {
		return false, err
	}

	s.setSession(&user, address)
	return true, nil
}

func (s *sessionService) UpdateProfile(ctx context.Context, patch models.UserPatch) (*models.User, error) {
	address := s.Wallet()
	if !s.IsAuthenticated() {
		return nil, nil
	}

	updated, err := s.adapter.UpdateUser(ctx, address, patch)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionService.UpdateProfile").Str("wallet", address).Msg("error updating profile")
		return nil, err
	}
	if updated.Value != nil {
		s.mu.Lock()
		s.user = updated.Value
		s.mu.Unlock()
	}

	return updated.Value, nil
}

// HandleEvent applies a wallet notification. An empty account list ends the
// session; a different account replaces it. A network change runs the
// resync callback.
func (s *sessionService) HandleEvent(ctx context.Context, event wallet.Event) error {
	log := logger.FromContext(ctx)

	switch event.Kind {
	case wallet.AccountsChanged:
		if len(event.Accounts) == 0 {
			log.Info().Str("func", "*sessionService.HandleEvent").Msg("wallet disconnected")
			return s.Logout(ctx)
		}

		address := store.NormalizeAddress(event.Accounts[0])
		if address == s.Wallet() {
			return nil
		}

		if err := s.adapter.KeyValue().Set(ctx, store.KeyConnectedWallet, address); err != nil {
			return err
		}
		user, err := s.loadOrCreateUser(ctx, address)
		if err != nil {
			return err
		}
		s.setSession(&user, address)
		log.Info().Str("func", "*sessionService.HandleEvent").Str("wallet", address).Msg("wallet account switched")

	case wallet.ChainChanged:
		log.Info().Str("func", "*sessionService.HandleEvent").Int64("chain_id", event.ChainID).Msg("network changed, resyncing")
		s.mu.RLock()
		fn := s.onResync
		s.mu.RUnlock()
		if fn != nil {
			fn(ctx)
		}
	}

	return nil
}

func (s *sessionService) Watch(ctx context.Context, events <-chan wallet.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			if err := s.HandleEvent(ctx, event); err != nil {
				logger.FromContext(ctx).Err(err).Str("func", "*sessionService.Watch").Msg("error handling wallet event")
			}
		}
	}
}

func (s *sessionService) OnResync(fn func(ctx context.Context)) {
	s.mu.Lock()
	s.onResync = fn
	s.mu.Unlock()
}

func (s *sessionService) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.address != ""
}

// CurrentUser returns a copy of the loaded profile, or nil.
func (s *sessionService) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *sessionService) Wallet() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.address
}

func (s *sessionService) setSession(user *models.User, address string) {
	s.mu.Lock()
	s.user = user
	s.address = address
	s.mu.Unlock()
}

// ── merchant ─────────────────────────────────────────────────────────────────

func (s *sessionService) MerchantAddress(ctx context.Context) (string, error) {
	address, ok, err := s.adapter.KeyValue().Get(ctx, store.KeyMerchantAddress)
	if err != nil {
		return "", err
	}
	if !ok || strings.TrimSpace(address) == "" {
		return "", ErrMerchantNotConfigured
	}
	return address, nil
}

func (s *sessionService) SetMerchantAddress(ctx context.Context, address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return ErrMerchantNotConfigured
	}
	if !common.IsHexAddress(address) {
		return fmt.Errorf("%w: %q", ErrInvalidMerchant, address)
	}
	return s.adapter.KeyValue().Set(ctx, store.KeyMerchantAddress, address)
}

// ── bids ─────────────────────────────────────────────────────────────────────

// bidTimeLayout renders UTC instants with millisecond precision.
const bidTimeLayout = "2006-01-02T15:04:05.000Z"

// BidMessage is the text signed for an offer.
func BidMessage(title string, amount decimal.Decimal, at time.Time) string {
	return fmt.Sprintf("Offerta di %s ETH per \"%s\" - %s", amount.String(), title, at.UTC().Format(bidTimeLayout))
}

func (s *sessionService) SignBid(ctx context.Context, title string, amount decimal.Decimal) (models.Bid, error) {
	address := s.Wallet()
	if address == "" {
		return models.Bid{}, ErrNotAuthenticated
	}
	if !amount.IsPositive() {
		return models.Bid{}, fmt.Errorf("%w: bid amount must be positive", ErrInvalidDataProvided)
	}
	if s.provider == nil {
		return models.Bid{}, wallet.ErrProviderMissing
	}

	at := s.now()
	message := BidMessage(title, amount, at)
	signature, err := s.provider.PersonalSign(ctx, message, address)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionService.SignBid").Msg("bid signature failed")
		return models.Bid{}, err
	}

	return models.Bid{
		Wallet:    address,
		Title:     title,
		AmountETH: amount,
		Message:   message,
		Signature: signature,
		SignedAt:  at.UTC(),
	}, nil
}
