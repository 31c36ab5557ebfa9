package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/unibrain/internal/config"
	"github.com/MKhiriev/unibrain/internal/logger"
	"github.com/MKhiriev/unibrain/internal/store"
	"github.com/MKhiriev/unibrain/internal/utils"
	"github.com/MKhiriev/unibrain/internal/validators"
	"github.com/MKhiriev/unibrain/internal/wallet"
	"github.com/MKhiriev/unibrain/models"
)

// NonceTTL is how long a login challenge can be signed.
const NonceTTL = 5 * time.Minute

// authService logs wallets into the HTTP server with a signed challenge.
//
// Challenges are stateless: the nonce carries its issue time and an HMAC of
// the wallet and that time, so any server instance sharing tokenSignKey can
// verify it.
type authService struct {
	// adapter, when set, receives the profile of every wallet that logs in.
	adapter   *store.Adapter
	validator validators.Validator

	appName string

	// tokenSignKey signs both nonces and JWT tokens.
	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewAuthService constructs an AuthService populated with the security
// parameters from cfg. adapter may be nil.
func NewAuthService(adapter *store.Adapter, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		adapter:       adapter,
		validator:     validator,
		appName:       cfg.Name,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		now:           time.Now,
		logger:        logger,
	}
}

// LoginMessage is the text a wallet signs to log in.
func LoginMessage(appName, address, nonce string) string {
	return fmt.Sprintf("%s login\nWallet: %s\nNonce: %s", appName, address, nonce)
}

func (a *authService) Nonce(ctx context.Context, address string) (models.AuthNonce, error) {
	if err := a.validator.Validate(ctx, models.AuthVerifyRequest{Wallet: address}, validators.FieldWallet); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.Nonce").Str("wallet", address).Msg("invalid wallet")
		return models.AuthNonce{}, ErrInvalidDataProvided
	}

	address = store.NormalizeAddress(address)
	issued := strconv.FormatInt(a.now().Unix(), 10)
	nonce := issued + "." + utils.HashString(address+"|"+issued, a.tokenSignKey)

	return models.AuthNonce{
		Wallet:  address,
		Nonce:   nonce,
		Message: LoginMessage(a.appName, address, nonce),
	}, nil
}

// Verify checks that req.Nonce was issued for req.Wallet within NonceTTL and
// that req.Signature recovers to the same wallet, then issues a token.
func (a *authService) Verify(ctx context.Context, req models.AuthVerifyRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Err(err).Str("func", "*authService.Verify").Msg("invalid verify request")
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	address := store.NormalizeAddress(req.Wallet)
	if !a.validNonce(address, req.Nonce) {
		log.Warn().Str("func", "*authService.Verify").Str("wallet", address).Msg("nonce rejected")
		return models.Token{}, ErrInvalidNonce
	}

	recovered, err := wallet.RecoverAddress(LoginMessage(a.appName, address, req.Nonce), req.Signature)
	if err != nil {
		log.Err(err).Str("func", "*authService.Verify").Str("wallet", address).Msg("signature recovery failed")
		return models.Token{}, ErrSignatureMismatch
	}
	if recovered != address {
		log.Warn().Str("func", "*authService.Verify").
			Str("wallet", address).
			Str("recovered", recovered).
			Msg("signature belongs to another wallet")
		return models.Token{}, ErrSignatureMismatch
	}

	a.ensureProfile(ctx, address)

	token, err := utils.GenerateJWTToken(a.tokenIssuer, address, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func (a *authService) validNonce(address, nonce string) bool {
	issued, mac, ok := strings.Cut(nonce, ".")
	if !ok {
		return false
	}

	unix, err := strconv.ParseInt(issued, 10, 64)
	if err != nil {
		return false
	}
	age := a.now().Sub(time.Unix(unix, 0))
	if age < 0 || age > NonceTTL {
		return false
	}

	return utils.VerifyHashString(address+"|"+issued, mac, a.tokenSignKey)
}

// ensureProfile creates the marketplace profile of address on first login.
// Failures are logged only.
func (a *authService) ensureProfile(ctx context.Context, address string) {
	if a.adapter == nil {
		return
	}
	log := logger.FromContext(ctx)

	found, err := a.adapter.GetUser(ctx, address)
	if err != nil {
		log.Err(err).Str("func", "*authService.ensureProfile").Str("wallet", address).Msg("error loading profile")
		return
	}
	if found.Value != nil {
		return
	}

	if _, err = a.adapter.CreateUser(ctx, models.User{
		WalletAddress: address,
		Username:      store.DefaultUsername(address),
	}); err != nil {
		log.Err(err).Str("func", "*authService.ensureProfile").Str("wallet", address).Msg("error creating profile")
	}
}

// ParseToken normalises every validation failure (expired, wrong issuer,
// malformed) to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
