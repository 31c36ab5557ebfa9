package service

import (
	"context"

	"github.com/MKhiriev/unibrain/internal/queue"
	"github.com/MKhiriev/unibrain/internal/store"
	"github.com/MKhiriev/unibrain/internal/wallet"
	"github.com/MKhiriev/unibrain/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// SessionService tracks the connected wallet and its marketplace profile.
type SessionService interface {
	// Login switches the wallet to the target network, requests an account,
	// remembers it and loads or creates its profile.
	Login(ctx context.Context) (models.User, error)
	Logout(ctx context.Context) error
	// Restore reloads a previously connected wallet. It reports whether a
	// session was restored.
	Restore(ctx context.Context) (bool, error)
	// UpdateProfile is a no-op returning (nil, nil) when not authenticated.
	UpdateProfile(ctx context.Context, patch models.UserPatch) (*models.User, error)

	HandleEvent(ctx context.Context, event wallet.Event) error
	// Watch applies wallet events until ctx is done or events is closed.
	Watch(ctx context.Context, events <-chan wallet.Event)
	// OnResync registers the callback run after a network change.
	OnResync(fn func(ctx context.Context))

	IsAuthenticated() bool
	CurrentUser() *models.User
	Wallet() string

	MerchantAddress(ctx context.Context) (string, error)
	SetMerchantAddress(ctx context.Context, address string) error

	SignBid(ctx context.Context, title string, amount decimal.Decimal) (models.Bid, error)
}

// PaymentService moves ETH for purchases and records downloads.
type PaymentService interface {
	// PurchaseDocument pays the seller of doc. Flow failures are reported in
	// the result; the error is reserved for invalid input.
	PurchaseDocument(ctx context.Context, doc models.Document, buyer string) (models.PaymentResult, error)
	DownloadForFree(ctx context.Context, documentID, wallet string) error
	// QuickBuy pays the configured merchant for a featured note without
	// waiting for the receipt.
	QuickBuy(ctx context.Context, note models.FeaturedNote, buyer string) (models.PaymentResult, error)
}

// NFTService produces and queries ownership records.
type NFTService interface {
	GenerateForPurchase(ctx context.Context, task queue.Task) (models.NFT, error)
	// HandleJob is the [queue.Handler] of the NFT generation queue.
	HandleJob(ctx context.Context, job queue.Job) (string, error)
	CreateNFT(ctx context.Context, owner string, metadata models.NFTMetadata, documentID string) (models.NFT, error)

	GetAllNFTs(ctx context.Context, page models.Page) (store.Result[[]models.NFT], error)
	GetUserNFTs(ctx context.Context, wallet string) (store.Result[[]models.NFT], error)
	GetNFTsBySubject(ctx context.Context, subject string) (store.Result[[]models.NFT], error)
	TransferNFT(ctx context.Context, tokenID, from, to string) error

	GetJob(ctx context.Context, jobID string) (queue.Job, error)
}

// MarketplaceService lists, publishes and discovers notes.
type MarketplaceService interface {
	GetDocuments(ctx context.Context, page models.Page) (store.Result[[]models.Document], error)
	GetDocument(ctx context.Context, id string) (store.Result[*models.Document], error)
	Mode() store.Mode

	PublishDocument(ctx context.Context, req models.PublishRequest) (models.Document, error)
	UploadFile(ctx context.Context, file models.UploadedFile, price, title string) (models.UploadResult, error)
	NFTProbability(req models.PublishRequest) int
	FeaturedNotes(ctx context.Context) ([]models.FeaturedNote, error)
	Subjects() []string
}

// MiniAppService answers the mini-app host.
type MiniAppService interface {
	Frame(ctx context.Context) models.FrameResponse
	ComposeMetadata(ctx context.Context) models.ComposerActionMetadata
	ComposeForm(ctx context.Context) models.ComposerForm
	Manifest(ctx context.Context) models.MiniAppManifest
	Ready(ctx context.Context, hostCtx models.MiniAppContext) models.MiniAppReady
	Share(ctx context.Context, req models.ShareRequest) (models.ShareIntent, error)
}

// AuthService logs wallets into the HTTP server.
type AuthService interface {
	// Nonce returns a challenge for wallet to sign.
	Nonce(ctx context.Context, wallet string) (models.AuthNonce, error)
	// Verify checks a signed challenge and issues a session token.
	Verify(ctx context.Context, req models.AuthVerifyRequest) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
