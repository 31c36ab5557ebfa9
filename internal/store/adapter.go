package store

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/MKhiriev/unibrain/internal/config"
	"github.com/MKhiriev/unibrain/internal/logger"
	"github.com/MKhiriev/unibrain/models"
)

// Mode is the persistence mode chosen at start-up.
type Mode string

const (
	ModeLocal  Mode = "local"
	ModeRemote Mode = "remote"
)

// Source tells which store answered a call.
type Source string

const (
	SourceLocal  Source = "local"
	SourceRemote Source = "remote"
)

// Placeholders shipped in sample configuration. They never enable remote
// mode.
const (
	PlaceholderRemoteURL    = "YOUR_SUPABASE_PROJECT_URL"
	PlaceholderRemoteAPIKey = "YOUR_SUPABASE_ANON_KEY"
)

// SelectMode returns [ModeRemote] iff both the URL and the API key are set
// and neither is a placeholder.
func SelectMode(cfg config.RemoteStorage) Mode {
	url, key := strings.TrimSpace(cfg.URL), strings.TrimSpace(cfg.APIKey)
	if url == "" || key == "" || url == PlaceholderRemoteURL || key == PlaceholderRemoteAPIKey {
		return ModeLocal
	}
	return ModeRemote
}

// Result carries a value together with where it came from. Fallback is set
// when the remote store failed and the local store answered instead;
// RemoteErr holds the remote failure.
type Result[T any] struct {
	Value     T
	Source    Source
	Fallback  bool
	RemoteErr error
}

// Adapter routes every operation to the remote store in remote mode and
// retries a failed remote call once against the local store. In local mode
// the remote store is never touched.
type Adapter struct {
	local  Store
	remote Store

	localFiles  ObjectStore
	remoteFiles ObjectStore

	kv KeyValue

	mode        Mode
	forcedLocal atomic.Bool

	logger *logger.Logger
}

// AdapterOption configures optional collaborators of an [Adapter].
type AdapterOption func(*Adapter)

// WithRemote sets the remote table store.
func WithRemote(remote Store) AdapterOption {
	return func(a *Adapter) { a.remote = remote }
}

// WithFiles sets the object stores. local serves local mode and fallbacks;
// remote is used only in remote mode. Either may be nil.
func WithFiles(local, remote ObjectStore) AdapterOption {
	return func(a *Adapter) {
		a.localFiles = local
		a.remoteFiles = remote
	}
}

// NewAdapter builds an [Adapter] in the mode selected from cfg. Remote mode
// without a remote store degrades to local mode.
func NewAdapter(cfg config.RemoteStorage, local Store, kv KeyValue, log *logger.Logger, opts ...AdapterOption) *Adapter {
	a := &Adapter{
		local:  local,
		kv:     kv,
		mode:   SelectMode(cfg),
		logger: log,
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.mode == ModeRemote && a.remote == nil {
		log.Warn().Str("func", "NewAdapter").Err(ErrNoRemote).Msg("remote credentials present but no remote store, using local mode")
		a.mode = ModeLocal
	}
	log.Info().Str("func", "NewAdapter").Str("mode", string(a.mode)).Msg("persistence mode selected")

	return a
}

// Mode returns the current mode.
func (a *Adapter) Mode() Mode {
	if a.forcedLocal.Load() {
		return ModeLocal
	}
	return a.mode
}

// ForceLocalMode switches to local mode for the rest of the process.
func (a *Adapter) ForceLocalMode() {
	if !a.forcedLocal.Swap(true) {
		a.logger.Warn().Str("func", "*Adapter.ForceLocalMode").Msg("forced into local mode")
	}
}

// KeyValue returns the local key-value table.
func (a *Adapter) KeyValue() KeyValue {
	return a.kv
}

func do[T any](ctx context.Context, a *Adapter, op string, call func(Store) (T, error)) (Result[T], error) {
	if a.Mode() == ModeLocal {
		v, err := call(a.local)
		return Result[T]{Value: v, Source: SourceLocal}, err
	}

	v, err := call(a.remote)
	if err == nil {
		return Result[T]{Value: v, Source: SourceRemote}, nil
	}

	logger.FromContext(ctx).Warn().Err(err).Str("func", "*Adapter."+op).Msg("remote call failed, falling back to local store")

	v, localErr := call(a.local)
	res := Result[T]{Value: v, Source: SourceLocal, Fallback: true, RemoteErr: err}
	if localErr != nil {
		return res, localErr
	}

	return res, nil
}

// ── users ────────────────────────────────────────────────────────────────────

func (a *Adapter) GetUser(ctx context.Context, wallet string) (Result[*models.User], error) {
	return do(ctx, a, "GetUser", func(s Store) (*models.User, error) { return s.GetUser(ctx, wallet) })
}

func (a *Adapter) GetUserByID(ctx context.Context, id string) (Result[*models.User], error) {
	return do(ctx, a, "GetUserByID", func(s Store) (*models.User, error) { return s.GetUserByID(ctx, id) })
}

func (a *Adapter) CreateUser(ctx context.Context, user models.User) (Result[models.User], error) {
	return do(ctx, a, "CreateUser", func(s Store) (models.User, error) { return s.CreateUser(ctx, user) })
}

func (a *Adapter) UpdateUser(ctx context.Context, wallet string, patch models.UserPatch) (Result[*models.User], error) {
	return do(ctx, a, "UpdateUser", func(s Store) (*models.User, error) { return s.UpdateUser(ctx, wallet, patch) })
}

// ── documents ────────────────────────────────────────────────────────────────

func (a *Adapter) GetDocuments(ctx context.Context, page models.Page) (Result[[]models.Document], error) {
	return do(ctx, a, "GetDocuments", func(s Store) ([]models.Document, error) { return s.GetDocuments(ctx, page) })
}

func (a *Adapter) GetDocument(ctx context.Context, id string) (Result[*models.Document], error) {
	return do(ctx, a, "GetDocument", func(s Store) (*models.Document, error) { return s.GetDocument(ctx, id) })
}

func (a *Adapter) CreateDocument(ctx context.Context, doc models.Document) (Result[models.Document], error) {
	return do(ctx, a, "CreateDocument", func(s Store) (models.Document, error) { return s.CreateDocument(ctx, doc) })
}

func (a *Adapter) UpdateDocument(ctx context.Context, id string, patch models.DocumentPatch) (Result[*models.Document], error) {
	return do(ctx, a, "UpdateDocument", func(s Store) (*models.Document, error) { return s.UpdateDocument(ctx, id, patch) })
}

// ── transactions ─────────────────────────────────────────────────────────────

func (a *Adapter) CreateTransaction(ctx context.Context, tx models.Transaction) (Result[models.Transaction], error) {
	return do(ctx, a, "CreateTransaction", func(s Store) (models.Transaction, error) { return s.CreateTransaction(ctx, tx) })
}

func (a *Adapter) UpdateTransaction(ctx context.Context, id string, patch models.TransactionPatch) (Result[*models.Transaction], error) {
	return do(ctx, a, "UpdateTransaction", func(s Store) (*models.Transaction, error) { return s.UpdateTransaction(ctx, id, patch) })
}

func (a *Adapter) GetTransaction(ctx context.Context, id string) (Result[*models.Transaction], error) {
	return do(ctx, a, "GetTransaction", func(s Store) (*models.Transaction, error) { return s.GetTransaction(ctx, id) })
}

// ── downloads ────────────────────────────────────────────────────────────────

func (a *Adapter) CreateDownload(ctx context.Context, download models.Download) (Result[models.Download], error) {
	return do(ctx, a, "CreateDownload", func(s Store) (models.Download, error) { return s.CreateDownload(ctx, download) })
}

func (a *Adapter) GetDownloads(ctx context.Context, documentID string) (Result[[]models.Download], error) {
	return do(ctx, a, "GetDownloads", func(s Store) ([]models.Download, error) { return s.GetDownloads(ctx, documentID) })
}

// ── nfts ─────────────────────────────────────────────────────────────────────

func (a *Adapter) CreateNFT(ctx context.Context, nft models.NFT) (Result[models.NFT], error) {
	return do(ctx, a, "CreateNFT", func(s Store) (models.NFT, error) { return s.CreateNFT(ctx, nft) })
}

func (a *Adapter) GetNFTs(ctx context.Context, page models.Page) (Result[[]models.NFT], error) {
	return do(ctx, a, "GetNFTs", func(s Store) ([]models.NFT, error) { return s.GetNFTs(ctx, page) })
}

func (a *Adapter) GetUserNFTs(ctx context.Context, wallet string) (Result[[]models.NFT], error) {
	return do(ctx, a, "GetUserNFTs", func(s Store) ([]models.NFT, error) { return s.GetUserNFTs(ctx, wallet) })
}

func (a *Adapter) GetNFTsBySubject(ctx context.Context, subject string) (Result[[]models.NFT], error) {
	return do(ctx, a, "GetNFTsBySubject", func(s Store) ([]models.NFT, error) { return s.GetNFTsBySubject(ctx, subject) })
}

func (a *Adapter) TransferNFT(ctx context.Context, tokenID, from, to string) (Result[bool], error) {
	return do(ctx, a, "TransferNFT", func(s Store) (bool, error) { return s.TransferNFT(ctx, tokenID, from, to) })
}

// ── files ────────────────────────────────────────────────────────────────────

func (a *Adapter) files() (primary, fallback ObjectStore) {
	if a.Mode() == ModeRemote && a.remoteFiles != nil {
		return a.remoteFiles, a.localFiles
	}
	return a.localFiles, nil
}

// Upload stores an object and returns its URL.
func (a *Adapter) Upload(ctx context.Context, bucket, path string, data []byte, contentType string) (Result[string], error) {
	primary, fallback := a.files()
	if primary == nil {
		return Result[string]{}, ErrNoObjectStore
	}

	source := a.fileSource(primary)
	url, err := primary.Upload(ctx, bucket, path, data, contentType)
	if err == nil || fallback == nil {
		return Result[string]{Value: url, Source: source}, err
	}

	logger.FromContext(ctx).Warn().Err(err).Str("func", "*Adapter.Upload").Msg("remote upload failed, falling back to local files")
	url, localErr := fallback.Upload(ctx, bucket, path, data, contentType)
	return Result[string]{Value: url, Source: SourceLocal, Fallback: true, RemoteErr: err}, localErr
}

// List returns up to limit objects of bucket.
func (a *Adapter) List(ctx context.Context, bucket string, limit int) (Result[[]models.StoredObject], error) {
	primary, fallback := a.files()
	if primary == nil {
		return Result[[]models.StoredObject]{}, ErrNoObjectStore
	}

	source := a.fileSource(primary)
	objects, err := primary.List(ctx, bucket, limit)
	if err == nil || fallback == nil {
		return Result[[]models.StoredObject]{Value: objects, Source: source}, err
	}

	logger.FromContext(ctx).Warn().Err(err).Str("func", "*Adapter.List").Msg("remote list failed, falling back to local files")
	objects, localErr := fallback.List(ctx, bucket, limit)
	return Result[[]models.StoredObject]{Value: objects, Source: SourceLocal, Fallback: true, RemoteErr: err}, localErr
}

// PublicURL returns the URL of bucket/path in the active object store.
func (a *Adapter) PublicURL(bucket, path string) string {
	primary, _ := a.files()
	if primary == nil {
		return ""
	}
	return primary.PublicURL(bucket, path)
}

func (a *Adapter) fileSource(s ObjectStore) Source {
	if s == a.remoteFiles {
		return SourceRemote
	}
	return SourceLocal
}
