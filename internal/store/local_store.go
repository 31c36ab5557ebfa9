package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/MKhiriev/unibrain/internal/logger"
	"github.com/MKhiriev/unibrain/models"
)

// Keys of the local key-value table.
const (
	KeyUsers           = "unibrain_users"
	KeyDocuments       = "unibrain_documents"
	KeyTransactions    = "unibrain_transactions"
	KeyNFTs            = "unibrain_nfts"
	KeyDownloads       = "unibrain_downloads"
	KeyConnectedWallet = "connected_wallet"
	KeyMerchantAddress = "STUDYNFT_MERCHANT_ADDRESS"
	KeySchemaVersion   = "unibrain_schema_version"
)

// LocalSchemaVersion is the layout version of the JSON collections.
const LocalSchemaVersion = "1"

// LocalStore keeps every collection as a JSON array under its own key.
// Access is serialized; the last writer wins.
type LocalStore struct {
	mu      sync.Mutex
	kv      KeyValue
	records *recordFactory
	logger  *logger.Logger
}

// NewLocalStore wraps kv and seeds the demo documents when the documents
// collection is empty.
func NewLocalStore(ctx context.Context, kv KeyValue, log *logger.Logger) (*LocalStore, error) {
	s := &LocalStore{
		kv:      kv,
		records: newRecordFactory(),
		logger:  log,
	}

	if err := s.init(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *LocalStore) init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Set(ctx, KeySchemaVersion, LocalSchemaVersion); err != nil {
		return err
	}

	if docs := loadCollection[models.Document](ctx, s, KeyDocuments); len(docs) > 0 {
		return nil
	}

	return saveCollection(ctx, s, KeyDocuments, seedDocuments(s.records))
}

// KeyValue exposes the underlying key-value table for plain string keys.
func (s *LocalStore) KeyValue() KeyValue {
	return s.kv
}

// ClearAll drops the five collections and seeds the demo documents again.
func (s *LocalStore) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range []string{KeyUsers, KeyDocuments, KeyTransactions, KeyNFTs, KeyDownloads} {
		if err := s.kv.Delete(ctx, key); err != nil {
			return err
		}
	}

	return saveCollection(ctx, s, KeyDocuments, seedDocuments(s.records))
}

// loadCollection returns the collection under key. Missing, unreadable or
// corrupt data yields an empty collection.
func loadCollection[T any](ctx context.Context, s *LocalStore, key string) []T {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		s.logger.Err(err).Str("func", "loadCollection").Str("key", key).Msg("error reading collection, using empty")
		return []T{}
	}
	if !ok || raw == "" {
		return []T{}
	}

	var items []T
	if err = json.Unmarshal([]byte(raw), &items); err != nil {
		s.logger.Err(err).Str("func", "loadCollection").Str("key", key).Msg("corrupt collection, using empty")
		return []T{}
	}
	if items == nil {
		items = []T{}
	}

	return items
}

func saveCollection[T any](ctx context.Context, s *LocalStore, key string, items []T) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %w", ErrStorage, key, err)
	}

	if err = s.kv.Set(ctx, key, string(payload)); err != nil {
		s.logger.Err(err).Str("func", "saveCollection").Str("key", key).Msg("error writing collection")
		if errors.Is(err, ErrStorage) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}

	return nil
}

// ── users ────────────────────────────────────────────────────────────────────

func (s *LocalStore) GetUser(ctx context.Context, wallet string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wallet = NormalizeAddress(wallet)
	for _, u := range loadCollection[models.User](ctx, s, KeyUsers) {
		if strings.EqualFold(u.WalletAddress, wallet) {
			return &u, nil
		}
	}

	return nil, nil
}

func (s *LocalStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range loadCollection[models.User](ctx, s, KeyUsers) {
		if u.ID == id {
			return &u, nil
		}
	}

	return nil, nil
}

func (s *LocalStore) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user = s.records.newUser(user)
	users := loadCollection[models.User](ctx, s, KeyUsers)
	for _, u := range users {
		if strings.EqualFold(u.WalletAddress, user.WalletAddress) {
			return models.User{}, ErrUserAlreadyExists
		}
	}

	if err := saveCollection(ctx, s, KeyUsers, append(users, user)); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (s *LocalStore) UpdateUser(ctx context.Context, wallet string, patch models.UserPatch) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wallet = NormalizeAddress(wallet)
	users := loadCollection[models.User](ctx, s, KeyUsers)
	for i := range users {
		if !strings.EqualFold(users[i].WalletAddress, wallet) {
			continue
		}

		patch.Apply(&users[i])
		users[i].UpdatedAt = s.records.now()
		if err := saveCollection(ctx, s, KeyUsers, users); err != nil {
			return nil, err
		}
		updated := users[i]
		return &updated, nil
	}

	return nil, nil
}

// ── documents ────────────────────────────────────────────────────────────────

func (s *LocalStore) GetDocuments(ctx context.Context, page models.Page) ([]models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := loadCollection[models.Document](ctx, s, KeyDocuments)
	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].CreatedAt.After(docs[j].CreatedAt)
	})

	start, end := page.Window(len(docs))
	return docs[start:end], nil
}

func (s *LocalStore) GetDocument(ctx context.Context, id string) (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range loadCollection[models.Document](ctx, s, KeyDocuments) {
		if d.ID == id {
			return &d, nil
		}
	}

	return nil, nil
}

func (s *LocalStore) CreateDocument(ctx context.Context, doc models.Document) (models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc = s.records.newDocument(doc)
	docs := loadCollection[models.Document](ctx, s, KeyDocuments)
	if err := saveCollection(ctx, s, KeyDocuments, append(docs, doc)); err != nil {
		return models.Document{}, err
	}

	return doc, nil
}

func (s *LocalStore) UpdateDocument(ctx context.Context, id string, patch models.DocumentPatch) (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := loadCollection[models.Document](ctx, s, KeyDocuments)
	for i := range docs {
		if docs[i].ID != id {
			continue
		}

		patch.Apply(&docs[i])
		docs[i].UpdatedAt = s.records.now()
		if err := saveCollection(ctx, s, KeyDocuments, docs); err != nil {
			return nil, err
		}
		updated := docs[i]
		return &updated, nil
	}

	return nil, nil
}

// ── transactions ─────────────────────────────────────────────────────────────

func (s *LocalStore) CreateTransaction(ctx context.Context, tx models.Transaction) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx = s.records.newTransaction(tx)
	txs := loadCollection[models.Transaction](ctx, s, KeyTransactions)
	if err := saveCollection(ctx, s, KeyTransactions, append(txs, tx)); err != nil {
		return models.Transaction{}, err
	}

	return tx, nil
}

func (s *LocalStore) UpdateTransaction(ctx context.Context, id string, patch models.TransactionPatch) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	patch = normalizeTransactionPatch(patch)
	txs := loadCollection[models.Transaction](ctx, s, KeyTransactions)
	for i := range txs {
		if txs[i].ID != id {
			continue
		}

		patch.Apply(&txs[i])
		txs[i].UpdatedAt = s.records.now()
		if err := saveCollection(ctx, s, KeyTransactions, txs); err != nil {
			return nil, err
		}
		updated := txs[i]
		return &updated, nil
	}

	return nil, nil
}

func (s *LocalStore) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, tx := range loadCollection[models.Transaction](ctx, s, KeyTransactions) {
		if tx.ID == id {
			return &tx, nil
		}
	}

	return nil, nil
}

// ── downloads ────────────────────────────────────────────────────────────────

func (s *LocalStore) CreateDownload(ctx context.Context, download models.Download) (models.Download, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	download = s.records.newDownload(download)
	downloads := loadCollection[models.Download](ctx, s, KeyDownloads)
	if err := saveCollection(ctx, s, KeyDownloads, append(downloads, download)); err != nil {
		return models.Download{}, err
	}

	return download, nil
}

func (s *LocalStore) GetDownloads(ctx context.Context, documentID string) ([]models.Download, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := []models.Download{}
	for _, d := range loadCollection[models.Download](ctx, s, KeyDownloads) {
		if d.DocumentID == documentID {
			result = append(result, d)
		}
	}

	return result, nil
}

// ── nfts ─────────────────────────────────────────────────────────────────────

func (s *LocalStore) CreateNFT(ctx context.Context, nft models.NFT) (models.NFT, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	nft = s.records.newNFT(nft)
	nfts := loadCollection[models.NFT](ctx, s, KeyNFTs)
	if err := saveCollection(ctx, s, KeyNFTs, append(nfts, nft)); err != nil {
		return models.NFT{}, err
	}

	return nft, nil
}

func (s *LocalStore) GetNFTs(ctx context.Context, page models.Page) ([]models.NFT, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	nfts := newestNFTsFirst(loadCollection[models.NFT](ctx, s, KeyNFTs))
	start, end := page.Window(len(nfts))
	return nfts[start:end], nil
}

func (s *LocalStore) GetUserNFTs(ctx context.Context, wallet string) ([]models.NFT, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wallet = NormalizeAddress(wallet)
	result := []models.NFT{}
	for _, n := range loadCollection[models.NFT](ctx, s, KeyNFTs) {
		if strings.EqualFold(n.OwnerWallet, wallet) {
			result = append(result, n)
		}
	}

	return newestNFTsFirst(result), nil
}

func (s *LocalStore) GetNFTsBySubject(ctx context.Context, subject string) ([]models.NFT, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docIDs := make(map[string]struct{})
	for _, d := range loadCollection[models.Document](ctx, s, KeyDocuments) {
		if d.Subject == subject {
			docIDs[d.ID] = struct{}{}
		}
	}

	result := []models.NFT{}
	for _, n := range loadCollection[models.NFT](ctx, s, KeyNFTs) {
		if _, ok := docIDs[n.DocumentID]; ok {
			result = append(result, n)
		}
	}

	return newestNFTsFirst(result), nil
}

func (s *LocalStore) TransferNFT(ctx context.Context, tokenID, from, to string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	from, to = NormalizeAddress(from), NormalizeAddress(to)
	nfts := loadCollection[models.NFT](ctx, s, KeyNFTs)
	for i := range nfts {
		if nfts[i].TokenID != tokenID || !strings.EqualFold(nfts[i].OwnerWallet, from) {
			continue
		}

		nfts[i].OwnerWallet = to
		if err := saveCollection(ctx, s, KeyNFTs, nfts); err != nil {
			return false, err
		}
		return true, nil
	}

	return false, nil
}

func newestNFTsFirst(nfts []models.NFT) []models.NFT {
	sort.SliceStable(nfts, func(i, j int) bool {
		return nfts[i].CreatedAt.After(nfts[j].CreatedAt)
	})
	return nfts
}
