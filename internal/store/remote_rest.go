package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/unibrain/internal/adapter"
	"github.com/MKhiriev/unibrain/internal/logger"
	"github.com/MKhiriev/unibrain/models"
)

// restRemoteStore is the [Store] implementation over the hosted backend's
// PostgREST API.
type restRemoteStore struct {
	backend adapter.Backend
	records *recordFactory
	logger  *logger.Logger
}

// NewRESTRemoteStore constructs a [Store] on top of backend.
func NewRESTRemoteStore(backend adapter.Backend, logger *logger.Logger) Store {
	logger.Debug().Msg("creating rest remote store")
	return &restRemoteStore{
		backend: backend,
		records: newRecordFactory(),
		logger:  logger,
	}
}

// remoteError tags everything but a rejected request with
// [ErrRemoteUnavailable].
func remoteError(op string, err error) error {
	for _, rejected := range []error{adapter.ErrBadRequest, adapter.ErrUnauthorized, adapter.ErrForbidden, adapter.ErrNotFound, adapter.ErrConflict} {
		if errors.Is(err, rejected) {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	return fmt.Errorf("%w: %s: %w", ErrRemoteUnavailable, op, err)
}

func first[T any](items []T) *T {
	if len(items) == 0 {
		return nil
	}
	return &items[0]
}

// ── users ────────────────────────────────────────────────────────────────────

func (r *restRemoteStore) GetUser(ctx context.Context, wallet string) (*models.User, error) {
	var users []models.User
	if err := r.backend.Select(ctx, tableUsers, adapter.NewQuery().Eq("wallet_address", NormalizeAddress(wallet)).Window(0, 1), &users); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*restRemoteStore.GetUser").Msg("error selecting user")
		return nil, remoteError("get user", err)
	}

	return first(users), nil
}

func (r *restRemoteStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	var users []models.User
	if err := r.backend.Select(ctx, tableUsers, adapter.NewQuery().Eq("id", id).Window(0, 1), &users); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*restRemoteStore.GetUserByID").Msg("error selecting user")
		return nil, remoteError("get user by id", err)
	}

	return first(users), nil
}

func (r *restRemoteStore) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	var created []models.User
	if err := r.backend.Insert(ctx, tableUsers, r.records.newUser(user), &created); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*restRemoteStore.CreateUser").Msg("error inserting user")
		if errors.Is(err, adapter.ErrConflict) {
			return models.User{}, ErrUserAlreadyExists
		}
		return models.User{}, remoteError("create user", err)
	}
	if len(created) == 0 {
		return models.User{}, fmt.Errorf("%w: user was not saved", ErrExecutingStatement)
	}

	return created[0], nil
}

type userPatchBody struct {
	models.UserPatch
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *restRemoteStore) UpdateUser(ctx context.Context, wallet string, patch models.UserPatch) (*models.User, error) {
	var updated []models.User
	body := userPatchBody{UserPatch: patch, UpdatedAt: r.records.now()}
	if err := r.backend.Update(ctx, tableUsers, adapter.NewQuery().Eq("wallet_address", NormalizeAddress(wallet)), body, &updated); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*restRemoteStore.UpdateUser").Msg("error updating user")
		return nil, remoteError("update user", err)
	}

	return first(updated), nil
}

// ── documents ────────────────────────────────────────────────────────────────

func (r *restRemoteStore) GetDocuments(ctx context.Context, page models.Page) ([]models.Document, error) {
	page = page.Normalize()
	docs := []models.Document{}
	query := adapter.NewQuery().Order("created_at", true).Window(page.Offset, page.Limit)
	if err := r.backend.Select(ctx, tableDocuments, query, &docs); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*restRemoteStore.GetDocuments").Msg("error selecting documents")
		return nil, remoteError("get documents", err)
	}

	return docs, nil
}

func (r *restRemoteStore) GetDocument(ctx context.Context, id string) (*models.Document, error) {
	var docs []models.Document
	if err := r.backend.Select(ctx, tableDocuments, adapter.NewQuery().Eq("id", id).Window(0, 1), &docs); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*restRemoteStore.GetDocument").Msg("error selecting document")
		return nil, remoteError("get document", err)
	}

	return first(docs), nil
}

func (r *restRemoteStore) CreateDocument(ctx context.Context, doc models.Document) (models.Document, error) {
	var created []models.Document
	if err := r.backend.Insert(ctx, tableDocuments, r.records.newDocument(doc), &created); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*restRemoteStore.CreateDocument").Msg("error inserting document")
		return models.Document{}, remoteError("create document", err)
	}
	if len(created) == 0 {
		return models.Document{}, fmt.Errorf("%w: document was not saved", ErrExecutingStatement)
	}

	return created[0], nil
}

type documentPatchBody struct {
	models.DocumentPatch
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *restRemoteStore) UpdateDocument(ctx context.Context, id string, patch models.DocumentPatch) (*models.Document, error) {
	var updated []models.Document
	body := documentPatchBody{DocumentPatch: patch, UpdatedAt: r.records.now()}
	if err := r.backend.Update(ctx, tableDocuments, adapter.NewQuery().Eq("id", id), body, &updated); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*restRemoteStore.UpdateDocument").Msg("error updating document")
		return nil, remoteError("update document", err)
	}

	return first(updated), nil
}

// ── transactions ─────────────────────────────────────────────────────────────

func (r *restRemoteStore) CreateTransaction(ctx context.Context, tx models.Transaction) (models.Transaction, error) {
	var created []models.Transaction
	if err := r.backend.Insert(ctx, tableTransactions, r.records.newTransaction(tx), &created); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*restRemoteStore.CreateTransaction").Msg("error inserting transaction")
		return models.Transaction{}, remoteError("create transaction", err)
	}
	if len(created) == 0 {
		return models.Transaction{}, fmt.Errorf("%w: transaction was not saved", ErrExecutingStatement)
	}

	return created[0], nil
}

type transactionPatchBody struct {
	models.TransactionPatch
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *restRemoteStore) UpdateTransaction(ctx context.Context, id string, patch models.TransactionPatch) (*models.Transaction, error) {
	var updated []models.Transaction
	body := transactionPatchBody{TransactionPatch: normalizeTransactionPatch(patch), UpdatedAt: r.records.now()}
	if err := r.backend.Update(ctx, tableTransactions, adapter.NewQuery().Eq("id", id), body, &updated); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*restRemoteStore.UpdateTransaction").Msg("error updating transaction")
		return nil, remoteError("update transaction", err)
	}

	return first(updated), nil
}

func (r *restRemoteStore) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	var txs []models.Transaction
	if err := r.backend.Select(ctx, tableTransactions, adapter.NewQuery().Eq("id", id).Window(0, 1), &txs); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*restRemoteStore.GetTransaction").Msg("error selecting transaction")
		return nil, remoteError("get transaction", err)
	}

	return first(txs), nil
}

// ── downloads ────────────────────────────────────────────────────────────────

func (r *restRemoteStore) CreateDownload(ctx context.Context, download models.Download) (models.Download, error) {
	var created []models.Download
	if err := r.backend.Insert(ctx, tableDownloads, r.records.newDownload(download), &created); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*restRemoteStore.CreateDownload").Msg("error inserting download")
		return models.Download{}, remoteError("create download", err)
	}
	if len(created) == 0 {
		return models.Download{}, fmt.Errorf("%w: download was not saved", ErrExecutingStatement)
	}

	return created[0], nil
}

func (r *restRemoteStore) GetDownloads(ctx context.Context, documentID string) ([]models.Download, error) {
	downloads := []models.Download{}
	query := adapter.NewQuery().Eq("document_id", documentID).Order("downloaded_at", false)
	if err := r.backend.Select(ctx, tableDownloads, query, &downloads); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*restRemoteStore.GetDownloads").Msg("error selecting downloads")
		return nil, remoteError("get downloads", err)
	}

	return downloads, nil
}

// ── nfts ─────────────────────────────────────────────────────────────────────

func (r *restRemoteStore) CreateNFT(ctx context.Context, nft models.NFT) (models.NFT, error) {
	var created []models.NFT
	if err := r.backend.Insert(ctx, tableNFTs, r.records.newNFT(nft), &created); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*restRemoteStore.CreateNFT").Msg("error inserting nft")
		return models.NFT{}, remoteError("create nft", err)
	}
	if len(created) == 0 {
		return models.NFT{}, fmt.Errorf("%w: nft was not saved", ErrExecutingStatement)
	}

	return created[0], nil
}

func (r *restRemoteStore) GetNFTs(ctx context.Context, page models.Page) ([]models.NFT, error) {
	page = page.Normalize()
	nfts := []models.NFT{}
	query := adapter.NewQuery().Order("created_at", true).Window(page.Offset, page.Limit)
	if err := r.backend.Select(ctx, tableNFTs, query, &nfts); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*restRemoteStore.GetNFTs").Msg("error selecting nfts")
		return nil, remoteError("get nfts", err)
	}

	return nfts, nil
}

func (r *restRemoteStore) GetUserNFTs(ctx context.Context, wallet string) ([]models.NFT, error) {
	nfts := []models.NFT{}
	query := adapter.NewQuery().Eq("owner_wallet", NormalizeAddress(wallet)).Order("created_at", true)
	if err := r.backend.Select(ctx, tableNFTs, query, &nfts); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*restRemoteStore.GetUserNFTs").Msg("error selecting nfts")
		return nil, remoteError("get user nfts", err)
	}

	return nfts, nil
}

func (r *restRemoteStore) GetNFTsBySubject(ctx context.Context, subject string) ([]models.NFT, error) {
	nfts := []models.NFT{}
	query := adapter.NewQuery().
		Select("*,documents!inner(subject)").
		Eq("documents.subject", subject).
		Order("created_at", true)
	if err := r.backend.Select(ctx, tableNFTs, query, &nfts); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*restRemoteStore.GetNFTsBySubject").Msg("error selecting nfts")
		return nil, remoteError("get nfts by subject", err)
	}

	return nfts, nil
}

func (r *restRemoteStore) TransferNFT(ctx context.Context, tokenID, from, to string) (bool, error) {
	var updated []models.NFT
	query := adapter.NewQuery().Eq("token_id", tokenID).Eq("owner_wallet", NormalizeAddress(from))
	body := map[string]string{"owner_wallet": NormalizeAddress(to)}
	if err := r.backend.Update(ctx, tableNFTs, query, body, &updated); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*restRemoteStore.TransferNFT").Msg("error transferring nft")
		return false, remoteError("transfer nft", err)
	}

	return len(updated) > 0, nil
}
