package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/unibrain/internal/logger"
	"github.com/MKhiriev/unibrain/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	userColumns = []string{"id", "wallet_address", "username", "email", "avatar_url", "bio", "created_at", "updated_at"}

	documentColumns = []string{
		"id", "title", "description", "subject", "university", "course", "professor", "academic_year", "tags",
		"price_eth", "is_free", "file_url", "file_name", "file_size", "file_type", "upload_path",
		"ai_summary", "nft_token_id", "nft_contract_address", "downloads_count", "purchases_count",
		"user_id", "created_at", "updated_at",
	}

	transactionColumns = []string{
		"id", "transaction_hash", "buyer_wallet", "seller_wallet", "document_id", "amount_eth",
		"status", "nft_generated", "nft_token_id", "created_at", "updated_at",
	}

	downloadColumns = []string{"id", "document_id", "user_wallet", "is_paid", "transaction_id", "downloaded_at"}

	nftColumns = []string{
		"id", "token_id", "contract_address", "document_id", "owner_wallet", "metadata_uri",
		"image_url", "name", "description", "attributes", "created_at",
	}
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// postgresRemoteStore is the [Store] implementation that talks to the hosted
// backend's Postgres directly. Queries are built with squirrel.
type postgresRemoteStore struct {
	db      *DB
	records *recordFactory
	logger  *logger.Logger
}

// NewPostgresRemoteStore constructs a [Store] over a migrated Postgres
// connection.
func NewPostgresRemoteStore(db *DB, logger *logger.Logger) Store {
	logger.Debug().Msg("creating postgres remote store")
	return &postgresRemoteStore{
		db:      db,
		records: newRecordFactory(),
		logger:  logger,
	}
}

// ── users ────────────────────────────────────────────────────────────────────

func (r *postgresRemoteStore) GetUser(ctx context.Context, wallet string) (*models.User, error) {
	query := psql.Select(userColumns...).From(tableUsers).
		Where(sq.Eq{"wallet_address": NormalizeAddress(wallet)}).Limit(1)

	return queryOne(ctx, r, "*postgresRemoteStore.GetUser", query, scanUser)
}

func (r *postgresRemoteStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	query := psql.Select(userColumns...).From(tableUsers).Where(sq.Eq{"id": id}).Limit(1)

	return queryOne(ctx, r, "*postgresRemoteStore.GetUserByID", query, scanUser)
}

func (r *postgresRemoteStore) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)
	user = r.records.newUser(user)

	query, args, err := psql.Insert(tableUsers).Columns(userColumns...).
		Values(user.ID, user.WalletAddress, nullString(user.Username), nullString(user.Email),
			nullString(user.AvatarURL), nullString(user.Bio), user.CreatedAt, user.UpdatedAt).
		Suffix(returning(userColumns)).ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*postgresRemoteStore.CreateUser").Msg("error inserting user")
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUserAlreadyExists
		default:
			return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, classifyRemoteError(r.db.errorClassificator, err))
		}
	}

	return created, nil
}

func (r *postgresRemoteStore) UpdateUser(ctx context.Context, wallet string, patch models.UserPatch) (*models.User, error) {
	set := map[string]any{"updated_at": r.records.now()}
	if patch.Username != nil {
		set["username"] = *patch.Username
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.AvatarURL != nil {
		set["avatar_url"] = *patch.AvatarURL
	}
	if patch.Bio != nil {
		set["bio"] = *patch.Bio
	}

	query := psql.Update(tableUsers).SetMap(set).
		Where(sq.Eq{"wallet_address": NormalizeAddress(wallet)}).
		Suffix(returning(userColumns))

	return execReturning(ctx, r, "*postgresRemoteStore.UpdateUser", query, scanUser)
}

// ── documents ────────────────────────────────────────────────────────────────

func (r *postgresRemoteStore) GetDocuments(ctx context.Context, page models.Page) ([]models.Document, error) {
	page = page.Normalize()
	query := psql.Select(documentColumns...).From(tableDocuments).
		OrderBy("created_at DESC").
		Limit(uint64(page.Limit)).Offset(uint64(page.Offset))

	return queryMany(ctx, r, "*postgresRemoteStore.GetDocuments", query, scanDocument)
}

func (r *postgresRemoteStore) GetDocument(ctx context.Context, id string) (*models.Document, error) {
	query := psql.Select(documentColumns...).From(tableDocuments).Where(sq.Eq{"id": id}).Limit(1)

	return queryOne(ctx, r, "*postgresRemoteStore.GetDocument", query, scanDocument)
}

func (r *postgresRemoteStore) CreateDocument(ctx context.Context, doc models.Document) (models.Document, error) {
	doc = r.records.newDocument(doc)
	tags, err := json.Marshal(doc.Tags)
	if err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	query := psql.Insert(tableDocuments).Columns(documentColumns...).
		Values(doc.ID, doc.Title, doc.Description, doc.Subject, doc.University,
			nullString(doc.Course), nullString(doc.Professor), nullString(doc.AcademicYear), tags,
			doc.PriceETH, doc.IsFree, doc.FileURL, doc.FileName, doc.FileSize, doc.FileType, doc.UploadPath,
			nullString(doc.AISummary), nullString(doc.NFTTokenID), nullString(doc.NFTContractAddress),
			doc.DownloadsCount, doc.PurchasesCount, doc.UserID, doc.CreatedAt, doc.UpdatedAt).
		Suffix(returning(documentColumns))

	created, err := execReturning(ctx, r, "*postgresRemoteStore.CreateDocument", query, scanDocument)
	if err != nil {
		return models.Document{}, err
	}
	if created == nil {
		return models.Document{}, fmt.Errorf("%w: document was not saved", ErrExecutingStatement)
	}

	return *created, nil
}

func (r *postgresRemoteStore) UpdateDocument(ctx context.Context, id string, patch models.DocumentPatch) (*models.Document, error) {
	set := map[string]any{"updated_at": r.records.now()}
	if patch.AISummary != nil {
		set["ai_summary"] = *patch.AISummary
	}
	if patch.NFTTokenID != nil {
		set["nft_token_id"] = *patch.NFTTokenID
	}
	if patch.NFTContractAddress != nil {
		set["nft_contract_address"] = *patch.NFTContractAddress
	}
	if patch.DownloadsCount != nil {
		set["downloads_count"] = *patch.DownloadsCount
	}
	if patch.PurchasesCount != nil {
		set["purchases_count"] = *patch.PurchasesCount
	}

	query := psql.Update(tableDocuments).SetMap(set).Where(sq.Eq{"id": id}).Suffix(returning(documentColumns))

	return execReturning(ctx, r, "*postgresRemoteStore.UpdateDocument", query, scanDocument)
}

// ── transactions ─────────────────────────────────────────────────────────────

func (r *postgresRemoteStore) CreateTransaction(ctx context.Context, tx models.Transaction) (models.Transaction, error) {
	tx = r.records.newTransaction(tx)

	query := psql.Insert(tableTransactions).Columns(transactionColumns...).
		Values(tx.ID, tx.TransactionHash, tx.BuyerWallet, tx.SellerWallet, tx.DocumentID, tx.AmountETH,
			string(tx.Status), tx.NFTGenerated, nullString(tx.NFTTokenID), tx.CreatedAt, tx.UpdatedAt).
		Suffix(returning(transactionColumns))

	created, err := execReturning(ctx, r, "*postgresRemoteStore.CreateTransaction", query, scanTransaction)
	if err != nil {
		return models.Transaction{}, err
	}
	if created == nil {
		return models.Transaction{}, fmt.Errorf("%w: transaction was not saved", ErrExecutingStatement)
	}

	return *created, nil
}

func (r *postgresRemoteStore) UpdateTransaction(ctx context.Context, id string, patch models.TransactionPatch) (*models.Transaction, error) {
	patch = normalizeTransactionPatch(patch)
	set := map[string]any{"updated_at": r.records.now()}
	if patch.TransactionHash != nil {
		set["transaction_hash"] = *patch.TransactionHash
	}
	if patch.SellerWallet != nil {
		set["seller_wallet"] = *patch.SellerWallet
	}
	if patch.Status != nil {
		set["status"] = string(*patch.Status)
	}
	if patch.NFTGenerated != nil {
		set["nft_generated"] = *patch.NFTGenerated
	}
	if patch.NFTTokenID != nil {
		set["nft_token_id"] = *patch.NFTTokenID
	}

	query := psql.Update(tableTransactions).SetMap(set).Where(sq.Eq{"id": id}).Suffix(returning(transactionColumns))

	return execReturning(ctx, r, "*postgresRemoteStore.UpdateTransaction", query, scanTransaction)
}

func (r *postgresRemoteStore) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	query := psql.Select(transactionColumns...).From(tableTransactions).Where(sq.Eq{"id": id}).Limit(1)

	return queryOne(ctx, r, "*postgresRemoteStore.GetTransaction", query, scanTransaction)
}

// ── downloads ────────────────────────────────────────────────────────────────

func (r *postgresRemoteStore) CreateDownload(ctx context.Context, download models.Download) (models.Download, error) {
	download = r.records.newDownload(download)

	query := psql.Insert(tableDownloads).Columns(downloadColumns...).
		Values(download.ID, download.DocumentID, download.UserWallet, download.IsPaid,
			nullString(download.TransactionID), download.DownloadedAt).
		Suffix(returning(downloadColumns))

	created, err := execReturning(ctx, r, "*postgresRemoteStore.CreateDownload", query, scanDownload)
	if err != nil {
		return models.Download{}, err
	}
	if created == nil {
		return models.Download{}, fmt.Errorf("%w: download was not saved", ErrExecutingStatement)
	}

	return *created, nil
}

func (r *postgresRemoteStore) GetDownloads(ctx context.Context, documentID string) ([]models.Download, error) {
	query := psql.Select(downloadColumns...).From(tableDownloads).
		Where(sq.Eq{"document_id": documentID}).OrderBy("downloaded_at")

	return queryMany(ctx, r, "*postgresRemoteStore.GetDownloads", query, scanDownload)
}

// ── nfts ─────────────────────────────────────────────────────────────────────

func (r *postgresRemoteStore) CreateNFT(ctx context.Context, nft models.NFT) (models.NFT, error) {
	nft = r.records.newNFT(nft)
	attributes, err := json.Marshal(nft.Attributes)
	if err != nil {
		return models.NFT{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	query := psql.Insert(tableNFTs).Columns(nftColumns...).
		Values(nft.ID, nft.TokenID, nft.ContractAddress, nft.DocumentID, nft.OwnerWallet, nft.MetadataURI,
			nft.ImageURL, nft.Name, nft.Description, attributes, nft.CreatedAt).
		Suffix(returning(nftColumns))

	created, err := execReturning(ctx, r, "*postgresRemoteStore.CreateNFT", query, scanNFT)
	if err != nil {
		return models.NFT{}, err
	}
	if created == nil {
		return models.NFT{}, fmt.Errorf("%w: nft was not saved", ErrExecutingStatement)
	}

	return *created, nil
}

func (r *postgresRemoteStore) GetNFTs(ctx context.Context, page models.Page) ([]models.NFT, error) {
	page = page.Normalize()
	query := psql.Select(nftColumns...).From(tableNFTs).
		OrderBy("created_at DESC").
		Limit(uint64(page.Limit)).Offset(uint64(page.Offset))

	return queryMany(ctx, r, "*postgresRemoteStore.GetNFTs", query, scanNFT)
}

func (r *postgresRemoteStore) GetUserNFTs(ctx context.Context, wallet string) ([]models.NFT, error) {
	query := psql.Select(nftColumns...).From(tableNFTs).
		Where(sq.Eq{"owner_wallet": NormalizeAddress(wallet)}).
		OrderBy("created_at DESC")

	return queryMany(ctx, r, "*postgresRemoteStore.GetUserNFTs", query, scanNFT)
}

func (r *postgresRemoteStore) GetNFTsBySubject(ctx context.Context, subject string) ([]models.NFT, error) {
	columns := make([]string, len(nftColumns))
	for i, c := range nftColumns {
		columns[i] = "n." + c
	}

	query := psql.Select(columns...).From(tableNFTs + " n").
		Join(tableDocuments + " d ON d.id::text = n.document_id").
		Where(sq.Eq{"d.subject": subject}).
		OrderBy("n.created_at DESC")

	return queryMany(ctx, r, "*postgresRemoteStore.GetNFTsBySubject", query, scanNFT)
}

func (r *postgresRemoteStore) TransferNFT(ctx context.Context, tokenID, from, to string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Update(tableNFTs).
		Set("owner_wallet", NormalizeAddress(to)).
		Where(sq.Eq{"token_id": tokenID, "owner_wallet": NormalizeAddress(from)}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postgresRemoteStore.TransferNFT").Msg("error updating owner")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, classifyRemoteError(r.db.errorClassificator, err))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

// ── helpers ──────────────────────────────────────────────────────────────────

func queryOne[T any](ctx context.Context, r *postgresRemoteStore, fn string, b sq.SelectBuilder, scan func(rowScanner) (T, error)) (*T, error) {
	log := logger.FromContext(ctx)

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	v, err := scan(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error querying row")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, classifyRemoteError(r.db.errorClassificator, err))
	}

	return &v, nil
}

func queryMany[T any](ctx context.Context, r *postgresRemoteStore, fn string, b sq.SelectBuilder, scan func(rowScanner) (T, error)) ([]T, error) {
	log := logger.FromContext(ctx)

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, classifyRemoteError(r.db.errorClassificator, err))
	}
	defer rows.Close()

	result := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			log.Err(err).Str("func", fn).Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		result = append(result, v)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

// execReturning runs an INSERT or UPDATE with a RETURNING clause. No
// affected row yields (nil, nil).
func execReturning[T any, B sq.Sqlizer](ctx context.Context, r *postgresRemoteStore, fn string, b B, scan func(rowScanner) (T, error)) (*T, error) {
	log := logger.FromContext(ctx)

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	v, err := scan(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error executing statement")
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, classifyRemoteError(r.db.errorClassificator, err))
	}

	return &v, nil
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	var username, email, avatarURL, bio sql.NullString
	err := row.Scan(&u.ID, &u.WalletAddress, &username, &email, &avatarURL, &bio, &u.CreatedAt, &u.UpdatedAt)
	u.Username, u.Email, u.AvatarURL, u.Bio = username.String, email.String, avatarURL.String, bio.String
	return u, err
}

func scanDocument(row rowScanner) (models.Document, error) {
	var d models.Document
	var course, professor, academicYear, aiSummary, nftTokenID, nftContract sql.NullString
	var tags []byte
	err := row.Scan(&d.ID, &d.Title, &d.Description, &d.Subject, &d.University, &course, &professor, &academicYear, &tags,
		&d.PriceETH, &d.IsFree, &d.FileURL, &d.FileName, &d.FileSize, &d.FileType, &d.UploadPath,
		&aiSummary, &nftTokenID, &nftContract, &d.DownloadsCount, &d.PurchasesCount,
		&d.UserID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return d, err
	}

	d.Course, d.Professor, d.AcademicYear = course.String, professor.String, academicYear.String
	d.AISummary, d.NFTTokenID, d.NFTContractAddress = aiSummary.String, nftTokenID.String, nftContract.String
	d.Tags = []string{}
	if len(tags) > 0 {
		if err = json.Unmarshal(tags, &d.Tags); err != nil {
			return d, err
		}
	}

	return d, nil
}

func scanTransaction(row rowScanner) (models.Transaction, error) {
	var t models.Transaction
	var status string
	var nftTokenID sql.NullString
	err := row.Scan(&t.ID, &t.TransactionHash, &t.BuyerWallet, &t.SellerWallet, &t.DocumentID, &t.AmountETH,
		&status, &t.NFTGenerated, &nftTokenID, &t.CreatedAt, &t.UpdatedAt)
	t.Status = models.TransactionStatus(status)
	t.NFTTokenID = nftTokenID.String
	return t, err
}

func scanDownload(row rowScanner) (models.Download, error) {
	var d models.Download
	var txID sql.NullString
	err := row.Scan(&d.ID, &d.DocumentID, &d.UserWallet, &d.IsPaid, &txID, &d.DownloadedAt)
	d.TransactionID = txID.String
	return d, err
}

func scanNFT(row rowScanner) (models.NFT, error) {
	var n models.NFT
	var attributes []byte
	err := row.Scan(&n.ID, &n.TokenID, &n.ContractAddress, &n.DocumentID, &n.OwnerWallet, &n.MetadataURI,
		&n.ImageURL, &n.Name, &n.Description, &attributes, &n.CreatedAt)
	if err != nil {
		return n, err
	}

	n.Attributes = []models.NFTAttribute{}
	if len(attributes) > 0 {
		if err = json.Unmarshal(attributes, &n.Attributes); err != nil {
			return n, err
		}
	}

	return n, nil
}
