package store

import (
	"context"

	"github.com/MKhiriev/unibrain/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository stores marketplace profiles. Wallet addresses are matched
// case-insensitively; a missing user is reported as (nil, nil).
type UserRepository interface {
	GetUser(ctx context.Context, wallet string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	UpdateUser(ctx context.Context, wallet string, patch models.UserPatch) (*models.User, error)
}

// DocumentRepository stores listed notes. GetDocuments returns newest first.
type DocumentRepository interface {
	GetDocuments(ctx context.Context, page models.Page) ([]models.Document, error)
	GetDocument(ctx context.Context, id string) (*models.Document, error)
	CreateDocument(ctx context.Context, doc models.Document) (models.Document, error)
	UpdateDocument(ctx context.Context, id string, patch models.DocumentPatch) (*models.Document, error)
}

type TransactionRepository interface {
	CreateTransaction(ctx context.Context, tx models.Transaction) (models.Transaction, error)
	UpdateTransaction(ctx context.Context, id string, patch models.TransactionPatch) (*models.Transaction, error)
	GetTransaction(ctx context.Context, id string) (*models.Transaction, error)
}

type DownloadRepository interface {
	CreateDownload(ctx context.Context, download models.Download) (models.Download, error)
	GetDownloads(ctx context.Context, documentID string) ([]models.Download, error)
}

// NFTRepository stores ownership records. TransferNFT reports whether a
// record owned by from was found and moved.
type NFTRepository interface {
	CreateNFT(ctx context.Context, nft models.NFT) (models.NFT, error)
	GetNFTs(ctx context.Context, page models.Page) ([]models.NFT, error)
	GetUserNFTs(ctx context.Context, wallet string) ([]models.NFT, error)
	GetNFTsBySubject(ctx context.Context, subject string) ([]models.NFT, error)
	TransferNFT(ctx context.Context, tokenID, from, to string) (bool, error)
}

// Store aggregates every entity repository. The local store and the remote
// stores all satisfy it.
type Store interface {
	UserRepository
	DocumentRepository
	TransactionRepository
	DownloadRepository
	NFTRepository
}

// KeyValue is a string key-value store. Get reports whether the key exists.
type KeyValue interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// ObjectStore keeps uploaded files and metadata documents in named buckets.
type ObjectStore interface {
	Upload(ctx context.Context, bucket, path string, data []byte, contentType string) (string, error)
	List(ctx context.Context, bucket string, limit int) ([]models.StoredObject, error)
	PublicURL(bucket, path string) string
}
