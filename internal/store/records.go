package store

import (
	"strings"
	"time"

	"github.com/MKhiriev/unibrain/internal/utils"
	"github.com/MKhiriev/unibrain/models"
)

// recordFactory shapes outgoing records. Local and remote stores share it so
// that a record looks the same wherever it ends up.
type recordFactory struct {
	ids utils.IDGenerator
	now func() time.Time
}

func newRecordFactory() *recordFactory {
	return &recordFactory{
		ids: utils.NewUUIDGenerator(),
		now: func() time.Time { return time.Now().UTC() },
	}
}

// NormalizeAddress lower-cases and trims a wallet address.
func NormalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

// DefaultUsername is "user_" followed by the last six characters of the
// address.
func DefaultUsername(address string) string {
	if len(address) <= 6 {
		return "user_" + address
	}
	return "user_" + address[len(address)-6:]
}

func (f *recordFactory) newUser(user models.User) models.User {
	now := f.now()
	user.ID = f.ids.Generate()
	user.WalletAddress = NormalizeAddress(user.WalletAddress)
	if user.Username == "" {
		user.Username = DefaultUsername(user.WalletAddress)
	}
	user.CreatedAt = now
	user.UpdatedAt = now
	return user
}

func (f *recordFactory) newDocument(doc models.Document) models.Document {
	now := f.now()
	doc.ID = f.ids.Generate()
	doc.DownloadsCount = 0
	doc.PurchasesCount = 0
	if doc.Tags == nil {
		doc.Tags = []string{}
	}
	doc.CreatedAt = now
	doc.UpdatedAt = now
	return doc
}

func (f *recordFactory) newTransaction(tx models.Transaction) models.Transaction {
	now := f.now()
	tx.ID = f.ids.Generate()
	tx.BuyerWallet = NormalizeAddress(tx.BuyerWallet)
	tx.SellerWallet = NormalizeAddress(tx.SellerWallet)
	if tx.Status == "" {
		tx.Status = models.TransactionPending
	}
	tx.NFTGenerated = false
	tx.CreatedAt = now
	tx.UpdatedAt = now
	return tx
}

func (f *recordFactory) newDownload(d models.Download) models.Download {
	d.ID = f.ids.Generate()
	d.UserWallet = NormalizeAddress(d.UserWallet)
	d.DownloadedAt = f.now()
	return d
}

func (f *recordFactory) newNFT(nft models.NFT) models.NFT {
	nft.ID = f.ids.Generate()
	nft.OwnerWallet = NormalizeAddress(nft.OwnerWallet)
	if nft.Attributes == nil {
		nft.Attributes = []models.NFTAttribute{}
	}
	nft.CreatedAt = f.now()
	return nft
}

// normalizeTransactionPatch lower-cases the wallet carried by a patch.
func normalizeTransactionPatch(patch models.TransactionPatch) models.TransactionPatch {
	if patch.SellerWallet != nil {
		seller := NormalizeAddress(*patch.SellerWallet)
		patch.SellerWallet = &seller
	}
	return patch
}
