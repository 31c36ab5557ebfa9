package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus is the lifecycle state of a purchase.
type TransactionStatus string

// A Transaction moves from pending to exactly one of completed or failed.
const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionFailed    TransactionStatus = "failed"
)

// Transaction records a purchase of a Document.
type Transaction struct {
	ID              string            `json:"id"`
	TransactionHash string            `json:"transaction_hash"`
	BuyerWallet     string            `json:"buyer_wallet"`
	SellerWallet    string            `json:"seller_wallet"`
	DocumentID      string            `json:"document_id"`
	AmountETH       decimal.Decimal   `json:"amount_eth"`
	Status          TransactionStatus `json:"status"`
	NFTGenerated    bool              `json:"nft_generated"`
	NFTTokenID      string            `json:"nft_token_id,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// TransactionPatch lists the mutable fields of a Transaction.
type TransactionPatch struct {
	TransactionHash *string            `json:"transaction_hash,omitempty"`
	SellerWallet    *string            `json:"seller_wallet,omitempty"`
	Status          *TransactionStatus `json:"status,omitempty"`
	NFTGenerated    *bool              `json:"nft_generated,omitempty"`
	NFTTokenID      *string            `json:"nft_token_id,omitempty"`
}

// Apply merges the patch into t.
func (p TransactionPatch) Apply(t *Transaction) {
	if p.TransactionHash != nil {
		t.TransactionHash = *p.TransactionHash
	}
	if p.SellerWallet != nil {
		t.SellerWallet = *p.SellerWallet
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.NFTGenerated != nil {
		t.NFTGenerated = *p.NFTGenerated
	}
	if p.NFTTokenID != nil {
		t.NFTTokenID = *p.NFTTokenID
	}
}

// Download is an append-only record of a document being obtained.
type Download struct {
	ID            string    `json:"id"`
	DocumentID    string    `json:"document_id"`
	UserWallet    string    `json:"user_wallet"`
	IsPaid        bool      `json:"is_paid"`
	TransactionID string    `json:"transaction_id,omitempty"`
	DownloadedAt  time.Time `json:"downloaded_at"`
}

// PaymentResult is the outcome of a purchase attempt. Error is a user facing
// message and is empty on success.
type PaymentResult struct {
	Success         bool         `json:"success"`
	TransactionHash string       `json:"transaction_hash,omitempty"`
	Error           string       `json:"error,omitempty"`
	Transaction     *Transaction `json:"transaction,omitempty"`
	NFTJobID        string       `json:"nft_job_id,omitempty"`
}

// Bid is an off-chain offer signed with the wallet's personal_sign.
type Bid struct {
	Wallet    string          `json:"wallet"`
	Title     string          `json:"title"`
	AmountETH decimal.Decimal `json:"amount_eth"`
	Message   string          `json:"message"`
	Signature string          `json:"signature"`
	SignedAt  time.Time       `json:"signed_at"`
}
