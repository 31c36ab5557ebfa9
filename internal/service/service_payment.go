package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/unibrain/internal/app"
	"github.com/MKhiriev/unibrain/internal/logger"
	"github.com/MKhiriev/unibrain/internal/queue"
	"github.com/MKhiriev/unibrain/internal/store"
	"github.com/MKhiriev/unibrain/internal/wallet"
	"github.com/MKhiriev/unibrain/models"
)

// paymentService pays sellers through the wallet provider and records the
// outcome. Purchase counters and the paid download are written only once the
// transfer is confirmed; NFT generation is handed to the queue.
type paymentService struct {
	provider wallet.Provider
	network  wallet.Network
	adapter  *store.Adapter
	queue    queue.Queue

	logger *logger.Logger
}

func NewPaymentService(provider wallet.Provider, network wallet.Network, adapter *store.Adapter, q queue.Queue, logger *logger.Logger) PaymentService {
	return &paymentService{
		provider: provider,
		network:  network,
		adapter:  adapter,
		queue:    q,
		logger:   logger,
	}
}

func (p *paymentService) PurchaseDocument(ctx context.Context, doc models.Document, buyer string) (models.PaymentResult, error) {
	log := logger.FromContext(ctx)

	buyer = store.NormalizeAddress(buyer)
	if buyer == "" {
		return models.PaymentResult{}, ErrNotAuthenticated
	}
	if doc.ID == "" {
		return models.PaymentResult{}, ErrInvalidDataProvided
	}
	if !doc.PriceETH.IsPositive() {
		return models.PaymentResult{}, ErrFreeDocument
	}
	if p.provider == nil {
		return failedPayment(wallet.ErrProviderMissing), nil
	}

	created, err := p.adapter.CreateTransaction(ctx, models.Transaction{
		BuyerWallet: buyer,
		DocumentID:  doc.ID,
		AmountETH:   doc.PriceETH,
		Status:      models.TransactionPending,
	})
	if err != nil {
		log.Err(err).Str("func", "*paymentService.PurchaseDocument").Str("document_id", doc.ID).Msg("error recording transaction")
		return failedPayment(err), nil
	}
	tx := created.Value

	seller, err := p.sellerAddress(ctx, doc.UserID)
	if err != nil {
		log.Err(err).Str("func", "*paymentService.PurchaseDocument").Str("user_id", doc.UserID).Msg("seller lookup failed")
		p.markFailed(ctx, tx.ID)
		return failedPayment(err), nil
	}

	hash, err := p.provider.SendTransaction(ctx, wallet.TxRequest{
		From:     buyer,
		To:       seller,
		Value:    wallet.ToWei(doc.PriceETH),
		GasLimit: wallet.TransferGasLimit,
	})
	if err != nil {
		log.Err(err).Str("func", "*paymentService.PurchaseDocument").Str("transaction_id", tx.ID).Msg("transfer was not sent")
		p.markFailed(ctx, tx.ID)
		return failedPayment(err), nil
	}

	if _, err = p.adapter.UpdateTransaction(ctx, tx.ID, models.TransactionPatch{
		TransactionHash: &hash,
		SellerWallet:    &seller,
	}); err != nil {
		log.Err(err).Str("func", "*paymentService.PurchaseDocument").Str("tx_hash", hash).Msg("error attaching transaction hash")
	}

	receipt, err := p.provider.WaitForReceipt(ctx, hash)
	if err != nil {
		log.Err(err).Str("func", "*paymentService.PurchaseDocument").Str("tx_hash", hash).Msg("error waiting for receipt")
		p.markFailed(ctx, tx.ID)
		result := failedPayment(err)
		result.TransactionHash = hash
		return result, nil
	}

	if receipt.Status != 1 {
		log.Warn().Str("func", "*paymentService.PurchaseDocument").Str("tx_hash", hash).Msg("transfer reverted")
		p.markFailed(ctx, tx.ID)
		result := failedPayment(wallet.ErrTransactionFailed)
		result.TransactionHash = hash
		return result, nil
	}

	return p.complete(ctx, doc, tx, hash), nil
}

// complete books a confirmed purchase and queues its NFT.
func (p *paymentService) complete(ctx context.Context, doc models.Document, tx models.Transaction, hash string) models.PaymentResult {
	log := logger.FromContext(ctx)

	status := models.TransactionCompleted
	updated, err := p.adapter.UpdateTransaction(ctx, tx.ID, models.TransactionPatch{Status: &status})
	if err != nil {
		log.Err(err).Str("func", "*paymentService.complete").Str("transaction_id", tx.ID).Msg("error completing transaction")
	}
	if updated.Value != nil {
		tx = *updated.Value
	} else {
		tx.Status = status
		tx.TransactionHash = hash
	}

	purchases := doc.PurchasesCount
	if current, err := p.adapter.GetDocument(ctx, doc.ID); err == nil && current.Value != nil {
		purchases = current.Value.PurchasesCount
	}
	purchases++
	if _, err = p.adapter.UpdateDocument(ctx, doc.ID, models.DocumentPatch{PurchasesCount: &purchases}); err != nil {
		log.Err(err).Str("func", "*paymentService.complete").Str("document_id", doc.ID).Msg("error updating purchase counter")
	}

	if _, err = p.adapter.CreateDownload(ctx, models.Download{
		DocumentID:    doc.ID,
		UserWallet:    tx.BuyerWallet,
		IsPaid:        true,
		TransactionID: tx.ID,
	}); err != nil {
		log.Err(err).Str("func", "*paymentService.complete").Str("document_id", doc.ID).Msg("error recording paid download")
	}

	result := models.PaymentResult{
		Success:         true,
		TransactionHash: hash,
		Transaction:     &tx,
	}

	job, err := p.queue.Enqueue(ctx, queue.Task{
		TransactionID: tx.ID,
		DocumentID:    doc.ID,
		BuyerWallet:   tx.BuyerWallet,
	})
	if err != nil {
		log.Err(err).Str("func", "*paymentService.complete").Str("transaction_id", tx.ID).Msg("error queueing nft generation")
		return result
	}
	result.NFTJobID = job.ID

	log.Info().Str("func", "*paymentService.complete").
		Str("transaction_id", tx.ID).
		Str("tx_hash", hash).
		Str("job_id", job.ID).
		Msg("purchase completed")

	return result
}

func (p *paymentService) sellerAddress(ctx context.Context, userID string) (string, error) {
	if userID == "" {
		return "", ErrSellerNotFound
	}

	found, err := p.adapter.GetUserByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("error resolving seller: %w", err)
	}
	if found.Value == nil || found.Value.WalletAddress == "" {
		return "", ErrSellerNotFound
	}
	return found.Value.WalletAddress, nil
}

func (p *paymentService) markFailed(ctx context.Context, txID string) {
	status := models.TransactionFailed
	if _, err := p.adapter.UpdateTransaction(ctx, txID, models.TransactionPatch{Status: &status}); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*paymentService.markFailed").Str("transaction_id", txID).Msg("error marking transaction failed")
	}
}

// failedPayment builds the user facing failure of a purchase.
func failedPayment(err error) models.PaymentResult {
	return models.PaymentResult{Success: false, Error: PaymentMessage(err)}
}

func (p *paymentService) DownloadForFree(ctx context.Context, documentID, address string) error {
	log := logger.FromContext(ctx)

	address = store.NormalizeAddress(address)
	if address == "" {
		return ErrNotAuthenticated
	}
	if documentID == "" {
		return ErrInvalidDataProvided
	}

	found, err := p.adapter.GetDocument(ctx, documentID)
	if err != nil {
		log.Err(err).Str("func", "*paymentService.DownloadForFree").Str("document_id", documentID).Msg("error loading document")
		return err
	}
	if found.Value == nil {
		return ErrDocumentNotFound
	}
	if !found.Value.IsFree {
		return ErrPaidDocument
	}

	if _, err = p.adapter.CreateDownload(ctx, models.Download{
		DocumentID: documentID,
		UserWallet: address,
		IsPaid:     false,
	}); err != nil {
		log.Err(err).Str("func", "*paymentService.DownloadForFree").Str("document_id", documentID).Msg("error recording download")
		return err
	}

	downloads := found.Value.DownloadsCount + 1
	if _, err = p.adapter.UpdateDocument(ctx, documentID, models.DocumentPatch{DownloadsCount: &downloads}); err != nil {
		log.Err(err).Str("func", "*paymentService.DownloadForFree").Str("document_id", documentID).Msg("error updating download counter")
		return err
	}

	return nil
}

func (p *paymentService) QuickBuy(ctx context.Context, note models.FeaturedNote, buyer string) (models.PaymentResult, error) {
	log := logger.FromContext(ctx)

	if p.provider == nil {
		return models.PaymentResult{}, wallet.ErrProviderMissing
	}

	merchant, ok, err := p.adapter.KeyValue().Get(ctx, store.KeyMerchantAddress)
	if err != nil {
		return models.PaymentResult{}, err
	}
	if !ok || merchant == "" {
		return models.PaymentResult{}, ErrMerchantNotConfigured
	}

	if err = ensureNetwork(ctx, p.provider, p.network); err != nil {
		log.Err(err).Str("func", "*paymentService.QuickBuy").Msg("error switching network")
		return models.PaymentResult{Error: app.MsgPurchaseCancelled}, nil
	}

	from := store.NormalizeAddress(buyer)
	if from == "" {
		accounts, err := p.provider.RequestAccounts(ctx)
		if err != nil || len(accounts) == 0 {
			log.Err(err).Str("func", "*paymentService.QuickBuy").Msg("no account for quick buy")
			return models.PaymentResult{Error: app.MsgPurchaseCancelled}, nil
		}
		from = store.NormalizeAddress(accounts[0])
	}

	hash, err := p.provider.SendTransaction(ctx, wallet.TxRequest{
		From:  from,
		To:    merchant,
		Value: wallet.ToWei(note.PriceETH),
	})
	if err != nil {
		log.Err(err).Str("func", "*paymentService.QuickBuy").Str("note", note.Name).Msg("quick buy failed")
		return models.PaymentResult{Error: app.MsgPurchaseCancelled}, nil
	}

	log.Info().Str("func", "*paymentService.QuickBuy").Str("note", note.Name).Str("tx_hash", hash).Msg("quick buy sent")
	return models.PaymentResult{Success: true, TransactionHash: hash}, nil
}
