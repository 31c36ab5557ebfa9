package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/unibrain/internal/ai"
	"github.com/MKhiriev/unibrain/internal/config"
	"github.com/MKhiriev/unibrain/internal/contracts"
	"github.com/MKhiriev/unibrain/internal/logger"
	"github.com/MKhiriev/unibrain/internal/queue"
	"github.com/MKhiriev/unibrain/internal/store"
	"github.com/MKhiriev/unibrain/internal/utils"
	"github.com/MKhiriev/unibrain/models"
	"github.com/ethereum/go-ethereum/common"
)

// DocumentContentPlaceholder is summarized when the text of a purchased
// document is not available to the generator.
const DocumentContentPlaceholder = "Document content"

// MockMetadataURIPrefix is used when the metadata document cannot be stored.
const MockMetadataURIPrefix = "https://gateway.pinata.cloud/ipfs/mock-hash-"

// nftService turns confirmed purchases into ownership records.
type nftService struct {
	adapter    *store.Adapter
	summarizer *ai.Summarizer
	// contract is nil when no wallet can sign mint transactions.
	contract *contracts.NFTContract
	queue    queue.Queue

	ids    utils.IDGenerator
	now    func() time.Time
	logger *logger.Logger
}

func NewNFTService(adapter *store.Adapter, summarizer *ai.Summarizer, contract *contracts.NFTContract, q queue.Queue, logger *logger.Logger) NFTService {
	return &nftService{
		adapter:    adapter,
		summarizer: summarizer,
		contract:   contract,
		queue:      q,
		ids:        utils.NewUUIDGenerator(),
		now:        time.Now,
		logger:     logger,
	}
}

func (n *nftService) HandleJob(ctx context.Context, job queue.Job) (string, error) {
	nft, err := n.GenerateForPurchase(ctx, job.Task())
	if err != nil {
		return "", err
	}
	return nft.TokenID, nil
}

// GenerateForPurchase summarizes the document when it has no summary yet,
// mints the NFT for the buyer and flags the transaction.
func (n *nftService) GenerateForPurchase(ctx context.Context, task queue.Task) (models.NFT, error) {
	log := logger.FromContext(ctx)

	found, err := n.adapter.GetDocument(ctx, task.DocumentID)
	if err != nil {
		log.Err(err).Str("func", "*nftService.GenerateForPurchase").Str("document_id", task.DocumentID).Msg("error loading document")
		return models.NFT{}, err
	}
	if found.Value == nil {
		return models.NFT{}, ErrDocumentNotFound
	}
	doc := *found.Value

	summary, err := n.documentSummary(ctx, doc)
	if err != nil {
		return models.NFT{}, err
	}

	metadata := ai.GenerateNFTMetadata(ai.DocumentInfo{
		Title:      doc.Title,
		Subject:    doc.Subject,
		University: doc.University,
		Professor:  doc.Professor,
		Summary:    summary,
	})

	nft, err := n.CreateNFT(ctx, task.BuyerWallet, metadata, doc.ID)
	if err != nil {
		return models.NFT{}, err
	}

	generated := true
	if _, err = n.adapter.UpdateTransaction(ctx, task.TransactionID, models.TransactionPatch{
		NFTGenerated: &generated,
		NFTTokenID:   &nft.TokenID,
	}); err != nil {
		log.Err(err).Str("func", "*nftService.GenerateForPurchase").Str("transaction_id", task.TransactionID).Msg("error flagging transaction")
		return nft, fmt.Errorf("error flagging transaction: %w", err)
	}

	log.Info().Str("func", "*nftService.GenerateForPurchase").
		Str("token_id", nft.TokenID).
		Str("transaction_id", task.TransactionID).
		Msg("nft generated")

	return nft, nil
}

// documentSummary returns the stored summary of doc, generating and storing
// one when it is missing or unreadable.
func (n *nftService) documentSummary(ctx context.Context, doc models.Document) (models.DocumentSummary, error) {
	var summary models.DocumentSummary
	if doc.AISummary != "" {
		if err := json.Unmarshal([]byte(doc.AISummary), &summary); err == nil {
			return summary, nil
		}
		n.logger.Warn().Str("func", "*nftService.documentSummary").Str("document_id", doc.ID).Msg("stored summary is unreadable, regenerating")
	}

	summary = n.summarizer.SummarizeDocument(ctx, DocumentContentPlaceholder, doc.Title, doc.Subject)
	encoded, err := json.Marshal(summary)
	if err != nil {
		return models.DocumentSummary{}, fmt.Errorf("error encoding summary: %w", err)
	}

	text := string(encoded)
	if _, err = n.adapter.UpdateDocument(ctx, doc.ID, models.DocumentPatch{AISummary: &text}); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*nftService.documentSummary").Str("document_id", doc.ID).Msg("error storing summary")
		return models.DocumentSummary{}, err
	}

	return summary, nil
}

func (n *nftService) CreateNFT(ctx context.Context, owner string, metadata models.NFTMetadata, documentID string) (models.NFT, error) {
	log := logger.FromContext(ctx)

	owner = store.NormalizeAddress(owner)
	if owner == "" || documentID == "" {
		return models.NFT{}, ErrInvalidDataProvided
	}

	metadataURI := n.uploadMetadata(ctx, metadata)
	tokenID := n.tokenID()

	contractAddress := config.ZeroAddress
	if n.contract != nil {
		contractAddress = n.contract.Address()
		if n.contract.Enabled() {
			hash, err := n.contract.Mint(ctx, owner, owner, metadataURI)
			if err != nil {
				log.Err(err).Str("func", "*nftService.CreateNFT").Str("token_id", tokenID).Msg("mint submission failed")
			} else {
				log.Info().Str("func", "*nftService.CreateNFT").Str("tx_hash", hash).Msg("mint submitted")
			}
		}
	}

	created, err := n.adapter.CreateNFT(ctx, models.NFT{
		TokenID:         tokenID,
		ContractAddress: contractAddress,
		DocumentID:      documentID,
		OwnerWallet:     owner,
		MetadataURI:     metadataURI,
		ImageURL:        metadata.Image,
		Name:            metadata.Name,
		Description:     metadata.Description,
		Attributes:      metadata.Attributes,
	})
	if err != nil {
		log.Err(err).Str("func", "*nftService.CreateNFT").Str("token_id", tokenID).Msg("error storing nft")
		return models.NFT{}, err
	}

	return created.Value, nil
}

// uploadMetadata stores the metadata document and returns its public URL,
// or a mock URI when storage is unavailable.
func (n *nftService) uploadMetadata(ctx context.Context, metadata models.NFTMetadata) string {
	log := logger.FromContext(ctx)
	mock := MockMetadataURIPrefix + strconv.FormatInt(n.now().UnixMilli(), 10)

	data, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		log.Err(err).Str("func", "*nftService.uploadMetadata").Msg("error encoding metadata")
		return mock
	}

	path := "metadata/" + n.ids.Generate() + ".json"
	uploaded, err := n.adapter.Upload(ctx, store.BucketNFTMetadata, path, data, "application/json")
	if err != nil || uploaded.Value == "" {
		log.Err(err).Str("func", "*nftService.uploadMetadata").Str("path", path).Msg("metadata upload failed, using mock uri")
		return mock
	}

	return uploaded.Value
}

// tokenID is the millisecond timestamp followed by a random base36 suffix.
func (n *nftService) tokenID() string {
	return strconv.FormatInt(n.now().UnixMilli(), 10) + randomBase36(6)
}

func (n *nftService) GetAllNFTs(ctx context.Context, page models.Page) (store.Result[[]models.NFT], error) {
	return n.adapter.GetNFTs(ctx, page.Normalize())
}

func (n *nftService) GetUserNFTs(ctx context.Context, wallet string) (store.Result[[]models.NFT], error) {
	return n.adapter.GetUserNFTs(ctx, store.NormalizeAddress(wallet))
}

func (n *nftService) GetNFTsBySubject(ctx context.Context, subject string) (store.Result[[]models.NFT], error) {
	return n.adapter.GetNFTsBySubject(ctx, subject)
}

func (n *nftService) TransferNFT(ctx context.Context, tokenID, from, to string) error {
	if tokenID == "" || !common.IsHexAddress(from) || !common.IsHexAddress(to) {
		return ErrInvalidDataProvided
	}

	moved, err := n.adapter.TransferNFT(ctx, tokenID, from, to)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*nftService.TransferNFT").Str("token_id", tokenID).Msg("transfer failed")
		return err
	}
	if !moved.Value {
		return ErrNFTNotFound
	}
	return nil
}

func (n *nftService) GetJob(ctx context.Context, jobID string) (queue.Job, error) {
	job, ok, err := n.queue.GetJob(ctx, jobID)
	if err != nil {
		return queue.Job{}, err
	}
	if !ok {
		return queue.Job{}, ErrJobNotFound
	}
	return job, nil
}

const base36Digits = "0123456789abcdefghijklmnopqrstuvwxyz"

func randomBase36(n int) string {
	var b strings.Builder
	b.Grow(n)
	for range n {
		b.WriteByte(base36Digits[rand.IntN(len(base36Digits))])
	}
	return b.String()
}
