package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Document is a listed set of notes.
type Document struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Subject      string   `json:"subject"`
	University   string   `json:"university"`
	Course       string   `json:"course,omitempty"`
	Professor    string   `json:"professor,omitempty"`
	AcademicYear string   `json:"academic_year,omitempty"`
	Tags         []string `json:"tags"`

	// PriceETH is zero when the document is free.
	PriceETH decimal.Decimal `json:"price_eth"`
	IsFree   bool            `json:"is_free"`

	FileURL    string `json:"file_url"`
	FileName   string `json:"file_name"`
	FileSize   int64  `json:"file_size"`
	FileType   string `json:"file_type"`
	UploadPath string `json:"upload_path"`

	// AISummary holds a JSON encoded DocumentSummary once generated.
	AISummary          string `json:"ai_summary,omitempty"`
	NFTTokenID         string `json:"nft_token_id,omitempty"`
	NFTContractAddress string `json:"nft_contract_address,omitempty"`

	DownloadsCount int64 `json:"downloads_count"`
	PurchasesCount int64 `json:"purchases_count"`

	// UserID references the owning User.
	UserID string `json:"user_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DocumentPatch lists the mutable fields of a Document.
type DocumentPatch struct {
	AISummary          *string `json:"ai_summary,omitempty"`
	NFTTokenID         *string `json:"nft_token_id,omitempty"`
	NFTContractAddress *string `json:"nft_contract_address,omitempty"`
	DownloadsCount     *int64  `json:"downloads_count,omitempty"`
	PurchasesCount     *int64  `json:"purchases_count,omitempty"`
}

// Apply merges the patch into d.
func (p DocumentPatch) Apply(d *Document) {
	if p.AISummary != nil {
		d.AISummary = *p.AISummary
	}
	if p.NFTTokenID != nil {
		d.NFTTokenID = *p.NFTTokenID
	}
	if p.NFTContractAddress != nil {
		d.NFTContractAddress = *p.NFTContractAddress
	}
	if p.DownloadsCount != nil {
		d.DownloadsCount = *p.DownloadsCount
	}
	if p.PurchasesCount != nil {
		d.PurchasesCount = *p.PurchasesCount
	}
}

// DocumentSummary is the structured summary produced for a document.
type DocumentSummary struct {
	Summary           string   `json:"summary"`
	KeyPoints         []string `json:"keyPoints"`
	Topics            []string `json:"topics"`
	Difficulty        string   `json:"difficulty"`
	EstimatedReadTime int      `json:"estimatedReadTime"`
}

// PublishRequest carries the fields of the upload form.
type PublishRequest struct {
	Title        string
	Description  string
	Subject      string
	University   string
	Course       string
	Professor    string
	AcademicYear string
	Tags         []string
	Price        string
	Files        []UploadedFile
}

// UploadedFile is a file selected for upload.
type UploadedFile struct {
	Name        string
	ContentType string
	Size        int64
	Data        []byte
}

// FeaturedNote is a note discovered directly in the notes bucket. Its price
// and title are encoded in the object name.
type FeaturedNote struct {
	Name      string          `json:"name"`
	Title     string          `json:"title"`
	PriceETH  decimal.Decimal `json:"price_eth"`
	URL       string          `json:"url"`
	Size      int64           `json:"size"`
	CreatedAt time.Time       `json:"created_at"`
}

// StoredObject describes an object listed from a bucket.
type StoredObject struct {
	Name      string    `json:"name"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// UploadResult locates a file stored in the notes bucket.
type UploadResult struct {
	Path string `json:"path"`
	URL  string `json:"url"`
	// Fallback is set when the hosted storage failed and the file went to the
	// local store.
	Fallback bool `json:"fallback"`
}
