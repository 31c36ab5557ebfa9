package service

import (
	"context"
	"encoding/json"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/unibrain/internal/ai"
	"github.com/MKhiriev/unibrain/internal/logger"
	"github.com/MKhiriev/unibrain/internal/store"
	"github.com/MKhiriev/unibrain/internal/validators"
	"github.com/MKhiriev/unibrain/models"
	"github.com/shopspring/decimal"
)

const (
	// FeaturedNotesLimit bounds the listing of the notes bucket.
	FeaturedNotesLimit = 100

	// NoteNameSeparator splits the price and title encoded in an object name.
	NoteNameSeparator = "__"

	// MaxNFTProbability caps the score shown on the upload form.
	MaxNFTProbability = 95
)

// DefaultFeaturedPrice is used for notes whose name carries no price.
var DefaultFeaturedPrice = decimal.RequireFromString("0.01")

var priceInName = regexp.MustCompile(`^\d+(\.\d+)?$`)

type marketplaceService struct {
	adapter   *store.Adapter
	session   SessionService
	validator validators.Validator
	// summarizer is optional; without it documents are published unsummarized.
	summarizer *ai.Summarizer

	now    func() time.Time
	logger *logger.Logger
}

func NewMarketplaceService(adapter *store.Adapter, session SessionService, validator validators.Validator, summarizer *ai.Summarizer, logger *logger.Logger) MarketplaceService {
	return &marketplaceService{
		adapter:    adapter,
		session:    session,
		validator:  validator,
		summarizer: summarizer,
		now:        time.Now,
		logger:     logger,
	}
}

func (m *marketplaceService) GetDocuments(ctx context.Context, page models.Page) (store.Result[[]models.Document], error) {
	return m.adapter.GetDocuments(ctx, page.Normalize())
}

func (m *marketplaceService) GetDocument(ctx context.Context, id string) (store.Result[*models.Document], error) {
	found, err := m.adapter.GetDocument(ctx, id)
	if err != nil {
		return found, err
	}
	if found.Value == nil {
		return found, ErrDocumentNotFound
	}
	return found, nil
}

func (m *marketplaceService) Mode() store.Mode {
	return m.adapter.Mode()
}

// PublishDocument uploads the files of req and lists the note under the
// current user. The first file becomes the document file.
func (m *marketplaceService) PublishDocument(ctx context.Context, req models.PublishRequest) (models.Document, error) {
	log := logger.FromContext(ctx)

	if err := m.validator.Validate(ctx, req); err != nil {
		log.Err(err).Str("func", "*marketplaceService.PublishDocument").Msg("invalid publish request")
		return models.Document{}, err
	}

	user := m.session.CurrentUser()
	if user == nil {
		return models.Document{}, ErrNotAuthenticated
	}

	price, err := validators.ParsePrice(req.Price)
	if err != nil {
		return models.Document{}, err
	}

	doc := models.Document{
		Title:        strings.TrimSpace(req.Title),
		Description:  strings.TrimSpace(req.Description),
		Subject:      req.Subject,
		University:   strings.TrimSpace(req.University),
		Course:       strings.TrimSpace(req.Course),
		Professor:    strings.TrimSpace(req.Professor),
		AcademicYear: strings.TrimSpace(req.AcademicYear),
		Tags:         cleanTags(req.Tags),
		PriceETH:     price,
		IsFree:       price.IsZero(),
		UserID:       user.ID,
	}

	for i, file := range req.Files {
		uploaded, err := m.UploadFile(ctx, file, req.Price, req.Title)
		if err != nil {
			return models.Document{}, err
		}
		if i == 0 {
			doc.FileURL = uploaded.URL
			doc.FileName = file.Name
			doc.FileSize = fileSize(file)
			doc.FileType = file.ContentType
			doc.UploadPath = uploaded.Path
			doc.AISummary = m.summarize(ctx, file, doc.Title, doc.Subject)
		}
	}

	created, err := m.adapter.CreateDocument(ctx, doc)
	if err != nil {
		log.Err(err).Str("func", "*marketplaceService.PublishDocument").Str("title", doc.Title).Msg("error creating document")
		return models.Document{}, err
	}

	log.Info().Str("func", "*marketplaceService.PublishDocument").
		Str("document_id", created.Value.ID).
		Bool("fallback", created.Fallback).
		Msg("document published")

	return created.Value, nil
}

// summarize returns the JSON encoded summary of file, or "" when no
// summarizer is configured.
func (m *marketplaceService) summarize(ctx context.Context, file models.UploadedFile, title, subject string) string {
	if m.summarizer == nil {
		return ""
	}
	log := logger.FromContext(ctx)

	content, err := ai.ExtractText(file)
	if err != nil {
		log.Warn().Err(err).Str("func", "*marketplaceService.summarize").Str("file", file.Name).Msg("no text extracted, summarizing from title")
		content = title
	}

	encoded, err := json.Marshal(m.summarizer.SummarizeDocument(ctx, content, title, subject))
	if err != nil {
		log.Err(err).Str("func", "*marketplaceService.summarize").Msg("error encoding summary")
		return ""
	}
	return string(encoded)
}

// UploadFile stores file in the notes bucket under
// [<price>__][<title>__]<ms>-<random>-<name>.
func (m *marketplaceService) UploadFile(ctx context.Context, file models.UploadedFile, price, title string) (models.UploadResult, error) {
	if err := m.validator.Validate(ctx, file); err != nil {
		return models.UploadResult{}, err
	}

	path := NoteObjectName(file.Name, price, title, m.now())
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	uploaded, err := m.adapter.Upload(ctx, store.BucketNotes, path, file.Data, contentType)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*marketplaceService.UploadFile").Str("path", path).Msg("upload failed")
		return models.UploadResult{}, err
	}

	return models.UploadResult{Path: path, URL: uploaded.Value, Fallback: uploaded.Fallback}, nil
}

// NoteObjectName encodes price and title into the object name of a note.
// Empty parts are omitted.
func NoteObjectName(fileName, price, title string, at time.Time) string {
	var b strings.Builder
	if price = strings.TrimSpace(price); price != "" {
		b.WriteString(price + NoteNameSeparator)
	}
	if title = strings.TrimSpace(title); title != "" {
		b.WriteString(strings.ReplaceAll(title, "/", "-") + NoteNameSeparator)
	}
	b.WriteString(strconv.FormatInt(at.UnixMilli(), 10))
	b.WriteString("-" + randomBase36(11) + "-")
	b.WriteString(fileName)
	return b.String()
}

// NFTProbability scores a publish request: 25 points each for a title over
// 20 characters, a description over 100, a subject with a course and at least
// one file.
func (m *marketplaceService) NFTProbability(req models.PublishRequest) int {
	score := 0
	if utf8.RuneCountInString(req.Title) > 20 {
		score += 25
	}
	if utf8.RuneCountInString(req.Description) > 100 {
		score += 25
	}
	if req.Subject != "" && req.Course != "" {
		score += 25
	}
	if len(req.Files) > 0 {
		score += 25
	}
	return min(score, MaxNFTProbability)
}

// FeaturedNotes lists the notes bucket, newest first.
func (m *marketplaceService) FeaturedNotes(ctx context.Context) ([]models.FeaturedNote, error) {
	listed, err := m.adapter.List(ctx, store.BucketNotes, FeaturedNotesLimit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*marketplaceService.FeaturedNotes").Msg("error listing notes")
		return nil, err
	}

	objects := slices.Clone(listed.Value)
	slices.SortStableFunc(objects, func(a, b models.StoredObject) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	notes := make([]models.FeaturedNote, 0, len(objects))
	for _, obj := range objects {
		if obj.Name == "" || strings.HasSuffix(obj.Name, "/") {
			continue
		}
		note := ParseNoteObjectName(obj.Name)
		note.URL = m.adapter.PublicURL(store.BucketNotes, obj.Name)
		note.Size = obj.Size
		note.CreatedAt = obj.CreatedAt
		notes = append(notes, note)
	}

	return notes, nil
}

// ParseNoteObjectName reads the price and title encoded by [NoteObjectName].
// A missing or malformed price becomes [DefaultFeaturedPrice]; a missing
// title becomes the whole name.
func ParseNoteObjectName(name string) models.FeaturedNote {
	note := models.FeaturedNote{Name: name, Title: name, PriceETH: DefaultFeaturedPrice}

	parts := strings.Split(name, NoteNameSeparator)
	if priceInName.MatchString(parts[0]) {
		if price, err := decimal.NewFromString(parts[0]); err == nil {
			note.PriceETH = price
		}
	}
	if len(parts) > 1 && parts[1] != "" {
		note.Title = parts[1]
	}

	return note
}

func (m *marketplaceService) Subjects() []string {
	return slices.Clone(validators.Subjects)
}

func cleanTags(tags []string) []string {
	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			cleaned = append(cleaned, tag)
		}
	}
	return cleaned
}

func fileSize(file models.UploadedFile) int64 {
	if file.Size > 0 {
		return file.Size
	}
	return int64(len(file.Data))
}
