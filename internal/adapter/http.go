package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/unibrain/internal/config"
	"github.com/MKhiriev/unibrain/internal/logger"
	"github.com/MKhiriev/unibrain/internal/utils"
	"github.com/MKhiriev/unibrain/models"
	"github.com/go-resty/resty/v2"
)

const (
	restPrefix    = "/rest/v1/"
	storagePrefix = "/storage/v1/object/"
)

type supabaseBackend struct {
	client  *utils.HTTPClient
	baseURL string

	logger *logger.Logger
}

// NewSupabaseBackend constructs the REST implementation of [Backend]. Every
// request carries the API key both as "apikey" and as a bearer token.
//
// Returns an error if cfg.URL is empty or cannot be parsed as a valid URL.
func NewSupabaseBackend(cfg config.RemoteStorage, logger *logger.Logger) (Backend, error) {
	baseURL, err := normalizeBaseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid remote storage url: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.Timeout)
	client.
		SetHeader("apikey", cfg.APIKey).
		SetAuthToken(cfg.APIKey)

	return &supabaseBackend{client: client, baseURL: baseURL, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ── tables ───────────────────────────────────────────────────────────────────

func (s *supabaseBackend) Select(ctx context.Context, table string, query Query, out any) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryString(query.Encode()).
		Get(restPrefix + table)
	if err != nil {
		s.logger.Err(err).Str("func", "*supabaseBackend.Select").Str("table", table).Msg("request failed")
		return fmt.Errorf("select %s request: %w", table, err)
	}

	return decodeRows(resp, table, out)
}

func (s *supabaseBackend) Insert(ctx context.Context, table string, record any, out any) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Prefer", "return=representation").
		SetBody(record).
		Post(restPrefix + table)
	if err != nil {
		s.logger.Err(err).Str("func", "*supabaseBackend.Insert").Str("table", table).Msg("request failed")
		return fmt.Errorf("insert %s request: %w", table, err)
	}

	return decodeRows(resp, table, out)
}

func (s *supabaseBackend) Update(ctx context.Context, table string, query Query, patch any, out any) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Prefer", "return=representation").
		SetQueryString(query.Encode()).
		SetBody(patch).
		Patch(restPrefix + table)
	if err != nil {
		s.logger.Err(err).Str("func", "*supabaseBackend.Update").Str("table", table).Msg("request failed")
		return fmt.Errorf("update %s request: %w", table, err)
	}

	return decodeRows(resp, table, out)
}

func decodeRows(resp *resty.Response, table string, out any) error {
	if err := mapHTTPError(resp); err != nil {
		return err
	}
	if out == nil || len(resp.Body()) == 0 {
		return nil
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s response: %w", table, err)
	}

	return nil
}

// ── storage ──────────────────────────────────────────────────────────────────

func (s *supabaseBackend) Upload(ctx context.Context, bucket, path string, data []byte, contentType string) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetHeader("Cache-Control", "max-age=3600").
		SetHeader("x-upsert", "false").
		SetBody(data).
		Post(storagePrefix + bucket + "/" + escapePath(path))
	if err != nil {
		s.logger.Err(err).Str("func", "*supabaseBackend.Upload").Str("bucket", bucket).Msg("request failed")
		return fmt.Errorf("upload request: %w", err)
	}

	return mapHTTPError(resp)
}

type listRequest struct {
	Prefix string     `json:"prefix"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
	SortBy listSortBy `json:"sortBy"`
}

type listSortBy struct {
	Column string `json:"column"`
	Order  string `json:"order"`
}

type listedObject struct {
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	Metadata  struct {
		Size int64 `json:"size"`
	} `json:"metadata"`
}

func (s *supabaseBackend) List(ctx context.Context, bucket string, limit int) ([]models.StoredObject, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(listRequest{
			Limit:  limit,
			SortBy: listSortBy{Column: "created_at", Order: "desc"},
		}).
		Post(storagePrefix + "list/" + bucket)
	if err != nil {
		s.logger.Err(err).Str("func", "*supabaseBackend.List").Str("bucket", bucket).Msg("request failed")
		return nil, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var listed []listedObject
	if err = json.Unmarshal(resp.Body(), &listed); err != nil {
		return nil, fmt.Errorf("decode list response: %w", err)
	}

	objects := make([]models.StoredObject, 0, len(listed))
	for _, o := range listed {
		objects = append(objects, models.StoredObject{Name: o.Name, Size: o.Metadata.Size, CreatedAt: o.CreatedAt})
	}

	return objects, nil
}

func (s *supabaseBackend) PublicURL(bucket, path string) string {
	return s.baseURL + storagePrefix + "public/" + bucket + "/" + escapePath(path)
}

func escapePath(path string) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.Join(segments, "/")
}
