// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/unibrain/internal/config"
	"github.com/MKhiriev/unibrain/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBackend(t *testing.T, serverURL string) *supabaseBackend {
	t.Helper()
	b, err := NewSupabaseBackend(config.RemoteStorage{URL: serverURL, APIKey: "anon-key", Timeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return b.(*supabaseBackend)
}

type row struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNewSupabaseBackend_InvalidURL(t *testing.T) {
	_, err := NewSupabaseBackend(config.RemoteStorage{URL: "  "}, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "full", raw: "https://abc.supabase.co/", want: "https://abc.supabase.co"},
		{name: "no scheme", raw: "abc.supabase.co", want: "https://abc.supabase.co"},
		{name: "empty", raw: "", wantErr: true},
		{name: "scheme only", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── Select ──────────────────────────────────────────────────────────────────

func TestSelect_SendsFiltersAndKeys(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/rest/v1/documents", r.URL.Path)
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer anon-key", r.Header.Get("Authorization"))
		assert.Equal(t, "eq.Fisica", r.URL.Query().Get("subject"))
		assert.Equal(t, "created_at.desc", r.URL.Query().Get("order"))
		assert.Equal(t, "20", r.URL.Query().Get("offset"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))

		_ = json.NewEncoder(w).Encode([]row{{ID: "1", Title: "Fisica"}})
	}))
	defer srv.Close()

	b := newTestBackend(t, srv.URL)
	var rows []row
	err := b.Select(context.Background(), "documents",
		NewQuery().Eq("subject", "Fisica").Order("created_at", true).Window(20, 10), &rows)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Fisica", rows[0].Title)
}

func TestSelect_MapsStatusErrors(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusServiceUnavailable, ErrServiceUnavailable},
		{http.StatusInternalServerError, ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("boom"))
			}))
			defer srv.Close()

			var rows []row
			err := newTestBackend(t, srv.URL).Select(context.Background(), "users", NewQuery(), &rows)

			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "boom")
		})
	}
}

func TestSelect_ErrorDocumentMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"code":"23505","message":"duplicate key value violates unique constraint"}`))
	}))
	defer srv.Close()

	err := newTestBackend(t, srv.URL).Select(context.Background(), "users", NewQuery(), nil)

	assert.ErrorIs(t, err, ErrConflict)
	assert.EqualError(t, err, "conflict: duplicate key value violates unique constraint")
}

func TestSelect_UnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	err := newTestBackend(t, srv.URL).Select(context.Background(), "users", NewQuery(), nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestSelect_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := newTestBackend(t, url).Select(context.Background(), "users", NewQuery(), nil)

	assert.Error(t, err)
}

// ── Insert / Update ─────────────────────────────────────────────────────────

func TestInsert_ReturnsRepresentation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "return=representation", r.Header.Get("Prefer"))

		var in row
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode([]row{in})
	}))
	defer srv.Close()

	var out []row
	err := newTestBackend(t, srv.URL).Insert(context.Background(), "documents", row{ID: "x", Title: "T"}, &out)

	require.NoError(t, err)
	assert.Equal(t, []row{{ID: "x", Title: "T"}}, out)
}

func TestUpdate_PatchesMatchingRows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "eq.abc", r.URL.Query().Get("id"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	var out []row
	err := newTestBackend(t, srv.URL).Update(context.Background(), "documents", NewQuery().Eq("id", "abc"), map[string]any{"title": "new"}, &out)

	require.NoError(t, err)
	assert.Empty(t, out)
}

// ── storage ─────────────────────────────────────────────────────────────────

func TestUpload_EscapesPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/storage/v1/object/notes/0.01__My Notes__1-abc-a.pdf", r.URL.Path)
		assert.Equal(t, "application/pdf", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "pdf-bytes", string(body))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := newTestBackend(t, srv.URL).Upload(context.Background(), "notes", "0.01__My Notes__1-abc-a.pdf", []byte("pdf-bytes"), "application/pdf")

	require.NoError(t, err)
}

func TestList_DecodesObjects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/storage/v1/object/list/notes", r.URL.Path)
		var req listRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 6, req.Limit)
		assert.Equal(t, "desc", req.SortBy.Order)

		_, _ = w.Write([]byte(`[{"name":"0.02__Algebra__1-x-a.pdf","created_at":"2025-01-02T03:04:05Z","metadata":{"size":42}}]`))
	}))
	defer srv.Close()

	objects, err := newTestBackend(t, srv.URL).List(context.Background(), "notes", 6)

	require.NoError(t, err)
	require.Len(t, objects, 1)
	assert.Equal(t, "0.02__Algebra__1-x-a.pdf", objects[0].Name)
	assert.Equal(t, int64(42), objects[0].Size)
}

func TestPublicURL(t *testing.T) {
	b := newTestBackend(t, "https://abc.supabase.co")

	assert.Equal(t, "https://abc.supabase.co/storage/v1/object/public/notes/a%20b.pdf", b.PublicURL("notes", "a b.pdf"))
}
