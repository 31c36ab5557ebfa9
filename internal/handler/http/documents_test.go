package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/unibrain/internal/service"
	"github.com/MKhiriev/unibrain/internal/store"
	"github.com/MKhiriev/unibrain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const bearer = "Bearer good"

// expectLogin makes the auth middleware accept bearer as wallet.
func expectLogin(m *testServices, wallet string) {
	m.auth.EXPECT().ParseToken(gomock.Any(), "good").Return(models.Token{Wallet: wallet}, nil)
}

func TestListDocuments(t *testing.T) {
	h, m := newTestHandler(t)
	docs := []models.Document{{ID: "doc-1", Title: "Analisi I"}, {ID: "doc-2", Title: "Fisica"}}
	m.market.EXPECT().
		GetDocuments(gomock.Any(), models.Page{Limit: 5, Offset: 10}).
		Return(store.Result[[]models.Document]{Value: docs, Source: store.SourceLocal, Fallback: true}, nil)

	rec := serve(h, http.MethodGet, "/api/documents?limit=5&offset=10", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "local", rec.Header().Get(dataSourceHeader))
	assert.Equal(t, "true", rec.Header().Get(dataFallbackHeader))

	var got []models.Document
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Analisi I", got[0].Title)
}

func TestListDocuments_DefaultPage(t *testing.T) {
	h, m := newTestHandler(t)
	m.market.EXPECT().
		GetDocuments(gomock.Any(), models.Page{Limit: models.DefaultPageLimit}).
		Return(store.Result[[]models.Document]{Source: store.SourceRemote}, nil)

	rec := serve(h, http.MethodGet, "/api/documents?limit=abc", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "remote", rec.Header().Get(dataSourceHeader))
	assert.Equal(t, "false", rec.Header().Get(dataFallbackHeader))
}

func TestListDocuments_Error(t *testing.T) {
	h, m := newTestHandler(t)
	m.market.EXPECT().GetDocuments(gomock.Any(), gomock.Any()).
		Return(store.Result[[]models.Document]{}, store.ErrRemoteUnavailable)

	rec := serve(h, http.MethodGet, "/api/documents", "")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestGetDocument(t *testing.T) {
	h, m := newTestHandler(t)
	doc := &models.Document{ID: "doc-1", Title: "Analisi I"}
	m.market.EXPECT().GetDocument(gomock.Any(), "doc-1").
		Return(store.Result[*models.Document]{Value: doc, Source: store.SourceRemote}, nil)

	rec := serve(h, http.MethodGet, "/api/documents/doc-1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.Document
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "doc-1", got.ID)
}

func TestGetDocument_NotFound(t *testing.T) {
	h, m := newTestHandler(t)
	m.market.EXPECT().GetDocument(gomock.Any(), "missing").
		Return(store.Result[*models.Document]{Source: store.SourceLocal}, nil)

	rec := serve(h, http.MethodGet, "/api/documents/missing", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), service.ErrDocumentNotFound.Error())
}

func TestDownloadDocument(t *testing.T) {
	h, m := newTestHandler(t)
	expectLogin(m, buyerWallet)
	m.payment.EXPECT().DownloadForFree(gomock.Any(), "doc-1", buyerWallet).Return(nil)

	rec := serve(h, http.MethodPost, "/api/documents/doc-1/download", "", "Authorization", bearer)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDownloadDocument_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "unknown document", err: service.ErrDocumentNotFound, wantStatus: http.StatusNotFound},
		{name: "paid document", err: service.ErrPaidDocument, wantStatus: http.StatusPaymentRequired},
		{name: "storage failure", err: store.ErrStorage, wantStatus: http.StatusInternalServerError},
		{name: "unexpected", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			expectLogin(m, buyerWallet)
			m.payment.EXPECT().DownloadForFree(gomock.Any(), "doc-1", buyerWallet).Return(tt.err)

			rec := serve(h, http.MethodPost, "/api/documents/doc-1/download", "", "Authorization", bearer)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
