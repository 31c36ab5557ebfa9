package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/MKhiriev/unibrain/internal/queue"
	"github.com/MKhiriev/unibrain/internal/service"
	"github.com/MKhiriev/unibrain/internal/store"
	"github.com/MKhiriev/unibrain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func nftResult(nfts ...models.NFT) store.Result[[]models.NFT] {
	return store.Result[[]models.NFT]{Value: nfts, Source: store.SourceLocal}
}

func TestListNFTs(t *testing.T) {
	h, m := newTestHandler(t)
	m.nft.EXPECT().GetAllNFTs(gomock.Any(), models.Page{Limit: models.DefaultPageLimit}).
		Return(nftResult(models.NFT{TokenID: "T1"}), nil)

	rec := serve(h, http.MethodGet, "/api/nfts", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "local", rec.Header().Get(dataSourceHeader))
	var got []models.NFT
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "T1", got[0].TokenID)
}

func TestListNFTs_BySubject(t *testing.T) {
	h, m := newTestHandler(t)
	m.nft.EXPECT().GetNFTsBySubject(gomock.Any(), "Fisica").Return(nftResult(), nil)

	rec := serve(h, http.MethodGet, "/api/nfts?subject=Fisica", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListOwnerNFTs(t *testing.T) {
	h, m := newTestHandler(t)
	m.nft.EXPECT().GetUserNFTs(gomock.Any(), sellerWallet).
		Return(nftResult(models.NFT{TokenID: "T2", OwnerWallet: sellerWallet}), nil)

	rec := serve(h, http.MethodGet, "/api/nfts/owner/"+sellerWallet, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token_id":"T2"`)
}

func TestGetJob(t *testing.T) {
	h, m := newTestHandler(t)
	m.nft.EXPECT().GetJob(gomock.Any(), "job-1").
		Return(queue.Job{ID: "job-1", Status: queue.StatusDone, NFTTokenID: "T3"}, nil)

	rec := serve(h, http.MethodGet, "/api/jobs/job-1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got queue.Job
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, queue.StatusDone, got.Status)
	assert.Equal(t, "T3", got.NFTTokenID)
}

func TestGetJob_NotFound(t *testing.T) {
	h, m := newTestHandler(t)
	m.nft.EXPECT().GetJob(gomock.Any(), "missing").Return(queue.Job{}, service.ErrJobNotFound)

	rec := serve(h, http.MethodGet, "/api/jobs/missing", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTransferNFT(t *testing.T) {
	h, m := newTestHandler(t)
	expectLogin(m, buyerWallet)
	m.nft.EXPECT().TransferNFT(gomock.Any(), "T1", buyerWallet, sellerWallet).Return(nil)

	rec := serve(h, http.MethodPost, "/api/nfts/T1/transfer", `{"to":"`+sellerWallet+`"}`, "Authorization", bearer)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestTransferNFT_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		callsSvc   bool
		wantStatus int
	}{
		{name: "invalid JSON", body: `{`, wantStatus: http.StatusBadRequest},
		{name: "not owned", body: `{"to":"` + sellerWallet + `"}`, err: service.ErrNFTNotFound, callsSvc: true, wantStatus: http.StatusNotFound},
		{name: "bad recipient", body: `{"to":"nobody"}`, err: service.ErrInvalidDataProvided, callsSvc: true, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			expectLogin(m, buyerWallet)
			if tt.callsSvc {
				m.nft.EXPECT().TransferNFT(gomock.Any(), "T1", buyerWallet, gomock.Any()).Return(tt.err)
			}

			rec := serve(h, http.MethodPost, "/api/nfts/T1/transfer", tt.body, "Authorization", bearer)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
