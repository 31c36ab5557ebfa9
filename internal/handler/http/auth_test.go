package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/unibrain/internal/service"
	"github.com/MKhiriev/unibrain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// nonce
// ─────────────────────────────────────────────

func TestNonce_Success(t *testing.T) {
	h, m := newTestHandler(t)
	challenge := models.AuthNonce{Wallet: buyerWallet, Nonce: "1700000000.abc", Message: "UniBrain login"}
	m.auth.EXPECT().Nonce(gomock.Any(), buyerWallet).Return(challenge, nil)

	rec := serve(h, http.MethodPost, "/api/auth/nonce", fmt.Sprintf(`{"wallet":%q}`, buyerWallet))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"wallet":"`+buyerWallet+`","nonce":"1700000000.abc","message":"UniBrain login"}`, rec.Body.String())
}

func TestNonce_InvalidJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, http.MethodPost, "/api/auth/nonce", `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), errInvalidJSON.Error())
}

func TestNonce_InvalidWallet(t *testing.T) {
	h, m := newTestHandler(t)
	m.auth.EXPECT().Nonce(gomock.Any(), "nope").Return(models.AuthNonce{}, service.ErrInvalidDataProvided)

	rec := serve(h, http.MethodPost, "/api/auth/nonce", `{"wallet":"nope"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// verify
// ─────────────────────────────────────────────

func TestVerify_Success(t *testing.T) {
	h, m := newTestHandler(t)
	req := models.AuthVerifyRequest{Wallet: buyerWallet, Nonce: "n", Signature: "0xsig"}
	m.auth.EXPECT().Verify(gomock.Any(), req).Return(models.Token{SignedString: "signed.jwt", Wallet: buyerWallet}, nil)

	rec := serve(h, http.MethodPost, "/api/auth/verify", `{"wallet":"`+buyerWallet+`","nonce":"n","signature":"0xsig"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed.jwt", rec.Header().Get("Authorization"))
	assert.JSONEq(t, `{"wallet":"`+buyerWallet+`"}`, rec.Body.String())
}

func TestVerify_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "bad nonce", err: service.ErrInvalidNonce, wantStatus: http.StatusUnauthorized, wantBody: service.ErrInvalidNonce.Error()},
		{name: "signature mismatch", err: service.ErrSignatureMismatch, wantStatus: http.StatusUnauthorized, wantBody: service.ErrSignatureMismatch.Error()},
		{name: "wrapped invalid data", err: fmt.Errorf("%w: bad signature", service.ErrInvalidDataProvided), wantStatus: http.StatusBadRequest, wantBody: "bad signature"},
		{name: "token creation hides message", err: service.ErrTokenCreationFailed, wantStatus: http.StatusInternalServerError, wantBody: "Internal Server Error"},
		{name: "unexpected", err: errors.New("db down"), wantStatus: http.StatusInternalServerError, wantBody: "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.auth.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(models.Token{}, tt.err)

			rec := serve(h, http.MethodPost, "/api/auth/verify", `{"wallet":"`+buyerWallet+`"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			assert.Empty(t, rec.Header().Get("Authorization"))
		})
	}
}
