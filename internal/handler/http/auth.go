package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/unibrain/internal/logger"
	"github.com/MKhiriev/unibrain/internal/utils"
	"github.com/MKhiriev/unibrain/models"
)

type verifyResponse struct {
	Wallet string `json:"wallet"`
}

func (h *Handler) nonce(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.AuthNonceRequest
	if err := decodeBody(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.nonce").Msg("invalid JSON was passed")
		writeError(w, errInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	challenge, err := h.services.AuthService.Nonce(r.Context(), req.Wallet)
	if err != nil {
		log.Err(err).Str("func", "*Handler.nonce").Msg("error creating login challenge")
		writeServiceError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, challenge, http.StatusOK)
}

func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.AuthVerifyRequest
	if err := decodeBody(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.verify").Msg("invalid JSON was passed")
		writeError(w, errInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.Verify(r.Context(), req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.verify").Msg("wallet login rejected")
		writeServiceError(w, err)
		return
	}

	log.Debug().Str("wallet", token.Wallet).Msg("wallet successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	_, _ = utils.WriteJSON(w, verifyResponse{Wallet: token.Wallet}, http.StatusOK)
}
