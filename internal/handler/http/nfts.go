package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/unibrain/internal/logger"
	"github.com/MKhiriev/unibrain/internal/service"
	"github.com/MKhiriev/unibrain/internal/store"
	"github.com/MKhiriev/unibrain/internal/utils"
	"github.com/MKhiriev/unibrain/models"
	"github.com/go-chi/chi/v5"
)

// listNFTs lists every NFT, or only those of one subject when the subject
// query parameter is set.
func (h *Handler) listNFTs(w http.ResponseWriter, r *http.Request) {
	var (
		result store.Result[[]models.NFT]
		err    error
	)

	if subject := strings.TrimSpace(r.URL.Query().Get("subject")); subject != "" {
		result, err = h.services.NFTService.GetNFTsBySubject(r.Context(), subject)
	} else {
		result, err = h.services.NFTService.GetAllNFTs(r.Context(), pageFromQuery(r))
	}
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listNFTs").Msg("error listing nfts")
		writeServiceError(w, err)
		return
	}

	writeResult(w, result)
}

func (h *Handler) listOwnerNFTs(w http.ResponseWriter, r *http.Request) {
	wallet := chi.URLParam(r, "wallet")

	result, err := h.services.NFTService.GetUserNFTs(r.Context(), wallet)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listOwnerNFTs").Str("wallet", wallet).Msg("error listing owner nfts")
		writeServiceError(w, err)
		return
	}

	writeResult(w, result)
}

func (h *Handler) getJob(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	job, err := h.services.NFTService.GetJob(r.Context(), id)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getJob").Str("job_id", id).Msg("error loading job")
		writeServiceError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, job, http.StatusOK)
}

// transferNFT moves an NFT owned by the authenticated wallet.
func (h *Handler) transferNFT(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	tokenID := chi.URLParam(r, "tokenID")

	wallet, found := utils.GetWalletFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.transferNFT").Msg("no wallet was given")
		writeError(w, service.ErrNotAuthenticated.Error(), http.StatusUnauthorized)
		return
	}

	var req models.NFTTransferRequest
	if err := decodeBody(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.transferNFT").Msg("invalid JSON was passed")
		writeError(w, errInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.NFTService.TransferNFT(ctx, tokenID, wallet, req.To); err != nil {
		log.Err(err).Str("func", "*Handler.transferNFT").Str("token_id", tokenID).Msg("error transferring nft")
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
