package http

import (
	"net/http"

	"github.com/MKhiriev/unibrain/internal/logger"
	"github.com/MKhiriev/unibrain/internal/service"
	"github.com/MKhiriev/unibrain/internal/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listDocuments(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.MarketplaceService.GetDocuments(r.Context(), pageFromQuery(r))
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listDocuments").Msg("error listing documents")
		writeServiceError(w, err)
		return
	}

	writeResult(w, result)
}

func (h *Handler) getDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.services.MarketplaceService.GetDocument(r.Context(), id)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getDocument").Str("document_id", id).Msg("error loading document")
		writeServiceError(w, err)
		return
	}
	if result.Value == nil {
		writeServiceError(w, service.ErrDocumentNotFound)
		return
	}

	writeResult(w, result)
}

// downloadDocument records a free download of the document by the
// authenticated wallet.
func (h *Handler) downloadDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	wallet, found := utils.GetWalletFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.downloadDocument").Msg("no wallet was given")
		writeError(w, service.ErrNotAuthenticated.Error(), http.StatusUnauthorized)
		return
	}

	if err := h.services.PaymentService.DownloadForFree(ctx, id, wallet); err != nil {
		log.Err(err).Str("func", "*Handler.downloadDocument").Str("document_id", id).Msg("error recording download")
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
