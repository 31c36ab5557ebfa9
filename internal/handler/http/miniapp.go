package http

import (
	"net/http"

	"github.com/MKhiriev/unibrain/internal/logger"
	"github.com/MKhiriev/unibrain/internal/utils"
	"github.com/MKhiriev/unibrain/models"
)

// ── frame & composer ─────────────────────────

func (h *Handler) frame(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, h.services.MiniAppService.Frame(r.Context()), http.StatusOK)
}

func (h *Handler) composeMetadata(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, h.services.MiniAppService.ComposeMetadata(r.Context()), http.StatusOK)
}

func (h *Handler) composeForm(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, h.services.MiniAppService.ComposeForm(r.Context()), http.StatusOK)
}

func (h *Handler) manifest(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, h.services.MiniAppService.Manifest(r.Context()), http.StatusOK)
}

// ── host context ─────────────────────────────

func (h *Handler) miniAppReady(w http.ResponseWriter, r *http.Request) {
	var hostCtx models.MiniAppContext
	if err := decodeBody(r, &hostCtx); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.miniAppReady").Msg("invalid JSON was passed")
		writeError(w, errInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	_, _ = utils.WriteJSON(w, h.services.MiniAppService.Ready(r.Context(), hostCtx), http.StatusOK)
}

func (h *Handler) share(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ShareRequest
	if err := decodeBody(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.share").Msg("invalid JSON was passed")
		writeError(w, errInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	intent, err := h.services.MiniAppService.Share(r.Context(), req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.share").Msg("share rejected")
		writeServiceError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, intent, http.StatusOK)
}
