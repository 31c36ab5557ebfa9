package http

import (
	"net/http"

	"github.com/MKhiriev/unibrain/internal/utils"
)

type modeResponse struct {
	Mode string `json:"mode"`
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

func (h *Handler) getMode(w http.ResponseWriter, r *http.Request) {
	mode := h.services.MarketplaceService.Mode()
	_, _ = utils.WriteJSON(w, modeResponse{Mode: string(mode)}, http.StatusOK)
}
