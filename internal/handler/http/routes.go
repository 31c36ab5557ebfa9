package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	// mini-app host
	router.Group(func(r chi.Router) {
		r.Post("/api/frame", h.frame)
		r.Get("/api/compose", h.composeMetadata)
		r.Post("/api/compose", h.composeForm)
		r.Get("/.well-known/farcaster.json", h.manifest)
		r.Post("/api/miniapp/ready", h.miniAppReady)
		r.Post("/api/share", h.share)
	})

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/mode", h.getMode)

		r.Get("/api/documents", h.listDocuments)
		r.Get("/api/documents/{id}", h.getDocument)

		r.Get("/api/nfts", h.listNFTs)
		r.Get("/api/nfts/owner/{wallet}", h.listOwnerNFTs)
		r.Get("/api/jobs/{id}", h.getJob)

		r.Post("/api/auth/nonce", h.nonce)
		r.Post("/api/auth/verify", h.verify)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/documents/{id}/download", h.downloadDocument)
		r.Post("/api/nfts/{tokenID}/transfer", h.transferNFT)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
