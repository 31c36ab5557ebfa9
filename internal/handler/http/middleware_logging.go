package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/unibrain/internal/logger"
)

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		status := lw.status
		if status == 0 {
			status = http.StatusOK
		}

		event := logger.FromRequest(r).Info()
		if status >= http.StatusInternalServerError {
			event = logger.FromRequest(r).Error()
		}
		event.
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Str("data_source", lw.Header().Get(dataSourceHeader)).
			Send()
	})
}
