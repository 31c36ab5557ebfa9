package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/unibrain/internal/queue"
	"github.com/MKhiriev/unibrain/internal/service"
	"github.com/MKhiriev/unibrain/internal/store"
	"github.com/MKhiriev/unibrain/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrNotAuthenticated:        http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrInvalidNonce:            http.StatusUnauthorized,
	service.ErrSignatureMismatch:       http.StatusUnauthorized,
	service.ErrDocumentNotFound:        http.StatusNotFound,
	service.ErrNFTNotFound:             http.StatusNotFound,
	service.ErrJobNotFound:             http.StatusNotFound,
	service.ErrPaidDocument:            http.StatusPaymentRequired,
	service.ErrShareNotSupported:       http.StatusForbidden,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	validators.ErrInvalidWallet:    http.StatusBadRequest,
	validators.ErrInvalidSignature: http.StatusBadRequest,
	validators.ErrRequiredFields:   http.StatusBadRequest,
	validators.ErrInvalidPrice:     http.StatusBadRequest,

	queue.ErrJobNotFound: http.StatusNotFound,

	store.ErrUserAlreadyExists: http.StatusConflict,
	store.ErrRemoteUnavailable: http.StatusBadGateway,
	store.ErrStorage:           http.StatusInternalServerError,
	store.ErrNoObjectStore:     http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError answers err with its mapped status. Internal failures
// never leak their message.
func writeServiceError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = http.StatusText(status)
	}
	writeError(w, message, status)
}
