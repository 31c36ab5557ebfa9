package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var errorsByStatus = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
}

// backendError is the error document of the table and storage APIs.
type backendError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	reason := errorReason(resp.Body())
	if sentinel, ok := errorsByStatus[status]; ok {
		return fmt.Errorf("%w: %s", sentinel, reason)
	}

	if reason == "" {
		reason = http.StatusText(status)
	}
	return fmt.Errorf("http %d: %s", status, reason)
}

// errorReason prefers the message of a JSON error document over the raw
// body.
func errorReason(body []byte) string {
	var doc backendError
	if err := json.Unmarshal(body, &doc); err == nil {
		if doc.Message != "" {
			return doc.Message
		}
		if doc.Error != "" {
			return doc.Error
		}
	}
	return strings.TrimSpace(string(body))
}
