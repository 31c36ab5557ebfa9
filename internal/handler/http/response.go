package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/unibrain/internal/store"
	"github.com/MKhiriev/unibrain/internal/utils"
	"github.com/MKhiriev/unibrain/models"
)

const (
	dataSourceHeader   = "X-Data-Source"
	dataFallbackHeader = "X-Data-Fallback"

	maxBodyBytes = 1 << 20
)

// writeResult answers an adapter read with the value and where it came from.
func writeResult[T any](w http.ResponseWriter, result store.Result[T]) {
	w.Header().Set(dataSourceHeader, string(result.Source))
	w.Header().Set(dataFallbackHeader, strconv.FormatBool(result.Fallback))
	_, _ = utils.WriteJSON(w, result.Value, http.StatusOK)
}

func writeError(w http.ResponseWriter, message string, status int) {
	utils.WriteError(w, message, status)
}

// decodeBody reads a JSON body into v. An empty body leaves v untouched.
func decodeBody(r *http.Request, v any) error {
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(v)
	if err == io.EOF {
		return nil
	}
	return err
}

// pageFromQuery reads limit and offset. Malformed values fall back to the
// defaults.
func pageFromQuery(r *http.Request) models.Page {
	var page models.Page
	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil {
		page.Limit = limit
	}
	if offset, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil {
		page.Offset = offset
	}
	return page.Normalize()
}
