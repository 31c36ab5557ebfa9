package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/unibrain/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runLogged sends one request through withTraceID and withLogging and
// returns the access log entry.
func runLogged(t *testing.T, next http.HandlerFunc) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	h := &Handler{logger: logger.New(&buf, "server")}

	req := httptest.NewRequest(http.MethodGet, "/api/documents?limit=1", nil)
	h.withTraceID(h.withLogging(next)).ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		next      http.HandlerFunc
		wantLevel string
		wantCode  float64
		wantSize  float64
	}{
		{
			name:      "ok with body",
			next:      func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("hello")) },
			wantLevel: "info",
			wantCode:  http.StatusOK,
			wantSize:  5,
		},
		{
			name:      "no status written",
			next:      func(http.ResponseWriter, *http.Request) {},
			wantLevel: "info",
			wantCode:  http.StatusOK,
		},
		{
			name:      "client error",
			next:      func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNotFound) },
			wantLevel: "info",
			wantCode:  http.StatusNotFound,
		},
		{
			name:      "server error is logged as error",
			next:      func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusBadGateway) },
			wantLevel: "error",
			wantCode:  http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := runLogged(t, tt.next)

			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, tt.wantCode, entry["status"])
			assert.Equal(t, tt.wantSize, entry["size"])
			assert.Equal(t, "/api/documents?limit=1", entry["uri"])
			assert.Equal(t, http.MethodGet, entry["method"])
			assert.NotEmpty(t, entry["trace_id"])
		})
	}
}

func TestWithLogging_RecordsDataSource(t *testing.T) {
	entry := runLogged(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set(dataSourceHeader, "remote")
		w.WriteHeader(http.StatusOK)
	})

	assert.Equal(t, "remote", entry["data_source"])
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	handler := h.withLogging(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	assert.Panics(t, func() {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}
