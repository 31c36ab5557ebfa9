package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/unibrain/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetServerVersion_WritesVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{name: "plain", version: "1.2.3"},
		{name: "empty", version: ""},
		{name: "special chars", version: "v2.0.0-beta+build.42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(tt.version)

			rec := serve(h, http.MethodGet, "/api/version", "")

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.version, rec.Body.String())
		})
	}
}

func TestGetMode(t *testing.T) {
	h, m := newTestHandler(t)
	m.market.EXPECT().Mode().Return(store.ModeRemote)

	rec := serve(h, http.MethodGet, "/api/mode", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"mode":"remote"}`, rec.Body.String())
}
