package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseWriter_WriteHeader_CalledTwice_IgnoresSecond(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestResponseWriter_Write_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		header     int
		writes     []string
		wantStatus int
		wantSize   int
	}{
		{name: "implicit 200", writes: []string{"abc"}, wantStatus: http.StatusOK, wantSize: 3},
		{name: "accumulates size", writes: []string{"ab", "cde", ""}, wantStatus: http.StatusOK, wantSize: 5},
		{name: "explicit header kept", header: http.StatusAccepted, writes: []string{"x"}, wantStatus: http.StatusAccepted, wantSize: 1},
		{name: "nothing written", wantStatus: 0, wantSize: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := &responseWriter{ResponseWriter: rr}

			if tt.header != 0 {
				w.WriteHeader(tt.header)
			}
			for _, s := range tt.writes {
				_, err := w.Write([]byte(s))
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.wantStatus, w.status)
			assert.Equal(t, tt.wantSize, w.size)
		})
	}
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	assert.Same(t, rr, w.Unwrap())
}
