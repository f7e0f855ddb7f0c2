package middleware

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avc-dev/linkcounter/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func compressString(t *testing.T, s string) []byte {
	t.Helper()

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	return buf.Bytes()
}

func decompressBytes(t *testing.T, data []byte) string {
	t.Helper()

	reader, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer reader.Close()

	result, err := io.ReadAll(reader)
	require.NoError(t, err)

	return string(result)
}

func TestGzip_CompressResponse(t *testing.T) {
	tests := []struct {
		name           string
		contentType    string
		acceptEncoding string
		shouldCompress bool
	}{
		{
			name:           "compress JSON response",
			contentType:    "application/json",
			acceptEncoding: "gzip",
			shouldCompress: true,
		},
		{
			name:           "compress JSON with charset",
			contentType:    "application/json; charset=utf-8",
			acceptEncoding: "gzip, deflate, br",
			shouldCompress: true,
		},
		{
			name:           "do not compress without Accept-Encoding",
			contentType:    "application/json",
			acceptEncoding: "",
			shouldCompress: false,
		},
		{
			name:           "do not compress when only deflate accepted",
			contentType:    "application/json",
			acceptEncoding: "deflate",
			shouldCompress: false,
		},
		{
			name:           "do not compress text/plain",
			contentType:    "text/plain",
			acceptEncoding: "gzip",
			shouldCompress: false,
		},
	}

	body := `{"short_code":"abc123","short_url":"http://localhost:8080/abc123"}`

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tt.contentType)
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte(body))
			})

			req := httptest.NewRequest(http.MethodPost, "/api/shorten", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			w := httptest.NewRecorder()

			// Act
			Gzip(zaptest.NewLogger(t))(next).ServeHTTP(w, req)

			// Assert
			assert.Equal(t, http.StatusCreated, w.Code)
			assert.Equal(t, "Accept-Encoding", w.Header().Get("Vary"))

			if tt.shouldCompress {
				assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
				assert.Equal(t, body, decompressBytes(t, w.Body.Bytes()))
			} else {
				assert.Empty(t, w.Header().Get("Content-Encoding"))
				assert.Equal(t, body, w.Body.String())
			}
		})
	}
}

func TestGzip_RedirectIsNotCompressed(t *testing.T) {
	// Arrange
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Location", "https://example.com")
		w.WriteHeader(http.StatusMovedPermanently)
	})

	req := httptest.NewRequest(http.MethodGet, "/abc123", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()

	// Act
	Gzip(zaptest.NewLogger(t))(next).ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusMovedPermanently, w.Code)
	assert.Empty(t, w.Header().Get("Content-Encoding"))
	assert.Zero(t, w.Body.Len())
}

func TestGzip_DecompressRequest(t *testing.T) {
	// Arrange
	payload := `{"url":"https://example.com"}`

	var received string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		received = string(data)
		w.WriteHeader(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/shorten", bytes.NewReader(compressString(t, payload)))
	req.Header.Set("Content-Encoding", "gzip")
	w := httptest.NewRecorder()

	// Act
	Gzip(zaptest.NewLogger(t))(next).ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, payload, received)
}

func TestGzip_InvalidCompressedRequest(t *testing.T) {
	// Arrange
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodPost, "/api/shorten", strings.NewReader("definitely not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	w := httptest.NewRecorder()

	// Act
	Gzip(zaptest.NewLogger(t))(next).ServeHTTP(w, req)

	// Assert
	assert.False(t, called)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body model.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, model.ErrMsgInvalidJSON, body.Error)
}
