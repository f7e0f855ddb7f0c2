package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avc-dev/linkcounter/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestIndex(t *testing.T) {
	// Arrange
	handler := New(mocks.NewMockURLUsecase(t), zap.NewNop())
	w := httptest.NewRecorder()

	// Act
	handler.Index(w, httptest.NewRequest(http.MethodGet, "/", nil))

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)

	var response IndexResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	assert.Equal(t, "Welcome to the URL Shortener Service", response.Message)
	assert.Equal(t, "POST /api/shorten", response.Endpoints.Shorten)
	assert.Equal(t, "GET /<short_code>", response.Endpoints.Redirect)
	assert.Equal(t, "GET /api/stats/<short_code>", response.Endpoints.Stats)
	assert.Equal(t, "GET /health", response.Endpoints.Health)
}

func TestHealth(t *testing.T) {
	// Arrange
	handler := New(mocks.NewMockURLUsecase(t), zap.NewNop())
	w := httptest.NewRecorder()

	// Act
	handler.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
}

func TestFallbackHandlers(t *testing.T) {
	tests := []struct {
		name           string
		handle         func(h *Handler) http.HandlerFunc
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Not found",
			handle:         func(h *Handler) http.HandlerFunc { return h.NotFound },
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"Not found"}`,
		},
		{
			name:           "Method not allowed",
			handle:         func(h *Handler) http.HandlerFunc { return h.MethodNotAllowed },
			expectedStatus: http.StatusMethodNotAllowed,
			expectedBody:   `{"error":"Method not allowed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			handler := New(mocks.NewMockURLUsecase(t), zap.NewNop())
			w := httptest.NewRecorder()

			// Act
			tt.handle(handler)(w, httptest.NewRequest(http.MethodPatch, "/whatever", nil))

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
