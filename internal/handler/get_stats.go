package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type StatsResponse struct {
	URL       string    `json:"url"`
	Clicks    uint64    `json:"clicks"`
	CreatedAt time.Time `json:"created_at"`
}

// GetStats возвращает статистику по короткому коду
func (h *Handler) GetStats(w http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "id")

	record, err := h.usecase.GetStats(code)
	if err != nil {
		h.handleError(w, req, err)
		return
	}

	render.Status(req, http.StatusOK)
	render.JSON(w, req, StatsResponse{
		URL:       record.URL.String(),
		Clicks:    record.Clicks,
		CreatedAt: record.CreatedAt,
	})
}
