package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GetURL перенаправляет на оригинальный URL и учитывает переход
func (h *Handler) GetURL(w http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "id")

	url, err := h.usecase.ResolveURL(code)
	if err != nil {
		h.handleError(w, req, err)
		return
	}

	// Location выставляется напрямую: http.Redirect экранирует не-ASCII символы,
	// а URL должен вернуться ровно в том виде, в каком был сохранен
	w.Header().Set("Location", url)
	w.WriteHeader(http.StatusMovedPermanently)
}
