package handler

import (
	"net/http"

	"github.com/go-chi/render"
)

type HealthResponse struct {
	Status string `json:"status"`
}

func (h *Handler) Health(w http.ResponseWriter, req *http.Request) {
	render.Status(req, http.StatusOK)
	render.JSON(w, req, HealthResponse{Status: "healthy"})
}
