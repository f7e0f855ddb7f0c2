package handler

import (
	"net/http"

	"github.com/go-chi/render"
)

type endpoints struct {
	Shorten  string `json:"shorten"`
	Redirect string `json:"redirect"`
	Stats    string `json:"stats"`
	Health   string `json:"health"`
}

type IndexResponse struct {
	Message   string    `json:"message"`
	Endpoints endpoints `json:"endpoints"`
}

var indexResponse = IndexResponse{
	Message: "Welcome to the URL Shortener Service",
	Endpoints: endpoints{
		Shorten:  "POST /api/shorten",
		Redirect: "GET /<short_code>",
		Stats:    "GET /api/stats/<short_code>",
		Health:   "GET /health",
	},
}

// Index возвращает приветствие и список эндпоинтов
func (h *Handler) Index(w http.ResponseWriter, req *http.Request) {
	render.Status(req, http.StatusOK)
	render.JSON(w, req, indexResponse)
}
