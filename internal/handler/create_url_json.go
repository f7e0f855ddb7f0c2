package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/render"
	"go.uber.org/zap"
)

// maxRequestBodySize ограничивает размер тела запроса на сокращение
const maxRequestBodySize = 1 << 20

var errTrailingData = errors.New("unexpected data after JSON object")

type ShortenRequest struct {
	URL *string `json:"url"`
}

type ShortenResponse struct {
	ShortCode string `json:"short_code"`
	ShortURL  string `json:"short_url"`
}

// CreateURLJSON обрабатывает POST запрос для создания короткого URL
func (h *Handler) CreateURLJSON(w http.ResponseWriter, req *http.Request) {
	var request ShortenRequest
	if err := decodeShortenRequest(w, req, &request); err != nil {
		h.logger.Warn("failed to decode JSON request",
			zap.Error(err),
			zap.String("remote_addr", req.RemoteAddr),
		)

		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.writeError(w, req, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
			return
		}

		h.writeError(w, req, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	if request.URL == nil {
		h.writeError(w, req, http.StatusBadRequest, msgMissingURL)
		return
	}

	result, err := h.usecase.CreateShortURLFromString(*request.URL, hostURL(req))
	if err != nil {
		h.handleError(w, req, err)
		return
	}

	render.Status(req, http.StatusCreated)
	render.JSON(w, req, ShortenResponse{
		ShortCode: string(result.Code),
		ShortURL:  result.ShortURL,
	})
}

// decodeShortenRequest читает ровно один JSON объект из тела запроса
func decodeShortenRequest(w http.ResponseWriter, req *http.Request, request *ShortenRequest) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, req.Body, maxRequestBodySize))

	if err := dec.Decode(request); err != nil {
		return err
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err != nil {
			return fmt.Errorf("%w: %w", errTrailingData, err)
		}
		return errTrailingData
	}

	return nil
}
