package handler

import (
	"errors"
	"net/http"

	"github.com/avc-dev/linkcounter/internal/model"
	"github.com/avc-dev/linkcounter/internal/usecase"
	"github.com/go-chi/render"
	"go.uber.org/zap"
)

const (
	msgMissingURL       = model.ErrMsgMissingURL
	msgInvalidURL       = model.ErrMsgInvalidURL
	msgInvalidJSON      = model.ErrMsgInvalidJSON
	msgNotFound         = model.ErrMsgNotFound
	msgRouteNotFound    = model.ErrMsgRouteNotFound
	msgMethodNotAllowed = model.ErrMsgMethodNotAllowed
	msgInternalError    = model.ErrMsgInternalError
	msgBodyTooLarge     = model.ErrMsgBodyTooLarge
)

//go:generate mockery --name URLUsecase

// URLUsecase определяет интерфейс бизнес-логики, необходимой обработчикам
type URLUsecase interface {
	CreateShortURLFromString(urlString string, hostURL string) (model.ShortenResult, error)
	ResolveURL(code string) (string, error)
	GetStats(code string) (model.Record, error)
}

// Handler обрабатывает HTTP запросы сервиса
type Handler struct {
	usecase URLUsecase
	logger  *zap.Logger
}

// New создает новый экземпляр Handler
func New(usecase URLUsecase, logger *zap.Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

type ErrorResponse = model.ErrorResponse

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, ErrorResponse{Error: message})
}

// handleError преобразует ошибки бизнес-логики в HTTP ответы
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, usecase.ErrEmptyURL), errors.Is(err, usecase.ErrInvalidURL):
		h.writeError(w, r, http.StatusBadRequest, msgInvalidURL)
	case errors.Is(err, usecase.ErrURLNotFound):
		h.writeError(w, r, http.StatusNotFound, msgNotFound)
	default:
		h.logger.Error("request failed",
			zap.String("uri", r.RequestURI),
			zap.Error(err),
		)
		h.writeError(w, r, http.StatusInternalServerError, msgInternalError)
	}
}

// NotFound отвечает на запросы к неизвестным маршрутам
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, http.StatusNotFound, msgRouteNotFound)
}

// MethodNotAllowed отвечает на запросы с неподдерживаемым методом
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, http.StatusMethodNotAllowed, msgMethodNotAllowed)
}

// hostURL восстанавливает базовый адрес сервиса из запроса
func hostURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "http" || proto == "https" {
		scheme = proto
	}

	return scheme + "://" + r.Host + "/"
}
