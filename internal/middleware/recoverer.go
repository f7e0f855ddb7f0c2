package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/avc-dev/linkcounter/internal/model"
	"github.com/go-chi/render"
	"go.uber.org/zap"
)

// Recoverer перехватывает панику в обработчике, логирует ее и отвечает 500
func Recoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}

				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				logger.Error("panic recovered",
					zap.String("request_id", GetRequestID(r.Context())),
					zap.String("method", r.Method),
					zap.String("uri", r.RequestURI),
					zap.String("panic", fmt.Sprint(rec)),
					zap.Stack("stack"),
				)

				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, model.ErrorResponse{Error: model.ErrMsgInternalError})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
