package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/avc-dev/linkcounter/internal/model"
	"github.com/go-chi/render"
	"go.uber.org/zap"
)

var gzipWriterPool = sync.Pool{
	New: func() any {
		return gzip.NewWriter(io.Discard)
	},
}

// gzipBody распаковывает тело запроса и закрывает оба потока
type gzipBody struct {
	source io.ReadCloser
	reader *gzip.Reader
}

func newGzipBody(source io.ReadCloser) (*gzipBody, error) {
	reader, err := gzip.NewReader(source)
	if err != nil {
		return nil, err
	}

	return &gzipBody{source: source, reader: reader}, nil
}

func (b *gzipBody) Read(p []byte) (int, error) {
	return b.reader.Read(p)
}

func (b *gzipBody) Close() error {
	if err := b.reader.Close(); err != nil {
		return err
	}
	return b.source.Close()
}

func acceptsGzip(r *http.Request) bool {
	for _, part := range strings.Split(r.Header.Get("Accept-Encoding"), ",") {
		encoding := strings.TrimSpace(strings.Split(part, ";")[0])
		if strings.EqualFold(encoding, "gzip") {
			return true
		}
	}
	return false
}

// isJSON сравнивает медиатип без параметров
func isJSON(contentType string) bool {
	mediaType := strings.TrimSpace(strings.Split(contentType, ";")[0])
	return strings.EqualFold(mediaType, "application/json")
}

// gzipResponseWriter сжимает только JSON ответы, остальные пропускает как есть
type gzipResponseWriter struct {
	http.ResponseWriter
	writer      *gzip.Writer
	wroteHeader bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	if isJSON(w.Header().Get("Content-Type")) {
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Del("Content-Length")

		w.writer = gzipWriterPool.Get().(*gzip.Writer)
		w.writer.Reset(w.ResponseWriter)
	}

	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}

	if w.writer != nil {
		return w.writer.Write(data)
	}

	return w.ResponseWriter.Write(data)
}

func (w *gzipResponseWriter) Close() error {
	if w.writer == nil {
		return nil
	}

	err := w.writer.Close()
	gzipWriterPool.Put(w.writer)
	w.writer = nil

	return err
}

// Gzip распаковывает сжатые тела запросов и сжимает JSON ответы для клиентов,
// приславших Accept-Encoding: gzip
func Gzip(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.Contains(strings.ToLower(r.Header.Get("Content-Encoding")), "gzip") {
				body, err := newGzipBody(r.Body)
				if err != nil {
					logger.Warn("failed to decompress request body",
						zap.Error(err),
						zap.String("request_id", GetRequestID(r.Context())),
						zap.String("uri", r.RequestURI),
					)
					render.Status(r, http.StatusBadRequest)
					render.JSON(w, r, model.ErrorResponse{Error: model.ErrMsgInvalidJSON})
					return
				}
				defer func() {
					if err := body.Close(); err != nil {
						logger.Warn("failed to close request body", zap.Error(err))
					}
				}()

				r.Body = body
				r.Header.Del("Content-Encoding")
				r.ContentLength = -1
			}

			w.Header().Add("Vary", "Accept-Encoding")

			if !acceptsGzip(r) {
				next.ServeHTTP(w, r)
				return
			}

			gw := &gzipResponseWriter{ResponseWriter: w}
			defer func() {
				if err := gw.Close(); err != nil {
					logger.Error("failed to flush gzip response", zap.Error(err))
				}
			}()

			next.ServeHTTP(gw, r)
		})
	}
}
