// Package middleware содержит HTTP-middleware сервера:
// логирование, метрики, ограничение частоты и размера запросов.
package middleware

import (
	"net/http"
	"time"

	"github.com/IvanChernomyrdin/video-playlists/internal/shared/logger"
)

// ResponseWriter запоминает статус и размер ответа.
type ResponseWriter struct {
	http.ResponseWriter
	Status int
	Size   int
}

func (w *ResponseWriter) WriteHeader(Status int) {
	w.Status = Status
	w.ResponseWriter.WriteHeader(Status)
}

func (w *ResponseWriter) Write(b []byte) (int, error) {
	if w.Status == 0 {
		w.Status = http.StatusOK
	}
	Size, err := w.ResponseWriter.Write(b)
	w.Size += Size
	return Size, err
}

// StatusOrOK возвращает записанный статус, 200 если хендлер ничего не написал.
func (w *ResponseWriter) StatusOrOK() int {
	if w.Status == 0 {
		return http.StatusOK
	}
	return w.Status
}

// LoggerMiddleware пишет строку в HTTP-лог на каждый запрос.
// log == nil — логгер по умолчанию (runtime/logs/http.log).
func LoggerMiddleware(log *logger.HTTPLogger) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.NewHTTPLogger()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wr := &ResponseWriter{ResponseWriter: w}
			next.ServeHTTP(wr, r)

			duration := time.Since(start).Seconds() * 1000
			log.LogRequest(r.Method, r.RequestURI, wr.StatusOrOK(), wr.Size, duration)
		})
	}
}
