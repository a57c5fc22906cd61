package httpx

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/EleazarRosete/lolos-place-backend/internal/metrics"
)

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Instrument attaches request-id, access logging and prometheus collection
// to every request.
func Instrument(lg *zap.Logger, m *metrics.Metrics, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", requestID)

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(sw, r)
		elapsed := time.Since(start)

		path := r.URL.Path
		m.Requests.WithLabelValues(r.Method, path, strconv.Itoa(sw.status)).Inc()
		m.Duration.WithLabelValues(r.Method, path).Observe(elapsed.Seconds())

		lg.Info("http_request",
			zap.String("request_id", requestID),
			zap.String("method", r.Method),
			zap.String("path", path),
			zap.Int("status", sw.status),
			zap.Duration("duration", elapsed),
			zap.String("remote_addr", r.RemoteAddr),
		)
	})
}
