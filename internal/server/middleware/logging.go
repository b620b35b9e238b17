package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nmoreno/blogapi/internal/logging"
)

// RequestID assigns every request a unique ID, stored in the context
// and echoed in the X-Request-ID header.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = logging.GenerateRequestID()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(logging.WithRequestID(r.Context(), id)))
	})
}

// statusRecorder captures the response status and stamps the
// X-Response-Time header just before headers are flushed.
type statusRecorder struct {
	http.ResponseWriter
	status  int
	started time.Time
	wrote   bool
}

func (rec *statusRecorder) WriteHeader(status int) {
	if !rec.wrote {
		rec.Header().Set("X-Response-Time", fmt.Sprintf("%.4fs", time.Since(rec.started).Seconds()))
		rec.status = status
		rec.wrote = true
	}
	rec.ResponseWriter.WriteHeader(status)
}

func (rec *statusRecorder) Write(b []byte) (int, error) {
	if !rec.wrote {
		rec.WriteHeader(http.StatusOK)
	}
	return rec.ResponseWriter.Write(b)
}

// ResponseTime logs method, path, status and duration for every
// request and exposes the duration as X-Response-Time.
func ResponseTime(logger *logrus.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK, started: time.Now()}
			next.ServeHTTP(rec, r)

			logger.WithFields(logrus.Fields{
				"request_id": logging.GetRequestID(r.Context()),
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     rec.status,
				"duration":   time.Since(rec.started).String(),
			}).Info("request completed")
		})
	}
}
