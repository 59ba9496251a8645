package handler

import (
	"log/slog"
	"net/http"
	"time"
)

type loggingRecorder struct {
	http.ResponseWriter
	statusCode int
	bytes      int
}

func (lr *loggingRecorder) WriteHeader(code int) {
	lr.statusCode = code
	lr.ResponseWriter.WriteHeader(code)
}

func (lr *loggingRecorder) Write(b []byte) (int, error) {
	n, err := lr.ResponseWriter.Write(b)
	lr.bytes += n
	return n, err
}

func (lr *loggingRecorder) Unwrap() http.ResponseWriter { return lr.ResponseWriter }

// RequestLogger logs one line per request. 5xx responses are logged at error level.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lr := &loggingRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(lr, r)

		level := slog.LevelInfo
		if lr.statusCode >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		slog.Log(r.Context(), level, "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", lr.statusCode,
			"bytes", lr.bytes,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", r.RemoteAddr,
		)
	})
}
