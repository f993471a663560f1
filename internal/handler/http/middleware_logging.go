package http

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"costmanager/internal/logger"
	"costmanager/models"
)

// withLogging logs every completed request and persists it as a log record
// through the log service. A persistence failure is logged and swallowed; a
// broken logs table must never fail the request that was being logged.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		log.Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", lw.status).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()

		record := models.LogRecord{
			Time:       start.UTC(),
			Method:     method,
			Port:       requestPort(r),
			Path:       r.URL.Path,
			Status:     lw.status,
			DurationMs: duration.Milliseconds(),
		}
		if err := h.services.LogService.Record(r.Context(), record); err != nil {
			log.Err(err).Msg("request log record was not persisted")
		}
	})
}

// requestPort extracts the port the request arrived on from the Host header.
// Zero when the header carries no port.
func requestPort(r *http.Request) int {
	_, rawPort, err := net.SplitHostPort(r.Host)
	if err != nil {
		return 0
	}
	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return 0
	}
	return port
}
