package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/truenamepath/truenamepath/internal/logger"
)

// loggableHeaders is the allow-list of request headers that may appear in
// access logs. Everything else is withheld: Authorization carries tokens,
// Cookie and X-Forwarded-For identify people, and unknown headers are treated
// as personal data until proven otherwise.
var loggableHeaders = []string{
	"Accept",
	"Accept-Encoding",
	"Content-Type",
	"Content-Length",
	"User-Agent",
	traceIDHeader,
}

// withLogging emits one access-log line per request: uri, method, status,
// duration, response size, and the allow-listed request headers. Request and
// response bodies never reach the log; they carry personal names.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := newResponseWriter(w)

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		event := log.Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", lw.status).
			Dur("duration", duration).
			Int("size", lw.size)

		for _, header := range loggableHeaders {
			if value := r.Header.Get(header); value != "" {
				event = event.Str("hdr_"+strings.ToLower(header), value)
			}
		}

		event.Send()
	})
}
