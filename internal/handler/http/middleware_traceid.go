package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/truenamepath/truenamepath/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID assigns every request a trace id. The id is attached to the
// request-scoped logger, stored in the context under [utils.TraceIDCtxKey]
// (the audit log and response envelopes read it from there), and echoed back
// in the response header.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := requestTraceID(r)

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		ctx := context.WithValue(r.Context(), utils.TraceIDCtxKey, traceID)
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}

// requestTraceID returns the caller's X-Trace-ID header when present, a
// fresh UUID otherwise.
func requestTraceID(r *http.Request) string {
	if id := r.Header.Get(traceIDHeader); id != "" {
		return id
	}

	return uuid.NewString()
}
