package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// traceIDHeader carries the request trace ID in both directions: clients may
// supply one to correlate their own logs with the server's, and the server
// echoes the resolved value on every response.
const traceIDHeader = "X-Aiva-Trace-Id"

// withTraceID resolves a trace ID for the request (taking the client's if
// present, minting a UUID otherwise), binds it to a child logger stored in
// the request context, and echoes it back in the response headers. Every
// log line emitted downstream via [logger.FromRequest] carries the ID.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
