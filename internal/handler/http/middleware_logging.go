package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-user-directory/internal/logger"
)

// withLogging records every request before and after the inner chain runs.
// The inner stages write into a buffered response writer; once they finish,
// the final status and body text are logged and only then is the buffered
// response replayed byte-for-byte to the client.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		log.Info().
			Str("uri", uri).
			Str("method", method).
			Msg("request received")

		lw := newBufferedResponseWriter(w)

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		log.Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", lw.Status()).
			Dur("duration", duration).
			Int("size", lw.Size()).
			Str("body", lw.BodyString()).
			Msg("response sent")

		if err := lw.flush(); err != nil {
			log.Err(err).Msg("error replaying buffered response")
		}
	})
}
