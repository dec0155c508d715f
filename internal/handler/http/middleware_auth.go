package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/MKhiriev/go-user-directory/internal/logger"
)

// apiKeyHeader is the request header every route requires.
const apiKeyHeader = "X-API-KEY"

// Response bodies of the auth middleware. They are part of the public API
// surface and must not be reworded.
const (
	msgMissingAPIKey = "API Key is missing."
	msgInvalidAPIKey = "Unauthorized access. Invalid API Key."
)

// apiKeyAuth is an HTTP middleware that enforces shared-secret
// authentication on every route, including the greeting endpoint.
//
// It inspects the incoming "X-API-KEY" header and compares it with the key
// configured at startup:
//   - The header is absent → HTTP 401 with [msgMissingAPIKey]; inner stages
//     are never invoked.
//   - The header is present but does not match → HTTP 403 with
//     [msgInvalidAPIKey]; inner stages are never invoked.
//   - The header matches → the request is delegated to the next handler.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) apiKeyAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		apiKey := r.Header.Get(apiKeyHeader)
		if apiKey == "" {
			log.Warn().Str("uri", r.RequestURI).Msg("request rejected: API key is missing")
			http.Error(w, msgMissingAPIKey, http.StatusUnauthorized)
			return
		}

		// constant-time comparison keeps the shared secret unguessable
		// through response timing
		if subtle.ConstantTimeCompare([]byte(apiKey), []byte(h.apiKey)) != 1 {
			log.Warn().Str("uri", r.RequestURI).Msg("request rejected: invalid API key")
			http.Error(w, msgInvalidAPIKey, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
