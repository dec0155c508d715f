package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-user-directory/internal/logger"
)

const msgInternalServerError = "An unexpected fault happened."

// recoverFaults is the outermost middleware of the chain. It converts any
// panic escaping the inner stages into an HTTP 500 response so a single
// faulty request can never take the process down.
//
// The panic detail is included in the response body only in development
// mode; production clients receive a generic message. The full panic value
// and stack trace are always logged.
func (h *Handler) recoverFaults(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				// the connection is gone, let net/http handle it
				panic(rec)
			}

			log := logger.FromRequest(r)
			log.Error().
				Any("panic", rec).
				Str("stack", string(debug.Stack())).
				Msg("recovered from fault in handler")

			if h.development {
				http.Error(w, fmt.Sprintf("%s %v", msgInternalServerError, rec), http.StatusInternalServerError)
				return
			}
			http.Error(w, msgInternalServerError, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
