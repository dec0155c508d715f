package http

import (
	"net/http"
)

const greetingMessage = "Hello, world!"

// greeting serves the root endpoint. It carries no business logic but still
// runs behind the full middleware chain, authentication included.
func (h *Handler) greeting(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(greetingMessage))
}
