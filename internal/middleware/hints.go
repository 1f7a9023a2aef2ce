package middleware

import (
	"net/http"

	"github.com/aisb-selection/aisb/internal/theme"
)

// ColorSchemeHints asks browsers to send the prefers-color-scheme client
// hint on subsequent requests and marks responses as varying on it.
func ColorSchemeHints(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Accept-CH", theme.ClientHintHeader)
		h.Add("Vary", theme.ClientHintHeader)
		h.Add("Critical-CH", theme.ClientHintHeader)

		next.ServeHTTP(w, r)
	})
}
