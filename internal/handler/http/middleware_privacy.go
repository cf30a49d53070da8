package http

import (
	"net/http"
	"strings"
)

// withNoStore forbids caching of API responses. Almost every endpoint under
// /api returns personal name data, and a cached disclosure would outlive the
// assignment that authorized it, so intermediaries and browsers are told to
// store nothing.
func withNoStore(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			w.Header().Set("Cache-Control", "no-store")
			w.Header().Set("Pragma", "no-cache")
		}
		next.ServeHTTP(w, r)
	})
}
