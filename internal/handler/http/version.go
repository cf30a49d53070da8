package http

import (
	"io"
	"net/http"
)

// getServerVersion reports the running build's semantic version as bare text.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, h.services.AppInfoService.GetAppVersion(r.Context()))
}
