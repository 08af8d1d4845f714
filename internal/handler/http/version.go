package http

import (
	"io"
	"net/http"
)

// getServerVersion answers the build version as plain text.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	io.WriteString(w, h.services.AppInfoService.GetAppVersion(r.Context()))
}
