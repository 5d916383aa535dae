package http

import (
	"net/http"
)

// getServerVersion answers with the plain text version. The build commit is
// exposed in a response header for operators.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	serverVersion := h.services.AppInfoService.GetAppVersion(ctx)
	buildInfo := h.services.AppInfoService.GetBuildInfo(ctx)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Build-Commit", buildInfo.BuildCommit())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(serverVersion))
}
