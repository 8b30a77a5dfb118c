package http

import (
	"net/http"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	serverVersion := h.services.AppInfoService.GetAppVersion(ctx)

	w.Header().Set("Content-Type", "text/plain")
	w.Header().Set("X-Build-Version", h.services.AppInfoService.GetBuildInfo(ctx).BuildVersion())
	w.Write([]byte(serverVersion))
}
