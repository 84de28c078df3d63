package http

import (
	"net/http"

	"github.com/MKhiriev/rhoconnect-go/internal/utils"
	"github.com/MKhiriev/rhoconnect-go/logger"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	if _, err := utils.WriteJSON(w, version, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing version")
	}
}
