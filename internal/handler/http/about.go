package http

import (
	"net/http"

	"costmanager/internal/utils"
)

func (h *Handler) getAbout(w http.ResponseWriter, r *http.Request) {
	about := h.services.AboutService.About(r.Context())

	utils.WriteJSON(w, about, http.StatusOK)
}
