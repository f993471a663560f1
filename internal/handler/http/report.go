package http

import (
	"net/http"

	"costmanager/internal/logger"
	"costmanager/internal/utils"
)

func (h *Handler) getReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	query := r.URL.Query()
	userID := query.Get("userId")
	if userID == "" {
		// "id" is accepted as a legacy alias for "userId"
		userID = query.Get("id")
	}

	report, err := h.services.ReportService.BuildReport(ctx, userID, query.Get("year"), query.Get("month"))
	if err != nil {
		log.Err(err).Msg("report request failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}
