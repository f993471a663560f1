package http

import (
	"net/http"
	"strconv"

	"costmanager/internal/logger"
	"costmanager/internal/utils"
	"costmanager/models"
)

func (h *Handler) getLogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter, err := parseLogFilter(r)
	if err != nil {
		writeError(w, err)
		return
	}

	records, err := h.services.LogService.List(ctx, filter)
	if err != nil {
		log.Err(err).Msg("log listing failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, records, http.StatusOK)
}

// parseLogFilter extracts the optional method, status and limit query
// parameters. Absent parameters leave the zero value, which the store treats
// as "no filter" (and a default limit).
func parseLogFilter(r *http.Request) (models.LogFilter, error) {
	query := r.URL.Query()

	filter := models.LogFilter{Method: query.Get("method")}

	if raw := query.Get("status"); raw != "" {
		status, err := strconv.Atoi(raw)
		if err != nil || status <= 0 {
			return models.LogFilter{}, errInvalidLogFilter
		}
		filter.Status = status
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return models.LogFilter{}, errInvalidLogFilter
		}
		filter.Limit = limit
	}

	return filter, nil
}
