package http

import (
	"encoding/json"
	"net/http"

	"costmanager/internal/logger"
	"costmanager/internal/utils"
	"costmanager/models"
)

func (h *Handler) addCost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var cost models.Cost
	if err := json.NewDecoder(r.Body).Decode(&cost); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, errInvalidJSON)
		return
	}

	createdCost, err := h.services.CostService.AddCost(ctx, cost)
	if err != nil {
		log.Err(err).Int64("userId", cost.UserID).Msg("cost creation failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, createdCost, http.StatusCreated)
}
