package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"costmanager/internal/logger"
	"costmanager/internal/service"
	"costmanager/internal/store"
	"costmanager/internal/utils"
	"costmanager/models"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) addUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, errInvalidJSON)
		return
	}

	registeredUser, err := h.services.UserService.RegisterUser(ctx, user)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, registeredUser, http.StatusCreated)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, service.ErrUserIDNotPositive)
		return
	}

	user, err := h.services.UserService.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			utils.WriteJSON(w, models.ErrorResponse{
				ID:      http.StatusNotFound,
				Message: fmt.Sprintf("User %d does not exist.", id),
			}, http.StatusNotFound)
			return
		}
		log.Err(err).Int64("userId", id).Msg("user lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.UserService.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("user listing failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}
