// SPDX-License-Identifier: Apache-2.0

package http

import (
	"errors"
	"fmt"
	"net/http"

	"costmanager/internal/service"
	"costmanager/internal/store"
	"costmanager/internal/utils"
	"costmanager/models"
)

var errorStatusMap = map[error]int{
	errInvalidJSON:      http.StatusBadRequest,
	errInvalidLogFilter: http.StatusBadRequest,

	service.ErrMissingFields:      http.StatusBadRequest,
	service.ErrNotPositiveInteger: http.StatusBadRequest,
	service.ErrMonthOutOfRange:    http.StatusBadRequest,

	service.ErrUserFieldsMissing: http.StatusBadRequest,
	service.ErrUserIDNotPositive: http.StatusBadRequest,
	service.ErrBirthdayInFuture:  http.StatusBadRequest,

	service.ErrCostFieldsMissing: http.StatusBadRequest,
	service.ErrUnknownCategory:   http.StatusBadRequest,
	service.ErrInvalidSum:        http.StatusBadRequest,
	service.ErrCostDateTooOld:    http.StatusBadRequest,

	store.ErrUserAlreadyExists: http.StatusConflict,
	store.ErrUserNotFound:      http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

// errorMessageMap holds the exact client-facing message for every mapped
// error. Messages are part of the API contract; change them only together
// with the clients.
var errorMessageMap = map[error]string{
	errInvalidJSON:      "Invalid JSON was passed.",
	errInvalidLogFilter: "Status and limit must be positive integers.",

	service.ErrMissingFields:      "Missing required fields.",
	service.ErrNotPositiveInteger: "User ID, year and month must be positive integers.",
	service.ErrMonthOutOfRange:    "Month number must be between 1 and 12.",

	service.ErrUserFieldsMissing: "First name and last name are required.",
	service.ErrUserIDNotPositive: "User ID must be a positive integer.",
	service.ErrBirthdayInFuture:  "Birthday must not be in the future.",

	service.ErrCostFieldsMissing: "Description and category are required.",
	service.ErrUnknownCategory:   "Category is not one of the registered categories.",
	service.ErrInvalidSum:        "Sum must be a finite non-negative number.",
	service.ErrCostDateTooOld:    "Date must not be before the start of the current day.",

	store.ErrUserAlreadyExists: "User already exists.",
	store.ErrUserNotFound:      "User does not exist.",
}

const internalErrorMessage = "Internal server error."

func statusFromError(err error) int {
	// a missing user on /api/report and /api/costs is a request-content
	// failure, answered 400; GET /api/users/{id} reports absence as 404
	// through store.ErrUserNotFound instead
	var notFound *service.UserNotFoundError
	if errors.As(err, &notFound) {
		return http.StatusBadRequest
	}
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	var notFound *service.UserNotFoundError
	if errors.As(err, &notFound) {
		return fmt.Sprintf("User %d does not exist.", notFound.UserID)
	}
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return internalErrorMessage
}

// writeError maps err to its HTTP status and client message and writes the
// uniform error body {"id": <status>, "message": <text>}.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	utils.WriteJSON(w, models.ErrorResponse{ID: status, Message: messageFromError(err)}, status)
}
