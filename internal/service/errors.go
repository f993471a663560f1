package service

import (
	"errors"
	"fmt"
)

// Report parameter validation errors, in evaluation order: presence before
// numeric shape before range.
var (
	// ErrMissingFields is returned when any of userId, year or month is
	// absent from the request.
	ErrMissingFields = errors.New("missing required fields")

	// ErrNotPositiveInteger is returned when any of the three parameters is
	// present but not a positive whole number. Zero, negatives and
	// fractional values all fall here.
	ErrNotPositiveInteger = errors.New("user id, year and month must be positive integers")

	// ErrMonthOutOfRange is returned when month is a positive integer
	// greater than 12.
	ErrMonthOutOfRange = errors.New("month number must be between 1 and 12")
)

// User registration validation errors.
var (
	// ErrUserFieldsMissing is returned when first or last name is empty.
	ErrUserFieldsMissing = errors.New("first name and last name are required")

	// ErrUserIDNotPositive is returned when the application-level user ID
	// is zero or negative.
	ErrUserIDNotPositive = errors.New("user id must be a positive integer")

	// ErrBirthdayInFuture is returned when the supplied birthday lies after
	// the current instant.
	ErrBirthdayInFuture = errors.New("birthday must not be in the future")
)

// Cost creation validation errors.
var (
	// ErrCostFieldsMissing is returned when description or category is empty.
	ErrCostFieldsMissing = errors.New("description and category are required")

	// ErrUnknownCategory is returned when the normalized category is not a
	// member of the category registry.
	ErrUnknownCategory = errors.New("category is not one of the registered categories")

	// ErrInvalidSum is returned when sum is negative, NaN or infinite.
	ErrInvalidSum = errors.New("sum must be a finite non-negative number")

	// ErrCostDateTooOld is returned when the cost date precedes the start of
	// the current day.
	ErrCostDateTooOld = errors.New("date must not be before the start of the current day")
)

// ErrVersionIsNotSpecified is returned by the about service constructor when
// no application version was configured.
var ErrVersionIsNotSpecified = errors.New("application version is not specified")

// UserNotFoundError is returned when a report is requested for a user ID
// that is not registered. It carries the offending ID so the transport layer
// can interpolate it into the client-facing message.
type UserNotFoundError struct {
	UserID int64
}

func (e *UserNotFoundError) Error() string {
	return fmt.Sprintf("user %d does not exist", e.UserID)
}
