package service

import (
	"context"

	"costmanager/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_service.go -package=mock

// UserService manages user accounts. Users are create-and-read only; no
// update or delete operation exists anywhere in the API.
type UserService interface {
	// RegisterUser validates and persists a new user.
	RegisterUser(ctx context.Context, user models.User) (models.User, error)

	// GetUser returns the user with the given application-level ID.
	GetUser(ctx context.Context, id int64) (models.User, error)

	// ListUsers returns all registered users.
	ListUsers(ctx context.Context) ([]models.User, error)
}

// CostService records expense events.
type CostService interface {
	// AddCost validates and persists a new cost record. A zero Date is
	// defaulted to the current instant.
	AddCost(ctx context.Context, cost models.Cost) (models.Cost, error)
}

// ReportService produces monthly per-category cost breakdowns, serving past
// months from the permanent report cache and computing everything else on
// demand.
type ReportService interface {
	// BuildReport resolves the report for the raw query parameters taken
	// straight off the request. Validation of the three parameters happens
	// here, in the documented order: presence, then positive-integer shape,
	// then month range.
	BuildReport(ctx context.Context, rawUserID, rawYear, rawMonth string) (models.Report, error)
}

// LogService persists and lists request log records.
type LogService interface {
	// Record appends one request log record. Failures are reported to the
	// caller but must never fail the logged request itself.
	Record(ctx context.Context, record models.LogRecord) error

	// List returns log records matching the filter, newest first.
	List(ctx context.Context, filter models.LogFilter) ([]models.LogRecord, error)
}

// AboutService serves the static developer-info payload.
type AboutService interface {
	// About returns the development team and the application version.
	About(ctx context.Context) models.AboutResponse
}
