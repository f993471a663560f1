// Package adapter provides a typed REST client for the cost manager API.
// It is consumed by the smoke-test CLI and can back other Go programs that
// need to talk to a running server.
package adapter

import (
	"context"

	"costmanager/models"
)

// ServerAdapter is the client-side view of the cost manager REST API.
type ServerAdapter interface {
	// AddUser registers a new user.
	AddUser(ctx context.Context, user models.User) (models.User, error)

	// GetUser fetches one user by application-level ID.
	GetUser(ctx context.Context, id int64) (models.User, error)

	// ListUsers fetches all registered users.
	ListUsers(ctx context.Context) ([]models.User, error)

	// AddCost records a new expense.
	AddCost(ctx context.Context, cost models.Cost) (models.Cost, error)

	// GetReport fetches the monthly report for a user.
	GetReport(ctx context.Context, userID int64, year, month int) (models.Report, error)

	// Logs fetches request log records matching the filter.
	Logs(ctx context.Context, filter models.LogFilter) ([]models.LogRecord, error)

	// About fetches the developer-info payload.
	About(ctx context.Context) (models.AboutResponse, error)
}
