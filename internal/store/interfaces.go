package store

import (
	"context"

	"costmanager/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_store.go -package=mock

// UserRepository persists and queries user accounts.
type UserRepository interface {
	// CreateUser inserts a new user and returns the stored record with
	// server-assigned fields populated.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByID returns the user with the given application-level ID,
	// or ErrUserNotFound.
	FindUserByID(ctx context.Context, id int64) (models.User, error)

	// ListUsers returns all registered users.
	ListUsers(ctx context.Context) ([]models.User, error)

	// UserExists reports whether a user with the given application-level ID
	// is registered.
	UserExists(ctx context.Context, id int64) (bool, error)
}

// CostRepository persists and queries cost records.
type CostRepository interface {
	// CreateCost inserts a new cost and returns the stored record.
	CreateCost(ctx context.Context, cost models.Cost) (models.Cost, error)

	// FindCostsByUser returns every cost of the given user in insertion
	// order. No date filtering happens at this boundary; callers window the
	// result in memory.
	FindCostsByUser(ctx context.Context, userID int64) ([]models.Cost, error)
}

// ReportRepository is the permanent report cache. Entries are written once
// per (userID, year, month) and never updated or invalidated.
type ReportRepository interface {
	// FindCachedReport returns the cached report for the key, or
	// ErrReportNotFound on a cache miss.
	FindCachedReport(ctx context.Context, userID int64, year, month int) (models.Report, error)

	// InsertReport persists a freshly computed report. A concurrent insert
	// of the same key surfaces as ErrReportAlreadyCached.
	InsertReport(ctx context.Context, report models.Report) error
}

// LogRepository persists and lists request log records.
type LogRepository interface {
	// InsertLog appends one request log record.
	InsertLog(ctx context.Context, record models.LogRecord) error

	// FindLogs returns log records matching the filter, newest first.
	FindLogs(ctx context.Context, filter models.LogFilter) ([]models.LogRecord, error)
}
