package store

import (
	"context"

	"costmanager/internal/config"
	"costmanager/internal/logger"
)

// Storages aggregates every repository backing the cost manager services.
type Storages struct {
	UserRepository   UserRepository
	CostRepository   CostRepository
	ReportRepository ReportRepository
	LogRepository    LogRepository
}

// NewStorages connects to PostgreSQL, applies migrations, and wires all
// repositories over the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:   NewUserRepository(db, log),
		CostRepository:   NewCostRepository(db, log),
		ReportRepository: NewReportRepository(db, log),
		LogRepository:    NewLogRepository(db, log),
	}, nil
}
