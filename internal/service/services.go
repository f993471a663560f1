// SPDX-License-Identifier: Apache-2.0

// Package service contains the business rules of the cost manager: user
// registration, cost recording, monthly report computation and caching,
// request-log persistence and the static about payload. Services validate
// input, enforce policy and delegate persistence to the store repositories.
package service

import (
	"costmanager/internal/config"
	"costmanager/internal/logger"
	"costmanager/internal/store"
)

// Services aggregates every business service behind its interface.
type Services struct {
	UserService   UserService
	CostService   CostService
	ReportService ReportService
	LogService    LogService
	AboutService  AboutService
}

// NewServices wires all services over the given storages. The clock is shared
// so the whole business layer agrees on what "now" means.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, clock Clock, log *logger.Logger) (*Services, error) {
	aboutService, err := NewAboutService(cfg.App.Version, log)
	if err != nil {
		return nil, err
	}

	return &Services{
		UserService:   NewUserService(storages.UserRepository, clock, log),
		CostService:   NewCostService(storages.UserRepository, storages.CostRepository, clock, log),
		ReportService: NewReportService(storages.UserRepository, storages.CostRepository, storages.ReportRepository, clock, log),
		LogService:    NewLogService(storages.LogRepository, log),
		AboutService:  aboutService,
	}, nil
}
