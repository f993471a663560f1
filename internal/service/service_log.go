package service

import (
	"context"
	"fmt"

	"costmanager/internal/logger"
	"costmanager/internal/store"
	"costmanager/models"
)

// logService is the concrete implementation of [LogService].
type logService struct {
	logRepository store.LogRepository
	logger        *logger.Logger
}

// NewLogService constructs a [LogService] over the given repository.
func NewLogService(logs store.LogRepository, logger *logger.Logger) LogService {
	return &logService{
		logRepository: logs,
		logger:        logger,
	}
}

func (s *logService) Record(ctx context.Context, record models.LogRecord) error {
	if err := s.logRepository.InsertLog(ctx, record); err != nil {
		return fmt.Errorf("log record write failed: %w", err)
	}
	return nil
}

func (s *logService) List(ctx context.Context, filter models.LogFilter) ([]models.LogRecord, error) {
	records, err := s.logRepository.FindLogs(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("log listing failed: %w", err)
	}
	return records, nil
}
