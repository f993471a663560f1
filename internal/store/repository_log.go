package store

import (
	"context"
	"fmt"

	"costmanager/internal/logger"
	"costmanager/models"
)

// logRepository is the PostgreSQL-backed implementation of [LogRepository].
type logRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewLogRepository constructs a [LogRepository] backed by the provided
// database connection and logger.
func NewLogRepository(db *DB, logger *logger.Logger) LogRepository {
	logger.Debug().Msg("creating log repository")
	return &logRepository{
		db:     db,
		logger: logger,
	}
}

// InsertLog appends one request log record.
func (r *logRepository) InsertLog(ctx context.Context, record models.LogRecord) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, insertLog,
		record.Time, record.Method, record.Port, record.Path, record.Status, record.DurationMs, record.Message)
	if err != nil {
		log.Err(err).Str("func", "*logRepository.InsertLog").Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// FindLogs returns log records matching the filter, newest first. The query
// is assembled dynamically with squirrel (see [buildSelectLogsQuery]).
func (r *logRepository) FindLogs(ctx context.Context, filter models.LogFilter) ([]models.LogRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectLogsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*logRepository.FindLogs").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*logRepository.FindLogs").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.LogRecord, 0)
	for rows.Next() {
		var rec models.LogRecord
		if err = rows.Scan(&rec.LogPK, &rec.Time, &rec.Method, &rec.Port, &rec.Path, &rec.Status, &rec.DurationMs, &rec.Message); err != nil {
			log.Err(err).Str("func", "*logRepository.FindLogs").Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}
