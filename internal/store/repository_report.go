package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"costmanager/internal/logger"
	"costmanager/models"

	"github.com/jackc/pgerrcode"
)

// reportRepository is the PostgreSQL-backed implementation of
// [ReportRepository]. The breakdown itself is stored as a JSONB document in
// the "costs" column, so a cached report is returned byte-for-byte the way
// it was computed.
type reportRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewReportRepository constructs a [ReportRepository] backed by the provided
// database connection and logger.
func NewReportRepository(db *DB, logger *logger.Logger) ReportRepository {
	logger.Debug().Msg("creating report repository")
	return &reportRepository{
		db:     db,
		logger: logger,
	}
}

// FindCachedReport looks up the report cached for (userID, year, month).
//
// Error handling:
//   - sql.ErrNoRows yields [ErrReportNotFound] (cache miss).
//   - A malformed JSONB payload yields a wrapped decode error.
func (r *reportRepository) FindCachedReport(ctx context.Context, userID int64, year, month int) (models.Report, error) {
	log := logger.FromContext(ctx)

	var (
		report models.Report
		raw    []byte
	)
	row := r.db.QueryRowContext(ctx, findCachedReport, userID, year, month)

	if err := row.Scan(&report.ReportPK, &report.UserID, &report.Year, &report.Month, &raw, &report.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Report{}, ErrReportNotFound
		}
		log.Err(err).Str("func", "*reportRepository.FindCachedReport").Msg("error: scanning error")
		return models.Report{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err := json.Unmarshal(raw, &report.Costs); err != nil {
		log.Err(err).Str("func", "*reportRepository.FindCachedReport").Msg("error: decoding cached breakdown")
		return models.Report{}, fmt.Errorf("decode cached report costs: %w", err)
	}

	return report, nil
}

// InsertReport persists a freshly computed report keyed by
// (UserID, Year, Month). The breakdown is serialized to JSONB verbatim.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) yields [ErrReportAlreadyCached]; a
//     concurrent request for the same uncached past month won the insert.
//   - Any other driver-level error is wrapped as "unexpected DB error".
func (r *reportRepository) InsertReport(ctx context.Context, report models.Report) error {
	log := logger.FromContext(ctx)

	raw, err := json.Marshal(report.Costs)
	if err != nil {
		return fmt.Errorf("encode report costs: %w", err)
	}

	row := r.db.QueryRowContext(ctx, insertReport, report.UserID, report.Year, report.Month, raw)

	if err = row.Err(); err != nil {
		log.Err(err).Str("func", "*reportRepository.InsertReport").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return ErrReportAlreadyCached
		default:
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	var pk int64
	var createdAt sql.NullTime
	if err = row.Scan(&pk, &createdAt); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return ErrReportAlreadyCached
		}
		log.Err(err).Str("func", "*reportRepository.InsertReport").Msg("error: scanning error")
		return fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return nil
}
