package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"costmanager/internal/logger"
	"costmanager/internal/store"
	"costmanager/models"
)

// reportService is the concrete implementation of [ReportService].
//
// It implements the computed-report pattern: a report for a month strictly
// before the current one is computed at most once, persisted, and served
// from the reports table forever after. Reports for the current or a future
// month are recomputed from the cost records on every request and never
// persisted. The cache is deliberately permanent; a cost slipped into an
// already-cached month leaves the cached report stale, and that is accepted
// behavior rather than a defect.
type reportService struct {
	userRepository   store.UserRepository
	costRepository   store.CostRepository
	reportRepository store.ReportRepository

	// categories is the fixed ordered registry driving the breakdown shape.
	categories []string

	// clock supplies "now" for past-month classification.
	clock Clock

	logger *logger.Logger
}

// NewReportService constructs a [ReportService] over the given repositories.
// The clock is injected so the past/current boundary can be pinned in tests.
func NewReportService(users store.UserRepository, costs store.CostRepository, reports store.ReportRepository, clock Clock, logger *logger.Logger) ReportService {
	return &reportService{
		userRepository:   users,
		costRepository:   costs,
		reportRepository: reports,
		categories:       models.Categories(),
		clock:            clock,
		logger:           logger,
	}
}

// BuildReport resolves the monthly report for the raw request parameters.
//
// The decision procedure:
//  1. Validate the parameters (presence, then shape, then range).
//  2. Confirm the user exists; fail with [UserNotFoundError] otherwise.
//  3. If the month is past and cached, return the cached report unmodified.
//  4. Otherwise fetch all of the user's costs and group them by category,
//     windowed to the requested calendar (year, month).
//  5. If the month is past and was not cached, persist the result verbatim.
//     A write failure fails the whole request: returning a report the cache
//     claims to hold but does not would break the idempotent-read contract.
func (s *reportService) BuildReport(ctx context.Context, rawUserID, rawYear, rawMonth string) (models.Report, error) {
	log := logger.FromContext(ctx)

	userID, year, month, err := validateReportParams(rawUserID, rawYear, rawMonth)
	if err != nil {
		log.Warn().
			Str("userId", rawUserID).
			Str("year", rawYear).
			Str("month", rawMonth).
			Err(err).
			Msg("report parameters rejected")
		return models.Report{}, err
	}

	exists, err := s.userRepository.UserExists(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userId", userID).Msg("user existence check failed")
		return models.Report{}, fmt.Errorf("user existence check failed: %w", err)
	}
	if !exists {
		return models.Report{}, &UserNotFoundError{UserID: userID}
	}

	pastMonth := s.isPastMonth(year, month)

	if pastMonth {
		cached, findErr := s.reportRepository.FindCachedReport(ctx, userID, year, month)
		switch {
		case findErr == nil:
			log.Debug().Int64("userId", userID).Int("year", year).Int("month", month).Msg("serving cached report")
			return cached, nil
		case !errors.Is(findErr, store.ErrReportNotFound):
			log.Err(findErr).Int64("userId", userID).Msg("report cache lookup failed")
			return models.Report{}, fmt.Errorf("report cache lookup failed: %w", findErr)
		}
		// cache miss: fall through and compute
	}

	costs, err := s.costRepository.FindCostsByUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userId", userID).Msg("cost fetch failed")
		return models.Report{}, fmt.Errorf("cost fetch failed: %w", err)
	}

	report := models.Report{
		UserID: userID,
		Year:   year,
		Month:  month,
		Costs:  groupCostsByCategory(costs, s.categories, year, month),
	}

	if pastMonth {
		if insErr := s.reportRepository.InsertReport(ctx, report); insErr != nil {
			// a concurrent request for the same uncached month may have won
			// the insert; the backstop constraint reports that as
			// ErrReportAlreadyCached and the computed result is still valid
			if !errors.Is(insErr, store.ErrReportAlreadyCached) {
				log.Err(insErr).Int64("userId", userID).Msg("report cache write failed")
				return models.Report{}, fmt.Errorf("report cache write failed: %w", insErr)
			}
			log.Debug().Int64("userId", userID).Int("year", year).Int("month", month).Msg("report cached concurrently elsewhere")
		}
	}

	return report, nil
}

// isPastMonth reports whether (year, month) lies strictly before the current
// month: the target's first-of-month instant precedes the first of the
// current month. The current month itself and all future months yield false.
func (s *reportService) isPastMonth(year, month int) bool {
	now := s.clock.Now().UTC()

	currentFirst := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	targetFirst := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)

	return targetFirst.Before(currentFirst)
}

// validateReportParams checks the three raw query parameters in the fixed
// order presence, then positive-integer shape, then month range, and returns the
// parsed values. Zero, negative and fractional inputs are all shape
// failures, not separate cases; year has no upper bound.
func validateReportParams(rawUserID, rawYear, rawMonth string) (userID int64, year, month int, err error) {
	rawUserID = strings.TrimSpace(rawUserID)
	rawYear = strings.TrimSpace(rawYear)
	rawMonth = strings.TrimSpace(rawMonth)

	if rawUserID == "" || rawYear == "" || rawMonth == "" {
		return 0, 0, 0, ErrMissingFields
	}

	userID, uErr := strconv.ParseInt(rawUserID, 10, 64)
	y, yErr := strconv.ParseInt(rawYear, 10, 64)
	m, mErr := strconv.ParseInt(rawMonth, 10, 64)

	if uErr != nil || yErr != nil || mErr != nil || userID <= 0 || y <= 0 || m <= 0 {
		return 0, 0, 0, ErrNotPositiveInteger
	}

	if m > 12 {
		return 0, 0, 0, ErrMonthOutOfRange
	}

	return userID, int(y), int(m), nil
}
