package store

import (
	"context"
	"fmt"

	"costmanager/internal/logger"
	"costmanager/models"
)

// costRepository is the PostgreSQL-backed implementation of [CostRepository].
// Costs are append-only: the repository exposes no update or delete.
type costRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCostRepository constructs a [CostRepository] backed by the provided
// database connection and logger.
func NewCostRepository(db *DB, logger *logger.Logger) CostRepository {
	logger.Debug().Msg("creating cost repository")
	return &costRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCost persists a new cost record and returns it with server-assigned
// fields (CostPK, CreatedAt) populated via the RETURNING clause.
func (r *costRepository) CreateCost(ctx context.Context, cost models.Cost) (models.Cost, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createCost, cost.UserID, cost.Description, cost.Category, cost.Sum, cost.Date)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*costRepository.CreateCost").Msg("error: row is nil")
		return models.Cost{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&cost.CostPK, &cost.UserID, &cost.Description, &cost.Category, &cost.Sum, &cost.Date, &cost.CreatedAt); err != nil {
		log.Err(err).Str("func", "*costRepository.CreateCost").Msg("error: scanning error")
		return models.Cost{}, err
	}

	return cost, nil
}

// FindCostsByUser returns every cost of the given user ordered by insertion.
// The query carries no date filter; report generation windows the result in
// memory so the calendar matching logic stays in one place.
func (r *costRepository) FindCostsByUser(ctx context.Context, userID int64) ([]models.Cost, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findCostsByUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*costRepository.FindCostsByUser").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	costs := make([]models.Cost, 0)
	for rows.Next() {
		var c models.Cost
		if err = rows.Scan(&c.CostPK, &c.UserID, &c.Description, &c.Category, &c.Sum, &c.Date, &c.CreatedAt); err != nil {
			log.Err(err).Str("func", "*costRepository.FindCostsByUser").Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		costs = append(costs, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return costs, nil
}
