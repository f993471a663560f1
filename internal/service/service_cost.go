package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"costmanager/internal/logger"
	"costmanager/internal/store"
	"costmanager/models"
)

// costService is the concrete implementation of [CostService].
type costService struct {
	userRepository store.UserRepository
	costRepository store.CostRepository
	clock          Clock
	logger         *logger.Logger
}

// NewCostService constructs a [CostService] over the given repositories.
func NewCostService(users store.UserRepository, costs store.CostRepository, clock Clock, logger *logger.Logger) CostService {
	return &costService{
		userRepository: users,
		costRepository: costs,
		clock:          clock,
		logger:         logger,
	}
}

// AddCost validates and persists a new cost record.
//
// The category is normalized (trimmed, lower-cased) before the registry
// check, so clients may send "Food" or " FOOD ". A zero Date is defaulted
// to the current instant; an explicit Date must not precede the start of
// the current day, which keeps costs out of months whose reports may
// already be cached.
func (s *costService) AddCost(ctx context.Context, cost models.Cost) (models.Cost, error) {
	log := logger.FromContext(ctx)

	cost.Description = strings.TrimSpace(cost.Description)
	cost.Category = models.NormalizeCategory(cost.Category)

	if cost.UserID <= 0 {
		return models.Cost{}, ErrUserIDNotPositive
	}
	if cost.Description == "" || cost.Category == "" {
		return models.Cost{}, ErrCostFieldsMissing
	}
	if !models.IsRegisteredCategory(cost.Category) {
		return models.Cost{}, ErrUnknownCategory
	}
	if cost.Sum < 0 || math.IsNaN(cost.Sum) || math.IsInf(cost.Sum, 0) {
		return models.Cost{}, ErrInvalidSum
	}

	now := s.clock.Now().UTC()
	if cost.Date.IsZero() {
		cost.Date = now
	} else {
		startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if cost.Date.UTC().Before(startOfDay) {
			return models.Cost{}, ErrCostDateTooOld
		}
	}

	exists, err := s.userRepository.UserExists(ctx, cost.UserID)
	if err != nil {
		log.Err(err).Int64("userId", cost.UserID).Msg("user existence check failed")
		return models.Cost{}, fmt.Errorf("user existence check failed: %w", err)
	}
	if !exists {
		return models.Cost{}, &UserNotFoundError{UserID: cost.UserID}
	}

	created, err := s.costRepository.CreateCost(ctx, cost)
	if err != nil {
		log.Err(err).Int64("userId", cost.UserID).Msg("cost creation failed")
		return models.Cost{}, fmt.Errorf("cost creation failed: %w", err)
	}

	log.Info().
		Int64("userId", created.UserID).
		Str("category", created.Category).
		Float64("sum", created.Sum).
		Msg("cost recorded")
	return created, nil
}
