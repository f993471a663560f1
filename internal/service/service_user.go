// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"strings"

	"costmanager/internal/logger"
	"costmanager/internal/store"
	"costmanager/models"
)

// userService is the concrete implementation of [UserService].
type userService struct {
	userRepository store.UserRepository
	clock          Clock
	logger         *logger.Logger
}

// NewUserService constructs a [UserService] over the given repository.
func NewUserService(users store.UserRepository, clock Clock, logger *logger.Logger) UserService {
	return &userService{
		userRepository: users,
		clock:          clock,
		logger:         logger,
	}
}

// RegisterUser validates the user and persists it. The application-level ID
// is chosen by the caller and must be positive and unused; a duplicate ID
// surfaces as [store.ErrUserAlreadyExists].
func (s *userService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.FirstName = strings.TrimSpace(user.FirstName)
	user.LastName = strings.TrimSpace(user.LastName)

	if user.ID <= 0 {
		return models.User{}, ErrUserIDNotPositive
	}
	if user.FirstName == "" || user.LastName == "" {
		return models.User{}, ErrUserFieldsMissing
	}
	if !user.Birthday.IsZero() && user.Birthday.After(s.clock.Now()) {
		return models.User{}, ErrBirthdayInFuture
	}

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Int64("userId", user.ID).Msg("user registration failed")
		return models.User{}, fmt.Errorf("user registration failed: %w", err)
	}

	log.Info().Int64("userId", created.ID).Msg("user registered")
	return created, nil
}

// GetUser returns the user with the given application-level ID, or
// [store.ErrUserNotFound] wrapped if no such user exists.
func (s *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}
	return user, nil
}

// ListUsers returns all registered users in creation order.
func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("user listing failed: %w", err)
	}
	return users, nil
}
