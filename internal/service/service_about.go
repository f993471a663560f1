package service

import (
	"context"

	"costmanager/internal/logger"
	"costmanager/models"
)

// team is the static development-team roster served by /api/about.
var team = []models.Developer{
	{FirstName: "Maxim", LastName: "Khiriev"},
	{FirstName: "Anna", LastName: "Volkova"},
}

// aboutService is the concrete implementation of [AboutService].
type aboutService struct {
	response models.AboutResponse
	logger   *logger.Logger
}

// NewAboutService constructs an [AboutService] for the configured version.
// The version comes from configuration and must be non-empty; the payload is
// assembled once since nothing in it changes at runtime.
func NewAboutService(version string, logger *logger.Logger) (AboutService, error) {
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}
	return &aboutService{
		response: models.AboutResponse{
			Team:    team,
			Version: version,
		},
		logger: logger,
	}, nil
}

func (s *aboutService) About(_ context.Context) models.AboutResponse {
	return s.response
}
