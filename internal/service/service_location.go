// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/valyan/clinic-manager/internal/logger"
	"github.com/valyan/clinic-manager/internal/store"
	"github.com/valyan/clinic-manager/models"
)

// locationService reads the county and locality reference data. An empty
// result is a legitimate answer; repository failures are returned, never
// turned into empty lists.
type locationService struct {
	locationRepository store.LocationRepository

	logger *logger.Logger
}

func NewLocationService(locationRepository store.LocationRepository, logger *logger.Logger) LocationService {
	return &locationService{
		locationRepository: locationRepository,
		logger:             logger,
	}
}

func (s *locationService) Counties(ctx context.Context) ([]models.County, error) {
	counties, err := s.locationRepository.ListCounties(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing counties: %w", err)
	}
	return orEmpty(counties), nil
}

func (s *locationService) Localities(ctx context.Context) ([]models.Locality, error) {
	localities, err := s.locationRepository.ListLocalities(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing localities: %w", err)
	}
	return orEmpty(localities), nil
}

func (s *locationService) LocalitiesByCountyName(ctx context.Context, countyName string) ([]models.Locality, error) {
	countyName = strings.TrimSpace(countyName)
	if countyName == "" {
		return nil, newValidationError("county name is required")
	}

	localities, err := s.locationRepository.ListLocalitiesByCountyName(ctx, countyName)
	if err != nil {
		return nil, fmt.Errorf("error listing localities of county %q: %w", countyName, err)
	}
	return orEmpty(localities), nil
}

func (s *locationService) LocalitiesByCountyID(ctx context.Context, countyID int64) ([]models.Locality, error) {
	if countyID <= 0 {
		return nil, newValidationError("county id must be a positive number")
	}

	localities, err := s.locationRepository.ListLocalitiesByCountyID(ctx, countyID)
	if err != nil {
		return nil, fmt.Errorf("error listing localities of county %d: %w", countyID, err)
	}
	return orEmpty(localities), nil
}

func (s *locationService) CountiesWithLocalities(ctx context.Context) ([]models.CountyWithLocalities, error) {
	counties, err := s.locationRepository.ListCountiesWithLocalities(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing counties with localities: %w", err)
	}
	return orEmpty(counties), nil
}

// orEmpty keeps JSON responses as [] instead of null.
func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
