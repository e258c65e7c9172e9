// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/valyan/clinic-manager/internal/logger"
	"github.com/valyan/clinic-manager/models"
)

// locationRepository reads the "judete" and "localitati" reference tables.
// An empty result is a valid answer, never an error.
type locationRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewLocationRepository(db *DB, logger *logger.Logger) LocationRepository {
	logger.Debug().Msg("creating location repository")
	return &locationRepository{db: db, logger: logger}
}

func (r *locationRepository) ListCounties(ctx context.Context) ([]models.County, error) {
	const funcName = "locationRepository.ListCounties"

	rows, err := r.db.QueryContext(ctx, listCounties)
	if err != nil {
		return nil, r.db.classify(ctx, funcName, err, ErrExecutingQuery)
	}
	defer rows.Close()

	counties := make([]models.County, 0, 48)
	for rows.Next() {
		var c models.County
		if err = rows.Scan(&c.ID, &c.Code, &c.Name); err != nil {
			logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("failed to scan county row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		counties = append(counties, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return counties, nil
}

func (r *locationRepository) ListLocalities(ctx context.Context) ([]models.Locality, error) {
	return r.queryLocalities(ctx, "locationRepository.ListLocalities", listLocalities)
}

func (r *locationRepository) ListLocalitiesByCountyName(ctx context.Context, countyName string) ([]models.Locality, error) {
	return r.queryLocalities(ctx, "locationRepository.ListLocalitiesByCountyName", listLocalitiesByCountyName, countyName)
}

func (r *locationRepository) ListLocalitiesByCountyID(ctx context.Context, countyID int64) ([]models.Locality, error) {
	return r.queryLocalities(ctx, "locationRepository.ListLocalitiesByCountyID", listLocalitiesByCountyID, countyID)
}

func (r *locationRepository) queryLocalities(ctx context.Context, funcName, query string, args ...any) ([]models.Locality, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.db.classify(ctx, funcName, err, ErrExecutingQuery)
	}
	defer rows.Close()

	localities := make([]models.Locality, 0, 64)
	for rows.Next() {
		var l models.Locality
		if err = rows.Scan(&l.ID, &l.CountyID, &l.Name, &l.Kind); err != nil {
			logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("failed to scan locality row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		localities = append(localities, l)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return localities, nil
}

// ListCountiesWithLocalities folds the county/locality join into one entry
// per county. Counties without localities carry an empty list.
func (r *locationRepository) ListCountiesWithLocalities(ctx context.Context) ([]models.CountyWithLocalities, error) {
	const funcName = "locationRepository.ListCountiesWithLocalities"

	rows, err := r.db.QueryContext(ctx, listCountiesWithLocalities)
	if err != nil {
		return nil, r.db.classify(ctx, funcName, err, ErrExecutingQuery)
	}
	defer rows.Close()

	result := make([]models.CountyWithLocalities, 0, 48)
	for rows.Next() {
		var (
			county       models.County
			localityID   sql.NullInt64
			localityName sql.NullString
			localityKind sql.NullString
		)
		if err = rows.Scan(&county.ID, &county.Code, &county.Name, &localityID, &localityName, &localityKind); err != nil {
			logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("failed to scan county row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		if len(result) == 0 || result[len(result)-1].ID != county.ID {
			result = append(result, models.CountyWithLocalities{County: county, Localities: []models.Locality{}})
		}

		if localityID.Valid {
			current := &result[len(result)-1]
			current.Localities = append(current.Localities, models.Locality{
				ID:       localityID.Int64,
				CountyID: county.ID,
				Name:     localityName.String,
				Kind:     localityKind.String,
			})
		}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}
