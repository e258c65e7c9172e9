// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyan/clinic-manager/internal/logger"
	"github.com/valyan/clinic-manager/internal/mock"
	"github.com/valyan/clinic-manager/models"
	"go.uber.org/mock/gomock"
)

func TestLocationService_EmptyIsNotAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockLocationRepository(ctrl)
	svc := NewLocationService(repo, logger.Nop())

	repo.EXPECT().ListCounties(gomock.Any()).Return(nil, nil)
	repo.EXPECT().ListLocalitiesByCountyName(gomock.Any(), "Cluj").Return(nil, nil)

	counties, err := svc.Counties(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, counties)
	assert.Empty(t, counties)

	localities, err := svc.LocalitiesByCountyName(context.Background(), " Cluj ")
	require.NoError(t, err)
	assert.NotNil(t, localities)
}

func TestLocationService_FailureIsNotEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockLocationRepository(ctrl)
	svc := NewLocationService(repo, logger.Nop())
	dbErr := errors.New("db unreachable")

	repo.EXPECT().ListLocalities(gomock.Any()).Return(nil, dbErr)
	repo.EXPECT().ListCountiesWithLocalities(gomock.Any()).Return(nil, dbErr)

	_, err := svc.Localities(context.Background())
	assert.ErrorIs(t, err, dbErr)
	_, err = svc.CountiesWithLocalities(context.Background())
	assert.ErrorIs(t, err, dbErr)
}

func TestLocationService_ArgumentValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockLocationRepository(ctrl)
	svc := NewLocationService(repo, logger.Nop())

	_, err := svc.LocalitiesByCountyName(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = svc.LocalitiesByCountyID(context.Background(), 0)
	assert.ErrorIs(t, err, ErrValidation)

	repo.EXPECT().ListLocalitiesByCountyID(gomock.Any(), int64(12)).Return([]models.Locality{{ID: 1, CountyID: 12, Name: "Cluj-Napoca"}}, nil)
	localities, err := svc.LocalitiesByCountyID(context.Background(), 12)
	require.NoError(t, err)
	assert.Len(t, localities, 1)
}
