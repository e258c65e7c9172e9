// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/valyan/clinic-manager/internal/config"
	"github.com/valyan/clinic-manager/internal/crypto"
	"github.com/valyan/clinic-manager/internal/logger"
	"github.com/valyan/clinic-manager/internal/store"
	"github.com/valyan/clinic-manager/models"
)

type Services struct {
	AuthService         AuthService
	UserService         UserService
	PersonService       PersonService
	LocationService     LocationService
	MedicalStaffService MedicalStaffService
	AppInfoService      AppInfoService
}

// NewServices wires every service over storages. It fails when the token
// settings are unusable, which must stop the server at startup.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	tokens, err := crypto.NewJWTIssuer(cfg.App)
	if err != nil {
		return nil, fmt.Errorf("error creating token issuer: %w", err)
	}
	hasher := crypto.NewPasswordHasher(cfg.App.BcryptCost)

	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	gridLimits := models.QueryLimits{DefaultPageSize: cfg.Query.DefaultPageSize, MaxPageSize: cfg.Query.GridMaxPageSize}
	bulkLimits := models.QueryLimits{DefaultPageSize: cfg.Query.DefaultPageSize, MaxPageSize: cfg.Query.BulkMaxPageSize}

	return &Services{
		AuthService:         NewAuthService(storages.UserRepository, storages.TokenDenylist, hasher, tokens, logger),
		UserService:         NewUserService(storages.UserRepository, hasher, gridLimits, logger),
		PersonService:       NewPersonService(storages.PersonRepository, gridLimits, logger),
		LocationService:     NewLocationService(storages.LocationRepository, logger),
		MedicalStaffService: NewMedicalStaffService(storages.MedicalStaffRepository, gridLimits, bulkLimits, logger),
		AppInfoService:      appInfo,
	}, nil
}
