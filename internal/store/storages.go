// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/valyan/clinic-manager/internal/logger"
)

// Storages groups the repositories handed to the service layer.
type Storages struct {
	UserRepository         UserRepository
	PersonRepository       PersonRepository
	LocationRepository     LocationRepository
	MedicalStaffRepository MedicalStaffRepository
	TokenDenylist          TokenDenylist
}

// NewStorages builds every PostgreSQL repository over db. denylist may be
// nil, in which case revocation is disabled.
func NewStorages(db *DB, denylist TokenDenylist, log *logger.Logger) *Storages {
	if denylist == nil {
		denylist = NewNopTokenDenylist()
	}

	return &Storages{
		UserRepository:         NewUserRepository(db, log),
		PersonRepository:       NewPersonRepository(db, log),
		LocationRepository:     NewLocationRepository(db, log),
		MedicalStaffRepository: NewMedicalStaffRepository(db, log),
		TokenDenylist:          denylist,
	}
}
