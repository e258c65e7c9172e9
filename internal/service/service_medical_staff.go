// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/valyan/clinic-manager/internal/logger"
	"github.com/valyan/clinic-manager/internal/store"
	"github.com/valyan/clinic-manager/internal/utils"
	"github.com/valyan/clinic-manager/internal/validators"
	"github.com/valyan/clinic-manager/models"
)

// medicalStaffService serves the medical personnel grid. The paged grid and
// the bulk lookup share one query path and differ only in page limits.
type medicalStaffService struct {
	staffRepository store.MedicalStaffRepository
	validator       validators.Validator
	ids             *utils.UUIDGenerator

	gridLimits models.QueryLimits
	bulkLimits models.QueryLimits

	logger *logger.Logger
}

func NewMedicalStaffService(staffRepository store.MedicalStaffRepository, gridLimits, bulkLimits models.QueryLimits, logger *logger.Logger) MedicalStaffService {
	return &medicalStaffService{
		staffRepository: staffRepository,
		validator:       validators.NewMedicalStaffValidator(),
		ids:             utils.NewUUIDGenerator(),
		gridLimits:      gridLimits,
		bulkLimits:      bulkLimits,
		logger:          logger,
	}
}

func (s *medicalStaffService) Create(ctx context.Context, principal models.Principal, staff models.MedicalStaff) (models.MedicalStaff, error) {
	staff = cleanMedicalStaff(staff)
	if err := s.validator.Validate(ctx, staff); err != nil {
		return models.MedicalStaff{}, validationFailed(err)
	}
	if err := s.checkLicenseNumber(ctx, staff.LicenseNumber, ""); err != nil {
		return models.MedicalStaff{}, err
	}

	staff.ID = s.ids.Generate()
	staff.IsActive = true
	staff.CreatedBy = auditName(principal)

	created, err := s.staffRepository.Create(ctx, staff)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "medicalStaffService.Create").Msg("medical staff creation ended with error")
		return models.MedicalStaff{}, storeError(err, "medical staff")
	}
	return created, nil
}

func (s *medicalStaffService) Get(ctx context.Context, id string) (models.MedicalStaff, error) {
	if !isID(id) {
		return models.MedicalStaff{}, fmt.Errorf("medical staff: %w", ErrNotFound)
	}

	staff, err := s.staffRepository.GetByID(ctx, id)
	if err != nil {
		return models.MedicalStaff{}, storeError(err, "medical staff")
	}
	return staff, nil
}

func (s *medicalStaffService) Update(ctx context.Context, principal models.Principal, id string, staff models.MedicalStaff) (models.MedicalStaff, error) {
	staff = cleanMedicalStaff(staff)
	if err := s.validator.Validate(ctx, staff); err != nil {
		return models.MedicalStaff{}, validationFailed(err)
	}

	current, err := s.Get(ctx, id)
	if err != nil {
		return models.MedicalStaff{}, err
	}
	if !strings.EqualFold(staff.LicenseNumber, current.LicenseNumber) {
		if err = s.checkLicenseNumber(ctx, staff.LicenseNumber, current.ID); err != nil {
			return models.MedicalStaff{}, err
		}
	}

	staff.ID = current.ID
	staff.CreatedAt = current.CreatedAt
	staff.CreatedBy = current.CreatedBy
	staff.UpdatedBy = auditName(principal)

	updated, err := s.staffRepository.Update(ctx, staff)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "medicalStaffService.Update").Str("staff_id", id).Msg("medical staff update ended with error")
		return models.MedicalStaff{}, storeError(err, "medical staff")
	}
	return updated, nil
}

func (s *medicalStaffService) Delete(ctx context.Context, principal models.Principal, id string) error {
	if !isID(id) {
		return fmt.Errorf("medical staff: %w", ErrNotFound)
	}
	if err := s.staffRepository.Deactivate(ctx, id, auditName(principal)); err != nil {
		return storeError(err, "medical staff")
	}
	return nil
}

func (s *medicalStaffService) Query(ctx context.Context, filter models.MedicalStaffFilter, query models.SearchQuery) (models.PagedResult[models.MedicalStaff], error) {
	return s.query(ctx, filter, query, s.gridLimits)
}

func (s *medicalStaffService) Lookup(ctx context.Context, filter models.MedicalStaffFilter, query models.SearchQuery) (models.PagedResult[models.MedicalStaff], error) {
	return s.query(ctx, filter, query, s.bulkLimits)
}

func (s *medicalStaffService) query(ctx context.Context, filter models.MedicalStaffFilter, query models.SearchQuery, limits models.QueryLimits) (models.PagedResult[models.MedicalStaff], error) {
	page, err := normalizeQuery(query, limits, models.MedicalStaffFields)
	if err != nil {
		return models.PagedResult[models.MedicalStaff]{}, err
	}
	return runQuery[models.MedicalStaff, models.MedicalStaffFilter](ctx, s.staffRepository, filter, page)
}

func (s *medicalStaffService) Summary(ctx context.Context, filter models.MedicalStaffFilter, groups []models.GroupDescriptor) ([]models.GroupSummary, error) {
	return summarize[models.MedicalStaff, models.MedicalStaffFilter](ctx, s.staffRepository, filter, groups, models.MedicalStaffFields)
}

func (s *medicalStaffService) checkLicenseNumber(ctx context.Context, licenseNumber, excludeID string) error {
	if licenseNumber == "" {
		return nil
	}
	taken, err := s.staffRepository.ExistsByLicenseNumber(ctx, licenseNumber, excludeID)
	if err != nil {
		return fmt.Errorf("duplicate check failed: %w", err)
	}
	if taken {
		return fmt.Errorf("numarLicenta already registered: %w", ErrDuplicate)
	}
	return nil
}

func cleanMedicalStaff(s models.MedicalStaff) models.MedicalStaff {
	s.PersonID = strings.TrimSpace(s.PersonID)
	s.LastName = strings.TrimSpace(s.LastName)
	s.FirstName = strings.TrimSpace(s.FirstName)
	s.Specialty = strings.TrimSpace(s.Specialty)
	s.LicenseNumber = strings.TrimSpace(s.LicenseNumber)
	s.Phone = strings.TrimSpace(s.Phone)
	s.Email = strings.TrimSpace(s.Email)
	s.Department = strings.TrimSpace(s.Department)
	s.Position = strings.TrimSpace(s.Position)
	return s
}
