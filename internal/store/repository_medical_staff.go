// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/valyan/clinic-manager/internal/logger"
	"github.com/valyan/clinic-manager/models"
)

var medicalStaffColumns = []string{
	"pm.id",
	"CAST(pm.persoana_id AS TEXT)",
	"pm.nume",
	"pm.prenume",
	"pm.specializare",
	"pm.numar_licenta",
	"pm.telefon",
	"pm.email",
	"pm.departament",
	"pm.pozitie",
	"pm.este_activ",
	"pm.data_creare",
	"pm.data_ultimei_modificari",
	"pm.creat_de",
	"pm.modificat_de",
}

var medicalStaffGrid = gridTable{
	name:    "medicalStaffRepository",
	from:    "personal_medical pm",
	columns: medicalStaffColumns,
	fields: map[string]string{
		"nume":                  "pm.nume",
		"prenume":               "pm.prenume",
		"specializare":          "pm.specializare",
		"numarLicenta":          "pm.numar_licenta",
		"telefon":               "pm.telefon",
		"email":                 "pm.email",
		"departament":           "pm.departament",
		"pozitie":               "pm.pozitie",
		"esteActiv":             "pm.este_activ",
		"dataCreare":            "pm.data_creare",
		"dataUltimeiModificari": "pm.data_ultimei_modificari",
	},
	modifiedAt:   "pm.data_ultimei_modificari",
	defaultOrder: []string{"pm.nume ASC", "pm.prenume ASC"},
	tieBreaker:   "pm.id",
}

func medicalStaffTargets(m *models.MedicalStaff) []any {
	return []any{
		&m.ID,
		textOrEmpty{&m.PersonID},
		&m.LastName,
		&m.FirstName,
		&m.Specialty,
		&m.LicenseNumber,
		&m.Phone,
		&m.Email,
		&m.Department,
		&m.Position,
		&m.IsActive,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.CreatedBy,
		&m.UpdatedBy,
	}
}

// medicalStaffFilterConditions combines the toolbar filters, the free-text
// search and the per-column grid filters with AND.
func medicalStaffFilterConditions(f models.MedicalStaffFilter) sq.And {
	return conditions(
		searchCondition(f.Search, "pm.nume", "pm.prenume", "pm.specializare", "pm.departament", "pm.pozitie", "pm.numar_licenta"),
		equalsFoldCondition("pm.departament", f.Department),
		equalsFoldCondition("pm.pozitie", f.Position),
		boolCondition("pm.este_activ", f.IsActive),
		containsCondition("pm.nume", f.LastName),
		containsCondition("pm.prenume", f.FirstName),
		containsCondition("pm.specializare", f.Specialty),
		containsCondition("pm.numar_licenta", f.LicenseNumber),
		containsCondition("pm.telefon", f.Phone),
		containsCondition("pm.email", f.Email),
	)
}

type medicalStaffRepository struct {
	db     *DB
	grid   gridQuerier[models.MedicalStaff]
	logger *logger.Logger
}

func NewMedicalStaffRepository(db *DB, logger *logger.Logger) MedicalStaffRepository {
	logger.Debug().Msg("creating medical staff repository")
	return &medicalStaffRepository{
		db:     db,
		grid:   gridQuerier[models.MedicalStaff]{db: db, table: medicalStaffGrid, targets: medicalStaffTargets},
		logger: logger,
	}
}

func (r *medicalStaffRepository) Create(ctx context.Context, staff models.MedicalStaff) (models.MedicalStaff, error) {
	err := r.db.QueryRowContext(ctx, createMedicalStaff,
		staff.ID,
		nullableString(staff.PersonID),
		staff.LastName,
		staff.FirstName,
		staff.Specialty,
		staff.LicenseNumber,
		staff.Phone,
		staff.Email,
		staff.Department,
		staff.Position,
		staff.IsActive,
		staff.CreatedBy,
	).Scan(&staff.CreatedAt, &staff.UpdatedAt)
	if err != nil {
		return models.MedicalStaff{}, r.db.classify(ctx, "medicalStaffRepository.Create", err, ErrExecutingStatement)
	}

	staff.UpdatedBy = staff.CreatedBy
	return staff, nil
}

func (r *medicalStaffRepository) GetByID(ctx context.Context, id string) (models.MedicalStaff, error) {
	query, args, err := psql.Select(medicalStaffColumns...).
		From(medicalStaffGrid.from).
		Where(sq.Eq{"pm.id": id}).
		ToSql()
	if err != nil {
		return models.MedicalStaff{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var staff models.MedicalStaff
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(medicalStaffTargets(&staff)...); err != nil {
		return models.MedicalStaff{}, r.db.classify(ctx, "medicalStaffRepository.GetByID", err, ErrExecutingQuery)
	}

	return staff, nil
}

func (r *medicalStaffRepository) ExistsByLicenseNumber(ctx context.Context, licenseNumber, excludeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, existsMedicalStaffByLicenseNumber, licenseNumber, excludeID).Scan(&exists)
	if err != nil {
		return false, r.db.classify(ctx, "medicalStaffRepository.ExistsByLicenseNumber", err, ErrExecutingQuery)
	}

	return exists, nil
}

func (r *medicalStaffRepository) Update(ctx context.Context, staff models.MedicalStaff) (models.MedicalStaff, error) {
	err := r.db.QueryRowContext(ctx, updateMedicalStaff,
		staff.ID,
		nullableString(staff.PersonID),
		staff.LastName,
		staff.FirstName,
		staff.Specialty,
		staff.LicenseNumber,
		staff.Phone,
		staff.Email,
		staff.Department,
		staff.Position,
		staff.IsActive,
		staff.UpdatedBy,
	).Scan(&staff.UpdatedAt)
	if err != nil {
		return models.MedicalStaff{}, r.db.classify(ctx, "medicalStaffRepository.Update", err, ErrExecutingStatement)
	}

	return staff, nil
}

func (r *medicalStaffRepository) Deactivate(ctx context.Context, id, by string) error {
	return execAffectingOne(ctx, r.db, "medicalStaffRepository.Deactivate", deactivateMedicalStaff, id, by)
}

func (r *medicalStaffRepository) Count(ctx context.Context, filter models.MedicalStaffFilter) (int, error) {
	return r.grid.count(ctx, medicalStaffFilterConditions(filter))
}

func (r *medicalStaffRepository) List(ctx context.Context, filter models.MedicalStaffFilter, page models.PageRequest) ([]models.MedicalStaff, error) {
	return r.grid.list(ctx, medicalStaffFilterConditions(filter), page)
}

func (r *medicalStaffRepository) GroupSummaries(ctx context.Context, filter models.MedicalStaffFilter, groups []models.GroupDescriptor) ([]models.GroupSummary, error) {
	return r.grid.groupSummaries(ctx, medicalStaffFilterConditions(filter), groups)
}

func (r *medicalStaffRepository) ListInGroups(ctx context.Context, filter models.MedicalStaffFilter, groups []models.GroupDescriptor, keys [][]string, sort *models.SortDescriptor) ([]models.Keyed[models.MedicalStaff], error) {
	return r.grid.listInGroups(ctx, medicalStaffFilterConditions(filter), groups, keys, sort)
}
