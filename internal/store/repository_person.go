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

var personColumns = []string{
	"p.id",
	"p.nume",
	"p.prenume",
	"p.cnp",
	"p.data_nasterii",
	"p.sex",
	"p.telefon",
	"p.email",
	"p.judet",
	"p.localitate",
	"p.adresa",
	"p.tip_act_identitate",
	"p.serie_act",
	"p.numar_act",
	"p.este_activ",
	"p.data_creare",
	"p.data_ultimei_modificari",
	"p.creat_de",
	"p.modificat_de",
}

var personGrid = gridTable{
	name:    "personRepository",
	from:    "persoane p",
	columns: personColumns,
	fields: map[string]string{
		"nume":         "p.nume",
		"prenume":      "p.prenume",
		"cnp":          "p.cnp",
		"judet":        "p.judet",
		"localitate":   "p.localitate",
		"sex":          "p.sex",
		"esteActiv":    "p.este_activ",
		"dataNasterii": "p.data_nasterii",
		"dataCreare":   "p.data_creare",
	},
	modifiedAt:   "p.data_ultimei_modificari",
	defaultOrder: []string{"p.nume ASC", "p.prenume ASC"},
	tieBreaker:   "p.id",
}

func personTargets(p *models.Person) []any {
	return []any{
		&p.ID,
		&p.LastName,
		&p.FirstName,
		&p.CNP,
		&p.BirthDate,
		&p.Sex,
		&p.Phone,
		&p.Email,
		&p.County,
		&p.Locality,
		&p.Address,
		&p.DocumentType,
		&p.DocumentSeries,
		&p.DocumentNumber,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.CreatedBy,
		&p.UpdatedBy,
	}
}

func personFilterConditions(f models.PersonFilter) sq.And {
	return conditions(
		searchCondition(f.Search, "p.nume", "p.prenume", "p.cnp", "p.email", "p.telefon"),
		equalsFoldCondition("p.judet", f.County),
		equalsFoldCondition("p.localitate", f.Locality),
		equalsFoldCondition("p.sex", f.Sex),
		boolCondition("p.este_activ", f.IsActive),
	)
}

type personRepository struct {
	db     *DB
	grid   gridQuerier[models.Person]
	logger *logger.Logger
}

func NewPersonRepository(db *DB, logger *logger.Logger) PersonRepository {
	logger.Debug().Msg("creating person repository")
	return &personRepository{
		db:     db,
		grid:   gridQuerier[models.Person]{db: db, table: personGrid, targets: personTargets},
		logger: logger,
	}
}

func (r *personRepository) Create(ctx context.Context, person models.Person) (models.Person, error) {
	err := r.db.QueryRowContext(ctx, createPerson,
		person.ID,
		person.LastName,
		person.FirstName,
		person.CNP,
		person.BirthDate,
		person.Sex,
		person.Phone,
		person.Email,
		person.County,
		person.Locality,
		person.Address,
		person.DocumentType,
		person.DocumentSeries,
		person.DocumentNumber,
		person.IsActive,
		person.CreatedBy,
	).Scan(&person.CreatedAt, &person.UpdatedAt)
	if err != nil {
		return models.Person{}, r.db.classify(ctx, "personRepository.Create", err, ErrExecutingStatement)
	}

	person.UpdatedBy = person.CreatedBy
	return person, nil
}

func (r *personRepository) GetByID(ctx context.Context, id string) (models.Person, error) {
	query, args, err := psql.Select(personColumns...).
		From(personGrid.from).
		Where(sq.Eq{"p.id": id}).
		ToSql()
	if err != nil {
		return models.Person{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var person models.Person
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(personTargets(&person)...); err != nil {
		return models.Person{}, r.db.classify(ctx, "personRepository.GetByID", err, ErrExecutingQuery)
	}

	return person, nil
}

func (r *personRepository) ExistsByCNP(ctx context.Context, cnp, excludeID string) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, existsPersonByCNP, cnp, excludeID).Scan(&exists); err != nil {
		return false, r.db.classify(ctx, "personRepository.ExistsByCNP", err, ErrExecutingQuery)
	}

	return exists, nil
}

func (r *personRepository) Update(ctx context.Context, person models.Person) (models.Person, error) {
	err := r.db.QueryRowContext(ctx, updatePerson,
		person.ID,
		person.LastName,
		person.FirstName,
		person.CNP,
		person.BirthDate,
		person.Sex,
		person.Phone,
		person.Email,
		person.County,
		person.Locality,
		person.Address,
		person.DocumentType,
		person.DocumentSeries,
		person.DocumentNumber,
		person.IsActive,
		person.UpdatedBy,
	).Scan(&person.UpdatedAt)
	if err != nil {
		return models.Person{}, r.db.classify(ctx, "personRepository.Update", err, ErrExecutingStatement)
	}

	return person, nil
}

func (r *personRepository) Deactivate(ctx context.Context, id, by string) error {
	return execAffectingOne(ctx, r.db, "personRepository.Deactivate", deactivatePerson, id, by)
}

func (r *personRepository) Count(ctx context.Context, filter models.PersonFilter) (int, error) {
	return r.grid.count(ctx, personFilterConditions(filter))
}

func (r *personRepository) List(ctx context.Context, filter models.PersonFilter, page models.PageRequest) ([]models.Person, error) {
	return r.grid.list(ctx, personFilterConditions(filter), page)
}

func (r *personRepository) GroupSummaries(ctx context.Context, filter models.PersonFilter, groups []models.GroupDescriptor) ([]models.GroupSummary, error) {
	return r.grid.groupSummaries(ctx, personFilterConditions(filter), groups)
}

func (r *personRepository) ListInGroups(ctx context.Context, filter models.PersonFilter, groups []models.GroupDescriptor, keys [][]string, sort *models.SortDescriptor) ([]models.Keyed[models.Person], error) {
	return r.grid.listInGroups(ctx, personFilterConditions(filter), groups, keys, sort)
}
