// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/valyan/clinic-manager/internal/logger"
	"github.com/valyan/clinic-manager/models"
)

var userColumns = []string{
	"u.id",
	"CAST(u.persoana_id AS TEXT)",
	"u.nume_utilizator",
	"u.email",
	"u.rol",
	"u.este_activ",
	"TRIM(COALESCE(p.nume, '') || ' ' || COALESCE(p.prenume, ''))",
	"u.data_ultimei_autentificari",
	"u.data_creare",
	"u.data_ultimei_modificari",
	"u.creat_de",
	"u.modificat_de",
}

var userGrid = gridTable{
	name:    "userRepository",
	from:    "utilizatori u LEFT JOIN persoane p ON p.id = u.persoana_id",
	columns: userColumns,
	fields: map[string]string{
		"numeUtilizator":           "u.nume_utilizator",
		"email":                    "u.email",
		"rol":                      "u.rol",
		"esteActiv":                "u.este_activ",
		"dataCreare":               "u.data_creare",
		"dataUltimeiAutentificari": "u.data_ultimei_autentificari",
	},
	modifiedAt:   "u.data_ultimei_modificari",
	defaultOrder: []string{"u.nume_utilizator ASC"},
	tieBreaker:   "u.id",
}

func userTargets(u *models.User) []any {
	return []any{
		&u.ID,
		&u.PersonID,
		&u.Username,
		&u.Email,
		&u.Role,
		&u.IsActive,
		&u.FullName,
		&u.LastLoginAt,
		&u.CreatedAt,
		&u.UpdatedAt,
		&u.CreatedBy,
		&u.UpdatedBy,
	}
}

func userFilterConditions(f models.UserFilter) sq.And {
	return conditions(
		searchCondition(f.Search, "u.nume_utilizator", "u.email", "p.nume", "p.prenume"),
		equalsFoldCondition("u.rol", f.Role),
		boolCondition("u.este_activ", f.IsActive),
	)
}

// userRepository is the PostgreSQL-backed implementation of [UserRepository]
// over the "utilizatori" table.
type userRepository struct {
	db     *DB
	grid   gridQuerier[models.User]
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		grid:   gridQuerier[models.User]{db: db, table: userGrid, targets: userTargets},
		logger: logger,
	}
}

// Create inserts user. A unique index on the lower-cased username and on
// the lower-cased email turns concurrent duplicates into [ErrDuplicate].
func (r *userRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	err := r.db.QueryRowContext(ctx, createUser,
		user.ID,
		user.PersonID,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.IsActive,
		user.CreatedBy,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return models.User{}, r.db.classify(ctx, "userRepository.Create", err, ErrExecutingStatement)
	}

	user.UpdatedBy = user.CreatedBy
	return user, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (models.User, error) {
	query, args, err := psql.Select(userColumns...).
		From(userGrid.from).
		Where(sq.Eq{"u.id": id}).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(userTargets(&user)...); err != nil {
		return models.User{}, r.db.classify(ctx, "userRepository.GetByID", err, ErrExecutingQuery)
	}

	return user, nil
}

// FindByUsernameOrEmail returns the account whose username or email equals
// identifier, ignoring case. A username match wins over an email match of a
// different row, then active accounts win over inactive ones.
func (r *userRepository) FindByUsernameOrEmail(ctx context.Context, identifier string) (models.User, error) {
	query, args, err := psql.Select(append(append([]string{}, userColumns...), "u.parola_hash")...).
		From(userGrid.from).
		Where(sq.Or{
			sq.Expr("lower(u.nume_utilizator) = lower(?)", identifier),
			sq.Expr("lower(u.email) = lower(?)", identifier),
		}).
		OrderByClause("(lower(u.nume_utilizator) = lower(?)) DESC", identifier).
		OrderBy("u.este_activ DESC", "u.id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	dest := append(userTargets(&user), &user.PasswordHash)
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(dest...); err != nil {
		return models.User{}, r.db.classify(ctx, "userRepository.FindByUsernameOrEmail", err, ErrExecutingQuery)
	}

	return user, nil
}

func (r *userRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email, excludeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, existsUserByUsernameOrEmail, username, email, excludeID).Scan(&exists)
	if err != nil {
		return false, r.db.classify(ctx, "userRepository.ExistsByUsernameOrEmail", err, ErrExecutingQuery)
	}

	return exists, nil
}

// Update writes the mutable account fields (email, role, active flag).
func (r *userRepository) Update(ctx context.Context, user models.User) (models.User, error) {
	err := r.db.QueryRowContext(ctx, updateUser,
		user.ID,
		user.Email,
		user.Role,
		user.IsActive,
		user.UpdatedBy,
	).Scan(&user.UpdatedAt)
	if err != nil {
		return models.User{}, r.db.classify(ctx, "userRepository.Update", err, ErrExecutingStatement)
	}

	return user, nil
}

func (r *userRepository) UpdatePasswordHash(ctx context.Context, id, hash string) error {
	return execAffectingOne(ctx, r.db, "userRepository.UpdatePasswordHash", updateUserPasswordHash, id, hash)
}

func (r *userRepository) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	return execAffectingOne(ctx, r.db, "userRepository.TouchLastLogin", touchUserLastLogin, id, at.UTC())
}

func (r *userRepository) Deactivate(ctx context.Context, id, by string) error {
	return execAffectingOne(ctx, r.db, "userRepository.Deactivate", deactivateUser, id, by)
}

func (r *userRepository) Count(ctx context.Context, filter models.UserFilter) (int, error) {
	return r.grid.count(ctx, userFilterConditions(filter))
}

func (r *userRepository) List(ctx context.Context, filter models.UserFilter, page models.PageRequest) ([]models.User, error) {
	return r.grid.list(ctx, userFilterConditions(filter), page)
}

func (r *userRepository) GroupSummaries(ctx context.Context, filter models.UserFilter, groups []models.GroupDescriptor) ([]models.GroupSummary, error) {
	return r.grid.groupSummaries(ctx, userFilterConditions(filter), groups)
}

func (r *userRepository) ListInGroups(ctx context.Context, filter models.UserFilter, groups []models.GroupDescriptor, keys [][]string, sort *models.SortDescriptor) ([]models.Keyed[models.User], error) {
	return r.grid.listInGroups(ctx, userFilterConditions(filter), groups, keys, sort)
}

// execAffectingOne runs a single-row UPDATE and reports [ErrNotFound] when
// no row matched.
func execAffectingOne(ctx context.Context, db *DB, funcName, query string, args ...any) error {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return db.classify(ctx, funcName, err, ErrExecutingStatement)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return db.classify(ctx, funcName, err, ErrExecutingStatement)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
