// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/valyan/clinic-manager/internal/logger"
	"github.com/valyan/clinic-manager/internal/utils"
	"github.com/valyan/clinic-manager/models"
)

// gridTable maps the external property names of one entity onto SQL.
// fields is the single whitelist used for filtering, sorting and grouping;
// nothing outside of it ever reaches a statement.
type gridTable struct {
	name       string
	from       string
	columns    []string
	fields     map[string]string
	modifiedAt string
	// defaultOrder applies when the caller sends no sort.
	defaultOrder []string
	// tieBreaker keeps paging stable between equal sort values.
	tieBreaker string
}

func (g gridTable) field(name string) (string, error) {
	expr, ok := g.fields[name]
	if !ok {
		return "", fmt.Errorf("%w: unknown property %q for %s", ErrBuildingSQLQuery, name, g.name)
	}
	return expr, nil
}

// groupKeyExprs renders each group property as a non-null text key.
func (g gridTable) groupKeyExprs(groups []models.GroupDescriptor) ([]string, error) {
	keys := make([]string, 0, len(groups))
	for _, group := range groups {
		expr, err := g.field(group.Property)
		if err != nil {
			return nil, err
		}
		keys = append(keys, fmt.Sprintf("COALESCE(CAST(%s AS TEXT), '')", expr))
	}
	return keys, nil
}

func (g gridTable) sortClauses(sort *models.SortDescriptor) ([]string, error) {
	if sort == nil || sort.Property == "" {
		return append(append([]string{}, g.defaultOrder...), g.tieBreaker+" ASC"), nil
	}

	expr, err := g.field(sort.Property)
	if err != nil {
		return nil, err
	}
	return []string{expr + " " + direction(sort.SortOrder), g.tieBreaker + " ASC"}, nil
}

func (g gridTable) groupClauses(groups []models.GroupDescriptor, keyExprs []string) []string {
	clauses := make([]string, len(keyExprs))
	for i, expr := range keyExprs {
		clauses[i] = expr + " " + direction(groups[i].SortOrder)
	}
	return clauses
}

func direction(order models.SortOrder) string {
	if order.IsDesc() {
		return "DESC"
	}
	return "ASC"
}

func where(b sq.SelectBuilder, conditions sq.And) sq.SelectBuilder {
	if len(conditions) == 0 {
		return b
	}
	return b.Where(conditions)
}

func (g gridTable) countQuery(conditions sq.And) (string, []any, error) {
	return where(psql.Select("COUNT(*)").From(g.from), conditions).ToSql()
}

func (g gridTable) listQuery(conditions sq.And, page models.PageRequest) (string, []any, error) {
	order, err := g.sortClauses(page.Sort)
	if err != nil {
		return "", nil, err
	}

	return where(psql.Select(g.columns...).From(g.from), conditions).
		OrderBy(order...).
		Limit(uint64(page.PageSize)).
		Offset(uint64(page.Offset())).
		ToSql()
}

func (g gridTable) groupSummaryQuery(conditions sq.And, groups []models.GroupDescriptor) (string, []any, error) {
	keyExprs, err := g.groupKeyExprs(groups)
	if err != nil {
		return "", nil, err
	}
	if len(keyExprs) == 0 {
		return "", nil, fmt.Errorf("%w: no group property", ErrBuildingSQLQuery)
	}

	columns := append(append([]string{}, keyExprs...), "COUNT(*)", "MAX("+g.modifiedAt+")")

	return where(psql.Select(columns...).From(g.from), conditions).
		GroupBy(keyExprs...).
		OrderBy(g.groupClauses(groups, keyExprs)...).
		ToSql()
}

func (g gridTable) groupItemsQuery(conditions sq.And, groups []models.GroupDescriptor, keys [][]string, sort *models.SortDescriptor) (string, []any, error) {
	keyExprs, err := g.groupKeyExprs(groups)
	if err != nil {
		return "", nil, err
	}
	if len(keyExprs) == 0 || len(keys) == 0 {
		return "", nil, fmt.Errorf("%w: no group keys", ErrBuildingSQLQuery)
	}

	inGroups := make(sq.Or, 0, len(keys))
	for _, tuple := range keys {
		if len(tuple) != len(keyExprs) {
			return "", nil, fmt.Errorf("%w: group key has %d parts, want %d", ErrBuildingSQLQuery, len(tuple), len(keyExprs))
		}
		match := make(sq.And, 0, len(tuple))
		for i, value := range tuple {
			match = append(match, sq.Eq{keyExprs[i]: value})
		}
		inGroups = append(inGroups, match)
	}

	order, err := g.sortClauses(sort)
	if err != nil {
		return "", nil, err
	}
	order = append(g.groupClauses(groups, keyExprs), order...)

	columns := append(append([]string{}, keyExprs...), g.columns...)
	filtered := append(append(sq.And{}, conditions...), inGroups)

	return psql.Select(columns...).From(g.from).
		Where(filtered).
		OrderBy(order...).
		ToSql()
}

// likePattern folds term the same way the database side folds the column
// and wraps it for a contains match.
func likePattern(term string) string {
	return "%" + utils.EscapeLike(utils.FoldSearchTerm(term)) + "%"
}

// searchCondition requires every word of term to appear in at least one of
// columns, ignoring case and diacritics. It returns nil for a blank term.
func searchCondition(term string, columns ...string) sq.Sqlizer {
	words := strings.Fields(utils.FoldSearchTerm(term))
	if len(words) == 0 {
		return nil
	}

	all := make(sq.And, 0, len(words))
	for _, word := range words {
		pattern := likePattern(word)
		inAnyColumn := make(sq.Or, 0, len(columns))
		for _, column := range columns {
			inAnyColumn = append(inAnyColumn, sq.Expr("lower(unaccent("+column+")) LIKE ?", pattern))
		}
		all = append(all, inAnyColumn)
	}
	return all
}

// containsCondition is a single-column, case and diacritic insensitive
// partial match. It returns nil for a blank value.
func containsCondition(column, value string) sq.Sqlizer {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return sq.Expr("lower(unaccent("+column+")) LIKE ?", likePattern(value))
}

// equalsFoldCondition matches column exactly, ignoring case.
func equalsFoldCondition(column, value string) sq.Sqlizer {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return sq.Expr("lower("+column+") = lower(?)", value)
}

func boolCondition(column string, value *bool) sq.Sqlizer {
	if value == nil {
		return nil
	}
	return sq.Eq{column: *value}
}

// conditions drops the nil entries produced by the helpers above.
func conditions(parts ...sq.Sqlizer) sq.And {
	out := make(sq.And, 0, len(parts))
	for _, part := range parts {
		if part != nil {
			out = append(out, part)
		}
	}
	return out
}

// gridQuerier runs the grid statements of one table and scans rows into T.
type gridQuerier[T any] struct {
	db      *DB
	table   gridTable
	targets func(item *T) []any
}

func (q gridQuerier[T]) count(ctx context.Context, where sq.And) (int, error) {
	log := logger.FromContext(ctx)
	funcName := q.table.name + ".Count"

	query, args, err := q.table.countQuery(where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int
	if err = q.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, q.db.classify(ctx, funcName, err, ErrExecutingQuery)
	}

	return total, nil
}

func (q gridQuerier[T]) list(ctx context.Context, where sq.And, page models.PageRequest) ([]T, error) {
	log := logger.FromContext(ctx)
	funcName := q.table.name + ".List"

	query, args, err := q.table.listQuery(where, page)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return nil, err
	}

	return q.queryItems(ctx, funcName, query, args)
}

func (q gridQuerier[T]) queryItems(ctx context.Context, funcName, query string, args []any) ([]T, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, q.db.classify(ctx, funcName, err, ErrExecutingQuery)
	}
	defer rows.Close()

	items := make([]T, 0, 32)
	for rows.Next() {
		var item T
		if err = rows.Scan(q.targets(&item)...); err != nil {
			logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

func (q gridQuerier[T]) groupSummaries(ctx context.Context, where sq.And, groups []models.GroupDescriptor) ([]models.GroupSummary, error) {
	log := logger.FromContext(ctx)
	funcName := q.table.name + ".GroupSummaries"

	query, args, err := q.table.groupSummaryQuery(where, groups)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return nil, err
	}

	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, q.db.classify(ctx, funcName, err, ErrExecutingQuery)
	}
	defer rows.Close()

	summaries := make([]models.GroupSummary, 0, 16)
	for rows.Next() {
		keys := make([]string, len(groups))
		var (
			count    int
			modified sql.NullTime
		)

		dest := make([]any, 0, len(groups)+2)
		for i := range keys {
			dest = append(dest, &keys[i])
		}
		dest = append(dest, &count, &modified)

		if err = rows.Scan(dest...); err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to scan group row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		summary := models.GroupSummary{Key: models.GroupKey(keys), Keys: keys, Count: count}
		if modified.Valid {
			at := modified.Time.UTC()
			summary.LastModifiedAt = &at
		}
		summaries = append(summaries, summary)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return summaries, nil
}

func (q gridQuerier[T]) listInGroups(ctx context.Context, where sq.And, groups []models.GroupDescriptor, keys [][]string, sort *models.SortDescriptor) ([]models.Keyed[T], error) {
	if len(keys) == 0 {
		return []models.Keyed[T]{}, nil
	}

	log := logger.FromContext(ctx)
	funcName := q.table.name + ".ListInGroups"

	query, args, err := q.table.groupItemsQuery(where, groups, keys, sort)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return nil, err
	}

	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, q.db.classify(ctx, funcName, err, ErrExecutingQuery)
	}
	defer rows.Close()

	items := make([]models.Keyed[T], 0, 32)
	for rows.Next() {
		var keyed models.Keyed[T]
		keyed.Keys = make([]string, len(groups))

		dest := make([]any, 0, len(groups)+len(q.table.columns))
		for i := range keyed.Keys {
			dest = append(dest, &keyed.Keys[i])
		}
		dest = append(dest, q.targets(&keyed.Item)...)

		if err = rows.Scan(dest...); err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		items = append(items, keyed)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

// textOrEmpty scans a nullable text column into a plain string.
type textOrEmpty struct {
	dst *string
}

func (t textOrEmpty) Scan(src any) error {
	if src == nil {
		*t.dst = ""
		return nil
	}

	var ns sql.NullString
	if err := ns.Scan(src); err != nil {
		return err
	}
	*t.dst = ns.String
	return nil
}

// nullableString maps "" to SQL NULL for optional foreign keys.
func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
