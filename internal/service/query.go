// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/valyan/clinic-manager/internal/logger"
	"github.com/valyan/clinic-manager/internal/store"
	"github.com/valyan/clinic-manager/models"
)

// maxGroupLevels bounds the number of nested group properties.
const maxGroupLevels = 3

// groupKeySeparator joins composite keys for bucketing. It cannot occur in
// user text entered through the UI.
const groupKeySeparator = "\x1f"

// normalizeQuery turns a raw search request into a PageRequest: page is at
// least 1, the page size lies in [1, limits.MaxPageSize], and every sort and
// group property is a canonical name from fields.
//
// Skip/Take are used only when Page and PageSize are both absent; the page
// is the one containing row Skip at the clamped page size. The page is also
// capped so that the row offset fits in an int.
func normalizeQuery(q models.SearchQuery, limits models.QueryLimits, fields models.FieldSet) (models.PageRequest, error) {
	page, size := q.Page, q.PageSize
	fromSkip := page <= 0 && size <= 0 && q.Take > 0
	if fromSkip {
		size = q.Take
	}

	if size <= 0 {
		size = limits.DefaultPageSize
	}
	size = min(max(size, 1), max(limits.MaxPageSize, 1))

	if fromSkip {
		page = max(q.Skip, 0)/size + 1
	}
	page = min(max(page, 1), math.MaxInt/size)

	req := models.PageRequest{Page: page, PageSize: size}

	var problems []string
	if q.Sort != nil && strings.TrimSpace(q.Sort.Property) != "" {
		name, ok := fields.Lookup(q.Sort.Property)
		if ok {
			req.Sort = &models.SortDescriptor{Property: name, SortOrder: q.Sort.SortOrder.Normalize()}
		} else {
			problems = append(problems, fmt.Sprintf("cannot sort by %q", strings.TrimSpace(q.Sort.Property)))
		}
	}

	groups, groupProblems := normalizeGroups(q.Groups, fields)
	problems = append(problems, groupProblems...)
	req.Groups = groups

	if len(problems) > 0 {
		return models.PageRequest{}, newValidationError(problems...)
	}
	return req, nil
}

// normalizeGroups canonicalizes group properties. Descriptors with a blank
// property are skipped; unknown properties are reported.
func normalizeGroups(groups []models.GroupDescriptor, fields models.FieldSet) ([]models.GroupDescriptor, []string) {
	var (
		out      []models.GroupDescriptor
		problems []string
	)
	for _, g := range groups {
		if strings.TrimSpace(g.Property) == "" {
			continue
		}
		name, ok := fields.Lookup(g.Property)
		if !ok {
			problems = append(problems, fmt.Sprintf("cannot group by %q", strings.TrimSpace(g.Property)))
			continue
		}
		out = append(out, models.GroupDescriptor{Property: name, SortOrder: g.SortOrder.Normalize()})
	}
	if len(out) > maxGroupLevels {
		problems = append(problems, fmt.Sprintf("at most %d group properties are allowed", maxGroupLevels))
	}
	return out, problems
}

// runQuery executes a normalized request. Ungrouped requests page over
// items; grouped requests page over groups and return every item of the
// groups on the page.
func runQuery[T, F any](ctx context.Context, repo store.GridRepository[T, F], filter F, page models.PageRequest) (models.PagedResult[T], error) {
	if page.IsGrouped() {
		return runGroupedQuery(ctx, repo, filter, page)
	}

	total, err := repo.Count(ctx, filter)
	if err != nil {
		return models.PagedResult[T]{}, fmt.Errorf("error counting items: %w", err)
	}

	items := []T{}
	if page.Offset() < total {
		items, err = repo.List(ctx, filter, page)
		if err != nil {
			return models.PagedResult[T]{}, fmt.Errorf("error listing items: %w", err)
		}
	}

	return models.PagedResult[T]{
		Data:              items,
		Count:             len(items),
		TotalItems:        len(items),
		TotalItemsOverall: total,
		CurrentPage:       page.Page,
		PageSize:          page.PageSize,
		TotalPages:        models.TotalPages(total, page.PageSize),
	}, nil
}

func runGroupedQuery[T, F any](ctx context.Context, repo store.GridRepository[T, F], filter F, page models.PageRequest) (models.PagedResult[T], error) {
	log := logger.FromContext(ctx)

	summaries, err := repo.GroupSummaries(ctx, filter, page.Groups)
	if err != nil {
		return models.PagedResult[T]{}, fmt.Errorf("error loading groups: %w", err)
	}

	overall := 0
	for _, s := range summaries {
		overall += s.Count
	}

	start := min(max(page.Offset(), 0), len(summaries))
	end := min(start+page.PageSize, len(summaries))
	onPage := summaries[start:end]

	keys := make([][]string, len(onPage))
	groups := make([]models.Group[T], len(onPage))
	index := make(map[string]int, len(onPage))
	for i, s := range onPage {
		keys[i] = s.Keys
		groups[i] = models.Group[T]{Key: s.Key, Keys: s.Keys, Count: s.Count, Items: []T{}}
		index[strings.Join(s.Keys, groupKeySeparator)] = i
	}

	var keyed []models.Keyed[T]
	if len(keys) > 0 {
		keyed, err = repo.ListInGroups(ctx, filter, page.Groups, keys, page.Sort)
		if err != nil {
			return models.PagedResult[T]{}, fmt.Errorf("error listing grouped items: %w", err)
		}
	}

	for _, k := range keyed {
		i, ok := index[strings.Join(k.Keys, groupKeySeparator)]
		if !ok {
			log.Warn().Str("func", "runGroupedQuery").Strs("keys", k.Keys).Msg("item outside of requested groups")
			continue
		}
		groups[i].Items = append(groups[i].Items, k.Item)
	}

	items := make([]T, 0, len(keyed))
	for _, g := range groups {
		items = append(items, g.Items...)
	}

	return models.PagedResult[T]{
		Data:              items,
		Count:             len(items),
		TotalItems:        len(items),
		TotalItemsOverall: overall,
		IsGrouped:         true,
		Groups:            groups,
		CurrentPage:       page.Page,
		PageSize:          page.PageSize,
		TotalPages:        models.TotalPages(len(summaries), page.PageSize),
		TotalGroups:       len(summaries),
	}, nil
}

// summarize returns the aggregate-only view of filter: one row per group
// with its item count and latest modification.
func summarize[T, F any](ctx context.Context, repo store.GridRepository[T, F], filter F, groups []models.GroupDescriptor, fields models.FieldSet) ([]models.GroupSummary, error) {
	normalized, problems := normalizeGroups(groups, fields)
	if len(normalized) == 0 && len(problems) == 0 {
		problems = append(problems, "at least one group property is required")
	}
	if len(problems) > 0 {
		return nil, newValidationError(problems...)
	}

	summaries, err := repo.GroupSummaries(ctx, filter, normalized)
	if err != nil {
		return nil, fmt.Errorf("error loading group summaries: %w", err)
	}
	return summaries, nil
}
