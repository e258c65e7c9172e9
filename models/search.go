// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// SortOrder is the direction of a sort or group descriptor.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// IsDesc reports whether the order is descending. Anything other than
// "desc"/"descending" (case-insensitive) sorts ascending.
func (o SortOrder) IsDesc() bool {
	v := strings.ToLower(strings.TrimSpace(string(o)))
	return v == "desc" || v == "descending"
}

// Normalize returns SortAsc or SortDesc.
func (o SortOrder) Normalize() SortOrder {
	if o.IsDesc() {
		return SortDesc
	}
	return SortAsc
}

// SortDescriptor selects a single sort property.
type SortDescriptor struct {
	Property  string    `json:"property"`
	SortOrder SortOrder `json:"sortOrder"`
}

// GroupDescriptor selects a group-by property and the order of the group keys.
type GroupDescriptor struct {
	Property  string    `json:"property"`
	SortOrder SortOrder `json:"sortOrder"`
}

// SearchQuery carries the paging, sorting and grouping part of a grid request.
// Either Page/PageSize or Skip/Take may be used; Page/PageSize win when both
// are present.
type SearchQuery struct {
	Page     int `json:"page,omitempty"`
	PageSize int `json:"pageSize,omitempty"`
	Skip     int `json:"skip,omitempty"`
	Take     int `json:"take,omitempty"`

	Sort   *SortDescriptor   `json:"sort,omitempty"`
	Groups []GroupDescriptor `json:"groups,omitempty"`
}

// PageRequest is a normalized SearchQuery: Page >= 1, PageSize within the
// endpoint limits, and Sort/Groups holding only whitelisted property names.
type PageRequest struct {
	Page     int
	PageSize int
	Sort     *SortDescriptor
	Groups   []GroupDescriptor
}

// Offset returns the number of rows (or groups) to skip.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// IsGrouped reports whether at least one group descriptor is present.
func (p PageRequest) IsGrouped() bool {
	return len(p.Groups) > 0
}

// QueryLimits bounds the page size accepted by one endpoint.
type QueryLimits struct {
	DefaultPageSize int
	MaxPageSize     int
}

// FieldSet is a whitelist of external property names.
type FieldSet []string

// Lookup returns the canonical spelling of name when it belongs to the set.
// Matching ignores case and surrounding whitespace.
func (f FieldSet) Lookup(name string) (string, bool) {
	name = strings.TrimSpace(name)
	for _, field := range f {
		if strings.EqualFold(field, name) {
			return field, true
		}
	}
	return "", false
}

// PagedResult is the response envelope of a grid query.
//
// Count is the number of items in Data. TotalItems is the number of items
// in the returned page (equal to Count) and TotalItemsOverall the number of
// items matching the filters regardless of paging. When IsGrouped is set,
// CurrentPage and TotalPages refer to pages of groups.
type PagedResult[T any] struct {
	Data              []T        `json:"data"`
	Count             int        `json:"count"`
	TotalItems        int        `json:"totalItems"`
	TotalItemsOverall int        `json:"totalItemsOverall"`
	IsGrouped         bool       `json:"isGrouped"`
	Groups            []Group[T] `json:"groups,omitempty"`
	CurrentPage       int        `json:"currentPage"`
	PageSize          int        `json:"pageSize"`
	TotalPages        int        `json:"totalPages"`
	TotalGroups       int        `json:"totalGroups"`
}

// Group is one bucket of a grouped result.
type Group[T any] struct {
	Key   string   `json:"key"`
	Keys  []string `json:"keys"`
	Count int      `json:"count"`
	Items []T      `json:"items"`
}

// GroupSummary is one row of an aggregate-only query.
type GroupSummary struct {
	Key            string     `json:"key"`
	Keys           []string   `json:"keys"`
	Count          int        `json:"count"`
	LastModifiedAt *time.Time `json:"lastModifiedUtc,omitempty"`
}

// Keyed pairs an item with the values of the group properties it belongs to.
type Keyed[T any] struct {
	Keys []string
	Item T
}

// GroupKey renders the display key of a (possibly composite) group.
func GroupKey(keys []string) string {
	return strings.Join(keys, " / ")
}

// TotalPages returns ceil(total / pageSize), or 0 when pageSize is not positive.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
