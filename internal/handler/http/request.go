// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/valyan/clinic-manager/internal/utils"
	"github.com/valyan/clinic-manager/models"
)

// decodeBody decodes the JSON body into dst, classifying failures as
// ErrInvalidJSON or utils.ErrEmptyBody.
func decodeBody(r *http.Request, dst any) error {
	err := utils.DecodeJSON(r, dst)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, utils.ErrEmptyBody):
		return err
	default:
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
}

// parseSearchQuery reads the paging, sort and group parameters of a list
// endpoint:
//
//	?page=2&pageSize=50&sort=nume&sortOrder=desc&groupBy=rol,esteActiv&groupOrder=desc
//
// skip/take are accepted as an alternative to page/pageSize. Property names
// are validated later by the service.
func parseSearchQuery(values url.Values) (models.SearchQuery, error) {
	var (
		q   models.SearchQuery
		err error
	)

	for _, p := range []struct {
		name string
		dst  *int
	}{
		{"page", &q.Page},
		{"pageSize", &q.PageSize},
		{"skip", &q.Skip},
		{"take", &q.Take},
	} {
		if *p.dst, err = intParam(values, p.name); err != nil {
			return models.SearchQuery{}, err
		}
	}

	if sort := strings.TrimSpace(values.Get("sort")); sort != "" {
		q.Sort = &models.SortDescriptor{
			Property:  sort,
			SortOrder: models.SortOrder(values.Get("sortOrder")).Normalize(),
		}
	}

	groupOrder := models.SortOrder(values.Get("groupOrder")).Normalize()
	for property := range strings.SplitSeq(values.Get("groupBy"), ",") {
		if property = strings.TrimSpace(property); property != "" {
			q.Groups = append(q.Groups, models.GroupDescriptor{Property: property, SortOrder: groupOrder})
		}
	}

	return q, nil
}

func intParam(values url.Values, name string) (int, error) {
	raw := strings.TrimSpace(values.Get(name))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", ErrInvalidQueryParameter, name)
	}
	return v, nil
}

// boolParam returns nil when the parameter is absent.
func boolParam(values url.Values, name string) (*bool, error) {
	raw := strings.TrimSpace(values.Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be true or false", ErrInvalidQueryParameter, name)
	}
	return &v, nil
}

func idParam(r *http.Request) string {
	return strings.TrimSpace(chi.URLParam(r, "id"))
}
