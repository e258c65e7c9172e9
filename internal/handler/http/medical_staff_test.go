// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyan/clinic-manager/internal/service"
	"github.com/valyan/clinic-manager/models"
)

const staffID = "0190f5d2-7000-7000-8000-0000000000c1"

func TestMedicalStaffGrid_DecodesRequest(t *testing.T) {
	svcs := newTestServices()
	svcs.MedicalStaffService = &mockMedicalStaffService{
		queryFn: func(_ context.Context, f models.MedicalStaffFilter, q models.SearchQuery) (models.PagedResult[models.MedicalStaff], error) {
			assert.Equal(t, "cardio", f.Search)
			assert.Equal(t, "Cardiologie", f.Department)
			assert.Equal(t, "Medic primar", f.Position)
			require.NotNil(t, f.IsActive)
			assert.True(t, *f.IsActive)
			assert.Equal(t, "Pop", f.LastName)

			assert.Equal(t, 0, q.Skip)
			assert.Equal(t, 20, q.Take)
			require.NotNil(t, q.Sort)
			assert.Equal(t, "nume", q.Sort.Property)
			assert.Equal(t, []models.GroupDescriptor{{Property: "departament", SortOrder: "desc"}}, q.Groups)

			return models.PagedResult[models.MedicalStaff]{
				Data:              []models.MedicalStaff{},
				IsGrouped:         true,
				Groups:            []models.Group[models.MedicalStaff]{{Key: "Cardiologie", Keys: []string{"Cardiologie"}, Count: 2, Items: []models.MedicalStaff{{ID: staffID}, {ID: staffID}}}},
				Count:             2,
				TotalItems:        2,
				TotalItemsOverall: 2,
				CurrentPage:       1,
				PageSize:          20,
				TotalPages:        1,
				TotalGroups:       1,
			}, nil
		},
	}

	body := `{
		"search": "cardio",
		"departament": "Cardiologie",
		"pozitie": "Medic primar",
		"esteActiv": true,
		"nume": "Pop",
		"skip": 0,
		"take": 20,
		"sort": {"property": "nume", "sortOrder": "asc"},
		"groups": [{"property": "departament", "sortOrder": "desc"}]
	}`
	rr := serve(t, newRouterHandler(t, svcs), http.MethodPost, "/api/personal-medical/grid", body, testToken)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var raw map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))
	for _, key := range []string{"data", "count", "totalItems", "totalItemsOverall", "isGrouped", "groups", "currentPage", "totalPages", "totalGroups"} {
		assert.Contains(t, raw, key)
	}
	assert.Equal(t, true, raw["isGrouped"])
}

func TestMedicalStaffGrid_UnknownGroupIsBadRequest(t *testing.T) {
	svcs := newTestServices()
	svcs.MedicalStaffService = &mockMedicalStaffService{
		queryFn: func(context.Context, models.MedicalStaffFilter, models.SearchQuery) (models.PagedResult[models.MedicalStaff], error) {
			return models.PagedResult[models.MedicalStaff]{}, &service.ValidationError{Messages: []string{`cannot group by "salariu"`}}
		},
	}

	rr := serve(t, newRouterHandler(t, svcs), http.MethodPost, "/api/personal-medical/grid",
		`{"groups":[{"property":"salariu"}]}`, testToken)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, []string{`cannot group by "salariu"`}, decodeErrors(t, rr))
}

func TestMedicalStaffSummary(t *testing.T) {
	modified := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	svcs := newTestServices()
	svcs.MedicalStaffService = &mockMedicalStaffService{
		summaryFn: func(_ context.Context, f models.MedicalStaffFilter, groups []models.GroupDescriptor) ([]models.GroupSummary, error) {
			assert.Equal(t, "Chirurgie", f.Department)
			assert.Equal(t, []models.GroupDescriptor{{Property: "pozitie"}}, groups)
			return []models.GroupSummary{{Key: "Rezident", Keys: []string{"Rezident"}, Count: 4, LastModifiedAt: &modified}}, nil
		},
	}

	rr := serve(t, newRouterHandler(t, svcs), http.MethodPost, "/api/personal-medical/summary",
		`{"departament":"Chirurgie","groups":[{"property":"pozitie"}]}`, testToken)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var rows []map[string]any
	decodeData(t, rr, &rows)
	require.Len(t, rows, 1)
	assert.Equal(t, "Rezident", rows[0]["key"])
	assert.EqualValues(t, 4, rows[0]["count"])
	assert.Equal(t, "2026-03-01T10:00:00Z", rows[0]["lastModifiedUtc"])
}

func TestMedicalStaffLookup_UsesBulkQuery(t *testing.T) {
	svcs := newTestServices()
	svcs.MedicalStaffService = &mockMedicalStaffService{
		lookupFn: func(_ context.Context, f models.MedicalStaffFilter, q models.SearchQuery) (models.PagedResult[models.MedicalStaff], error) {
			assert.Equal(t, "ATI", f.Department)
			assert.Equal(t, 2000, q.PageSize)
			return models.PagedResult[models.MedicalStaff]{Data: []models.MedicalStaff{}}, nil
		},
	}

	rr := serve(t, newRouterHandler(t, svcs), http.MethodGet,
		"/api/personal-medical/lookup?departament=ATI&pageSize=2000", "", testToken)

	assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
}

func TestListMedicalStaff_UsesGridQuery(t *testing.T) {
	svcs := newTestServices()
	svcs.MedicalStaffService = &mockMedicalStaffService{
		queryFn: func(_ context.Context, f models.MedicalStaffFilter, _ models.SearchQuery) (models.PagedResult[models.MedicalStaff], error) {
			assert.Equal(t, "L-123", f.LicenseNumber)
			return models.PagedResult[models.MedicalStaff]{Data: []models.MedicalStaff{}}, nil
		},
	}

	rr := serve(t, newRouterHandler(t, svcs), http.MethodGet, "/api/personal-medical?numarLicenta=L-123", "", testToken)

	assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
}

func TestMedicalStaffCRUD(t *testing.T) {
	svcs := newTestServices()
	svcs.MedicalStaffService = &mockMedicalStaffService{
		createFn: func(_ context.Context, _ models.Principal, s models.MedicalStaff) (models.MedicalStaff, error) {
			s.ID = staffID
			return s, nil
		},
		getFn: func(_ context.Context, id string) (models.MedicalStaff, error) {
			return models.MedicalStaff{ID: id, LastName: "Pop"}, nil
		},
		updateFn: func(_ context.Context, _ models.Principal, id string, s models.MedicalStaff) (models.MedicalStaff, error) {
			s.ID = id
			return s, nil
		},
		deleteFn: func(context.Context, models.Principal, string) error {
			return service.ErrNotFound
		},
	}
	h := newRouterHandler(t, svcs)

	rr := serve(t, h, http.MethodPost, "/api/personal-medical",
		`{"nume":"Pop","prenume":"Ana","departament":"ATI"}`, testToken)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.Equal(t, "/api/personal-medical/"+staffID, rr.Header().Get("Location"))

	rr = serve(t, h, http.MethodGet, "/api/personal-medical/"+staffID, "", testToken)
	require.Equal(t, http.StatusOK, rr.Code)
	var staff models.MedicalStaff
	decodeData(t, rr, &staff)
	assert.Equal(t, "Pop", staff.LastName)

	rr = serve(t, h, http.MethodPut, "/api/personal-medical/"+staffID, `{"nume":"Pop","prenume":"Ana","departament":"UPU"}`, testToken)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = serve(t, h, http.MethodDelete, "/api/personal-medical/"+staffID, "", testToken)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
