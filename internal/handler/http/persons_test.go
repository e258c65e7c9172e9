// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyan/clinic-manager/internal/service"
	"github.com/valyan/clinic-manager/models"
)

const personID = "0190f5d2-7000-7000-8000-0000000000b1"

func TestListPersons_Filters(t *testing.T) {
	svcs := newTestServices()
	svcs.PersonService = &mockPersonService{
		queryFn: func(_ context.Context, f models.PersonFilter, q models.SearchQuery) (models.PagedResult[models.Person], error) {
			assert.Equal(t, models.PersonFilter{Search: "ion", County: "Cluj", Locality: "Dej", Sex: "M"}, f)
			assert.Equal(t, 20, q.Skip)
			assert.Equal(t, 10, q.Take)
			return models.PagedResult[models.Person]{Data: []models.Person{}}, nil
		},
	}

	rr := serve(t, newRouterHandler(t, svcs), http.MethodGet,
		"/api/persoane?search=ion&judet=Cluj&localitate=Dej&sex=M&skip=20&take=10", "", testToken)

	assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
}

func TestCreatePerson(t *testing.T) {
	svcs := newTestServices()
	svcs.PersonService = &mockPersonService{
		createFn: func(_ context.Context, p models.Principal, person models.Person) (models.Person, error) {
			assert.Equal(t, testUserID, p.UserID)
			assert.Equal(t, "1800101221144", person.CNP)
			person.ID = personID
			return person, nil
		},
	}

	rr := serve(t, newRouterHandler(t, svcs), http.MethodPost, "/api/persoane",
		`{"nume":"Popescu","prenume":"Ion","cnp":"1800101221144","sex":"M"}`, testToken)

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var person models.Person
	decodeData(t, rr, &person)
	assert.Equal(t, personID, person.ID)
	assert.Equal(t, "Popescu Ion", person.FullName())
}

func TestCreatePerson_DuplicateCNP(t *testing.T) {
	svcs := newTestServices()
	svcs.PersonService = &mockPersonService{
		createFn: func(context.Context, models.Principal, models.Person) (models.Person, error) {
			return models.Person{}, fmt.Errorf("cnp already registered: %w", service.ErrDuplicate)
		},
	}

	rr := serve(t, newRouterHandler(t, svcs), http.MethodPost, "/api/persoane",
		`{"nume":"Popescu","prenume":"Ion","cnp":"1800101221144"}`, testToken)

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestPersonByID(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		body       string
		err        error
		wantStatus int
	}{
		{name: "get", method: http.MethodGet, wantStatus: http.StatusOK},
		{name: "get missing", method: http.MethodGet, err: service.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "update", method: http.MethodPut, body: `{"nume":"Ionescu","prenume":"Ana"}`, wantStatus: http.StatusOK},
		{name: "update missing", method: http.MethodPut, body: `{"nume":"Ionescu","prenume":"Ana"}`, err: service.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "update bad JSON", method: http.MethodPut, body: `[`, wantStatus: http.StatusBadRequest},
		{name: "delete", method: http.MethodDelete, wantStatus: http.StatusOK},
		{name: "delete missing", method: http.MethodDelete, err: service.ErrNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := newTestServices()
			svcs.PersonService = &mockPersonService{
				getFn: func(_ context.Context, id string) (models.Person, error) {
					return models.Person{ID: id}, tt.err
				},
				updateFn: func(_ context.Context, _ models.Principal, id string, p models.Person) (models.Person, error) {
					p.ID = id
					return p, tt.err
				},
				deleteFn: func(context.Context, models.Principal, string) error {
					return tt.err
				},
			}

			rr := serve(t, newRouterHandler(t, svcs), tt.method, "/api/persoane/"+personID, tt.body, testToken)

			assert.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
		})
	}
}
