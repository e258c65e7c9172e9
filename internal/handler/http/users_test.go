// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyan/clinic-manager/internal/service"
	"github.com/valyan/clinic-manager/models"
)

const userID = "0190f5d2-7000-7000-8000-00000000000a"

func TestListUsers_ParsesQuery(t *testing.T) {
	svcs := newTestServices()
	svcs.UserService = &mockUserService{
		queryFn: func(_ context.Context, f models.UserFilter, q models.SearchQuery) (models.PagedResult[models.User], error) {
			assert.Equal(t, "popescu", f.Search)
			assert.Equal(t, models.RoleDoctor, f.Role)
			require.NotNil(t, f.IsActive)
			assert.True(t, *f.IsActive)

			assert.Equal(t, 3, q.Page)
			assert.Equal(t, 10, q.PageSize)
			require.NotNil(t, q.Sort)
			assert.Equal(t, models.SortDescriptor{Property: "numeUtilizator", SortOrder: models.SortDesc}, *q.Sort)
			assert.Equal(t, []models.GroupDescriptor{
				{Property: "rol", SortOrder: models.SortAsc},
				{Property: "esteActiv", SortOrder: models.SortAsc},
			}, q.Groups)

			return models.PagedResult[models.User]{
				Data:              []models.User{{ID: userID, Username: "ipopescu"}},
				Count:             1,
				TotalItems:        1,
				TotalItemsOverall: 21,
				CurrentPage:       3,
				PageSize:          10,
				TotalPages:        3,
			}, nil
		},
	}

	rr := serve(t, newRouterHandler(t, svcs), http.MethodGet,
		"/api/utilizatori?search=popescu&rol=Medic&esteActiv=true&page=3&pageSize=10&sort=numeUtilizator&sortOrder=desc&groupBy=rol,esteActiv",
		"", testToken)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var result models.PagedResult[models.User]
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, 21, result.TotalItemsOverall)
	assert.Equal(t, 3, result.TotalPages)
	assert.NotContains(t, rr.Body.String(), "passwordHash")
}

func TestListUsers_BadParameters(t *testing.T) {
	for _, target := range []string{
		"/api/utilizatori?page=two",
		"/api/utilizatori?esteActiv=maybe",
	} {
		t.Run(target, func(t *testing.T) {
			rr := serve(t, newRouterHandler(t, newTestServices()), http.MethodGet, target, "", testToken)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestListUsers_UnknownSortIsBadRequest(t *testing.T) {
	svcs := newTestServices()
	svcs.UserService = &mockUserService{
		queryFn: func(context.Context, models.UserFilter, models.SearchQuery) (models.PagedResult[models.User], error) {
			return models.PagedResult[models.User]{}, &service.ValidationError{Messages: []string{`cannot sort by "parola_hash"`}}
		},
	}

	rr := serve(t, newRouterHandler(t, svcs), http.MethodGet, "/api/utilizatori?sort=parola_hash", "", testToken)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, []string{`cannot sort by "parola_hash"`}, decodeErrors(t, rr))
}

func TestCreateUser(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "created", wantStatus: http.StatusCreated},
		{name: "duplicate", err: fmt.Errorf("numeUtilizator already in use: %w", service.ErrDuplicate), wantStatus: http.StatusConflict},
		{name: "invalid", err: &service.ValidationError{Messages: []string{"parola must have at least 6 characters"}}, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := newTestServices()
			svcs.UserService = &mockUserService{
				createFn: func(_ context.Context, p models.Principal, req models.CreateUserRequest) (models.User, error) {
					assert.Equal(t, testUserID, p.UserID)
					assert.Equal(t, "ipopescu", req.Username)
					if tt.err != nil {
						return models.User{}, tt.err
					}
					return models.User{ID: userID, Username: req.Username, PasswordHash: "$2a$12$secret"}, nil
				},
			}

			rr := serve(t, newRouterHandler(t, svcs), http.MethodPost, "/api/utilizatori",
				`{"persoanaId":"p","numeUtilizator":"ipopescu","email":"i@clinic.ro","parola":"Secret1","rol":"Medic"}`, testToken)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.NotContains(t, rr.Body.String(), "$2a$")
			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, "/api/utilizatori/"+userID, rr.Header().Get("Location"))
				var user models.User
				decodeData(t, rr, &user)
				assert.Equal(t, userID, user.ID)
			}
		})
	}
}

func TestGetUser_NotFound(t *testing.T) {
	svcs := newTestServices()
	svcs.UserService = &mockUserService{
		getFn: func(_ context.Context, id string) (models.User, error) {
			assert.Equal(t, userID, id)
			return models.User{}, fmt.Errorf("user: %w", service.ErrNotFound)
		},
	}

	rr := serve(t, newRouterHandler(t, svcs), http.MethodGet, "/api/utilizatori/"+userID, "", testToken)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, []string{"user: record not found"}, decodeErrors(t, rr))
}

func TestUpdateUser(t *testing.T) {
	svcs := newTestServices()
	svcs.UserService = &mockUserService{
		updateFn: func(_ context.Context, p models.Principal, id string, req models.UpdateUserRequest) (models.User, error) {
			assert.Equal(t, "admin", p.Username)
			assert.Equal(t, userID, id)
			require.NotNil(t, req.IsActive)
			assert.False(t, *req.IsActive)
			return models.User{ID: id, Email: req.Email, Role: req.Role}, nil
		},
	}

	rr := serve(t, newRouterHandler(t, svcs), http.MethodPut, "/api/utilizatori/"+userID,
		`{"email":"new@clinic.ro","rol":"Manager","esteActiv":false}`, testToken)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var user models.User
	decodeData(t, rr, &user)
	assert.Equal(t, "new@clinic.ro", user.Email)
}

func TestDeleteUser(t *testing.T) {
	svcs := newTestServices()
	var deleted string
	svcs.UserService = &mockUserService{
		deleteFn: func(_ context.Context, _ models.Principal, id string) error {
			deleted = id
			return nil
		},
	}

	rr := serve(t, newRouterHandler(t, svcs), http.MethodDelete, "/api/utilizatori/"+userID, "", testToken)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, userID, deleted)
}

func TestUsers_RequireAuthentication(t *testing.T) {
	rr := serve(t, newRouterHandler(t, newTestServices()), http.MethodGet, "/api/utilizatori", "", "")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
