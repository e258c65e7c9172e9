// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/valyan/clinic-manager/internal/config"
	"github.com/valyan/clinic-manager/internal/logger"
	"github.com/valyan/clinic-manager/internal/service"
	"github.com/valyan/clinic-manager/models"
)

// Hand-written service mocks. Each method delegates to a func field that a
// test overrides; unset fields panic, which surfaces unexpected calls.

type mockAuthService struct {
	loginFn         func(ctx context.Context, req models.LoginRequest) (models.LoginResult, error)
	logoutFn        func(ctx context.Context, token string) error
	validateTokenFn func(ctx context.Context, token string) (bool, error)
	parseTokenFn    func(ctx context.Context, token string) (models.Claims, error)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) Logout(ctx context.Context, token string) error {
	return m.logoutFn(ctx, token)
}

func (m *mockAuthService) ValidateToken(ctx context.Context, token string) (bool, error) {
	return m.validateTokenFn(ctx, token)
}

func (m *mockAuthService) ParseToken(ctx context.Context, token string) (models.Claims, error) {
	return m.parseTokenFn(ctx, token)
}

type mockUserService struct {
	createFn func(ctx context.Context, p models.Principal, req models.CreateUserRequest) (models.User, error)
	getFn    func(ctx context.Context, id string) (models.User, error)
	updateFn func(ctx context.Context, p models.Principal, id string, req models.UpdateUserRequest) (models.User, error)
	deleteFn func(ctx context.Context, p models.Principal, id string) error
	queryFn  func(ctx context.Context, f models.UserFilter, q models.SearchQuery) (models.PagedResult[models.User], error)
}

func (m *mockUserService) Create(ctx context.Context, p models.Principal, req models.CreateUserRequest) (models.User, error) {
	return m.createFn(ctx, p, req)
}

func (m *mockUserService) Get(ctx context.Context, id string) (models.User, error) {
	return m.getFn(ctx, id)
}

func (m *mockUserService) Update(ctx context.Context, p models.Principal, id string, req models.UpdateUserRequest) (models.User, error) {
	return m.updateFn(ctx, p, id, req)
}

func (m *mockUserService) Delete(ctx context.Context, p models.Principal, id string) error {
	return m.deleteFn(ctx, p, id)
}

func (m *mockUserService) Query(ctx context.Context, f models.UserFilter, q models.SearchQuery) (models.PagedResult[models.User], error) {
	return m.queryFn(ctx, f, q)
}

type mockPersonService struct {
	createFn func(ctx context.Context, p models.Principal, person models.Person) (models.Person, error)
	getFn    func(ctx context.Context, id string) (models.Person, error)
	updateFn func(ctx context.Context, p models.Principal, id string, person models.Person) (models.Person, error)
	deleteFn func(ctx context.Context, p models.Principal, id string) error
	queryFn  func(ctx context.Context, f models.PersonFilter, q models.SearchQuery) (models.PagedResult[models.Person], error)
}

func (m *mockPersonService) Create(ctx context.Context, p models.Principal, person models.Person) (models.Person, error) {
	return m.createFn(ctx, p, person)
}

func (m *mockPersonService) Get(ctx context.Context, id string) (models.Person, error) {
	return m.getFn(ctx, id)
}

func (m *mockPersonService) Update(ctx context.Context, p models.Principal, id string, person models.Person) (models.Person, error) {
	return m.updateFn(ctx, p, id, person)
}

func (m *mockPersonService) Delete(ctx context.Context, p models.Principal, id string) error {
	return m.deleteFn(ctx, p, id)
}

func (m *mockPersonService) Query(ctx context.Context, f models.PersonFilter, q models.SearchQuery) (models.PagedResult[models.Person], error) {
	return m.queryFn(ctx, f, q)
}

type mockLocationService struct {
	countiesFn               func(ctx context.Context) ([]models.County, error)
	localitiesFn             func(ctx context.Context) ([]models.Locality, error)
	localitiesByCountyNameFn func(ctx context.Context, name string) ([]models.Locality, error)
	localitiesByCountyIDFn   func(ctx context.Context, id int64) ([]models.Locality, error)
	countiesWithLocalitiesFn func(ctx context.Context) ([]models.CountyWithLocalities, error)
}

func (m *mockLocationService) Counties(ctx context.Context) ([]models.County, error) {
	return m.countiesFn(ctx)
}

func (m *mockLocationService) Localities(ctx context.Context) ([]models.Locality, error) {
	return m.localitiesFn(ctx)
}

func (m *mockLocationService) LocalitiesByCountyName(ctx context.Context, name string) ([]models.Locality, error) {
	return m.localitiesByCountyNameFn(ctx, name)
}

func (m *mockLocationService) LocalitiesByCountyID(ctx context.Context, id int64) ([]models.Locality, error) {
	return m.localitiesByCountyIDFn(ctx, id)
}

func (m *mockLocationService) CountiesWithLocalities(ctx context.Context) ([]models.CountyWithLocalities, error) {
	return m.countiesWithLocalitiesFn(ctx)
}

type mockMedicalStaffService struct {
	createFn  func(ctx context.Context, p models.Principal, s models.MedicalStaff) (models.MedicalStaff, error)
	getFn     func(ctx context.Context, id string) (models.MedicalStaff, error)
	updateFn  func(ctx context.Context, p models.Principal, id string, s models.MedicalStaff) (models.MedicalStaff, error)
	deleteFn  func(ctx context.Context, p models.Principal, id string) error
	queryFn   func(ctx context.Context, f models.MedicalStaffFilter, q models.SearchQuery) (models.PagedResult[models.MedicalStaff], error)
	lookupFn  func(ctx context.Context, f models.MedicalStaffFilter, q models.SearchQuery) (models.PagedResult[models.MedicalStaff], error)
	summaryFn func(ctx context.Context, f models.MedicalStaffFilter, g []models.GroupDescriptor) ([]models.GroupSummary, error)
}

func (m *mockMedicalStaffService) Create(ctx context.Context, p models.Principal, s models.MedicalStaff) (models.MedicalStaff, error) {
	return m.createFn(ctx, p, s)
}

func (m *mockMedicalStaffService) Get(ctx context.Context, id string) (models.MedicalStaff, error) {
	return m.getFn(ctx, id)
}

func (m *mockMedicalStaffService) Update(ctx context.Context, p models.Principal, id string, s models.MedicalStaff) (models.MedicalStaff, error) {
	return m.updateFn(ctx, p, id, s)
}

func (m *mockMedicalStaffService) Delete(ctx context.Context, p models.Principal, id string) error {
	return m.deleteFn(ctx, p, id)
}

func (m *mockMedicalStaffService) Query(ctx context.Context, f models.MedicalStaffFilter, q models.SearchQuery) (models.PagedResult[models.MedicalStaff], error) {
	return m.queryFn(ctx, f, q)
}

func (m *mockMedicalStaffService) Lookup(ctx context.Context, f models.MedicalStaffFilter, q models.SearchQuery) (models.PagedResult[models.MedicalStaff], error) {
	return m.lookupFn(ctx, f, q)
}

func (m *mockMedicalStaffService) Summary(ctx context.Context, f models.MedicalStaffFilter, g []models.GroupDescriptor) ([]models.GroupSummary, error) {
	return m.summaryFn(ctx, f, g)
}

type mockAppInfoService struct {
	info models.VersionInfo
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.info.Version
}

func (m *mockAppInfoService) GetVersionInfo(_ context.Context) models.VersionInfo {
	return m.info
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	testToken  = "header.payload.signature"
	testUserID = "0190f5d2-6c3e-7b1a-9f4e-1c2d3e4f5a6b"
)

// acceptingAuth returns an AuthService whose ParseToken accepts testToken.
func acceptingAuth() *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, token string) (models.Claims, error) {
			if token != testToken {
				return models.Claims{}, service.ErrUnauthorized
			}
			c := models.Claims{Username: "admin"}
			c.Subject = testUserID
			return c, nil
		},
	}
}

func newTestServices() *service.Services {
	return &service.Services{
		AuthService:         acceptingAuth(),
		UserService:         &mockUserService{},
		PersonService:       &mockPersonService{},
		LocationService:     &mockLocationService{},
		MedicalStaffService: &mockMedicalStaffService{},
		AppInfoService:      &mockAppInfoService{info: models.VersionInfo{Version: "test-version"}},
	}
}

// newRouterHandler builds a Handler over svcs with a zero server config.
func newRouterHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	return NewHandler(svcs, config.Server{}, logger.Nop())
}

// serve sends a request through the full router. A non-empty token is sent
// as a bearer credential.
func serve(t *testing.T, h *Handler, method, target, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func decodeErrors(t *testing.T, rr *httptest.ResponseRecorder) []string {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), rr.Body.String())
	return body.Errors
}

// decodeData unmarshals the "data" member of the success envelope into dst.
func decodeData(t *testing.T, rr *httptest.ResponseRecorder, dst any) string {
	t.Helper()
	var envelope struct {
		Data    json.RawMessage `json:"data"`
		Message string          `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope), rr.Body.String())
	require.NoError(t, json.Unmarshal(envelope.Data, dst))
	return envelope.Message
}
