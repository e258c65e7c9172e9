// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/valyan/clinic-manager/internal/config"
	"github.com/valyan/clinic-manager/internal/logger"
	"github.com/valyan/clinic-manager/internal/utils"
	"github.com/valyan/clinic-manager/models"
)

type httpAPIClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAPIClient builds an [APIClient] for the server at cfg.Address. A bare
// host:port is treated as http.
func NewHTTPAPIClient(cfg config.ClientConfig, logger *logger.Logger) (APIClient, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	return &httpAPIClient{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAPIClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAPIClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpAPIClient) authedRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetAuthToken(h.Token())
}

func (h *httpAPIClient) Login(ctx context.Context, identifier, password string) (models.LoginResult, error) {
	var result models.Response[models.LoginResult]

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.LoginRequest{Identifier: identifier, Password: password}).
		SetResult(&result).
		Post("/api/auth/login")
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResult{}, err
	}

	h.SetToken(result.Data.Token)
	h.logger.Debug().Str("user_id", result.Data.ID).Msg("logged in")

	return result.Data, nil
}

func (h *httpAPIClient) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpAPIClient) ValidateToken(ctx context.Context, token string) (bool, error) {
	var result models.TokenValidationResult

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "text/plain").
		SetBody(strings.TrimSpace(token)).
		SetResult(&result).
		Post("/api/auth/validate-token")
	if err != nil {
		return false, fmt.Errorf("validate token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	return result.IsValid, nil
}

func (h *httpAPIClient) ListUsers(ctx context.Context, filter models.UserFilter, query models.SearchQuery) (models.PagedResult[models.User], error) {
	var result models.PagedResult[models.User]

	params := searchQueryParams(query)
	if filter.Search != "" {
		params.Set("search", filter.Search)
	}
	if filter.Role != "" {
		params.Set("rol", filter.Role)
	}
	if filter.IsActive != nil {
		params.Set("esteActiv", strconv.FormatBool(*filter.IsActive))
	}

	resp, err := h.authedRequest(ctx).
		SetQueryParamsFromValues(params).
		SetResult(&result).
		Get("/api/utilizatori")
	if err != nil {
		return result, fmt.Errorf("list users request: %w", err)
	}

	return result, mapHTTPError(resp)
}

func (h *httpAPIClient) QueryMedicalStaff(ctx context.Context, req models.MedicalStaffGridRequest) (models.PagedResult[models.MedicalStaff], error) {
	var result models.PagedResult[models.MedicalStaff]

	resp, err := h.authedRequest(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/api/personal-medical/grid")
	if err != nil {
		return result, fmt.Errorf("medical staff grid request: %w", err)
	}

	return result, mapHTTPError(resp)
}

func (h *httpAPIClient) Version(ctx context.Context) (models.VersionInfo, error) {
	var info models.VersionInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/api/version")
	if err != nil {
		return info, fmt.Errorf("version request: %w", err)
	}

	return info, mapHTTPError(resp)
}

// searchQueryParams renders the paging, sort and group part of a list
// request as query parameters.
func searchQueryParams(q models.SearchQuery) url.Values {
	params := url.Values{}

	setInt := func(name string, v int) {
		if v > 0 {
			params.Set(name, strconv.Itoa(v))
		}
	}
	setInt("page", q.Page)
	setInt("pageSize", q.PageSize)
	setInt("skip", q.Skip)
	setInt("take", q.Take)

	if q.Sort != nil && q.Sort.Property != "" {
		params.Set("sort", q.Sort.Property)
		params.Set("sortOrder", string(q.Sort.SortOrder.Normalize()))
	}

	if len(q.Groups) > 0 {
		names := make([]string, 0, len(q.Groups))
		for _, g := range q.Groups {
			names = append(names, g.Property)
		}
		params.Set("groupBy", strings.Join(names, ","))
		params.Set("groupOrder", string(q.Groups[0].SortOrder.Normalize()))
	}

	return params
}
