// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"costmanager/internal/logger"
	"costmanager/models"

	"github.com/go-resty/resty/v2"
)

// Config holds the settings of the REST client.
type Config struct {
	// BaseURL is the address of the cost manager server, with or without a
	// scheme (e.g. "localhost:8080" or "http://localhost:8080").
	BaseURL string

	// RequestTimeout bounds each request. Zero applies a 15 second default.
	RequestTimeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs a REST implementation of [ServerAdapter].
// It normalises and validates the base URL and configures the underlying
// client with the resolved base URL and request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPServerAdapter(cfg Config, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 15 * time.Second
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
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

func (h *httpServerAdapter) AddUser(ctx context.Context, user models.User) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/users")
	if err != nil {
		return models.User{}, fmt.Errorf("add user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var created models.User
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.User{}, fmt.Errorf("add user decode response: %w", err)
	}
	return created, nil
}

func (h *httpServerAdapter) GetUser(ctx context.Context, id int64) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/users/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("get user decode response: %w", err)
	}
	return user, nil
}

func (h *httpServerAdapter) ListUsers(ctx context.Context) ([]models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var users []models.User
	if err = json.Unmarshal(resp.Body(), &users); err != nil {
		return nil, fmt.Errorf("list users decode response: %w", err)
	}
	return users, nil
}

func (h *httpServerAdapter) AddCost(ctx context.Context, cost models.Cost) (models.Cost, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(cost).
		Post("/api/costs")
	if err != nil {
		return models.Cost{}, fmt.Errorf("add cost request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Cost{}, err
	}

	var created models.Cost
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.Cost{}, fmt.Errorf("add cost decode response: %w", err)
	}
	return created, nil
}

func (h *httpServerAdapter) GetReport(ctx context.Context, userID int64, year, month int) (models.Report, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"userId": strconv.FormatInt(userID, 10),
			"year":   strconv.Itoa(year),
			"month":  strconv.Itoa(month),
		}).
		Get("/api/report")
	if err != nil {
		return models.Report{}, fmt.Errorf("get report request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Report{}, err
	}

	var report models.Report
	if err = json.Unmarshal(resp.Body(), &report); err != nil {
		return models.Report{}, fmt.Errorf("get report decode response: %w", err)
	}
	return report, nil
}

func (h *httpServerAdapter) Logs(ctx context.Context, filter models.LogFilter) ([]models.LogRecord, error) {
	req := h.client.R().SetContext(ctx)
	if filter.Method != "" {
		req.SetQueryParam("method", filter.Method)
	}
	if filter.Status > 0 {
		req.SetQueryParam("status", strconv.Itoa(filter.Status))
	}
	if filter.Limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(filter.Limit))
	}

	resp, err := req.Get("/api/logs")
	if err != nil {
		return nil, fmt.Errorf("logs request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var records []models.LogRecord
	if err = json.Unmarshal(resp.Body(), &records); err != nil {
		return nil, fmt.Errorf("logs decode response: %w", err)
	}
	return records, nil
}

func (h *httpServerAdapter) About(ctx context.Context) (models.AboutResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/about")
	if err != nil {
		return models.AboutResponse{}, fmt.Errorf("about request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AboutResponse{}, err
	}

	var about models.AboutResponse
	if err = json.Unmarshal(resp.Body(), &about); err != nil {
		return models.AboutResponse{}, fmt.Errorf("about decode response: %w", err)
	}
	return about, nil
}
