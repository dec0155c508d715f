// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/models"
	"github.com/go-resty/resty/v2"
)

const apiKeyHeader = "X-API-KEY"

const defaultRequestTimeout = 15 * time.Second

// HTTPClientConfig holds the settings for the REST implementation of
// [ServerAdapter].
type HTTPClientConfig struct {
	BaseURL        string
	APIKey         string
	RequestTimeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL and attaches the
// API key header to every outgoing request.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPServerAdapter(cfg HTTPClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader(apiKeyHeader, cfg.APIKey)

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

// Greeting implements [ServerAdapter]. It GETs / and returns the plain-text
// greeting body.
func (h *httpServerAdapter) Greeting(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/")
	if err != nil {
		return "", fmt.Errorf("greeting request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return string(resp.Body()), nil
}

// Version implements [ServerAdapter]. It GETs /version and returns the
// plain-text version string.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return string(resp.Body()), nil
}

// ListUsers implements [ServerAdapter]. It GETs /users and decodes the JSON
// array of users.
func (h *httpServerAdapter) ListUsers(ctx context.Context) ([]models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var users []models.User
	if err = json.Unmarshal(resp.Body(), &users); err != nil {
		return nil, fmt.Errorf("list users decode: %w", err)
	}

	return users, nil
}

// GetUser implements [ServerAdapter]. It GETs /users/{id} and decodes the
// returned user. A missing id maps to ErrNotFound.
func (h *httpServerAdapter) GetUser(ctx context.Context, id int64) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/users/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("get user decode: %w", err)
	}

	return user, nil
}

// CreateUser implements [ServerAdapter]. It POSTs the user to /users and
// returns the stored record with its server-assigned id. Validation failures
// map to ErrBadRequest with the reported messages in the error text.
func (h *httpServerAdapter) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/users")
	if err != nil {
		return models.User{}, fmt.Errorf("create user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var created models.User
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.User{}, fmt.Errorf("create user decode: %w", err)
	}

	return created, nil
}

// UpdateUser implements [ServerAdapter]. It PUTs the user to /users/{id} and
// returns the updated record.
func (h *httpServerAdapter) UpdateUser(ctx context.Context, id int64, user models.User) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Put("/users/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.User{}, fmt.Errorf("update user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var updated models.User
	if err = json.Unmarshal(resp.Body(), &updated); err != nil {
		return models.User{}, fmt.Errorf("update user decode: %w", err)
	}

	return updated, nil
}

// DeleteUser implements [ServerAdapter]. It DELETEs /users/{id}; a missing id
// maps to ErrNotFound.
func (h *httpServerAdapter) DeleteUser(ctx context.Context, id int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete("/users/" + strconv.FormatInt(id, 10))
	if err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}

	return mapHTTPError(resp)
}
