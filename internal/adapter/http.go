// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-ledger-keeper/internal/config"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

type httpBackendAdapter struct {
	client *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPBackendAdapter constructs an HTTP/REST implementation of
// [BackendAdapter]. It normalises and validates the base URL from
// adapterCfg.BaseURL and configures the underlying resty client with the
// resolved base URL, the request timeout, and a versioned User-Agent.
// The configured bearer token, if any, is installed via SetToken.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPBackendAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (BackendAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("User-Agent", "ledger-keeper/"+appCfg.Version)

	a := &httpBackendAdapter{client: cli, logger: logger}
	a.SetToken(adapterCfg.Token)

	return a, nil
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

// SetToken implements [IdentityProvider]. It stores token (whitespace-
// trimmed) for use in the Authorization header of all subsequent requests.
func (h *httpBackendAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [IdentityProvider].
func (h *httpBackendAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// CurrentUserID implements [IdentityProvider]. The user id is taken from the
// `sub` claim of the stored bearer token; the signature is not verified here,
// the backend rejects forged tokens with 401.
func (h *httpBackendAdapter) CurrentUserID() (int64, bool) {
	token := h.Token()
	if token == "" {
		return 0, false
	}

	userID, err := parseUserIDFromJWT(token)
	if err != nil {
		h.logger.Warn().Err(err).Str("func", "httpBackendAdapter.CurrentUserID").Msg("cannot resolve user id from token")
		return 0, false
	}

	return userID, true
}

// CreateCategory implements [CategoryAPI]. It POSTs the category to
// POST /api/categories with a fresh idempotency key and returns the
// server-assigned id from the decoded response.
func (h *httpBackendAdapter) CreateCategory(ctx context.Context, c models.RemoteCategory) (int64, error) {
	return h.create(ctx, "/api/categories", c)
}

// UpdateCategory implements [CategoryAPI].
func (h *httpBackendAdapter) UpdateCategory(ctx context.Context, serverID int64, c models.RemoteCategory) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(c).
		Put(fmt.Sprintf("/api/categories/%d", serverID))
	if err != nil {
		return fmt.Errorf("update category request: %w", err)
	}

	return mapHTTPError(resp)
}

// DeleteCategory implements [CategoryAPI]. Returns [ErrNotFound] on 404.
func (h *httpBackendAdapter) DeleteCategory(ctx context.Context, serverID int64) error {
	resp, err := h.authedRequest(ctx).
		Delete(fmt.Sprintf("/api/categories/%d", serverID))
	if err != nil {
		return fmt.Errorf("delete category request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListCategories implements [CategoryAPI]. It GETs the full collection from
// GET /api/categories; no cursor or delta is used.
func (h *httpBackendAdapter) ListCategories(ctx context.Context) ([]models.RemoteCategory, error) {
	resp, err := h.authedRequest(ctx).Get("/api/categories")
	if err != nil {
		return nil, fmt.Errorf("list categories request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.RemoteCategory
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode categories response: %w", err)
	}

	return items, nil
}

// CreateExpense implements [ExpenseAPI].
func (h *httpBackendAdapter) CreateExpense(ctx context.Context, e models.RemoteExpense) (int64, error) {
	return h.create(ctx, "/api/expenses", e)
}

// UpdateExpense implements [ExpenseAPI].
func (h *httpBackendAdapter) UpdateExpense(ctx context.Context, serverID int64, e models.RemoteExpense) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(e).
		Put(fmt.Sprintf("/api/expenses/%d", serverID))
	if err != nil {
		return fmt.Errorf("update expense request: %w", err)
	}

	return mapHTTPError(resp)
}

// DeleteExpense implements [ExpenseAPI]. Returns [ErrNotFound] on 404.
func (h *httpBackendAdapter) DeleteExpense(ctx context.Context, serverID int64) error {
	resp, err := h.authedRequest(ctx).
		Delete(fmt.Sprintf("/api/expenses/%d", serverID))
	if err != nil {
		return fmt.Errorf("delete expense request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListExpenses implements [ExpenseAPI].
func (h *httpBackendAdapter) ListExpenses(ctx context.Context) ([]models.RemoteExpense, error) {
	resp, err := h.authedRequest(ctx).Get("/api/expenses")
	if err != nil {
		return nil, fmt.Errorf("list expenses request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.RemoteExpense
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode expenses response: %w", err)
	}

	return items, nil
}

func (h *httpBackendAdapter) create(ctx context.Context, path string, body any) (int64, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Idempotency-Key", uuid.NewString()).
		SetBody(body).
		Post(path)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	var created models.CreatedResponse
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return 0, fmt.Errorf("decode create response: %w", err)
	}
	if created.ID == 0 {
		return 0, fmt.Errorf("create response carries no id")
	}

	return created.ID, nil
}

func (h *httpBackendAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return &StatusError{Code: resp.StatusCode(), Body: body}
}
