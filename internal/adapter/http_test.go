// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ledger-keeper/internal/config"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// newTestAdapter создаёт httpBackendAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string) *httpBackendAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{BaseURL: serverURL, RequestTimeout: 5 * time.Second}
	appCfg := config.ClientApp{Version: "test"}

	a, err := NewHTTPBackendAdapter(adapterCfg, appCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpBackendAdapter)
}

func signedTestToken(t *testing.T, sub string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": sub}).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

// ── CreateCategory ───────────────────────────────────────────────────────────

func TestCreateCategory_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/categories", r.URL.Path)
		assert.Equal(t, "Bearer sometoken", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Idempotency-Key"))

		var got models.RemoteCategory
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "Groceries", got.Name)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.CreatedResponse{ID: 42})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("sometoken")

	id, err := a.CreateCategory(context.Background(), models.RemoteCategory{Name: "Groceries", Kind: models.CategoryExpense})

	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestCreateCategory_MissingID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreateCategory(context.Background(), models.RemoteCategory{Name: "Groceries"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no id")
}

func TestCreateCategory_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("token is expired"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreateCategory(context.Background(), models.RemoteCategory{Name: "Groceries"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── UpdateExpense ────────────────────────────────────────────────────────────

func TestUpdateExpense_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/expenses/900", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("sometoken")

	err := a.UpdateExpense(context.Background(), 900, models.RemoteExpense{
		CategoryID: 42,
		Amount:     decimal.RequireFromString("12.50"),
	})
	require.NoError(t, err)
}

func TestUpdateExpense_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("access denied"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.UpdateExpense(context.Background(), 900, models.RemoteExpense{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)
}

// ── DeleteCategory ───────────────────────────────────────────────────────────

func TestDeleteCategory_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/categories/42", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("sometoken")

	require.NoError(t, a.DeleteCategory(context.Background(), 42))
}

func TestDeleteCategory_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("category not found"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.DeleteCategory(context.Background(), 42)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── ListCategories / ListExpenses ────────────────────────────────────────────

func TestListCategories_Success(t *testing.T) {
	want := []models.RemoteCategory{
		{ID: 42, Name: "Groceries", Kind: models.CategoryExpense},
		{ID: 43, Name: "Salary", Kind: models.CategoryIncome},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/categories", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("sometoken")

	got, err := a.ListCategories(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, want[0].Name, got[0].Name)
	assert.Equal(t, want[1].Kind, got[1].Kind)
}

func TestListExpenses_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/expenses", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[{"id":900,"category_id":42,"amount":"12.50","note":"coffee"}]`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("sometoken")

	got, err := a.ListExpenses(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(900), got[0].ID)
	assert.Equal(t, int64(42), got[0].CategoryID)
	assert.True(t, got[0].Amount.Equal(decimal.RequireFromString("12.50")))
}

func TestListExpenses_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("internal server error"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.ListExpenses(context.Background())

	require.Error(t, err)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.Code)
	assert.Contains(t, statusErr.Body, "internal server error")
}

// ── IdentityProvider ─────────────────────────────────────────────────────────

func TestCurrentUserID(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:8080")

	_, ok := a.CurrentUserID()
	assert.False(t, ok, "no token means no user")

	a.SetToken(signedTestToken(t, "42"))
	id, ok := a.CurrentUserID()
	require.True(t, ok)
	assert.Equal(t, int64(42), id)
}

func TestCurrentUserID_BadToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-jwt"},
		{"non-numeric sub", ""},
	}
	tests[1].token = signedTestToken(t, "alice")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAdapter(t, "http://localhost:8080")
			a.SetToken(tt.token)

			_, ok := a.CurrentUserID()
			assert.False(t, ok)
		})
	}
}

func TestSetToken_Trims(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:8080")
	a.SetToken("  sometoken \n")
	assert.Equal(t, "sometoken", a.Token())
}

// ── normalizeBaseURL ─────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid http", "http://localhost:8080", "http://localhost:8080", false},
		{"no scheme", "localhost:8080", "http://localhost:8080", false},
		{"trailing slash", "https://api.example.com/", "https://api.example.com", false},
		{"empty", "", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
