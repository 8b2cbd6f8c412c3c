package adapter

import (
	"context"

	"github.com/MKhiriev/go-ledger-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/client_adapter_mock.go -package=mock

// CategoryAPI is the remote category collection. ListCategories always
// returns the full collection; the backend exposes no delta protocol.
type CategoryAPI interface {
	// CreateCategory creates the category remotely and returns the
	// server-assigned id.
	CreateCategory(ctx context.Context, c models.RemoteCategory) (int64, error)
	// UpdateCategory replaces the remote category identified by serverID.
	UpdateCategory(ctx context.Context, serverID int64, c models.RemoteCategory) error
	// DeleteCategory removes the remote category. Returns [ErrNotFound]
	// (wrapped) when the server no longer knows the id.
	DeleteCategory(ctx context.Context, serverID int64) error
	// ListCategories fetches the full remote category collection.
	ListCategories(ctx context.Context) ([]models.RemoteCategory, error)
}

// ExpenseAPI is the remote expense collection.
type ExpenseAPI interface {
	CreateExpense(ctx context.Context, e models.RemoteExpense) (int64, error)
	UpdateExpense(ctx context.Context, serverID int64, e models.RemoteExpense) error
	DeleteExpense(ctx context.Context, serverID int64) error
	ListExpenses(ctx context.Context) ([]models.RemoteExpense, error)
}

// IdentityProvider resolves the current user identity from the bearer token.
// Token acquisition and refresh live outside the sync engine; a 401/403
// response from the backend is the signal that re-authentication is required.
type IdentityProvider interface {
	// CurrentUserID returns the authenticated user id, or false when no
	// identity is resolvable (no token, malformed token).
	CurrentUserID() (int64, bool)
	// SetToken stores the bearer token used for all subsequent requests.
	SetToken(token string)
	// Token returns the bearer token currently held, or an empty string.
	Token() string
}

// BackendAdapter is the complete remote surface consumed by the client.
type BackendAdapter interface {
	CategoryAPI
	ExpenseAPI
	IdentityProvider
}
