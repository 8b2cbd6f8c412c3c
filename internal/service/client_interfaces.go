package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-ledger-keeper/models"
)

// ClientSyncService is the sync orchestrator: one full run uploads and then
// downloads every managed entity type in a fixed phase order.
type ClientSyncService interface {
	// FullSync performs one complete run for the given user: upload
	// categories, download categories, upload expenses, download expenses.
	// A second call while a run is active is a no-op; a run without a
	// resolved user is a no-op. A phase error aborts the remaining phases,
	// but local writes already committed by earlier phases stand.
	FullSync(ctx context.Context, userID int64) error

	// RunState returns the current observable sync state.
	RunState() models.SyncRunState

	// Subscribe registers an observer of sync-state transitions. The
	// returned cancel function releases the subscription.
	Subscribe() (<-chan models.SyncRunState, func())
}

// MutationListener is notified after every successful local mutation so the
// scheduling layer can coalesce edits into an eventual sync.
type MutationListener interface {
	OnLocalMutation()
}

// LedgerService is the local mutation surface the sync engine feeds on.
// Every write lands in the local store only, marked PENDING with the dirty
// bit set; the background sync propagates it to the server later.
type LedgerService interface {
	// CreateCategory stores a new category under a negative provisional id.
	CreateCategory(ctx context.Context, userID int64, name string, kind models.CategoryKind) (models.Category, error)
	// UpdateCategory renames or re-kinds a category and marks it pending.
	UpdateCategory(ctx context.Context, userID, localID int64, name string, kind models.CategoryKind) error
	// DeleteCategory soft-deletes a category; physical removal happens once
	// the remote delete is confirmed.
	DeleteCategory(ctx context.Context, userID, localID int64) error

	// CreateExpense stores a new expense referencing a category by local id.
	CreateExpense(ctx context.Context, userID, categoryID int64, amount decimal.Decimal, note string, spentAt time.Time) (models.Expense, error)
	// UpdateExpense rewrites the mutable expense fields and marks it pending.
	UpdateExpense(ctx context.Context, userID, localID, categoryID int64, amount decimal.Decimal, note string, spentAt time.Time) error
	// DeleteExpense soft-deletes an expense.
	DeleteExpense(ctx context.Context, userID, localID int64) error

	// SetMutationListener installs the listener nudged after each mutation.
	// A nil listener disables notifications.
	SetMutationListener(l MutationListener)
}
