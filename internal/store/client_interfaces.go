package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-ledger-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// CategoryRepository is the local category store consumed by the sync engine
// and the ledger mutation service. Implementations must guarantee per-row
// atomicity for each individual call; no call spans a batch transaction.
type CategoryRepository interface {
	// GetNeedingSync returns every category for the user whose dirty bit is
	// set, regardless of sync status.
	GetNeedingSync(ctx context.Context, userID int64) ([]models.Category, error)
	// GetAllForUser returns every category row for the user. Required for
	// tombstone detection during download.
	GetAllForUser(ctx context.Context, userID int64) ([]models.Category, error)
	// GetByServerID returns the category carrying the given server id, or nil
	// when no local row references it.
	GetByServerID(ctx context.Context, serverID, userID int64) (*models.Category, error)
	// GetByLocalID returns the category under the given local primary key, or
	// nil when absent.
	GetByLocalID(ctx context.Context, localID, userID int64) (*models.Category, error)
	// Insert stores a category under its explicit LocalID. Downloaded
	// categories are keyed by server id; provisional ones by a negative id.
	Insert(ctx context.Context, c models.Category) error
	// Overwrite replaces the mutable fields of an existing row, keeping the
	// local primary key.
	Overwrite(ctx context.Context, c models.Category) error
	// UpdateSyncStatus transitions only the sync status of a row.
	UpdateSyncStatus(ctx context.Context, localID int64, status models.SyncStatus) error
	// UpdateServerInfo records a confirmed server identity together with the
	// terminal sync state of an upload.
	UpdateServerInfo(ctx context.Context, localID, serverID int64, status models.SyncStatus, syncedAt time.Time, needsSync bool) error
	// DeleteByID physically removes a row.
	DeleteByID(ctx context.Context, localID int64) error
	// ReplaceProvisional removes the provisional row oldLocalID and inserts c
	// under its server-assigned id. Expense references are rewritten
	// separately via [ExpenseRepository.RewriteCategoryReferences].
	ReplaceProvisional(ctx context.Context, oldLocalID int64, c models.Category) error
	// NextProvisionalID allocates the next free negative placeholder id.
	NextProvisionalID(ctx context.Context) (int64, error)
	// MarkPendingEdit flags a row as locally edited and awaiting upload.
	MarkPendingEdit(ctx context.Context, localID int64) error
	// MarkDeleted soft-deletes a row; it stays visible to the sync engine
	// until the remote delete is confirmed.
	MarkDeleted(ctx context.Context, localID int64) error
}

// ExpenseRepository is the local expense store consumed by the sync engine
// and the ledger mutation service.
type ExpenseRepository interface {
	GetNeedingSync(ctx context.Context, userID int64) ([]models.Expense, error)
	GetAllForUser(ctx context.Context, userID int64) ([]models.Expense, error)
	GetByServerID(ctx context.Context, serverID, userID int64) (*models.Expense, error)
	GetByLocalID(ctx context.Context, localID, userID int64) (*models.Expense, error)
	// Insert stores a new expense and returns the assigned local id.
	Insert(ctx context.Context, e models.Expense) (int64, error)
	Overwrite(ctx context.Context, e models.Expense) error
	UpdateSyncStatus(ctx context.Context, localID int64, status models.SyncStatus) error
	UpdateServerInfo(ctx context.Context, localID, serverID int64, status models.SyncStatus, syncedAt time.Time, needsSync bool) error
	DeleteByID(ctx context.Context, localID int64) error
	// RewriteCategoryReferences repoints every expense of the user from
	// oldCategoryID to newCategoryID and returns the number of rewritten
	// rows. Used after a provisional category id is replaced by a server id.
	RewriteCategoryReferences(ctx context.Context, oldCategoryID, newCategoryID, userID int64) (int64, error)
	MarkPendingEdit(ctx context.Context, localID int64) error
	MarkDeleted(ctx context.Context, localID int64) error
}
