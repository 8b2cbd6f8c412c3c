package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

type categoryRepository struct {
	*DB
	logger *logger.Logger
}

func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	return &categoryRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *categoryRepository) GetNeedingSync(ctx context.Context, userID int64) ([]models.Category, error) {
	return r.queryCategories(ctx, "categoryRepository.GetNeedingSync", getCategoriesNeedingSync, userID)
}

func (r *categoryRepository) GetAllForUser(ctx context.Context, userID int64) ([]models.Category, error) {
	return r.queryCategories(ctx, "categoryRepository.GetAllForUser", getAllCategories, userID)
}

func (r *categoryRepository) GetByServerID(ctx context.Context, serverID, userID int64) (*models.Category, error) {
	return r.getOne(ctx, "categoryRepository.GetByServerID", getCategoryByServerID, userID, serverID)
}

func (r *categoryRepository) GetByLocalID(ctx context.Context, localID, userID int64) (*models.Category, error) {
	return r.getOne(ctx, "categoryRepository.GetByLocalID", getCategoryByLocalID, userID, localID)
}

func (r *categoryRepository) Insert(ctx context.Context, c models.Category) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Insert("categories").
		Columns("local_id", "server_id", "user_id", "name", "kind",
			"sync_status", "needs_sync", "last_sync_at", "created_at", "updated_at").
		Values(c.LocalID, c.ServerID, c.UserID, c.Name, c.Kind,
			c.SyncStatus, c.NeedsSync, c.LastSyncAt, c.CreatedAt, c.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build category insert: %w", err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "categoryRepository.Insert").
			Int64("user_id", c.UserID).
			Int64("local_id", c.LocalID).
			Msg("failed to execute insert for category")
		return fmt.Errorf("failed to insert category (local_id=%d): %w", c.LocalID, err)
	}

	return nil
}

func (r *categoryRepository) Overwrite(ctx context.Context, c models.Category) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Update("categories").
		SetMap(sq.Eq{
			"server_id":    c.ServerID,
			"name":         c.Name,
			"kind":         c.Kind,
			"sync_status":  c.SyncStatus,
			"needs_sync":   c.NeedsSync,
			"last_sync_at": c.LastSyncAt,
			"updated_at":   c.UpdatedAt,
		}).
		Where(sq.Eq{"local_id": c.LocalID, "user_id": c.UserID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build category update: %w", err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "categoryRepository.Overwrite").
			Int64("user_id", c.UserID).
			Int64("local_id", c.LocalID).
			Msg("failed to execute overwrite for category")
		return fmt.Errorf("failed to overwrite category (local_id=%d): %w", c.LocalID, err)
	}

	return nil
}

func (r *categoryRepository) UpdateSyncStatus(ctx context.Context, localID int64, status models.SyncStatus) error {
	return r.execUpdate(ctx, "categoryRepository.UpdateSyncStatus", localID, sq.Eq{
		"sync_status": status,
	})
}

func (r *categoryRepository) UpdateServerInfo(ctx context.Context, localID, serverID int64, status models.SyncStatus, syncedAt time.Time, needsSync bool) error {
	return r.execUpdate(ctx, "categoryRepository.UpdateServerInfo", localID, sq.Eq{
		"server_id":    serverID,
		"sync_status":  status,
		"last_sync_at": syncedAt,
		"needs_sync":   needsSync,
	})
}

func (r *categoryRepository) DeleteByID(ctx context.Context, localID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, deleteCategoryByID, localID); err != nil {
		log.Err(err).
			Str("func", "categoryRepository.DeleteByID").
			Int64("local_id", localID).
			Msg("failed to execute delete for category")
		return fmt.Errorf("failed to delete category (local_id=%d): %w", localID, err)
	}

	return nil
}

// ReplaceProvisional re-keys a provisional category under its server id.
// The store has no foreign keys across this boundary, so the expense rows
// pointing at oldLocalID are rewritten in a separate step by the caller.
func (r *categoryRepository) ReplaceProvisional(ctx context.Context, oldLocalID int64, c models.Category) error {
	if err := r.DeleteByID(ctx, oldLocalID); err != nil {
		return fmt.Errorf("failed to drop provisional category (local_id=%d): %w", oldLocalID, err)
	}

	if err := r.Insert(ctx, c); err != nil {
		return fmt.Errorf("failed to re-insert category under server id (local_id=%d): %w", c.LocalID, err)
	}

	return nil
}

func (r *categoryRepository) NextProvisionalID(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	var minID int64
	row := r.DB.QueryRowContext(ctx, getMinCategoryLocalID)
	if err := row.Scan(&minID); err != nil {
		log.Err(err).
			Str("func", "categoryRepository.NextProvisionalID").
			Msg("failed to scan min category local id")
		return 0, fmt.Errorf("failed to allocate provisional category id: %w", err)
	}

	if minID > 0 {
		minID = 0
	}
	return minID - 1, nil
}

func (r *categoryRepository) MarkPendingEdit(ctx context.Context, localID int64) error {
	return r.execUpdate(ctx, "categoryRepository.MarkPendingEdit", localID, sq.Eq{
		"sync_status": models.StatusPending,
		"needs_sync":  true,
		"updated_at":  time.Now(),
	})
}

func (r *categoryRepository) MarkDeleted(ctx context.Context, localID int64) error {
	return r.execUpdate(ctx, "categoryRepository.MarkDeleted", localID, sq.Eq{
		"sync_status": models.StatusDeleted,
		"needs_sync":  true,
		"updated_at":  time.Now(),
	})
}

func (r *categoryRepository) execUpdate(ctx context.Context, fn string, localID int64, set sq.Eq) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Update("categories").
		SetMap(set).
		Where(sq.Eq{"local_id": localID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build category update: %w", err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", fn).
			Int64("local_id", localID).
			Msg("failed to execute update for category")
		return fmt.Errorf("failed to update category (local_id=%d): %w", localID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected (local_id=%d): %w", localID, err)
	}
	if rowsAffected == 0 {
		log.Warn().
			Str("func", fn).
			Int64("local_id", localID).
			Msg("no rows affected during category update: record not found")
		return fmt.Errorf("failed to update category: record not found (local_id=%d)", localID)
	}

	return nil
}

func (r *categoryRepository) getOne(ctx context.Context, fn, query string, args ...any) (*models.Category, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, query, args...)

	item, err := scanCategory(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		log.Err(err).
			Str("func", fn).
			Msg("failed to scan category row")
		return nil, fmt.Errorf("failed to scan category row: %w", err)
	}

	return &item, nil
}

func (r *categoryRepository) queryCategories(ctx context.Context, fn, query string, userID int64) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		log.Err(err).
			Str("func", fn).
			Int64("user_id", userID).
			Msg("failed to execute query for categories")
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var items []models.Category
	for rows.Next() {
		item, scanErr := scanCategory(rows.Scan)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", fn).
				Int64("user_id", userID).
				Msg("failed to scan category row")
			return nil, fmt.Errorf("failed to scan category row: %w", scanErr)
		}
		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", fn).
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating category rows: %w", rowsErr)
	}

	return items, nil
}

func scanCategory(scan func(dest ...any) error) (models.Category, error) {
	var (
		item       models.Category
		serverID   sql.NullInt64
		lastSyncAt sql.NullTime
	)

	err := scan(
		&item.LocalID,
		&serverID,
		&item.UserID,
		&item.Name,
		&item.Kind,
		&item.SyncStatus,
		&item.NeedsSync,
		&lastSyncAt,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return models.Category{}, err
	}

	if serverID.Valid {
		item.ServerID = &serverID.Int64
	}
	if lastSyncAt.Valid {
		item.LastSyncAt = &lastSyncAt.Time
	}

	return item, nil
}
