// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

type expenseRepository struct {
	*DB
	logger *logger.Logger
}

func NewExpenseRepository(db *DB, logger *logger.Logger) ExpenseRepository {
	return &expenseRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *expenseRepository) GetNeedingSync(ctx context.Context, userID int64) ([]models.Expense, error) {
	return r.queryExpenses(ctx, "expenseRepository.GetNeedingSync", getExpensesNeedingSync, userID)
}

func (r *expenseRepository) GetAllForUser(ctx context.Context, userID int64) ([]models.Expense, error) {
	return r.queryExpenses(ctx, "expenseRepository.GetAllForUser", getAllExpenses, userID)
}

func (r *expenseRepository) GetByServerID(ctx context.Context, serverID, userID int64) (*models.Expense, error) {
	return r.getOne(ctx, "expenseRepository.GetByServerID", getExpenseByServerID, userID, serverID)
}

func (r *expenseRepository) GetByLocalID(ctx context.Context, localID, userID int64) (*models.Expense, error) {
	return r.getOne(ctx, "expenseRepository.GetByLocalID", getExpenseByLocalID, userID, localID)
}

func (r *expenseRepository) Insert(ctx context.Context, e models.Expense) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Insert("expenses").
		Columns("server_id", "user_id", "category_id", "amount", "note", "spent_at",
			"sync_status", "needs_sync", "last_sync_at", "created_at", "updated_at").
		Values(e.ServerID, e.UserID, e.CategoryID, e.Amount.String(), e.Note, e.SpentAt,
			e.SyncStatus, e.NeedsSync, e.LastSyncAt, e.CreatedAt, e.UpdatedAt).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build expense insert: %w", err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "expenseRepository.Insert").
			Int64("user_id", e.UserID).
			Msg("failed to execute insert for expense")
		return 0, fmt.Errorf("failed to insert expense: %w", err)
	}

	localID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted expense id: %w", err)
	}

	return localID, nil
}

func (r *expenseRepository) Overwrite(ctx context.Context, e models.Expense) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Update("expenses").
		SetMap(sq.Eq{
			"server_id":    e.ServerID,
			"category_id":  e.CategoryID,
			"amount":       e.Amount.String(),
			"note":         e.Note,
			"spent_at":     e.SpentAt,
			"sync_status":  e.SyncStatus,
			"needs_sync":   e.NeedsSync,
			"last_sync_at": e.LastSyncAt,
			"updated_at":   e.UpdatedAt,
		}).
		Where(sq.Eq{"local_id": e.LocalID, "user_id": e.UserID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build expense update: %w", err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "expenseRepository.Overwrite").
			Int64("user_id", e.UserID).
			Int64("local_id", e.LocalID).
			Msg("failed to execute overwrite for expense")
		return fmt.Errorf("failed to overwrite expense (local_id=%d): %w", e.LocalID, err)
	}

	return nil
}

func (r *expenseRepository) UpdateSyncStatus(ctx context.Context, localID int64, status models.SyncStatus) error {
	return r.execUpdate(ctx, "expenseRepository.UpdateSyncStatus", localID, sq.Eq{
		"sync_status": status,
	})
}

func (r *expenseRepository) UpdateServerInfo(ctx context.Context, localID, serverID int64, status models.SyncStatus, syncedAt time.Time, needsSync bool) error {
	return r.execUpdate(ctx, "expenseRepository.UpdateServerInfo", localID, sq.Eq{
		"server_id":    serverID,
		"sync_status":  status,
		"last_sync_at": syncedAt,
		"needs_sync":   needsSync,
	})
}

func (r *expenseRepository) DeleteByID(ctx context.Context, localID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, deleteExpenseByID, localID); err != nil {
		log.Err(err).
			Str("func", "expenseRepository.DeleteByID").
			Int64("local_id", localID).
			Msg("failed to execute delete for expense")
		return fmt.Errorf("failed to delete expense (local_id=%d): %w", localID, err)
	}

	return nil
}

func (r *expenseRepository) RewriteCategoryReferences(ctx context.Context, oldCategoryID, newCategoryID, userID int64) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Update("expenses").
		Set("category_id", newCategoryID).
		Where(sq.Eq{"category_id": oldCategoryID, "user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build category reference rewrite: %w", err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "expenseRepository.RewriteCategoryReferences").
			Int64("user_id", userID).
			Int64("old_category_id", oldCategoryID).
			Int64("new_category_id", newCategoryID).
			Msg("failed to rewrite expense category references")
		return 0, fmt.Errorf("failed to rewrite category references (%d -> %d): %w", oldCategoryID, newCategoryID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected for reference rewrite: %w", err)
	}

	return rowsAffected, nil
}

func (r *expenseRepository) MarkPendingEdit(ctx context.Context, localID int64) error {
	return r.execUpdate(ctx, "expenseRepository.MarkPendingEdit", localID, sq.Eq{
		"sync_status": models.StatusPending,
		"needs_sync":  true,
		"updated_at":  time.Now(),
	})
}

func (r *expenseRepository) MarkDeleted(ctx context.Context, localID int64) error {
	return r.execUpdate(ctx, "expenseRepository.MarkDeleted", localID, sq.Eq{
		"sync_status": models.StatusDeleted,
		"needs_sync":  true,
		"updated_at":  time.Now(),
	})
}

func (r *expenseRepository) execUpdate(ctx context.Context, fn string, localID int64, set sq.Eq) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Update("expenses").
		SetMap(set).
		Where(sq.Eq{"local_id": localID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build expense update: %w", err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", fn).
			Int64("local_id", localID).
			Msg("failed to execute update for expense")
		return fmt.Errorf("failed to update expense (local_id=%d): %w", localID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected (local_id=%d): %w", localID, err)
	}
	if rowsAffected == 0 {
		log.Warn().
			Str("func", fn).
			Int64("local_id", localID).
			Msg("no rows affected during expense update: record not found")
		return fmt.Errorf("failed to update expense: record not found (local_id=%d)", localID)
	}

	return nil
}

func (r *expenseRepository) getOne(ctx context.Context, fn, query string, args ...any) (*models.Expense, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, query, args...)

	item, err := scanExpense(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		log.Err(err).
			Str("func", fn).
			Msg("failed to scan expense row")
		return nil, fmt.Errorf("failed to scan expense row: %w", err)
	}

	return &item, nil
}

func (r *expenseRepository) queryExpenses(ctx context.Context, fn, query string, userID int64) ([]models.Expense, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		log.Err(err).
			Str("func", fn).
			Int64("user_id", userID).
			Msg("failed to execute query for expenses")
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	var items []models.Expense
	for rows.Next() {
		item, scanErr := scanExpense(rows.Scan)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", fn).
				Int64("user_id", userID).
				Msg("failed to scan expense row")
			return nil, fmt.Errorf("failed to scan expense row: %w", scanErr)
		}
		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", fn).
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating expense rows: %w", rowsErr)
	}

	return items, nil
}

func scanExpense(scan func(dest ...any) error) (models.Expense, error) {
	var (
		item       models.Expense
		serverID   sql.NullInt64
		amount     string
		lastSyncAt sql.NullTime
	)

	err := scan(
		&item.LocalID,
		&serverID,
		&item.UserID,
		&item.CategoryID,
		&amount,
		&item.Note,
		&item.SpentAt,
		&item.SyncStatus,
		&item.NeedsSync,
		&lastSyncAt,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return models.Expense{}, err
	}

	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return models.Expense{}, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	item.Amount = parsed

	if serverID.Valid {
		item.ServerID = &serverID.Int64
	}
	if lastSyncAt.Valid {
		item.LastSyncAt = &lastSyncAt.Time
	}

	return item, nil
}
