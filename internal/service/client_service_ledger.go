// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/store"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// ledgerService is the offline-first mutation surface. Every write goes to
// the local store only; records are marked PENDING with the dirty bit set and
// the mutation listener is nudged so the scheduler can coalesce a sync.
type ledgerService struct {
	categories store.CategoryRepository
	expenses   store.ExpenseRepository

	mu       sync.RWMutex
	listener MutationListener

	now func() time.Time
}

func NewLedgerService(storages *store.ClientStorages) LedgerService {
	return &ledgerService{
		categories: storages.Categories,
		expenses:   storages.Expenses,
		now:        time.Now,
	}
}

// SetMutationListener implements [LedgerService].
func (s *ledgerService) SetMutationListener(l MutationListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listener = l
}

func (s *ledgerService) notifyMutation() {
	s.mu.RLock()
	l := s.listener
	s.mu.RUnlock()

	if l != nil {
		l.OnLocalMutation()
	}
}

// CreateCategory implements [LedgerService]. The new row receives a negative
// provisional local id; the server-assigned id replaces it on first upload.
func (s *ledgerService) CreateCategory(ctx context.Context, userID int64, name string, kind models.CategoryKind) (models.Category, error) {
	log := logger.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return models.Category{}, ErrEmptyCategoryName
	}
	if kind != models.CategoryExpense && kind != models.CategoryIncome {
		return models.Category{}, fmt.Errorf("%w: %q", ErrUnknownCategoryKind, kind)
	}

	provisionalID, err := s.categories.NextProvisionalID(ctx)
	if err != nil {
		return models.Category{}, fmt.Errorf("allocate provisional category id: %w", err)
	}

	now := s.now()
	category := models.Category{
		LocalID:    provisionalID,
		UserID:     userID,
		Name:       name,
		Kind:       kind,
		SyncStatus: models.StatusPending,
		NeedsSync:  true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err = s.categories.Insert(ctx, category); err != nil {
		return models.Category{}, fmt.Errorf("create category: %w", err)
	}

	log.Debug().
		Str("func", "ledgerService.CreateCategory").
		Int64("user_id", userID).
		Int64("local_id", provisionalID).
		Msg("category created locally")

	s.notifyMutation()
	return category, nil
}

// UpdateCategory implements [LedgerService].
func (s *ledgerService) UpdateCategory(ctx context.Context, userID, localID int64, name string, kind models.CategoryKind) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyCategoryName
	}
	if kind != models.CategoryExpense && kind != models.CategoryIncome {
		return fmt.Errorf("%w: %q", ErrUnknownCategoryKind, kind)
	}

	category, err := s.categories.GetByLocalID(ctx, localID, userID)
	if err != nil {
		return fmt.Errorf("load category for update: %w", err)
	}
	if category == nil || category.SyncStatus == models.StatusDeleted {
		return fmt.Errorf("%w (local_id=%d)", ErrCategoryNotFound, localID)
	}

	category.Name = name
	category.Kind = kind
	category.SyncStatus = models.StatusPending
	category.NeedsSync = true
	category.UpdatedAt = s.now()

	if err = s.categories.Overwrite(ctx, *category); err != nil {
		return fmt.Errorf("update category: %w", err)
	}

	s.notifyMutation()
	return nil
}

// DeleteCategory implements [LedgerService]. A category the server has never
// seen is removed physically; a synced one is soft-deleted and stays until
// the remote delete is confirmed by a sync run.
func (s *ledgerService) DeleteCategory(ctx context.Context, userID, localID int64) error {
	category, err := s.categories.GetByLocalID(ctx, localID, userID)
	if err != nil {
		return fmt.Errorf("load category for delete: %w", err)
	}
	if category == nil {
		return fmt.Errorf("%w (local_id=%d)", ErrCategoryNotFound, localID)
	}

	if category.ServerID == nil {
		if err = s.categories.DeleteByID(ctx, localID); err != nil {
			return fmt.Errorf("delete category: %w", err)
		}
	} else {
		if err = s.categories.MarkDeleted(ctx, localID); err != nil {
			return fmt.Errorf("mark category deleted: %w", err)
		}
	}

	s.notifyMutation()
	return nil
}

// CreateExpense implements [LedgerService].
func (s *ledgerService) CreateExpense(ctx context.Context, userID, categoryID int64, amount decimal.Decimal, note string, spentAt time.Time) (models.Expense, error) {
	log := logger.FromContext(ctx)

	if !amount.IsPositive() {
		return models.Expense{}, ErrNonPositiveAmount
	}

	category, err := s.categories.GetByLocalID(ctx, categoryID, userID)
	if err != nil {
		return models.Expense{}, fmt.Errorf("load category for expense: %w", err)
	}
	if category == nil || category.SyncStatus == models.StatusDeleted {
		return models.Expense{}, fmt.Errorf("%w (local_id=%d)", ErrCategoryNotFound, categoryID)
	}

	now := s.now()
	expense := models.Expense{
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     amount,
		Note:       strings.TrimSpace(note),
		SpentAt:    spentAt,
		SyncStatus: models.StatusPending,
		NeedsSync:  true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	localID, err := s.expenses.Insert(ctx, expense)
	if err != nil {
		return models.Expense{}, fmt.Errorf("create expense: %w", err)
	}
	expense.LocalID = localID

	log.Debug().
		Str("func", "ledgerService.CreateExpense").
		Int64("user_id", userID).
		Int64("local_id", localID).
		Msg("expense created locally")

	s.notifyMutation()
	return expense, nil
}

// UpdateExpense implements [LedgerService].
func (s *ledgerService) UpdateExpense(ctx context.Context, userID, localID, categoryID int64, amount decimal.Decimal, note string, spentAt time.Time) error {
	if !amount.IsPositive() {
		return ErrNonPositiveAmount
	}

	expense, err := s.expenses.GetByLocalID(ctx, localID, userID)
	if err != nil {
		return fmt.Errorf("load expense for update: %w", err)
	}
	if expense == nil || expense.SyncStatus == models.StatusDeleted {
		return fmt.Errorf("%w (local_id=%d)", ErrExpenseNotFound, localID)
	}

	category, err := s.categories.GetByLocalID(ctx, categoryID, userID)
	if err != nil {
		return fmt.Errorf("load category for expense: %w", err)
	}
	if category == nil || category.SyncStatus == models.StatusDeleted {
		return fmt.Errorf("%w (local_id=%d)", ErrCategoryNotFound, categoryID)
	}

	expense.CategoryID = categoryID
	expense.Amount = amount
	expense.Note = strings.TrimSpace(note)
	expense.SpentAt = spentAt
	expense.SyncStatus = models.StatusPending
	expense.NeedsSync = true
	expense.UpdatedAt = s.now()

	if err = s.expenses.Overwrite(ctx, *expense); err != nil {
		return fmt.Errorf("update expense: %w", err)
	}

	s.notifyMutation()
	return nil
}

// DeleteExpense implements [LedgerService].
func (s *ledgerService) DeleteExpense(ctx context.Context, userID, localID int64) error {
	expense, err := s.expenses.GetByLocalID(ctx, localID, userID)
	if err != nil {
		return fmt.Errorf("load expense for delete: %w", err)
	}
	if expense == nil {
		return fmt.Errorf("%w (local_id=%d)", ErrExpenseNotFound, localID)
	}

	if expense.ServerID == nil {
		if err = s.expenses.DeleteByID(ctx, localID); err != nil {
			return fmt.Errorf("delete expense: %w", err)
		}
	} else {
		if err = s.expenses.MarkDeleted(ctx, localID); err != nil {
			return fmt.Errorf("mark expense deleted: %w", err)
		}
	}

	s.notifyMutation()
	return nil
}
