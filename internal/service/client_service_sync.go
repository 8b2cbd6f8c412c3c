// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-ledger-keeper/internal/adapter"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/store"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

const defaultUploadBatchSize = 20

type clientSyncService struct {
	storages *store.ClientStorages
	backend  adapter.BackendAdapter

	batchSize  int
	inProgress atomic.Bool
	state      *runStateFeed
	now        func() time.Time
}

// NewClientSyncService constructs the sync orchestrator. batchSize bounds
// how many records one sequential upload batch holds; values below 1 fall
// back to the default.
func NewClientSyncService(storages *store.ClientStorages, backend adapter.BackendAdapter, batchSize int) ClientSyncService {
	if batchSize < 1 {
		batchSize = defaultUploadBatchSize
	}
	return &clientSyncService{
		storages:  storages,
		backend:   backend,
		batchSize: batchSize,
		state:     newRunStateFeed(),
		now:       time.Now,
	}
}

// FullSync implements [ClientSyncService]. Phases run strictly sequentially;
// the in-progress flag guarantees at most one concurrent run.
func (s *clientSyncService) FullSync(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if userID <= 0 {
		log.Debug().Str("func", "clientSyncService.FullSync").Msg("no resolved user, skipping sync")
		return nil
	}

	if !s.inProgress.CompareAndSwap(false, true) {
		log.Debug().Str("func", "clientSyncService.FullSync").Msg("sync already in progress, skipping")
		return nil
	}
	defer s.inProgress.Store(false)

	s.state.publish(models.RunActive, nil)

	err := s.runPhases(ctx, userID)
	if err != nil {
		s.state.publish(models.RunFailed, err)
		return err
	}

	s.state.publish(models.RunSuccess, nil)
	return nil
}

func (s *clientSyncService) runPhases(ctx context.Context, userID int64) error {
	if err := s.uploadCategories(ctx, userID); err != nil {
		return fmt.Errorf("upload categories: %w", err)
	}
	if err := s.downloadCategories(ctx, userID); err != nil {
		return fmt.Errorf("download categories: %w", err)
	}
	if err := s.uploadExpenses(ctx, userID); err != nil {
		return fmt.Errorf("upload expenses: %w", err)
	}
	if err := s.downloadExpenses(ctx, userID); err != nil {
		return fmt.Errorf("download expenses: %w", err)
	}
	return nil
}

// RunState implements [ClientSyncService].
func (s *clientSyncService) RunState() models.SyncRunState {
	return s.state.snapshot()
}

// Subscribe implements [ClientSyncService].
func (s *clientSyncService) Subscribe() (<-chan models.SyncRunState, func()) {
	return s.state.subscribe()
}

// ── upload ───────────────────────────────────────────────────────────────────

func (s *clientSyncService) uploadCategories(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	records, err := s.storages.Categories.GetNeedingSync(ctx, userID)
	if err != nil {
		return fmt.Errorf("get categories needing sync: %w", err)
	}

	for start := 0; start < len(records); start += s.batchSize {
		end := min(start+s.batchSize, len(records))
		log.Debug().
			Str("func", "clientSyncService.uploadCategories").
			Int64("user_id", userID).
			Int("batch_size", end-start).
			Msg("uploading category batch")

		for _, rec := range records[start:end] {
			if err := s.uploadCategory(ctx, userID, rec); err != nil {
				return err
			}
		}
	}

	return nil
}

// uploadCategory classifies and uploads one record. A non-auth failure marks
// the record FAILED and returns nil so the batch continues; an auth failure
// aborts the phase.
func (s *clientSyncService) uploadCategory(ctx context.Context, userID int64, rec models.Category) error {
	log := logger.FromContext(ctx)

	switch {
	case rec.SyncStatus == models.StatusDeleted:
		if rec.ServerID == nil {
			// Created and deleted before the server ever saw it.
			return s.storages.Categories.DeleteByID(ctx, rec.LocalID)
		}

		if err := s.storages.Categories.UpdateSyncStatus(ctx, rec.LocalID, models.StatusSyncing); err != nil {
			return err
		}
		err := s.backend.DeleteCategory(ctx, *rec.ServerID)
		if err != nil && !errors.Is(err, adapter.ErrNotFound) {
			// 404 means already gone, anything else is a real failure.
			return s.recordCategoryFailure(ctx, rec.LocalID, err)
		}
		return s.storages.Categories.DeleteByID(ctx, rec.LocalID)

	case rec.Provisional():
		if err := s.storages.Categories.UpdateSyncStatus(ctx, rec.LocalID, models.StatusSyncing); err != nil {
			return err
		}
		serverID, err := s.backend.CreateCategory(ctx, remoteCategory(rec))
		if err != nil {
			return s.recordCategoryFailure(ctx, rec.LocalID, err)
		}

		now := s.now()
		synced := rec
		synced.LocalID = serverID
		synced.ServerID = &serverID
		synced.SyncStatus = models.StatusSynced
		synced.NeedsSync = false
		synced.LastSyncAt = &now
		synced.UpdatedAt = now

		if err = s.storages.Categories.ReplaceProvisional(ctx, rec.LocalID, synced); err != nil {
			return fmt.Errorf("replace provisional category %d: %w", rec.LocalID, err)
		}

		// The store enforces no foreign keys across this boundary, so every
		// expense still pointing at the provisional id is repointed here.
		rewritten, err := s.storages.Expenses.RewriteCategoryReferences(ctx, rec.LocalID, serverID, userID)
		if err != nil {
			return fmt.Errorf("rewrite expense references %d -> %d: %w", rec.LocalID, serverID, err)
		}
		log.Debug().
			Str("func", "clientSyncService.uploadCategory").
			Int64("old_category_id", rec.LocalID).
			Int64("new_category_id", serverID).
			Int64("rewritten", rewritten).
			Msg("category created on server, references rewritten")
		return nil

	default:
		if err := s.storages.Categories.UpdateSyncStatus(ctx, rec.LocalID, models.StatusSyncing); err != nil {
			return err
		}
		if err := s.backend.UpdateCategory(ctx, *rec.ServerID, remoteCategory(rec)); err != nil {
			return s.recordCategoryFailure(ctx, rec.LocalID, err)
		}
		return s.storages.Categories.UpdateServerInfo(ctx, rec.LocalID, *rec.ServerID, models.StatusSynced, s.now(), false)
	}
}

func (s *clientSyncService) uploadExpenses(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	records, err := s.storages.Expenses.GetNeedingSync(ctx, userID)
	if err != nil {
		return fmt.Errorf("get expenses needing sync: %w", err)
	}

	for start := 0; start < len(records); start += s.batchSize {
		end := min(start+s.batchSize, len(records))
		log.Debug().
			Str("func", "clientSyncService.uploadExpenses").
			Int64("user_id", userID).
			Int("batch_size", end-start).
			Msg("uploading expense batch")

		for _, rec := range records[start:end] {
			if err := s.uploadExpense(ctx, rec); err != nil {
				return err
			}
		}
	}

	return nil
}

func (s *clientSyncService) uploadExpense(ctx context.Context, rec models.Expense) error {
	switch {
	case rec.SyncStatus == models.StatusDeleted:
		if rec.ServerID == nil {
			return s.storages.Expenses.DeleteByID(ctx, rec.LocalID)
		}

		if err := s.storages.Expenses.UpdateSyncStatus(ctx, rec.LocalID, models.StatusSyncing); err != nil {
			return err
		}
		err := s.backend.DeleteExpense(ctx, *rec.ServerID)
		if err != nil && !errors.Is(err, adapter.ErrNotFound) {
			return s.recordExpenseFailure(ctx, rec.LocalID, err)
		}
		return s.storages.Expenses.DeleteByID(ctx, rec.LocalID)

	case rec.ServerID == nil:
		if err := s.storages.Expenses.UpdateSyncStatus(ctx, rec.LocalID, models.StatusSyncing); err != nil {
			return err
		}
		serverID, err := s.backend.CreateExpense(ctx, remoteExpense(rec))
		if err != nil {
			return s.recordExpenseFailure(ctx, rec.LocalID, err)
		}
		return s.storages.Expenses.UpdateServerInfo(ctx, rec.LocalID, serverID, models.StatusSynced, s.now(), false)

	default:
		if err := s.storages.Expenses.UpdateSyncStatus(ctx, rec.LocalID, models.StatusSyncing); err != nil {
			return err
		}
		if err := s.backend.UpdateExpense(ctx, *rec.ServerID, remoteExpense(rec)); err != nil {
			return s.recordExpenseFailure(ctx, rec.LocalID, err)
		}
		return s.storages.Expenses.UpdateServerInfo(ctx, rec.LocalID, *rec.ServerID, models.StatusSynced, s.now(), false)
	}
}

// recordCategoryFailure gives a record that entered SYNCING a guaranteed
// terminal state. The FAILED transition runs on a cancellation-immune context
// so a timed-out run never strands a record in SYNCING. Auth errors abort
// the phase; everything else lets the batch continue.
func (s *clientSyncService) recordCategoryFailure(ctx context.Context, localID int64, cause error) error {
	log := logger.FromContext(ctx)

	if err := s.storages.Categories.UpdateSyncStatus(context.WithoutCancel(ctx), localID, models.StatusFailed); err != nil {
		log.Err(err).
			Str("func", "clientSyncService.recordCategoryFailure").
			Int64("local_id", localID).
			Msg("failed to mark category as failed")
	}

	if adapter.IsAuthError(cause) || ctx.Err() != nil {
		return fmt.Errorf("upload category %d: %w", localID, cause)
	}

	log.Warn().Err(cause).
		Str("func", "clientSyncService.recordCategoryFailure").
		Int64("local_id", localID).
		Msg("category upload failed, continuing batch")
	return nil
}

func (s *clientSyncService) recordExpenseFailure(ctx context.Context, localID int64, cause error) error {
	log := logger.FromContext(ctx)

	if err := s.storages.Expenses.UpdateSyncStatus(context.WithoutCancel(ctx), localID, models.StatusFailed); err != nil {
		log.Err(err).
			Str("func", "clientSyncService.recordExpenseFailure").
			Int64("local_id", localID).
			Msg("failed to mark expense as failed")
	}

	if adapter.IsAuthError(cause) || ctx.Err() != nil {
		return fmt.Errorf("upload expense %d: %w", localID, cause)
	}

	log.Warn().Err(cause).
		Str("func", "clientSyncService.recordExpenseFailure").
		Int64("local_id", localID).
		Msg("expense upload failed, continuing batch")
	return nil
}

// ── download ─────────────────────────────────────────────────────────────────

func (s *clientSyncService) downloadCategories(ctx context.Context, userID int64) error {
	remote, err := s.backend.ListCategories(ctx)
	if err != nil {
		return fmt.Errorf("list remote categories: %w", err)
	}

	present := make(map[int64]struct{}, len(remote))
	for _, rc := range remote {
		present[rc.ID] = struct{}{}

		local, err := s.storages.Categories.GetByServerID(ctx, rc.ID, userID)
		if err != nil {
			return err
		}

		if local == nil {
			now := s.now()
			if err = s.storages.Categories.Insert(ctx, models.Category{
				LocalID:    rc.ID,
				ServerID:   &rc.ID,
				UserID:     userID,
				Name:       rc.Name,
				Kind:       rc.Kind,
				SyncStatus: models.StatusSynced,
				NeedsSync:  false,
				LastSyncAt: &now,
				CreatedAt:  now,
				UpdatedAt:  now,
			}); err != nil {
				return fmt.Errorf("insert downloaded category %d: %w", rc.ID, err)
			}
			continue
		}

		if err = s.reconcileCategory(ctx, *local, rc); err != nil {
			return err
		}
	}

	return s.purgeCategoryTombstones(ctx, userID, present)
}

// reconcileCategory applies the conflict policy to a same-identity pair.
// A clean local record is overwritten by the remote copy; any pending local
// state only gains the CONFLICT marker, its fields are never touched.
func (s *clientSyncService) reconcileCategory(ctx context.Context, local models.Category, rc models.RemoteCategory) error {
	if local.SyncStatus == models.StatusSynced && !local.NeedsSync {
		if local.Name == rc.Name && local.Kind == rc.Kind {
			// Nothing changed remotely, keep the download idempotent.
			return nil
		}

		now := s.now()
		local.Name = rc.Name
		local.Kind = rc.Kind
		local.LastSyncAt = &now
		local.UpdatedAt = now
		if err := s.storages.Categories.Overwrite(ctx, local); err != nil {
			return fmt.Errorf("overwrite category %d from server: %w", local.LocalID, err)
		}
		return nil
	}

	if local.SyncStatus == models.StatusConflict {
		return nil
	}
	return s.storages.Categories.UpdateSyncStatus(ctx, local.LocalID, models.StatusConflict)
}

// purgeCategoryTombstones removes every SYNCED local category whose server id
// no longer appears in the full remote listing. Absence is the only deletion
// signal the backend emits.
func (s *clientSyncService) purgeCategoryTombstones(ctx context.Context, userID int64, present map[int64]struct{}) error {
	log := logger.FromContext(ctx)

	locals, err := s.storages.Categories.GetAllForUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("list local categories for tombstone check: %w", err)
	}

	for _, local := range locals {
		if local.SyncStatus != models.StatusSynced || local.ServerID == nil {
			continue
		}
		if _, ok := present[*local.ServerID]; ok {
			continue
		}

		log.Info().
			Str("func", "clientSyncService.purgeCategoryTombstones").
			Int64("user_id", userID).
			Int64("server_id", *local.ServerID).
			Msg("category deleted on server, removing local copy")
		if err = s.storages.Categories.DeleteByID(ctx, local.LocalID); err != nil {
			return fmt.Errorf("purge category %d: %w", local.LocalID, err)
		}
	}

	return nil
}

func (s *clientSyncService) downloadExpenses(ctx context.Context, userID int64) error {
	remote, err := s.backend.ListExpenses(ctx)
	if err != nil {
		return fmt.Errorf("list remote expenses: %w", err)
	}

	present := make(map[int64]struct{}, len(remote))
	for _, re := range remote {
		present[re.ID] = struct{}{}

		local, err := s.storages.Expenses.GetByServerID(ctx, re.ID, userID)
		if err != nil {
			return err
		}

		if local == nil {
			now := s.now()
			if _, err = s.storages.Expenses.Insert(ctx, models.Expense{
				ServerID:   &re.ID,
				UserID:     userID,
				CategoryID: re.CategoryID,
				Amount:     re.Amount,
				Note:       re.Note,
				SpentAt:    re.SpentAt,
				SyncStatus: models.StatusSynced,
				NeedsSync:  false,
				LastSyncAt: &now,
				CreatedAt:  now,
				UpdatedAt:  now,
			}); err != nil {
				return fmt.Errorf("insert downloaded expense %d: %w", re.ID, err)
			}
			continue
		}

		if err = s.reconcileExpense(ctx, *local, re); err != nil {
			return err
		}
	}

	return s.purgeExpenseTombstones(ctx, userID, present)
}

func (s *clientSyncService) reconcileExpense(ctx context.Context, local models.Expense, re models.RemoteExpense) error {
	if local.SyncStatus == models.StatusSynced && !local.NeedsSync {
		if local.CategoryID == re.CategoryID &&
			local.Amount.Equal(re.Amount) &&
			local.Note == re.Note &&
			local.SpentAt.Equal(re.SpentAt) {
			return nil
		}

		now := s.now()
		local.CategoryID = re.CategoryID
		local.Amount = re.Amount
		local.Note = re.Note
		local.SpentAt = re.SpentAt
		local.LastSyncAt = &now
		local.UpdatedAt = now
		if err := s.storages.Expenses.Overwrite(ctx, local); err != nil {
			return fmt.Errorf("overwrite expense %d from server: %w", local.LocalID, err)
		}
		return nil
	}

	if local.SyncStatus == models.StatusConflict {
		return nil
	}
	return s.storages.Expenses.UpdateSyncStatus(ctx, local.LocalID, models.StatusConflict)
}

func (s *clientSyncService) purgeExpenseTombstones(ctx context.Context, userID int64, present map[int64]struct{}) error {
	log := logger.FromContext(ctx)

	locals, err := s.storages.Expenses.GetAllForUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("list local expenses for tombstone check: %w", err)
	}

	for _, local := range locals {
		if local.SyncStatus != models.StatusSynced || local.ServerID == nil {
			continue
		}
		if _, ok := present[*local.ServerID]; ok {
			continue
		}

		log.Info().
			Str("func", "clientSyncService.purgeExpenseTombstones").
			Int64("user_id", userID).
			Int64("server_id", *local.ServerID).
			Msg("expense deleted on server, removing local copy")
		if err = s.storages.Expenses.DeleteByID(ctx, local.LocalID); err != nil {
			return fmt.Errorf("purge expense %d: %w", local.LocalID, err)
		}
	}

	return nil
}

// ── mapping ──────────────────────────────────────────────────────────────────

func remoteCategory(c models.Category) models.RemoteCategory {
	rc := models.RemoteCategory{
		Name:      c.Name,
		Kind:      c.Kind,
		UpdatedAt: c.UpdatedAt,
	}
	if c.ServerID != nil {
		rc.ID = *c.ServerID
	}
	return rc
}

func remoteExpense(e models.Expense) models.RemoteExpense {
	re := models.RemoteExpense{
		CategoryID: e.CategoryID,
		Amount:     e.Amount,
		Note:       e.Note,
		SpentAt:    e.SpentAt,
		UpdatedAt:  e.UpdatedAt,
	}
	if e.ServerID != nil {
		re.ID = *e.ServerID
	}
	return re
}
