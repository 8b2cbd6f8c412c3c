// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a single spending record. CategoryID references a Category by
// its LocalID, which may be a negative provisional id until the category has
// been accepted by the server.
type Expense struct {
	LocalID    int64           `json:"local_id"`
	ServerID   *int64          `json:"server_id,omitempty"`
	UserID     int64           `json:"user_id"`
	CategoryID int64           `json:"category_id"`
	Amount     decimal.Decimal `json:"amount"`
	Note       string          `json:"note"`
	SpentAt    time.Time       `json:"spent_at"`

	SyncStatus SyncStatus `json:"sync_status"`
	NeedsSync  bool       `json:"needs_sync"`
	LastSyncAt *time.Time `json:"last_sync_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
