// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CategoryKind distinguishes spending categories from income categories.
type CategoryKind string

const (
	CategoryExpense CategoryKind = "expense"
	CategoryIncome  CategoryKind = "income"
)

// Category is a budget category. Categories created offline receive a
// negative provisional LocalID; once the server accepts the create, the row
// is re-keyed under the server-assigned id and every expense referencing the
// provisional id is rewritten.
type Category struct {
	LocalID  int64        `json:"local_id"`
	ServerID *int64       `json:"server_id,omitempty"`
	UserID   int64        `json:"user_id"`
	Name     string       `json:"name"`
	Kind     CategoryKind `json:"kind"`

	SyncStatus SyncStatus `json:"sync_status"`
	NeedsSync  bool       `json:"needs_sync"`
	LastSyncAt *time.Time `json:"last_sync_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Provisional reports whether the category still carries a locally-generated
// placeholder id, i.e. the server has never accepted it.
func (c Category) Provisional() bool {
	return c.LocalID < 0 || c.ServerID == nil
}
