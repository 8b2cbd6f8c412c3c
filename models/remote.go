package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RemoteCategory is the wire shape of a category as served by the backend.
type RemoteCategory struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	Kind      CategoryKind `json:"kind"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// RemoteExpense is the wire shape of an expense as served by the backend.
// CategoryID is always a server-side category id.
type RemoteExpense struct {
	ID         int64           `json:"id"`
	CategoryID int64           `json:"category_id"`
	Amount     decimal.Decimal `json:"amount"`
	Note       string          `json:"note"`
	SpentAt    time.Time       `json:"spent_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// CreatedResponse is returned by the backend on a successful resource create.
type CreatedResponse struct {
	ID int64 `json:"id"`
}
