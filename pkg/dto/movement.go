package dto

import (
	"time"

	"github.com/google/uuid"
)

// MovementRead is the read-optimized audit entry shape.
type MovementRead struct {
	ID            uuid.UUID         `json:"id"`
	OwnerID       uuid.UUID         `json:"owner_id"`
	Type          string            `json:"type"`
	Description   string            `json:"description"`
	Timestamp     time.Time         `json:"timestamp"`
	EntityID      *uuid.UUID        `json:"entity_id,omitempty"`
	EntityKind    string            `json:"entity_kind,omitempty"`
	Amount        *float64          `json:"amount,omitempty"`
	Currency      string            `json:"currency,omitempty"`
	FromAccountID *uuid.UUID        `json:"from_account_id,omitempty"`
	ToAccountID   *uuid.UUID        `json:"to_account_id,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// MovementPage is one page of the audit trail, newest first, with the opaque
// cursor for the next (strictly older) page. An empty cursor means the trail
// is exhausted.
type MovementPage struct {
	Items      []MovementRead `json:"items"`
	NextCursor string         `json:"next_cursor,omitempty"`
}
