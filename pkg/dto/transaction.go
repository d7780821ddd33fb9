package dto

import (
	"time"

	"github.com/google/uuid"
)

// TransactionCreate is the input for recording a user-level transaction
// (income, expense, or a transfer leg).
type TransactionCreate struct {
	OwnerID              uuid.UUID
	AccountID            uuid.UUID
	Amount               float64
	Currency             string
	Type                 string
	Category             string
	Source               string
	CounterpartAccountID *uuid.UUID
}

// AccountTransactionCreate is the input for the account-scoped sub-ledger
// (debit/credit entries).
type AccountTransactionCreate struct {
	OwnerID   uuid.UUID
	AccountID uuid.UUID
	Amount    float64
	Type      string // debit | credit
	Category  string
	Source    string
}

// TransactionRead is the read-optimized transaction shape.
type TransactionRead struct {
	ID                   uuid.UUID  `json:"id"`
	OwnerID              uuid.UUID  `json:"owner_id"`
	AccountID            uuid.UUID  `json:"account_id"`
	Amount               float64    `json:"amount"`
	Balance              float64    `json:"balance"`
	Currency             string     `json:"currency"`
	Type                 string     `json:"type"`
	Category             string     `json:"category"`
	Source               string     `json:"source,omitempty"`
	CounterpartAccountID *uuid.UUID `json:"counterpart_account_id,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
}

// TransferResult reports the outcome of a completed transfer.
type TransferResult struct {
	SourceAccountID uuid.UUID `json:"source_account_id"`
	DestAccountID   uuid.UUID `json:"dest_account_id"`
	Amount          float64   `json:"amount"`
	Currency        string    `json:"currency"`
	SourceBalance   float64   `json:"source_balance"`
	DestBalance     float64   `json:"dest_balance"`
}
