// Package dto defines the data-transfer shapes that cross the service
// boundary: create/update inputs and read-optimized outputs. Amounts cross
// this boundary in main currency units (float64); everything behind it is
// smallest-unit integers.
package dto

import (
	"time"

	"github.com/google/uuid"
)

// AccountCreate is the input for creating an account.
type AccountCreate struct {
	OwnerID     uuid.UUID
	Name        string
	Type        string
	Balance     float64 // initial balance, may be negative for credit accounts
	Currency    string
	Description string
	IsDefault   bool
}

// AccountUpdate is the partial-update input for an account. Balance is not
// here on purpose; it only moves through ledger operations.
type AccountUpdate struct {
	Name        *string
	Type        *string
	Description *string
	IsDefault   *bool
}

// AccountRead is the read-optimized account shape for API responses.
type AccountRead struct {
	ID            uuid.UUID  `json:"id"`
	OwnerID       uuid.UUID  `json:"owner_id"`
	Name          string     `json:"name"`
	Type          string     `json:"type"`
	Balance       float64    `json:"balance"`
	Currency      string     `json:"currency"`
	Description   string     `json:"description,omitempty"`
	IsDefault     bool       `json:"is_default"`
	GoalID        *uuid.UUID `json:"goal_id,omitempty"`
	IsGoalAccount bool       `json:"is_goal_account"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
