package dto

import (
	"time"

	"github.com/google/uuid"
)

// GoalCreate is the input for creating a savings goal.
type GoalCreate struct {
	OwnerID   uuid.UUID
	Name      string
	Target    float64
	Currency  string
	AccountID *uuid.UUID
	Deadline  *time.Time
}

// GoalUpdate is the partial-update input for a goal. Current amount is not
// here; it only moves through funding.
type GoalUpdate struct {
	Name      *string
	Target    *float64
	Deadline  *time.Time
	Status    *string
	AccountID *uuid.UUID
}

// GoalRead is the read-optimized goal shape.
type GoalRead struct {
	ID        uuid.UUID  `json:"id"`
	OwnerID   uuid.UUID  `json:"owner_id"`
	Name      string     `json:"name"`
	Target    float64    `json:"target"`
	Current   float64    `json:"current"`
	Currency  string     `json:"currency"`
	Status    string     `json:"status"`
	AccountID *uuid.UUID `json:"account_id,omitempty"`
	Deadline  *time.Time `json:"deadline,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// FundingResult reports the outcome of a goal funding operation.
type FundingResult struct {
	GoalID         uuid.UUID `json:"goal_id"`
	Completed      bool      `json:"completed"`
	AccountBalance float64   `json:"account_balance"`
	GoalCurrent    float64   `json:"goal_current"`
	Currency       string    `json:"currency"`
}
