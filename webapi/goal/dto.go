package goal

import "time"

// CreateGoalRequest is the request body for creating a goal.
type CreateGoalRequest struct {
	Name      string     `json:"name" validate:"required,min=1,max=128"`
	Target    float64    `json:"target" validate:"required,gt=0"`
	Currency  string     `json:"currency" validate:"omitempty,len=3,uppercase,alpha"`
	AccountID string     `json:"account_id" validate:"omitempty,uuid4"`
	Deadline  *time.Time `json:"deadline"`
}

// UpdateGoalRequest is the request body for a partial goal update. Current
// amount is not accepted here.
type UpdateGoalRequest struct {
	Name      *string    `json:"name" validate:"omitempty,min=1,max=128"`
	Target    *float64   `json:"target" validate:"omitempty,gt=0"`
	Deadline  *time.Time `json:"deadline"`
	Status    *string    `json:"status" validate:"omitempty,oneof=active completed canceled"`
	AccountID *string    `json:"account_id" validate:"omitempty,uuid4"`
}

// AmountRequest carries a bare positive amount (funding and progress
// reduction).
type AmountRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}
