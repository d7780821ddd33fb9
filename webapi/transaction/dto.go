package transaction

// CreateTransactionRequest is the request body for recording a user-level
// transaction.
type CreateTransactionRequest struct {
	AccountID            string  `json:"account_id" validate:"required,uuid4"`
	Amount               float64 `json:"amount" validate:"required,gt=0"`
	Type                 string  `json:"type" validate:"required,oneof=income expense transfer"`
	Category             string  `json:"category" validate:"omitempty,max=64"`
	Source               string  `json:"source" validate:"omitempty,max=128"`
	CounterpartAccountID string  `json:"counterpart_account_id" validate:"omitempty,uuid4"`
}
