package account

// CreateAccountRequest is the request body for creating an account.
type CreateAccountRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=128"`
	Type        string  `json:"type" validate:"omitempty,oneof=checking savings investment credit other"`
	Balance     float64 `json:"balance"`
	Currency    string  `json:"currency" validate:"omitempty,len=3,uppercase,alpha"`
	Description string  `json:"description" validate:"omitempty,max=512"`
	IsDefault   bool    `json:"is_default"`
}

// UpdateAccountRequest is the request body for a partial account update.
// Balance is not accepted here.
type UpdateAccountRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=128"`
	Type        *string `json:"type" validate:"omitempty,oneof=checking savings investment credit other"`
	Description *string `json:"description" validate:"omitempty,max=512"`
	IsDefault   *bool   `json:"is_default"`
}

// EntryRequest is the request body for a debit or credit sub-ledger entry.
type EntryRequest struct {
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Type     string  `json:"type" validate:"required,oneof=debit credit"`
	Category string  `json:"category" validate:"omitempty,max=64"`
	Source   string  `json:"source" validate:"omitempty,max=128"`
}
