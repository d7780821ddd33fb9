package account

import (
	"time"

	"github.com/fintrackd/fintrack/pkg/money"
	"github.com/google/uuid"
)

// TransactionType classifies a transaction. The account-scoped sub-ledger
// uses debit/credit; the user-facing ledger uses income/expense/transfer.
type TransactionType string

// Transaction types.
const (
	TransactionIncome   TransactionType = "income"
	TransactionExpense  TransactionType = "expense"
	TransactionTransfer TransactionType = "transfer"
	TransactionDebit    TransactionType = "debit"
	TransactionCredit   TransactionType = "credit"
)

// IsValid reports whether the type is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionIncome, TransactionExpense, TransactionTransfer,
		TransactionDebit, TransactionCredit:
		return true
	}
	return false
}

// BalanceEffect returns +1 for types that increase the named account's
// balance and -1 for types that decrease it.
func (t TransactionType) BalanceEffect() int64 {
	switch t {
	case TransactionIncome, TransactionCredit:
		return 1
	default:
		return -1
	}
}

// Category is the closed set of transaction categories.
type Category string

// Transaction categories.
const (
	CategoryGeneral          Category = "general"
	CategorySalary           Category = "salary"
	CategoryGroceries        Category = "groceries"
	CategoryRent             Category = "rent"
	CategoryUtilities        Category = "utilities"
	CategoryTransport        Category = "transport"
	CategoryHealth           Category = "health"
	CategoryEntertainment    Category = "entertainment"
	CategoryTransfer         Category = "transfer"
	CategoryGoalContribution Category = "goal_contribution"
	CategoryOther            Category = "other"
)

// IsValid reports whether the category is in the closed set.
func (c Category) IsValid() bool {
	switch c {
	case CategoryGeneral, CategorySalary, CategoryGroceries, CategoryRent,
		CategoryUtilities, CategoryTransport, CategoryHealth,
		CategoryEntertainment, CategoryTransfer, CategoryGoalContribution,
		CategoryOther:
		return true
	}
	return false
}

// Transaction records a single balance-affecting entry against an account.
//
// Invariants:
//   - Amount is always positive; Type carries the direction.
//   - Balance is a snapshot of the account balance after the entry applied.
type Transaction struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	AccountID uuid.UUID
	Amount    money.Money
	Balance   money.Money // account balance snapshot after this entry
	Type      TransactionType
	Category  Category
	Source    string // free-form source/description

	// CounterpartAccountID is set on transfer legs and names the account on
	// the other side.
	CounterpartAccountID *uuid.UUID

	CreatedAt time.Time
}

// NewTransaction validates and creates a transaction entry.
func NewTransaction(
	ownerID, accountID uuid.UUID,
	amount money.Money,
	balanceAfter money.Money,
	txType TransactionType,
	category Category,
	source string,
) (*Transaction, error) {
	if !amount.IsPositive() {
		return nil, ErrAmountMustBePositive
	}
	if !txType.IsValid() {
		return nil, ErrInvalidType
	}
	if category == "" {
		category = CategoryGeneral
	}
	if !category.IsValid() {
		return nil, ErrInvalidType
	}
	return &Transaction{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		AccountID: accountID,
		Amount:    amount,
		Balance:   balanceAfter,
		Type:      txType,
		Category:  category,
		Source:    source,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// NewTransactionFromData hydrates a Transaction from persisted data without
// re-running invariants. Repository use only.
func NewTransactionFromData(
	id, ownerID, accountID uuid.UUID,
	amount, balance money.Money,
	txType TransactionType,
	category Category,
	source string,
	counterpart *uuid.UUID,
	created time.Time,
) *Transaction {
	return &Transaction{
		ID:                   id,
		OwnerID:              ownerID,
		AccountID:            accountID,
		Amount:               amount,
		Balance:              balance,
		Type:                 txType,
		Category:             category,
		Source:               source,
		CounterpartAccountID: counterpart,
		CreatedAt:            created,
	}
}
