// Package account defines the Account aggregate and the account-scoped
// Transaction entity.
//
// An account's balance is mutated only through ledger operations (account
// transactions, transfers, goal funding). The generic update path works on
// Patch, which deliberately has no balance field.
package account

import (
	"errors"
	"time"

	"github.com/fintrackd/fintrack/pkg/currency"
	"github.com/fintrackd/fintrack/pkg/money"
	"github.com/google/uuid"
)

var (
	// ErrAccountNotFound is returned when an account cannot be found for the calling owner.
	ErrAccountNotFound = errors.New("account not found")
	// ErrTransactionNotFound is returned when a transaction cannot be found for the calling owner.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrAmountMustBePositive is returned when a transaction amount is not positive.
	ErrAmountMustBePositive = errors.New("transaction amount must be positive")
	// ErrInsufficientFunds is returned when an account has insufficient funds
	// for a debit, transfer, or goal contribution.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrSameAccountTransfer is returned when a transfer names the same account on both sides.
	ErrSameAccountTransfer = errors.New("cannot transfer to the same account")
	// ErrNotOwner is returned when an account does not belong to the calling owner.
	ErrNotOwner = errors.New("not account owner")
	// ErrCurrencyMismatch is returned when an operation mixes currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")
	// ErrNilAccount is returned when a nil account reaches a transfer validation.
	ErrNilAccount = errors.New("nil account")
	// ErrInvalidType is returned for an unknown account type.
	ErrInvalidType = errors.New("invalid account type")
)

// Type classifies an account.
type Type string

// Supported account types.
const (
	TypeChecking   Type = "checking"
	TypeSavings    Type = "savings"
	TypeInvestment Type = "investment"
	TypeCredit     Type = "credit"
	TypeOther      Type = "other"
)

// IsValid reports whether the type is one of the supported account types.
func (t Type) IsValid() bool {
	switch t {
	case TypeChecking, TypeSavings, TypeInvestment, TypeCredit, TypeOther:
		return true
	}
	return false
}

// Account represents a user's financial account.
//
// Invariants:
//   - An account always has an owner (OwnerID).
//   - Balance is a Money value object; its currency never changes after creation.
//   - Balance changes flow through ApplyCredit/ApplyDebit only.
type Account struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Type        Type
	Balance     money.Money
	Description string
	IsDefault   bool

	// GoalID is set when a goal uses this account as its funding source.
	// Deleting the account detaches the goal, not the other way round.
	GoalID        *uuid.UUID
	IsGoalAccount bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Builder provides a fluent constructor for Account, mirroring how entities
// are hydrated from the store and how new ones are validated before insert.
type Builder struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	name        string
	accType     Type
	balance     int64
	curr        currency.Code
	description string
	isDefault   bool
	goalID      *uuid.UUID
	isGoal      bool
	createdAt   time.Time
	updatedAt   time.Time
}

// New creates a Builder with a fresh ID, checking type, and the default currency.
func New() *Builder {
	now := time.Now().UTC()
	return &Builder{
		id:        uuid.New(),
		accType:   TypeChecking,
		curr:      currency.DefaultCode,
		createdAt: now,
		updatedAt: now,
	}
}

// WithID sets the account ID. Used when hydrating from the store.
func (b *Builder) WithID(id uuid.UUID) *Builder { b.id = id; return b }

// WithOwner sets the owning user. Mandatory.
func (b *Builder) WithOwner(ownerID uuid.UUID) *Builder { b.ownerID = ownerID; return b }

// WithName sets the display name. Mandatory.
func (b *Builder) WithName(name string) *Builder { b.name = name; return b }

// WithType sets the account type.
func (b *Builder) WithType(t Type) *Builder { b.accType = t; return b }

// WithBalance sets the balance in the smallest currency unit. A negative
// initial balance is legal (credit accounts may start in the red).
func (b *Builder) WithBalance(smallestUnit int64) *Builder { b.balance = smallestUnit; return b }

// WithCurrency sets the account currency.
func (b *Builder) WithCurrency(c currency.Code) *Builder { b.curr = c; return b }

// WithDescription sets the free-form description.
func (b *Builder) WithDescription(d string) *Builder { b.description = d; return b }

// WithDefault marks the account as the owner's default.
func (b *Builder) WithDefault(isDefault bool) *Builder { b.isDefault = isDefault; return b }

// WithGoalLink records the back-reference to a goal funded from this account.
func (b *Builder) WithGoalLink(goalID *uuid.UUID, isGoalAccount bool) *Builder {
	b.goalID = goalID
	b.isGoal = isGoalAccount
	return b
}

// WithCreatedAt sets the creation timestamp. Hydration only.
func (b *Builder) WithCreatedAt(t time.Time) *Builder { b.createdAt = t; return b }

// WithUpdatedAt sets the last-updated timestamp. Hydration only.
func (b *Builder) WithUpdatedAt(t time.Time) *Builder { b.updatedAt = t; return b }

// Build validates invariants and returns the Account.
func (b *Builder) Build() (*Account, error) {
	if b.ownerID == uuid.Nil {
		return nil, errors.New("owner is required")
	}
	if b.name == "" {
		return nil, errors.New("name is required")
	}
	if !b.accType.IsValid() {
		return nil, ErrInvalidType
	}
	bal, err := money.NewFromSmallestUnit(b.balance, b.curr)
	if err != nil {
		return nil, err
	}
	return &Account{
		ID:            b.id,
		OwnerID:       b.ownerID,
		Name:          b.name,
		Type:          b.accType,
		Balance:       bal,
		Description:   b.description,
		IsDefault:     b.isDefault,
		GoalID:        b.goalID,
		IsGoalAccount: b.isGoal,
		CreatedAt:     b.createdAt,
		UpdatedAt:     b.updatedAt,
	}, nil
}

// Currency returns the account's currency code.
func (a *Account) Currency() currency.Code {
	return a.Balance.Currency()
}

// validateOwner checks the account belongs to the calling owner.
func (a *Account) validateOwner(ownerID uuid.UUID) error {
	if a.OwnerID != ownerID {
		return ErrNotOwner
	}
	return nil
}

// ValidateEntry checks the invariants common to every ledger entry:
// ownership, a positive amount, and a matching currency. Debits through the
// account sub-ledger may overdraw (credit accounts live in the red), so the
// sufficient-funds check is separate.
func (a *Account) ValidateEntry(ownerID uuid.UUID, amount money.Money) error {
	if err := a.validateOwner(ownerID); err != nil {
		return err
	}
	if !amount.IsPositive() {
		return ErrAmountMustBePositive
	}
	if !a.Balance.IsSameCurrency(amount) {
		return ErrCurrencyMismatch
	}
	return nil
}

// ValidateDebit checks the invariants for removing funds where overdrawing
// is not allowed (transfers, goal contributions): everything ValidateEntry
// checks plus sufficient balance.
func (a *Account) ValidateDebit(ownerID uuid.UUID, amount money.Money) error {
	if err := a.ValidateEntry(ownerID, amount); err != nil {
		return err
	}
	less, err := a.Balance.LessThan(amount)
	if err != nil {
		return err
	}
	if less {
		return ErrInsufficientFunds
	}
	return nil
}

// ValidateTransfer ensures a funds transfer from this account to dest is valid.
// The insufficient-funds check happens here, before any write.
func (a *Account) ValidateTransfer(ownerID uuid.UUID, dest *Account, amount money.Money) error {
	if a == nil || dest == nil {
		return ErrNilAccount
	}
	if a.ID == dest.ID {
		return ErrSameAccountTransfer
	}
	if !amount.IsPositive() {
		return ErrAmountMustBePositive
	}
	if !dest.Balance.IsSameCurrency(amount) {
		return ErrCurrencyMismatch
	}
	return a.ValidateDebit(ownerID, amount)
}

// ApplyCredit adds amount to the balance. Callers must have validated first.
func (a *Account) ApplyCredit(amount money.Money) error {
	newBal, err := a.Balance.Add(amount)
	if err != nil {
		return err
	}
	a.Balance = newBal
	a.UpdatedAt = time.Now().UTC()
	return nil
}

// ApplyDebit removes amount from the balance. Callers must have validated first.
func (a *Account) ApplyDebit(amount money.Money) error {
	newBal, err := a.Balance.Subtract(amount)
	if err != nil {
		return err
	}
	a.Balance = newBal
	a.UpdatedAt = time.Now().UTC()
	return nil
}

// DetachGoal clears the goal back-reference. Used when the linked goal or the
// account itself is deleted.
func (a *Account) DetachGoal() {
	a.GoalID = nil
	a.IsGoalAccount = false
	a.UpdatedAt = time.Now().UTC()
}

// Patch lists the fields that are legally mutable through the generic account
// update path. Balance is intentionally absent: it is only reachable via the
// dedicated balance-mutating operations.
type Patch struct {
	Name        *string
	Type        *Type
	Description *string
	IsDefault   *bool
}

// Apply merges the patch into the account. Unknown account types are rejected.
func (p Patch) Apply(a *Account) error {
	if p.Name != nil {
		if *p.Name == "" {
			return errors.New("name cannot be empty")
		}
		a.Name = *p.Name
	}
	if p.Type != nil {
		if !p.Type.IsValid() {
			return ErrInvalidType
		}
		a.Type = *p.Type
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.IsDefault != nil {
		a.IsDefault = *p.IsDefault
	}
	a.UpdatedAt = time.Now().UTC()
	return nil
}
