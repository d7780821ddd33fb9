// Package movement defines the append-only audit record written after every
// ledger mutation.
//
// Movements are never updated or deleted by any core operation; they are the
// audit-of-record and must reflect attempted intent even when downstream
// steps partially failed.
package movement

import (
	"errors"
	"time"

	"github.com/fintrackd/fintrack/pkg/currency"
	"github.com/fintrackd/fintrack/pkg/money"
	"github.com/google/uuid"
)

var (
	// ErrInvalidType is returned when a movement type is outside the closed set.
	ErrInvalidType = errors.New("invalid movement type")
	// ErrDescriptionRequired is returned when a movement has no description.
	ErrDescriptionRequired = errors.New("movement description is required")
	// ErrMovementNotFound is returned when a movement cannot be found for the calling owner.
	ErrMovementNotFound = errors.New("movement not found")
)

// Type is the closed set of auditable mutations.
type Type string

// Movement types.
const (
	AccountCreated     Type = "account_created"
	AccountUpdated     Type = "account_updated"
	AccountDeleted     Type = "account_deleted"
	TransactionCreated Type = "transaction_created"
	TransactionUpdated Type = "transaction_updated"
	TransactionDeleted Type = "transaction_deleted"
	TransferCreated    Type = "transfer_created"
	GoalCreated        Type = "goal_created"
	GoalUpdated        Type = "goal_updated"
	GoalDeleted        Type = "goal_deleted"
	GoalFundsAdded     Type = "goal_funds_added"
	RecurringCreated   Type = "recurring_created"
	RecurringUpdated   Type = "recurring_updated"
	RecurringDeleted   Type = "recurring_deleted"
)

// IsValid reports whether the type is in the closed set.
func (t Type) IsValid() bool {
	switch t {
	case AccountCreated, AccountUpdated, AccountDeleted,
		TransactionCreated, TransactionUpdated, TransactionDeleted,
		TransferCreated,
		GoalCreated, GoalUpdated, GoalDeleted, GoalFundsAdded,
		RecurringCreated, RecurringUpdated, RecurringDeleted:
		return true
	}
	return false
}

// EntityKind names the kind of entity a movement refers to.
type EntityKind string

// Entity kinds.
const (
	EntityAccount     EntityKind = "account"
	EntityTransaction EntityKind = "transaction"
	EntityGoal        EntityKind = "goal"
)

// Movement is one immutable audit-trail entry.
type Movement struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Type        Type
	Description string
	Timestamp   time.Time

	// Optional reference to the entity the mutation touched. The entity may
	// be deleted later; the reference is kept as history regardless.
	EntityID   *uuid.UUID
	EntityKind EntityKind

	// Optional monetary detail for balance-affecting movements.
	Amount   *money.Money
	Currency currency.Code

	// Optional account references for transfers and goal funding.
	FromAccountID *uuid.UUID
	ToAccountID   *uuid.UUID

	// Metadata carries free-form context (account names, goal names, ...).
	Metadata map[string]string
}

// New validates required fields and creates a movement stamped with the
// current time.
func New(ownerID uuid.UUID, t Type, description string) (*Movement, error) {
	if ownerID == uuid.Nil {
		return nil, errors.New("owner is required")
	}
	if !t.IsValid() {
		return nil, ErrInvalidType
	}
	if description == "" {
		return nil, ErrDescriptionRequired
	}
	return &Movement{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Type:        t,
		Description: description,
		Timestamp:   time.Now().UTC(),
		Metadata:    map[string]string{},
	}, nil
}

// WithEntity attaches the entity reference.
func (m *Movement) WithEntity(kind EntityKind, id uuid.UUID) *Movement {
	m.EntityKind = kind
	m.EntityID = &id
	return m
}

// WithAmount attaches the monetary detail.
func (m *Movement) WithAmount(amount money.Money) *Movement {
	m.Amount = &amount
	m.Currency = amount.Currency()
	return m
}

// WithAccounts attaches from/to account references.
func (m *Movement) WithAccounts(from, to *uuid.UUID) *Movement {
	m.FromAccountID = from
	m.ToAccountID = to
	return m
}

// WithMeta adds one metadata key/value pair.
func (m *Movement) WithMeta(key, value string) *Movement {
	if m.Metadata == nil {
		m.Metadata = map[string]string{}
	}
	m.Metadata[key] = value
	return m
}

// Validate re-checks the required fields. Repositories call this before a
// write so a malformed record is never partially persisted.
func (m *Movement) Validate() error {
	if m.OwnerID == uuid.Nil {
		return errors.New("owner is required")
	}
	if !m.Type.IsValid() {
		return ErrInvalidType
	}
	if m.Description == "" {
		return ErrDescriptionRequired
	}
	return nil
}
