// Package goal defines the savings Goal aggregate.
//
// A goal tracks a running current amount against a target. Completion is a
// one-way transition: once a goal is completed, later adjustments never flip
// it back to active automatically.
package goal

import (
	"errors"
	"time"

	"github.com/fintrackd/fintrack/pkg/currency"
	"github.com/fintrackd/fintrack/pkg/money"
	"github.com/google/uuid"
)

var (
	// ErrGoalNotFound is returned when a goal cannot be found for the calling owner.
	ErrGoalNotFound = errors.New("goal not found")
	// ErrNoLinkedAccount is returned when funding is requested for a goal with
	// no funding account.
	ErrNoLinkedAccount = errors.New("goal has no linked account")
	// ErrAmountMustBePositive is returned when a funding amount is not positive.
	ErrAmountMustBePositive = errors.New("funding amount must be positive")
	// ErrInvalidTarget is returned when a goal target is not positive.
	ErrInvalidTarget = errors.New("goal target must be positive")
)

// Status is the lifecycle state of a goal.
type Status string

// Goal statuses.
const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

// Goal represents a savings target tied to an optional funding account.
type Goal struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	Target    money.Money
	Current   money.Money
	Status    Status
	AccountID *uuid.UUID // funding source; nil when unlinked
	Deadline  *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Builder provides a fluent constructor for Goal.
type Builder struct {
	id        uuid.UUID
	ownerID   uuid.UUID
	name      string
	target    int64
	current   int64
	curr      currency.Code
	status    Status
	accountID *uuid.UUID
	deadline  *time.Time
	createdAt time.Time
	updatedAt time.Time
}

// New creates a Builder with a fresh ID, active status, and the default currency.
func New() *Builder {
	now := time.Now().UTC()
	return &Builder{
		id:        uuid.New(),
		curr:      currency.DefaultCode,
		status:    StatusActive,
		createdAt: now,
		updatedAt: now,
	}
}

// WithID sets the goal ID. Hydration only.
func (b *Builder) WithID(id uuid.UUID) *Builder { b.id = id; return b }

// WithOwner sets the owning user. Mandatory.
func (b *Builder) WithOwner(ownerID uuid.UUID) *Builder { b.ownerID = ownerID; return b }

// WithName sets the goal name. Mandatory.
func (b *Builder) WithName(name string) *Builder { b.name = name; return b }

// WithTarget sets the target amount in the smallest currency unit.
func (b *Builder) WithTarget(smallestUnit int64) *Builder { b.target = smallestUnit; return b }

// WithCurrent sets the current amount in the smallest currency unit. Hydration only.
func (b *Builder) WithCurrent(smallestUnit int64) *Builder { b.current = smallestUnit; return b }

// WithCurrency sets the goal currency.
func (b *Builder) WithCurrency(c currency.Code) *Builder { b.curr = c; return b }

// WithStatus sets the lifecycle status. Hydration only.
func (b *Builder) WithStatus(s Status) *Builder { b.status = s; return b }

// WithAccount links the funding account.
func (b *Builder) WithAccount(accountID *uuid.UUID) *Builder { b.accountID = accountID; return b }

// WithDeadline sets the optional deadline.
func (b *Builder) WithDeadline(t *time.Time) *Builder { b.deadline = t; return b }

// WithCreatedAt sets the creation timestamp. Hydration only.
func (b *Builder) WithCreatedAt(t time.Time) *Builder { b.createdAt = t; return b }

// WithUpdatedAt sets the last-updated timestamp. Hydration only.
func (b *Builder) WithUpdatedAt(t time.Time) *Builder { b.updatedAt = t; return b }

// Build validates invariants and returns the Goal.
func (b *Builder) Build() (*Goal, error) {
	if b.ownerID == uuid.Nil {
		return nil, errors.New("owner is required")
	}
	if b.name == "" {
		return nil, errors.New("name is required")
	}
	if b.target <= 0 {
		return nil, ErrInvalidTarget
	}
	target, err := money.NewFromSmallestUnit(b.target, b.curr)
	if err != nil {
		return nil, err
	}
	current, err := money.NewFromSmallestUnit(b.current, b.curr)
	if err != nil {
		return nil, err
	}
	switch b.status {
	case StatusActive, StatusCompleted, StatusCanceled:
	default:
		return nil, errors.New("invalid goal status")
	}
	return &Goal{
		ID:        b.id,
		OwnerID:   b.ownerID,
		Name:      b.name,
		Target:    target,
		Current:   current,
		Status:    b.status,
		AccountID: b.accountID,
		Deadline:  b.deadline,
		CreatedAt: b.createdAt,
		UpdatedAt: b.updatedAt,
	}, nil
}

// Currency returns the goal's currency code.
func (g *Goal) Currency() currency.Code {
	return g.Target.Currency()
}

// IsCompleted reports whether the goal has reached completed status.
func (g *Goal) IsCompleted() bool {
	return g.Status == StatusCompleted
}

// AddFunds increments the current amount and flips the status to completed
// when current reaches target. It reports whether this call caused the
// completion transition. Funding past the target keeps accumulating; a
// completed goal never reverts to active here.
func (g *Goal) AddFunds(amount money.Money) (completedNow bool, err error) {
	if !amount.IsPositive() {
		return false, ErrAmountMustBePositive
	}
	newCurrent, err := g.Current.Add(amount)
	if err != nil {
		return false, err
	}
	g.Current = newCurrent
	g.UpdatedAt = time.Now().UTC()

	if g.Status == StatusCompleted {
		return false, nil
	}
	reached, err := g.Current.LessThan(g.Target)
	if err != nil {
		return false, err
	}
	if !reached { // current >= target
		g.Status = StatusCompleted
		return true, nil
	}
	return false, nil
}

// ReduceProgress is the explicit progress-reduction path: it lowers the
// current amount (never below zero) without touching the status. A completed
// goal stays completed even when adjusted below its target.
func (g *Goal) ReduceProgress(amount money.Money) error {
	if !amount.IsPositive() {
		return ErrAmountMustBePositive
	}
	newCurrent, err := g.Current.Subtract(amount)
	if err != nil {
		return err
	}
	if newCurrent.IsNegative() {
		newCurrent = money.Zero(g.Currency())
	}
	g.Current = newCurrent
	g.UpdatedAt = time.Now().UTC()
	return nil
}

// DetachAccount clears the funding-account link. Used when the linked
// account is deleted; historical movements keep pointing at the old id.
func (g *Goal) DetachAccount() {
	g.AccountID = nil
	g.UpdatedAt = time.Now().UTC()
}

// Patch lists the fields mutable through the generic goal update path.
// Current amount is absent: it only moves through funding (and the explicit
// progress-reduction path, which is its own operation).
type Patch struct {
	Name      *string
	Target    *int64 // smallest currency unit
	Deadline  *time.Time
	Status    *Status
	AccountID *uuid.UUID
}

// Apply merges the patch into the goal.
func (p Patch) Apply(g *Goal) error {
	if p.Name != nil {
		if *p.Name == "" {
			return errors.New("name cannot be empty")
		}
		g.Name = *p.Name
	}
	if p.Target != nil {
		if *p.Target <= 0 {
			return ErrInvalidTarget
		}
		target, err := money.NewFromSmallestUnit(*p.Target, g.Currency())
		if err != nil {
			return err
		}
		g.Target = target
	}
	if p.Deadline != nil {
		g.Deadline = p.Deadline
	}
	if p.Status != nil {
		switch *p.Status {
		case StatusActive, StatusCompleted, StatusCanceled:
			g.Status = *p.Status
		default:
			return errors.New("invalid goal status")
		}
	}
	if p.AccountID != nil {
		g.AccountID = p.AccountID
	}
	g.UpdatedAt = time.Now().UTC()
	return nil
}
