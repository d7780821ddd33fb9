// Package repository defines the data-access contracts the services depend
// on. Every query is scoped by owner id; an entity belonging to a different
// owner is indistinguishable from a missing one.
package repository

import (
	"context"
	"time"

	"github.com/fintrackd/fintrack/pkg/domain/account"
	"github.com/fintrackd/fintrack/pkg/domain/goal"
	"github.com/fintrackd/fintrack/pkg/domain/movement"
	"github.com/fintrackd/fintrack/pkg/domain/user"
	"github.com/google/uuid"
)

// AccountRepository defines account data access.
type AccountRepository interface {
	Get(ctx context.Context, ownerID, id uuid.UUID) (*account.Account, error)
	// GetForUpdate reads the account with a row-level lock. Only meaningful
	// inside a UnitOfWork transaction; it is what closes the read-modify-write
	// race on balances.
	GetForUpdate(ctx context.Context, ownerID, id uuid.UUID) (*account.Account, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]*account.Account, error)
	Create(ctx context.Context, a *account.Account) error
	Update(ctx context.Context, a *account.Account) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// TransactionRepository defines transaction data access for both the
// account-scoped sub-ledger and the user-level ledger.
type TransactionRepository interface {
	Create(ctx context.Context, t *account.Transaction) error
	Get(ctx context.Context, ownerID, id uuid.UUID) (*account.Transaction, error)
	// ListByOwner returns the user-level ledger, newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]*account.Transaction, error)
	// ListByAccount returns the account-scoped sub-ledger, newest first.
	ListByAccount(ctx context.Context, ownerID, accountID uuid.UUID, limit int) ([]*account.Transaction, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// GoalRepository defines goal data access.
type GoalRepository interface {
	Get(ctx context.Context, ownerID, id uuid.UUID) (*goal.Goal, error)
	// GetForUpdate reads the goal with a row-level lock inside a UnitOfWork.
	GetForUpdate(ctx context.Context, ownerID, id uuid.UUID) (*goal.Goal, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]*goal.Goal, error)
	Create(ctx context.Context, g *goal.Goal) error
	Update(ctx context.Context, g *goal.Goal) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	// DetachAccount clears the funding-account link on every goal that
	// references the given account. Used when the account is deleted.
	DetachAccount(ctx context.Context, ownerID, accountID uuid.UUID) error
}

// MovementRepository defines audit-trail data access. There is deliberately
// no Update: movements are append-only. Delete exists for administrative
// cleanup only and is never called by ledger operations.
type MovementRepository interface {
	Create(ctx context.Context, m *movement.Movement) error
	Get(ctx context.Context, ownerID, id uuid.UUID) (*movement.Movement, error)
	// List returns movements newest first. A nil cursor starts at the newest
	// entry; otherwise entries strictly older than the cursor are returned.
	List(ctx context.Context, ownerID uuid.UUID, limit int, cursor *movement.Cursor) ([]*movement.Movement, error)
	ListByType(ctx context.Context, ownerID uuid.UUID, t movement.Type, limit int) ([]*movement.Movement, error)
	ListByDateRange(ctx context.Context, ownerID uuid.UUID, start, end time.Time, limit int) ([]*movement.Movement, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// UserRepository defines user data access for the identity adapter.
type UserRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	Create(ctx context.Context, u *user.User) error
}
