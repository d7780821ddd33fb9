package repository

import (
	"context"
	"fmt"

	"github.com/fintrackd/fintrack/pkg/domain"
	"github.com/fintrackd/fintrack/pkg/repository"
	"gorm.io/gorm"
)

// UoW provides the transaction boundary and repository access in one
// abstraction. Every repository obtained inside Do is bound to the same
// database transaction, so multi-document mutations (balance + transaction
// record, both transfer legs, account + goal) commit or roll back together.
type UoW struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewUoW creates a UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// session returns the active transaction if inside Do, the base session otherwise.
func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// Do runs fn in a transaction boundary. A rollback that itself fails is
// reported as a PartialFailureError so the caller knows the stored state
// needs manual verification rather than a blind retry.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	if u.tx != nil {
		// Already inside a transaction; nested Do joins it.
		return fn(u)
	}

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("%w: begin transaction: %v", domain.ErrStoreUnavailable, tx.Error)
	}

	txnUow := &UoW{db: u.db, tx: tx}
	if err := fn(txnUow); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return &domain.PartialFailureError{
				Op:        "unit of work",
				Step:      "rollback",
				Committed: "unknown; transaction state could not be reverted",
				Err:       fmt.Errorf("%v (rollback: %v)", err, rbErr),
			}
		}
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("%w: commit: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

// AccountRepository returns an AccountRepository bound to the current session.
func (u *UoW) AccountRepository() (repository.AccountRepository, error) {
	return NewAccountRepository(u.session()), nil
}

// TransactionRepository returns a TransactionRepository bound to the current session.
func (u *UoW) TransactionRepository() (repository.TransactionRepository, error) {
	return NewTransactionRepository(u.session()), nil
}

// GoalRepository returns a GoalRepository bound to the current session.
func (u *UoW) GoalRepository() (repository.GoalRepository, error) {
	return NewGoalRepository(u.session()), nil
}

// MovementRepository returns a MovementRepository bound to the current session.
func (u *UoW) MovementRepository() (repository.MovementRepository, error) {
	return NewMovementRepository(u.session()), nil
}

// UserRepository returns a UserRepository bound to the current session.
func (u *UoW) UserRepository() (repository.UserRepository, error) {
	return NewUserRepository(u.session()), nil
}
