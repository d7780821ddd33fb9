package repository

import "context"

// UnitOfWork is the transaction boundary for multi-document mutations.
//
// Do executes fn inside a single database transaction; every repository
// obtained from the UnitOfWork passed to fn shares that transaction, so a
// balance write and its transaction record commit or roll back together.
// This is the atomicity upgrade over the original read-then-write flow: a
// mid-sequence failure leaves no partial balance change.
type UnitOfWork interface {
	// Do executes fn within a transaction boundary. If fn returns an error,
	// the transaction is rolled back and the error is returned.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	AccountRepository() (AccountRepository, error)
	TransactionRepository() (TransactionRepository, error)
	GoalRepository() (GoalRepository, error)
	MovementRepository() (MovementRepository, error)
	UserRepository() (UserRepository, error)
}
