// Package ledger implements the user-level Transaction Ledger: the
// income/expense/transfer view used for reporting, as opposed to the
// account-scoped debit/credit sub-ledger.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fintrackd/fintrack/pkg/domain"
	accountdomain "github.com/fintrackd/fintrack/pkg/domain/account"
	"github.com/fintrackd/fintrack/pkg/domain/movement"
	"github.com/fintrackd/fintrack/pkg/dto"
	"github.com/fintrackd/fintrack/pkg/mapper"
	"github.com/fintrackd/fintrack/pkg/money"
	"github.com/fintrackd/fintrack/pkg/repository"
	accountsvc "github.com/fintrackd/fintrack/pkg/service/account"
	"github.com/fintrackd/fintrack/pkg/service/audit"
	"github.com/google/uuid"
)

// Service provides user-level transaction operations.
type Service struct {
	uow      repository.UnitOfWork
	recorder *audit.Recorder
	accounts *accountsvc.ListCache
	logger   *slog.Logger
}

// NewService creates the ledger service.
func NewService(uow repository.UnitOfWork, recorder *audit.Recorder, accounts *accountsvc.ListCache, logger *slog.Logger) *Service {
	return &Service{uow: uow, recorder: recorder, accounts: accounts, logger: logger}
}

// AddTransaction records an income, expense, or transfer-leg transaction and
// applies its signed effect to the named account's balance. Amount and
// balance move together in one unit of work.
func (s *Service) AddTransaction(ctx context.Context, create dto.TransactionCreate) (*dto.TransactionRead, error) {
	log := s.logger.With("ownerID", create.OwnerID, "accountID", create.AccountID, "type", create.Type)

	txType := accountdomain.TransactionType(create.Type)
	switch txType {
	case accountdomain.TransactionIncome, accountdomain.TransactionExpense, accountdomain.TransactionTransfer:
	default:
		return nil, fmt.Errorf("%w: ledger transactions must be income, expense, or transfer", domain.ErrValidation)
	}

	var tx *accountdomain.Transaction
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accRepo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		txRepo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}

		a, err := accRepo.GetForUpdate(ctx, create.OwnerID, create.AccountID)
		if err != nil {
			return err
		}
		amount, err := money.New(create.Amount, a.Currency())
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}
		if err = a.ValidateEntry(create.OwnerID, amount); err != nil {
			return err
		}

		if txType.BalanceEffect() > 0 {
			err = a.ApplyCredit(amount)
		} else {
			err = a.ApplyDebit(amount)
		}
		if err != nil {
			return err
		}

		tx, err = accountdomain.NewTransaction(
			create.OwnerID, create.AccountID,
			amount, a.Balance,
			txType,
			accountdomain.Category(create.Category),
			create.Source,
		)
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}
		tx.CounterpartAccountID = create.CounterpartAccountID
		if err = txRepo.Create(ctx, tx); err != nil {
			return err
		}
		return accRepo.Update(ctx, a)
	})
	if err != nil {
		log.Error("add transaction failed", "error", err)
		return nil, err
	}
	s.accounts.Invalidate(create.OwnerID)

	if m, err := movement.New(create.OwnerID, movement.TransactionCreated,
		fmt.Sprintf("%s of %s", txType, tx.Amount)); err == nil {
		m.WithEntity(movement.EntityTransaction, tx.ID).
			WithAmount(tx.Amount).
			WithAccounts(&create.AccountID, nil).
			WithMeta("source", create.Source)
		s.recorder.Record(ctx, m)
	}

	log.Info("transaction recorded", "transactionID", tx.ID)
	return mapper.TransactionToRead(tx), nil
}

// GetTransactions returns the owner's user-level ledger, newest first.
func (s *Service) GetTransactions(ctx context.Context, ownerID uuid.UUID, limit int) ([]dto.TransactionRead, error) {
	repo, err := s.uow.TransactionRepository()
	if err != nil {
		return nil, err
	}
	txs, err := repo.ListByOwner(ctx, ownerID, limit)
	if err != nil {
		return nil, err
	}
	return mapper.TransactionsToRead(txs), nil
}

// DeleteTransaction reverses the transaction's effect on the owning
// account's balance (re-credit an expense, re-debit an income) and removes
// the record, both in one unit of work. The original transaction_created
// movement stays untouched; a transaction_deleted movement records the edit.
//
// If the owning account was deleted since, the record is removed without a
// reversal; the remaining movements still tell the story.
func (s *Service) DeleteTransaction(ctx context.Context, ownerID, id uuid.UUID) error {
	log := s.logger.With("ownerID", ownerID, "transactionID", id)

	var tx *accountdomain.Transaction
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accRepo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		txRepo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}

		tx, err = txRepo.Get(ctx, ownerID, id)
		if err != nil {
			return err
		}

		a, err := accRepo.GetForUpdate(ctx, ownerID, tx.AccountID)
		if errors.Is(err, accountdomain.ErrAccountNotFound) {
			log.Warn("owning account missing; deleting transaction without reversal")
			return txRepo.Delete(ctx, ownerID, id)
		}
		if err != nil {
			return err
		}

		if tx.Type.BalanceEffect() > 0 {
			err = a.ApplyDebit(tx.Amount)
		} else {
			err = a.ApplyCredit(tx.Amount)
		}
		if err != nil {
			return err
		}
		if err = accRepo.Update(ctx, a); err != nil {
			return err
		}
		return txRepo.Delete(ctx, ownerID, id)
	})
	if err != nil {
		log.Error("delete transaction failed", "error", err)
		return err
	}
	s.accounts.Invalidate(ownerID)

	if m, err := movement.New(ownerID, movement.TransactionDeleted,
		fmt.Sprintf("%s of %s deleted, balance effect reversed", tx.Type, tx.Amount)); err == nil {
		m.WithEntity(movement.EntityTransaction, tx.ID).
			WithAmount(tx.Amount).
			WithAccounts(&tx.AccountID, nil)
		s.recorder.Record(ctx, m)
	}

	log.Info("transaction deleted")
	return nil
}
