// Package transfer implements the Transfer Coordinator: moving funds between
// two accounts of the same owner as one logical operation.
//
// The debit leg, the credit leg, and both transaction records are wrapped in
// a single unit of work, so the zero-sum invariant holds even when the
// sequence fails partway through.
package transfer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fintrackd/fintrack/pkg/domain"
	accountdomain "github.com/fintrackd/fintrack/pkg/domain/account"
	"github.com/fintrackd/fintrack/pkg/domain/movement"
	"github.com/fintrackd/fintrack/pkg/dto"
	"github.com/fintrackd/fintrack/pkg/money"
	"github.com/fintrackd/fintrack/pkg/repository"
	accountsvc "github.com/fintrackd/fintrack/pkg/service/account"
	"github.com/fintrackd/fintrack/pkg/service/audit"
	"github.com/google/uuid"
)

// Service coordinates transfers.
type Service struct {
	uow      repository.UnitOfWork
	recorder *audit.Recorder
	accounts *accountsvc.ListCache
	logger   *slog.Logger
}

// NewService creates the transfer service.
func NewService(uow repository.UnitOfWork, recorder *audit.Recorder, accounts *accountsvc.ListCache, logger *slog.Logger) *Service {
	return &Service{uow: uow, recorder: recorder, accounts: accounts, logger: logger}
}

// Transfer moves amount from the source account to the destination account.
// Validation runs in order (same-account, positive amount, sufficient funds)
// before any write happens. On success exactly one transfer_created movement
// referencing both accounts is recorded.
func (s *Service) Transfer(
	ctx context.Context,
	ownerID, sourceID, destID uuid.UUID,
	amount float64,
	description string,
) (*dto.TransferResult, error) {
	log := s.logger.With("ownerID", ownerID, "sourceID", sourceID, "destID", destID)

	if sourceID == destID {
		return nil, accountdomain.ErrSameAccountTransfer
	}

	var (
		src, dest *accountdomain.Account
		m         money.Money
	)
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accRepo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		txRepo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}

		// Debit side loads (and locks) first, matching the order the legs apply.
		src, err = accRepo.GetForUpdate(ctx, ownerID, sourceID)
		if err != nil {
			return err
		}
		dest, err = accRepo.GetForUpdate(ctx, ownerID, destID)
		if err != nil {
			return err
		}

		m, err = money.New(amount, src.Currency())
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}
		if err = src.ValidateTransfer(ownerID, dest, m); err != nil {
			return err
		}

		// Debit leg.
		if err = src.ApplyDebit(m); err != nil {
			return err
		}
		debitTx, err := accountdomain.NewTransaction(
			ownerID, sourceID, m, src.Balance,
			accountdomain.TransactionDebit, accountdomain.CategoryTransfer,
			description,
		)
		if err != nil {
			return err
		}
		debitTx.CounterpartAccountID = &destID
		if err = txRepo.Create(ctx, debitTx); err != nil {
			return err
		}
		if err = accRepo.Update(ctx, src); err != nil {
			return err
		}

		// Credit leg, tagged with the counterpart account.
		if err = dest.ApplyCredit(m); err != nil {
			return err
		}
		creditTx, err := accountdomain.NewTransaction(
			ownerID, destID, m, dest.Balance,
			accountdomain.TransactionCredit, accountdomain.CategoryTransfer,
			description,
		)
		if err != nil {
			return err
		}
		creditTx.CounterpartAccountID = &sourceID
		if err = txRepo.Create(ctx, creditTx); err != nil {
			return err
		}
		return accRepo.Update(ctx, dest)
	})
	if err != nil {
		log.Error("transfer failed", "error", err)
		return nil, err
	}
	s.accounts.Invalidate(ownerID)

	if mv, err := movement.New(ownerID, movement.TransferCreated,
		fmt.Sprintf("Transfer of %s from %q to %q", m, src.Name, dest.Name)); err == nil {
		mv.WithAmount(m).
			WithAccounts(&sourceID, &destID).
			WithMeta("from_account_name", src.Name).
			WithMeta("to_account_name", dest.Name)
		s.recorder.Record(ctx, mv)
	}

	log.Info("transfer completed", "amount", m.String())
	return &dto.TransferResult{
		SourceAccountID: sourceID,
		DestAccountID:   destID,
		Amount:          m.AmountFloat(),
		Currency:        m.Currency().String(),
		SourceBalance:   src.Balance.AmountFloat(),
		DestBalance:     dest.Balance.AmountFloat(),
	}, nil
}
