// Package account implements the Account Store: account lifecycle and the
// account-scoped debit/credit sub-ledger.
//
// Balance writes and their transaction records happen inside one unit of
// work; the audit movement is recorded after the commit and never rolls the
// mutation back.
package account

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fintrackd/fintrack/pkg/cache"
	"github.com/fintrackd/fintrack/pkg/currency"
	"github.com/fintrackd/fintrack/pkg/domain"
	accountdomain "github.com/fintrackd/fintrack/pkg/domain/account"
	"github.com/fintrackd/fintrack/pkg/domain/movement"
	"github.com/fintrackd/fintrack/pkg/dto"
	"github.com/fintrackd/fintrack/pkg/mapper"
	"github.com/fintrackd/fintrack/pkg/money"
	"github.com/fintrackd/fintrack/pkg/repository"
	"github.com/fintrackd/fintrack/pkg/service/audit"
	"github.com/google/uuid"
)

// ListCacheTTL bounds how stale a cached account list may get between
// explicit invalidations.
const ListCacheTTL = 30 * time.Second

// ListCache holds cached ListAccounts results per owner. The handle is
// shared with every service that moves balances (transfer, ledger, goal), so
// any balance write drops the owner's cached list.
type ListCache = cache.TTLCache[[]dto.AccountRead]

// NewListCache creates the account list cache with the standard TTL.
func NewListCache() *ListCache {
	return cache.New[[]dto.AccountRead](ListCacheTTL)
}

// Service provides account operations.
type Service struct {
	uow       repository.UnitOfWork
	recorder  *audit.Recorder
	listCache *ListCache
	logger    *slog.Logger
}

// NewService creates the account service.
func NewService(uow repository.UnitOfWork, recorder *audit.Recorder, listCache *ListCache, logger *slog.Logger) *Service {
	return &Service{
		uow:       uow,
		recorder:  recorder,
		listCache: listCache,
		logger:    logger,
	}
}

// CreateAccount creates a new account with the given initial balance. A zero
// or negative initial balance is legal; credit accounts may start negative.
func (s *Service) CreateAccount(ctx context.Context, create dto.AccountCreate) (*dto.AccountRead, error) {
	log := s.logger.With("ownerID", create.OwnerID, "name", create.Name)

	code := currency.Code(create.Currency)
	if code == "" {
		code = currency.DefaultCode
	}
	initial, err := money.New(create.Balance, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	b := accountdomain.New().
		WithOwner(create.OwnerID).
		WithName(create.Name).
		WithBalance(initial.Amount()).
		WithCurrency(initial.Currency()).
		WithDescription(create.Description).
		WithDefault(create.IsDefault)
	if create.Type != "" {
		b = b.WithType(accountdomain.Type(create.Type))
	}
	a, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		return repo.Create(ctx, a)
	})
	if err != nil {
		log.Error("create account failed", "error", err)
		return nil, err
	}
	s.listCache.Invalidate(create.OwnerID)

	if m, err := movement.New(a.OwnerID, movement.AccountCreated,
		fmt.Sprintf("Account %q created", a.Name)); err == nil {
		m.WithEntity(movement.EntityAccount, a.ID).
			WithAmount(a.Balance).
			WithMeta("account_name", a.Name)
		s.recorder.Record(ctx, m)
	}

	log.Info("account created", "accountID", a.ID)
	return mapper.AccountToRead(a), nil
}

// GetAccount returns one account scoped to the owner.
func (s *Service) GetAccount(ctx context.Context, ownerID, id uuid.UUID) (*dto.AccountRead, error) {
	repo, err := s.uow.AccountRepository()
	if err != nil {
		return nil, err
	}
	a, err := repo.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	return mapper.AccountToRead(a), nil
}

// ListAccounts returns all of the owner's accounts. Results are served from
// a short-lived cache; every mutation in this service invalidates it.
func (s *Service) ListAccounts(ctx context.Context, ownerID uuid.UUID) ([]dto.AccountRead, error) {
	if cached, ok := s.listCache.Get(ownerID); ok {
		return cached, nil
	}
	repo, err := s.uow.AccountRepository()
	if err != nil {
		return nil, err
	}
	accounts, err := repo.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	reads := make([]dto.AccountRead, 0, len(accounts))
	for _, a := range accounts {
		reads = append(reads, *mapper.AccountToRead(a))
	}
	s.listCache.Set(ownerID, reads)
	return reads, nil
}

// UpdateAccount merges the non-monetary fields of the patch. The balance is
// not reachable from this path.
func (s *Service) UpdateAccount(ctx context.Context, ownerID, id uuid.UUID, update dto.AccountUpdate) (*dto.AccountRead, error) {
	log := s.logger.With("ownerID", ownerID, "accountID", id)

	patch := accountdomain.Patch{
		Name:        update.Name,
		Description: update.Description,
		IsDefault:   update.IsDefault,
	}
	if update.Type != nil {
		t := accountdomain.Type(*update.Type)
		patch.Type = &t
	}

	var a *accountdomain.Account
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		a, err = repo.GetForUpdate(ctx, ownerID, id)
		if err != nil {
			return err
		}
		if err = patch.Apply(a); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}
		return repo.Update(ctx, a)
	})
	if err != nil {
		log.Error("update account failed", "error", err)
		return nil, err
	}
	s.listCache.Invalidate(ownerID)

	if m, err := movement.New(ownerID, movement.AccountUpdated,
		fmt.Sprintf("Account %q updated", a.Name)); err == nil {
		m.WithEntity(movement.EntityAccount, a.ID).WithMeta("account_name", a.Name)
		s.recorder.Record(ctx, m)
	}

	return mapper.AccountToRead(a), nil
}

// AddAccountTransaction records a debit or credit entry against an account
// and moves the balance accordingly. Sub-ledger debits may overdraw; only
// transfers and goal funding insist on sufficient funds.
func (s *Service) AddAccountTransaction(ctx context.Context, create dto.AccountTransactionCreate) (*dto.TransactionRead, error) {
	log := s.logger.With("ownerID", create.OwnerID, "accountID", create.AccountID, "type", create.Type)

	txType := accountdomain.TransactionType(create.Type)
	if txType != accountdomain.TransactionDebit && txType != accountdomain.TransactionCredit {
		return nil, fmt.Errorf("%w: account transactions must be debit or credit", domain.ErrValidation)
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

		if txType == accountdomain.TransactionCredit {
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
		if err = txRepo.Create(ctx, tx); err != nil {
			return err
		}
		return accRepo.Update(ctx, a)
	})
	if err != nil {
		log.Error("add account transaction failed", "error", err)
		return nil, err
	}
	s.listCache.Invalidate(create.OwnerID)

	if m, err := movement.New(create.OwnerID, movement.TransactionCreated,
		fmt.Sprintf("%s of %s", txType, tx.Amount)); err == nil {
		m.WithEntity(movement.EntityTransaction, tx.ID).
			WithAmount(tx.Amount).
			WithAccounts(&create.AccountID, nil)
		s.recorder.Record(ctx, m)
	}

	log.Info("account transaction recorded", "transactionID", tx.ID)
	return mapper.TransactionToRead(tx), nil
}

// ListAccountTransactions returns the account-scoped sub-ledger, newest first.
func (s *Service) ListAccountTransactions(ctx context.Context, ownerID, accountID uuid.UUID, limit int) ([]dto.TransactionRead, error) {
	repo, err := s.uow.TransactionRepository()
	if err != nil {
		return nil, err
	}
	txs, err := repo.ListByAccount(ctx, ownerID, accountID, limit)
	if err != nil {
		return nil, err
	}
	return mapper.TransactionsToRead(txs), nil
}

// DeleteAccount removes the account and detaches any goal funded from it.
// Historical transactions and movements are left as audit history pointing at
// the now-missing account.
func (s *Service) DeleteAccount(ctx context.Context, ownerID, id uuid.UUID) error {
	log := s.logger.With("ownerID", ownerID, "accountID", id)

	var name string
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accRepo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		goalRepo, err := uow.GoalRepository()
		if err != nil {
			return err
		}
		a, err := accRepo.GetForUpdate(ctx, ownerID, id)
		if err != nil {
			return err
		}
		name = a.Name
		if err = goalRepo.DetachAccount(ctx, ownerID, id); err != nil {
			return err
		}
		return accRepo.Delete(ctx, ownerID, id)
	})
	if err != nil {
		log.Error("delete account failed", "error", err)
		return err
	}
	s.listCache.Invalidate(ownerID)

	if m, err := movement.New(ownerID, movement.AccountDeleted,
		fmt.Sprintf("Account %q deleted", name)); err == nil {
		m.WithEntity(movement.EntityAccount, id).WithMeta("account_name", name)
		s.recorder.Record(ctx, m)
	}

	log.Info("account deleted")
	return nil
}
