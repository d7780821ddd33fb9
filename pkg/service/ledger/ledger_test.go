package ledger_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/fintrackd/fintrack/internal/fixtures/mocks"
	"github.com/fintrackd/fintrack/pkg/domain"
	accountdomain "github.com/fintrackd/fintrack/pkg/domain/account"
	"github.com/fintrackd/fintrack/pkg/domain/movement"
	"github.com/fintrackd/fintrack/pkg/dto"
	"github.com/fintrackd/fintrack/pkg/money"
	"github.com/fintrackd/fintrack/pkg/repository"
	accountsvc "github.com/fintrackd/fintrack/pkg/service/account"
	"github.com/fintrackd/fintrack/pkg/service/audit"
	"github.com/fintrackd/fintrack/pkg/service/ledger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*ledger.Service, *mocks.MockUnitOfWork, *accountsvc.ListCache) {
	t.Helper()
	uow := mocks.NewMockUnitOfWork(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	listCache := accountsvc.NewListCache()
	return ledger.NewService(uow, audit.NewRecorder(uow, logger), listCache, logger), uow, listCache
}

func passthroughDo(uow *mocks.MockUnitOfWork) {
	uow.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, fn func(repository.UnitOfWork) error) error {
			return fn(uow)
		})
}

func buildAccount(t *testing.T, ownerID uuid.UUID, balance int64) *accountdomain.Account {
	t.Helper()
	a, err := accountdomain.New().
		WithOwner(ownerID).
		WithName("Checking").
		WithBalance(balance).
		Build()
	require.NoError(t, err)
	return a
}

func TestAddTransaction(t *testing.T) {
	ownerID := uuid.New()

	t.Run("income credits the account", func(t *testing.T) {
		svc, uow, listCache := newService(t)
		accRepo := mocks.NewMockAccountRepository(t)
		txRepo := mocks.NewMockTransactionRepository(t)
		movRepo := mocks.NewMockMovementRepository(t)

		a := buildAccount(t, ownerID, 10000)
		listCache.Set(ownerID, []dto.AccountRead{{ID: a.ID, Balance: 100}})
		passthroughDo(uow)
		uow.EXPECT().AccountRepository().Return(accRepo, nil)
		uow.EXPECT().TransactionRepository().Return(txRepo, nil)
		uow.EXPECT().MovementRepository().Return(movRepo, nil)
		accRepo.EXPECT().GetForUpdate(mock.Anything, ownerID, a.ID).Return(a, nil)
		accRepo.EXPECT().Update(mock.Anything, a).Return(nil)
		txRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

		var recorded *movement.Movement
		movRepo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(
			func(ctx context.Context, m *movement.Movement) error {
				recorded = m
				return nil
			})

		read, err := svc.AddTransaction(context.Background(), dto.TransactionCreate{
			OwnerID:   ownerID,
			AccountID: a.ID,
			Amount:    1500,
			Type:      "income",
			Category:  "salary",
			Source:    "August payroll",
		})
		require.NoError(t, err)
		assert.Equal(t, "income", read.Type)
		assert.InDelta(t, 1600, read.Balance, 0.001)

		require.NotNil(t, recorded)
		assert.Equal(t, movement.TransactionCreated, recorded.Type)
		assert.Equal(t, "August payroll", recorded.Metadata["source"])

		// The balance moved, so the cached account list is stale.
		_, ok := listCache.Get(ownerID)
		assert.False(t, ok)
	})

	t.Run("expense debits the account and may overdraw", func(t *testing.T) {
		svc, uow, _ := newService(t)
		accRepo := mocks.NewMockAccountRepository(t)
		txRepo := mocks.NewMockTransactionRepository(t)
		movRepo := mocks.NewMockMovementRepository(t)

		a := buildAccount(t, ownerID, 5000)
		passthroughDo(uow)
		uow.EXPECT().AccountRepository().Return(accRepo, nil)
		uow.EXPECT().TransactionRepository().Return(txRepo, nil)
		uow.EXPECT().MovementRepository().Return(movRepo, nil)
		accRepo.EXPECT().GetForUpdate(mock.Anything, ownerID, a.ID).Return(a, nil)
		accRepo.EXPECT().Update(mock.Anything, a).Return(nil)
		txRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
		movRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

		read, err := svc.AddTransaction(context.Background(), dto.TransactionCreate{
			OwnerID:   ownerID,
			AccountID: a.ID,
			Amount:    80,
			Type:      "expense",
			Category:  "rent",
		})
		require.NoError(t, err)
		assert.InDelta(t, -30, read.Balance, 0.001)
	})

	t.Run("rejects sub-ledger types", func(t *testing.T) {
		svc, _, _ := newService(t)
		_, err := svc.AddTransaction(context.Background(), dto.TransactionCreate{
			OwnerID:   ownerID,
			AccountID: uuid.New(),
			Amount:    10,
			Type:      "debit",
		})
		require.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("transfer leg keeps the counterpart reference", func(t *testing.T) {
		svc, uow, _ := newService(t)
		accRepo := mocks.NewMockAccountRepository(t)
		txRepo := mocks.NewMockTransactionRepository(t)
		movRepo := mocks.NewMockMovementRepository(t)

		a := buildAccount(t, ownerID, 10000)
		counterpart := uuid.New()
		passthroughDo(uow)
		uow.EXPECT().AccountRepository().Return(accRepo, nil)
		uow.EXPECT().TransactionRepository().Return(txRepo, nil)
		uow.EXPECT().MovementRepository().Return(movRepo, nil)
		accRepo.EXPECT().GetForUpdate(mock.Anything, ownerID, a.ID).Return(a, nil)
		accRepo.EXPECT().Update(mock.Anything, a).Return(nil)
		movRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

		var created *accountdomain.Transaction
		txRepo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(
			func(ctx context.Context, tx *accountdomain.Transaction) error {
				created = tx
				return nil
			})

		read, err := svc.AddTransaction(context.Background(), dto.TransactionCreate{
			OwnerID:              ownerID,
			AccountID:            a.ID,
			Amount:               40,
			Type:                 "transfer",
			CounterpartAccountID: &counterpart,
		})
		require.NoError(t, err)
		require.NotNil(t, created)
		require.NotNil(t, created.CounterpartAccountID)
		assert.Equal(t, counterpart, *created.CounterpartAccountID)
		assert.Equal(t, &counterpart, read.CounterpartAccountID)
	})
}

func TestGetTransactions(t *testing.T) {
	ownerID := uuid.New()
	svc, uow, _ := newService(t)
	txRepo := mocks.NewMockTransactionRepository(t)

	tx, err := accountdomain.NewTransaction(
		ownerID, uuid.New(),
		money.Must(10, "USD"), money.Must(90, "USD"),
		accountdomain.TransactionExpense, accountdomain.CategoryGroceries, "weekly shop",
	)
	require.NoError(t, err)

	uow.EXPECT().TransactionRepository().Return(txRepo, nil)
	txRepo.EXPECT().ListByOwner(mock.Anything, ownerID, 20).
		Return([]*accountdomain.Transaction{tx}, nil)

	reads, err := svc.GetTransactions(context.Background(), ownerID, 20)
	require.NoError(t, err)
	require.Len(t, reads, 1)
	assert.Equal(t, "expense", reads[0].Type)
	assert.InDelta(t, 10, reads[0].Amount, 0.001)
}

func TestDeleteTransaction(t *testing.T) {
	ownerID := uuid.New()

	t.Run("reverses the balance effect", func(t *testing.T) {
		svc, uow, _ := newService(t)
		accRepo := mocks.NewMockAccountRepository(t)
		txRepo := mocks.NewMockTransactionRepository(t)
		movRepo := mocks.NewMockMovementRepository(t)

		a := buildAccount(t, ownerID, 15000)
		tx, err := accountdomain.NewTransaction(
			ownerID, a.ID,
			money.Must(100, "USD"), money.Must(150, "USD"),
			accountdomain.TransactionIncome, accountdomain.CategorySalary, "payroll",
		)
		require.NoError(t, err)

		passthroughDo(uow)
		uow.EXPECT().AccountRepository().Return(accRepo, nil)
		uow.EXPECT().TransactionRepository().Return(txRepo, nil)
		uow.EXPECT().MovementRepository().Return(movRepo, nil)
		txRepo.EXPECT().Get(mock.Anything, ownerID, tx.ID).Return(tx, nil)
		accRepo.EXPECT().GetForUpdate(mock.Anything, ownerID, a.ID).Return(a, nil)
		accRepo.EXPECT().Update(mock.Anything, a).Return(nil)
		txRepo.EXPECT().Delete(mock.Anything, ownerID, tx.ID).Return(nil)

		var recorded *movement.Movement
		movRepo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(
			func(ctx context.Context, m *movement.Movement) error {
				recorded = m
				return nil
			})

		require.NoError(t, svc.DeleteTransaction(context.Background(), ownerID, tx.ID))
		// Deleting an income re-debits the account.
		assert.Equal(t, int64(5000), a.Balance.Amount())

		require.NotNil(t, recorded)
		assert.Equal(t, movement.TransactionDeleted, recorded.Type)
	})

	t.Run("missing account deletes without reversal", func(t *testing.T) {
		svc, uow, _ := newService(t)
		accRepo := mocks.NewMockAccountRepository(t)
		txRepo := mocks.NewMockTransactionRepository(t)
		movRepo := mocks.NewMockMovementRepository(t)

		accountID := uuid.New()
		tx, err := accountdomain.NewTransaction(
			ownerID, accountID,
			money.Must(100, "USD"), money.Must(150, "USD"),
			accountdomain.TransactionExpense, accountdomain.CategoryRent, "rent",
		)
		require.NoError(t, err)

		passthroughDo(uow)
		uow.EXPECT().AccountRepository().Return(accRepo, nil)
		uow.EXPECT().TransactionRepository().Return(txRepo, nil)
		uow.EXPECT().MovementRepository().Return(movRepo, nil)
		txRepo.EXPECT().Get(mock.Anything, ownerID, tx.ID).Return(tx, nil)
		accRepo.EXPECT().GetForUpdate(mock.Anything, ownerID, accountID).
			Return(nil, accountdomain.ErrAccountNotFound)
		txRepo.EXPECT().Delete(mock.Anything, ownerID, tx.ID).Return(nil)
		movRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

		require.NoError(t, svc.DeleteTransaction(context.Background(), ownerID, tx.ID))
	})

	t.Run("missing transaction", func(t *testing.T) {
		svc, uow, _ := newService(t)
		accRepo := mocks.NewMockAccountRepository(t)
		txRepo := mocks.NewMockTransactionRepository(t)

		id := uuid.New()
		passthroughDo(uow)
		uow.EXPECT().AccountRepository().Return(accRepo, nil)
		uow.EXPECT().TransactionRepository().Return(txRepo, nil)
		txRepo.EXPECT().Get(mock.Anything, ownerID, id).
			Return(nil, accountdomain.ErrTransactionNotFound)

		err := svc.DeleteTransaction(context.Background(), ownerID, id)
		require.ErrorIs(t, err, accountdomain.ErrTransactionNotFound)
	})
}
