package account_test

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
	"github.com/fintrackd/fintrack/pkg/repository"
	"github.com/fintrackd/fintrack/pkg/service/account"
	"github.com/fintrackd/fintrack/pkg/service/audit"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*account.Service, *mocks.MockUnitOfWork) {
	t.Helper()
	uow := mocks.NewMockUnitOfWork(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return account.NewService(uow, audit.NewRecorder(uow, logger), account.NewListCache(), logger), uow
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

func TestCreateAccount(t *testing.T) {
	ownerID := uuid.New()

	t.Run("success records a movement", func(t *testing.T) {
		svc, uow := newService(t)
		accRepo := mocks.NewMockAccountRepository(t)
		movRepo := mocks.NewMockMovementRepository(t)

		passthroughDo(uow)
		uow.EXPECT().AccountRepository().Return(accRepo, nil)
		uow.EXPECT().MovementRepository().Return(movRepo, nil)
		accRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

		var recorded *movement.Movement
		movRepo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(
			func(ctx context.Context, m *movement.Movement) error {
				recorded = m
				return nil
			})

		read, err := svc.CreateAccount(context.Background(), dto.AccountCreate{
			OwnerID: ownerID,
			Name:    "Checking",
			Balance: 100.50,
		})
		require.NoError(t, err)
		assert.Equal(t, "Checking", read.Name)
		assert.Equal(t, "checking", read.Type)
		assert.Equal(t, "USD", read.Currency)
		assert.InDelta(t, 100.50, read.Balance, 0.001)

		require.NotNil(t, recorded)
		assert.Equal(t, movement.AccountCreated, recorded.Type)
		assert.Equal(t, ownerID, recorded.OwnerID)
	})

	t.Run("negative initial balance is legal", func(t *testing.T) {
		svc, uow := newService(t)
		accRepo := mocks.NewMockAccountRepository(t)
		movRepo := mocks.NewMockMovementRepository(t)

		passthroughDo(uow)
		uow.EXPECT().AccountRepository().Return(accRepo, nil)
		uow.EXPECT().MovementRepository().Return(movRepo, nil)
		accRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
		movRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

		read, err := svc.CreateAccount(context.Background(), dto.AccountCreate{
			OwnerID: ownerID,
			Name:    "Credit card",
			Type:    "credit",
			Balance: -250,
		})
		require.NoError(t, err)
		assert.InDelta(t, -250, read.Balance, 0.001)
	})

	t.Run("unsupported currency fails before any write", func(t *testing.T) {
		svc, _ := newService(t)
		_, err := svc.CreateAccount(context.Background(), dto.AccountCreate{
			OwnerID:  ownerID,
			Name:     "Checking",
			Currency: "ZZZ",
		})
		require.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("invalid type fails before any write", func(t *testing.T) {
		svc, _ := newService(t)
		_, err := svc.CreateAccount(context.Background(), dto.AccountCreate{
			OwnerID: ownerID,
			Name:    "Checking",
			Type:    "retirement",
		})
		require.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestGetAccount(t *testing.T) {
	ownerID := uuid.New()

	t.Run("not found", func(t *testing.T) {
		svc, uow := newService(t)
		accRepo := mocks.NewMockAccountRepository(t)
		uow.EXPECT().AccountRepository().Return(accRepo, nil)
		accRepo.EXPECT().Get(mock.Anything, ownerID, mock.Anything).
			Return(nil, accountdomain.ErrAccountNotFound)

		_, err := svc.GetAccount(context.Background(), ownerID, uuid.New())
		require.ErrorIs(t, err, accountdomain.ErrAccountNotFound)
	})
}

func TestListAccounts_Cached(t *testing.T) {
	ownerID := uuid.New()
	svc, uow := newService(t)
	accRepo := mocks.NewMockAccountRepository(t)

	a := buildAccount(t, ownerID, 10000)
	uow.EXPECT().AccountRepository().Return(accRepo, nil).Once()
	accRepo.EXPECT().List(mock.Anything, ownerID).
		Return([]*accountdomain.Account{a}, nil).Once()

	first, err := svc.ListAccounts(context.Background(), ownerID)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Second call is served from the list cache; the repository is not hit again.
	second, err := svc.ListAccounts(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestUpdateAccount(t *testing.T) {
	ownerID := uuid.New()

	t.Run("applies patch and keeps balance", func(t *testing.T) {
		svc, uow := newService(t)
		accRepo := mocks.NewMockAccountRepository(t)
		movRepo := mocks.NewMockMovementRepository(t)

		a := buildAccount(t, ownerID, 10000)
		passthroughDo(uow)
		uow.EXPECT().AccountRepository().Return(accRepo, nil)
		uow.EXPECT().MovementRepository().Return(movRepo, nil)
		accRepo.EXPECT().GetForUpdate(mock.Anything, ownerID, a.ID).Return(a, nil)
		accRepo.EXPECT().Update(mock.Anything, a).Return(nil)
		movRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

		name := "Renamed"
		read, err := svc.UpdateAccount(context.Background(), ownerID, a.ID, dto.AccountUpdate{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", read.Name)
		assert.InDelta(t, 100, read.Balance, 0.001)
	})

	t.Run("invalid patch rolls back", func(t *testing.T) {
		svc, uow := newService(t)
		accRepo := mocks.NewMockAccountRepository(t)

		a := buildAccount(t, ownerID, 10000)
		passthroughDo(uow)
		uow.EXPECT().AccountRepository().Return(accRepo, nil)
		accRepo.EXPECT().GetForUpdate(mock.Anything, ownerID, a.ID).Return(a, nil)

		badType := "retirement"
		_, err := svc.UpdateAccount(context.Background(), ownerID, a.ID, dto.AccountUpdate{Type: &badType})
		require.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestAddAccountTransaction(t *testing.T) {
	ownerID := uuid.New()

	t.Run("credit moves the balance up", func(t *testing.T) {
		svc, uow := newService(t)
		accRepo := mocks.NewMockAccountRepository(t)
		txRepo := mocks.NewMockTransactionRepository(t)
		movRepo := mocks.NewMockMovementRepository(t)

		a := buildAccount(t, ownerID, 10000)
		passthroughDo(uow)
		uow.EXPECT().AccountRepository().Return(accRepo, nil)
		uow.EXPECT().TransactionRepository().Return(txRepo, nil)
		uow.EXPECT().MovementRepository().Return(movRepo, nil)
		accRepo.EXPECT().GetForUpdate(mock.Anything, ownerID, a.ID).Return(a, nil)
		accRepo.EXPECT().Update(mock.Anything, a).Return(nil)

		var created *accountdomain.Transaction
		txRepo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(
			func(ctx context.Context, tx *accountdomain.Transaction) error {
				created = tx
				return nil
			})
		movRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

		read, err := svc.AddAccountTransaction(context.Background(), dto.AccountTransactionCreate{
			OwnerID:   ownerID,
			AccountID: a.ID,
			Amount:    25.50,
			Type:      "credit",
			Source:    "payroll",
		})
		require.NoError(t, err)
		assert.InDelta(t, 125.50, read.Balance, 0.001)
		assert.Equal(t, int64(12550), a.Balance.Amount())

		require.NotNil(t, created)
		assert.Equal(t, accountdomain.TransactionCredit, created.Type)
		// The transaction carries the balance snapshot after the entry applied.
		assert.Equal(t, a.Balance.Amount(), created.Balance.Amount())
	})

	t.Run("debit may overdraw", func(t *testing.T) {
		svc, uow := newService(t)
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

		read, err := svc.AddAccountTransaction(context.Background(), dto.AccountTransactionCreate{
			OwnerID:   ownerID,
			AccountID: a.ID,
			Amount:    100,
			Type:      "debit",
		})
		require.NoError(t, err)
		assert.InDelta(t, -50, read.Balance, 0.001)
	})

	t.Run("rejects ledger types", func(t *testing.T) {
		svc, _ := newService(t)
		_, err := svc.AddAccountTransaction(context.Background(), dto.AccountTransactionCreate{
			OwnerID:   ownerID,
			AccountID: uuid.New(),
			Amount:    10,
			Type:      "income",
		})
		require.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("zero amount leaves no trace", func(t *testing.T) {
		svc, uow := newService(t)
		accRepo := mocks.NewMockAccountRepository(t)
		txRepo := mocks.NewMockTransactionRepository(t)

		a := buildAccount(t, ownerID, 5000)
		passthroughDo(uow)
		uow.EXPECT().AccountRepository().Return(accRepo, nil)
		uow.EXPECT().TransactionRepository().Return(txRepo, nil)
		accRepo.EXPECT().GetForUpdate(mock.Anything, ownerID, a.ID).Return(a, nil)

		_, err := svc.AddAccountTransaction(context.Background(), dto.AccountTransactionCreate{
			OwnerID:   ownerID,
			AccountID: a.ID,
			Amount:    0,
			Type:      "credit",
		})
		require.ErrorIs(t, err, accountdomain.ErrAmountMustBePositive)
		assert.Equal(t, int64(5000), a.Balance.Amount())
	})
}

func TestDeleteAccount(t *testing.T) {
	ownerID := uuid.New()

	t.Run("detaches goals and records a movement", func(t *testing.T) {
		svc, uow := newService(t)
		accRepo := mocks.NewMockAccountRepository(t)
		goalRepo := mocks.NewMockGoalRepository(t)
		movRepo := mocks.NewMockMovementRepository(t)

		a := buildAccount(t, ownerID, 10000)
		passthroughDo(uow)
		uow.EXPECT().AccountRepository().Return(accRepo, nil)
		uow.EXPECT().GoalRepository().Return(goalRepo, nil)
		uow.EXPECT().MovementRepository().Return(movRepo, nil)
		accRepo.EXPECT().GetForUpdate(mock.Anything, ownerID, a.ID).Return(a, nil)
		goalRepo.EXPECT().DetachAccount(mock.Anything, ownerID, a.ID).Return(nil)
		accRepo.EXPECT().Delete(mock.Anything, ownerID, a.ID).Return(nil)

		var recorded *movement.Movement
		movRepo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(
			func(ctx context.Context, m *movement.Movement) error {
				recorded = m
				return nil
			})

		require.NoError(t, svc.DeleteAccount(context.Background(), ownerID, a.ID))
		require.NotNil(t, recorded)
		assert.Equal(t, movement.AccountDeleted, recorded.Type)
		assert.Equal(t, "Checking", recorded.Metadata["account_name"])
	})

	t.Run("missing account aborts without deleting", func(t *testing.T) {
		svc, uow := newService(t)
		accRepo := mocks.NewMockAccountRepository(t)
		goalRepo := mocks.NewMockGoalRepository(t)

		id := uuid.New()
		passthroughDo(uow)
		uow.EXPECT().AccountRepository().Return(accRepo, nil)
		uow.EXPECT().GoalRepository().Return(goalRepo, nil)
		accRepo.EXPECT().GetForUpdate(mock.Anything, ownerID, id).
			Return(nil, accountdomain.ErrAccountNotFound)

		err := svc.DeleteAccount(context.Background(), ownerID, id)
		require.ErrorIs(t, err, accountdomain.ErrAccountNotFound)
	})
}
