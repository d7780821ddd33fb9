package goal_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/fintrackd/fintrack/internal/fixtures/mocks"
	accountdomain "github.com/fintrackd/fintrack/pkg/domain/account"
	goaldomain "github.com/fintrackd/fintrack/pkg/domain/goal"
	"github.com/fintrackd/fintrack/pkg/domain/movement"
	"github.com/fintrackd/fintrack/pkg/dto"
	"github.com/fintrackd/fintrack/pkg/repository"
	accountsvc "github.com/fintrackd/fintrack/pkg/service/account"
	"github.com/fintrackd/fintrack/pkg/service/audit"
	"github.com/fintrackd/fintrack/pkg/service/goal"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*goal.Service, *mocks.MockUnitOfWork, *accountsvc.ListCache) {
	t.Helper()
	uow := mocks.NewMockUnitOfWork(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	listCache := accountsvc.NewListCache()
	return goal.NewService(uow, audit.NewRecorder(uow, logger), listCache, logger), uow, listCache
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

func buildGoal(t *testing.T, ownerID uuid.UUID, target, current int64, accountID *uuid.UUID) *goaldomain.Goal {
	t.Helper()
	g, err := goaldomain.New().
		WithOwner(ownerID).
		WithName("Vacation").
		WithTarget(target).
		WithCurrent(current).
		WithAccount(accountID).
		Build()
	require.NoError(t, err)
	return g
}

func TestCreateGoal(t *testing.T) {
	ownerID := uuid.New()

	t.Run("unlinked goal", func(t *testing.T) {
		svc, uow, _ := newService(t)
		goalRepo := mocks.NewMockGoalRepository(t)
		movRepo := mocks.NewMockMovementRepository(t)

		passthroughDo(uow)
		uow.EXPECT().GoalRepository().Return(goalRepo, nil)
		uow.EXPECT().MovementRepository().Return(movRepo, nil)
		goalRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

		var recorded *movement.Movement
		movRepo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(
			func(ctx context.Context, m *movement.Movement) error {
				recorded = m
				return nil
			})

		read, err := svc.CreateGoal(context.Background(), dto.GoalCreate{
			OwnerID: ownerID,
			Name:    "Vacation",
			Target:  1000,
		})
		require.NoError(t, err)
		assert.Equal(t, "Vacation", read.Name)
		assert.Equal(t, "active", read.Status)
		assert.InDelta(t, 1000, read.Target, 0.001)
		assert.Nil(t, read.AccountID)

		require.NotNil(t, recorded)
		assert.Equal(t, movement.GoalCreated, recorded.Type)
	})

	t.Run("linked goal writes the account back-reference", func(t *testing.T) {
		svc, uow, _ := newService(t)
		goalRepo := mocks.NewMockGoalRepository(t)
		accRepo := mocks.NewMockAccountRepository(t)
		movRepo := mocks.NewMockMovementRepository(t)

		a := buildAccount(t, ownerID, 10000)
		passthroughDo(uow)
		uow.EXPECT().GoalRepository().Return(goalRepo, nil)
		uow.EXPECT().AccountRepository().Return(accRepo, nil)
		uow.EXPECT().MovementRepository().Return(movRepo, nil)
		accRepo.EXPECT().GetForUpdate(mock.Anything, ownerID, a.ID).Return(a, nil)
		accRepo.EXPECT().Update(mock.Anything, a).Return(nil)
		goalRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
		movRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

		read, err := svc.CreateGoal(context.Background(), dto.GoalCreate{
			OwnerID:   ownerID,
			Name:      "Vacation",
			Target:    1000,
			AccountID: &a.ID,
		})
		require.NoError(t, err)
		require.NotNil(t, read.AccountID)
		assert.Equal(t, a.ID, *read.AccountID)
		assert.True(t, a.IsGoalAccount)
		require.NotNil(t, a.GoalID)
		assert.Equal(t, read.ID, *a.GoalID)
	})

	t.Run("non positive target", func(t *testing.T) {
		svc, _, _ := newService(t)
		_, err := svc.CreateGoal(context.Background(), dto.GoalCreate{
			OwnerID: ownerID,
			Name:    "Vacation",
			Target:  0,
		})
		require.Error(t, err)
	})
}

func TestAddFunds(t *testing.T) {
	ownerID := uuid.New()

	t.Run("funds the goal and completes it", func(t *testing.T) {
		svc, uow, listCache := newService(t)
		goalRepo := mocks.NewMockGoalRepository(t)
		accRepo := mocks.NewMockAccountRepository(t)
		txRepo := mocks.NewMockTransactionRepository(t)
		movRepo := mocks.NewMockMovementRepository(t)

		a := buildAccount(t, ownerID, 10000)
		g := buildGoal(t, ownerID, 10000, 8000, &a.ID)
		listCache.Set(ownerID, []dto.AccountRead{{ID: a.ID, Balance: 100}})

		passthroughDo(uow)
		uow.EXPECT().GoalRepository().Return(goalRepo, nil)
		uow.EXPECT().AccountRepository().Return(accRepo, nil)
		uow.EXPECT().TransactionRepository().Return(txRepo, nil)
		uow.EXPECT().MovementRepository().Return(movRepo, nil)
		goalRepo.EXPECT().GetForUpdate(mock.Anything, ownerID, g.ID).Return(g, nil)
		accRepo.EXPECT().GetForUpdate(mock.Anything, ownerID, a.ID).Return(a, nil)
		accRepo.EXPECT().Update(mock.Anything, a).Return(nil)
		goalRepo.EXPECT().Update(mock.Anything, g).Return(nil)

		var contribution *accountdomain.Transaction
		txRepo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(
			func(ctx context.Context, tx *accountdomain.Transaction) error {
				contribution = tx
				return nil
			})

		var recorded *movement.Movement
		movRepo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(
			func(ctx context.Context, m *movement.Movement) error {
				recorded = m
				return nil
			})

		result, err := svc.AddFunds(context.Background(), ownerID, g.ID, 30)
		require.NoError(t, err)
		assert.True(t, result.Completed)
		assert.InDelta(t, 70, result.AccountBalance, 0.001)
		assert.InDelta(t, 110, result.GoalCurrent, 0.001)
		assert.Equal(t, goaldomain.StatusCompleted, g.Status)

		require.NotNil(t, contribution)
		assert.Equal(t, accountdomain.TransactionDebit, contribution.Type)
		assert.Equal(t, accountdomain.CategoryGoalContribution, contribution.Category)

		require.NotNil(t, recorded)
		assert.Equal(t, movement.GoalFundsAdded, recorded.Type)
		assert.Equal(t, "true", recorded.Metadata["goal_completed"])

		// Funding debited the account, so the cached list is stale.
		_, ok := listCache.Get(ownerID)
		assert.False(t, ok)
	})

	t.Run("partial funding stays active", func(t *testing.T) {
		svc, uow, _ := newService(t)
		goalRepo := mocks.NewMockGoalRepository(t)
		accRepo := mocks.NewMockAccountRepository(t)
		txRepo := mocks.NewMockTransactionRepository(t)
		movRepo := mocks.NewMockMovementRepository(t)

		a := buildAccount(t, ownerID, 10000)
		g := buildGoal(t, ownerID, 10000, 0, &a.ID)

		passthroughDo(uow)
		uow.EXPECT().GoalRepository().Return(goalRepo, nil)
		uow.EXPECT().AccountRepository().Return(accRepo, nil)
		uow.EXPECT().TransactionRepository().Return(txRepo, nil)
		uow.EXPECT().MovementRepository().Return(movRepo, nil)
		goalRepo.EXPECT().GetForUpdate(mock.Anything, ownerID, g.ID).Return(g, nil)
		accRepo.EXPECT().GetForUpdate(mock.Anything, ownerID, a.ID).Return(a, nil)
		accRepo.EXPECT().Update(mock.Anything, a).Return(nil)
		goalRepo.EXPECT().Update(mock.Anything, g).Return(nil)
		txRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

		var recorded *movement.Movement
		movRepo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(
			func(ctx context.Context, m *movement.Movement) error {
				recorded = m
				return nil
			})

		result, err := svc.AddFunds(context.Background(), ownerID, g.ID, 25)
		require.NoError(t, err)
		assert.False(t, result.Completed)
		assert.Equal(t, goaldomain.StatusActive, g.Status)

		require.NotNil(t, recorded)
		assert.NotContains(t, recorded.Metadata, "goal_completed")
	})

	t.Run("unlinked goal cannot be funded", func(t *testing.T) {
		svc, uow, _ := newService(t)
		goalRepo := mocks.NewMockGoalRepository(t)
		accRepo := mocks.NewMockAccountRepository(t)
		txRepo := mocks.NewMockTransactionRepository(t)

		g := buildGoal(t, ownerID, 10000, 0, nil)

		passthroughDo(uow)
		uow.EXPECT().GoalRepository().Return(goalRepo, nil)
		uow.EXPECT().AccountRepository().Return(accRepo, nil)
		uow.EXPECT().TransactionRepository().Return(txRepo, nil)
		goalRepo.EXPECT().GetForUpdate(mock.Anything, ownerID, g.ID).Return(g, nil)

		_, err := svc.AddFunds(context.Background(), ownerID, g.ID, 25)
		require.ErrorIs(t, err, goaldomain.ErrNoLinkedAccount)
	})

	t.Run("insufficient funds leaves goal and account untouched", func(t *testing.T) {
		svc, uow, _ := newService(t)
		goalRepo := mocks.NewMockGoalRepository(t)
		accRepo := mocks.NewMockAccountRepository(t)
		txRepo := mocks.NewMockTransactionRepository(t)

		a := buildAccount(t, ownerID, 1000)
		g := buildGoal(t, ownerID, 10000, 0, &a.ID)

		passthroughDo(uow)
		uow.EXPECT().GoalRepository().Return(goalRepo, nil)
		uow.EXPECT().AccountRepository().Return(accRepo, nil)
		uow.EXPECT().TransactionRepository().Return(txRepo, nil)
		goalRepo.EXPECT().GetForUpdate(mock.Anything, ownerID, g.ID).Return(g, nil)
		accRepo.EXPECT().GetForUpdate(mock.Anything, ownerID, a.ID).Return(a, nil)

		_, err := svc.AddFunds(context.Background(), ownerID, g.ID, 25)
		require.ErrorIs(t, err, accountdomain.ErrInsufficientFunds)
		assert.Equal(t, int64(1000), a.Balance.Amount())
		assert.True(t, g.Current.IsZero())
	})
}

func TestReduceProgress(t *testing.T) {
	ownerID := uuid.New()

	t.Run("floors at zero without touching status", func(t *testing.T) {
		svc, uow, _ := newService(t)
		goalRepo := mocks.NewMockGoalRepository(t)
		movRepo := mocks.NewMockMovementRepository(t)

		g := buildGoal(t, ownerID, 10000, 5000, nil)
		passthroughDo(uow)
		uow.EXPECT().GoalRepository().Return(goalRepo, nil)
		uow.EXPECT().MovementRepository().Return(movRepo, nil)
		goalRepo.EXPECT().GetForUpdate(mock.Anything, ownerID, g.ID).Return(g, nil)
		goalRepo.EXPECT().Update(mock.Anything, g).Return(nil)
		movRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

		read, err := svc.ReduceProgress(context.Background(), ownerID, g.ID, 500)
		require.NoError(t, err)
		assert.InDelta(t, 0, read.Current, 0.001)
		assert.Equal(t, "active", read.Status)
	})
}

func TestDeleteGoal(t *testing.T) {
	ownerID := uuid.New()

	t.Run("detaches the funding account", func(t *testing.T) {
		svc, uow, _ := newService(t)
		goalRepo := mocks.NewMockGoalRepository(t)
		accRepo := mocks.NewMockAccountRepository(t)
		movRepo := mocks.NewMockMovementRepository(t)

		a := buildAccount(t, ownerID, 10000)
		g := buildGoal(t, ownerID, 10000, 2500, &a.ID)
		a.GoalID = &g.ID
		a.IsGoalAccount = true

		passthroughDo(uow)
		uow.EXPECT().GoalRepository().Return(goalRepo, nil)
		uow.EXPECT().AccountRepository().Return(accRepo, nil)
		uow.EXPECT().MovementRepository().Return(movRepo, nil)
		goalRepo.EXPECT().GetForUpdate(mock.Anything, ownerID, g.ID).Return(g, nil)
		accRepo.EXPECT().GetForUpdate(mock.Anything, ownerID, a.ID).Return(a, nil)
		accRepo.EXPECT().Update(mock.Anything, a).Return(nil)
		goalRepo.EXPECT().Delete(mock.Anything, ownerID, g.ID).Return(nil)

		var recorded *movement.Movement
		movRepo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(
			func(ctx context.Context, m *movement.Movement) error {
				recorded = m
				return nil
			})

		require.NoError(t, svc.DeleteGoal(context.Background(), ownerID, g.ID))
		assert.Nil(t, a.GoalID)
		assert.False(t, a.IsGoalAccount)

		require.NotNil(t, recorded)
		assert.Equal(t, movement.GoalDeleted, recorded.Type)
	})

	t.Run("already-deleted funding account is tolerated", func(t *testing.T) {
		svc, uow, _ := newService(t)
		goalRepo := mocks.NewMockGoalRepository(t)
		accRepo := mocks.NewMockAccountRepository(t)
		movRepo := mocks.NewMockMovementRepository(t)

		accountID := uuid.New()
		g := buildGoal(t, ownerID, 10000, 2500, &accountID)

		passthroughDo(uow)
		uow.EXPECT().GoalRepository().Return(goalRepo, nil)
		uow.EXPECT().AccountRepository().Return(accRepo, nil)
		uow.EXPECT().MovementRepository().Return(movRepo, nil)
		goalRepo.EXPECT().GetForUpdate(mock.Anything, ownerID, g.ID).Return(g, nil)
		accRepo.EXPECT().GetForUpdate(mock.Anything, ownerID, accountID).
			Return(nil, accountdomain.ErrAccountNotFound)
		goalRepo.EXPECT().Delete(mock.Anything, ownerID, g.ID).Return(nil)
		movRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

		require.NoError(t, svc.DeleteGoal(context.Background(), ownerID, g.ID))
	})
}

func TestUpdateGoal(t *testing.T) {
	ownerID := uuid.New()

	t.Run("target converts in the goal currency", func(t *testing.T) {
		svc, uow, _ := newService(t)
		goalRepo := mocks.NewMockGoalRepository(t)
		movRepo := mocks.NewMockMovementRepository(t)

		g := buildGoal(t, ownerID, 10000, 2500, nil)
		passthroughDo(uow)
		uow.EXPECT().GoalRepository().Return(goalRepo, nil)
		uow.EXPECT().MovementRepository().Return(movRepo, nil)
		goalRepo.EXPECT().GetForUpdate(mock.Anything, ownerID, g.ID).Return(g, nil)
		goalRepo.EXPECT().Update(mock.Anything, g).Return(nil)
		movRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

		target := 250.0
		read, err := svc.UpdateGoal(context.Background(), ownerID, g.ID, dto.GoalUpdate{Target: &target})
		require.NoError(t, err)
		assert.InDelta(t, 250, read.Target, 0.001)
		assert.Equal(t, int64(25000), g.Target.Amount())
		// Current amount only moves through funding.
		assert.InDelta(t, 25, read.Current, 0.001)
	})
}
