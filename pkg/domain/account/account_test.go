package account_test

import (
	"testing"

	"github.com/fintrackd/fintrack/pkg/domain/account"
	"github.com/fintrackd/fintrack/pkg/money"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildAccount(t *testing.T, ownerID uuid.UUID, balance int64) *account.Account {
	t.Helper()
	a, err := account.New().
		WithOwner(ownerID).
		WithName("Checking").
		WithBalance(balance).
		Build()
	require.NoError(t, err)
	return a
}

func TestBuilder_Build(t *testing.T) {
	ownerID := uuid.New()

	t.Run("defaults", func(t *testing.T) {
		a, err := account.New().WithOwner(ownerID).WithName("Main").Build()
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, a.ID)
		assert.Equal(t, account.TypeChecking, a.Type)
		assert.Equal(t, "USD", a.Currency().String())
		assert.True(t, a.Balance.IsZero())
	})

	t.Run("missing owner", func(t *testing.T) {
		_, err := account.New().WithName("Main").Build()
		require.Error(t, err)
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := account.New().WithOwner(ownerID).Build()
		require.Error(t, err)
	})

	t.Run("invalid type", func(t *testing.T) {
		_, err := account.New().WithOwner(ownerID).WithName("Main").WithType("retirement").Build()
		require.ErrorIs(t, err, account.ErrInvalidType)
	})

	t.Run("negative initial balance is legal", func(t *testing.T) {
		a, err := account.New().
			WithOwner(ownerID).
			WithName("Credit card").
			WithType(account.TypeCredit).
			WithBalance(-50000).
			Build()
		require.NoError(t, err)
		assert.True(t, a.Balance.IsNegative())
	})

	t.Run("unsupported currency", func(t *testing.T) {
		_, err := account.New().WithOwner(ownerID).WithName("Main").WithCurrency("ZZZ").Build()
		require.Error(t, err)
	})
}

func TestAccount_ValidateEntry(t *testing.T) {
	ownerID := uuid.New()
	a := buildAccount(t, ownerID, 10000)

	t.Run("valid entry", func(t *testing.T) {
		require.NoError(t, a.ValidateEntry(ownerID, money.Must(50, "USD")))
	})

	t.Run("wrong owner", func(t *testing.T) {
		err := a.ValidateEntry(uuid.New(), money.Must(50, "USD"))
		require.ErrorIs(t, err, account.ErrNotOwner)
	})

	t.Run("zero amount", func(t *testing.T) {
		err := a.ValidateEntry(ownerID, money.Zero("USD"))
		require.ErrorIs(t, err, account.ErrAmountMustBePositive)
	})

	t.Run("negative amount", func(t *testing.T) {
		err := a.ValidateEntry(ownerID, money.Must(-5, "USD"))
		require.ErrorIs(t, err, account.ErrAmountMustBePositive)
	})

	t.Run("currency mismatch", func(t *testing.T) {
		err := a.ValidateEntry(ownerID, money.Must(50, "EUR"))
		require.ErrorIs(t, err, account.ErrCurrencyMismatch)
	})

	t.Run("entry larger than balance passes", func(t *testing.T) {
		// Account ledger debits may overdraw; only transfers and goal
		// contributions require sufficient funds.
		require.NoError(t, a.ValidateEntry(ownerID, money.Must(500, "USD")))
	})
}

func TestAccount_ValidateDebit(t *testing.T) {
	ownerID := uuid.New()
	a := buildAccount(t, ownerID, 10000)

	t.Run("sufficient funds", func(t *testing.T) {
		require.NoError(t, a.ValidateDebit(ownerID, money.Must(100, "USD")))
	})

	t.Run("exact balance", func(t *testing.T) {
		require.NoError(t, a.ValidateDebit(ownerID, money.Must(100, "USD")))
	})

	t.Run("insufficient funds", func(t *testing.T) {
		err := a.ValidateDebit(ownerID, money.Must(100.01, "USD"))
		require.ErrorIs(t, err, account.ErrInsufficientFunds)
	})
}

func TestAccount_ValidateTransfer(t *testing.T) {
	ownerID := uuid.New()
	src := buildAccount(t, ownerID, 10000)
	dest := buildAccount(t, ownerID, 0)

	t.Run("valid transfer", func(t *testing.T) {
		require.NoError(t, src.ValidateTransfer(ownerID, dest, money.Must(25, "USD")))
	})

	t.Run("same account", func(t *testing.T) {
		err := src.ValidateTransfer(ownerID, src, money.Must(25, "USD"))
		require.ErrorIs(t, err, account.ErrSameAccountTransfer)
	})

	t.Run("nil destination", func(t *testing.T) {
		err := src.ValidateTransfer(ownerID, nil, money.Must(25, "USD"))
		require.ErrorIs(t, err, account.ErrNilAccount)
	})

	t.Run("non positive amount", func(t *testing.T) {
		err := src.ValidateTransfer(ownerID, dest, money.Zero("USD"))
		require.ErrorIs(t, err, account.ErrAmountMustBePositive)
	})

	t.Run("destination currency mismatch", func(t *testing.T) {
		eurDest, err := account.New().
			WithOwner(ownerID).
			WithName("EUR account").
			WithCurrency("EUR").
			Build()
		require.NoError(t, err)
		err = src.ValidateTransfer(ownerID, eurDest, money.Must(25, "USD"))
		require.ErrorIs(t, err, account.ErrCurrencyMismatch)
	})

	t.Run("insufficient funds", func(t *testing.T) {
		err := src.ValidateTransfer(ownerID, dest, money.Must(100.01, "USD"))
		require.ErrorIs(t, err, account.ErrInsufficientFunds)
	})

	t.Run("wrong owner", func(t *testing.T) {
		err := src.ValidateTransfer(uuid.New(), dest, money.Must(25, "USD"))
		require.ErrorIs(t, err, account.ErrNotOwner)
	})
}

func TestAccount_ApplyCreditDebit(t *testing.T) {
	ownerID := uuid.New()
	a := buildAccount(t, ownerID, 10000)

	require.NoError(t, a.ApplyCredit(money.Must(25.50, "USD")))
	assert.Equal(t, int64(12550), a.Balance.Amount())

	require.NoError(t, a.ApplyDebit(money.Must(125.50, "USD")))
	assert.True(t, a.Balance.IsZero())

	// Debit past zero is legal at this level; validation decides policy.
	require.NoError(t, a.ApplyDebit(money.Must(10, "USD")))
	assert.Equal(t, int64(-1000), a.Balance.Amount())

	err := a.ApplyCredit(money.Must(10, "EUR"))
	require.ErrorIs(t, err, money.ErrCurrencyMismatch)
}

func TestAccount_DetachGoal(t *testing.T) {
	ownerID := uuid.New()
	goalID := uuid.New()
	a, err := account.New().
		WithOwner(ownerID).
		WithName("Vacation fund").
		WithGoalLink(&goalID, true).
		Build()
	require.NoError(t, err)
	require.True(t, a.IsGoalAccount)

	a.DetachGoal()
	assert.Nil(t, a.GoalID)
	assert.False(t, a.IsGoalAccount)
}

func TestPatch_Apply(t *testing.T) {
	ownerID := uuid.New()

	t.Run("updates named fields only", func(t *testing.T) {
		a := buildAccount(t, ownerID, 10000)
		name := "Renamed"
		typ := account.TypeSavings
		isDefault := true
		err := account.Patch{Name: &name, Type: &typ, IsDefault: &isDefault}.Apply(a)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", a.Name)
		assert.Equal(t, account.TypeSavings, a.Type)
		assert.True(t, a.IsDefault)
		// Balance is untouched by the generic update path.
		assert.Equal(t, int64(10000), a.Balance.Amount())
	})

	t.Run("empty name rejected", func(t *testing.T) {
		a := buildAccount(t, ownerID, 0)
		name := ""
		err := account.Patch{Name: &name}.Apply(a)
		require.Error(t, err)
	})

	t.Run("invalid type rejected", func(t *testing.T) {
		a := buildAccount(t, ownerID, 0)
		typ := account.Type("retirement")
		err := account.Patch{Type: &typ}.Apply(a)
		require.ErrorIs(t, err, account.ErrInvalidType)
	})
}
