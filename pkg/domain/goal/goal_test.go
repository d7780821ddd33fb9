package goal_test

import (
	"testing"
	"time"

	"github.com/fintrackd/fintrack/pkg/domain/goal"
	"github.com/fintrackd/fintrack/pkg/money"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildGoal(t *testing.T, ownerID uuid.UUID, target, current int64) *goal.Goal {
	t.Helper()
	g, err := goal.New().
		WithOwner(ownerID).
		WithName("Vacation").
		WithTarget(target).
		WithCurrent(current).
		Build()
	require.NoError(t, err)
	return g
}

func TestBuilder_Build(t *testing.T) {
	ownerID := uuid.New()

	t.Run("defaults", func(t *testing.T) {
		g := buildGoal(t, ownerID, 100000, 0)
		assert.Equal(t, goal.StatusActive, g.Status)
		assert.Equal(t, "USD", g.Currency().String())
		assert.True(t, g.Current.IsZero())
		assert.Nil(t, g.AccountID)
	})

	t.Run("missing owner", func(t *testing.T) {
		_, err := goal.New().WithName("Vacation").WithTarget(100).Build()
		require.Error(t, err)
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := goal.New().WithOwner(ownerID).WithTarget(100).Build()
		require.Error(t, err)
	})

	t.Run("non positive target", func(t *testing.T) {
		_, err := goal.New().WithOwner(ownerID).WithName("Vacation").WithTarget(0).Build()
		require.ErrorIs(t, err, goal.ErrInvalidTarget)
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := goal.New().
			WithOwner(ownerID).
			WithName("Vacation").
			WithTarget(100).
			WithStatus("paused").
			Build()
		require.Error(t, err)
	})

	t.Run("linked account and deadline", func(t *testing.T) {
		accountID := uuid.New()
		deadline := time.Now().UTC().AddDate(1, 0, 0)
		g, err := goal.New().
			WithOwner(ownerID).
			WithName("House deposit").
			WithTarget(5000000).
			WithAccount(&accountID).
			WithDeadline(&deadline).
			Build()
		require.NoError(t, err)
		require.NotNil(t, g.AccountID)
		assert.Equal(t, accountID, *g.AccountID)
		require.NotNil(t, g.Deadline)
	})
}

func TestGoal_AddFunds(t *testing.T) {
	ownerID := uuid.New()

	t.Run("accumulates below target", func(t *testing.T) {
		g := buildGoal(t, ownerID, 100000, 0)
		completedNow, err := g.AddFunds(money.Must(250, "USD"))
		require.NoError(t, err)
		assert.False(t, completedNow)
		assert.Equal(t, int64(25000), g.Current.Amount())
		assert.Equal(t, goal.StatusActive, g.Status)
	})

	t.Run("reaching target completes exactly once", func(t *testing.T) {
		g := buildGoal(t, ownerID, 100000, 75000)
		completedNow, err := g.AddFunds(money.Must(250, "USD"))
		require.NoError(t, err)
		assert.True(t, completedNow)
		assert.Equal(t, goal.StatusCompleted, g.Status)

		// Further funding keeps accumulating but never reports completion again.
		completedNow, err = g.AddFunds(money.Must(100, "USD"))
		require.NoError(t, err)
		assert.False(t, completedNow)
		assert.Equal(t, int64(110000), g.Current.Amount())
		assert.Equal(t, goal.StatusCompleted, g.Status)
	})

	t.Run("funding past target in one call", func(t *testing.T) {
		g := buildGoal(t, ownerID, 100000, 0)
		completedNow, err := g.AddFunds(money.Must(1500, "USD"))
		require.NoError(t, err)
		assert.True(t, completedNow)
		assert.Equal(t, int64(150000), g.Current.Amount())
	})

	t.Run("non positive amount", func(t *testing.T) {
		g := buildGoal(t, ownerID, 100000, 0)
		_, err := g.AddFunds(money.Zero("USD"))
		require.ErrorIs(t, err, goal.ErrAmountMustBePositive)
	})

	t.Run("currency mismatch", func(t *testing.T) {
		g := buildGoal(t, ownerID, 100000, 0)
		_, err := g.AddFunds(money.Must(10, "EUR"))
		require.ErrorIs(t, err, money.ErrCurrencyMismatch)
	})
}

func TestGoal_ReduceProgress(t *testing.T) {
	ownerID := uuid.New()

	t.Run("reduces current", func(t *testing.T) {
		g := buildGoal(t, ownerID, 100000, 50000)
		require.NoError(t, g.ReduceProgress(money.Must(100, "USD")))
		assert.Equal(t, int64(40000), g.Current.Amount())
	})

	t.Run("floors at zero", func(t *testing.T) {
		g := buildGoal(t, ownerID, 100000, 5000)
		require.NoError(t, g.ReduceProgress(money.Must(500, "USD")))
		assert.True(t, g.Current.IsZero())
	})

	t.Run("completed goal stays completed below target", func(t *testing.T) {
		g := buildGoal(t, ownerID, 100000, 0)
		completedNow, err := g.AddFunds(money.Must(1000, "USD"))
		require.NoError(t, err)
		require.True(t, completedNow)

		require.NoError(t, g.ReduceProgress(money.Must(900, "USD")))
		assert.Equal(t, int64(10000), g.Current.Amount())
		assert.Equal(t, goal.StatusCompleted, g.Status)
	})

	t.Run("non positive amount", func(t *testing.T) {
		g := buildGoal(t, ownerID, 100000, 50000)
		err := g.ReduceProgress(money.Must(-10, "USD"))
		require.ErrorIs(t, err, goal.ErrAmountMustBePositive)
	})
}

func TestGoal_DetachAccount(t *testing.T) {
	ownerID := uuid.New()
	accountID := uuid.New()
	g, err := goal.New().
		WithOwner(ownerID).
		WithName("Vacation").
		WithTarget(100000).
		WithAccount(&accountID).
		Build()
	require.NoError(t, err)

	g.DetachAccount()
	assert.Nil(t, g.AccountID)
}

func TestPatch_Apply(t *testing.T) {
	ownerID := uuid.New()

	t.Run("updates named fields", func(t *testing.T) {
		g := buildGoal(t, ownerID, 100000, 25000)
		name := "New car"
		target := int64(200000)
		status := goal.StatusCanceled
		err := goal.Patch{Name: &name, Target: &target, Status: &status}.Apply(g)
		require.NoError(t, err)
		assert.Equal(t, "New car", g.Name)
		assert.Equal(t, int64(200000), g.Target.Amount())
		assert.Equal(t, goal.StatusCanceled, g.Status)
		// Current amount only moves through funding operations.
		assert.Equal(t, int64(25000), g.Current.Amount())
	})

	t.Run("non positive target rejected", func(t *testing.T) {
		g := buildGoal(t, ownerID, 100000, 0)
		target := int64(0)
		err := goal.Patch{Target: &target}.Apply(g)
		require.ErrorIs(t, err, goal.ErrInvalidTarget)
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		g := buildGoal(t, ownerID, 100000, 0)
		status := goal.Status("paused")
		err := goal.Patch{Status: &status}.Apply(g)
		require.Error(t, err)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		g := buildGoal(t, ownerID, 100000, 0)
		name := ""
		err := goal.Patch{Name: &name}.Apply(g)
		require.Error(t, err)
	})
}
