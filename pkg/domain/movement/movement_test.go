package movement_test

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/fintrackd/fintrack/pkg/domain/movement"
	"github.com/fintrackd/fintrack/pkg/money"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	ownerID := uuid.New()

	t.Run("valid movement", func(t *testing.T) {
		m, err := movement.New(ownerID, movement.AccountCreated, "Created account 'Checking'")
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, m.ID)
		assert.Equal(t, ownerID, m.OwnerID)
		assert.Equal(t, movement.AccountCreated, m.Type)
		assert.False(t, m.Timestamp.IsZero())
		assert.NotNil(t, m.Metadata)
	})

	t.Run("missing owner", func(t *testing.T) {
		_, err := movement.New(uuid.Nil, movement.AccountCreated, "desc")
		require.Error(t, err)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := movement.New(ownerID, movement.Type("account_exploded"), "desc")
		require.ErrorIs(t, err, movement.ErrInvalidType)
	})

	t.Run("missing description", func(t *testing.T) {
		_, err := movement.New(ownerID, movement.AccountCreated, "")
		require.ErrorIs(t, err, movement.ErrDescriptionRequired)
	})
}

func TestType_IsValid(t *testing.T) {
	valid := []movement.Type{
		movement.AccountCreated, movement.AccountUpdated, movement.AccountDeleted,
		movement.TransactionCreated, movement.TransactionUpdated, movement.TransactionDeleted,
		movement.TransferCreated,
		movement.GoalCreated, movement.GoalUpdated, movement.GoalDeleted, movement.GoalFundsAdded,
		movement.RecurringCreated, movement.RecurringUpdated, movement.RecurringDeleted,
	}
	for _, typ := range valid {
		assert.True(t, typ.IsValid(), "expected %q to be valid", typ)
	}

	assert.False(t, movement.Type("").IsValid())
	assert.False(t, movement.Type("account_renamed").IsValid())
}

func TestMovement_Builders(t *testing.T) {
	ownerID := uuid.New()
	entityID := uuid.New()
	fromID := uuid.New()
	toID := uuid.New()
	amount := money.Must(42.50, "USD")

	m, err := movement.New(ownerID, movement.TransferCreated, "Transferred 42.50 USD")
	require.NoError(t, err)

	m.WithEntity(movement.EntityTransaction, entityID).
		WithAmount(amount).
		WithAccounts(&fromID, &toID).
		WithMeta("from_account_name", "Checking").
		WithMeta("to_account_name", "Savings")

	require.NotNil(t, m.EntityID)
	assert.Equal(t, entityID, *m.EntityID)
	assert.Equal(t, movement.EntityTransaction, m.EntityKind)
	require.NotNil(t, m.Amount)
	assert.Equal(t, int64(4250), m.Amount.Amount())
	assert.Equal(t, "USD", m.Currency.String())
	assert.Equal(t, &fromID, m.FromAccountID)
	assert.Equal(t, &toID, m.ToAccountID)
	assert.Equal(t, "Checking", m.Metadata["from_account_name"])
	assert.Equal(t, "Savings", m.Metadata["to_account_name"])

	require.NoError(t, m.Validate())
}

func TestCursor_RoundTrip(t *testing.T) {
	ownerID := uuid.New()
	m, err := movement.New(ownerID, movement.GoalCreated, "Created goal 'Vacation'")
	require.NoError(t, err)

	token := movement.CursorFor(m).Encode()
	require.NotEmpty(t, token)

	c, err := movement.DecodeCursor(token)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, m.ID, c.LastID)
	assert.True(t, c.Timestamp.Equal(m.Timestamp))
}

func TestDecodeCursor(t *testing.T) {
	t.Run("empty token means newest", func(t *testing.T) {
		c, err := movement.DecodeCursor("")
		require.NoError(t, err)
		assert.Nil(t, c)
	})

	t.Run("garbage base64", func(t *testing.T) {
		_, err := movement.DecodeCursor("!!!not-base64!!!")
		require.ErrorIs(t, err, movement.ErrInvalidCursor)
	})

	t.Run("missing separator", func(t *testing.T) {
		token := movement.Cursor{Timestamp: time.Now(), LastID: uuid.New()}.Encode()
		// Valid base64 that decodes to a payload without the separator.
		_, err := movement.DecodeCursor(token[:4])
		require.Error(t, err)
	})

	t.Run("bad timestamp", func(t *testing.T) {
		_, err := movement.DecodeCursor(encodeRaw("not-a-time|" + uuid.NewString()))
		require.ErrorIs(t, err, movement.ErrInvalidCursor)
	})

	t.Run("bad uuid", func(t *testing.T) {
		raw := time.Now().UTC().Format(time.RFC3339Nano) + "|not-a-uuid"
		_, err := movement.DecodeCursor(encodeRaw(raw))
		require.ErrorIs(t, err, movement.ErrInvalidCursor)
	})
}

func encodeRaw(raw string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}
