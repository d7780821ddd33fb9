package cache_test

import (
	"testing"
	"time"

	"github.com/fintrackd/fintrack/pkg/cache"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTTLCache(t *testing.T) {
	ownerA := uuid.New()
	ownerB := uuid.New()

	t.Run("set and get", func(t *testing.T) {
		c := cache.New[string](time.Minute)
		c.Set(ownerA, "hello")

		got, ok := c.Get(ownerA)
		require.True(t, ok)
		assert.Equal(t, "hello", got)
	})

	t.Run("miss on unknown owner", func(t *testing.T) {
		c := cache.New[string](time.Minute)
		_, ok := c.Get(ownerA)
		assert.False(t, ok)
	})

	t.Run("entries are owner scoped", func(t *testing.T) {
		c := cache.New[int](time.Minute)
		c.Set(ownerA, 1)
		c.Set(ownerB, 2)

		a, _ := c.Get(ownerA)
		b, _ := c.Get(ownerB)
		assert.Equal(t, 1, a)
		assert.Equal(t, 2, b)
	})

	t.Run("invalidate drops only that owner", func(t *testing.T) {
		c := cache.New[int](time.Minute)
		c.Set(ownerA, 1)
		c.Set(ownerB, 2)

		c.Invalidate(ownerA)
		_, ok := c.Get(ownerA)
		assert.False(t, ok)
		_, ok = c.Get(ownerB)
		assert.True(t, ok)
	})

	t.Run("entries expire", func(t *testing.T) {
		c := cache.New[int](10 * time.Millisecond)
		c.Set(ownerA, 1)

		time.Sleep(20 * time.Millisecond)
		_, ok := c.Get(ownerA)
		assert.False(t, ok)
	})
}
