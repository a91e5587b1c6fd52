package ratelimiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyedLimiter_Allow(t *testing.T) {
	current := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	newLimiter := func(perMinute, burst int) *KeyedLimiter {
		l := NewKeyedLimiter(perMinute, burst)
		l.now = func() time.Time { return current }
		return l
	}

	t.Run("burst then reject", func(t *testing.T) {
		l := newLimiter(6, 2)

		allowed, _ := l.Allow("user-1")
		assert.True(t, allowed)
		allowed, _ = l.Allow("user-1")
		assert.True(t, allowed)

		allowed, retryAfter := l.Allow("user-1")
		assert.False(t, allowed)
		assert.InDelta(t, float64(10*time.Second), float64(retryAfter), float64(time.Millisecond))
	})

	t.Run("keys are independent", func(t *testing.T) {
		l := newLimiter(1, 1)

		allowed, _ := l.Allow("user-1")
		assert.True(t, allowed)
		allowed, _ = l.Allow("user-2")
		assert.True(t, allowed)
		allowed, _ = l.Allow("user-1")
		assert.False(t, allowed)
	})

	t.Run("tokens refill over time", func(t *testing.T) {
		l := newLimiter(60, 1)

		allowed, _ := l.Allow("user-1")
		assert.True(t, allowed)
		allowed, _ = l.Allow("user-1")
		assert.False(t, allowed)

		current = current.Add(time.Second)
		allowed, _ = l.Allow("user-1")
		assert.True(t, allowed)
	})

	t.Run("non positive rate disables limiting", func(t *testing.T) {
		l := newLimiter(0, 1)
		for i := 0; i < 100; i++ {
			allowed, _ := l.Allow("user-1")
			assert.True(t, allowed)
		}
	})

	t.Run("idle keys are swept", func(t *testing.T) {
		l := newLimiter(10, 1)
		l.Allow("user-1")
		l.Allow("user-2")
		assert.Equal(t, 2, l.Len())

		current = current.Add(time.Hour)
		l.Allow("user-3")
		assert.Equal(t, 1, l.Len())
	})
}
