package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTLCache(t *testing.T) {
	t.Run("set and get", func(t *testing.T) {
		cache := NewTTLCache()
		cache.Set("k", []byte("v"), time.Minute)

		got, ok := cache.Get("k")
		assert.True(t, ok)
		assert.Equal(t, []byte("v"), got)
	})

	t.Run("missing key", func(t *testing.T) {
		cache := NewTTLCache()
		_, ok := cache.Get("nope")
		assert.False(t, ok)
	})

	t.Run("expired entry is dropped", func(t *testing.T) {
		cache := NewTTLCache()
		cache.Set("k", []byte("v"), 10*time.Millisecond)
		time.Sleep(25 * time.Millisecond)

		_, ok := cache.Get("k")
		assert.False(t, ok)
	})

	t.Run("zero ttl stores nothing", func(t *testing.T) {
		cache := NewTTLCache()
		cache.Set("k", []byte("v"), 0)

		_, ok := cache.Get("k")
		assert.False(t, ok)
	})

	t.Run("delete", func(t *testing.T) {
		cache := NewTTLCache()
		cache.Set("k", []byte("v"), time.Minute)
		cache.Delete("k")

		_, ok := cache.Get("k")
		assert.False(t, ok)
	})
}
