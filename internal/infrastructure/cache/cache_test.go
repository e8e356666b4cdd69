package cache

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_GetSet(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	_, ok, err := c.Get(ctx, "x")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "x", []byte(`{"a":1}`), 0))
	v, ok, err := c.Get(ctx, "x")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"a":1}`, string(v))

	v[0] = 'X'
	v2, _, _ := c.Get(ctx, "x")
	assert.Equal(t, `{"a":1}`, string(v2), "Get devuelve copia")
}

func TestMemoryCache_Vencimiento(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewMemoryCache()
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	_, ok, _ := c.Get(ctx, "k")
	assert.True(t, ok)

	now = now.Add(time.Minute)
	_, ok, _ = c.Get(ctx, "k")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len(), "entrada vencida purgada")
}

func TestMemoryCache_PurgaNoBorraSetReciente(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewMemoryCache()
	var inject bool
	c.now = func() time.Time {
		if inject {
			// Set que llega entre la lectura y la purga de la entrada vencida.
			inject = false
			require.NoError(t, c.Set(ctx, "k", []byte("nuevo"), time.Minute))
		}
		return now
	}

	require.NoError(t, c.Set(ctx, "k", []byte("viejo"), time.Minute))
	now = now.Add(time.Minute)
	inject = true
	_, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	v, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok, "el valor recién guardado sobrevive a la purga")
	assert.Equal(t, "nuevo", string(v))
}

func TestMemoryCache_Concurrente(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = c.Set(ctx, "k", []byte("v"), time.Minute)
			_, _, _ = c.Get(ctx, "k")
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, c.Len())
}

// Requiere un Redis real: REDIS_TEST_ADDR=localhost:6379 go test ./...
func TestRedisCache_Integracion(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR no definido")
	}
	ctx := context.Background()
	c, err := NewRedisCache(ctx, RedisOptions{Addr: addr})
	require.NoError(t, err)
	defer c.Close()

	_, ok, err := c.Get(ctx, "inexistente")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "test", []byte("ok"), time.Minute))
	v, ok, err := c.Get(ctx, "test")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "ok", string(v))
}
