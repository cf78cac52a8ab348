package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/covelane/ltc-data-api/internal/platform/config"
)

func TestNew_DisabledReturnsNil(t *testing.T) {
	assert.Nil(t, New(nil))
	assert.Nil(t, New(&config.CacheConfig{Enabled: false}))
}

func TestMemoryCache_SetGet(t *testing.T) {
	c := newMemoryCache()
	ctx := context.Background()

	_, ok := c.Get(ctx, "missing")
	assert.False(t, ok)

	c.Set(ctx, "analytics:policies", []byte(`{"total_policies":10}`), time.Minute)
	value, ok := c.Get(ctx, "analytics:policies")
	assert.True(t, ok)
	assert.Equal(t, []byte(`{"total_policies":10}`), value)
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := newMemoryCache()
	ctx := context.Background()

	c.Set(ctx, "k", []byte("v"), -time.Second)
	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
}
