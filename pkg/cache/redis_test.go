package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/pathfinder/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	Name  string
	Score float64
}

func setupTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(func() { mr.Close() })

	c, err := NewRedis(context.Background(), config.Redis{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c, mr
}

func TestSetGetInvalidate(t *testing.T) {
	c, mr := setupTestCache(t)
	ctx := context.Background()

	expected := testStruct{Name: "0xabc", Score: 0.75}
	require.NoError(t, c.Set(ctx, "reputation:0xabc", expected, time.Minute))

	var actual testStruct
	found, err := c.Get(ctx, "reputation:0xabc", &actual)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, expected, actual)

	mr.FastForward(2 * time.Minute)
	found, err = c.Get(ctx, "reputation:0xabc", &actual)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, "k", 1, 0))
	require.NoError(t, c.Invalidate(ctx, "k"))
	var n int
	found, err = c.Get(ctx, "k", &n)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestGetCorruptValue(t *testing.T) {
	c, mr := setupTestCache(t)
	require.NoError(t, mr.Set("bad", "{not json"))

	var out testStruct
	_, err := c.Get(context.Background(), "bad", &out)
	assert.Error(t, err)
}

func TestNewRedis_Unreachable(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()

	_, err = NewRedis(context.Background(), config.Redis{Addr: addr})
	assert.Error(t, err)
}
