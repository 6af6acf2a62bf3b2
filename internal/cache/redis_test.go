package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/saulo-duarte/quiz-lambda/internal/cache"
	"github.com/saulo-duarte/quiz-lambda/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCache(t *testing.T) {
	ctx := context.Background()
	addr, terminate := testutil.StartRedis(ctx, t)
	defer terminate()

	c, err := cache.NewRedis(ctx, addr, "", 0)
	require.NoError(t, err)

	t.Run("MissingKey", func(t *testing.T) {
		_, err := c.Get(ctx, "quiz:missing:play:v0")
		assert.ErrorIs(t, err, cache.ErrMiss)
	})

	t.Run("SetGetDelete", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, "quiz:1:play:v0", []byte(`[]`), time.Minute))

		got, err := c.Get(ctx, "quiz:1:play:v0")
		require.NoError(t, err)
		assert.Equal(t, []byte(`[]`), got)

		require.NoError(t, c.Delete(ctx, "quiz:1:play:v0"))
		_, err = c.Get(ctx, "quiz:1:play:v0")
		assert.ErrorIs(t, err, cache.ErrMiss)
	})

	t.Run("Incr", func(t *testing.T) {
		n, err := c.Incr(ctx, "quiz:1:play:version")
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		n, err = c.Incr(ctx, "quiz:1:play:version")
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		raw, err := c.Get(ctx, "quiz:1:play:version")
		require.NoError(t, err)
		assert.Equal(t, "2", string(raw))
	})
}
