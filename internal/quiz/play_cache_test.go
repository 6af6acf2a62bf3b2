package quiz

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayCache(t *testing.T) {
	ctx := context.Background()
	view := []SanitizedQuestion{{ID: uuid.New(), Text: "Q?", Type: QuestionTypeText, Options: []SanitizedOption{}}}

	t.Run("RoundTripsAtCurrentVersion", func(t *testing.T) {
		pc := NewPlayCache(newMapCache(), time.Minute)
		quizID := uuid.New()

		version, ok := pc.Version(ctx, quizID)
		require.True(t, ok)
		assert.Zero(t, version)

		pc.Set(ctx, quizID, version, view)
		got, ok := pc.Get(ctx, quizID, version)
		require.True(t, ok)
		assert.Equal(t, view, got)
	})

	t.Run("InvalidateStartsNewVersion", func(t *testing.T) {
		store := newMapCache()
		pc := NewPlayCache(store, time.Minute)
		quizID := uuid.New()

		pc.Set(ctx, quizID, 0, view)
		pc.Invalidate(ctx, quizID)

		version, ok := pc.Version(ctx, quizID)
		require.True(t, ok)
		assert.Equal(t, int64(1), version)
		assert.False(t, store.has(playKey(quizID, 0)))
		_, ok = pc.Get(ctx, quizID, version)
		assert.False(t, ok)
	})

	t.Run("SetReadBeforeInvalidateIsDropped", func(t *testing.T) {
		store := newMapCache()
		pc := NewPlayCache(store, time.Minute)
		quizID := uuid.New()

		version, _ := pc.Version(ctx, quizID)
		pc.Invalidate(ctx, quizID)
		pc.Set(ctx, quizID, version, view)

		assert.False(t, store.has(playKey(quizID, version)))
		assert.False(t, store.hasPlayView(quizID))
	})

	t.Run("UnparsableVersionBypassesCache", func(t *testing.T) {
		store := newMapCache()
		pc := NewPlayCache(store, time.Minute)
		quizID := uuid.New()
		require.NoError(t, store.Set(ctx, playVersionKey(quizID), []byte("garbage"), 0))

		_, ok := pc.Version(ctx, quizID)
		assert.False(t, ok)
	})

	t.Run("NilStoreNeverCaches", func(t *testing.T) {
		pc := NewPlayCache(nil, time.Minute)
		quizID := uuid.New()

		pc.Set(ctx, quizID, 0, view)
		_, ok := pc.Get(ctx, quizID, 0)
		assert.False(t, ok)
		pc.Invalidate(ctx, quizID)
	})
}
