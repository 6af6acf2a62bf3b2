package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quiz-lambda/internal/cache"
	"github.com/saulo-duarte/quiz-lambda/internal/config"
)

// PlayCache keeps sanitized question sets per quiz. Cache failures are logged
// and treated as misses; storage stays the source of truth.
type PlayCache struct {
	store cache.Cache
	ttl   time.Duration
}

func NewPlayCache(store cache.Cache, ttl time.Duration) *PlayCache {
	if store == nil {
		store = cache.NewNoop()
	}
	return &PlayCache{store: store, ttl: ttl}
}

func playKey(quizID uuid.UUID, version int64) string {
	return fmt.Sprintf("quiz:%s:play:v%d", quizID, version)
}

func playVersionKey(quizID uuid.UUID) string {
	return fmt.Sprintf("quiz:%s:play:version", quizID)
}

// Version returns the current generation of a quiz's play view. Views are
// stored under their generation, so a view built from a read that raced with
// Invalidate lands under a key no later reader looks up. ok is false when the
// generation cannot be read; callers then bypass the cache.
func (c *PlayCache) Version(ctx context.Context, quizID uuid.UUID) (version int64, ok bool) {
	raw, err := c.store.Get(ctx, playVersionKey(quizID))
	if errors.Is(err, cache.ErrMiss) {
		return 0, true
	}
	if err != nil {
		config.WithContext(ctx).WithError(err).Warn("Failed to read play cache version")
		return 0, false
	}
	version, err = strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		config.WithContext(ctx).WithError(err).Warn("Discarding unparsable play cache version")
		return 0, false
	}
	return version, true
}

func (c *PlayCache) Get(ctx context.Context, quizID uuid.UUID, version int64) ([]SanitizedQuestion, bool) {
	log := config.WithContext(ctx)

	raw, err := c.store.Get(ctx, playKey(quizID, version))
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			log.WithError(err).Warn("Failed to read play questions from cache")
		}
		return nil, false
	}

	var questions []SanitizedQuestion
	if err := json.Unmarshal(raw, &questions); err != nil {
		log.WithError(err).Warn("Discarding undecodable cached play questions")
		return nil, false
	}
	return questions, true
}

// Set stores questions read at version. It is skipped when the quiz has been
// invalidated since.
func (c *PlayCache) Set(ctx context.Context, quizID uuid.UUID, version int64, questions []SanitizedQuestion) {
	if current, ok := c.Version(ctx, quizID); !ok || current != version {
		config.WithContext(ctx).WithField("quiz_id", quizID).Debug("Play questions changed while reading, not caching")
		return
	}

	raw, err := json.Marshal(questions)
	if err != nil {
		config.WithContext(ctx).WithError(err).Warn("Failed to encode play questions for cache")
		return
	}
	if err := c.store.Set(ctx, playKey(quizID, version), raw, c.ttl); err != nil {
		config.WithContext(ctx).WithError(err).Warn("Failed to write play questions to cache")
	}
}

// Invalidate moves the quiz to a new generation and drops the view of the old one.
func (c *PlayCache) Invalidate(ctx context.Context, quizID uuid.UUID) {
	log := config.WithContext(ctx).WithField("quiz_id", quizID)

	stale := int64(0)
	next, err := c.store.Incr(ctx, playVersionKey(quizID))
	if err == nil {
		stale = next - 1
	} else {
		log.WithError(err).Warn("Failed to bump play cache version")
		current, ok := c.Version(ctx, quizID)
		if !ok {
			return
		}
		stale = current
	}
	if err := c.store.Delete(ctx, playKey(quizID, stale)); err != nil {
		log.WithError(err).Warn("Failed to invalidate play questions cache")
	}
}
