package mood

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"kindred/pkg/cache"
)

// CachedStore wraps a Store with a Redis cache on the daily mood row, which
// every prompt build reads. The audit tables pass straight through.
type CachedStore struct {
	store Store
	cache *cache.Cache
	log   *zap.SugaredLogger
}

func NewCachedStore(store Store, c *cache.Cache, logger *zap.SugaredLogger) *CachedStore {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &CachedStore{store: store, cache: c, log: logger}
}

func (c *CachedStore) moodKey(characterID, date string) string {
	return c.cache.Key("mood", characterID, date)
}

func (c *CachedStore) GetDailyMood(characterID, date string) (*DailyMood, error) {
	ctx := context.Background()
	key := c.moodKey(characterID, date)

	var cached DailyMood
	err := c.cache.GetJSON(ctx, key, &cached)
	if err == nil {
		return &cached, nil
	}
	if err != redis.Nil {
		c.log.Warnw("cache read failed", "key", key, "error", err)
	}

	mood, err := c.store.GetDailyMood(characterID, date)
	if err != nil {
		return nil, err
	}
	if err := c.cache.SetJSON(ctx, key, mood, cache.DailyMoodTTL); err != nil {
		c.log.Warnw("cache write failed", "key", key, "error", err)
	}
	return mood, nil
}

func (c *CachedStore) SetDailyMood(mood *DailyMood) error {
	if err := c.store.SetDailyMood(mood); err != nil {
		return err
	}
	key := c.moodKey(mood.CharacterID, mood.Date)
	if err := c.cache.Delete(context.Background(), key); err != nil {
		c.log.Warnw("cache invalidation failed", "key", key, "error", err)
	}
	return nil
}

func (c *CachedStore) AddChange(change *Change) error {
	return c.store.AddChange(change)
}

func (c *CachedStore) RecentChanges(characterID, date string, limit int) ([]Change, error) {
	return c.store.RecentChanges(characterID, date, limit)
}

func (c *CachedStore) AddTransition(transition *Transition) error {
	return c.store.AddTransition(transition)
}

func (c *CachedStore) RecentTransitions(characterID, date string, limit int) ([]Transition, error) {
	return c.store.RecentTransitions(characterID, date, limit)
}
