package relationship

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"kindred/pkg/cache"
)

// CachedStore wraps a Store with a Redis read cache for the hot read paths
// (record lookups, leaderboard, reward listing). Cache failures are logged
// and fall through to the backing store, which stays the source of truth.
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

func (c *CachedStore) recordKey(userID, characterID string) string {
	return c.cache.Key("relationship", userID, characterID)
}

func (c *CachedStore) leaderboardKey() string {
	return c.cache.Key("leaderboard")
}

func (c *CachedStore) rewardsKey() string {
	return c.cache.Key("rewards")
}

func (c *CachedStore) invalidate(keys ...string) {
	if err := c.cache.Delete(context.Background(), keys...); err != nil {
		c.log.Warnw("cache invalidation failed", "error", err)
	}
}

func (c *CachedStore) GetRecord(userID, characterID string) (*Record, error) {
	ctx := context.Background()
	key := c.recordKey(userID, characterID)

	var cached Record
	err := c.cache.GetJSON(ctx, key, &cached)
	if err == nil {
		return &cached, nil
	}
	if err != redis.Nil {
		c.log.Warnw("cache read failed", "key", key, "error", err)
	}

	rec, err := c.store.GetRecord(userID, characterID)
	if err != nil {
		return nil, err
	}
	if err := c.cache.SetJSON(ctx, key, rec, cache.StatusTTL); err != nil {
		c.log.Warnw("cache write failed", "key", key, "error", err)
	}
	return rec, nil
}

func (c *CachedStore) EnsureRecord(userID, characterID string, createdAt time.Time) (*Record, error) {
	rec, err := c.store.EnsureRecord(userID, characterID, createdAt)
	if err != nil {
		return nil, err
	}
	c.invalidate(c.recordKey(userID, characterID))
	return rec, nil
}

func (c *CachedStore) UpdateRecord(rec *Record) error {
	if err := c.store.UpdateRecord(rec); err != nil {
		return err
	}
	c.invalidate(c.recordKey(rec.UserID, rec.CharacterID), c.leaderboardKey())
	return nil
}

func (c *CachedStore) AddSession(sess *Session) error {
	return c.store.AddSession(sess)
}

func (c *CachedStore) RecentSessions(userID, characterID string, limit int) ([]Session, error) {
	return c.store.RecentSessions(userID, characterID, limit)
}

func (c *CachedStore) AddEmotionalMoment(moment *EmotionalMoment) error {
	return c.store.AddEmotionalMoment(moment)
}

func (c *CachedStore) CountMomentsOnDay(userID, characterID, day string) (int, error) {
	return c.store.CountMomentsOnDay(userID, characterID, day)
}

func (c *CachedStore) RecentMoments(userID, characterID string, limit int) ([]EmotionalMoment, error) {
	return c.store.RecentMoments(userID, characterID, limit)
}

func (c *CachedStore) GetReward(userID, characterID string) (*RewardRecord, error) {
	return c.store.GetReward(userID, characterID)
}

func (c *CachedStore) AllocateReward(userID, characterID string, poolSize int, achievedAt time.Time) (*RewardRecord, error) {
	reward, err := c.store.AllocateReward(userID, characterID, poolSize, achievedAt)
	if err != nil {
		return nil, err
	}
	if reward != nil {
		c.invalidate(c.rewardsKey())
	}
	return reward, nil
}

func (c *CachedStore) ListRewards() ([]RewardRecord, error) {
	ctx := context.Background()
	key := c.rewardsKey()

	var cached []RewardRecord
	err := c.cache.GetJSON(ctx, key, &cached)
	if err == nil {
		return cached, nil
	}
	if err != redis.Nil {
		c.log.Warnw("cache read failed", "key", key, "error", err)
	}

	rewards, err := c.store.ListRewards()
	if err != nil {
		return nil, err
	}
	if err := c.cache.SetJSON(ctx, key, rewards, cache.RewardStatusTTL); err != nil {
		c.log.Warnw("cache write failed", "key", key, "error", err)
	}
	return rewards, nil
}

func (c *CachedStore) SetWalletAddress(userID, characterID, address string) error {
	if err := c.store.SetWalletAddress(userID, characterID, address); err != nil {
		return err
	}
	c.invalidate(c.rewardsKey())
	return nil
}

func (c *CachedStore) MarkRewardMinted(userID, characterID string) error {
	if err := c.store.MarkRewardMinted(userID, characterID); err != nil {
		return err
	}
	c.invalidate(c.rewardsKey())
	return nil
}

func (c *CachedStore) Leaderboard(limit int) ([]Record, error) {
	ctx := context.Background()
	key := c.leaderboardKey()

	var cached []Record
	err := c.cache.GetJSON(ctx, key, &cached)
	if err == nil && len(cached) >= limit {
		return cached[:limit], nil
	}
	if err != nil && err != redis.Nil {
		c.log.Warnw("cache read failed", "key", key, "error", err)
	}

	records, err := c.store.Leaderboard(limit)
	if err != nil {
		return nil, err
	}
	if err := c.cache.SetJSON(ctx, key, records, cache.LeaderboardTTL); err != nil {
		c.log.Warnw("cache write failed", "key", key, "error", err)
	}
	return records, nil
}
