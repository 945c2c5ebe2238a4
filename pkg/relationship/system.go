package relationship

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kindred/pkg/config"
	"kindred/pkg/lexicon"
)

const historyWindow = 50

// keyedMutex hands out one mutex per pair so exchanges for the same
// user/character serialize without blocking unrelated pairs.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*sync.Mutex)}
}

func (k *keyedMutex) get(key string) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()
	lock, ok := k.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		k.locks[key] = lock
	}
	return lock
}

// System is the relationship ledger engine. All reads and writes go through
// the Store; per-pair locking keeps the read-modify-write of a record
// serialized, and a process-wide mutex covers reward allocation on top of the
// store's own atomicity.
type System struct {
	store    Store
	cfg      *config.Config
	log      *zap.SugaredLogger
	locks    *keyedMutex
	rewardMu sync.Mutex

	now func() time.Time
}

func New(store Store, cfg *config.Config, logger *zap.SugaredLogger) *System {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &System{
		store: store,
		cfg:   cfg,
		log:   logger,
		locks: newKeyedMutex(),
		now:   time.Now,
	}
}

func pairLockKey(userID, characterID string) string {
	return userID + "|" + characterID
}

// RecordExchange folds one user/character exchange into the ledger and
// returns what changed. Recoverable conditions (short message, cooldown)
// come back as a Warning on a zero-effect result; storage failures before
// the ledger write are errors, and a failed exchange is not considered
// recorded. A reward allocation failure after the ledger write surfaces as
// a Warning, since allocation re-runs on the next exchange.
func (s *System) RecordExchange(userID, characterID, message, response string, durationMin int) (*ExchangeResult, error) {
	if len(message) < s.cfg.Relationship.MinMessageLength {
		s.log.Debugw("exchange below minimum length", "user", userID, "character", characterID)
		return &ExchangeResult{Warning: "message too short"}, nil
	}

	analysis := lexicon.Analyze(message, response, s.cfg.Relationship.MinMessageLength)
	now := s.now()

	lock := s.locks.get(pairLockKey(userID, characterID))
	lock.Lock()
	defer lock.Unlock()

	rec, err := s.store.EnsureRecord(userID, characterID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load relationship: %w", err)
	}

	cooldown := time.Duration(s.cfg.Relationship.CooldownSeconds) * time.Second
	if !rec.LastInteraction.IsZero() && now.Sub(rec.LastInteraction) < cooldown {
		s.log.Debugw("exchange inside cooldown", "user", userID, "character", characterID)
		return &ExchangeResult{NewLevel: rec.Level, Warning: "too frequent interactions"}, nil
	}

	rec.Conversations++
	rec.TimeSpentMinutes += durationMin
	rec.LastInteraction = now

	if err := s.store.AddSession(&Session{
		ID:             uuid.NewString(),
		UserID:         userID,
		CharacterID:    characterID,
		StartedAt:      now,
		DurationMin:    durationMin,
		EmotionalScore: analysis.EmotionalScore,
		DepthScore:     analysis.DepthScore,
	}); err != nil {
		return nil, fmt.Errorf("failed to record session: %w", err)
	}

	result := &ExchangeResult{
		EmotionalImpact:  analysis.EmotionalScore,
		DetectedEmotions: analysis.DetectedEmotions,
	}

	if analysis.EmotionalScore > 0.5 && analysis.AuthenticityScore > 0.4 {
		day := now.Format("2006-01-02")
		count, err := s.store.CountMomentsOnDay(userID, characterID, day)
		if err != nil {
			return nil, fmt.Errorf("failed to count emotional moments: %w", err)
		}
		if count < s.cfg.Relationship.MaxDailyMoments {
			if err := s.store.AddEmotionalMoment(&EmotionalMoment{
				UserID:      userID,
				CharacterID: characterID,
				Emotions:    analysis.DetectedEmotions,
				Intensity:   analysis.EmotionalScore,
				Context:     truncate(message, 500),
				Day:         day,
				Timestamp:   now,
			}); err != nil {
				return nil, fmt.Errorf("failed to record emotional moment: %w", err)
			}
			rec.EmotionalMoments++
			rec.MemoriesShared++
			rec.GrowthEvents++
			result.MomentRecorded = true
		} else {
			s.log.Debugw("daily emotional moment cap reached", "user", userID, "character", characterID)
		}
	}

	if analysis.PersonalShare {
		rec.MemoriesShared++
	}
	if analysis.ConflictResolved {
		rec.ConflictsResolved++
	}

	rec.Consistency = computeConsistency(rec, now)

	moments, err := s.store.RecentMoments(userID, characterID, historyWindow)
	if err != nil {
		return nil, fmt.Errorf("failed to load emotional moments: %w", err)
	}
	sessions, err := s.store.RecentSessions(userID, characterID, historyWindow)
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}
	rec.Authenticity = computeAuthenticity(moments, sessions)

	previous := rec.Level
	rec.Level = targetLevel(rec, s.cfg.Relationship.LevelRequirements)
	result.LevelChanged = rec.Level > previous
	result.NewLevel = rec.Level

	if err := s.store.UpdateRecord(rec); err != nil {
		return nil, fmt.Errorf("failed to update relationship: %w", err)
	}

	if result.LevelChanged {
		s.log.Infow("relationship level up",
			"user", userID,
			"character", characterID,
			"level", rec.Level,
		)
	}

	// Every exchange at the reward level re-attempts allocation. The store
	// call is a no-op when the pair already holds a slot, so a crash between
	// the level write and the reward write heals on the next exchange.
	if rec.Level >= 10 {
		reward, err := s.allocateReward(userID, characterID, now)
		if err != nil {
			// The exchange is already committed; allocation re-runs on the
			// next exchange at this level, so report the write instead of
			// failing it.
			s.log.Warnw("reward allocation failed",
				"user", userID,
				"character", characterID,
				"error", err,
			)
			result.Warning = "reward allocation deferred"
		} else {
			result.Reward = reward
		}
	}

	return result, nil
}

func (s *System) allocateReward(userID, characterID string, now time.Time) (*RewardRecord, error) {
	s.rewardMu.Lock()
	defer s.rewardMu.Unlock()

	reward, err := s.store.AllocateReward(userID, characterID, s.cfg.Relationship.RewardPoolSize, now)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate reward: %w", err)
	}
	if reward != nil {
		s.log.Infow("reward slot allocated",
			"user", userID,
			"character", characterID,
			"rank", reward.Rank,
		)
	}
	return reward, nil
}

// Status returns the detailed relationship view for a pair, including
// per-dimension progress toward the next level. An unknown pair comes back
// with Exists=false rather than an error.
func (s *System) Status(userID, characterID string) (*Status, error) {
	rec, err := s.store.GetRecord(userID, characterID)
	if err == ErrNotFound {
		return &Status{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load relationship: %w", err)
	}

	next, progress := nextLevelProgress(rec, s.cfg.Relationship.LevelRequirements)
	return &Status{
		Exists:         true,
		Record:         rec,
		NextLevel:      next,
		Progress:       progress,
		RewardEligible: rec.Level >= 10,
	}, nil
}

// Leaderboard returns the top pairs by level, then conversation count.
func (s *System) Leaderboard(limit int) ([]LeaderboardEntry, error) {
	records, err := s.store.Leaderboard(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}

	entries := make([]LeaderboardEntry, 0, len(records))
	for i, rec := range records {
		entries = append(entries, LeaderboardEntry{
			Rank:          i + 1,
			UserID:        rec.UserID,
			CharacterID:   rec.CharacterID,
			Level:         rec.Level,
			Conversations: rec.Conversations,
		})
	}
	return entries, nil
}

// RewardStatus summarizes the global reward pool.
func (s *System) RewardStatus() (*RewardStatus, error) {
	rewards, err := s.store.ListRewards()
	if err != nil {
		return nil, fmt.Errorf("failed to list rewards: %w", err)
	}

	remaining := s.cfg.Relationship.RewardPoolSize - len(rewards)
	if remaining < 0 {
		remaining = 0
	}
	return &RewardStatus{
		TotalAwarded:   len(rewards),
		RemainingSlots: remaining,
		Rewards:        rewards,
	}, nil
}

// SetWalletAddress attaches a payout address to a pair's reward record.
func (s *System) SetWalletAddress(userID, characterID, address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return fmt.Errorf("wallet address must not be empty")
	}
	if err := s.store.SetWalletAddress(userID, characterID, address); err != nil {
		return fmt.Errorf("failed to set wallet address: %w", err)
	}
	return nil
}

// MarkRewardMinted flags a pair's reward as minted. Idempotent.
func (s *System) MarkRewardMinted(userID, characterID string) error {
	if err := s.store.MarkRewardMinted(userID, characterID); err != nil {
		return fmt.Errorf("failed to mark reward minted: %w", err)
	}
	return nil
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
