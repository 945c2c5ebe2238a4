package relationship

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var storeEpoch = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func TestFileStore_RecordRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)

	rec, err := store.EnsureRecord("user-1", "char-1", storeEpoch)
	require.NoError(t, err)
	rec.Level = 2
	rec.Conversations = 6
	rec.TimeSpentMinutes = 30
	rec.EmotionalMoments = 3
	rec.MemoriesShared = 4
	rec.Consistency = 0.6
	rec.Authenticity = 0.7
	rec.LastInteraction = storeEpoch.Add(time.Hour)
	require.NoError(t, store.UpdateRecord(rec))

	// A fresh store over the same directory must see the last write
	// field for field.
	reloaded := NewFileStore(dir)
	got, err := reloaded.GetRecord("user-1", "char-1")
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestFileStore_GetRecordNotFound(t *testing.T) {
	store := NewFileStore(t.TempDir())

	_, err := store.GetRecord("missing", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStore_ReturnsCopies(t *testing.T) {
	store := NewFileStore(t.TempDir())

	first, err := store.EnsureRecord("user-1", "char-1", storeEpoch)
	require.NoError(t, err)
	first.Conversations = 99

	second, err := store.GetRecord("user-1", "char-1")
	require.NoError(t, err)
	assert.Equal(t, 0, second.Conversations, "mutating a returned record must not touch the store")
}

func TestFileStore_SessionsNewestFirst(t *testing.T) {
	store := NewFileStore(t.TempDir())

	for i := 0; i < 3; i++ {
		require.NoError(t, store.AddSession(&Session{
			ID:          string(rune('a' + i)),
			UserID:      "user-1",
			CharacterID: "char-1",
			StartedAt:   storeEpoch.Add(time.Duration(i) * time.Hour),
			DurationMin: 5,
		}))
	}

	sessions, err := store.RecentSessions("user-1", "char-1", 2)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "c", sessions[0].ID)
	assert.Equal(t, "b", sessions[1].ID)
}

func TestFileStore_CountMomentsOnDay(t *testing.T) {
	store := NewFileStore(t.TempDir())

	for _, day := range []string{"2026-03-01", "2026-03-01", "2026-03-02"} {
		require.NoError(t, store.AddEmotionalMoment(&EmotionalMoment{
			UserID:      "user-1",
			CharacterID: "char-1",
			Emotions:    []string{"joy"},
			Intensity:   1.0,
			Day:         day,
			Timestamp:   storeEpoch,
		}))
	}

	count, err := store.CountMomentsOnDay("user-1", "char-1", "2026-03-01")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = store.CountMomentsOnDay("user-1", "char-1", "2026-03-03")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestFileStore_AllocateRewardScarcity(t *testing.T) {
	store := NewFileStore(t.TempDir())

	first, err := store.AllocateReward("user-1", "char-1", 2, storeEpoch)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, 1, first.Rank)

	second, err := store.AllocateReward("user-2", "char-1", 2, storeEpoch)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, 2, second.Rank)

	// Pool exhausted: no third record comes into existence.
	third, err := store.AllocateReward("user-3", "char-1", 2, storeEpoch)
	require.NoError(t, err)
	assert.Nil(t, third)

	rewards, err := store.ListRewards()
	require.NoError(t, err)
	assert.Len(t, rewards, 2)
}

func TestFileStore_AllocateRewardConcurrent(t *testing.T) {
	store := NewFileStore(t.TempDir())
	const pool = 5
	const contenders = 20

	granted := make([]*RewardRecord, contenders)
	errs := make([]error, contenders)
	var wg sync.WaitGroup
	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			granted[i], errs[i] = store.AllocateReward(fmt.Sprintf("user-%d", i), "char-1", pool, storeEpoch)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	// Exactly pool winners, each with a distinct rank.
	ranks := map[int]bool{}
	for _, r := range granted {
		if r == nil {
			continue
		}
		assert.False(t, ranks[r.Rank], "rank %d granted twice", r.Rank)
		ranks[r.Rank] = true
	}
	assert.Len(t, ranks, pool)

	rewards, err := store.ListRewards()
	require.NoError(t, err)
	assert.Len(t, rewards, pool)
}

func TestFileStore_AllocateRewardIdempotentPerPair(t *testing.T) {
	store := NewFileStore(t.TempDir())

	first, err := store.AllocateReward("user-1", "char-1", 100, storeEpoch)
	require.NoError(t, err)
	require.NotNil(t, first)

	repeat, err := store.AllocateReward("user-1", "char-1", 100, storeEpoch.Add(time.Hour))
	require.NoError(t, err)
	assert.Nil(t, repeat, "a pair holds at most one slot")

	held, err := store.GetReward("user-1", "char-1")
	require.NoError(t, err)
	assert.Equal(t, 1, held.Rank)
	assert.Equal(t, storeEpoch, held.AchievedAt)
}

func TestFileStore_WalletAndMinting(t *testing.T) {
	store := NewFileStore(t.TempDir())

	assert.ErrorIs(t, store.SetWalletAddress("user-1", "char-1", "0xabc"), ErrNotFound)
	assert.ErrorIs(t, store.MarkRewardMinted("user-1", "char-1"), ErrNotFound)

	_, err := store.AllocateReward("user-1", "char-1", 100, storeEpoch)
	require.NoError(t, err)

	require.NoError(t, store.SetWalletAddress("user-1", "char-1", "0xabc"))
	require.NoError(t, store.MarkRewardMinted("user-1", "char-1"))

	reward, err := store.GetReward("user-1", "char-1")
	require.NoError(t, err)
	assert.Equal(t, "0xabc", reward.WalletAddress)
	assert.True(t, reward.Minted)
}

func TestFileStore_Leaderboard(t *testing.T) {
	store := NewFileStore(t.TempDir())

	seed := func(userID string, level float64, conversations int) {
		rec, err := store.EnsureRecord(userID, "char-1", storeEpoch)
		require.NoError(t, err)
		rec.Level = level
		rec.Conversations = conversations
		require.NoError(t, store.UpdateRecord(rec))
	}
	seed("user-a", 3, 10)
	seed("user-b", 5, 2)
	seed("user-c", 5, 9)

	records, err := store.Leaderboard(2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "user-c", records[0].UserID)
	assert.Equal(t, "user-b", records[1].UserID)
}
