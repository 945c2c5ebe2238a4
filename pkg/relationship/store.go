package relationship

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a record does not exist for a pair.
var ErrNotFound = errors.New("relationship: record not found")

// Store is the persistence boundary for the ledger and the reward pool.
// Implementations must be safe for concurrent use; AllocateReward must make
// its count-then-insert atomic, since every pair competes for the same pool.
type Store interface {
	// GetRecord returns the record for a pair, or ErrNotFound.
	GetRecord(userID, characterID string) (*Record, error)
	// EnsureRecord returns the pair's record, lazily creating an empty one
	// stamped with createdAt on first use.
	EnsureRecord(userID, characterID string, createdAt time.Time) (*Record, error)
	// UpdateRecord writes a record back in full.
	UpdateRecord(rec *Record) error

	AddSession(sess *Session) error
	// RecentSessions returns up to limit sessions for a pair, newest first.
	RecentSessions(userID, characterID string, limit int) ([]Session, error)

	AddEmotionalMoment(moment *EmotionalMoment) error
	// CountMomentsOnDay counts a pair's moments for a "2006-01-02" day key.
	CountMomentsOnDay(userID, characterID, day string) (int, error)
	// RecentMoments returns up to limit moments for a pair, newest first.
	RecentMoments(userID, characterID string, limit int) ([]EmotionalMoment, error)

	// GetReward returns the pair's reward record, or ErrNotFound.
	GetReward(userID, characterID string) (*RewardRecord, error)
	// AllocateReward assigns the next rank to the pair. It returns (nil, nil)
	// when the pair already holds a reward or the pool of poolSize slots is
	// exhausted. The existence check, the count and the insert happen as one
	// atomic unit.
	AllocateReward(userID, characterID string, poolSize int, achievedAt time.Time) (*RewardRecord, error)
	ListRewards() ([]RewardRecord, error)
	SetWalletAddress(userID, characterID, address string) error
	MarkRewardMinted(userID, characterID string) error

	// Leaderboard returns records ordered by level desc, conversations desc.
	Leaderboard(limit int) ([]Record, error)
}
