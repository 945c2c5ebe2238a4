package relationship

import "time"

// Record tracks one user/character bond. Level only ever moves up; the
// counters are append-only and the derived scores are recomputed on every
// accepted exchange.
type Record struct {
	UserID            string    `json:"user_id"`
	CharacterID       string    `json:"character_id"`
	Level             float64   `json:"level"`
	Conversations     int       `json:"conversations"`
	TimeSpentMinutes  int       `json:"time_spent_minutes"`
	EmotionalMoments  int       `json:"emotional_moments"`
	MemoriesShared    int       `json:"memories_shared"`
	ConflictsResolved int       `json:"conflicts_resolved"`
	GrowthEvents      int       `json:"growth_events"`
	Consistency       float64   `json:"consistency"`
	Authenticity      float64   `json:"authenticity"`
	LastInteraction   time.Time `json:"last_interaction"`
	CreatedAt         time.Time `json:"created_at"`
}

// Session is one accepted exchange; the rows feed the session-length-variety
// authenticity factor.
type Session struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	CharacterID    string    `json:"character_id"`
	StartedAt      time.Time `json:"started_at"`
	DurationMin    int       `json:"duration_min"`
	EmotionalScore float64   `json:"emotional_score"`
	DepthScore     float64   `json:"depth_score"`
}

// EmotionalMoment is a write-once fact: an exchange that cleared both the
// emotional and authenticity floors.
type EmotionalMoment struct {
	UserID      string    `json:"user_id"`
	CharacterID string    `json:"character_id"`
	Emotions    []string  `json:"emotions"`
	Intensity   float64   `json:"intensity"`
	Context     string    `json:"context"`
	Day         string    `json:"day"`
	Timestamp   time.Time `json:"timestamp"`
}

// RewardRecord is a write-once fact: the pair's permanent rank in the
// 100-slot reward pool.
type RewardRecord struct {
	UserID        string    `json:"user_id"`
	CharacterID   string    `json:"character_id"`
	Rank          int       `json:"rank"`
	WalletAddress string    `json:"wallet_address,omitempty"`
	AchievedAt    time.Time `json:"achieved_at"`
	Minted        bool      `json:"minted"`
}

// ExchangeResult is what the caller gets back from RecordExchange. Recoverable
// conditions surface as a Warning on a zero-effect result, never as an error.
type ExchangeResult struct {
	LevelChanged     bool          `json:"level_changed"`
	NewLevel         float64       `json:"new_level"`
	EmotionalImpact  float64       `json:"emotional_impact"`
	MomentRecorded   bool          `json:"moment_recorded"`
	DetectedEmotions []string      `json:"detected_emotions,omitempty"`
	Reward           *RewardRecord `json:"reward,omitempty"`
	Warning          string        `json:"warning,omitempty"`
}

// DimensionProgress reports one requirement dimension's progress toward the
// next level.
type DimensionProgress struct {
	Current  float64 `json:"current"`
	Required float64 `json:"required"`
	Progress float64 `json:"progress"`
}

// Status is the detailed relationship view for one pair.
type Status struct {
	Exists         bool                         `json:"exists"`
	Record         *Record                      `json:"record,omitempty"`
	NextLevel      int                          `json:"next_level,omitempty"`
	Progress       map[string]DimensionProgress `json:"next_level_progress,omitempty"`
	RewardEligible bool                         `json:"reward_eligible"`
}

// LeaderboardEntry is one row of the relationship leaderboard.
type LeaderboardEntry struct {
	Rank          int     `json:"rank"`
	UserID        string  `json:"user_id"`
	CharacterID   string  `json:"character_id"`
	Level         float64 `json:"level"`
	Conversations int     `json:"conversations"`
}

// RewardStatus summarizes the global reward pool.
type RewardStatus struct {
	TotalAwarded   int            `json:"total_awarded"`
	RemainingSlots int            `json:"remaining_slots"`
	Rewards        []RewardRecord `json:"rewards"`
}
