package relationship

import (
	"fmt"
	"time"

	"kindred/pkg/surreal"
)

// SurrealStore persists the ledger in SurrealDB. Timestamps are stored as
// unix seconds; the pair's record id is derived from user and character ids.
type SurrealStore struct {
	client *surreal.Client
}

func NewSurrealStore(client *surreal.Client) (*SurrealStore, error) {
	store := &SurrealStore{client: client}
	if err := store.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize relationship schema: %w", err)
	}
	return store, nil
}

func (s *SurrealStore) Init() error {
	query := `
		DEFINE TABLE IF NOT EXISTS relationships SCHEMAFULL;
		DEFINE FIELD IF NOT EXISTS user_id ON relationships TYPE string;
		DEFINE FIELD IF NOT EXISTS character_id ON relationships TYPE string;
		DEFINE FIELD IF NOT EXISTS level ON relationships TYPE float;
		DEFINE FIELD IF NOT EXISTS conversations ON relationships TYPE int;
		DEFINE FIELD IF NOT EXISTS time_spent_minutes ON relationships TYPE int;
		DEFINE FIELD IF NOT EXISTS emotional_moments ON relationships TYPE int;
		DEFINE FIELD IF NOT EXISTS memories_shared ON relationships TYPE int;
		DEFINE FIELD IF NOT EXISTS conflicts_resolved ON relationships TYPE int;
		DEFINE FIELD IF NOT EXISTS growth_events ON relationships TYPE int;
		DEFINE FIELD IF NOT EXISTS consistency ON relationships TYPE float;
		DEFINE FIELD IF NOT EXISTS authenticity ON relationships TYPE float;
		DEFINE FIELD IF NOT EXISTS last_interaction ON relationships TYPE int;
		DEFINE FIELD IF NOT EXISTS created_at ON relationships TYPE int;

		DEFINE TABLE IF NOT EXISTS conversation_sessions SCHEMAFULL;
		DEFINE FIELD IF NOT EXISTS session_id ON conversation_sessions TYPE string;
		DEFINE FIELD IF NOT EXISTS user_id ON conversation_sessions TYPE string;
		DEFINE FIELD IF NOT EXISTS character_id ON conversation_sessions TYPE string;
		DEFINE FIELD IF NOT EXISTS started_at ON conversation_sessions TYPE int;
		DEFINE FIELD IF NOT EXISTS duration_min ON conversation_sessions TYPE int;
		DEFINE FIELD IF NOT EXISTS emotional_score ON conversation_sessions TYPE float;
		DEFINE FIELD IF NOT EXISTS depth_score ON conversation_sessions TYPE float;

		DEFINE TABLE IF NOT EXISTS emotional_moments SCHEMAFULL;
		DEFINE FIELD IF NOT EXISTS user_id ON emotional_moments TYPE string;
		DEFINE FIELD IF NOT EXISTS character_id ON emotional_moments TYPE string;
		DEFINE FIELD IF NOT EXISTS emotions ON emotional_moments TYPE array<string>;
		DEFINE FIELD IF NOT EXISTS intensity ON emotional_moments TYPE float;
		DEFINE FIELD IF NOT EXISTS context ON emotional_moments TYPE string;
		DEFINE FIELD IF NOT EXISTS day ON emotional_moments TYPE string;
		DEFINE FIELD IF NOT EXISTS timestamp ON emotional_moments TYPE int;

		DEFINE TABLE IF NOT EXISTS rewards SCHEMAFULL;
		DEFINE FIELD IF NOT EXISTS user_id ON rewards TYPE string;
		DEFINE FIELD IF NOT EXISTS character_id ON rewards TYPE string;
		DEFINE FIELD IF NOT EXISTS rank ON rewards TYPE int;
		DEFINE FIELD IF NOT EXISTS wallet_address ON rewards TYPE string;
		DEFINE FIELD IF NOT EXISTS achieved_at ON rewards TYPE int;
		DEFINE FIELD IF NOT EXISTS minted ON rewards TYPE bool;
	`
	_, err := s.client.Query(query, map[string]interface{}{})
	return err
}

func recordID(userID, characterID string) string {
	return userID + "_" + characterID
}

func decodeRecord(row map[string]interface{}) *Record {
	return &Record{
		UserID:            surreal.Str(row, "user_id"),
		CharacterID:       surreal.Str(row, "character_id"),
		Level:             surreal.Num(row, "level"),
		Conversations:     int(surreal.Num(row, "conversations")),
		TimeSpentMinutes:  int(surreal.Num(row, "time_spent_minutes")),
		EmotionalMoments:  int(surreal.Num(row, "emotional_moments")),
		MemoriesShared:    int(surreal.Num(row, "memories_shared")),
		ConflictsResolved: int(surreal.Num(row, "conflicts_resolved")),
		GrowthEvents:      int(surreal.Num(row, "growth_events")),
		Consistency:       surreal.Num(row, "consistency"),
		Authenticity:      surreal.Num(row, "authenticity"),
		LastInteraction:   time.Unix(int64(surreal.Num(row, "last_interaction")), 0),
		CreatedAt:         time.Unix(int64(surreal.Num(row, "created_at")), 0),
	}
}

func (s *SurrealStore) GetRecord(userID, characterID string) (*Record, error) {
	query := `SELECT * FROM type::thing("relationships", $pair);`
	result, err := s.client.Query(query, map[string]interface{}{
		"pair": recordID(userID, characterID),
	})
	if err != nil {
		return nil, err
	}

	rows := surreal.Rows(result)
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return decodeRecord(rows[0]), nil
}

func (s *SurrealStore) EnsureRecord(userID, characterID string, createdAt time.Time) (*Record, error) {
	rec, err := s.GetRecord(userID, characterID)
	if err == nil {
		return rec, nil
	}
	if err != ErrNotFound {
		return nil, err
	}

	query := `
		INSERT INTO relationships (id, user_id, character_id, level, conversations,
			time_spent_minutes, emotional_moments, memories_shared, conflicts_resolved,
			growth_events, consistency, authenticity, last_interaction, created_at)
		VALUES (type::thing("relationships", $pair), $user_id, $character_id, 0.0, 0,
			0, 0, 0, 0, 0, 0.0, 0.0, 0, $created_at)
		ON DUPLICATE KEY UPDATE user_id = $user_id;
	`
	_, err = s.client.Query(query, map[string]interface{}{
		"pair":         recordID(userID, characterID),
		"user_id":      userID,
		"character_id": characterID,
		"created_at":   createdAt.Unix(),
	})
	if err != nil {
		return nil, err
	}
	return s.GetRecord(userID, characterID)
}

func (s *SurrealStore) UpdateRecord(rec *Record) error {
	query := `
		UPDATE type::thing("relationships", $pair) SET
			level = $level,
			conversations = $conversations,
			time_spent_minutes = $time_spent_minutes,
			emotional_moments = $emotional_moments,
			memories_shared = $memories_shared,
			conflicts_resolved = $conflicts_resolved,
			growth_events = $growth_events,
			consistency = $consistency,
			authenticity = $authenticity,
			last_interaction = $last_interaction;
	`
	_, err := s.client.Query(query, map[string]interface{}{
		"pair":               recordID(rec.UserID, rec.CharacterID),
		"level":              rec.Level,
		"conversations":      rec.Conversations,
		"time_spent_minutes": rec.TimeSpentMinutes,
		"emotional_moments":  rec.EmotionalMoments,
		"memories_shared":    rec.MemoriesShared,
		"conflicts_resolved": rec.ConflictsResolved,
		"growth_events":      rec.GrowthEvents,
		"consistency":        rec.Consistency,
		"authenticity":       rec.Authenticity,
		"last_interaction":   rec.LastInteraction.Unix(),
	})
	return err
}

func (s *SurrealStore) AddSession(sess *Session) error {
	_, err := s.client.Create("conversation_sessions", map[string]interface{}{
		"session_id":      sess.ID,
		"user_id":         sess.UserID,
		"character_id":    sess.CharacterID,
		"started_at":      sess.StartedAt.Unix(),
		"duration_min":    sess.DurationMin,
		"emotional_score": sess.EmotionalScore,
		"depth_score":     sess.DepthScore,
	})
	return err
}

func (s *SurrealStore) RecentSessions(userID, characterID string, limit int) ([]Session, error) {
	query := `
		SELECT * FROM conversation_sessions
		WHERE user_id = $user_id AND character_id = $character_id
		ORDER BY started_at DESC
		LIMIT $limit;
	`
	result, err := s.client.Query(query, map[string]interface{}{
		"user_id":      userID,
		"character_id": characterID,
		"limit":        limit,
	})
	if err != nil {
		return nil, err
	}

	var sessions []Session
	for _, row := range surreal.Rows(result) {
		sessions = append(sessions, Session{
			ID:             surreal.Str(row, "session_id"),
			UserID:         surreal.Str(row, "user_id"),
			CharacterID:    surreal.Str(row, "character_id"),
			StartedAt:      time.Unix(int64(surreal.Num(row, "started_at")), 0),
			DurationMin:    int(surreal.Num(row, "duration_min")),
			EmotionalScore: surreal.Num(row, "emotional_score"),
			DepthScore:     surreal.Num(row, "depth_score"),
		})
	}
	return sessions, nil
}

func (s *SurrealStore) AddEmotionalMoment(moment *EmotionalMoment) error {
	_, err := s.client.Create("emotional_moments", map[string]interface{}{
		"user_id":      moment.UserID,
		"character_id": moment.CharacterID,
		"emotions":     moment.Emotions,
		"intensity":    moment.Intensity,
		"context":      moment.Context,
		"day":          moment.Day,
		"timestamp":    moment.Timestamp.Unix(),
	})
	return err
}

func (s *SurrealStore) CountMomentsOnDay(userID, characterID, day string) (int, error) {
	query := `
		SELECT count() AS total FROM emotional_moments
		WHERE user_id = $user_id AND character_id = $character_id AND day = $day
		GROUP ALL;
	`
	result, err := s.client.Query(query, map[string]interface{}{
		"user_id":      userID,
		"character_id": characterID,
		"day":          day,
	})
	if err != nil {
		return 0, err
	}

	rows := surreal.Rows(result)
	if len(rows) == 0 {
		return 0, nil
	}
	return int(surreal.Num(rows[0], "total")), nil
}

func (s *SurrealStore) RecentMoments(userID, characterID string, limit int) ([]EmotionalMoment, error) {
	query := `
		SELECT * FROM emotional_moments
		WHERE user_id = $user_id AND character_id = $character_id
		ORDER BY timestamp DESC
		LIMIT $limit;
	`
	result, err := s.client.Query(query, map[string]interface{}{
		"user_id":      userID,
		"character_id": characterID,
		"limit":        limit,
	})
	if err != nil {
		return nil, err
	}

	var moments []EmotionalMoment
	for _, row := range surreal.Rows(result) {
		moment := EmotionalMoment{
			UserID:      surreal.Str(row, "user_id"),
			CharacterID: surreal.Str(row, "character_id"),
			Intensity:   surreal.Num(row, "intensity"),
			Context:     surreal.Str(row, "context"),
			Day:         surreal.Str(row, "day"),
			Timestamp:   time.Unix(int64(surreal.Num(row, "timestamp")), 0),
		}
		if raw, ok := row["emotions"].([]interface{}); ok {
			for _, e := range raw {
				if tag, ok := e.(string); ok {
					moment.Emotions = append(moment.Emotions, tag)
				}
			}
		}
		moments = append(moments, moment)
	}
	return moments, nil
}

func decodeReward(row map[string]interface{}) *RewardRecord {
	return &RewardRecord{
		UserID:        surreal.Str(row, "user_id"),
		CharacterID:   surreal.Str(row, "character_id"),
		Rank:          int(surreal.Num(row, "rank")),
		WalletAddress: surreal.Str(row, "wallet_address"),
		AchievedAt:    time.Unix(int64(surreal.Num(row, "achieved_at")), 0),
		Minted:        surreal.Bool(row, "minted"),
	}
}

func (s *SurrealStore) GetReward(userID, characterID string) (*RewardRecord, error) {
	query := `SELECT * FROM rewards WHERE user_id = $user_id AND character_id = $character_id;`
	result, err := s.client.Query(query, map[string]interface{}{
		"user_id":      userID,
		"character_id": characterID,
	})
	if err != nil {
		return nil, err
	}

	rows := surreal.Rows(result)
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return decodeReward(rows[0]), nil
}

// Subqueries in expression position must be parenthesized, including the
// one handed to array::len.
const allocateRewardQuery = `
		BEGIN TRANSACTION;
		LET $existing = (SELECT * FROM rewards WHERE user_id = $user_id AND character_id = $character_id);
		LET $total = array::len((SELECT * FROM rewards));
		IF array::len($existing) = 0 AND $total < $pool_size THEN
			(CREATE rewards CONTENT {
				user_id: $user_id,
				character_id: $character_id,
				rank: $total + 1,
				wallet_address: "",
				achieved_at: $achieved_at,
				minted: false
			})
		END;
		COMMIT TRANSACTION;
	`

// AllocateReward performs the existence check, the pool count and the insert
// inside one database transaction, so every pair races for the scarce slots
// through the same atomic unit.
func (s *SurrealStore) AllocateReward(userID, characterID string, poolSize int, achievedAt time.Time) (*RewardRecord, error) {
	result, err := s.client.Query(allocateRewardQuery, map[string]interface{}{
		"user_id":      userID,
		"character_id": characterID,
		"pool_size":    poolSize,
		"achieved_at":  achievedAt.Unix(),
	})
	if err != nil {
		return nil, err
	}

	rows := surreal.Rows(result)
	if len(rows) == 0 {
		return nil, nil
	}
	return decodeReward(rows[0]), nil
}

func (s *SurrealStore) ListRewards() ([]RewardRecord, error) {
	query := `SELECT * FROM rewards ORDER BY rank ASC;`
	result, err := s.client.Query(query, map[string]interface{}{})
	if err != nil {
		return nil, err
	}

	var rewards []RewardRecord
	for _, row := range surreal.Rows(result) {
		rewards = append(rewards, *decodeReward(row))
	}
	return rewards, nil
}

func (s *SurrealStore) SetWalletAddress(userID, characterID, address string) error {
	query := `
		UPDATE rewards SET wallet_address = $address
		WHERE user_id = $user_id AND character_id = $character_id;
	`
	result, err := s.client.Query(query, map[string]interface{}{
		"user_id":      userID,
		"character_id": characterID,
		"address":      address,
	})
	if err != nil {
		return err
	}
	if len(surreal.Rows(result)) == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SurrealStore) MarkRewardMinted(userID, characterID string) error {
	query := `
		UPDATE rewards SET minted = true
		WHERE user_id = $user_id AND character_id = $character_id;
	`
	result, err := s.client.Query(query, map[string]interface{}{
		"user_id":      userID,
		"character_id": characterID,
	})
	if err != nil {
		return err
	}
	if len(surreal.Rows(result)) == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SurrealStore) Leaderboard(limit int) ([]Record, error) {
	query := `
		SELECT * FROM relationships
		ORDER BY level DESC, conversations DESC
		LIMIT $limit;
	`
	result, err := s.client.Query(query, map[string]interface{}{"limit": limit})
	if err != nil {
		return nil, err
	}

	var records []Record
	for _, row := range surreal.Rows(result) {
		records = append(records, *decodeRecord(row))
	}
	return records, nil
}
