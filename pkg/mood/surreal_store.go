package mood

import (
	"fmt"
	"time"

	"kindred/pkg/surreal"
)

// SurrealStore persists mood state in SurrealDB.
type SurrealStore struct {
	client *surreal.Client
}

func NewSurrealStore(client *surreal.Client) (*SurrealStore, error) {
	store := &SurrealStore{client: client}
	if err := store.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize mood schema: %w", err)
	}
	return store, nil
}

func (s *SurrealStore) Init() error {
	query := `
		DEFINE TABLE IF NOT EXISTS daily_moods SCHEMAFULL;
		DEFINE FIELD IF NOT EXISTS character_id ON daily_moods TYPE string;
		DEFINE FIELD IF NOT EXISTS date ON daily_moods TYPE string;
		DEFINE FIELD IF NOT EXISTS category ON daily_moods TYPE string;
		DEFINE FIELD IF NOT EXISTS level ON daily_moods TYPE int;
		DEFINE FIELD IF NOT EXISTS intensity ON daily_moods TYPE float;
		DEFINE FIELD IF NOT EXISTS created_at ON daily_moods TYPE int;

		DEFINE TABLE IF NOT EXISTS mood_changes SCHEMAFULL;
		DEFINE FIELD IF NOT EXISTS character_id ON mood_changes TYPE string;
		DEFINE FIELD IF NOT EXISTS date ON mood_changes TYPE string;
		DEFINE FIELD IF NOT EXISTS previous_mood ON mood_changes TYPE string;
		DEFINE FIELD IF NOT EXISTS new_mood ON mood_changes TYPE string;
		DEFINE FIELD IF NOT EXISTS trigger_type ON mood_changes TYPE string;
		DEFINE FIELD IF NOT EXISTS user_message ON mood_changes TYPE string;
		DEFINE FIELD IF NOT EXISTS change_amount ON mood_changes TYPE int;
		DEFINE FIELD IF NOT EXISTS timestamp ON mood_changes TYPE int;

		DEFINE TABLE IF NOT EXISTS mood_transitions SCHEMAFULL;
		DEFINE FIELD IF NOT EXISTS character_id ON mood_transitions TYPE string;
		DEFINE FIELD IF NOT EXISTS date ON mood_transitions TYPE string;
		DEFINE FIELD IF NOT EXISTS from_category ON mood_transitions TYPE string;
		DEFINE FIELD IF NOT EXISTS from_level ON mood_transitions TYPE int;
		DEFINE FIELD IF NOT EXISTS to_category ON mood_transitions TYPE string;
		DEFINE FIELD IF NOT EXISTS to_level ON mood_transitions TYPE int;
		DEFINE FIELD IF NOT EXISTS speed ON mood_transitions TYPE string;
		DEFINE FIELD IF NOT EXISTS timestamp ON mood_transitions TYPE int;
	`
	_, err := s.client.Query(query, map[string]interface{}{})
	return err
}

func moodID(characterID, date string) string {
	return characterID + "_" + date
}

func (s *SurrealStore) GetDailyMood(characterID, date string) (*DailyMood, error) {
	query := `SELECT * FROM type::thing("daily_moods", $id);`
	result, err := s.client.Query(query, map[string]interface{}{
		"id": moodID(characterID, date),
	})
	if err != nil {
		return nil, err
	}

	rows := surreal.Rows(result)
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	row := rows[0]
	return &DailyMood{
		CharacterID: surreal.Str(row, "character_id"),
		Date:        surreal.Str(row, "date"),
		Category:    surreal.Str(row, "category"),
		Level:       int(surreal.Num(row, "level")),
		Intensity:   surreal.Num(row, "intensity"),
		CreatedAt:   time.Unix(int64(surreal.Num(row, "created_at")), 0),
	}, nil
}

func (s *SurrealStore) SetDailyMood(mood *DailyMood) error {
	query := `
		UPSERT type::thing("daily_moods", $id) SET
			character_id = $character_id,
			date = $date,
			category = $category,
			level = $level,
			intensity = $intensity,
			created_at = $created_at;
	`
	_, err := s.client.Query(query, map[string]interface{}{
		"id":           moodID(mood.CharacterID, mood.Date),
		"character_id": mood.CharacterID,
		"date":         mood.Date,
		"category":     mood.Category,
		"level":        mood.Level,
		"intensity":    mood.Intensity,
		"created_at":   mood.CreatedAt.Unix(),
	})
	return err
}

func (s *SurrealStore) AddChange(change *Change) error {
	_, err := s.client.Create("mood_changes", map[string]interface{}{
		"character_id":  change.CharacterID,
		"date":          change.Date,
		"previous_mood": change.PreviousMood,
		"new_mood":      change.NewMood,
		"trigger_type":  change.TriggerType,
		"user_message":  change.UserMessage,
		"change_amount": change.ChangeAmount,
		"timestamp":     change.Timestamp.Unix(),
	})
	return err
}

func (s *SurrealStore) RecentChanges(characterID, date string, limit int) ([]Change, error) {
	query := `
		SELECT * FROM mood_changes
		WHERE character_id = $character_id AND date = $date
		ORDER BY timestamp DESC
		LIMIT $limit;
	`
	result, err := s.client.Query(query, map[string]interface{}{
		"character_id": characterID,
		"date":         date,
		"limit":        limit,
	})
	if err != nil {
		return nil, err
	}

	var changes []Change
	for _, row := range surreal.Rows(result) {
		changes = append(changes, Change{
			CharacterID:  surreal.Str(row, "character_id"),
			Date:         surreal.Str(row, "date"),
			PreviousMood: surreal.Str(row, "previous_mood"),
			NewMood:      surreal.Str(row, "new_mood"),
			TriggerType:  surreal.Str(row, "trigger_type"),
			UserMessage:  surreal.Str(row, "user_message"),
			ChangeAmount: int(surreal.Num(row, "change_amount")),
			Timestamp:    time.Unix(int64(surreal.Num(row, "timestamp")), 0),
		})
	}
	return changes, nil
}

func (s *SurrealStore) AddTransition(transition *Transition) error {
	_, err := s.client.Create("mood_transitions", map[string]interface{}{
		"character_id":  transition.CharacterID,
		"date":          transition.Date,
		"from_category": transition.FromCategory,
		"from_level":    transition.FromLevel,
		"to_category":   transition.ToCategory,
		"to_level":      transition.ToLevel,
		"speed":         transition.Speed,
		"timestamp":     transition.Timestamp.Unix(),
	})
	return err
}

func (s *SurrealStore) RecentTransitions(characterID, date string, limit int) ([]Transition, error) {
	query := `
		SELECT * FROM mood_transitions
		WHERE character_id = $character_id AND date = $date
		ORDER BY timestamp DESC
		LIMIT $limit;
	`
	result, err := s.client.Query(query, map[string]interface{}{
		"character_id": characterID,
		"date":         date,
		"limit":        limit,
	})
	if err != nil {
		return nil, err
	}

	var transitions []Transition
	for _, row := range surreal.Rows(result) {
		transitions = append(transitions, Transition{
			CharacterID:  surreal.Str(row, "character_id"),
			Date:         surreal.Str(row, "date"),
			FromCategory: surreal.Str(row, "from_category"),
			FromLevel:    int(surreal.Num(row, "from_level")),
			ToCategory:   surreal.Str(row, "to_category"),
			ToLevel:      int(surreal.Num(row, "to_level")),
			Speed:        surreal.Str(row, "speed"),
			Timestamp:    time.Unix(int64(surreal.Num(row, "timestamp")), 0),
		})
	}
	return transitions, nil
}
