package memory

import (
	"fmt"
	"time"

	"kindred/pkg/surreal"
)

// SurrealStore persists memory fragments in SurrealDB.
type SurrealStore struct {
	client *surreal.Client
	now    func() time.Time
}

func NewSurrealStore(client *surreal.Client) (*SurrealStore, error) {
	store := &SurrealStore{client: client, now: time.Now}
	if err := store.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize memory schema: %w", err)
	}
	return store, nil
}

func (s *SurrealStore) Init() error {
	query := `
		DEFINE TABLE IF NOT EXISTS memory_fragments SCHEMAFULL;
		DEFINE FIELD IF NOT EXISTS user_id ON memory_fragments TYPE string;
		DEFINE FIELD IF NOT EXISTS character_id ON memory_fragments TYPE string;
		DEFINE FIELD IF NOT EXISTS text ON memory_fragments TYPE string;
		DEFINE FIELD IF NOT EXISTS created_at ON memory_fragments TYPE int;
	`
	_, err := s.client.Query(query, map[string]interface{}{})
	return err
}

func (s *SurrealStore) AddFragment(userID, characterID, text string) error {
	_, err := s.client.Create("memory_fragments", map[string]interface{}{
		"user_id":      userID,
		"character_id": characterID,
		"text":         text,
		"created_at":   s.now().Unix(),
	})
	return err
}

func (s *SurrealStore) RecentFragments(userID, characterID string, limit int) ([]string, error) {
	query := `
		SELECT text FROM memory_fragments
		WHERE user_id = $user_id AND character_id = $character_id
		ORDER BY created_at DESC
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

	var fragments []string
	for _, row := range surreal.Rows(result) {
		if text := surreal.Str(row, "text"); text != "" {
			fragments = append(fragments, text)
		}
	}
	return fragments, nil
}

func (s *SurrealStore) DeleteUserData(userID string) error {
	query := `DELETE memory_fragments WHERE user_id = $user_id;`
	_, err := s.client.Query(query, map[string]interface{}{"user_id": userID})
	return err
}
