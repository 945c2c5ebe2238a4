package memory

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

type fragment struct {
	UserID      string    `json:"user_id"`
	CharacterID string    `json:"character_id"`
	Text        string    `json:"text"`
	CreatedAt   time.Time `json:"created_at"`
}

// FileStore keeps fragments in one JSON document on disk.
type FileStore struct {
	mu        sync.Mutex
	path      string
	fragments []fragment
}

func NewFileStore(dir string) *FileStore {
	store := &FileStore{path: filepath.Join(dir, "memory.json")}
	store.load()
	return store
}

func (s *FileStore) load() {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var fragments []fragment
	if err := json.Unmarshal(raw, &fragments); err != nil {
		return
	}
	s.fragments = fragments
}

func (s *FileStore) persist() error {
	raw, err := json.MarshalIndent(s.fragments, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal memory fragments: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write memory fragments: %w", err)
	}
	return nil
}

func (s *FileStore) AddFragment(userID, characterID, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fragments = append(s.fragments, fragment{
		UserID:      userID,
		CharacterID: characterID,
		Text:        text,
		CreatedAt:   time.Now(),
	})
	return s.persist()
}

func (s *FileStore) RecentFragments(userID, characterID string, limit int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var texts []string
	for i := len(s.fragments) - 1; i >= 0 && len(texts) < limit; i-- {
		f := s.fragments[i]
		if f.UserID == userID && f.CharacterID == characterID {
			texts = append(texts, f.Text)
		}
	}
	return texts, nil
}

func (s *FileStore) DeleteUserData(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.fragments[:0]
	for _, f := range s.fragments {
		if f.UserID != userID {
			kept = append(kept, f)
		}
	}
	s.fragments = kept
	return s.persist()
}
