package mood

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps mood state in one JSON document on disk. It exists for
// tests and small local deployments; SurrealStore is the production
// implementation.
type FileStore struct {
	mu   sync.Mutex
	path string
	data fileData
}

type fileData struct {
	Moods       map[string]*DailyMood `json:"moods"`
	Changes     []Change              `json:"changes"`
	Transitions []Transition          `json:"transitions"`
}

func dayKey(characterID, date string) string {
	return characterID + "|" + date
}

func NewFileStore(dir string) *FileStore {
	store := &FileStore{
		path: filepath.Join(dir, "moods.json"),
		data: fileData{Moods: make(map[string]*DailyMood)},
	}
	store.load()
	return store
}

func (s *FileStore) load() {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var data fileData
	if err := json.Unmarshal(raw, &data); err != nil {
		return
	}
	if data.Moods == nil {
		data.Moods = make(map[string]*DailyMood)
	}
	s.data = data
}

func (s *FileStore) persist() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal mood state: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write mood state: %w", err)
	}
	return nil
}

func (s *FileStore) GetDailyMood(characterID, date string) (*DailyMood, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	mood, ok := s.data.Moods[dayKey(characterID, date)]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *mood
	return &copied, nil
}

func (s *FileStore) SetDailyMood(mood *DailyMood) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := dayKey(mood.CharacterID, mood.Date)
	previous, existed := s.data.Moods[key]
	copied := *mood
	s.data.Moods[key] = &copied
	if err := s.persist(); err != nil {
		if existed {
			s.data.Moods[key] = previous
		} else {
			delete(s.data.Moods, key)
		}
		return err
	}
	return nil
}

func (s *FileStore) AddChange(change *Change) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.Changes = append(s.data.Changes, *change)
	return s.persist()
}

func (s *FileStore) RecentChanges(characterID, date string, limit int) ([]Change, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var changes []Change
	for i := len(s.data.Changes) - 1; i >= 0 && len(changes) < limit; i-- {
		c := s.data.Changes[i]
		if c.CharacterID == characterID && c.Date == date {
			changes = append(changes, c)
		}
	}
	return changes, nil
}

func (s *FileStore) AddTransition(transition *Transition) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.Transitions = append(s.data.Transitions, *transition)
	return s.persist()
}

func (s *FileStore) RecentTransitions(characterID, date string, limit int) ([]Transition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var transitions []Transition
	for i := len(s.data.Transitions) - 1; i >= 0 && len(transitions) < limit; i-- {
		tr := s.data.Transitions[i]
		if tr.CharacterID == characterID && tr.Date == date {
			transitions = append(transitions, tr)
		}
	}
	return transitions, nil
}
