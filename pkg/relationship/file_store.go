package relationship

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// FileStore keeps the whole ledger in one JSON document on disk. It exists
// for tests and small local deployments; SurrealStore is the production
// implementation of the same interface.
type FileStore struct {
	mu   sync.Mutex
	path string
	data fileData
}

type fileData struct {
	Records  map[string]*Record `json:"records"`
	Sessions []Session          `json:"sessions"`
	Moments  []EmotionalMoment  `json:"moments"`
	Rewards  []RewardRecord     `json:"rewards"`
}

func pairKey(userID, characterID string) string {
	return userID + "|" + characterID
}

func NewFileStore(dir string) *FileStore {
	store := &FileStore{
		path: filepath.Join(dir, "relationships.json"),
		data: fileData{Records: make(map[string]*Record)},
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
	if data.Records == nil {
		data.Records = make(map[string]*Record)
	}
	s.data = data
}

func (s *FileStore) persist() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal ledger: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write ledger: %w", err)
	}
	return nil
}

func (s *FileStore) GetRecord(userID, characterID string) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.data.Records[pairKey(userID, characterID)]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *rec
	return &copied, nil
}

func (s *FileStore) EnsureRecord(userID, characterID string, createdAt time.Time) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := pairKey(userID, characterID)
	rec, ok := s.data.Records[key]
	if !ok {
		rec = &Record{
			UserID:      userID,
			CharacterID: characterID,
			CreatedAt:   createdAt,
		}
		s.data.Records[key] = rec
		if err := s.persist(); err != nil {
			delete(s.data.Records, key)
			return nil, err
		}
	}
	copied := *rec
	return &copied, nil
}

func (s *FileStore) UpdateRecord(rec *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *rec
	s.data.Records[pairKey(rec.UserID, rec.CharacterID)] = &copied
	return s.persist()
}

func (s *FileStore) AddSession(sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.Sessions = append(s.data.Sessions, *sess)
	return s.persist()
}

func (s *FileStore) RecentSessions(userID, characterID string, limit int) ([]Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sessions []Session
	for i := len(s.data.Sessions) - 1; i >= 0 && len(sessions) < limit; i-- {
		sess := s.data.Sessions[i]
		if sess.UserID == userID && sess.CharacterID == characterID {
			sessions = append(sessions, sess)
		}
	}
	return sessions, nil
}

func (s *FileStore) AddEmotionalMoment(moment *EmotionalMoment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.Moments = append(s.data.Moments, *moment)
	return s.persist()
}

func (s *FileStore) CountMomentsOnDay(userID, characterID, day string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, m := range s.data.Moments {
		if m.UserID == userID && m.CharacterID == characterID && m.Day == day {
			count++
		}
	}
	return count, nil
}

func (s *FileStore) RecentMoments(userID, characterID string, limit int) ([]EmotionalMoment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var moments []EmotionalMoment
	for i := len(s.data.Moments) - 1; i >= 0 && len(moments) < limit; i-- {
		m := s.data.Moments[i]
		if m.UserID == userID && m.CharacterID == characterID {
			moments = append(moments, m)
		}
	}
	return moments, nil
}

func (s *FileStore) GetReward(userID, characterID string) (*RewardRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.Rewards {
		r := s.data.Rewards[i]
		if r.UserID == userID && r.CharacterID == characterID {
			return &r, nil
		}
	}
	return nil, ErrNotFound
}

// AllocateReward runs its existence check, count and insert under the store
// mutex, so concurrent pairs cannot both claim the final slot.
func (s *FileStore) AllocateReward(userID, characterID string, poolSize int, achievedAt time.Time) (*RewardRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.data.Rewards {
		if r.UserID == userID && r.CharacterID == characterID {
			return nil, nil
		}
	}
	if len(s.data.Rewards) >= poolSize {
		return nil, nil
	}

	reward := RewardRecord{
		UserID:      userID,
		CharacterID: characterID,
		Rank:        len(s.data.Rewards) + 1,
		AchievedAt:  achievedAt,
	}
	s.data.Rewards = append(s.data.Rewards, reward)
	if err := s.persist(); err != nil {
		s.data.Rewards = s.data.Rewards[:len(s.data.Rewards)-1]
		return nil, err
	}
	return &reward, nil
}

func (s *FileStore) ListRewards() ([]RewardRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rewards := make([]RewardRecord, len(s.data.Rewards))
	copy(rewards, s.data.Rewards)
	return rewards, nil
}

func (s *FileStore) SetWalletAddress(userID, characterID, address string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.Rewards {
		if s.data.Rewards[i].UserID == userID && s.data.Rewards[i].CharacterID == characterID {
			s.data.Rewards[i].WalletAddress = address
			return s.persist()
		}
	}
	return ErrNotFound
}

func (s *FileStore) MarkRewardMinted(userID, characterID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.Rewards {
		if s.data.Rewards[i].UserID == userID && s.data.Rewards[i].CharacterID == characterID {
			s.data.Rewards[i].Minted = true
			return s.persist()
		}
	}
	return ErrNotFound
}

func (s *FileStore) Leaderboard(limit int) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]Record, 0, len(s.data.Records))
	for _, rec := range s.data.Records {
		records = append(records, *rec)
	}
	sortLeaderboard(records)
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}
