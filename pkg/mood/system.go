package mood

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"kindred/pkg/config"
	"kindred/pkg/lexicon"
)

const (
	speedRapid   = "rapid"
	speedGradual = "gradual"

	changeHistoryLimit = 5
)

// System is the per-character mood state machine. Each character gets one
// random mood per calendar day; user messages then push it around through
// gradual, moderated transitions.
type System struct {
	store Store
	cfg   *config.Config
	log   *zap.SugaredLogger

	mu    sync.Mutex
	locks map[string]*sync.Mutex

	rng *rand.Rand
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
		locks: make(map[string]*sync.Mutex),
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		now:   time.Now,
	}
}

func (s *System) characterLock(characterID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[characterID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[characterID] = lock
	}
	return lock
}

func stateOf(mood *DailyMood) State {
	return State{
		Category:    mood.Category,
		Level:       mood.Level,
		Intensity:   mood.Intensity,
		Description: Description(mood.Category, mood.Level),
		Modifiers:   Modifiers(mood.Category, mood.Level, mood.Intensity),
	}
}

// DailyMood returns today's mood for a character, generating and persisting
// a random one on first call of the day. Repeated calls on the same day
// return the same value until an update moves it.
func (s *System) DailyMood(characterID string) (State, error) {
	lock := s.characterLock(characterID)
	lock.Lock()
	defer lock.Unlock()

	return s.dailyMoodLocked(characterID)
}

func (s *System) dailyMoodLocked(characterID string) (State, error) {
	now := s.now()
	date := now.Format("2006-01-02")

	mood, err := s.store.GetDailyMood(characterID, date)
	if err == nil {
		return stateOf(mood), nil
	}
	if err != ErrNotFound {
		return State{}, fmt.Errorf("failed to load daily mood: %w", err)
	}

	mood = &DailyMood{
		CharacterID: characterID,
		Date:        date,
		Category:    categories[s.rng.Intn(len(categories))],
		Level:       s.rng.Intn(4),
		Intensity:   0.3 + s.rng.Float64()*0.7,
		CreatedAt:   now,
	}
	if err := s.store.SetDailyMood(mood); err != nil {
		return State{}, fmt.Errorf("failed to store daily mood: %w", err)
	}

	s.log.Infow("generated daily mood",
		"character", characterID,
		"category", mood.Category,
		"level", mood.Level,
	)
	return stateOf(mood), nil
}

// UpdateMood folds one user message into the character's mood. A neutral
// message leaves the mood untouched. Insults while the character is already
// at least annoyed produce a personal attack when a memory source is
// available.
func (s *System) UpdateMood(characterID, message string, memories MemorySource) (*UpdateResult, error) {
	lock := s.characterLock(characterID)
	lock.Lock()
	defer lock.Unlock()

	current, err := s.dailyMoodLocked(characterID)
	if err != nil {
		return nil, err
	}

	class := lexicon.Classify(message)
	if class.Delta == 0 {
		return &UpdateResult{State: current}, nil
	}

	now := s.now()
	date := now.Format("2006-01-02")

	newCategory := current.Category
	newLevel := current.Level
	newIntensity := clampIntensity(current.Intensity + float64(class.Delta)*s.cfg.Mood.IntensityStep)

	if absInt(class.Delta) >= s.cfg.Mood.RapidDeltaFloor {
		newCategory, newLevel = shiftCategory(current.Category, current.Level, class.Delta)

		history, err := s.store.RecentTransitions(characterID, date, s.cfg.Mood.ModerationWindow)
		if err != nil {
			return nil, fmt.Errorf("failed to load transition history: %w", err)
		}
		if isRapidTransition(history, s.cfg.Mood.ThrashCategories) {
			moderated, moderatedLevel := moderateTransition(current.Category, current.Level, newCategory, newLevel)
			s.log.Debugw("moderated mood transition",
				"character", characterID,
				"requested", newCategory,
				"granted", moderated,
			)
			newCategory, newLevel = moderated, moderatedLevel
		}
	} else {
		switch {
		case class.Delta > 0:
			newLevel = minInt(3, newLevel+1)
		case current.Category == CategoryAngry:
			// Already angry, so minor negativity escalates.
			newLevel = minInt(3, newLevel+absInt(class.Delta))
		case (current.Category == CategoryExcited || current.Category == CategoryHappy || current.Category == CategoryPlayful) && current.Level >= 2:
			// High positive moods drain before they flip.
			newLevel = maxInt(0, newLevel-absInt(class.Delta))
		default:
			newCategory = CategoryAngry
			newLevel = maxInt(0, absInt(class.Delta)-1)
		}
	}

	var attack string
	if class.Insult && newCategory == CategoryAngry && newLevel >= 1 && memories != nil {
		attack = generateAttack(memories, s.rng)
	}

	if err := s.store.SetDailyMood(&DailyMood{
		CharacterID: characterID,
		Date:        date,
		Category:    newCategory,
		Level:       newLevel,
		Intensity:   newIntensity,
		CreatedAt:   now,
	}); err != nil {
		return nil, fmt.Errorf("failed to update daily mood: %w", err)
	}

	if err := s.store.AddChange(&Change{
		CharacterID:  characterID,
		Date:         date,
		PreviousMood: fmt.Sprintf("%s:%d", current.Category, current.Level),
		NewMood:      fmt.Sprintf("%s:%d", newCategory, newLevel),
		TriggerType:  class.Trigger,
		UserMessage:  truncate(message, 200),
		ChangeAmount: class.Delta,
		Timestamp:    now,
	}); err != nil {
		return nil, fmt.Errorf("failed to log mood change: %w", err)
	}

	speed := speedGradual
	if absInt(class.Delta) >= s.cfg.Mood.RapidDeltaFloor {
		speed = speedRapid
	}
	if err := s.store.AddTransition(&Transition{
		CharacterID:  characterID,
		Date:         date,
		FromCategory: current.Category,
		FromLevel:    current.Level,
		ToCategory:   newCategory,
		ToLevel:      newLevel,
		Speed:        speed,
		Timestamp:    now,
	}); err != nil {
		return nil, fmt.Errorf("failed to log mood transition: %w", err)
	}

	s.log.Debugw("mood updated",
		"character", characterID,
		"from", current.Category,
		"to", newCategory,
		"trigger", class.Trigger,
	)

	return &UpdateResult{
		State: State{
			Category:    newCategory,
			Level:       newLevel,
			Intensity:   newIntensity,
			Description: Description(newCategory, newLevel),
			Modifiers:   Modifiers(newCategory, newLevel, newIntensity),
		},
		Changed:                true,
		ChangeReason:           class.Trigger,
		TriggersPersonalAttack: class.Insult,
		PersonalAttack:         attack,
	}, nil
}

// SetMood pins a character's mood for today, bypassing the transition rules.
// Intensity below zero means "pick one".
func (s *System) SetMood(characterID, category string, level int, intensity float64) (*UpdateResult, error) {
	if err := Validate(category, level); err != nil {
		return nil, err
	}

	lock := s.characterLock(characterID)
	lock.Lock()
	defer lock.Unlock()

	if intensity < 0 {
		intensity = 0.3 + s.rng.Float64()*0.6
	}
	intensity = clampIntensity(intensity)

	now := s.now()
	date := now.Format("2006-01-02")

	if err := s.store.SetDailyMood(&DailyMood{
		CharacterID: characterID,
		Date:        date,
		Category:    category,
		Level:       level,
		Intensity:   intensity,
		CreatedAt:   now,
	}); err != nil {
		return nil, fmt.Errorf("failed to set mood: %w", err)
	}

	if err := s.store.AddChange(&Change{
		CharacterID:  characterID,
		Date:         date,
		PreviousMood: "system_reset",
		NewMood:      fmt.Sprintf("%s:%d", category, level),
		TriggerType:  "manual_reset",
		UserMessage:  "mood reset by operator",
		Timestamp:    now,
	}); err != nil {
		return nil, fmt.Errorf("failed to log mood reset: %w", err)
	}

	return &UpdateResult{
		State: State{
			Category:    category,
			Level:       level,
			Intensity:   intensity,
			Description: Description(category, level),
			Modifiers:   Modifiers(category, level, intensity),
		},
		Changed:      true,
		ChangeReason: "manual_reset",
	}, nil
}

// Summary returns the character's current mood together with the day's
// recent changes and the prompt modifier derived from the mood.
func (s *System) Summary(characterID string) (*Summary, error) {
	state, err := s.DailyMood(characterID)
	if err != nil {
		return nil, err
	}

	date := s.now().Format("2006-01-02")
	changes, err := s.store.RecentChanges(characterID, date, changeHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load mood changes: %w", err)
	}

	return &Summary{
		CurrentMood:     state,
		MoodDescription: fmt.Sprintf("%s %s", state.Description, state.Category),
		RecentChanges:   changes,
		PromptModifier:  promptModifier(state),
	}, nil
}

// PromptModifier returns the system-prompt fragment describing how the
// character's current mood should color its responses.
func (s *System) PromptModifier(characterID string) (string, error) {
	state, err := s.DailyMood(characterID)
	if err != nil {
		return "", err
	}
	return promptModifier(state), nil
}

func clampIntensity(v float64) float64 {
	if v < 0.1 {
		return 0.1
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
