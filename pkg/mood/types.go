package mood

import "time"

// State is a character's mood at a point in time. Level indexes the
// category's four named intensities; Intensity scales the behavior
// modifiers.
type State struct {
	Category    string             `json:"category"`
	Level       int                `json:"level"`
	Intensity   float64            `json:"intensity"`
	Description string             `json:"description"`
	Modifiers   map[string]float64 `json:"modifiers"`
}

// DailyMood is the persisted mood row for one character and calendar day.
type DailyMood struct {
	CharacterID string    `json:"character_id"`
	Date        string    `json:"date"`
	Category    string    `json:"category"`
	Level       int       `json:"level"`
	Intensity   float64   `json:"intensity"`
	CreatedAt   time.Time `json:"created_at"`
}

// Change is the audit row for one mood update.
type Change struct {
	CharacterID  string    `json:"character_id"`
	Date         string    `json:"date"`
	PreviousMood string    `json:"previous_mood"`
	NewMood      string    `json:"new_mood"`
	TriggerType  string    `json:"trigger_type"`
	UserMessage  string    `json:"user_message"`
	ChangeAmount int       `json:"change_amount"`
	Timestamp    time.Time `json:"timestamp"`
}

// Transition records one category/level movement; the moderator reads the
// recent rows to detect whiplash.
type Transition struct {
	CharacterID  string    `json:"character_id"`
	Date         string    `json:"date"`
	FromCategory string    `json:"from_category"`
	FromLevel    int       `json:"from_level"`
	ToCategory   string    `json:"to_category"`
	ToLevel      int       `json:"to_level"`
	Speed        string    `json:"speed"`
	Timestamp    time.Time `json:"timestamp"`
}

// UpdateResult is what UpdateMood returns: the resulting state plus what, if
// anything, the message triggered.
type UpdateResult struct {
	State
	Changed                bool   `json:"changed"`
	ChangeReason           string `json:"change_reason,omitempty"`
	TriggersPersonalAttack bool   `json:"triggers_personal_attack"`
	PersonalAttack         string `json:"personal_attack,omitempty"`
}

// Summary is the full mood view for one character.
type Summary struct {
	CurrentMood     State    `json:"current_mood"`
	MoodDescription string   `json:"mood_description"`
	RecentChanges   []Change `json:"recent_changes"`
	PromptModifier  string   `json:"prompt_modifier"`
}
