package mood

import "errors"

// ErrNotFound is returned when no daily mood exists for a character and day.
var ErrNotFound = errors.New("mood: not found")

// Store is the persistence boundary for mood state and its audit trail.
// Implementations must be safe for concurrent use.
type Store interface {
	// GetDailyMood returns the mood row for a character and "2006-01-02"
	// day key, or ErrNotFound.
	GetDailyMood(characterID, date string) (*DailyMood, error)
	// SetDailyMood inserts or replaces the character's mood for its day.
	SetDailyMood(mood *DailyMood) error

	AddChange(change *Change) error
	// RecentChanges returns up to limit changes for a character on a day,
	// newest first.
	RecentChanges(characterID, date string, limit int) ([]Change, error)

	AddTransition(transition *Transition) error
	// RecentTransitions returns up to limit transitions for a character on
	// a day, newest first.
	RecentTransitions(characterID, date string, limit int) ([]Transition, error)
}
