// Package memory stores what a character remembers about a user as plain
// text fragments. The mood package's attack generator consumes them through
// its MemorySource interface; a pair-scoped Source from this package
// satisfies it.
package memory

// Store is the persistence boundary for memory fragments. Implementations
// must be safe for concurrent use.
type Store interface {
	// AddFragment appends one remembered statement about a user.
	AddFragment(userID, characterID, text string) error
	// RecentFragments returns up to limit fragments for a pair, newest
	// first.
	RecentFragments(userID, characterID string, limit int) ([]string, error)
	// DeleteUserData removes every fragment stored about a user.
	DeleteUserData(userID string) error
}

// Source is a Store scoped to one user/character pair.
type Source struct {
	store       Store
	userID      string
	characterID string
}

func NewSource(store Store, userID, characterID string) *Source {
	return &Source{store: store, userID: userID, characterID: characterID}
}

func (s *Source) RecentFragments(limit int) ([]string, error) {
	return s.store.RecentFragments(s.userID, s.characterID, limit)
}
