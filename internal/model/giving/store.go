package giving

// Store exposes giving level retrieval for HTTP handlers.
type Store interface {
	List() []Level
	FindByID(id string) (Level, bool)
}

// MemoryStore implements Store over a fixed slice.
type MemoryStore struct {
	items []Level
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied levels.
func NewMemoryStore(items []Level) *MemoryStore {
	return &MemoryStore{items: append([]Level(nil), items...)}
}

// List returns the giving levels in display order.
func (s *MemoryStore) List() []Level {
	return append([]Level(nil), s.items...)
}

// FindByID looks up a level by identifier.
func (s *MemoryStore) FindByID(id string) (Level, bool) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return Level{}, false
}
