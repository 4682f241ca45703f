package knowledge

import "strings"

// DefaultSearchLimit caps the number of facts returned by Search.
const DefaultSearchLimit = 3

// Store exposes the read-only knowledge table.
type Store interface {
	Categories() []Category
	FindCategory(name string) (Category, bool)
	Search(query string, limit int) string
}

// MemoryStore implements Store over an in-memory slice.
type MemoryStore struct {
	items []Category
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied categories.
func NewMemoryStore(items []Category) *MemoryStore {
	return &MemoryStore{items: append([]Category(nil), items...)}
}

// Categories returns the table in declaration order.
func (s *MemoryStore) Categories() []Category {
	return append([]Category(nil), s.items...)
}

// FindCategory looks up a category by name, case-insensitively.
func (s *MemoryStore) FindCategory(name string) (Category, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, item := range s.items {
		if item.Name == name {
			return item, true
		}
	}
	return Category{}, false
}

// Names lists category names in declaration order.
func (s *MemoryStore) Names() []string {
	names := make([]string, 0, len(s.items))
	for _, item := range s.items {
		names = append(names, item.Name)
	}
	return names
}

// Lookup collects "topic: fact" for every pair whose topic or category occurs in the
// lower-cased query, stopping after limit matches.
func (s *MemoryStore) Lookup(query string, limit int) []string {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	normalized := strings.ToLower(query)

	matches := make([]string, 0, limit)
	for _, category := range s.items {
		for _, topic := range category.Topics {
			if !strings.Contains(normalized, topic.Name) && !strings.Contains(normalized, category.Name) {
				continue
			}
			matches = append(matches, topic.Name+": "+topic.Fact)
			if len(matches) == limit {
				return matches
			}
		}
	}
	return matches
}

// Search joins the Lookup matches by a single space; empty when nothing matched.
func (s *MemoryStore) Search(query string, limit int) string {
	return strings.Join(s.Lookup(query, limit), " ")
}
