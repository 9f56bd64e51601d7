package logic

import (
	"sync"

	"recipefinder/internal/domain"
)

// MemoryRecipeStore is an in-memory implementation of RecipeStore
type MemoryRecipeStore struct {
	mu        sync.RWMutex
	query     string
	sort      SortMode
	cards     []domain.RecipeCard
	seen      map[int]struct{}
	total     int
	pages     int
	offset    int
	exhausted bool
}

// NewMemoryRecipeStore creates an empty store
func NewMemoryRecipeStore() *MemoryRecipeStore {
	return &MemoryRecipeStore{seen: make(map[int]struct{})}
}

// Reset starts a new search
func (s *MemoryRecipeStore) Reset(query string, sort SortMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = query
	s.sort = sort
	s.cards = nil
	s.seen = make(map[int]struct{})
	s.total = 0
	s.pages = 0
	s.offset = 0
	s.exhausted = false
}

// Append adds a loaded page and returns how many new cards it contributed.
// Cards already present are skipped but still advance the offset.
func (s *MemoryRecipeStore) Append(page domain.RecipePage) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := 0
	for _, c := range page.Cards {
		if _, dup := s.seen[c.ID]; dup {
			continue
		}
		s.seen[c.ID] = struct{}{}
		s.cards = append(s.cards, c)
		added++
	}
	s.total = page.TotalCount
	s.pages++
	s.offset += len(page.Cards)
	s.exhausted = len(page.Cards) == 0
	return added
}

func (s *MemoryRecipeStore) Cards() []domain.RecipeCard {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Return a copy to prevent external modification
	return append([]domain.RecipeCard(nil), s.cards...)
}

func (s *MemoryRecipeStore) Card(id int) (domain.RecipeCard, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.cards {
		if c.ID == id {
			return c, true
		}
	}
	return domain.RecipeCard{}, false
}

func (s *MemoryRecipeStore) Query() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query
}

func (s *MemoryRecipeStore) Sort() SortMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sort
}

func (s *MemoryRecipeStore) Total() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.total
}

// HasMore reports whether another page can be loaded
func (s *MemoryRecipeStore) HasMore() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.pages == 0 {
		return true
	}
	return !s.exhausted && s.offset < s.total
}

// NextOffset is the offset of the next page to request
func (s *MemoryRecipeStore) NextOffset() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.offset
}
