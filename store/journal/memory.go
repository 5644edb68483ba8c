package journal

import (
	"context"
	"sync"
	"time"

	"anchor/core"
)

type memoryStore struct {
	mu      sync.Mutex
	nextID  int64
	entries []*core.JournalEntry
}

// NewMemory new in-memory journal store for tests and single-process runs
func NewMemory() core.IJournalStore {
	return &memoryStore{nextID: 1}
}

func (s *memoryStore) Record(ctx context.Context, entry *core.JournalEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entries {
		if e.TraceID == entry.TraceID {
			return nil
		}
	}

	e := *entry
	e.ID = s.nextID
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	s.nextID++
	s.entries = append(s.entries, &e)
	return nil
}

func (s *memoryStore) ListByUser(ctx context.Context, userID string, limit int) ([]*core.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 {
		limit = 100
	}

	var entries []*core.JournalEntry
	for i := len(s.entries) - 1; i >= 0 && len(entries) < limit; i-- {
		if s.entries[i].UserID == userID {
			e := *s.entries[i]
			entries = append(entries, &e)
		}
	}

	return entries, nil
}
