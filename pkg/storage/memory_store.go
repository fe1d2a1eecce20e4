package storage

import "sync"

// MemoryStore implements SeenStore in process memory. Used when no state
// directory is configured, so deduplication only spans the current run.
type MemoryStore struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{seen: make(map[string]struct{})}
}

// MarkSeen records a normalized URL, returning true when it is new.
func (s *MemoryStore) MarkSeen(normalizedURL string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.seen[normalizedURL]; ok {
		return false, nil
	}
	s.seen[normalizedURL] = struct{}{}
	return true, nil
}

// WasSeen reports whether a normalized URL was recorded before.
func (s *MemoryStore) WasSeen(normalizedURL string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.seen[normalizedURL]
	return ok, nil
}

// SeenCount returns the number of recorded URLs.
func (s *MemoryStore) SeenCount() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.seen), nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error { return nil }
