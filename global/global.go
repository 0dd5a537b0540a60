// Package global provides a process-wide, concurrency-safe variable store
// shared between packages. Reading an unset key yields the zero value
// instead of an error, and IsUserDefined tells explicitly set keys apart
// from never-written ones.
package global

import "sync"

// Store is a string-keyed variable store safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	vars map[string]any
}

// NewStore returns an empty store. Most callers use the package-level
// functions, which share a single process-wide store.
func NewStore() *Store {
	return &Store{vars: make(map[string]any)}
}

// Set stores value under key, marking it user-defined.
func (s *Store) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vars[key] = value
}

// Get returns the value under key, or nil when the key has never been set.
func (s *Store) Get(key string) any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vars[key]
}

// GetOr returns the value under key, or fallback when the key has never
// been set.
func (s *Store) GetOr(key string, fallback any) any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.vars[key]; ok {
		return v
	}
	return fallback
}

// IsUserDefined reports whether key has been explicitly set. A key set to
// nil still counts as defined.
func (s *Store) IsUserDefined(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.vars[key]
	return ok
}

// Delete removes key from the store.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.vars, key)
}

// Reset removes every key from the store.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vars = make(map[string]any)
}

// Keys returns the defined keys in no particular order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.vars))
	for k := range s.vars {
		keys = append(keys, k)
	}
	return keys
}

var defaultStore = NewStore()

// Default returns the shared process-wide store.
func Default() *Store { return defaultStore }

// Set stores value in the shared store.
func Set(key string, value any) { defaultStore.Set(key, value) }

// Get reads from the shared store.
func Get(key string) any { return defaultStore.Get(key) }

// GetOr reads from the shared store with a fallback.
func GetOr(key string, fallback any) any { return defaultStore.GetOr(key, fallback) }

// IsUserDefined reports whether key was explicitly set in the shared store.
func IsUserDefined(key string) bool { return defaultStore.IsUserDefined(key) }

// Delete removes key from the shared store.
func Delete(key string) { defaultStore.Delete(key) }

// Reset clears the shared store. Intended for tests.
func Reset() { defaultStore.Reset() }
