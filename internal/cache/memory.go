package cache

import (
	"context"
	"errors"
	"sync"
	"time"
)

const (
	// DefaultMemoryMaxItems bounds the keys a MemoryStore holds at once
	DefaultMemoryMaxItems = 100000
	memorySweepEvery      = time.Minute
)

// ErrFull is returned by MemoryStore.Set when the key limit is reached even
// after dropping expired entries
var ErrFull = errors.New("cache: memory store is full")

type memoryItem struct {
	value     []byte
	count     int
	expiresAt time.Time // zero means no expiry
}

func (i memoryItem) expired(now time.Time) bool {
	return !i.expiresAt.IsZero() && !now.Before(i.expiresAt)
}

// MemoryStore is a process-local Store used when redis is not configured.
// Expired entries are dropped on access and by a sweep that runs at most once
// a minute on writes, or immediately when the key limit is reached.
type MemoryStore struct {
	mu        sync.Mutex
	items     map[string]memoryItem
	now       func() time.Time
	maxItems  int
	lastSweep time.Time
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]memoryItem), now: time.Now, maxItems: DefaultMemoryMaxItems}
}

// sweep drops expired entries; must be called with mu held
func (s *MemoryStore) sweep(force bool) {
	now := s.now()
	if !force && now.Sub(s.lastSweep) < memorySweepEvery {
		return
	}
	s.lastSweep = now
	for k, item := range s.items {
		if item.expired(now) {
			delete(s.items, k)
		}
	}
}

// room reports whether a new key fits; must be called with mu held
func (s *MemoryStore) room(key string) bool {
	s.sweep(false)
	if _, ok := s.items[key]; ok || len(s.items) < s.maxItems {
		return true
	}
	s.sweep(true)
	return len(s.items) < s.maxItems
}

func (s *MemoryStore) deadline(ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}
	return s.now().Add(ttl)
}

// lookup must be called with mu held
func (s *MemoryStore) lookup(key string) (memoryItem, bool) {
	item, ok := s.items[key]
	if !ok {
		return memoryItem{}, false
	}
	if item.expired(s.now()) {
		delete(s.items, key)
		return memoryItem{}, false
	}
	return item, true
}

// Set stores value under key for ttl
func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.room(key) {
		return ErrFull
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	s.items[key] = memoryItem{value: cp, expiresAt: s.deadline(ttl)}
	return nil
}

// Get returns the value of key or ErrMiss
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.lookup(key)
	if !ok {
		return nil, ErrMiss
	}
	return item.value, nil
}

// Take returns the value of key and deletes it
func (s *MemoryStore) Take(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.lookup(key)
	if !ok {
		return nil, ErrMiss
	}
	delete(s.items, key)
	return item.value, nil
}

// Delete removes key
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
	return nil
}

// Exists reports whether key is present
func (s *MemoryStore) Exists(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.lookup(key)
	return ok, nil
}

// Allow implements a fixed-window counter. New keys are refused while the
// store is full.
func (s *MemoryStore) Allow(_ context.Context, key string, limit int, window time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.room(key) {
		return false, nil
	}
	item, ok := s.lookup(key)
	if !ok {
		item = memoryItem{expiresAt: s.deadline(window)}
	}
	item.count++
	s.items[key] = item
	return item.count <= limit, nil
}

// Ping always succeeds
func (s *MemoryStore) Ping(context.Context) error { return nil }

// Close drops every entry
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]memoryItem)
	return nil
}
