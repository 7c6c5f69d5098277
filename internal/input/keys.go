// Package input tracks which keys are currently held down.
//
// The event loop writes the set, the render loop reads it once per frame:
//
//	event thread  --Press/Release (blocking)-->  Keys  <--TrySnapshot--  render thread
package input

import (
	"sync"
)

// Keys is an ordered set of held keys, safe for concurrent use.
type Keys[K comparable] struct {
	mu   sync.Mutex
	held []K
}

// NewKeys returns an empty set sized for a handful of simultaneous keys.
func NewKeys[K comparable]() *Keys[K] {
	return &Keys[K]{held: make([]K, 0, 10)}
}

// Press records key as held. Pressing a held key again is a no-op.
func (s *Keys[K]) Press(key K) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, h := range s.held {
		if h == key {
			return
		}
	}
	s.held = append(s.held, key)
}

// Release forgets key.
func (s *Keys[K]) Release(key K) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, h := range s.held {
		if h == key {
			s.held = append(s.held[:i], s.held[i+1:]...)
			return
		}
	}
}

// TrySnapshot copies the held keys in press order without blocking.
// When the event thread holds the lock it reports false and the caller
// goes without input for this frame.
func (s *Keys[K]) TrySnapshot() ([]K, bool) {
	if !s.mu.TryLock() {
		return nil, false
	}
	defer s.mu.Unlock()
	out := make([]K, len(s.held))
	copy(out, s.held)
	return out, true
}

// Held reports whether key is currently down. It blocks.
func (s *Keys[K]) Held(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, h := range s.held {
		if h == key {
			return true
		}
	}
	return false
}
