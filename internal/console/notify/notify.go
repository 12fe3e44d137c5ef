// Package notify is the transient toast queue rendered by the console shell.
package notify

import (
	"sync"
	"time"
)

// Toast kinds.
const (
	KindSuccess = "success"
	KindError   = "error"
)

// DefaultTTL is how long a toast stays visible before auto-expiry.
const DefaultTTL = 5 * time.Second

// Toast is one transient notification.
type Toast struct {
	ID      int64
	Message string
	Kind    string
}

// Store holds the active toasts in insertion order. Each toast owns a
// cancellable expiry timer; duplicates are kept, not coalesced.
type Store struct {
	mu     sync.Mutex
	ttl    time.Duration
	nextID int64
	toasts []Toast
	timers map[int64]*time.Timer
}

// NewStore creates a Store with the default 5 second TTL.
func NewStore() *Store {
	return NewStoreTTL(DefaultTTL)
}

// NewStoreTTL creates a Store with a custom TTL. Intended for tests.
func NewStoreTTL(ttl time.Duration) *Store {
	return &Store{ttl: ttl, timers: make(map[int64]*time.Timer)}
}

// ShowSuccess appends a success toast and returns its id.
func (s *Store) ShowSuccess(message string) int64 {
	return s.add(message, KindSuccess)
}

// ShowError appends an error toast and returns its id.
func (s *Store) ShowError(message string) int64 {
	return s.add(message, KindError)
}

func (s *Store) add(message, kind string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.toasts = append(s.toasts, Toast{ID: id, Message: message, Kind: kind})
	s.timers[id] = time.AfterFunc(s.ttl, func() { s.Remove(id) })
	return id
}

// Remove dismisses a toast early and cancels its timer. Unknown ids are a
// no-op.
func (s *Store) Remove(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	timer, ok := s.timers[id]
	if !ok {
		return
	}
	timer.Stop()
	delete(s.timers, id)

	for i, toast := range s.toasts {
		if toast.ID == id {
			s.toasts = append(s.toasts[:i], s.toasts[i+1:]...)
			break
		}
	}
}

// Toasts returns the active toasts in insertion order.
func (s *Store) Toasts() []Toast {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Toast, len(s.toasts))
	copy(out, s.toasts)
	return out
}
