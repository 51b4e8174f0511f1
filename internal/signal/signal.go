// Package signal provides the coordination primitives used around the
// registry's dirty flags: a single-slot consume-once signal, and a hub that
// fans a signal out so several independent consumers can each observe it.
//
// A raw consume-once registry flag is only safe with exactly one consumer;
// the first reader clears it and starves everyone else. Components with a
// single well-known consumer (the game loop's loadNextLevel flag) keep using
// the registry flag directly. Components with potentially many observers
// (settings changes watched by UI screens) publish through a Hub instead.
package signal

import "sync"

// Slot is a single-slot signal: present or absent, with an optional payload.
// Raising an already-raised slot replaces the payload; repeated raises
// between reads coalesce into one observation.
type Slot struct {
	mu      sync.Mutex
	raised  bool
	payload any
}

// Raise marks the slot as raised with the given payload.
func (s *Slot) Raise(payload any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.raised = true
	s.payload = payload
}

// Take reads and clears the slot. It returns the payload and whether the
// slot was raised. At most one caller observes a given raise.
func (s *Slot) Take() (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.raised {
		return nil, false
	}
	payload := s.payload
	s.raised = false
	s.payload = nil
	return payload, true
}

// Pending reports whether the slot is raised, without clearing it.
func (s *Slot) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.raised
}

// Hub broadcasts signals to any number of subscribers. Every subscriber
// observes every publish once, through its own slot; subscribers never
// consume each other's signals.
type Hub struct {
	mu   sync.Mutex
	subs []*Slot
}

// NewHub creates a hub with no subscribers.
func NewHub() *Hub {
	return &Hub{}
}

// Subscribe registers a new consumer and returns its slot. The caller polls
// the slot with Take or Pending.
func (h *Hub) Subscribe() *Slot {
	h.mu.Lock()
	defer h.mu.Unlock()

	s := &Slot{}
	h.subs = append(h.subs, s)
	return s
}

// Publish raises every subscriber's slot with the given payload.
func (h *Hub) Publish(payload any) {
	h.mu.Lock()
	subs := make([]*Slot, len(h.subs))
	copy(subs, h.subs)
	h.mu.Unlock()

	for _, s := range subs {
		s.Raise(payload)
	}
}

// Subscribers returns the current subscriber count.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.subs)
}
