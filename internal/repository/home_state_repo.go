package repository

import (
	"sync"

	"voice_control_system/internal/lighting"
)

// HomeStateMemory keeps the live per-user bulb levels. The panel's
// display state is deliberately not durable: it is seeded from
// preferences on first access and dies with the process.
type HomeStateMemory struct {
	mu     sync.RWMutex
	states map[string]map[string]lighting.Level
}

func NewHomeStateMemory() *HomeStateMemory {
	return &HomeStateMemory{states: make(map[string]map[string]lighting.Level)}
}

var _ HomeStates = (*HomeStateMemory)(nil)

// Get returns a copy of the user's state so callers cannot mutate the
// store without going through Set.
func (s *HomeStateMemory) Get(userID string) (map[string]lighting.Level, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.states[userID]
	if !ok {
		return nil, false
	}
	out := make(map[string]lighting.Level, len(st))
	for room, level := range st {
		out[room] = level
	}
	return out, true
}

func (s *HomeStateMemory) Put(userID string, state map[string]lighting.Level) {
	cp := make(map[string]lighting.Level, len(state))
	for room, level := range state {
		cp[room] = level
	}
	s.mu.Lock()
	s.states[userID] = cp
	s.mu.Unlock()
}

// Set updates one room's level. Returns false when the user has no
// seeded state yet.
func (s *HomeStateMemory) Set(userID, room string, level lighting.Level) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.states[userID]
	if !ok {
		return false
	}
	st[room] = level
	return true
}
