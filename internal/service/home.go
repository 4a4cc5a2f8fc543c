package service

import (
	"context"

	"voice_control_system/internal/lighting"
	"voice_control_system/internal/models"
	"voice_control_system/internal/repository"
	"voice_control_system/internal/rooms"
)

// HomeService tracks the live bulb level of every room in a user's
// virtual home. State lives for the process lifetime; on first access
// it is seeded from the user's stored preferences.
type HomeService struct {
	profiles repository.Profiles
	states   repository.HomeStates
}

func NewHomeService(profiles repository.Profiles, states repository.HomeStates) *HomeService {
	return &HomeService{profiles: profiles, states: states}
}

var _ Home = (*HomeService)(nil)

// State returns the current bulb level per room, seeding from stored
// preferences on first access.
func (s *HomeService) State(ctx context.Context, userID string) (map[string]lighting.Level, error) {
	if st, ok := s.states.Get(userID); ok {
		return st, nil
	}
	return s.seed(ctx, userID)
}

// SetLevel handles the per-room slider: it pins one room to an exact
// bulb level.
func (s *HomeService) SetLevel(ctx context.Context, userID, room string, level int) error {
	canonical, ok := rooms.Canonicalize(room)
	if !ok {
		return ErrUnknownRoom
	}
	lvl := lighting.Level(level)
	if !lvl.Valid() {
		return ErrInvalidLevel
	}
	if _, err := s.State(ctx, userID); err != nil {
		return err
	}
	if !s.states.Set(userID, canonical, lvl) {
		return ErrNotFound
	}
	return nil
}

// Apply turns a recognized voice command into a bulb level change and
// returns the resulting level.
func (s *HomeService) Apply(ctx context.Context, userID string, cmd models.VoiceCommand) (lighting.Level, error) {
	if !cmd.Recognized() {
		return lighting.LevelOff, ErrUnknownRoom
	}
	lvl := lighting.FromCommand(cmd)
	if _, err := s.State(ctx, userID); err != nil {
		return lvl, err
	}
	if !s.states.Set(userID, cmd.Room, lvl) {
		return lvl, ErrNotFound
	}
	return lvl, nil
}

func (s *HomeService) seed(ctx context.Context, userID string) (map[string]lighting.Level, error) {
	p, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	state := make(map[string]lighting.Level, len(rooms.All))
	for _, room := range rooms.All {
		state[room] = lighting.LevelOff
	}
	for _, pref := range p.Preferences {
		state[pref.Room] = lighting.FromPreference(pref)
	}
	s.states.Put(userID, state)
	return state, nil
}
