package service

import (
	"context"
	"errors"
	"testing"

	"voice_control_system/internal/lighting"
	"voice_control_system/internal/models"
	"voice_control_system/internal/repository"
	"voice_control_system/internal/rooms"
)

func newHomeFixture(t *testing.T) (*HomeService, *fakeProfileRepo) {
	t.Helper()
	profiles := newFakeProfileRepo()
	return NewHomeService(profiles, repository.NewHomeStateMemory()), profiles
}

func seedProfile(t *testing.T, repo *fakeProfileRepo, userID string, prefs []models.Preference) {
	t.Helper()
	if err := repo.Create(context.Background(), models.Profile{
		UserID:      userID,
		AdminID:     "admin-1",
		Name:        "Tester",
		Role:        models.RoleResident,
		Preferences: prefs,
	}); err != nil {
		t.Fatalf("seed profile: %v", err)
	}
}

func TestStateSeedsFromPreferences(t *testing.T) {
	svc, profiles := newHomeFixture(t)
	seedProfile(t, profiles, "u1", []models.Preference{
		{Room: rooms.Kitchen, Intent: 1, Intensity: 1}, // bright
		{Room: rooms.Hall, Intent: 1, Intensity: 0},    // warm
		{Room: rooms.Master, Intent: 0, Intensity: 1},  // off beats intensity
		{Room: rooms.Guest, Intent: 0, Intensity: 0},   // off
	})

	state, err := svc.State(context.Background(), "u1")
	if err != nil {
		t.Fatalf("State: %v", err)
	}
	want := map[string]lighting.Level{
		rooms.Kitchen: lighting.LevelBright,
		rooms.Hall:    lighting.LevelWarm,
		rooms.Master:  lighting.LevelOff,
		rooms.Guest:   lighting.LevelOff,
	}
	for room, lvl := range want {
		if state[room] != lvl {
			t.Errorf("%s = %v, want %v", room, state[room], lvl)
		}
	}
}

func TestStateUnknownUser(t *testing.T) {
	svc, _ := newHomeFixture(t)
	if _, err := svc.State(context.Background(), "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSetLevelSlider(t *testing.T) {
	svc, profiles := newHomeFixture(t)
	seedProfile(t, profiles, "u1", nil)
	ctx := context.Background()

	if err := svc.SetLevel(ctx, "u1", rooms.Kitchen, 2); err != nil {
		t.Fatalf("SetLevel: %v", err)
	}
	state, err := svc.State(ctx, "u1")
	if err != nil {
		t.Fatalf("State: %v", err)
	}
	if state[rooms.Kitchen] != lighting.LevelBright {
		t.Errorf("kitchen = %v, want bright", state[rooms.Kitchen])
	}

	// UI aliases work on the slider route too.
	if err := svc.SetLevel(ctx, "u1", "bedroom1", 0); err != nil {
		t.Fatalf("SetLevel alias: %v", err)
	}
	state, _ = svc.State(ctx, "u1")
	if state[rooms.Master] != lighting.LevelOff {
		t.Errorf("master = %v, want off", state[rooms.Master])
	}

	if err := svc.SetLevel(ctx, "u1", "garage", 1); !errors.Is(err, ErrUnknownRoom) {
		t.Errorf("unknown room err = %v, want ErrUnknownRoom", err)
	}
	if err := svc.SetLevel(ctx, "u1", rooms.Hall, 3); !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("bad level err = %v, want ErrInvalidLevel", err)
	}
}

func TestApplyVoiceCommand(t *testing.T) {
	svc, profiles := newHomeFixture(t)
	seedProfile(t, profiles, "u1", nil)
	ctx := context.Background()

	tests := []struct {
		name string
		cmd  models.VoiceCommand
		want lighting.Level
	}{
		{"on high is bright", models.VoiceCommand{Room: rooms.Guest, Intent: models.IntentOn, Intensity: models.IntensityHigh}, lighting.LevelBright},
		{"on low is warm", models.VoiceCommand{Room: rooms.Guest, Intent: models.IntentOn, Intensity: models.IntensityLow}, lighting.LevelWarm},
		{"off darkens", models.VoiceCommand{Room: rooms.Guest, Intent: models.IntentOff}, lighting.LevelOff},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lvl, err := svc.Apply(ctx, "u1", tt.cmd)
			if err != nil {
				t.Fatalf("Apply: %v", err)
			}
			if lvl != tt.want {
				t.Errorf("level = %v, want %v", lvl, tt.want)
			}
			state, _ := svc.State(ctx, "u1")
			if state[rooms.Guest] != tt.want {
				t.Errorf("state = %v, want %v", state[rooms.Guest], tt.want)
			}
		})
	}

	if _, err := svc.Apply(ctx, "u1", models.VoiceCommand{}); !errors.Is(err, ErrUnknownRoom) {
		t.Errorf("unrecognized command err = %v, want ErrUnknownRoom", err)
	}
}

func TestSliderDoesNotRewritePreferences(t *testing.T) {
	svc, profiles := newHomeFixture(t)
	seedProfile(t, profiles, "u1", []models.Preference{
		{Room: rooms.Kitchen, Intent: 1, Intensity: 0},
	})
	ctx := context.Background()

	if err := svc.SetLevel(ctx, "u1", rooms.Kitchen, 2); err != nil {
		t.Fatalf("SetLevel: %v", err)
	}
	p, _ := profiles.GetByID(ctx, "u1")
	for _, pref := range p.Preferences {
		if pref.Room == rooms.Kitchen && pref.Intensity != 0 {
			t.Errorf("stored preference mutated: %+v", pref)
		}
	}
}
