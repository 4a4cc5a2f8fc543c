package service

import (
	"context"
	"errors"
	"testing"

	"voice_control_system/internal/models"
	"voice_control_system/internal/rooms"
)

func newAuthFixture() (*AuthService, *fakeAdminRepo, *fakeProfileRepo) {
	admins := newFakeAdminRepo()
	profiles := newFakeProfileRepo()
	auth := NewAuthService(admins, profiles, Config{SigningKey: "test-key"})
	return auth, admins, profiles
}

func TestRegisterCreatesAdminAndOwnerProfile(t *testing.T) {
	auth, admins, profiles := newAuthFixture()

	adminID, err := auth.Register(context.Background(), RegisterParams{
		Name:     "Alice",
		Username: "alice",
		Password: "secret",
		Preferences: []models.Preference{
			{Room: rooms.Kitchen, Intent: 1, Intensity: 1},
		},
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if adminID == "" {
		t.Fatal("Register returned empty admin id")
	}

	a, _ := admins.GetByUsername(context.Background(), "alice")
	if a == nil {
		t.Fatal("admin was not stored")
	}
	if a.PasswordHash == "secret" || a.PasswordHash == "" {
		t.Errorf("password stored without hashing: %q", a.PasswordHash)
	}

	owners, _ := profiles.ListByAdmin(context.Background(), adminID)
	if len(owners) != 1 {
		t.Fatalf("expected 1 owner profile, got %d", len(owners))
	}
	owner := owners[0]
	if owner.Role != models.RoleOwner {
		t.Errorf("owner role = %q, want %q", owner.Role, models.RoleOwner)
	}
	if len(owner.Preferences) != len(rooms.All) {
		t.Fatalf("owner preferences = %d rooms, want %d", len(owner.Preferences), len(rooms.All))
	}
	for _, p := range owner.Preferences {
		if p.Room == rooms.Kitchen {
			if p.Intent != 1 || p.Intensity != 1 {
				t.Errorf("kitchen preference = %+v, want intent=1 intensity=1", p)
			}
		} else if p.Intent != models.DefaultIntent || p.Intensity != models.DefaultIntensity {
			t.Errorf("%s preference = %+v, want defaults", p.Room, p)
		}
	}
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	auth, _, _ := newAuthFixture()
	ctx := context.Background()

	if _, err := auth.Register(ctx, RegisterParams{Name: "A", Username: "bob", Password: "x"}); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	_, err := auth.Register(ctx, RegisterParams{Name: "B", Username: "bob", Password: "y"})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("duplicate Register err = %v, want ErrUsernameTaken", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	auth, _, _ := newAuthFixture()
	ctx := context.Background()

	tests := []struct {
		name   string
		params RegisterParams
	}{
		{"missing name", RegisterParams{Username: "u", Password: "p"}},
		{"missing username", RegisterParams{Name: "n", Password: "p"}},
		{"missing password", RegisterParams{Name: "n", Username: "u"}},
		{"unknown room", RegisterParams{Name: "n", Username: "u", Password: "p",
			Preferences: []models.Preference{{Room: "garage", Intent: 1}}}},
		{"bad intent", RegisterParams{Name: "n", Username: "u", Password: "p",
			Preferences: []models.Preference{{Room: rooms.Hall, Intent: 2}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := auth.Register(ctx, tt.params); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestLoginAndToken(t *testing.T) {
	auth, _, _ := newAuthFixture()
	ctx := context.Background()

	adminID, err := auth.Register(ctx, RegisterParams{Name: "Carol", Username: "carol", Password: "hunter2"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	a, token, err := auth.Login(ctx, "carol", "hunter2")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if a.AdminID != adminID {
		t.Errorf("Login admin id = %q, want %q", a.AdminID, adminID)
	}
	if token == "" {
		t.Fatal("Login returned empty token")
	}

	parsed, err := auth.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if parsed != adminID {
		t.Errorf("ParseToken = %q, want %q", parsed, adminID)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	auth, _, _ := newAuthFixture()
	ctx := context.Background()

	if _, err := auth.Register(ctx, RegisterParams{Name: "Dave", Username: "dave", Password: "right"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, _, err := auth.Login(ctx, "dave", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password err = %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := auth.Login(ctx, "nobody", "x"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user err = %v, want ErrInvalidCredentials", err)
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	auth, _, _ := newAuthFixture()
	if _, err := auth.ParseToken("not.a.token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestParseTokenRejectsForeignKey(t *testing.T) {
	auth, _, _ := newAuthFixture()
	other := NewAuthService(newFakeAdminRepo(), newFakeProfileRepo(), Config{SigningKey: "other-key"})

	adminID, err := auth.Register(context.Background(), RegisterParams{Name: "E", Username: "e", Password: "p"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	_, token, err := auth.Login(context.Background(), "e", "p")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if _, err := other.ParseToken(token); err == nil {
		t.Fatalf("token for admin %s accepted with wrong signing key", adminID)
	}
}
