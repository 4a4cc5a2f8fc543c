package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"voice_control_system/internal/models"
	"voice_control_system/internal/repository"
)

// MaxProfiles caps how many household members one admin can manage,
// the owner included.
const MaxProfiles = 4

// ProfileService manages the household members of an admin account.
type ProfileService struct {
	profiles repository.Profiles
}

func NewProfileService(profiles repository.Profiles) *ProfileService {
	return &ProfileService{profiles: profiles}
}

var _ Profiles = (*ProfileService)(nil)

func (s *ProfileService) List(ctx context.Context, adminID string) ([]models.Profile, error) {
	return s.profiles.ListByAdmin(ctx, adminID)
}

func (s *ProfileService) Get(ctx context.Context, userID string) (*models.Profile, error) {
	p, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

// Add creates a resident profile under the admin, enforcing the
// household cap.
func (s *ProfileService) Add(ctx context.Context, adminID string, params ProfileParams) (*models.Profile, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	prefs, err := normalizePreferences(params.Preferences)
	if err != nil {
		return nil, err
	}

	count, err := s.profiles.CountByAdmin(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if count >= MaxProfiles {
		return nil, ErrProfileLimit
	}

	p := models.Profile{
		UserID:      uuid.NewString(),
		AdminID:     adminID,
		Name:        name,
		ImagePath:   params.ImagePath,
		Role:        models.RoleResident,
		Preferences: prefs,
	}
	if err := s.profiles.Create(ctx, p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Edit updates a resident profile. The owner profile is fixed; a nil
// or empty preference slice keeps the stored rooms, an empty image
// path keeps the stored photo.
func (s *ProfileService) Edit(ctx context.Context, userID string, params ProfileParams) (*models.Profile, error) {
	stored, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, ErrNotFound
	}
	if stored.Role == models.RoleOwner {
		return nil, ErrOwnerImmutable
	}

	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	prefs := stored.Preferences
	if len(params.Preferences) > 0 {
		prefs, err = normalizePreferences(params.Preferences)
		if err != nil {
			return nil, err
		}
	}

	updated := models.Profile{
		UserID:      stored.UserID,
		AdminID:     stored.AdminID,
		Name:        name,
		ImagePath:   params.ImagePath,
		Role:        stored.Role,
		Preferences: prefs,
	}
	if err := s.profiles.Update(ctx, updated); err != nil {
		return nil, err
	}
	if updated.ImagePath == "" {
		updated.ImagePath = stored.ImagePath
	}
	return &updated, nil
}
