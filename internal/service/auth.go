package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"voice_control_system/internal/models"
	"voice_control_system/internal/repository"
)

const defaultTokenTTL = time.Hour

// AuthService handles registration, login and session tokens.
type AuthService struct {
	admins     repository.Admins
	profiles   repository.Profiles
	signingKey []byte
	tokenTTL   time.Duration
}

func NewAuthService(admins repository.Admins, profiles repository.Profiles, cfg Config) *AuthService {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &AuthService{
		admins:     admins,
		profiles:   profiles,
		signingKey: []byte(cfg.SigningKey),
		tokenTTL:   ttl,
	}
}

var _ Authorization = (*AuthService)(nil)

// Register creates the admin account and its owner profile carrying
// the submitted room preferences. Returns the new admin id.
func (s *AuthService) Register(ctx context.Context, p RegisterParams) (string, error) {
	name := strings.TrimSpace(p.Name)
	username := strings.TrimSpace(p.Username)
	if name == "" || username == "" || strings.TrimSpace(p.Password) == "" {
		return "", errors.New("name, username and password are required")
	}

	prefs, err := normalizePreferences(p.Preferences)
	if err != nil {
		return "", err
	}

	existing, err := s.admins.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", ErrUsernameTaken
	}

	hash, err := hashPassword(p.Password)
	if err != nil {
		return "", err
	}

	adminID := uuid.NewString()
	if err := s.admins.Create(ctx, models.Admin{
		AdminID:      adminID,
		Name:         name,
		Username:     username,
		PasswordHash: hash,
		HouseAddress: strings.TrimSpace(p.HouseAddress),
	}); err != nil {
		return "", err
	}

	// The account owner is also the first household profile.
	if err := s.profiles.Create(ctx, models.Profile{
		UserID:      uuid.NewString(),
		AdminID:     adminID,
		Name:        name,
		Role:        models.RoleOwner,
		Preferences: prefs,
	}); err != nil {
		return "", err
	}

	return adminID, nil
}

// Login validates credentials and returns the admin plus a signed
// session token.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.Admin, string, error) {
	a, err := s.admins.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, "", err
	}
	if a == nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := verifyPassword(a.PasswordHash, password); err != nil {
		return nil, "", ErrInvalidCredentials
	}
	token, err := s.issueToken(a.AdminID)
	if err != nil {
		return nil, "", err
	}
	return a, token, nil
}

// Account fetches the admin behind a parsed token.
func (s *AuthService) Account(ctx context.Context, adminID string) (*models.Admin, error) {
	a, err := s.admins.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrNotFound
	}
	return a, nil
}

// Claims defines JWT claims
type Claims struct {
	jwt.RegisteredClaims
	AdminID string `json:"admin_id"`
}

// ParseToken parses a JWT and returns the admin id.
func (s *AuthService) ParseToken(accessToken string) (string, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.AdminID == "" {
		return "", ErrInvalidToken
	}
	return claims.AdminID, nil
}

func (s *AuthService) issueToken(adminID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		AdminID: adminID,
	})
	return token.SignedString(s.signingKey)
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
