package service

import (
	"context"
	"io"
	"path/filepath"
	"time"

	"voice_control_system/internal/intent"
	"voice_control_system/internal/lighting"
	"voice_control_system/internal/models"
	"voice_control_system/internal/repository"
	"voice_control_system/internal/stt"
)

type Authorization interface {
	Register(ctx context.Context, p RegisterParams) (string, error)
	Login(ctx context.Context, username, password string) (*models.Admin, string, error)
	ParseToken(accessToken string) (string, error)
	Account(ctx context.Context, adminID string) (*models.Admin, error)
}

// Profiles manages the household members under an admin account.
type Profiles interface {
	List(ctx context.Context, adminID string) ([]models.Profile, error)
	Get(ctx context.Context, userID string) (*models.Profile, error)
	Add(ctx context.Context, adminID string, p ProfileParams) (*models.Profile, error)
	Edit(ctx context.Context, userID string, p ProfileParams) (*models.Profile, error)
}

// Home exposes the live bulb levels of a user's virtual home.
type Home interface {
	State(ctx context.Context, userID string) (map[string]lighting.Level, error)
	SetLevel(ctx context.Context, userID, room string, level int) error
	Apply(ctx context.Context, userID string, cmd models.VoiceCommand) (lighting.Level, error)
}

// Conversations exposes the transcribed voice history.
type Conversations interface {
	List(ctx context.Context, userID string) ([]models.ConversationLog, error)
}

// Transcriber runs the full voice pipeline for one uploaded recording.
type Transcriber interface {
	Process(ctx context.Context, userID, filename string, audio io.Reader) (TranscribeResult, error)
}

// Retention runs the background loop that prunes stored recordings.
// Stop via context cancellation in main() for graceful shutdown.
type Retention interface {
	Run(ctx context.Context, tick time.Duration)
}

// Config carries the service-level knobs read from configuration.
type Config struct {
	SigningKey     string
	TokenTTL       time.Duration
	UploadsDir     string
	AudioRetention time.Duration
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Authorization
	Profiles
	Home
	Conversations
	Transcriber
	Retention
}

// NewService wires the repository layer and the speech stack into
// concrete services.
func NewService(repos *repository.Repository, engine stt.Engine, classifier intent.Classifier, cfg Config) *Service {
	home := NewHomeService(repos.Profiles, repos.HomeStates)
	return &Service{
		Authorization: NewAuthService(repos.Admins, repos.Profiles, cfg),
		Profiles:      NewProfileService(repos.Profiles),
		Home:          home,
		Conversations: NewConversationService(repos.Conversations),
		Transcriber:   NewTranscribeService(repos.Conversations, home, engine, classifier, cfg.UploadsDir),
		Retention:     NewRetentionService(filepath.Join(cfg.UploadsDir, "audio"), cfg.AudioRetention),
	}
}
