package repository

import (
	"context"
	"database/sql"

	"voice_control_system/internal/lighting"
	"voice_control_system/internal/models"
)

type Admins interface {
	Create(ctx context.Context, a models.Admin) error
	GetByUsername(ctx context.Context, username string) (*models.Admin, error)
	GetByID(ctx context.Context, adminID string) (*models.Admin, error)
}

type Profiles interface {
	Create(ctx context.Context, p models.Profile) error
	Update(ctx context.Context, p models.Profile) error
	GetByID(ctx context.Context, userID string) (*models.Profile, error)
	ListByAdmin(ctx context.Context, adminID string) ([]models.Profile, error)
	CountByAdmin(ctx context.Context, adminID string) (int, error)
}

type Conversations interface {
	Append(ctx context.Context, l models.ConversationLog) error
	ListRecent(ctx context.Context, userID string, limit int) ([]models.ConversationLog, error)
}

// HomeStates holds the live bulb levels. Display state lives for the
// process lifetime only and is never written back to preferences.
type HomeStates interface {
	Get(userID string) (map[string]lighting.Level, bool)
	Put(userID string, state map[string]lighting.Level)
	Set(userID, room string, level lighting.Level) bool
}

type Repository struct {
	Admins        Admins
	Profiles      Profiles
	Conversations Conversations
	HomeStates    HomeStates
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Admins:        NewAdminSQLite(db),
		Profiles:      NewProfileSQLite(db),
		Conversations: NewConversationSQLite(db),
		HomeStates:    NewHomeStateMemory(),
	}
}
