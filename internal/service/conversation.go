package service

import (
	"context"

	"voice_control_system/internal/models"
	"voice_control_system/internal/repository"
)

// historyLimit bounds how many past transcripts the panel shows.
const historyLimit = 10

// ConversationService exposes a user's transcribed voice history.
type ConversationService struct {
	logs repository.Conversations
}

func NewConversationService(logs repository.Conversations) *ConversationService {
	return &ConversationService{logs: logs}
}

var _ Conversations = (*ConversationService)(nil)

func (s *ConversationService) List(ctx context.Context, userID string) ([]models.ConversationLog, error) {
	return s.logs.ListRecent(ctx, userID, historyLimit)
}
