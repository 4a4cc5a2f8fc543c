package models

import "time"

// ConversationLog is one transcribed voice interaction. The JSON field
// names match what the control panel's log view consumes.
type ConversationLog struct {
	ID              string    `json:"-"`
	UserID          string    `json:"user_id"`
	FilePath        string    `json:"-"` // where the upload was stored
	TranscribedText string    `json:"transcribed_text"`
	CreatedAt       time.Time `json:"created_at"`
}
