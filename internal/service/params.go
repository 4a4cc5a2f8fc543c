package service

import (
	"voice_control_system/internal/lighting"
	"voice_control_system/internal/models"
)

// RegisterParams is the payload of a new account registration. The
// preferences seed the owner profile created alongside the account.
type RegisterParams struct {
	Name         string
	Username     string
	Password     string
	HouseAddress string
	Preferences  []models.Preference
}

// ProfileParams carries the mutable parts of a profile. A nil or empty
// Preferences slice on edit keeps the stored ones; an empty ImagePath
// keeps the stored photo.
type ProfileParams struct {
	Name        string
	ImagePath   string
	Preferences []models.Preference
}

// TranscribeResult is the outcome of one voice pipeline run.
type TranscribeResult struct {
	Command  models.VoiceCommand
	Text     string // raw transcript
	Response string // spoken-back confirmation
	Action   string // activity log line, empty unless applied
	Applied  bool
	Level    lighting.Level
}
