// Package intent turns a speech transcript into a structured lighting
// command: which room, on or off, and an optional low/high qualifier.
package intent

import (
	"context"
	"fmt"

	"voice_control_system/internal/models"
	"voice_control_system/internal/rooms"
)

// Classifier extracts a VoiceCommand from a transcript. A result with
// an empty Room means the utterance was not understood; that is not an
// error.
type Classifier interface {
	Classify(ctx context.Context, transcript string) (models.VoiceCommand, error)
}

// UnrecognizedResponse is the fixed reply for utterances with no
// recognizable room.
const UnrecognizedResponse = "Please enter valid instructions."

// BuildResponse renders the spoken-back confirmation for a recognized
// command.
func BuildResponse(c models.VoiceCommand) string {
	if !c.Recognized() {
		return UnrecognizedResponse
	}
	if c.Intent == models.IntentOff {
		return fmt.Sprintf("The light is turned off in %s room.", c.Room)
	}
	intensity := c.Intensity
	if intensity == "" {
		intensity = models.IntensityLow
	}
	return fmt.Sprintf("The light is turned on with %s intensity in %s room.", intensity, c.Room)
}

// DescribeAction renders the one-line activity log entry for an applied
// command, using the names the panel shows (bedroom1/bedroom2).
func DescribeAction(c models.VoiceCommand) string {
	ui := rooms.UIName(c.Room)
	if c.Intent == models.IntentOff {
		return fmt.Sprintf("Turned off the %s", ui)
	}
	if c.Intensity == models.IntensityHigh {
		return fmt.Sprintf("Set %s light to bright light", ui)
	}
	return fmt.Sprintf("Set %s light to warm light", ui)
}
