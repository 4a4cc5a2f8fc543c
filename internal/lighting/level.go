// Package lighting defines the three-value bulb scale the virtual home
// renders and the derivations from stored preferences and voice
// commands onto it.
package lighting

import (
	"fmt"

	"voice_control_system/internal/models"
)

// Level is the rendered bulb intensity.
type Level int

const (
	LevelOff    Level = 0
	LevelWarm   Level = 1
	LevelBright Level = 2
)

// String returns the label the panel shows next to the bulb.
func (l Level) String() string {
	switch l {
	case LevelOff:
		return "off"
	case LevelWarm:
		return "warm"
	case LevelBright:
		return "bright"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// Valid reports whether l is one of the three rendered levels.
func (l Level) Valid() bool {
	return l >= LevelOff && l <= LevelBright
}

// FromPreference derives the level for a stored preference.
// Intent 0 forces off regardless of intensity; otherwise high maps to
// bright and low to warm.
func FromPreference(p models.Preference) Level {
	if p.Intent == 0 {
		return LevelOff
	}
	if p.Intensity == 1 {
		return LevelBright
	}
	return LevelWarm
}

// FromCommand derives the level for a classified voice command.
// "on" without a spoken qualifier means warm; anything but "on" turns
// the light off.
func FromCommand(c models.VoiceCommand) Level {
	if c.Intent != models.IntentOn {
		return LevelOff
	}
	if c.Intensity == models.IntensityHigh {
		return LevelBright
	}
	return LevelWarm
}
