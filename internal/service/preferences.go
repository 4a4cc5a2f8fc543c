package service

import (
	"fmt"

	"voice_control_system/internal/models"
	"voice_control_system/internal/rooms"
)

// normalizePreferences validates a submitted preference list and
// returns exactly one entry per canonical room in display order.
// UI aliases (living, bedroom1, bedroom2) are canonicalized; rooms the
// client never sent get the defaults (on, low); duplicates keep the
// last value.
func normalizePreferences(in []models.Preference) ([]models.Preference, error) {
	byRoom := make(map[string]models.Preference, len(rooms.All))
	for _, p := range in {
		room, ok := rooms.Canonicalize(p.Room)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownRoom, p.Room)
		}
		if p.Intent != 0 && p.Intent != 1 {
			return nil, fmt.Errorf("invalid intent %d for room %q", p.Intent, room)
		}
		if p.Intensity != 0 && p.Intensity != 1 {
			return nil, fmt.Errorf("invalid intensity %d for room %q", p.Intensity, room)
		}
		p.Room = room
		byRoom[room] = p
	}

	out := make([]models.Preference, 0, len(rooms.All))
	for _, room := range rooms.All {
		p, ok := byRoom[room]
		if !ok {
			p = models.Preference{Room: room, Intent: models.DefaultIntent, Intensity: models.DefaultIntensity}
		}
		out = append(out, p)
	}
	return out, nil
}
