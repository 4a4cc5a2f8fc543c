package models

// Preference stores a profile's lighting choice for one room.
// Intent 0 means the light stays off regardless of intensity;
// intensity only matters when intent is 1 (0 low, 1 high).
type Preference struct {
	Room      string `json:"room"`
	Intent    int    `json:"intent"`
	Intensity int    `json:"intensity"`
}

// Preference defaults applied to rooms the client never touched.
const (
	DefaultIntent    = 1
	DefaultIntensity = 0
)
