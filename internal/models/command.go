package models

// Spoken intent and intensity vocabulary produced by the classifier.
const (
	IntentOn  = "on"
	IntentOff = "off"

	IntensityLow  = "low"
	IntensityHigh = "high"
)

// VoiceCommand is the structured result of classifying one transcript.
// Intensity is empty when the speaker gave no qualifier; it is only
// meaningful when Intent is "on".
type VoiceCommand struct {
	Room      string `json:"room"`
	Intent    string `json:"intent"`
	Intensity string `json:"intensity,omitempty"`
}

// Recognized reports whether the classifier found a room to act on.
// A command without a room is answered but never applied or logged.
func (c VoiceCommand) Recognized() bool {
	return c.Room != ""
}
