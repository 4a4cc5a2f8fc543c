package intent

import (
	"context"
	"strings"
	"unicode"

	"voice_control_system/internal/models"
)

// KeywordClassifier matches the transcript against fixed keyword lists.
// It needs no network or model and is the default engine.
type KeywordClassifier struct{}

func NewKeywordClassifier() *KeywordClassifier { return &KeywordClassifier{} }

var _ Classifier = (*KeywordClassifier)(nil)

var (
	roomKeywords   = []string{"master", "kitchen", "guest", "hall"}
	intentKeywords = []string{models.IntentOn, models.IntentOff}

	// Synonyms that imply a brightness level; any of them also implies
	// the light is being turned on.
	intensityKeywords = map[string][]string{
		models.IntensityLow:  {"low", "soft", "decrease"},
		models.IntensityHigh: {"high", "bright", "increase"},
	}
)

// Classify scans word tokens of the lowercased transcript. The last
// matching room wins; an intensity word forces intent to "on"; "on"
// without a qualifier defaults to low.
func (k *KeywordClassifier) Classify(_ context.Context, transcript string) (models.VoiceCommand, error) {
	words := tokenize(transcript)

	var cmd models.VoiceCommand
	for _, room := range roomKeywords {
		if words[room] {
			cmd.Room = room
		}
	}
	for _, in := range intentKeywords {
		if words[in] {
			cmd.Intent = in
		}
	}
	// Fixed order so "high" wins when both qualifiers are spoken.
	for _, level := range []string{models.IntensityLow, models.IntensityHigh} {
		for _, s := range intensityKeywords[level] {
			if words[s] {
				cmd.Intensity = level
				cmd.Intent = models.IntentOn
			}
		}
	}

	// A bare room name reads as a request to switch that light on.
	if cmd.Room != "" && cmd.Intent == "" {
		cmd.Intent = models.IntentOn
	}
	if cmd.Intent == models.IntentOn && cmd.Intensity == "" {
		cmd.Intensity = models.IntensityLow
	}
	if cmd.Intent == models.IntentOff {
		cmd.Intensity = ""
	}
	if !cmd.Recognized() {
		return models.VoiceCommand{}, nil
	}
	return cmd, nil
}

// tokenize lowercases the transcript and splits it into a word set,
// stripping punctuation so "kitchen." still matches.
func tokenize(s string) map[string]bool {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	return set
}
