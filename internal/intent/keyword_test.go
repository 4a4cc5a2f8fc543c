package intent

import (
	"context"
	"strings"
	"testing"

	"voice_control_system/internal/models"
)

func TestKeywordClassifier_Classify(t *testing.T) {
	k := NewKeywordClassifier()
	ctx := context.Background()

	tests := []struct {
		name       string
		transcript string
		want       models.VoiceCommand
	}{
		{
			name:       "on with bright qualifier",
			transcript: "Turn on the master bedroom light, make it bright.",
			want:       models.VoiceCommand{Room: "master", Intent: "on", Intensity: "high"},
		},
		{
			name:       "plain off",
			transcript: "turn off the kitchen lights",
			want:       models.VoiceCommand{Room: "kitchen", Intent: "off"},
		},
		{
			name:       "on without qualifier defaults to low",
			transcript: "switch on the hall light please",
			want:       models.VoiceCommand{Room: "hall", Intent: "on", Intensity: "low"},
		},
		{
			name:       "intensity synonym implies on",
			transcript: "increase the guest room",
			want:       models.VoiceCommand{Room: "guest", Intent: "on", Intensity: "high"},
		},
		{
			name:       "soft maps to low",
			transcript: "soft light in the hall",
			want:       models.VoiceCommand{Room: "hall", Intent: "on", Intensity: "low"},
		},
		{
			name:       "punctuation around keywords",
			transcript: "Kitchen: off!",
			want:       models.VoiceCommand{Room: "kitchen", Intent: "off"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := k.Classify(ctx, tt.transcript)
			if err != nil {
				t.Fatalf("Classify returned error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("Classify(%q)=%+v, want %+v", tt.transcript, got, tt.want)
			}
		})
	}
}

func TestKeywordClassifier_NoRoom(t *testing.T) {
	k := NewKeywordClassifier()
	got, err := k.Classify(context.Background(), "turn on the lights")
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	if got.Recognized() {
		t.Fatalf("expected unrecognized command, got %+v", got)
	}
}

func TestBuildResponse(t *testing.T) {
	tests := []struct {
		cmd  models.VoiceCommand
		want string
	}{
		{models.VoiceCommand{Room: "master", Intent: "on", Intensity: "high"},
			"The light is turned on with high intensity in master room."},
		{models.VoiceCommand{Room: "hall", Intent: "on"},
			"The light is turned on with low intensity in hall room."},
		{models.VoiceCommand{Room: "kitchen", Intent: "off"},
			"The light is turned off in kitchen room."},
		{models.VoiceCommand{}, UnrecognizedResponse},
	}
	for _, tt := range tests {
		if got := BuildResponse(tt.cmd); got != tt.want {
			t.Errorf("BuildResponse(%+v)=%q, want %q", tt.cmd, got, tt.want)
		}
	}
}

func TestDescribeAction(t *testing.T) {
	got := DescribeAction(models.VoiceCommand{Room: "master", Intent: "on", Intensity: "high"})
	if !strings.Contains(got, "bright") || !strings.Contains(got, "bedroom1") {
		t.Fatalf("action %q should mention bright and bedroom1", got)
	}
	got = DescribeAction(models.VoiceCommand{Room: "kitchen", Intent: "off"})
	if !strings.Contains(got, "off") || !strings.Contains(got, "kitchen") {
		t.Fatalf("action %q should mention off and kitchen", got)
	}
}
