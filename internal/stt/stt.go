// Package stt decodes uploaded audio and turns it into text.
package stt

import (
	"context"
	"errors"
)

// ErrDisabled is returned when no speech engine is configured.
var ErrDisabled = errors.New("speech recognition is not configured")

// Engine transcribes mono 16 kHz float32 PCM in [-1, 1].
type Engine interface {
	Transcribe(ctx context.Context, pcm16k []float32) (string, error)
}

// Disabled is the engine used when no model path is configured; every
// call fails fast so the transcribe endpoint degrades loudly.
type Disabled struct{}

func (Disabled) Transcribe(context.Context, []float32) (string, error) {
	return "", ErrDisabled
}
