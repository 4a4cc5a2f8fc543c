package stt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/ggerganov/whisper.cpp/bindings/go/pkg/whisper"
)

// Whisper runs a local ggml whisper model.
type Whisper struct {
	model    whisper.Model
	language string
}

// NewWhisper loads the model at modelPath. language may be "auto".
func NewWhisper(modelPath, language string) (*Whisper, error) {
	if modelPath == "" {
		return nil, errors.New("empty model path")
	}
	m, err := whisper.New(modelPath)
	if err != nil {
		return nil, fmt.Errorf("load whisper model: %w", err)
	}
	if language == "" {
		language = "auto"
	}
	return &Whisper{model: m, language: language}, nil
}

func (w *Whisper) Close() error {
	if w.model == nil {
		return nil
	}
	return w.model.Close()
}

var _ Engine = (*Whisper)(nil)

// Transcribe runs the model over the samples and concatenates the
// recognized segments.
func (w *Whisper) Transcribe(ctx context.Context, pcm16k []float32) (string, error) {
	if w.model == nil {
		return "", errors.New("nil whisper model")
	}
	if len(pcm16k) == 0 {
		return "", errors.New("no audio samples provided")
	}

	wctx, err := w.model.NewContext()
	if err != nil {
		return "", fmt.Errorf("new whisper context: %w", err)
	}
	if err := wctx.SetLanguage(w.language); err != nil {
		return "", fmt.Errorf("set language: %w", err)
	}
	wctx.SetThreads(uint(runtime.NumCPU()))

	if err := wctx.Process(pcm16k, nil, nil, nil); err != nil {
		return "", fmt.Errorf("process audio: %w", err)
	}

	var parts []string
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}
		seg, err := wctx.NextSegment()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("next segment: %w", err)
		}
		parts = append(parts, seg.Text)
	}
	return strings.TrimSpace(strings.Join(parts, " ")), nil
}
