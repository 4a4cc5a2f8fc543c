package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"voice_control_system/internal/intent"
	"voice_control_system/internal/models"
	"voice_control_system/internal/repository"
	"voice_control_system/internal/stt"
)

// TranscribeService runs the voice pipeline: store the upload, decode
// it, transcribe, classify, and apply the command to the virtual home.
// At most one recording per user is processed at a time.
type TranscribeService struct {
	logs       repository.Conversations
	home       Home
	engine     stt.Engine
	classifier intent.Classifier
	audioDir   string

	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewTranscribeService(logs repository.Conversations, home Home, engine stt.Engine, classifier intent.Classifier, uploadsDir string) *TranscribeService {
	return &TranscribeService{
		logs:       logs,
		home:       home,
		engine:     engine,
		classifier: classifier,
		audioDir:   filepath.Join(uploadsDir, "audio"),
		inflight:   make(map[string]struct{}),
	}
}

var _ Transcriber = (*TranscribeService)(nil)

func (s *TranscribeService) Process(ctx context.Context, userID, filename string, audio io.Reader) (TranscribeResult, error) {
	if err := s.acquire(userID); err != nil {
		return TranscribeResult{}, err
	}
	defer s.release(userID)

	path, err := s.save(userID, filename, audio)
	if err != nil {
		return TranscribeResult{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return TranscribeResult{}, fmt.Errorf("open recording: %w", err)
	}
	pcm, err := stt.DecodeWAV(f)
	f.Close()
	if err != nil {
		return TranscribeResult{}, fmt.Errorf("decode recording: %w", err)
	}

	text, err := s.engine.Transcribe(ctx, pcm)
	if err != nil {
		return TranscribeResult{}, fmt.Errorf("transcribe: %w", err)
	}

	cmd, err := s.classifier.Classify(ctx, text)
	if err != nil {
		return TranscribeResult{}, fmt.Errorf("classify: %w", err)
	}

	res := TranscribeResult{Command: cmd, Text: text}
	if !cmd.Recognized() {
		res.Response = intent.UnrecognizedResponse
		return res, nil
	}

	level, err := s.home.Apply(ctx, userID, cmd)
	if err != nil {
		return TranscribeResult{}, err
	}

	if err := s.logs.Append(ctx, models.ConversationLog{
		UserID:          userID,
		FilePath:        path,
		TranscribedText: text,
	}); err != nil {
		return TranscribeResult{}, err
	}

	res.Applied = true
	res.Level = level
	res.Response = intent.BuildResponse(cmd)
	res.Action = intent.DescribeAction(cmd)
	return res, nil
}

// acquire marks the user as busy, or reports ErrBusy if a recording of
// theirs is already in the pipeline.
func (s *TranscribeService) acquire(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[userID]; busy {
		return ErrBusy
	}
	s.inflight[userID] = struct{}{}
	return nil
}

func (s *TranscribeService) release(userID string) {
	s.mu.Lock()
	delete(s.inflight, userID)
	s.mu.Unlock()
}

func (s *TranscribeService) save(userID, filename string, audio io.Reader) (string, error) {
	dir := filepath.Join(s.audioDir, userID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	name := uuid.NewString() + "_" + filepath.Base(filename)
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("store recording: %w", err)
	}
	if _, err := io.Copy(f, audio); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("store recording: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("store recording: %w", err)
	}
	return path, nil
}
