package service

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"voice_control_system/internal/logger"
)

// RetentionService is the background loop that deletes stored voice
// recordings once they age out. Transcripts stay in the database; only
// the raw audio is pruned.
type RetentionService struct {
	audioDir string
	maxAge   time.Duration
}

func NewRetentionService(audioDir string, maxAge time.Duration) *RetentionService {
	return &RetentionService{audioDir: audioDir, maxAge: maxAge}
}

var _ Retention = (*RetentionService)(nil)

// Run sweeps the audio directory every tick until ctx is cancelled.
// A non-positive maxAge disables pruning.
func (s *RetentionService) Run(ctx context.Context, tick time.Duration) {
	if s.maxAge <= 0 {
		return
	}
	log := logger.Get(logger.InfoLevel)
	log.Infof("audio retention loop started: dir=%s maxAge=%s", s.audioDir, s.maxAge)

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("audio retention loop stopped")
			return
		case <-ticker.C:
			if n := s.sweep(); n > 0 {
				log.Infof("pruned %d expired recordings", n)
			}
		}
	}
}

// sweep removes recordings older than maxAge and returns how many were
// deleted. Walk errors are skipped; a missing directory just means no
// uploads yet.
func (s *RetentionService) sweep() int {
	cutoff := time.Now().Add(-s.maxAge)
	removed := 0
	filepath.WalkDir(s.audioDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		if info.ModTime().Before(cutoff) {
			if os.Remove(path) == nil {
				removed++
			}
		}
		return nil
	})
	return removed
}
