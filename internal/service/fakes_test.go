package service

import (
	"context"
	"errors"

	"voice_control_system/internal/models"
)

// In-memory repository fakes shared by the service tests.

type fakeAdminRepo struct {
	byUsername map[string]models.Admin
	createErr  error
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{byUsername: make(map[string]models.Admin)}
}

func (f *fakeAdminRepo) Create(_ context.Context, a models.Admin) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.byUsername[a.Username] = a
	return nil
}

func (f *fakeAdminRepo) GetByUsername(_ context.Context, username string) (*models.Admin, error) {
	a, ok := f.byUsername[username]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (f *fakeAdminRepo) GetByID(_ context.Context, adminID string) (*models.Admin, error) {
	for _, a := range f.byUsername {
		if a.AdminID == adminID {
			return &a, nil
		}
	}
	return nil, nil
}

type fakeProfileRepo struct {
	byID      map[string]models.Profile
	createErr error
	updateErr error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{byID: make(map[string]models.Profile)}
}

func (f *fakeProfileRepo) Create(_ context.Context, p models.Profile) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.byID[p.UserID] = p
	return nil
}

func (f *fakeProfileRepo) Update(_ context.Context, p models.Profile) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	stored, ok := f.byID[p.UserID]
	if !ok {
		return errors.New("no such profile")
	}
	if p.ImagePath == "" {
		p.ImagePath = stored.ImagePath
	}
	f.byID[p.UserID] = p
	return nil
}

func (f *fakeProfileRepo) GetByID(_ context.Context, userID string) (*models.Profile, error) {
	p, ok := f.byID[userID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakeProfileRepo) ListByAdmin(_ context.Context, adminID string) ([]models.Profile, error) {
	var out []models.Profile
	for _, p := range f.byID {
		if p.AdminID == adminID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProfileRepo) CountByAdmin(_ context.Context, adminID string) (int, error) {
	n := 0
	for _, p := range f.byID {
		if p.AdminID == adminID {
			n++
		}
	}
	return n, nil
}

type fakeConversationRepo struct {
	logs      []models.ConversationLog
	appendErr error
}

func (f *fakeConversationRepo) Append(_ context.Context, l models.ConversationLog) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.logs = append(f.logs, l)
	return nil
}

func (f *fakeConversationRepo) ListRecent(_ context.Context, userID string, limit int) ([]models.ConversationLog, error) {
	var out []models.ConversationLog
	for i := len(f.logs) - 1; i >= 0 && len(out) < limit; i-- {
		if f.logs[i].UserID == userID {
			out = append(out, f.logs[i])
		}
	}
	return out, nil
}

// fakeEngine returns a canned transcript.
type fakeEngine struct {
	text string
	err  error
}

func (f *fakeEngine) Transcribe(context.Context, []float32) (string, error) {
	return f.text, f.err
}

// fakeClassifier returns a canned command.
type fakeClassifier struct {
	cmd models.VoiceCommand
	err error
}

func (f *fakeClassifier) Classify(context.Context, string) (models.VoiceCommand, error) {
	return f.cmd, f.err
}

// blockingEngine parks in Transcribe until released, for concurrency
// tests.
type blockingEngine struct {
	started  chan struct{}
	release  chan struct{}
	response string
}

func (b *blockingEngine) Transcribe(ctx context.Context, _ []float32) (string, error) {
	close(b.started)
	select {
	case <-b.release:
		return b.response, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
