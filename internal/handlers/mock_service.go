package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"voice_control_system/internal/lighting"
	"voice_control_system/internal/models"
	"voice_control_system/internal/service"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerID  string
	registerErr error
	loginAdmin  *models.Admin
	loginToken  string
	loginErr    error
	parseID     string
	parseErr    error
	account     *models.Admin
	accountErr  error

	lastRegister   service.RegisterParams
	lastLoginUser  string
	lastParseToken string
}

func (m *mockAuth) Register(_ context.Context, p service.RegisterParams) (string, error) {
	m.lastRegister = p
	return m.registerID, m.registerErr
}
func (m *mockAuth) Login(_ context.Context, username, _ string) (*models.Admin, string, error) {
	m.lastLoginUser = username
	return m.loginAdmin, m.loginToken, m.loginErr
}
func (m *mockAuth) ParseToken(token string) (string, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}
func (m *mockAuth) Account(context.Context, string) (*models.Admin, error) {
	return m.account, m.accountErr
}

type mockProfiles struct {
	list     []models.Profile
	listErr  error
	profile  *models.Profile
	getErr   error
	addErr   error
	editErr  error
	lastAdd  service.ProfileParams
	lastEdit service.ProfileParams
}

func (m *mockProfiles) List(context.Context, string) ([]models.Profile, error) {
	return m.list, m.listErr
}
func (m *mockProfiles) Get(context.Context, string) (*models.Profile, error) {
	return m.profile, m.getErr
}
func (m *mockProfiles) Add(_ context.Context, _ string, p service.ProfileParams) (*models.Profile, error) {
	m.lastAdd = p
	return m.profile, m.addErr
}
func (m *mockProfiles) Edit(_ context.Context, _ string, p service.ProfileParams) (*models.Profile, error) {
	m.lastEdit = p
	return m.profile, m.editErr
}

type mockHome struct {
	state     map[string]lighting.Level
	stateErr  error
	setErr    error
	applyLvl  lighting.Level
	applyErr  error
	lastRoom  string
	lastLevel int
}

func (m *mockHome) State(context.Context, string) (map[string]lighting.Level, error) {
	return m.state, m.stateErr
}
func (m *mockHome) SetLevel(_ context.Context, _ string, room string, level int) error {
	m.lastRoom = room
	m.lastLevel = level
	return m.setErr
}
func (m *mockHome) Apply(context.Context, string, models.VoiceCommand) (lighting.Level, error) {
	return m.applyLvl, m.applyErr
}

type mockConversations struct {
	logs []models.ConversationLog
	err  error
}

func (m *mockConversations) List(context.Context, string) ([]models.ConversationLog, error) {
	return m.logs, m.err
}

type mockTranscriber struct {
	res      service.TranscribeResult
	err      error
	lastFile string
}

func (m *mockTranscriber) Process(_ context.Context, _ string, filename string, audio io.Reader) (service.TranscribeResult, error) {
	m.lastFile = filename
	if audio != nil {
		_, _ = io.Copy(io.Discard, audio)
	}
	return m.res, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service, uploadsDir string) *gin.Engine {
	h := NewHandler(s, nil, uploadsDir)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

// Well-formed UUIDs for path parameters.
const (
	testAdminID = "11111111-1111-1111-1111-111111111111"
	testUserID  = "22222222-2222-2222-2222-222222222222"
)
