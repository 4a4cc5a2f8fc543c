package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"voice_control_system/internal/models"
	"voice_control_system/internal/service"
)

func TestConversationLogsHandler(t *testing.T) {
	now := time.Now().UTC()
	logs := &mockConversations{logs: []models.ConversationLog{
		{UserID: testUserID, TranscribedText: "turn on the kitchen", CreatedAt: now},
		{UserID: testUserID, TranscribedText: "hall off", CreatedAt: now.Add(-time.Minute)},
	}}
	r := newTestRouter(&service.Service{Conversations: logs}, t.TempDir())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/conversation-logs/"+testUserID, nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}

	var got []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("rows = %d, want 2", len(got))
	}
	if got[0]["transcribed_text"] != "turn on the kitchen" {
		t.Errorf("first row = %v", got[0])
	}
	if got[0]["user_id"] != testUserID {
		t.Errorf("user_id = %v", got[0]["user_id"])
	}
	if _, leaked := got[0]["file_path"]; leaked {
		t.Error("file path leaked in log body")
	}
}

func TestConversationLogsHandlerEdges(t *testing.T) {
	r := newTestRouter(&service.Service{Conversations: &mockConversations{}}, t.TempDir())

	// empty history → 404
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/conversation-logs/"+testUserID, nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("empty history status=%d, want 404", w.Code)
	}

	// bad UUID → 400
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/conversation-logs/nope", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad uuid status=%d, want 400", w.Code)
	}
}
