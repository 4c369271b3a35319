package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"leadquiz-service/internal/catalog"
	"leadquiz-service/internal/handlers"
	"leadquiz-service/internal/narrative"
	"leadquiz-service/internal/service"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []string
}

func (p *recordingPublisher) Publish(eventType string, _ any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, eventType)
	return nil
}

func (p *recordingPublisher) published() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.events...)
}

func newEventTestRouter(t *testing.T) (*gin.Engine, *recordingPublisher) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	doc := `[
		{"id": 1, "question": "Experience?", "inputType": "radio", "options": [
			{"id": 1, "text": "Some", "score": 50}
		]}
	]`
	cat, err := catalog.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("failed to parse catalog: %v", err)
	}

	svc := service.NewSessionService(cat, narrative.NewFallbackGenerator())
	pub := &recordingPublisher{}
	r := gin.New()
	setupSessionRoutes(r, handlers.NewSessionHandler(svc), pub)
	return r, pub
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestEventsFollowHandlerOutcome(t *testing.T) {
	r, pub := newEventTestRouter(t)

	w := postJSON(t, r, "/public/quiz/session/", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("create session returned %d: %s", w.Code, w.Body.String())
	}
	var created struct {
		SessionID string `json:"session_id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("bad create response: %v", err)
	}

	w = postJSON(t, r, "/public/quiz/session/"+created.SessionID+"/answers",
		`{"selections": [{"name": "question-1", "value": "1"}]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("answers returned %d: %s", w.Code, w.Body.String())
	}

	events := pub.published()
	if len(events) != 2 || events[0] != "quiz.session.created" || events[1] != "quiz.answers.submitted" {
		t.Errorf("unexpected events for the successful flow: %v", events)
	}
}

func TestEventsSuppressedOnFailedRequests(t *testing.T) {
	r, pub := newEventTestRouter(t)

	w := postJSON(t, r, "/public/quiz/session/", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("create session returned %d: %s", w.Code, w.Body.String())
	}
	var created struct {
		SessionID string `json:"session_id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("bad create response: %v", err)
	}

	// Malformed answer batch, unknown-session restart, premature submit:
	// every one fails, and none may emit an event.
	if w = postJSON(t, r, "/public/quiz/session/"+created.SessionID+"/answers", `{`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a malformed batch, got %d", w.Code)
	}
	if w = postJSON(t, r, "/public/quiz/session/missing/restart", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for an unknown session, got %d", w.Code)
	}
	if w = postJSON(t, r, "/public/quiz/session/"+created.SessionID+"/submit", ""); w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for a submit without contact, got %d", w.Code)
	}

	events := pub.published()
	if len(events) != 1 || events[0] != "quiz.session.created" {
		t.Errorf("failed requests leaked events: %v", events)
	}
}
