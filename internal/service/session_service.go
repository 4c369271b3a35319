package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"leadquiz-service/internal/catalog"
	"leadquiz-service/internal/engine"
	"leadquiz-service/internal/models"
	"leadquiz-service/internal/narrative"
)

// Status is the session state machine position.
type Status string

const (
	// StatusAnswering accepts answer submissions; the only state in
	// which visibility is re-resolved.
	StatusAnswering Status = "answering"
	// StatusAwaitingContact is entered once, when answers are complete
	// but no contact email has been supplied yet.
	StatusAwaitingContact Status = "awaiting_contact"
	// StatusSubmitting is transient while the narrative request is
	// outstanding. It is exclusive: a second submission is rejected.
	StatusSubmitting Status = "submitting"
	// StatusResolved is terminal until an explicit restart.
	StatusResolved Status = "resolved"
)

var (
	ErrSessionNotFound      = errors.New("session not found")
	ErrSubmissionInProgress = errors.New("submission already in progress")
	ErrContactRequired      = errors.New("contact email is required before submission")
	ErrSessionResolved      = errors.New("session is already resolved")
	ErrNotResolved          = errors.New("session has no result yet")
)

// Session holds all mutable state for one quiz run. Score and
// recommendation are retained even when narrative generation fails.
type Session struct {
	ID             string
	Status         Status
	Answers        *engine.AnswerStore
	Score          int
	ContactEmail   string
	Recommendation *models.Course
	Narrative      *narrative.Result
	CreatedAt      time.Time
	UpdatedAt      time.Time

	mu sync.Mutex
}

// StepResult reports the outcome of one answer-step submission.
type StepResult struct {
	Status      Status                   `json:"status"`
	Errors      []engine.ValidationError `json:"errors,omitempty"`
	NeedContact bool                     `json:"need_contact"`
}

// Outcome is the finalized result of a completed session.
type Outcome struct {
	Score   int           `json:"score"`
	Course  models.Course `json:"course"`
	Message any           `json:"message"`
}

// SessionService owns the in-memory session registry and orchestrates the
// quiz flow against the catalog, the engine, and the narrative generator.
type SessionService struct {
	catalog   *catalog.Catalog
	generator narrative.Generator

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionService(cat *catalog.Catalog, gen narrative.Generator) *SessionService {
	return &SessionService{
		catalog:   cat,
		generator: gen,
		sessions:  make(map[string]*Session),
	}
}

// CreateSession starts a new empty session.
func (s *SessionService) CreateSession() *Session {
	now := time.Now()
	session := &Session{
		ID:        uuid.NewString(),
		Status:    StatusAnswering,
		Answers:   engine.NewAnswerStore(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()
	return session
}

// GetSession looks up a session by id.
func (s *SessionService) GetSession(id string) (*Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// VisibleQuestions resolves the currently-presented question list for a
// session.
func (s *SessionService) VisibleQuestions(id string) ([]models.Question, error) {
	session, err := s.GetSession(id)
	if err != nil {
		return nil, err
	}
	session.mu.Lock()
	defer session.mu.Unlock()
	return engine.VisibleQuestions(s.catalog, session.Answers), nil
}

// SubmitAnswers applies one batch of form selections and validates the
// resulting state. Validation failure is reported as per-question values
// in the result, never as an error; the session stays in answering.
func (s *SessionService) SubmitAnswers(id string, selections []models.SelectedOption) (*StepResult, error) {
	session, err := s.GetSession(id)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	switch session.Status {
	case StatusSubmitting:
		return nil, ErrSubmissionInProgress
	case StatusResolved:
		return nil, ErrSessionResolved
	}

	s.applySelections(session.Answers, selections)
	session.UpdatedAt = time.Now()

	if errs := engine.ValidateSubmission(s.catalog, session.Answers); len(errs) > 0 {
		session.Status = StatusAnswering
		return &StepResult{Status: session.Status, Errors: errs}, nil
	}

	session.Score = engine.ComputeScore(s.catalog, session.Answers)

	if session.ContactEmail == "" {
		session.Status = StatusAwaitingContact
		return &StepResult{Status: session.Status, NeedContact: true}, nil
	}
	return &StepResult{Status: session.Status}, nil
}

// applySelections groups the submitted pairs by question and replaces
// each question's selection. Questions are applied in catalog order so
// that a controlling answer in the batch takes effect before the
// conditional question it reveals; selections for questions that are
// still invisible, and pairs that do not resolve against the catalog,
// are skipped silently.
func (s *SessionService) applySelections(answers *engine.AnswerStore, selections []models.SelectedOption) {
	byQuestion := make(map[int][]int)
	for _, sel := range selections {
		questionID, err := sel.QuestionID()
		if err != nil {
			continue
		}
		optionID, err := sel.OptionID()
		if err != nil {
			continue
		}
		byQuestion[questionID] = append(byQuestion[questionID], optionID)
	}

	for _, q := range s.catalog.Questions() {
		optionIDs, ok := byQuestion[q.ID]
		if !ok || !engine.IsVisible(&q, answers) {
			continue
		}
		if !q.MultiSelect() && len(optionIDs) > 1 {
			optionIDs = optionIDs[:1]
		}
		answers.Replace(q.ID, optionIDs)
	}
}

// SetContact records the lead's email address. Email format is validated
// at the transport boundary.
func (s *SessionService) SetContact(id, email string) error {
	session, err := s.GetSession(id)
	if err != nil {
		return err
	}
	session.mu.Lock()
	defer session.mu.Unlock()

	switch session.Status {
	case StatusSubmitting:
		return ErrSubmissionInProgress
	case StatusResolved:
		return ErrSessionResolved
	}
	session.ContactEmail = email
	session.UpdatedAt = time.Now()
	return nil
}

// Finalize computes the score and recommendation, requests the narrative,
// and resolves the session. Entered at most once per completed flow: a
// concurrent call while the narrative request is outstanding is rejected,
// and a call on a resolved session returns the retained outcome.
//
// Narrative failure never loses the score or recommendation; the tagged
// result's fallback stands in for the explanation.
func (s *SessionService) Finalize(ctx context.Context, id string) (*Outcome, []engine.ValidationError, error) {
	session, err := s.GetSession(id)
	if err != nil {
		return nil, nil, err
	}

	session.mu.Lock()
	switch session.Status {
	case StatusSubmitting:
		session.mu.Unlock()
		return nil, nil, ErrSubmissionInProgress
	case StatusResolved:
		outcome := outcomeLocked(session)
		session.mu.Unlock()
		return outcome, nil, nil
	}

	if session.ContactEmail == "" {
		session.mu.Unlock()
		return nil, nil, ErrContactRequired
	}
	if errs := engine.ValidateSubmission(s.catalog, session.Answers); len(errs) > 0 {
		session.mu.Unlock()
		return nil, errs, nil
	}

	session.Status = StatusSubmitting
	session.Score = engine.ComputeScore(s.catalog, session.Answers)
	course := engine.Recommend(session.Score)
	session.Recommendation = &course
	req := narrative.Request{
		Score:   session.Score,
		Course:  course,
		Answers: engine.BuildTranscript(s.catalog, session.Answers),
	}
	session.mu.Unlock()

	// The one point of suspension: non-cancelable once issued, no retry.
	result := s.generator.Generate(ctx, req)

	session.mu.Lock()
	session.Narrative = &result
	session.Status = StatusResolved
	session.UpdatedAt = time.Now()
	outcome := outcomeLocked(session)
	session.mu.Unlock()

	return outcome, nil, nil
}

// Outcome returns the retained result of a resolved session.
func (s *SessionService) Outcome(id string) (*Outcome, error) {
	session, err := s.GetSession(id)
	if err != nil {
		return nil, err
	}
	session.mu.Lock()
	defer session.mu.Unlock()
	if session.Status != StatusResolved {
		return nil, ErrNotResolved
	}
	return outcomeLocked(session), nil
}

func outcomeLocked(session *Session) *Outcome {
	course := *session.Recommendation
	return &Outcome{
		Score:   session.Score,
		Course:  course,
		Message: session.Narrative.Message(course),
	}
}

// Restart clears all session state and returns to the first answering
// step.
func (s *SessionService) Restart(id string) error {
	session, err := s.GetSession(id)
	if err != nil {
		return err
	}
	session.mu.Lock()
	defer session.mu.Unlock()

	if session.Status == StatusSubmitting {
		return ErrSubmissionInProgress
	}
	session.Status = StatusAnswering
	session.Answers = engine.NewAnswerStore()
	session.Score = 0
	session.ContactEmail = ""
	session.Recommendation = nil
	session.Narrative = nil
	session.UpdatedAt = time.Now()
	return nil
}
