// Package narrative asks an OpenAI-compatible chat API to explain a quiz
// outcome, and supplies deterministic substitutes when the API fails or
// returns something that does not parse.
package narrative

import (
	"context"

	"leadquiz-service/internal/models"
)

// Request is the full payload the narrative boundary consumes: the
// numeric score, the recommended course, and the answer transcript.
type Request struct {
	Score   int           `json:"score"`
	Course  models.Course `json:"course"`
	Answers string        `json:"answers"`
}

// CourseRecommendation is the course section of a structured narrative.
type CourseRecommendation struct {
	Name     string   `json:"name"`
	Benefits []string `json:"benefits"`
}

// Response is the structured explanation shown to the user.
type Response struct {
	Title                     string               `json:"title"`
	CurrentSkills             string               `json:"currentSkills"`
	LadderPositionDescription string               `json:"ladderPositionDescription,omitempty"`
	CourseRecommendation      CourseRecommendation `json:"courseRecommendation"`
	LearningOutcomes          []string             `json:"learningOutcomes"`
	NextSteps                 string               `json:"nextSteps"`
}

// Kind tags the three shapes a narrative result can take. Consumers must
// handle all three; none is allowed to surface as a crash or a blank
// result.
type Kind string

const (
	// KindStructured carries a parsed Response.
	KindStructured Kind = "structured"
	// KindUnstructured carries raw text that failed to parse as a Response.
	KindUnstructured Kind = "unstructured"
	// KindFailed marks a transport or API failure; no text was produced.
	KindFailed Kind = "failed"
)

// Result is the tagged outcome of one narrative request.
type Result struct {
	Kind       Kind
	Structured *Response
	Text       string
	Reason     string
}

// Generator produces a narrative for a completed quiz. The call is issued
// at most once per completed flow and is never retried.
type Generator interface {
	Generate(ctx context.Context, req Request) Result
}
