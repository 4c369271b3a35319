package narrative

import (
	"context"

	"leadquiz-service/internal/models"
)

// FailureMessage is shown when the narrative API call fails outright.
const FailureMessage = "Unable to generate AI response at this time."

// DefaultResponse is the deterministic substitute used when the API
// returns text that does not parse as a structured Response. The course
// name is carried through; the raw text, if any, stands in for the skill
// assessment.
func DefaultResponse(course models.Course, rawText string) *Response {
	currentSkills := rawText
	if currentSkills == "" {
		currentSkills = "We could not assess your skills in detail, but your recommended course is a great fit for your quiz results."
	}
	return &Response{
		Title:         "Your Learning Journey",
		CurrentSkills: currentSkills,
		CourseRecommendation: CourseRecommendation{
			Name: course.Name,
			Benefits: []string{
				"Personalized learning path",
				"Expert-led instruction",
				"Practical exercises",
			},
		},
		LearningOutcomes: []string{
			"Enhanced Power BI skills",
			"Practical application knowledge",
			"Professional development",
		},
		NextSteps: "Start your learning journey today!",
	}
}

// FallbackGenerator synthesizes narratives locally. Used when no provider
// is configured, so the quiz flow still resolves with the deterministic
// default content.
type FallbackGenerator struct{}

func NewFallbackGenerator() *FallbackGenerator {
	return &FallbackGenerator{}
}

func (g *FallbackGenerator) Generate(_ context.Context, _ Request) Result {
	return Result{Kind: KindUnstructured}
}

var _ Generator = (*FallbackGenerator)(nil)

// Message collapses the tagged result into what the presentation layer
// renders: the structured response, the deterministic default object for
// unparseable text, or the plain fallback string for an outright failure.
// All three kinds are handled explicitly.
func (r Result) Message(course models.Course) any {
	switch r.Kind {
	case KindStructured:
		return r.Structured
	case KindUnstructured:
		return DefaultResponse(course, r.Text)
	default:
		return FailureMessage
	}
}
