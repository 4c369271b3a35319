package engine

import (
	"leadquiz-service/internal/catalog"
)

// ComputeScore reduces the answer store to a single non-negative total by
// summing the score of every selected option. Answers to questions that
// are not currently visible are excluded: a stale entry left behind by a
// changed upstream answer never counts. Unknown question or option ids
// are skipped silently.
func ComputeScore(cat *catalog.Catalog, answers *AnswerStore) int {
	total := 0
	answers.Each(func(questionID int, optionIDs []int) {
		q, ok := cat.Question(questionID)
		if !ok || !IsVisible(q, answers) {
			return
		}
		for _, optionID := range optionIDs {
			if opt, ok := q.Option(optionID); ok {
				total += opt.Score
			}
		}
	})
	return total
}

// ValidationError marks one visible question that blocks submission.
type ValidationError struct {
	QuestionID int    `json:"question_id"`
	Reason     string `json:"reason"`
}

// ValidateSubmission checks that every currently-visible question is
// answered: multi-select questions need at least one selection,
// single-select exactly one. An empty result means the submission may
// proceed to scoring.
func ValidateSubmission(cat *catalog.Catalog, answers *AnswerStore) []ValidationError {
	var errs []ValidationError
	for _, q := range VisibleQuestions(cat, answers) {
		selected := answers.Get(q.ID)
		switch {
		case len(selected) == 0:
			errs = append(errs, ValidationError{QuestionID: q.ID, Reason: "an answer is required"})
		case !q.MultiSelect() && len(selected) > 1:
			errs = append(errs, ValidationError{QuestionID: q.ID, Reason: "only one answer is allowed"})
		}
	}
	return errs
}
