package engine

import (
	"fmt"
	"strings"

	"leadquiz-service/internal/catalog"
	"leadquiz-service/internal/models"
)

// BuildTranscript serializes the answer history into the natural-language
// form the narrative service consumes. Each selected option produces one
// line naming the question, the chosen option, and the options not taken,
// in answer-store insertion order. Selections that cannot be resolved
// against the catalog, and answers to questions that are no longer
// visible, are omitted.
func BuildTranscript(cat *catalog.Catalog, answers *AnswerStore) string {
	var lines []string
	answers.Each(func(questionID int, optionIDs []int) {
		q, ok := cat.Question(questionID)
		if !ok || !IsVisible(q, answers) {
			return
		}
		for _, optionID := range optionIDs {
			selected, ok := q.Option(optionID)
			if !ok {
				continue
			}
			lines = append(lines, fmt.Sprintf(
				"For %q, they selected: %q. Other options are %s.",
				q.Prompt, selected.Text, otherOptionTexts(q, optionID),
			))
		}
	})
	return strings.Join(lines, "\n")
}

func otherOptionTexts(q *models.Question, selectedID int) string {
	texts := make([]string, 0, len(q.Options)-1)
	for _, opt := range q.Options {
		if opt.ID != selectedID {
			texts = append(texts, opt.Text)
		}
	}
	return strings.Join(texts, ", ")
}
