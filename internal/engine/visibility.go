package engine

import (
	"leadquiz-service/internal/catalog"
	"leadquiz-service/internal/models"
)

// VisibleQuestions returns the questions currently presented to the user,
// in catalog order. It is a pure function of the catalog and the answer
// store and is the single source of truth for what must be answered
// before a submission is valid.
func VisibleQuestions(cat *catalog.Catalog, answers *AnswerStore) []models.Question {
	visible := make([]models.Question, 0, cat.Len())
	for _, q := range cat.Questions() {
		if IsVisible(&q, answers) {
			visible = append(visible, q)
		}
	}
	return visible
}

// IsVisible reports whether a single question is currently shown. A
// conditional question is shown only when the first selected option of
// its controlling question is among the allowed option ids; controlling
// questions are assumed single-select, and later selections are never
// consulted.
func IsVisible(q *models.Question, answers *AnswerStore) bool {
	if !q.Conditional {
		return true
	}
	selected, ok := answers.First(q.DependsOn.QuestionID)
	if !ok {
		return false
	}
	for _, id := range q.DependsOn.OptionIDs {
		if id == selected {
			return true
		}
	}
	return false
}
