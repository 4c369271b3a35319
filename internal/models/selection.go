package models

import (
	"fmt"
	"strconv"
	"strings"
)

// SelectedOption is one submitted form pair. The view layer posts answers
// as {name: "question-<id>", value: "<optionId>"} batches; this is the
// only input contract it depends on.
type SelectedOption struct {
	Name  string `json:"name" binding:"required"`
	Value string `json:"value" binding:"required"`
}

const selectionNamePrefix = "question-"

// QuestionID parses the question id out of the pair's name.
func (s SelectedOption) QuestionID() (int, error) {
	raw, ok := strings.CutPrefix(s.Name, selectionNamePrefix)
	if !ok {
		return 0, fmt.Errorf("selection name %q is not of the form %sN", s.Name, selectionNamePrefix)
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("selection name %q carries a non-numeric question id", s.Name)
	}
	return id, nil
}

// OptionID parses the selected option id out of the pair's value.
func (s SelectedOption) OptionID() (int, error) {
	id, err := strconv.Atoi(s.Value)
	if err != nil {
		return 0, fmt.Errorf("selection value %q is not a numeric option id", s.Value)
	}
	return id, nil
}

// SelectionName formats the form name for a question id.
func SelectionName(questionID int) string {
	return selectionNamePrefix + strconv.Itoa(questionID)
}
