package models

// Input types supported by the question catalog.
const (
	InputTypeRadio    = "radio"
	InputTypeCheckbox = "checkbox"
)

type Option struct {
	ID    int    `json:"id"`
	Text  string `json:"text"`
	Score int    `json:"score"`
}

// DependsOn links a conditional question to the controlling question and
// the option ids that make it visible.
type DependsOn struct {
	QuestionID int   `json:"questionId"`
	OptionIDs  []int `json:"optionIds"`
}

type Question struct {
	ID          int        `json:"id"`
	Prompt      string     `json:"question"`
	InputType   string     `json:"inputType"`
	Options     []Option   `json:"options"`
	Conditional bool       `json:"conditional,omitempty"`
	DependsOn   *DependsOn `json:"dependsOn,omitempty"`
}

// Option returns the option with the given id, if present.
func (q *Question) Option(optionID int) (*Option, bool) {
	for i := range q.Options {
		if q.Options[i].ID == optionID {
			return &q.Options[i], true
		}
	}
	return nil, false
}

// MultiSelect reports whether the question accepts more than one option.
func (q *Question) MultiSelect() bool {
	return q.InputType == InputTypeCheckbox
}
