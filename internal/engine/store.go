package engine

// AnswerStore maps question ids to the ordered set of selected option ids
// for one session. Insertion order of questions is preserved so transcript
// output is stable across runs.
//
// Entries are never deleted when an upstream answer change hides a
// question; visibility is re-resolved at read time instead.
type AnswerStore struct {
	selections map[int][]int
	order      []int
}

func NewAnswerStore() *AnswerStore {
	return &AnswerStore{selections: make(map[int][]int)}
}

// Select records a single-select answer, replacing any prior selection.
func (s *AnswerStore) Select(questionID, optionID int) {
	s.track(questionID)
	s.selections[questionID] = []int{optionID}
}

// Toggle adds the option to a multi-select answer, or removes it if it is
// already selected.
func (s *AnswerStore) Toggle(questionID, optionID int) {
	s.track(questionID)
	current := s.selections[questionID]
	for i, id := range current {
		if id == optionID {
			s.selections[questionID] = append(current[:i:i], current[i+1:]...)
			return
		}
	}
	s.selections[questionID] = append(current, optionID)
}

// Replace sets the full selection for a question, as submitted in one
// form batch. The selection is an ordered set: a duplicated option id
// collapses to its first occurrence, so a repeated form pair can never
// count an option twice.
func (s *AnswerStore) Replace(questionID int, optionIDs []int) {
	s.track(questionID)
	selection := make([]int, 0, len(optionIDs))
	for _, id := range optionIDs {
		dup := false
		for _, kept := range selection {
			if kept == id {
				dup = true
				break
			}
		}
		if !dup {
			selection = append(selection, id)
		}
	}
	s.selections[questionID] = selection
}

// Get returns the selected option ids for a question.
func (s *AnswerStore) Get(questionID int) []int {
	return s.selections[questionID]
}

// First returns the first selected option for a question. Conditional
// dependencies only ever consult this element.
func (s *AnswerStore) First(questionID int) (int, bool) {
	sel := s.selections[questionID]
	if len(sel) == 0 {
		return 0, false
	}
	return sel[0], true
}

// Answered reports whether the question has at least one selection.
func (s *AnswerStore) Answered(questionID int) bool {
	return len(s.selections[questionID]) > 0
}

// Each visits every answered question in insertion order.
func (s *AnswerStore) Each(fn func(questionID int, optionIDs []int)) {
	for _, id := range s.order {
		if sel := s.selections[id]; len(sel) > 0 {
			fn(id, sel)
		}
	}
}

// Len returns the number of questions with at least one selection.
func (s *AnswerStore) Len() int {
	n := 0
	for _, id := range s.order {
		if len(s.selections[id]) > 0 {
			n++
		}
	}
	return n
}

func (s *AnswerStore) track(questionID int) {
	if _, ok := s.selections[questionID]; !ok {
		s.order = append(s.order, questionID)
	}
}
