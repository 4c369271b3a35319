package models

// Course is one of the fixed recommendations the quiz can resolve to.
type Course struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
