package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"leadquiz-service/internal/models"
)

// Catalog is the static, ordered question list every session runs against.
// Loaded once at startup and never mutated afterwards.
type Catalog struct {
	questions []models.Question
	byID      map[int]*models.Question
}

// Questions returns the catalog in document order.
func (c *Catalog) Questions() []models.Question {
	return c.questions
}

// Question returns the question with the given id.
func (c *Catalog) Question(id int) (*models.Question, bool) {
	q, ok := c.byID[id]
	return q, ok
}

// Option resolves a (questionID, optionID) pair against the catalog.
func (c *Catalog) Option(questionID, optionID int) (*models.Option, bool) {
	q, ok := c.byID[questionID]
	if !ok {
		return nil, false
	}
	return q.Option(optionID)
}

// Len returns the number of questions in the catalog.
func (c *Catalog) Len() int {
	return len(c.questions)
}

// Load reads the catalog document from a local file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Fetch retrieves the catalog document over HTTP.
func Fetch(url string) (*Catalog, error) {
	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch catalog %s: unexpected status %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read catalog body: %w", err)
	}
	return Parse(data)
}

// Parse deserializes and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var questions []models.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("catalog has no questions")
	}

	c := &Catalog{
		questions: questions,
		byID:      make(map[int]*models.Question, len(questions)),
	}
	for i := range c.questions {
		q := &c.questions[i]
		if _, dup := c.byID[q.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate question id %d", q.ID)
		}
		c.byID[q.ID] = q
	}

	for i := range c.questions {
		if err := validateQuestion(c, &c.questions[i]); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func validateQuestion(c *Catalog, q *models.Question) error {
	if q.InputType != models.InputTypeRadio && q.InputType != models.InputTypeCheckbox {
		return fmt.Errorf("catalog: question %d has unknown input type %q", q.ID, q.InputType)
	}
	if len(q.Options) == 0 {
		return fmt.Errorf("catalog: question %d has no options", q.ID)
	}

	seen := make(map[int]bool, len(q.Options))
	for _, opt := range q.Options {
		if seen[opt.ID] {
			return fmt.Errorf("catalog: question %d has duplicate option id %d", q.ID, opt.ID)
		}
		seen[opt.ID] = true
		if opt.Score < 0 {
			return fmt.Errorf("catalog: question %d option %d has negative score", q.ID, opt.ID)
		}
	}

	if q.Conditional {
		if q.DependsOn == nil {
			return fmt.Errorf("catalog: conditional question %d has no dependsOn", q.ID)
		}
		controlling, ok := c.byID[q.DependsOn.QuestionID]
		if !ok {
			return fmt.Errorf("catalog: question %d depends on unknown question %d", q.ID, q.DependsOn.QuestionID)
		}
		if controlling.ID == q.ID {
			return fmt.Errorf("catalog: question %d depends on itself", q.ID)
		}
		if len(q.DependsOn.OptionIDs) == 0 {
			return fmt.Errorf("catalog: question %d dependsOn lists no option ids", q.ID)
		}
	}
	return nil
}
