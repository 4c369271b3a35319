package narrative

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	openai "github.com/sashabaranov/go-openai"
)

const systemPrompt = `You are a Power BI expert. The following courses are available:
- Power BI Essentials
- Power BI Report Design
- Power BI Advanced
- Power BI DAX Essentials
- Power BI Service

Create a structured response in the following JSON format:
{
  "title": "Your Learning Journey",
  "currentSkills": "Brief assessment of their skill level based on score",
  "courseRecommendation": {
    "name": "Course name (must be one of the available courses)",
    "benefits": ["benefit1", "benefit2", "benefit3"]
  },
  "learningOutcomes": ["outcome1", "outcome2", "outcome3"],
  "nextSteps": "Call to action message"
}

Base this on their quiz score and recommended course. Ensure the recommended course is from the available courses list.`

// OpenAIGenerator produces narratives through an OpenAI-compatible chat
// completions API.
type OpenAIGenerator struct {
	client *openai.Client
	model  string
}

// OpenAIConfig holds the connection settings for the narrative provider.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// NewOpenAIGenerator creates a generator. BaseURL may point at any
// OpenAI-compatible endpoint.
func NewOpenAIGenerator(cfg OpenAIConfig) (*OpenAIGenerator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("narrative API key is required")
	}
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}
	model := cfg.Model
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIGenerator{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}, nil
}

// Generate issues one chat completion and tags the outcome. Transport and
// API errors become a failed result; a response that does not parse as
// the structured shape becomes an unstructured result carrying the raw
// text. No retry is attempted.
func (g *OpenAIGenerator) Generate(ctx context.Context, req Request) Result {
	chatReq := openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: userMessage(req),
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	resp, err := g.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		log.Printf("narrative request failed: %v", err)
		return Result{Kind: KindFailed, Reason: err.Error()}
	}
	if len(resp.Choices) == 0 {
		return Result{Kind: KindFailed, Reason: "no choices in completion response"}
	}

	content := resp.Choices[0].Message.Content
	var structured Response
	if err := json.Unmarshal([]byte(content), &structured); err != nil || structured.Title == "" {
		return Result{Kind: KindUnstructured, Text: content}
	}
	return Result{Kind: KindStructured, Structured: &structured}
}

func userMessage(req Request) string {
	return fmt.Sprintf(
		"The user scored %d points and is recommended the %s course. "+
			"Provide a personalized response that explains why the recommended course would be beneficial.\n\n"+
			"Their answers were:\n%s",
		req.Score, req.Course.Name, req.Answers,
	)
}

var _ Generator = (*OpenAIGenerator)(nil)
