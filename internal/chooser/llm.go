package chooser

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/videochess/videochess-backend/internal/model"
)

// LLM asks an OpenAI-compatible chat-completion endpoint for a move. The
// model is expected to answer with a JSON object holding "action" and
// "reasoning"; anything else is surfaced as an error and handled by the
// game's fallback policy.
type LLM struct {
	client *openai.Client
	model  string
}

func NewLLM(baseURL, apiKey, modelName string) *LLM {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &LLM{
		client: openai.NewClientWithConfig(config),
		model:  modelName,
	}
}

func (l *LLM) Choose(ctx context.Context, snap model.Snapshot) (Decision, error) {
	resp, err := l.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: l.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: BuildPrompt(snap),
			},
		},
	})
	if err != nil {
		return Decision{}, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Decision{}, fmt.Errorf("chat completion returned no choices")
	}
	return ParseDecision(resp.Choices[0].Message.Content)
}

// ParseDecision extracts the JSON decision from raw model output, tolerating
// the markdown code fences models like to wrap JSON in.
func ParseDecision(content string) (Decision, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var d Decision
	if err := json.Unmarshal([]byte(content), &d); err != nil {
		return Decision{}, fmt.Errorf("parse decision %q: %w", content, err)
	}
	if d.Action == "" {
		return Decision{}, fmt.Errorf("decision %q has no action", content)
	}
	return d, nil
}
