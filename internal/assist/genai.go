package assist

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModel is used when the deployment configures no model name.
const DefaultModel = "gemini-2.0-flash"

// GenAICompleter implements Completer over the Google GenAI API.
type GenAICompleter struct {
	client *genai.Client
	model  string
}

// NewGenAICompleter builds a completer for the given API key and model.
// An empty model falls back to DefaultModel.
func NewGenAICompleter(ctx context.Context, apiKey, model string) (*GenAICompleter, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("genai API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GenAICompleter{client: client, model: model}, nil
}

// Complete sends the user's text with the fixed system instruction and
// returns the raw model reply.
func (c *GenAICompleter) Complete(ctx context.Context, systemPrompt, userText string) (string, error) {
	result, err := c.client.Models.GenerateContent(ctx,
		c.model,
		genai.Text(userText),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
			Temperature:       genai.Ptr[float32](0.2),
		},
	)
	if err != nil {
		return "", fmt.Errorf("genai completion failed: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("genai returned an empty reply")
	}
	return text, nil
}
