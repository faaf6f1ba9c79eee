package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/generative-ai-go/genai"
)

const defaultGeminiModel = "gemini-2.0-flash"

type GeminiProvider struct {
	client *genai.Client
}

func NewGeminiProvider(client *genai.Client) *GeminiProvider {
	return &GeminiProvider{client: client}
}

func (p *GeminiProvider) Complete(ctx context.Context, req CompletionRequest) (Message, error) {
	modelName := req.Model
	if modelName == "" {
		modelName = defaultGeminiModel
	}
	model := p.client.GenerativeModel(modelName)
	res, err := model.GenerateContent(ctx, p.extractParts(req.Messages)...)
	if err != nil {
		return Message{}, err
	}
	if len(res.Candidates) == 0 || res.Candidates[0].Content == nil || len(res.Candidates[0].Content.Parts) == 0 {
		return Message{}, errors.New("no candidates found")
	}

	return Message{
		Content: fmt.Sprintf("%v", res.Candidates[0].Content.Parts[0]),
	}, nil
}

// -----------------Private Helper Functions-----------------

// extractParts flattens the conversation into plain text parts; Gemini has no
// separate system role in this API surface.
func (p *GeminiProvider) extractParts(messages []Message) []genai.Part {
	var parts []genai.Part
	for _, msg := range messages {
		parts = append(parts, genai.Text(msg.Content))
	}
	return parts
}
