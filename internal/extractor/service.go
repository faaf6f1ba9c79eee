package extractor

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"DharmaSearch/be/internal/llm"
	"github.com/sashabaranov/go-openai"
)

const (
	SYSTEM_PROMPT = `You are a meditation assistant. Extract 3-5 short search phrases from the user's question. Respond ONLY with a plain JSON array (e.g., ["impermanence", "letting go"]). Do NOT include Markdown formatting or any other explanation.`

	// maxPhrases caps a model that over-delivers; extra phrases are dropped,
	// not treated as a failure.
	maxPhrases = 10
)

// ServiceImpl implements the Service interface on top of an LLM provider.
type ServiceImpl struct {
	aiProvider llm.AIProvider
	model      string
}

// NewServiceImpl builds the extractor. model may be empty; the provider then
// falls back to its own default.
func NewServiceImpl(aiProvider llm.AIProvider, model string) *ServiceImpl {
	return &ServiceImpl{aiProvider: aiProvider, model: model}
}

func (s *ServiceImpl) Extract(ctx context.Context, question string) ([]string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, &ExtractionError{Kind: KindEmptyQuestion, Reason: "question is required"}
	}

	req := llm.CompletionRequest{
		Messages: []llm.Message{
			{Role: openai.ChatMessageRoleSystem, Content: SYSTEM_PROMPT},
			{Role: openai.ChatMessageRoleUser, Content: question},
		},
		Model: s.model,
	}

	msg, err := s.aiProvider.Complete(ctx, req)
	if err != nil {
		return nil, &ExtractionError{Kind: KindUpstream, Reason: "model call failed", Err: err}
	}

	raw := stripCodeFences(msg.Content)
	log.Printf("Cleaned model response: %s", raw)

	var phrases []string
	if err := json.Unmarshal([]byte(raw), &phrases); err != nil {
		return nil, &ExtractionError{Kind: KindMalformed, Reason: "response is not a JSON array of strings", Err: err}
	}

	cleaned := make([]string, 0, len(phrases))
	for _, p := range phrases {
		if p = strings.TrimSpace(p); p != "" {
			cleaned = append(cleaned, p)
		}
	}
	if len(cleaned) == 0 {
		return nil, &ExtractionError{Kind: KindNoPhrases, Reason: "no valid phrases extracted"}
	}
	if len(cleaned) > maxPhrases {
		cleaned = cleaned[:maxPhrases]
	}

	return cleaned, nil
}

// stripCodeFences removes Markdown code fences that models add despite being
// told not to. The prompt is not a contract; this is.
func stripCodeFences(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
	}
	raw = strings.TrimSuffix(strings.TrimSpace(raw), "```")
	return strings.TrimSpace(raw)
}
