package extraction

import (
	"context"
	"os"

	"notesbot/config"
)

// CompletionRequest is the prompt payload for a single completion call.
type CompletionRequest struct {
	System  string
	Message string
}

// CompletionProvider abstracts one chat-completion exchange with an LLM
// API. Implementations return the assistant's raw text and map provider
// failures onto tagged error kinds.
type CompletionProvider interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	ModelName() string
}

// NewDefaultProvider returns a completion provider if configured via env.
// Cohere is preferred when COHERE_API_KEY is set; otherwise OpenAI via
// OPENAI_API_KEY. Returns nil when neither key is present.
func NewDefaultProvider(preferredModel string) CompletionProvider {
	if key := os.Getenv("COHERE_API_KEY"); key != "" {
		model := preferredModel
		if model == "" {
			model = config.DefaultCohereModel
		}
		return NewCohereProvider(key, model)
	}

	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		model := preferredModel
		if model == "" {
			model = config.DefaultOpenAIModel
		}
		return NewOpenAIProvider(key, model)
	}

	return nil
}
