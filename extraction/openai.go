package extraction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"notesbot/config"
)

// OpenAIProvider implements CompletionProvider using the OpenAI Chat Completions API
// Docs: https://platform.openai.com/docs/api-reference/chat
// Endpoint: POST https://api.openai.com/v1/chat/completions
// Request: {"model": "...", "messages": [...], "response_format": {"type": "json_object"}}
// Response: {"choices": [{"message": {"role": "assistant", "content": "..."}}]}
type OpenAIProvider struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewOpenAIProvider builds a provider that talks to the OpenAI-compatible
// chat completions endpoint directly over HTTP.
func NewOpenAIProvider(apiKey, model string) *OpenAIProvider {
	return &OpenAIProvider{
		apiKey: apiKey,
		model:  model,
		client: &http.Client{Timeout: config.CompletionTimeout},
	}
}

func (o *OpenAIProvider) ModelName() string { return o.model }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatCompletionRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	Temperature    float64        `json:"temperature"`
	MaxTokens      int            `json:"max_tokens"`
	ResponseFormat responseFormat `json:"response_format"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete issues exactly one chat call and returns the assistant text.
func (o *OpenAIProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	endpoint := o.endpoint
	if endpoint == "" {
		endpoint = config.OpenAIEndpoint
	}

	payload := chatCompletionRequest{
		Model: o.model,
		Messages: []chatMessage{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.Message},
		},
		Temperature:    config.Temperature,
		MaxTokens:      config.MaxCompletionTokens,
		ResponseFormat: responseFormat{Type: "json_object"},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", wrapError(KindProvider, "marshal chat request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", wrapError(KindProvider, "create chat request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.client.Do(httpReq)
	if err != nil {
		return "", wrapError(KindProvider, "openai chat error", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// The response body may echo request details; only the status code
		// is carried into the error.
		return "", newError(openAIKind(resp.StatusCode),
			fmt.Sprintf("openai chat error: status %d", resp.StatusCode))
	}

	var parsed chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", wrapError(KindProvider, "decode chat response", err)
	}
	if len(parsed.Choices) == 0 {
		return "", newError(KindEmptyResponse, "openai chat returned no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}

// openAIKind maps HTTP status codes onto pipeline error kinds.
func openAIKind(status int) Kind {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return KindAuth
	case http.StatusTooManyRequests:
		return KindRateLimit
	default:
		return KindProvider
	}
}
