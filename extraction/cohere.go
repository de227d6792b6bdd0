package extraction

import (
	"context"
	"crypto/tls"
	"errors"
	"net/http"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"

	"notesbot/config"
)

// CohereProvider implements CompletionProvider using the Cohere Chat API
// Docs: https://docs.cohere.com/reference/chat
// SDK: github.com/cohere-ai/cohere-go/v2
type CohereProvider struct {
	client *cohereclient.Client
	model  string
}

// NewCohereProvider builds a provider around the Cohere SDK client.
func NewCohereProvider(apiKey, model string) *CohereProvider {
	// Create a custom HTTP client that forces HTTP/1.1 to avoid HTTP/2 protocol errors
	httpClient := &http.Client{
		Timeout: config.CompletionTimeout,
		Transport: &http.Transport{
			TLSNextProto:      make(map[string]func(authority string, c *tls.Conn) http.RoundTripper),
			ForceAttemptHTTP2: false,
		},
	}
	client := cohereclient.NewClient(
		cohereclient.WithToken(apiKey),
		cohereclient.WithHTTPClient(httpClient),
	)
	return &CohereProvider{client: client, model: model}
}

func (p *CohereProvider) ModelName() string { return p.model }

// Complete issues exactly one chat call and returns the assistant text.
func (p *CohereProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	model := p.model
	temperature := float64(config.Temperature)
	maxTokens := config.MaxCompletionTokens

	resp, err := p.client.Chat(ctx, &cohere.ChatRequest{
		Message:     req.Message,
		Model:       &model,
		Preamble:    &req.System,
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
		ResponseFormat: &cohere.ResponseFormat{
			Type:       "json_object",
			JsonObject: &cohere.JsonResponseFormat{},
		},
	})
	if err != nil {
		return "", wrapError(cohereKind(err), "cohere chat error", err)
	}
	if resp == nil {
		return "", newError(KindEmptyResponse, "cohere chat returned empty response")
	}
	return resp.Text, nil
}

// cohereKind maps typed SDK errors onto pipeline error kinds.
func cohereKind(err error) Kind {
	var unauthorized *cohere.UnauthorizedError
	var forbidden *cohere.ForbiddenError
	if errors.As(err, &unauthorized) || errors.As(err, &forbidden) {
		return KindAuth
	}

	var tooManyRequests *cohere.TooManyRequestsError
	if errors.As(err, &tooManyRequests) {
		return KindRateLimit
	}

	return KindProvider
}
