package extraction

import (
	"context"
	"strings"
	"time"
)

// Extractor runs the request-to-structured-result pipeline:
// validate -> build prompt -> one completion call -> normalize.
// All state is request-scoped; an Extractor is safe for concurrent use.
type Extractor struct {
	provider CompletionProvider

	// Now supplies the timestamp used for item ids. Tests pin it.
	Now func() time.Time
}

// NewExtractor constructs an extractor around a completion provider.
func NewExtractor(provider CompletionProvider) *Extractor {
	return &Extractor{
		provider: provider,
		Now:      time.Now,
	}
}

// Extract turns raw request input into a normalized extraction result.
// Exactly one provider call is issued per invocation; there are no
// retries. Every failure is a tagged *Error.
func (e *Extractor) Extract(ctx context.Context, raw any) (*ExtractionResult, error) {
	notes, err := ValidateNotes(raw)
	if err != nil {
		return nil, err
	}

	text, err := e.provider.Complete(ctx, BuildPrompt(notes))
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, newError(KindEmptyResponse, "completion returned no text content")
	}

	return Normalize(text, e.Now().UnixMilli())
}
