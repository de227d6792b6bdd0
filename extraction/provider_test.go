package extraction

import (
	"testing"

	"notesbot/config"
)

func TestNewDefaultProviderSelection(t *testing.T) {
	t.Run("no keys", func(t *testing.T) {
		t.Setenv("COHERE_API_KEY", "")
		t.Setenv("OPENAI_API_KEY", "")
		if p := NewDefaultProvider(""); p != nil {
			t.Fatalf("got provider %T without any API key", p)
		}
	})

	t.Run("cohere preferred", func(t *testing.T) {
		t.Setenv("COHERE_API_KEY", "co-key")
		t.Setenv("OPENAI_API_KEY", "oa-key")
		p := NewDefaultProvider("")
		if _, ok := p.(*CohereProvider); !ok {
			t.Fatalf("got %T; want *CohereProvider", p)
		}
		if p.ModelName() != config.DefaultCohereModel {
			t.Fatalf("model = %q; want default %q", p.ModelName(), config.DefaultCohereModel)
		}
	})

	t.Run("openai fallback", func(t *testing.T) {
		t.Setenv("COHERE_API_KEY", "")
		t.Setenv("OPENAI_API_KEY", "oa-key")
		p := NewDefaultProvider("")
		if _, ok := p.(*OpenAIProvider); !ok {
			t.Fatalf("got %T; want *OpenAIProvider", p)
		}
		if p.ModelName() != config.DefaultOpenAIModel {
			t.Fatalf("model = %q; want default %q", p.ModelName(), config.DefaultOpenAIModel)
		}
	})

	t.Run("model override", func(t *testing.T) {
		t.Setenv("COHERE_API_KEY", "co-key")
		p := NewDefaultProvider("command-r-plus-08-2024")
		if p.ModelName() != "command-r-plus-08-2024" {
			t.Fatalf("model = %q; want override", p.ModelName())
		}
	})
}
