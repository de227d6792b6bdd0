package config

import "time"

// Notes Validation Constants
const (
	// MinNotesChars is the minimum trimmed length accepted for meeting notes
	MinNotesChars = 10

	// MaxNotesChars is the maximum raw length accepted for meeting notes
	MaxNotesChars = 50000
)

// Completion Call Constants
const (
	// Temperature biases the model toward consistent, low-randomness output
	Temperature = 0.2

	// MaxCompletionTokens caps the length of the model response
	MaxCompletionTokens = 2000

	// CompletionTimeout bounds a single outbound completion call
	CompletionTimeout = 60 * time.Second

	// DefaultCohereModel is used when COMPLETION_MODEL is not set
	DefaultCohereModel = "command-r-08-2024"

	// DefaultOpenAIModel is used when COMPLETION_MODEL is not set
	DefaultOpenAIModel = "gpt-4o-mini"

	// OpenAIEndpoint is the chat completions endpoint for the OpenAI provider
	OpenAIEndpoint = "https://api.openai.com/v1/chat/completions"
)

// HTTP Surface Constants
const (
	// MaxRequestBodyBytes caps incoming request bodies before handlers read them
	MaxRequestBodyBytes = 10 << 20 // 10MB
)
