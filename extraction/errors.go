package extraction

// Kind discriminates pipeline failures so callers can classify them
// without inspecting error text.
type Kind string

const (
	// KindInvalidInput marks a request the caller can fix (bad notes payload)
	KindInvalidInput Kind = "invalid_input"

	// KindAuth marks an authentication or API-key problem at the provider
	KindAuth Kind = "auth"

	// KindRateLimit marks a provider rate-limit rejection
	KindRateLimit Kind = "rate_limit"

	// KindEmptyResponse marks a completion call that yielded no text content
	KindEmptyResponse Kind = "empty_response"

	// KindMalformedResponse marks model output that failed normalization
	KindMalformedResponse Kind = "malformed_response"

	// KindProvider marks any other provider or transport failure
	KindProvider Kind = "provider"
)

// Error is the tagged error returned by every pipeline stage.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func wrapError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}
