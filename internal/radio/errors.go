package radio

import "fmt"

// Kind classifies API failures.
type Kind int

const (
	// KindBusiness is a server-reported failure inside a successful HTTP
	// exchange: the envelope carried status "error" and a message.
	KindBusiness Kind = iota
	// KindTransport means the request never completed (connection refused,
	// timeout, DNS failure).
	KindTransport
	// KindProtocol means the response body could not be decoded as the
	// expected envelope.
	KindProtocol
)

// Error is the failure type returned by all Client operations.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindBusiness:
		return fmt.Sprintf("api error: %s", e.Message)
	case KindTransport:
		return fmt.Sprintf("request failed: %v", e.cause)
	default:
		return fmt.Sprintf("malformed response: %v", e.cause)
	}
}

func (e *Error) Unwrap() error { return e.cause }

// UserMessage returns the text to surface to the operator. Business errors
// carry the server's own message; everything else falls back to a generic
// string.
func (e *Error) UserMessage() string {
	if e.Kind == KindBusiness && e.Message != "" {
		return e.Message
	}
	return "operation failed"
}

func businessError(message string) *Error {
	return &Error{Kind: KindBusiness, Message: message}
}

func transportError(cause error) *Error {
	return &Error{Kind: KindTransport, cause: cause}
}

func protocolError(cause error) *Error {
	return &Error{Kind: KindProtocol, cause: cause}
}
