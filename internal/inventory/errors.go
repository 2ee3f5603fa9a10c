package inventory

import "fmt"

// Kind classifies a domain error for transport mapping.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindInvalidRequest
	KindValidation
	KindInternal
)

// Error is the error type returned by every operation in this package.
// Details carries per-field messages for validation failures.
type Error struct {
	Kind    Kind
	Message string
	Details map[string]string
	cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func InvalidRequest(message string) *Error {
	return &Error{Kind: KindInvalidRequest, Message: message}
}

func ValidationFailed(details map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: "validation failed", Details: details}
}

func internalError(err error) *Error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf("internal error: %v", err), cause: err}
}
