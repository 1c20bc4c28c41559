package errors

import "fmt"

// HTTPError is an error that carries the HTTP status it should be rendered with.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError with the given status and message.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{StatusCode: status, Message: message}
}

// NewHTTPErrorf is NewHTTPError with a format string.
func NewHTTPErrorf(status int, format string, args ...any) *HTTPError {
	return &HTTPError{StatusCode: status, Message: fmt.Sprintf(format, args...)}
}
