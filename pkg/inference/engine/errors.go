package engine

import "fmt"

// CompletionError is the single failure kind surfaced by engines. Transport,
// authentication, rate-limit, timeout and malformed-response errors are not
// distinguished; the caller treats them all the same and may retry manually.
type CompletionError struct {
	Err error
}

func NewCompletionError(err error) *CompletionError {
	return &CompletionError{Err: err}
}

func (e *CompletionError) Error() string {
	return fmt.Sprintf("completion failed: %v", e.Err)
}

func (e *CompletionError) Unwrap() error {
	return e.Err
}
