package service

import "fmt"

// ReadError reports a record store failure during a search attempt
type ReadError struct {
	Attempt string // "primary" or "fallback"
	Err     error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("search %s read failed: %v", e.Attempt, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
