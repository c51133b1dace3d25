package service

import "strings"

// ValidationError reports the request fields that failed domain validation.
// It is deterministic for a given input and raised before any store access.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid fields: " + strings.Join(e.Fields, ", ")
}

// StoreError wraps a failure from the underlying store. The service performs
// no retries; the boundary decides how to surface it.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return "storage " + e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
