// Package parsing validates and normalizes externally produced JSON blobs
// into the closed data model.
package parsing

import "fmt"

// ValidationError reports schema validation failures at the intake boundary.
type ValidationError struct {
	Artifact string
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s failed schema validation: %d problem(s), first: %s",
		e.Artifact, len(e.Problems), e.Problems[0])
}

// DecodeError reports a malformed JSON payload.
type DecodeError struct {
	Artifact string
	Cause    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.Artifact, e.Cause)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}
