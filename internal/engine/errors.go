package engine

import "fmt"

// InvalidInputError indicates a request was malformed before any vector
// work began: no resumes, a missing job description in ranking mode, or
// duplicate/blank resume identifiers.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}

// PersistenceError indicates the analysis completed but its history
// record could not be appended. The computed result is still handed to
// the caller; this error travels alongside it so the caller can retry
// the append or warn that history was not saved.
type PersistenceError struct {
	Cause error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist analysis history: %v", e.Cause)
}

func (e *PersistenceError) Unwrap() error {
	return e.Cause
}
