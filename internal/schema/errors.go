package schema

import "fmt"

// InvalidInputError reports a malformed or missing required input structure.
// It is fatal and aborts the run before any output is produced. Field carries
// the path of the offending field.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid input: %s", e.Reason)
	}
	return fmt.Sprintf("invalid input at %s: %s", e.Field, e.Reason)
}

// UnmatchedReferenceError reports an internal contract violation: a fix or
// bug references an id that does not exist in its owning list. It should
// never occur in correct code and is asserted, not recovered.
type UnmatchedReferenceError struct {
	Kind string // "fix" or "bug"
	ID   string
}

func (e *UnmatchedReferenceError) Error() string {
	return fmt.Sprintf("unmatched reference: %s refers to unknown bug id %q", e.Kind, e.ID)
}
