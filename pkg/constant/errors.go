// Copyright 2026, the SpacemanDMM Authors.  All rights reserved.

package constant

import (
	"fmt"
)

// UnresolvedReferenceError is returned when an expression cannot be reduced to a Constant because an
// identifier, call, or other reference has no constant meaning.  Evaluation is all-or-nothing; there is no
// partial evaluation.
type UnresolvedReferenceError struct {
	// Kind says what sort of reference failed: "identifier", "call", "field", "method", "index",
	// "new", or "assignment".
	Kind string
	// Name is the identifier or operator that could not be resolved.
	Name string
}

func (err *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("unresolved %s reference '%s'", err.Kind, err.Name)
}

// IsUnresolvedReference reports whether an error is an UnresolvedReferenceError.
func IsUnresolvedReference(err error) bool {
	_, is := err.(*UnresolvedReferenceError)
	return is
}

func unresolved(kind, name string) error {
	return &UnresolvedReferenceError{Kind: kind, Name: name}
}
