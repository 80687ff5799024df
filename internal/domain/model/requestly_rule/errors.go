package model

import (
	"fmt"
	"strings"
)

// Violation is one field-level validation failure.
type Violation struct {
	Path     string `json:"path"`
	Expected string `json:"expected"`
	Received string `json:"received"`
	Message  string `json:"message"`
}

func (v Violation) String() string {
	msg := v.Message
	if msg == "" {
		msg = "invalid value"
	}
	return fmt.Sprintf("%s: %s (expected %s, received %s)", v.Path, msg, v.Expected, v.Received)
}

// StructuralValidationError reports every constraint the arguments violated.
type StructuralValidationError struct {
	Violations []Violation
}

func (e *StructuralValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.String())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// HasPath reports whether any violation points at path.
func (e *StructuralValidationError) HasPath(path string) bool {
	for _, v := range e.Violations {
		if v.Path == path {
			return true
		}
	}
	return false
}
