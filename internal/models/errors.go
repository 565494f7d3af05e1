package models

import (
	"errors"
	"fmt"
	"strings"
)

// Custom errors
var (
	ErrInvalidOdds    = errors.New("invalid odds")
	ErrTooFewOutcomes = fmt.Errorf("%w: market needs at least two outcomes", ErrInvalidOdds)
)

// ValidationError reports every violated input constraint, not just the first.
type ValidationError struct {
	Violations []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid match input: %s", strings.Join(e.Violations, "; "))
}

// Add records a violated constraint.
func (e *ValidationError) Add(format string, args ...interface{}) {
	e.Violations = append(e.Violations, fmt.Sprintf(format, args...))
}

// HasViolations reports whether any constraint was violated.
func (e *ValidationError) HasViolations() bool {
	return len(e.Violations) > 0
}
