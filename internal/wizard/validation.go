// Package wizard implements the service booking and contact form flows as
// small state machines. They hold only transient form state and never
// perform I/O.
package wizard

import (
	"errors"
	"sort"
	"strings"
)

// ErrInvalidTransition is returned when an action is not allowed in the
// current step.
var ErrInvalidTransition = errors.New("invalid wizard transition")

// ValidationError lists the fields blocking a forward transition, keyed by
// field name.
type ValidationError struct {
	Fields map[string]string
}

func (e ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "validation failed: " + strings.Join(names, ", ")
}

// fieldErrors accumulates per-field messages.
type fieldErrors map[string]string

func (f fieldErrors) required(name, value string) {
	if strings.TrimSpace(value) == "" {
		f[name] = "is required"
	}
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return ValidationError{Fields: f}
}
