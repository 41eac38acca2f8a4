// Package theme carries the visitor's light/dark preference. It is resolved
// once per request at the root and read, never written, downstream.
package theme

import (
	"context"
	"fmt"
	"strings"
)

// HeaderName is the request header that overrides the default theme.
const HeaderName = "X-Theme"

// Preference is a presentation theme.
type Preference string

const (
	Light Preference = "light"
	Dark  Preference = "dark"
)

// Parse accepts "light" or "dark" in any case.
func Parse(raw string) (Preference, error) {
	switch Preference(strings.ToLower(strings.TrimSpace(raw))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	default:
		return "", fmt.Errorf("unknown theme %q", raw)
	}
}

// Resolve returns the header preference when it parses, else fallback.
func Resolve(header string, fallback Preference) Preference {
	if p, err := Parse(header); err == nil {
		return p
	}
	return fallback
}

// IsDark reports whether p is the dark theme.
func (p Preference) IsDark() bool {
	return p == Dark
}

type ctxKey struct{}

// WithPreference returns a context carrying p.
func WithPreference(ctx context.Context, p Preference) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// FromContext returns the preference in ctx, Light when absent.
func FromContext(ctx context.Context) Preference {
	if p, ok := ctx.Value(ctxKey{}).(Preference); ok {
		return p
	}
	return Light
}
