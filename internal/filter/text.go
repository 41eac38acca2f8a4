package filter

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// fold returns s in a form suitable for caseless comparison. Casers are
// stateful, so a chain is built per call.
func fold(s string) string {
	t := transform.Chain(norm.NFC, cases.Fold())
	out, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

// matcher tests texts against a folded search term.
type matcher struct {
	term string
}

func newMatcher(search string) matcher {
	return matcher{term: fold(search)}
}

// Match reports whether any of texts contains the term. An empty term
// matches everything.
func (m matcher) Match(texts ...string) bool {
	if m.term == "" {
		return true
	}
	for _, t := range texts {
		if strings.Contains(fold(t), m.term) {
			return true
		}
	}
	return false
}
