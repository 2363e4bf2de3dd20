package http

import (
	"path"

	"github.com/damianoneill/bestmatch/pkg/domain/pattern"
)

// exclusionMatcher decides whether a request path is excluded from request
// logging, metrics or tracing. Exclusions use the batch matcher semantics:
// "*" stands for exactly one segment and arity must agree.
type exclusionMatcher struct {
	ranked *pattern.Ranked
}

func newMatcher(exclusions []string) *exclusionMatcher {
	patterns := make([]pattern.Pattern, 0, len(exclusions))
	for _, e := range exclusions {
		patterns = append(patterns, pattern.FromFields(splitRequestPath(e)...))
	}
	return &exclusionMatcher{ranked: pattern.NewRanked(patterns)}
}

// Matches reports whether reqPath is covered by any exclusion.
func (m *exclusionMatcher) Matches(reqPath string) bool {
	if m.ranked.Len() == 0 {
		return false
	}
	_, ok := m.ranked.BestMatch(pattern.ParsePath(path.Clean("/" + reqPath)))
	return ok
}

func splitRequestPath(p string) []string {
	return pattern.ParsePath(path.Clean("/" + p)).Fields()
}
