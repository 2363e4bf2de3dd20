// pkg/domain/pattern/match.go
package pattern

// Matches reports whether path structurally matches p. Field counts must
// be equal; wildcard fields absorb any value, including the empty string,
// and literal fields must be byte-for-byte equal.
func (p Pattern) Matches(path Path) bool {
	if len(path.fields) != len(p.fields) {
		return false
	}
	for i, f := range p.fields {
		if f == Wildcard {
			continue
		}
		if path.fields[i] != f {
			return false
		}
	}
	return true
}

// Result is the outcome of matching one path. Pattern is only meaningful
// when Matched is true.
type Result struct {
	Path    Path
	Pattern Pattern
	Matched bool
}

// BestMatch returns the first pattern in rank order that matches path.
func (r *Ranked) BestMatch(path Path) (Pattern, bool) {
	for _, p := range r.patterns {
		if p.Matches(path) {
			return p, true
		}
	}
	return Pattern{}, false
}

// Match wraps BestMatch into a Result.
func (r *Ranked) Match(path Path) Result {
	p, ok := r.BestMatch(path)
	return Result{Path: path, Pattern: p, Matched: ok}
}

// MatchAll matches every path independently and returns one result per
// path in input order.
func (r *Ranked) MatchAll(paths []Path) []Result {
	results := make([]Result, len(paths))
	for i, path := range paths {
		results[i] = r.Match(path)
	}
	return results
}
