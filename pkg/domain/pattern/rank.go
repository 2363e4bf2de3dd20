// pkg/domain/pattern/rank.go
package pattern

import (
	"cmp"
	"math/big"
	"slices"
)

// RankValue encodes the wildcard positions of p as a bitmask. The field at
// index i of an n-field pattern carries weight 2^(n-1-i), so a wildcard
// further left sets a higher bit. Literal fields contribute nothing.
//
// The value is only meaningful as a tiebreaker between patterns with the
// same wildcard count; a smaller value means the wildcards sit further
// right, which is the more specific pattern.
func RankValue(p Pattern) *big.Int {
	v := new(big.Int)
	n := len(p.fields)
	for i, f := range p.fields {
		if f == Wildcard {
			v.SetBit(v, n-1-i, 1)
		}
	}
	return v
}

// RankKey is the composite sort key of a pattern.
type RankKey struct {
	Wildcards int
	Value     *big.Int
}

// KeyOf computes the rank key of p.
func KeyOf(p Pattern) RankKey {
	return RankKey{
		Wildcards: p.WildcardCount(),
		Value:     RankValue(p),
	}
}

// Compare orders keys by wildcard count, then by rank value.
func (k RankKey) Compare(other RankKey) int {
	if c := cmp.Compare(k.Wildcards, other.Wildcards); c != 0 {
		return c
	}
	return k.Value.Cmp(other.Value)
}

// Rank returns patterns ordered from most to least specific. Fewer
// wildcards always come first; among equal wildcard counts the lower rank
// value wins. Field count is not part of the key. Equal keys keep their
// input order. The input slice is not modified.
func Rank(patterns []Pattern) []Pattern {
	type keyed struct {
		pattern Pattern
		key     RankKey
	}

	entries := make([]keyed, len(patterns))
	for i, p := range patterns {
		entries[i] = keyed{pattern: p, key: KeyOf(p)}
	}

	slices.SortStableFunc(entries, func(a, b keyed) int {
		return a.key.Compare(b.key)
	})

	ranked := make([]Pattern, len(entries))
	for i, e := range entries {
		ranked[i] = e.pattern
	}
	return ranked
}

// Ranked is a pattern list fixed in rank order. It is built once per batch
// and is safe to share read-only across any number of lookups.
type Ranked struct {
	patterns []Pattern
}

// NewRanked ranks patterns and freezes the result.
func NewRanked(patterns []Pattern) *Ranked {
	return &Ranked{patterns: Rank(patterns)}
}

// Patterns returns the ranked patterns.
func (r *Ranked) Patterns() []Pattern {
	return slices.Clone(r.patterns)
}

// Len returns the number of ranked patterns.
func (r *Ranked) Len() int {
	return len(r.patterns)
}
