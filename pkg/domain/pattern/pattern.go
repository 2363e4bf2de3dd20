// pkg/domain/pattern/pattern.go

// Package pattern implements whole-field wildcard patterns, their
// specificity ranking and best-match selection against slash-delimited
// paths.
//
// A pattern such as "a,*,c" has three fields. The field "*" is a wildcard
// and matches any single path field; every other field, including "" and
// tokens like "a*", is a literal. A pattern only ever matches a path with
// exactly the same number of fields.
package pattern

import (
	"slices"
	"strings"
)

const (
	// Wildcard is the only field value that matches any path field.
	Wildcard = "*"

	// FieldSeparator splits a pattern into fields.
	FieldSeparator = ","

	// PathSeparator splits a path into fields.
	PathSeparator = "/"
)

// Pattern is an immutable ordered sequence of fields.
type Pattern struct {
	fields []string
}

// Parse splits raw on FieldSeparator. It never fails: every string is a
// valid pattern, the empty string being a single empty literal field.
func Parse(raw string) Pattern {
	return Pattern{fields: strings.Split(raw, FieldSeparator)}
}

// ParseAll parses every raw pattern, preserving order.
func ParseAll(raw []string) []Pattern {
	patterns := make([]Pattern, len(raw))
	for i, r := range raw {
		patterns[i] = Parse(r)
	}
	return patterns
}

// FromFields builds a pattern from already split fields.
func FromFields(fields ...string) Pattern {
	return Pattern{fields: slices.Clone(fields)}
}

// Fields returns a copy of the pattern fields.
func (p Pattern) Fields() []string {
	return slices.Clone(p.fields)
}

// Len returns the field count.
func (p Pattern) Len() int {
	return len(p.fields)
}

// IsWildcard reports whether field i is a wildcard.
func (p Pattern) IsWildcard(i int) bool {
	return p.fields[i] == Wildcard
}

// WildcardCount returns the number of wildcard fields.
func (p Pattern) WildcardCount() int {
	n := 0
	for _, f := range p.fields {
		if f == Wildcard {
			n++
		}
	}
	return n
}

// String rejoins the fields with FieldSeparator. For a parsed pattern this
// is exactly the raw input.
func (p Pattern) String() string {
	return strings.Join(p.fields, FieldSeparator)
}

// Path is an immutable ordered sequence of path fields.
type Path struct {
	raw    string
	fields []string
}

// ParsePath strips every leading and trailing PathSeparator from raw and
// splits the remainder. "/a/b/" and "a/b" yield the same fields; "" and "/"
// both yield a single empty field.
func ParsePath(raw string) Path {
	trimmed := strings.Trim(raw, PathSeparator)
	return Path{
		raw:    raw,
		fields: strings.Split(trimmed, PathSeparator),
	}
}

// ParsePaths parses every raw path, preserving order.
func ParsePaths(raw []string) []Path {
	paths := make([]Path, len(raw))
	for i, r := range raw {
		paths[i] = ParsePath(r)
	}
	return paths
}

// Fields returns a copy of the path fields.
func (p Path) Fields() []string {
	return slices.Clone(p.fields)
}

// Len returns the field count.
func (p Path) Len() int {
	return len(p.fields)
}

// String returns the path exactly as it was given to ParsePath.
func (p Path) String() string {
	return p.raw
}
