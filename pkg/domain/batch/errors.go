// pkg/domain/batch/errors.go
package batch

import (
	"errors"
	"fmt"
)

// FormatError reports a count line that is not a non-negative integer.
type FormatError struct {
	Line   int    // 1-based line number
	Field  string // "pattern count" or "path count"
	Value  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: invalid %s %q: %s", e.Line, e.Field, e.Value, e.Reason)
}

// TruncatedInputError reports input that ends before a declared count is
// satisfied.
type TruncatedInputError struct {
	Field    string // what was being read when input ran out
	Expected int
	Got      int
}

func (e *TruncatedInputError) Error() string {
	return fmt.Sprintf("truncated input: expected %d %s, got %d", e.Expected, e.Field, e.Got)
}

// DuplicatePatternError reports a pattern declared more than once.
type DuplicatePatternError struct {
	Pattern string
	First   int // 0-based index of the first occurrence
	Second  int
}

func (e *DuplicatePatternError) Error() string {
	return fmt.Sprintf("duplicate pattern %q at positions %d and %d", e.Pattern, e.First+1, e.Second+1)
}

// LineTooLongError reports a line longer than the configured bound.
type LineTooLongError struct {
	Line  int
	Limit int
}

func (e *LineTooLongError) Error() string {
	return fmt.Sprintf("line %d exceeds %d bytes", e.Line, e.Limit)
}

// IsInputError reports whether err, or anything it wraps, describes
// malformed batch input rather than an I/O or internal failure.
func IsInputError(err error) bool {
	var (
		formatErr    *FormatError
		truncatedErr *TruncatedInputError
		duplicateErr *DuplicatePatternError
		tooLongErr   *LineTooLongError
		decodeErr    *DecodeError
	)
	return errors.As(err, &formatErr) ||
		errors.As(err, &truncatedErr) ||
		errors.As(err, &duplicateErr) ||
		errors.As(err, &tooLongErr) ||
		errors.As(err, &decodeErr)
}

// DecodeError wraps a syntax error from a structured decoder.
type DecodeError struct {
	Format Format
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s batch: %v", e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
