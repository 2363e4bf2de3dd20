// pkg/adapter/textio/text.go
package textio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/damianoneill/bestmatch/pkg/domain/batch"
)

// TextDecoder reads the count/lines layout:
//
//	<patternCount>
//	<pattern>...
//	<pathCount>
//	<path>...
//
// The whole stream is read before any parsing. Lines after the declared
// paths are ignored.
type TextDecoder struct {
	maxLineBytes int
}

// MaxLineBytesLimit caps the configurable line bound.
const MaxLineBytesLimit = 1 << 30

func NewTextDecoder(maxLineBytes int) *TextDecoder {
	if maxLineBytes <= 0 {
		maxLineBytes = batch.DefaultMaxLineBytes
	}
	maxLineBytes = min(maxLineBytes, MaxLineBytesLimit)
	return &TextDecoder{maxLineBytes: maxLineBytes}
}

// Decode implements batch.Decoder.
func (d *TextDecoder) Decode(r io.Reader) (batch.Batch, error) {
	lines, err := d.readLines(r)
	if err != nil {
		return batch.Batch{}, err
	}

	c := cursor{lines: lines}

	patternCount, err := c.count("pattern count")
	if err != nil {
		return batch.Batch{}, err
	}
	patterns, err := c.take(patternCount, "patterns")
	if err != nil {
		return batch.Batch{}, err
	}

	pathCount, err := c.count("path count")
	if err != nil {
		return batch.Batch{}, err
	}
	paths, err := c.take(pathCount, "paths")
	if err != nil {
		return batch.Batch{}, err
	}

	b := batch.Batch{Patterns: patterns, Paths: paths}
	if err := b.Validate(); err != nil {
		return batch.Batch{}, err
	}
	return b, nil
}

// readLines splits r into lines with "\n" or "\r\n" terminators removed.
func (d *TextDecoder) readLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	// room for the terminator on top of the line bound
	limit := d.maxLineBytes + 2
	scanner.Buffer(make([]byte, 0, min(limit, 64*1024)), limit)

	var lines []string
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) > d.maxLineBytes {
			return nil, &batch.LineTooLongError{Line: len(lines) + 1, Limit: d.maxLineBytes}
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &batch.LineTooLongError{Line: len(lines) + 1, Limit: d.maxLineBytes}
		}
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return lines, nil
}

type cursor struct {
	lines []string
	pos   int
}

func (c *cursor) count(field string) (int, error) {
	if c.pos >= len(c.lines) {
		return 0, &batch.TruncatedInputError{Field: field + " line", Expected: 1, Got: 0}
	}

	raw := c.lines[c.pos]
	line := c.pos + 1
	c.pos++

	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &batch.FormatError{Line: line, Field: field, Value: raw, Reason: "not an integer"}
	}
	if n < 0 {
		return 0, &batch.FormatError{Line: line, Field: field, Value: raw, Reason: "negative"}
	}
	return n, nil
}

func (c *cursor) take(n int, field string) ([]string, error) {
	available := len(c.lines) - c.pos
	if n > available {
		return nil, &batch.TruncatedInputError{Field: field, Expected: n, Got: available}
	}

	out := c.lines[c.pos : c.pos+n : c.pos+n]
	c.pos += n
	return out, nil
}
