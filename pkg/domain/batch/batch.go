// pkg/domain/batch/batch.go

// Package batch defines a unit of matching work, the input layout errors
// a batch can fail with, and the codec interfaces that move batches and
// their results across process boundaries.
package batch

import (
	"fmt"
	"io"

	"github.com/damianoneill/bestmatch/pkg/domain/options"
	"github.com/damianoneill/bestmatch/pkg/domain/pattern"
)

//go:generate mockgen -destination=mocks/mock_batch.go -package=mocks github.com/damianoneill/bestmatch/pkg/domain/batch Decoder,Encoder,Factory

// NoMatch is written in place of a pattern for a path nothing matched.
const NoMatch = "NO MATCH"

// Format identifies a batch input encoding.
type Format string

const (
	// TextFormat is the line-oriented count/lines layout.
	TextFormat Format = "text"

	// YAMLFormat is a mapping with "patterns" and "paths" sequences.
	YAMLFormat Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case TextFormat, YAMLFormat:
		return f, nil
	default:
		return "", fmt.Errorf("unknown input format %q", s)
	}
}

// Batch holds raw patterns and paths in input order.
type Batch struct {
	Patterns []string `yaml:"patterns"`
	Paths    []string `yaml:"paths"`
}

// Validate rejects batches whose pattern list repeats an entry.
func (b Batch) Validate() error {
	seen := make(map[string]int, len(b.Patterns))
	for i, p := range b.Patterns {
		if first, ok := seen[p]; ok {
			return &DuplicatePatternError{Pattern: p, First: first, Second: i}
		}
		seen[p] = i
	}
	return nil
}

// Decoder reads one batch from a stream.
type Decoder interface {
	Decode(r io.Reader) (Batch, error)
}

// Encoder writes match results, one line per path, in the given order.
type Encoder interface {
	Encode(w io.Writer, results []pattern.Result) error
}

// CodecOptions configures decoders and encoders.
type CodecOptions struct {
	// Format selects the input encoding. Default is TextFormat.
	Format Format

	// MaxLineBytes bounds a single input line. Default is 1 MiB.
	MaxLineBytes int
}

// DefaultMaxLineBytes bounds an input line when nothing else is configured.
const DefaultMaxLineBytes = 1 << 20

// DefaultCodecOptions returns the codec defaults.
func DefaultCodecOptions() CodecOptions {
	return CodecOptions{
		Format:       TextFormat,
		MaxLineBytes: DefaultMaxLineBytes,
	}
}

// Option modifies CodecOptions.
type Option = options.Option[CodecOptions]

// WithFormat selects the input encoding.
func WithFormat(format Format) Option {
	return options.OptionFunc[CodecOptions](func(o *CodecOptions) error {
		if _, err := ParseFormat(string(format)); err != nil {
			return err
		}
		o.Format = format
		return nil
	})
}

// WithMaxLineBytes bounds a single input line.
func WithMaxLineBytes(n int) Option {
	return options.OptionFunc[CodecOptions](func(o *CodecOptions) error {
		if n <= 0 {
			return fmt.Errorf("max line bytes must be positive, got %d", n)
		}
		o.MaxLineBytes = n
		return nil
	})
}

// Factory creates codecs.
type Factory interface {
	NewDecoder(opts ...Option) (Decoder, error)
	NewEncoder(opts ...Option) (Encoder, error)
}
