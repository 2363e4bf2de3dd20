// pkg/adapter/textio/factory.go

// Package textio implements the batch codecs: the line-oriented text
// layout, a YAML alternative, and the one-line-per-path text output.
package textio

import (
	"fmt"

	"github.com/damianoneill/bestmatch/pkg/domain/batch"
	"github.com/damianoneill/bestmatch/pkg/domain/options"
)

// Verify interface implementation
var _ batch.Factory = (*Factory)(nil)

// Factory creates codecs for the configured format.
type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

// NewDecoder returns a decoder for the configured input format.
func (f *Factory) NewDecoder(opts ...batch.Option) (batch.Decoder, error) {
	o, err := options.Build(batch.DefaultCodecOptions(), opts...)
	if err != nil {
		return nil, fmt.Errorf("applying codec option: %w", err)
	}

	switch o.Format {
	case batch.TextFormat:
		return NewTextDecoder(o.MaxLineBytes), nil
	case batch.YAMLFormat:
		return NewYAMLDecoder(), nil
	default:
		return nil, fmt.Errorf("unsupported input format: %s", o.Format)
	}
}

// NewEncoder returns the text encoder. Output is the same for every input
// format.
func (f *Factory) NewEncoder(opts ...batch.Option) (batch.Encoder, error) {
	if _, err := options.Build(batch.DefaultCodecOptions(), opts...); err != nil {
		return nil, fmt.Errorf("applying codec option: %w", err)
	}
	return NewTextEncoder(), nil
}
