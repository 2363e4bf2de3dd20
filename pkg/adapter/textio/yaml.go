// pkg/adapter/textio/yaml.go
package textio

import (
	"errors"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/damianoneill/bestmatch/pkg/domain/batch"
)

// YAMLDecoder reads a single document of the form
//
//	patterns: ["a,*", "c,c"]
//	paths: ["a/b", "/c/c/"]
//
// Unknown keys are rejected.
type YAMLDecoder struct{}

func NewYAMLDecoder() *YAMLDecoder {
	return &YAMLDecoder{}
}

// Decode implements batch.Decoder.
func (d *YAMLDecoder) Decode(r io.Reader) (batch.Batch, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var b batch.Batch
	if err := dec.Decode(&b); err != nil {
		if errors.Is(err, io.EOF) {
			return batch.Batch{}, &batch.DecodeError{Format: batch.YAMLFormat, Err: errors.New("empty document")}
		}
		return batch.Batch{}, &batch.DecodeError{Format: batch.YAMLFormat, Err: err}
	}

	if err := b.Validate(); err != nil {
		return batch.Batch{}, err
	}
	return b, nil
}
