// pkg/adapter/textio/encoder.go
package textio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/damianoneill/bestmatch/pkg/domain/batch"
	"github.com/damianoneill/bestmatch/pkg/domain/pattern"
)

// TextEncoder writes the matched pattern, fields joined with ",", or
// batch.NoMatch, one line per result.
type TextEncoder struct{}

func NewTextEncoder() *TextEncoder {
	return &TextEncoder{}
}

// Encode implements batch.Encoder.
func (e *TextEncoder) Encode(w io.Writer, results []pattern.Result) error {
	bw := bufio.NewWriter(w)
	for _, res := range results {
		if _, err := bw.WriteString(FormatResult(res)); err != nil {
			return fmt.Errorf("writing result: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("writing result: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing results: %w", err)
	}
	return nil
}

// FormatResult renders a single result line without its terminator.
func FormatResult(res pattern.Result) string {
	if !res.Matched {
		return batch.NoMatch
	}
	return res.Pattern.String()
}
