// pkg/adapter/textio/encoder_test.go
package textio

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damianoneill/bestmatch/pkg/domain/batch"
	"github.com/damianoneill/bestmatch/pkg/domain/pattern"
)

func TestTextEncoder_Encode(t *testing.T) {
	ranked := pattern.NewRanked(pattern.ParseAll([]string{"*,c", "c,c", "c,*", "a,b"}))
	results := ranked.MatchAll(pattern.ParsePaths([]string{"x/c", "c/c", "a/b/c", "/a/b/"}))

	var buf bytes.Buffer
	require.NoError(t, NewTextEncoder().Encode(&buf, results))

	assert.Equal(t, "*,c\nc,c\nNO MATCH\na,b\n", buf.String())
}

func TestTextEncoder_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextEncoder().Encode(&buf, nil))
	assert.Empty(t, buf.String())
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("pipe closed")
}

func TestTextEncoder_WriteFailure(t *testing.T) {
	results := []pattern.Result{{Matched: false}}
	err := NewTextEncoder().Encode(brokenWriter{}, results)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pipe closed")
}

func TestFormatResult(t *testing.T) {
	assert.Equal(t, batch.NoMatch, FormatResult(pattern.Result{}))
	assert.Equal(t, "a,,*", FormatResult(pattern.Result{Pattern: pattern.Parse("a,,*"), Matched: true}))
}

func TestFactory(t *testing.T) {
	f := NewFactory()

	t.Run("text decoder by default", func(t *testing.T) {
		dec, err := f.NewDecoder()
		require.NoError(t, err)
		assert.IsType(t, &TextDecoder{}, dec)
	})

	t.Run("yaml decoder", func(t *testing.T) {
		dec, err := f.NewDecoder(batch.WithFormat(batch.YAMLFormat))
		require.NoError(t, err)
		assert.IsType(t, &YAMLDecoder{}, dec)
	})

	t.Run("line bound reaches the text decoder", func(t *testing.T) {
		dec, err := f.NewDecoder(batch.WithMaxLineBytes(4))
		require.NoError(t, err)

		_, err = dec.Decode(strings.NewReader("1\nabcdefgh\n0\n"))
		var tooLong *batch.LineTooLongError
		assert.ErrorAs(t, err, &tooLong)
	})

	t.Run("invalid option", func(t *testing.T) {
		_, err := f.NewDecoder(batch.WithFormat("csv"))
		assert.Error(t, err)

		_, err = f.NewEncoder(batch.WithMaxLineBytes(-1))
		assert.Error(t, err)
	})

	t.Run("encoder", func(t *testing.T) {
		enc, err := f.NewEncoder(batch.WithFormat(batch.YAMLFormat))
		require.NoError(t, err)
		assert.IsType(t, &TextEncoder{}, enc)
	})
}
