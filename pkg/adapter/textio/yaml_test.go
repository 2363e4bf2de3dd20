// pkg/adapter/textio/yaml_test.go
package textio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damianoneill/bestmatch/pkg/domain/batch"
)

func TestYAMLDecoder_Decode(t *testing.T) {
	input := `
patterns:
  - "a,*"
  - "c,c"
paths:
  - a/b
  - /c/c/
`
	got, err := NewYAMLDecoder().Decode(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, batch.Batch{
		Patterns: []string{"a,*", "c,c"},
		Paths:    []string{"a/b", "/c/c/"},
	}, got)
}

func TestYAMLDecoder_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "empty document", input: "", wantErr: "empty document"},
		{name: "unknown key", input: "patterns: [a]\nroutes: [a]\n", wantErr: "routes"},
		{name: "wrong shape", input: "patterns: a\n", wantErr: "decoding yaml batch"},
		{name: "duplicate pattern", input: "patterns: [a, a]\npaths: []\n", wantErr: "duplicate pattern"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewYAMLDecoder().Decode(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.True(t, batch.IsInputError(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
