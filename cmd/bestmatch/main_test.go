// cmd/bestmatch/main_test.go

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	sampleInput = `6
*,b,*
a,*,*
*,*,c
foo,bar,baz
w,x,*,*
*,x,y,z
5
/w/x/y/z/
a/b/c
foo/
foo/bar/
foo/bar/baz/
`
	sampleOutput = `*,x,y,z
a,*,*
NO MATCH
NO MATCH
foo,bar,baz
`
)

// isolate keeps user config and environment out of the run.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)
}

type result struct {
	code   int
	stdout string
	stderr string
}

func execute(t *testing.T, ctx context.Context, stdin string, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(ctx, args, strings.NewReader(stdin), &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRun_Stdin(t *testing.T) {
	isolate(t)

	res := execute(t, context.Background(), sampleInput)
	assert.Equal(t, exitOK, res.code, res.stderr)
	assert.Equal(t, sampleOutput, res.stdout)
	assert.Empty(t, res.stderr)
}

func TestRun_InputErrors(t *testing.T) {
	isolate(t)

	tests := []struct {
		name    string
		stdin   string
		wantErr string
	}{
		{name: "bad count", stdin: "x\n", wantErr: `Error: line 1: invalid pattern count "x": not an integer`},
		{name: "negative count", stdin: "-1\n", wantErr: "negative"},
		{name: "truncated", stdin: "2\na\n", wantErr: "truncated input: expected 2 patterns, got 1"},
		{name: "duplicate", stdin: "2\na\na\n0\n", wantErr: `duplicate pattern "a"`},
		{name: "empty", stdin: "", wantErr: "truncated input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := execute(t, context.Background(), tt.stdin)
			assert.Equal(t, exitInputError, res.code)
			assert.Empty(t, res.stdout)
			assert.Contains(t, res.stderr, tt.wantErr)
		})
	}
}

func TestRun_Files(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	writeFile(t, dir, "b.txt", "1\n*\n1\nz\n")
	writeFile(t, dir, "a.txt", sampleInput)
	writeFile(t, dir, "nested/c.txt", "1\nc\n2\nc\nd\n")
	writeFile(t, dir, "notes.md", "not a batch")

	t.Run("glob expands in lexical order", func(t *testing.T) {
		res := execute(t, context.Background(), "", filepath.Join(dir, "*.txt"))
		assert.Equal(t, exitOK, res.code, res.stderr)
		assert.Equal(t, sampleOutput+"*\n", res.stdout)
	})

	t.Run("double star crosses directories", func(t *testing.T) {
		res := execute(t, context.Background(), "", filepath.Join(dir, "**", "c.txt"))
		assert.Equal(t, exitOK, res.code, res.stderr)
		assert.Equal(t, "c\nNO MATCH\n", res.stdout)
	})

	t.Run("plain files keep argument order", func(t *testing.T) {
		res := execute(t, context.Background(), "", filepath.Join(dir, "b.txt"), filepath.Join(dir, "a.txt"))
		assert.Equal(t, exitOK, res.code, res.stderr)
		assert.Equal(t, "*\n"+sampleOutput, res.stdout)
	})

	t.Run("glob without matches", func(t *testing.T) {
		res := execute(t, context.Background(), "", filepath.Join(dir, "*.yaml"))
		assert.Equal(t, exitFailure, res.code)
		assert.Contains(t, res.stderr, "no files match")
	})

	t.Run("missing file", func(t *testing.T) {
		res := execute(t, context.Background(), "", filepath.Join(dir, "missing.txt"))
		assert.Equal(t, exitFailure, res.code)
		assert.Contains(t, res.stderr, "missing.txt")
	})

	t.Run("invalid file stops the run", func(t *testing.T) {
		res := execute(t, context.Background(), "", filepath.Join(dir, "notes.md"), filepath.Join(dir, "a.txt"))
		assert.Equal(t, exitInputError, res.code)
		assert.Empty(t, res.stdout)
		assert.Contains(t, res.stderr, "notes.md: line 1")
	})
}

func TestRun_Flags(t *testing.T) {
	isolate(t)

	t.Run("yaml format", func(t *testing.T) {
		res := execute(t, context.Background(), "patterns: [\"a,*\"]\npaths: [\"a/b\", \"b/a\"]\n", "--format", "yaml")
		assert.Equal(t, exitOK, res.code, res.stderr)
		assert.Equal(t, "a,*\nNO MATCH\n", res.stdout)
	})

	t.Run("unknown format", func(t *testing.T) {
		res := execute(t, context.Background(), sampleInput, "--format", "csv")
		assert.Equal(t, exitFailure, res.code)
		assert.Contains(t, res.stderr, "input.format")
	})

	t.Run("unknown log level", func(t *testing.T) {
		res := execute(t, context.Background(), sampleInput, "--log-level", "loud")
		assert.Equal(t, exitFailure, res.code)
		assert.Contains(t, res.stderr, "unknown log level")
	})

	t.Run("missing config file", func(t *testing.T) {
		res := execute(t, context.Background(), sampleInput, "--config", filepath.Join(t.TempDir(), "none.yaml"))
		assert.Equal(t, exitFailure, res.code)
		assert.Empty(t, res.stdout)
	})
}

func TestRun_ConfigFile(t *testing.T) {
	isolate(t)
	textfile := filepath.Join(t.TempDir(), "bestmatch.prom")
	writeFile(t, xdg.ConfigHome, "bestmatch/config.yaml", "metrics:\n  textfile: "+textfile+"\n")

	res := execute(t, context.Background(), sampleInput)
	require.Equal(t, exitOK, res.code, res.stderr)

	data, err := os.ReadFile(textfile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "bestmatch_paths_total")
}

func TestRun_Version(t *testing.T) {
	res := execute(t, context.Background(), "", "version")
	assert.Equal(t, exitOK, res.code)
	assert.Contains(t, res.stdout, "bestmatch version dev")
	assert.Contains(t, res.stdout, "commit: none")
}

func TestRun_Serve(t *testing.T) {
	isolate(t)

	// a cancelled context starts the server and shuts it down straight away
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := execute(t, ctx, "", "serve", "--port", "0", "--log-level", "error")
	assert.Equal(t, exitOK, res.code, res.stderr)
	assert.Empty(t, res.stdout)
}

func TestRun_ServeRejectsArgs(t *testing.T) {
	res := execute(t, context.Background(), "", "serve", "extra")
	assert.Equal(t, exitFailure, res.code)
	assert.Contains(t, res.stderr, "Error:")
}
