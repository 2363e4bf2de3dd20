// cmd/bestmatch/main.go

// Command bestmatch prints, for every path in a batch, the pattern that
// matches it best.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/damianoneill/bestmatch/pkg/domain/batch"
)

// Set at build time with -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const (
	exitOK         = 0
	exitFailure    = 1
	exitInputError = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCode(err)
	}
	return exitOK
}

func exitCode(err error) int {
	if batch.IsInputError(err) {
		return exitInputError
	}
	return exitFailure
}
