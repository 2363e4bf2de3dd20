// cmd/bestmatch/inputs.go

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// expandInputs turns arguments into file names. Plain arguments are kept
// as given; globs expand to the files they match in lexical order.
func expandInputs(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		if !isGlob(arg) {
			files = append(files, arg)
			continue
		}

		pattern := filepath.ToSlash(arg)
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid glob %q", arg)
		}

		base, rest := doublestar.SplitPattern(pattern)
		matches, err := doublestar.Glob(os.DirFS(base), rest, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expanding %s: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %s", arg)
		}

		slices.Sort(matches)
		for _, m := range matches {
			files = append(files, filepath.Join(filepath.FromSlash(base), filepath.FromSlash(m)))
		}
	}
	return files, nil
}

func isGlob(arg string) bool {
	return strings.ContainsAny(arg, "*?[{")
}
