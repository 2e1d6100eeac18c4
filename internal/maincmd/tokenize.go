package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/mna/lox/lang/scanner"
)

func (c *Cmd) Tokenize(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return TokenizeFiles(stdio, args...)
}

// TokenizeFiles scans each file in turn and prints its tokens, one per
// line, in the "line:col: KIND lexeme" form. A file that fails to read is
// reported and skipped, and every file's lex errors are collected
// before reporting: a later file's valid tokens are still printed even
// if an earlier file had lex errors, mirroring how the scanner itself
// collects every error before aborting the pipeline.
func TokenizeFiles(stdio mainer.Stdio, files ...string) error {
	var firstErr error
	for _, name := range files {
		src, err := os.ReadFile(name)
		if err != nil {
			printError(stdio, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		toks, err := scanner.ScanAll(src)
		for _, tv := range toks {
			fmt.Fprintf(stdio.Stdout, "%s: %s", posString(tv.Value.Pos), tv.Kind)
			if tv.Value.Lexeme != "" {
				fmt.Fprintf(stdio.Stdout, " %s", tv.Value.Lexeme)
			}
			fmt.Fprintln(stdio.Stdout)
		}
		if err != nil {
			printError(stdio, fmt.Errorf("%s: %w", name, err))
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
