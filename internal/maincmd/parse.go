package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/parser"
)

func (c *Cmd) Parse(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return ParseFiles(stdio, c.ShowPos, args...)
}

// ParseFiles parses each file and prints its AST. Parsing continues
// across files so a later file's AST is still printed even after an
// earlier one failed; the first error encountered is returned.
func ParseFiles(stdio mainer.Stdio, showPos bool, files ...string) error {
	printer := ast.Printer{Output: stdio.Stdout, ShowPos: showPos}

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

		prog, err := parser.Parse(src)
		if err != nil {
			printError(stdio, fmt.Errorf("%s: %w", name, err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if err := printer.Print(prog); err != nil {
			printError(stdio, err)
			return err
		}
	}
	return firstErr
}
