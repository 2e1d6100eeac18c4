package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/mna/lox/lang/interp"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/resolver"
)

func (c *Cmd) Run(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return RunFiles(stdio, args...)
}

// RunFiles parses, resolves and interprets each file in turn, stopping
// at the first one that fails any stage of the pipeline.
func RunFiles(stdio mainer.Stdio, files ...string) error {
	for _, name := range files {
		src, err := os.ReadFile(name)
		if err != nil {
			return printError(stdio, err)
		}

		prog, err := parser.Parse(src)
		if err != nil {
			return printError(stdio, fmt.Errorf("%s: %w", name, err))
		}

		depths, err := resolver.Resolve(prog)
		if err != nil {
			return printError(stdio, fmt.Errorf("%s: %w", name, err))
		}

		it := interp.New(depths, stdio.Stdout)
		if err := it.Interpret(prog); err != nil {
			return printError(stdio, fmt.Errorf("%s: %w", name, err))
		}
	}
	return nil
}
