package maincmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mna/mainer"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/resolver"
)

func (c *Cmd) Resolve(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return ResolveFiles(stdio, c.ShowPos, args...)
}

// ResolveFiles parses, resolves and prints each file's AST, annotating
// every node the resolver recorded a scope distance for with "@depth=N".
func ResolveFiles(stdio mainer.Stdio, showPos bool, files ...string) error {
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

		depths, err := resolver.Resolve(prog)
		if err != nil {
			printError(stdio, fmt.Errorf("%s: %w", name, err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		p := &depthPrinter{w: stdio.Stdout, showPos: showPos, depths: depths}
		ast.Walk(p, prog)
		if p.err != nil {
			printError(stdio, p.err)
			return p.err
		}
	}
	return firstErr
}

// depthPrinter is a minimal variant of ast.Printer that additionally
// annotates each node recorded in depths with its resolved scope
// distance, so "lox resolve" output doubles as a visual check of the
// resolver's work.
type depthPrinter struct {
	w       io.Writer
	showPos bool
	depths  resolver.Depths
	depth   int
	err     error
}

func (p *depthPrinter) Visit(n ast.Node, dir ast.VisitDirection) ast.Visitor {
	if dir == ast.VisitExit || p.err != nil {
		p.depth--
		return nil
	}
	p.depth++
	p.printNode(n)
	return p
}

func (p *depthPrinter) printNode(n ast.Node) {
	var b strings.Builder
	b.WriteString(strings.Repeat(". ", p.depth-1))
	if p.showPos {
		start, _ := n.Span()
		line, col := start.LineCol()
		fmt.Fprintf(&b, "[%d:%d] ", line, col)
	}
	fmt.Fprintf(&b, "%v", n)
	if d, ok := p.depths[n]; ok {
		fmt.Fprintf(&b, " @depth=%d", d)
	}
	b.WriteByte('\n')
	_, p.err = p.w.Write([]byte(b.String()))
}
