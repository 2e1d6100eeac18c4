package ast

import (
	"fmt"
	"io"
	"strings"
)

// Printer controls debug pretty-printing of AST nodes.
type Printer struct {
	// Output is the io.Writer to print to.
	Output io.Writer

	// ShowPos, if set, prefixes each node with its line:column position.
	ShowPos bool
}

// Print pretty-prints the AST node n, indenting children under their
// parent using the Visitor/Walk pattern.
func (p *Printer) Print(n Node) error {
	pp := &printer{w: p.Output, showPos: p.ShowPos}
	Walk(pp, n)
	return pp.err
}

type printer struct {
	w       io.Writer
	showPos bool
	depth   int
	err     error
}

func (p *printer) Visit(n Node, dir VisitDirection) Visitor {
	if dir == VisitExit || p.err != nil {
		p.depth--
		return nil
	}
	p.depth++
	p.printNode(n, p.depth-1)
	return p
}

func (p *printer) printNode(n Node, indent int) {
	if p.err != nil {
		return
	}

	format := "%s"
	args := []any{strings.Repeat(". ", indent)}
	if p.showPos {
		format += "[%d:%d] "
		start, _ := n.Span()
		line, col := start.LineCol()
		args = append(args, line, col)
	}
	format += "%v\n"
	args = append(args, n)

	_, p.err = fmt.Fprintf(p.w, format, args...)
}
