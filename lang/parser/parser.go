// Package parser implements the recursive-descent parser, with one parse
// method per precedence level, that transforms Lox source into an AST.
package parser

import (
	"errors"
	"fmt"
	gotok "go/token"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/scanner"
	"github.com/mna/lox/lang/token"
)

// Parse parses src as a complete Lox program and returns its AST. The
// returned error, if non-nil, is a scanner.ErrorList aggregating every
// lex and parse diagnostic collected; in that case the returned *Program
// may still contain partially-recovered statements but is not meant to be
// interpreted.
func Parse(src []byte) (*ast.Program, error) {
	var p parser
	p.init(src)
	prog := p.parseProgram()
	p.errors.Sort()
	return prog, p.errors.Err()
}

// parser parses a token stream into an AST, collecting diagnostics as it
// goes and recovering from errors at statement boundaries.
type parser struct {
	scanner scanner.Scanner
	errors  scanner.ErrorList

	tok token.Kind
	val token.Value
}

func (p *parser) init(src []byte) {
	p.scanner.Init(src, func(pos gotok.Position, msg string) {
		p.errors.Add(pos, msg)
	})
	p.advance()
}

func (p *parser) advance() {
	p.tok = p.scanner.Scan(&p.val)
}

// errPanicMode is panicked with to unwind to the nearest declaration-level
// recover point, where synchronize() is invoked.
var errPanicMode = errors.New("panic mode")

func (p *parser) check(kind token.Kind) bool {
	return p.tok == kind
}

// match advances and returns true if the current token is kind, otherwise
// it leaves the parser untouched and returns false.
func (p *parser) match(kind token.Kind) bool {
	if p.tok == kind {
		p.advance()
		return true
	}
	return false
}

// expect returns the position of the current token and consumes it if it
// is kind, otherwise it records a diagnostic and panics with
// errPanicMode, to be recovered at the declaration level.
func (p *parser) expect(kind token.Kind) token.Pos {
	pos := p.val.Pos
	if p.tok != kind {
		p.errorExpected(pos, kind.GoString())
		panic(errPanicMode)
	}
	p.advance()
	return pos
}

func (p *parser) error(pos token.Pos, msg string) {
	line, col := pos.LineCol()
	p.errors.Add(gotok.Position{Line: line, Column: col}, msg)
}

func (p *parser) errorf(pos token.Pos, format string, args ...any) {
	p.error(pos, fmt.Sprintf(format, args...))
}

func (p *parser) errorExpected(pos token.Pos, want string) {
	msg := "expected " + want
	if pos == p.val.Pos {
		found := p.val.Lexeme
		if found == "" {
			found = p.tok.GoString()
		}
		msg += ", found " + found
	}
	p.error(pos, msg)
}
