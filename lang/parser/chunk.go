package parser

import (
	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/token"
)

func (p *parser) parseProgram() *ast.Program {
	var prog ast.Program
	for p.tok != token.EOF {
		if d := p.parseDeclaration(); d != nil {
			prog.Stmts = append(prog.Stmts, d)
		}
	}
	prog.EOF = p.val.Pos
	return &prog
}

// parseDeclaration parses a single declaration (or statement), recovering
// from a parse error by synchronizing to the next safe token and
// returning nil instead of a partial statement.
func (p *parser) parseDeclaration() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if r != errPanicMode {
				panic(r)
			}
			p.synchronize()
			stmt = nil
		}
	}()

	switch p.tok {
	case token.CLASS:
		return p.parseClassDecl()
	case token.FUN:
		return p.parseFunDecl()
	case token.VAR:
		return p.parseVarDecl()
	default:
		return p.parseStatement()
	}
}

// syncToks are the tokens at which synchronize stops without consuming,
// because they start a new declaration or statement.
var syncToks = map[token.Kind]bool{
	token.CLASS:  true,
	token.FUN:    true,
	token.VAR:    true,
	token.FOR:    true,
	token.IF:     true,
	token.WHILE:  true,
	token.PRINT:  true,
	token.RETURN: true,
}

// synchronize advances tokens until the next ';' has been consumed or the
// next token is one of class fun var for if while print return, bounding
// the cascade of spurious errors after a parse failure.
func (p *parser) synchronize() {
	for p.tok != token.EOF {
		if p.tok == token.SEMI {
			p.advance()
			return
		}
		if syncToks[p.tok] {
			return
		}
		p.advance()
	}
}
