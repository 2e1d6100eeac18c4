package parser

import (
	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/token"
)

// parseClassDecl parses:
//
//	classDecl → "class" IDENT ( "<" IDENT )? "{" function* "}"
func (p *parser) parseClassDecl() ast.Stmt {
	var cls ast.Class
	cls.Pos = p.expect(token.CLASS)
	cls.Name = p.val.Lexeme
	cls.NamePos = p.expect(token.IDENT)

	if p.match(token.LT) {
		var super ast.Variable
		super.Name = p.val.Lexeme
		super.NamePos = p.expect(token.IDENT)
		cls.Superclass = &super
	}

	p.expect(token.LBRACE)
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		cls.Methods = append(cls.Methods, p.parseFunction())
	}
	p.expect(token.RBRACE)
	return &cls
}

// parseFunDecl parses: funDecl → "fun" function
func (p *parser) parseFunDecl() ast.Stmt {
	pos := p.expect(token.FUN)
	fn := p.parseFunction()
	fn.Pos = pos
	return fn
}

// parseFunction parses: function → IDENT "(" parameters? ")" block
func (p *parser) parseFunction() *ast.Function {
	var fn ast.Function
	fn.Name = p.val.Lexeme
	fn.NamePos = p.expect(token.IDENT)

	p.expect(token.LPAREN)
	if !p.check(token.RPAREN) {
		for {
			var param ast.Param
			param.Name = p.val.Lexeme
			param.NamePos = p.expect(token.IDENT)
			fn.Params = append(fn.Params, &param)
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.expect(token.RPAREN)
	fn.Body = p.parseBlock()
	return &fn
}

// parseVarDecl parses: varDecl → "var" IDENT ( "=" expression )? ";"
func (p *parser) parseVarDecl() ast.Stmt {
	var v ast.Var
	v.Pos = p.expect(token.VAR)
	v.Name = p.val.Lexeme
	v.NamePos = p.expect(token.IDENT)
	if p.match(token.EQ) {
		v.Init = p.parseExpr()
	}
	p.expect(token.SEMI)
	return &v
}

// parseStatement parses:
//
//	statement → exprStmt | forStmt | ifStmt | printStmt
//	          | returnStmt | whileStmt | block
func (p *parser) parseStatement() ast.Stmt {
	switch p.tok {
	case token.FOR:
		return p.parseForStmt()
	case token.IF:
		return p.parseIfStmt()
	case token.PRINT:
		return p.parsePrintStmt()
	case token.RETURN:
		return p.parseReturnStmt()
	case token.WHILE:
		return p.parseWhileStmt()
	case token.LBRACE:
		return p.parseBlock()
	default:
		return p.parseExprStmt()
	}
}

func (p *parser) parseExprStmt() ast.Stmt {
	e := p.parseExpr()
	p.expect(token.SEMI)
	return &ast.Expression{Expr: e}
}

func (p *parser) parsePrintStmt() ast.Stmt {
	var pr ast.Print
	pr.Pos = p.expect(token.PRINT)
	pr.Expr = p.parseExpr()
	p.expect(token.SEMI)
	return &pr
}

// parseReturnStmt parses "return expression? ;". An empty return is
// desugared to a Literal(nil) value.
func (p *parser) parseReturnStmt() ast.Stmt {
	var ret ast.Return
	ret.Pos = p.expect(token.RETURN)
	if !p.check(token.SEMI) {
		ret.Value = p.parseExpr()
	} else {
		ret.Value = &ast.Literal{Value: nil, Pos: ret.Pos}
	}
	p.expect(token.SEMI)
	return &ret
}

func (p *parser) parseWhileStmt() ast.Stmt {
	var w ast.While
	w.Pos = p.expect(token.WHILE)
	p.expect(token.LPAREN)
	w.Cond = p.parseExpr()
	p.expect(token.RPAREN)
	w.Body = p.parseStatement()
	return &w
}

func (p *parser) parseIfStmt() ast.Stmt {
	var iff ast.If
	iff.Pos = p.expect(token.IF)
	p.expect(token.LPAREN)
	iff.Cond = p.parseExpr()
	p.expect(token.RPAREN)
	iff.Then = p.parseStatement()
	if p.match(token.ELSE) {
		iff.Else = p.parseStatement()
	}
	return &iff
}

// parseForStmt parses the 3-clause C-style for loop, left as-is in a For
// node; the interpreter introduces the surrounding scope, not the parser.
func (p *parser) parseForStmt() ast.Stmt {
	var f ast.For
	f.Pos = p.expect(token.FOR)
	p.expect(token.LPAREN)

	switch {
	case p.match(token.SEMI):
		f.Init = nil
	case p.check(token.VAR):
		f.Init = p.parseVarDecl()
	default:
		f.Init = p.parseExprStmt()
	}

	if !p.check(token.SEMI) {
		f.Cond = p.parseExpr()
	}
	p.expect(token.SEMI)

	if !p.check(token.RPAREN) {
		f.Post = p.parseExpr()
	}
	p.expect(token.RPAREN)

	f.Body = p.parseStatement()
	return &f
}

// parseBlock parses: block → "{" declaration* "}"
func (p *parser) parseBlock() *ast.Block {
	var b ast.Block
	b.Lbrace = p.expect(token.LBRACE)
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		if d := p.parseDeclaration(); d != nil {
			b.Stmts = append(b.Stmts, d)
		}
	}
	b.Rbrace = p.expect(token.RBRACE)
	return &b
}
