package parser

import (
	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/token"
)

func (p *parser) parseExpr() ast.Expr {
	return p.parseAssignment()
}

// parseAssignment parses:
//
//	assignment → ( call "." )? IDENT "=" assignment | logicOr
//
// The left-hand side is parsed as an ordinary expression; if it turns out
// to precede a '=', it is rewritten into an Assign or Set node. Any other
// left-hand side is a diagnostic "invalid assignment target", reported at
// the '=' token's position.
func (p *parser) parseAssignment() ast.Expr {
	expr := p.parseOr()

	if p.check(token.EQ) {
		eq := p.val.Pos
		p.advance()
		value := p.parseAssignment()

		switch e := expr.(type) {
		case *ast.Variable:
			return &ast.Assign{Name: e.Name, NamePos: e.NamePos, Value: value}
		case *ast.Get:
			return &ast.Set{Object: e.Object, Name: e.Name, NamePos: e.NamePos, Value: value}
		default:
			p.error(eq, "invalid assignment target")
			return expr
		}
	}
	return expr
}

func (p *parser) parseOr() ast.Expr {
	left := p.parseAnd()
	for p.check(token.OR) {
		pos := p.val.Pos
		p.advance()
		right := p.parseAnd()
		left = &ast.Logical{Left: left, Op: token.OR, OpPos: pos, Right: right}
	}
	return left
}

func (p *parser) parseAnd() ast.Expr {
	left := p.parseEquality()
	for p.check(token.AND) {
		pos := p.val.Pos
		p.advance()
		right := p.parseEquality()
		left = &ast.Logical{Left: left, Op: token.AND, OpPos: pos, Right: right}
	}
	return left
}

func (p *parser) parseEquality() ast.Expr {
	left := p.parseComparison()
	for p.tok == token.BANG_EQ || p.tok == token.EQ_EQ {
		op, pos := p.tok, p.val.Pos
		p.advance()
		right := p.parseComparison()
		left = &ast.Binary{Left: left, Op: op, OpPos: pos, Right: right}
	}
	return left
}

func (p *parser) parseComparison() ast.Expr {
	left := p.parseTerm()
	for p.tok == token.GT || p.tok == token.GT_EQ || p.tok == token.LT || p.tok == token.LT_EQ {
		op, pos := p.tok, p.val.Pos
		p.advance()
		right := p.parseTerm()
		left = &ast.Binary{Left: left, Op: op, OpPos: pos, Right: right}
	}
	return left
}

func (p *parser) parseTerm() ast.Expr {
	left := p.parseFactor()
	for p.tok == token.MINUS || p.tok == token.PLUS {
		op, pos := p.tok, p.val.Pos
		p.advance()
		right := p.parseFactor()
		left = &ast.Binary{Left: left, Op: op, OpPos: pos, Right: right}
	}
	return left
}

func (p *parser) parseFactor() ast.Expr {
	left := p.parseUnary()
	for p.tok == token.SLASH || p.tok == token.STAR {
		op, pos := p.tok, p.val.Pos
		p.advance()
		right := p.parseUnary()
		left = &ast.Binary{Left: left, Op: op, OpPos: pos, Right: right}
	}
	return left
}

func (p *parser) parseUnary() ast.Expr {
	if p.tok == token.BANG || p.tok == token.MINUS {
		op, pos := p.tok, p.val.Pos
		p.advance()
		right := p.parseUnary()
		return &ast.Unary{Op: op, OpPos: pos, Right: right}
	}
	return p.parseCall()
}

// parseCall parses: call → primary ( "(" arguments? ")" | "." IDENT )*
func (p *parser) parseCall() ast.Expr {
	expr := p.parsePrimary()
	for {
		switch {
		case p.check(token.LPAREN):
			p.advance()
			expr = p.finishCall(expr)
		case p.check(token.DOT):
			p.advance()
			name := p.val.Lexeme
			namePos := p.expect(token.IDENT)
			expr = &ast.Get{Object: expr, Name: name, NamePos: namePos}
		default:
			return expr
		}
	}
}

func (p *parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RPAREN) {
		args = append(args, p.parseExpr())
		for p.match(token.COMMA) {
			args = append(args, p.parseExpr())
		}
	}
	rparen := p.expect(token.RPAREN)
	return &ast.Call{Callee: callee, Args: args, Rparen: rparen}
}

// parsePrimary parses:
//
//	primary → NUMBER | STRING | "true" | "false" | "nil" | "this"
//	        | IDENT | "(" expression ")" | "super" "." IDENT
func (p *parser) parsePrimary() ast.Expr {
	switch p.tok {
	case token.NUMBER:
		lit := &ast.Literal{Value: p.val.Number, Pos: p.val.Pos}
		p.advance()
		return lit
	case token.STRING:
		lit := &ast.Literal{Value: p.val.Str, Pos: p.val.Pos}
		p.advance()
		return lit
	case token.TRUE:
		lit := &ast.Literal{Value: true, Pos: p.val.Pos}
		p.advance()
		return lit
	case token.FALSE:
		lit := &ast.Literal{Value: false, Pos: p.val.Pos}
		p.advance()
		return lit
	case token.NIL:
		lit := &ast.Literal{Value: nil, Pos: p.val.Pos}
		p.advance()
		return lit
	case token.THIS:
		pos := p.val.Pos
		p.advance()
		return &ast.This{Pos: pos}
	case token.SUPER:
		pos := p.val.Pos
		p.advance()
		p.expect(token.DOT)
		method := p.val.Lexeme
		methodPos := p.expect(token.IDENT)
		return &ast.Super{Pos: pos, Method: method, MethodPos: methodPos}
	case token.IDENT:
		v := &ast.Variable{Name: p.val.Lexeme, NamePos: p.val.Pos}
		p.advance()
		return v
	case token.LPAREN:
		lparen := p.val.Pos
		p.advance()
		e := p.parseExpr()
		rparen := p.expect(token.RPAREN)
		return &ast.Grouping{Lparen: lparen, Expr: e, Rparen: rparen}
	default:
		p.errorExpected(p.val.Pos, "expression")
		panic(errPanicMode)
	}
}
