package ast

import (
	"fmt"

	"github.com/mna/lox/lang/token"
)

type (
	// Binary represents a binary expression, e.g. x + y, x == y.
	Binary struct {
		Left  Expr
		Op    token.Kind
		OpPos token.Pos
		Right Expr
	}

	// Logical represents a short-circuiting "and"/"or" expression.
	Logical struct {
		Left  Expr
		Op    token.Kind // AND or OR
		OpPos token.Pos
		Right Expr
	}

	// Unary represents a unary operator expression, e.g. -x, !x.
	Unary struct {
		Op    token.Kind
		OpPos token.Pos
		Right Expr
	}

	// Grouping represents a parenthesized expression.
	Grouping struct {
		Lparen token.Pos
		Expr   Expr
		Rparen token.Pos
	}

	// Literal represents a NUMBER, STRING, "true", "false" or "nil"
	// literal. Value is one of float64, string, bool, or nil.
	Literal struct {
		Value any
		Pos   token.Pos
	}

	// Variable represents a reference to a named variable.
	Variable struct {
		Name    string
		NamePos token.Pos
	}

	// Assign represents an assignment to a named variable, e.g. x = y.
	Assign struct {
		Name    string
		NamePos token.Pos
		Value   Expr
	}

	// Call represents a function or method call, e.g. f(a, b).
	Call struct {
		Callee Expr
		Args   []Expr
		Rparen token.Pos // position used for arity/callability diagnostics
	}

	// Get represents a property access, e.g. obj.field.
	Get struct {
		Object  Expr
		Name    string
		NamePos token.Pos
	}

	// Set represents a property assignment, e.g. obj.field = value.
	Set struct {
		Object  Expr
		Name    string
		NamePos token.Pos
		Value   Expr
	}

	// This represents a "this" expression.
	This struct {
		Pos token.Pos
	}

	// Super represents a "super.method" expression.
	Super struct {
		Pos       token.Pos // position of "super"
		Method    string
		MethodPos token.Pos
	}
)

func (n *Binary) Format(f fmt.State, verb rune) { format(f, verb, n, "binary "+n.Op.GoString(), nil) }
func (n *Binary) Span() (start, end token.Pos) {
	start, _ = n.Left.Span()
	_, end = n.Right.Span()
	return start, end
}
func (n *Binary) Walk(v Visitor) {
	Walk(v, n.Left)
	Walk(v, n.Right)
}
func (n *Binary) expr() {}

func (n *Logical) Format(f fmt.State, verb rune) {
	format(f, verb, n, "logical "+n.Op.GoString(), nil)
}
func (n *Logical) Span() (start, end token.Pos) {
	start, _ = n.Left.Span()
	_, end = n.Right.Span()
	return start, end
}
func (n *Logical) Walk(v Visitor) {
	Walk(v, n.Left)
	Walk(v, n.Right)
}
func (n *Logical) expr() {}

func (n *Unary) Format(f fmt.State, verb rune) { format(f, verb, n, "unary "+n.Op.GoString(), nil) }
func (n *Unary) Span() (start, end token.Pos) {
	_, end = n.Right.Span()
	return n.OpPos, end
}
func (n *Unary) Walk(v Visitor) { Walk(v, n.Right) }
func (n *Unary) expr()          {}

func (n *Grouping) Format(f fmt.State, verb rune) { format(f, verb, n, "(expr)", nil) }
func (n *Grouping) Span() (start, end token.Pos) {
	return n.Lparen, n.Rparen + token.Pos(len(token.RPAREN.String()))
}
func (n *Grouping) Walk(v Visitor) { Walk(v, n.Expr) }
func (n *Grouping) expr()          {}

func (n *Literal) Format(f fmt.State, verb rune) {
	format(f, verb, n, fmt.Sprintf("literal %v", n.Value), nil)
}
func (n *Literal) Span() (start, end token.Pos) { return n.Pos, n.Pos }
func (n *Literal) Walk(v Visitor)               {}
func (n *Literal) expr()                        {}

func (n *Variable) Format(f fmt.State, verb rune) { format(f, verb, n, "var "+n.Name, nil) }
func (n *Variable) Span() (start, end token.Pos) {
	return n.NamePos, n.NamePos + token.Pos(len(n.Name))
}
func (n *Variable) Walk(v Visitor) {}
func (n *Variable) expr()          {}

func (n *Assign) Format(f fmt.State, verb rune) { format(f, verb, n, "assign "+n.Name, nil) }
func (n *Assign) Span() (start, end token.Pos) {
	_, end = n.Value.Span()
	return n.NamePos, end
}
func (n *Assign) Walk(v Visitor) { Walk(v, n.Value) }
func (n *Assign) expr()          {}

func (n *Call) Format(f fmt.State, verb rune) {
	format(f, verb, n, "call", map[string]int{"args": len(n.Args)})
}
func (n *Call) Span() (start, end token.Pos) {
	start, _ = n.Callee.Span()
	return start, n.Rparen + token.Pos(len(token.RPAREN.String()))
}
func (n *Call) Walk(v Visitor) {
	Walk(v, n.Callee)
	for _, a := range n.Args {
		Walk(v, a)
	}
}
func (n *Call) expr() {}

func (n *Get) Format(f fmt.State, verb rune) { format(f, verb, n, "get "+n.Name, nil) }
func (n *Get) Span() (start, end token.Pos) {
	start, _ = n.Object.Span()
	return start, n.NamePos + token.Pos(len(n.Name))
}
func (n *Get) Walk(v Visitor) { Walk(v, n.Object) }
func (n *Get) expr()          {}

func (n *Set) Format(f fmt.State, verb rune) { format(f, verb, n, "set "+n.Name, nil) }
func (n *Set) Span() (start, end token.Pos) {
	start, _ = n.Object.Span()
	_, end = n.Value.Span()
	return start, end
}
func (n *Set) Walk(v Visitor) {
	Walk(v, n.Object)
	Walk(v, n.Value)
}
func (n *Set) expr() {}

func (n *This) Format(f fmt.State, verb rune) { format(f, verb, n, "this", nil) }
func (n *This) Span() (start, end token.Pos) {
	return n.Pos, n.Pos + token.Pos(len(token.THIS.String()))
}
func (n *This) Walk(v Visitor) {}
func (n *This) expr()          {}

func (n *Super) Format(f fmt.State, verb rune) { format(f, verb, n, "super "+n.Method, nil) }
func (n *Super) Span() (start, end token.Pos) {
	return n.Pos, n.MethodPos + token.Pos(len(n.Method))
}
func (n *Super) Walk(v Visitor) {}
func (n *Super) expr()          {}
