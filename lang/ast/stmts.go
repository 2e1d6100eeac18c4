package ast

import (
	"fmt"

	"github.com/mna/lox/lang/token"
)

type (
	// Param is a single function parameter.
	Param struct {
		Name    string
		NamePos token.Pos
	}

	// Expression is an expression used as a statement, terminated by ';'.
	Expression struct {
		Expr Expr
	}

	// Print is a "print expression;" statement.
	Print struct {
		Pos  token.Pos // position of "print"
		Expr Expr
	}

	// Var is a "var name [= init];" declaration.
	Var struct {
		Pos     token.Pos // position of "var"
		Name    string
		NamePos token.Pos
		Init    Expr // nil if no initializer
	}

	// Block is a "{ declaration* }" sequence, introducing its own scope.
	Block struct {
		Lbrace token.Pos
		Rbrace token.Pos
		Stmts  []Stmt
	}

	// If is an "if (cond) then [else else]" statement.
	If struct {
		Pos  token.Pos // position of "if"
		Cond Expr
		Then Stmt
		Else Stmt // nil if no else branch
	}

	// While is a "while (cond) body" statement.
	While struct {
		Pos  token.Pos // position of "while"
		Cond Expr
		Body Stmt
	}

	// For is a "for (init; cond; post) body" statement, kept as parsed;
	// the interpreter introduces the surrounding scope and desugars the
	// clauses into the equivalent while-loop behavior.
	For struct {
		Pos  token.Pos // position of "for"
		Init Stmt       // may be nil; Var or Expression
		Cond Expr       // may be nil
		Post Expr       // may be nil
		Body Stmt
	}

	// Function is a function or method declaration. Methods inside a
	// Class's Methods list use the same IDENT "(" parameters? ")" block
	// production and carry their name, but have no "fun" keyword position.
	Function struct {
		Pos     token.Pos // position of "fun" (zero for methods)
		Name    string
		NamePos token.Pos
		Params  []*Param
		Body    *Block
	}

	// Return is a "return [expr];" statement. An empty return is
	// desugared to a Literal(nil) Value by the parser.
	Return struct {
		Pos   token.Pos // position of "return"
		Value Expr
	}

	// Class is a "class Name [< Superclass] { function* }" declaration.
	Class struct {
		Pos        token.Pos // position of "class"
		Name       string
		NamePos    token.Pos
		Superclass *Variable // nil if no superclass
		Methods    []*Function
	}
)

func (n *Expression) Format(f fmt.State, verb rune) { format(f, verb, n, "expr stmt", nil) }
func (n *Expression) Span() (start, end token.Pos)  { return n.Expr.Span() }
func (n *Expression) Walk(v Visitor)                { Walk(v, n.Expr) }
func (n *Expression) stmt()                         {}

func (n *Print) Format(f fmt.State, verb rune) { format(f, verb, n, "print", nil) }
func (n *Print) Span() (start, end token.Pos) {
	_, end = n.Expr.Span()
	return n.Pos, end
}
func (n *Print) Walk(v Visitor) { Walk(v, n.Expr) }
func (n *Print) stmt()          {}

func (n *Var) Format(f fmt.State, verb rune) {
	var inits int
	if n.Init != nil {
		inits = 1
	}
	format(f, verb, n, "var decl "+n.Name, map[string]int{"init": inits})
}
func (n *Var) Span() (start, end token.Pos) {
	end = n.NamePos + token.Pos(len(n.Name))
	if n.Init != nil {
		_, end = n.Init.Span()
	}
	return n.Pos, end
}
func (n *Var) Walk(v Visitor) {
	if n.Init != nil {
		Walk(v, n.Init)
	}
}
func (n *Var) stmt() {}

func (n *Block) Format(f fmt.State, verb rune) {
	format(f, verb, n, "block", map[string]int{"stmts": len(n.Stmts)})
}
func (n *Block) Span() (start, end token.Pos) {
	return n.Lbrace, n.Rbrace + token.Pos(len(token.RBRACE.String()))
}
func (n *Block) Walk(v Visitor) {
	for _, s := range n.Stmts {
		Walk(v, s)
	}
}
func (n *Block) stmt() {}

func (n *If) Format(f fmt.State, verb rune) {
	var elses int
	if n.Else != nil {
		elses = 1
	}
	format(f, verb, n, "if", map[string]int{"else": elses})
}
func (n *If) Span() (start, end token.Pos) {
	_, end = n.Then.Span()
	if n.Else != nil {
		_, end = n.Else.Span()
	}
	return n.Pos, end
}
func (n *If) Walk(v Visitor) {
	Walk(v, n.Cond)
	Walk(v, n.Then)
	if n.Else != nil {
		Walk(v, n.Else)
	}
}
func (n *If) stmt() {}

func (n *While) Format(f fmt.State, verb rune) { format(f, verb, n, "while", nil) }
func (n *While) Span() (start, end token.Pos) {
	_, end = n.Body.Span()
	return n.Pos, end
}
func (n *While) Walk(v Visitor) {
	Walk(v, n.Cond)
	Walk(v, n.Body)
}
func (n *While) stmt() {}

func (n *For) Format(f fmt.State, verb rune) {
	var clauses int
	if n.Init != nil {
		clauses++
	}
	if n.Cond != nil {
		clauses++
	}
	if n.Post != nil {
		clauses++
	}
	format(f, verb, n, "for", map[string]int{"clauses": clauses})
}
func (n *For) Span() (start, end token.Pos) {
	_, end = n.Body.Span()
	return n.Pos, end
}
func (n *For) Walk(v Visitor) {
	if n.Init != nil {
		Walk(v, n.Init)
	}
	if n.Cond != nil {
		Walk(v, n.Cond)
	}
	if n.Post != nil {
		Walk(v, n.Post)
	}
	Walk(v, n.Body)
}
func (n *For) stmt() {}

func (n *Function) Format(f fmt.State, verb rune) {
	lbl := "fn decl " + n.Name
	format(f, verb, n, lbl, map[string]int{"params": len(n.Params)})
}
func (n *Function) Span() (start, end token.Pos) {
	_, end = n.Body.Span()
	start = n.NamePos
	if !n.Pos.Unknown() {
		start = n.Pos
	}
	return start, end
}
func (n *Function) Walk(v Visitor) {
	Walk(v, n.Body)
}
func (n *Function) stmt() {}

func (n *Return) Format(f fmt.State, verb rune) { format(f, verb, n, "return", nil) }
func (n *Return) Span() (start, end token.Pos) {
	end = n.Pos + token.Pos(len(token.RETURN.String()))
	if n.Value != nil {
		_, end = n.Value.Span()
	}
	return n.Pos, end
}
func (n *Return) Walk(v Visitor) {
	if n.Value != nil {
		Walk(v, n.Value)
	}
}
func (n *Return) stmt() {}

func (n *Class) Format(f fmt.State, verb rune) {
	var inherits int
	if n.Superclass != nil {
		inherits = 1
	}
	format(f, verb, n, "class decl "+n.Name, map[string]int{
		"inherits": inherits,
		"methods":  len(n.Methods),
	})
}
func (n *Class) Span() (start, end token.Pos) {
	end = n.NamePos + token.Pos(len(n.Name))
	if len(n.Methods) > 0 {
		_, end = n.Methods[len(n.Methods)-1].Span()
	}
	return n.Pos, end
}
func (n *Class) Walk(v Visitor) {
	if n.Superclass != nil {
		Walk(v, n.Superclass)
	}
	for _, m := range n.Methods {
		Walk(v, m)
	}
}
func (n *Class) stmt() {}
