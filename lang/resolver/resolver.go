// Package resolver performs a single static pass over a parsed Lox program,
// computing the lexical distance between each variable reference and the
// scope that declares it. Unlike the bytecode compiler's approach of
// promoting captured locals to upvalues, this resolver only ever records a
// scope-count: the tree-walking interpreter uses it to hop that many
// environment frames outward at runtime rather than search.
package resolver

import (
	gotok "go/token"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/scanner"
	"github.com/mna/lox/lang/token"
)

// Depths maps a Variable, Assign, This or Super node to the number of
// enclosing scopes to cross - starting at the innermost - to reach the
// scope that declares its name. A node absent from Depths is resolved
// against the global scope at runtime.
type Depths map[ast.Node]int

// Resolve walks prog, returning the computed Depths and any static errors
// found along the way as a scanner.ErrorList (self-inheriting class,
// this/super misuse, return misuse, reading a local in its own
// initializer). The returned Depths is valid even when err is non-nil; it
// reflects everything the pass could resolve before and after each error.
func Resolve(prog *ast.Program) (Depths, error) {
	r := &resolver{depths: make(Depths)}
	for _, s := range prog.Stmts {
		r.resolveStmt(s)
	}
	r.errors.Sort()
	return r.depths, r.errors.Err()
}

type functionKind int

const (
	fnNone functionKind = iota
	fnFunction
	fnMethod
	fnInitializer
)

type classKind int

const (
	clsNone classKind = iota
	clsClass
	clsSubclass
)

// resolver walks the AST maintaining a stack of scopes, each a mapping of
// name to "defined?" - false meaning declared but its initializer has not
// yet been evaluated, which forbids reading the name in that initializer.
type resolver struct {
	scopes []map[string]bool
	depths Depths
	errors scanner.ErrorList

	currentFunction functionKind
	currentClass    classKind
}

func (r *resolver) beginScope() { r.scopes = append(r.scopes, map[string]bool{}) }
func (r *resolver) endScope()    { r.scopes = r.scopes[:len(r.scopes)-1] }

// declare introduces name into the innermost scope as not yet defined. It
// is a no-op at the global scope, which has no scope frame of its own.
func (r *resolver) declare(name string) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name] = false
}

// define marks name as fully initialized in the innermost scope.
func (r *resolver) define(name string) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name] = true
}

// resolveLocal records the depth of name as seen from node, searching the
// scope stack from innermost to outermost. A name found in no local scope
// is left unrecorded, falling through to the global scope at runtime.
func (r *resolver) resolveLocal(node ast.Node, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.depths[node] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *resolver) error(pos token.Pos, msg string) {
	line, col := pos.LineCol()
	r.errors.Add(gotok.Position{Line: line, Column: col}, msg)
}

func (r *resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Block:
		r.beginScope()
		r.resolveStmts(s.Stmts)
		r.endScope()
	case *ast.Var:
		r.resolveVarStmt(s)
	case *ast.Function:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, fnFunction)
	case *ast.Class:
		r.resolveClassStmt(s)
	case *ast.Expression:
		r.resolveExpr(s.Expr)
	case *ast.Print:
		r.resolveExpr(s.Expr)
	case *ast.If:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}
	case *ast.While:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Body)
	case *ast.For:
		r.resolveForStmt(s)
	case *ast.Return:
		r.resolveReturnStmt(s)
	default:
		panic("resolver: unhandled statement type")
	}
}

func (r *resolver) resolveVarStmt(s *ast.Var) {
	r.declare(s.Name)
	if s.Init != nil {
		r.resolveExpr(s.Init)
	}
	r.define(s.Name)
}

// resolveForStmt pushes a single scope enclosing the whole loop, so that a
// variable declared in the init clause is visible to the condition, the
// post expression and the body alike.
func (r *resolver) resolveForStmt(s *ast.For) {
	r.beginScope()
	if s.Init != nil {
		r.resolveStmt(s.Init)
	}
	if s.Cond != nil {
		r.resolveExpr(s.Cond)
	}
	if s.Post != nil {
		r.resolveExpr(s.Post)
	}
	r.resolveStmt(s.Body)
	r.endScope()
}

func (r *resolver) resolveReturnStmt(s *ast.Return) {
	if r.currentFunction == fnNone {
		r.error(s.Pos, "cannot return from top-level code")
	}
	if r.currentFunction == fnInitializer && !isNilLiteral(s.Value) {
		r.error(s.Pos, "cannot return a value from an initializer")
	}
	r.resolveExpr(s.Value)
}

func isNilLiteral(e ast.Expr) bool {
	lit, ok := e.(*ast.Literal)
	return ok && lit.Value == nil
}

// resolveFunction pushes a scope for the parameters and resolves the body
// in it, restoring currentFunction to its previous value on return so
// nested function declarations don't leak their kind to the enclosing one.
func (r *resolver) resolveFunction(fn *ast.Function, kind functionKind) {
	enclosing := r.currentFunction
	r.currentFunction = kind
	defer func() { r.currentFunction = enclosing }()

	r.beginScope()
	for _, p := range fn.Params {
		r.declare(p.Name)
		r.define(p.Name)
	}
	r.resolveStmts(fn.Body.Stmts)
	r.endScope()
}

// resolveClassStmt declares the class name up front (so a method can refer
// to it, e.g. via a class-side factory pattern), rejects self-inheritance,
// and pushes the super/this scopes around every method body.
func (r *resolver) resolveClassStmt(s *ast.Class) {
	enclosingClass := r.currentClass
	r.currentClass = clsClass
	defer func() { r.currentClass = enclosingClass }()

	r.declare(s.Name)

	if s.Superclass != nil {
		if s.Superclass.Name == s.Name {
			r.error(s.Superclass.NamePos, "a class cannot inherit from itself")
		}
		r.currentClass = clsSubclass
		r.resolveExpr(s.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
		defer r.endScope()
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true
	for _, m := range s.Methods {
		kind := fnMethod
		if m.Name == "init" {
			kind = fnInitializer
		}
		r.resolveFunction(m, kind)
	}
	r.endScope()
	r.define(s.Name)
}

func (r *resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Variable:
		r.resolveVariableExpr(e)
	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name)
	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Unary:
		r.resolveExpr(e.Right)
	case *ast.Grouping:
		r.resolveExpr(e.Expr)
	case *ast.Literal:
		// no identifiers to resolve
	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, a := range e.Args {
			r.resolveExpr(a)
		}
	case *ast.Get:
		r.resolveExpr(e.Object)
	case *ast.Set:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)
	case *ast.This:
		if r.currentClass == clsNone {
			r.error(e.Pos, "cannot use 'this' outside of a class")
			return
		}
		r.resolveLocal(e, "this")
	case *ast.Super:
		switch r.currentClass {
		case clsNone:
			r.error(e.Pos, "cannot use 'super' outside of a class")
			return
		case clsClass:
			r.error(e.Pos, "cannot use 'super' in a class with no superclass")
			return
		}
		r.resolveLocal(e, "super")
	default:
		panic("resolver: unhandled expression type")
	}
}

// resolveVariableExpr flags "var x = x;" style self-reference: reading a
// name that is declared in the innermost scope but not yet defined.
func (r *resolver) resolveVariableExpr(e *ast.Variable) {
	if len(r.scopes) > 0 {
		if defined, ok := r.scopes[len(r.scopes)-1][e.Name]; ok && !defined {
			r.error(e.NamePos, "cannot read local variable in its own initializer")
		}
	}
	r.resolveLocal(e, e.Name)
}
