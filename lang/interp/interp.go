// Package interp implements the tree-walking evaluator: given a resolved
// AST it executes statements directly, without compiling to bytecode.
package interp

import (
	"fmt"
	"io"
	"os"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/resolver"
)

// Interpreter holds the environment stack and the resolver's scope
// record (Depths) and executes a resolved program statement by
// statement. A single Interpreter is not safe for concurrent use; Lox
// programs run single-threaded and synchronously, per the language's
// concurrency model.
type Interpreter struct {
	globals     *Environment
	environment *Environment
	depths      resolver.Depths
	stdout      io.Writer
}

// New creates an Interpreter that resolves variable references using
// depths and writes "print" output to stdout (os.Stdout if nil).
func New(depths resolver.Depths, stdout io.Writer) *Interpreter {
	if stdout == nil {
		stdout = os.Stdout
	}
	globals := newEnvironment(nil)
	return &Interpreter{globals: globals, environment: globals, depths: depths, stdout: stdout}
}

// Interpret runs prog to completion, or stops and returns the first
// *RuntimeError encountered.
func (interp *Interpreter) Interpret(prog *ast.Program) error {
	for _, stmt := range prog.Stmts {
		if err := interp.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// execute runs a single statement. A "return" statement unwinds out of
// this call (and every enclosing execute/executeBlock call) via panic;
// only Function.Call recovers it.
func (interp *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.Expression:
		_, err := interp.eval(s.Expr)
		return err
	case *ast.Print:
		return interp.executePrint(s)
	case *ast.Var:
		return interp.executeVar(s)
	case *ast.Block:
		return interp.executeBlock(s.Stmts, newEnvironment(interp.environment))
	case *ast.If:
		return interp.executeIf(s)
	case *ast.While:
		return interp.executeWhile(s)
	case *ast.For:
		return interp.executeFor(s)
	case *ast.Function:
		fn := &Function{decl: s, closure: interp.environment}
		interp.environment.define(s.Name, fn)
		return nil
	case *ast.Return:
		v, err := interp.eval(s.Value)
		if err != nil {
			return err
		}
		panic(returnSignal{value: v})
	case *ast.Class:
		return interp.executeClass(s)
	default:
		panic(fmt.Sprintf("interp: unhandled statement type %T", stmt))
	}
}

func (interp *Interpreter) executePrint(s *ast.Print) error {
	v, err := interp.eval(s.Expr)
	if err != nil {
		return err
	}
	str, ok := stringify(v)
	if !ok {
		return runtimeErrorf(s.Pos, "cannot print a value of type %s", typeName(v))
	}
	fmt.Fprintln(interp.stdout, str)
	return nil
}

func (interp *Interpreter) executeVar(s *ast.Var) error {
	var v Value
	if s.Init != nil {
		var err error
		v, err = interp.eval(s.Init)
		if err != nil {
			return err
		}
	}
	interp.environment.define(s.Name, v)
	return nil
}

// executeBlock runs stmts in env, restoring the interpreter's current
// environment on every exit path (including a return unwinding through
// a panic, and an error return).
func (interp *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) error {
	previous := interp.environment
	interp.environment = env
	defer func() { interp.environment = previous }()

	for _, stmt := range stmts {
		if err := interp.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (interp *Interpreter) executeIf(s *ast.If) error {
	cond, err := interp.eval(s.Cond)
	if err != nil {
		return err
	}
	if isTruthy(cond) {
		return interp.execute(s.Then)
	}
	if s.Else != nil {
		return interp.execute(s.Else)
	}
	return nil
}

func (interp *Interpreter) executeWhile(s *ast.While) error {
	for {
		cond, err := interp.eval(s.Cond)
		if err != nil {
			return err
		}
		if !isTruthy(cond) {
			return nil
		}
		if err := interp.execute(s.Body); err != nil {
			return err
		}
	}
}

// executeFor runs the 3-clause C-style loop inside its own frame, so an
// init clause's "var" is visible to the condition, post expression and
// body. A missing condition makes the loop never run, per the reference
// implementation; this is a deliberate divergence from most languages'
// "missing condition means always true" convention.
func (interp *Interpreter) executeFor(s *ast.For) error {
	previous := interp.environment
	interp.environment = newEnvironment(previous)
	defer func() { interp.environment = previous }()

	if s.Init != nil {
		if err := interp.execute(s.Init); err != nil {
			return err
		}
	}
	for {
		if s.Cond == nil {
			return nil
		}
		cond, err := interp.eval(s.Cond)
		if err != nil {
			return err
		}
		if !isTruthy(cond) {
			return nil
		}
		if err := interp.execute(s.Body); err != nil {
			return err
		}
		if s.Post != nil {
			if _, err := interp.eval(s.Post); err != nil {
				return err
			}
		}
	}
}

func (interp *Interpreter) executeClass(s *ast.Class) error {
	var superclass *Class
	if s.Superclass != nil {
		v, err := interp.eval(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*Class)
		if !ok {
			return runtimeErrorf(s.Superclass.NamePos, "superclass %q is not a class", s.Superclass.Name)
		}
		superclass = sc
	}

	interp.environment.define(s.Name, nil)

	env := interp.environment
	if superclass != nil {
		env = newEnvironment(interp.environment)
		env.define("super", superclass)
	}

	methods := make(map[string]*Function, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name] = &Function{decl: m, closure: env, isInitializer: m.Name == "init"}
	}

	class := &Class{Name: s.Name, Superclass: superclass, Methods: methods}
	interp.environment.assign(s.Name, class)
	return nil
}

// Call implements the function-call machinery: arity check, a fresh
// frame whose parent is the function's captured closure (not the
// caller's current frame - the rule that makes closures work), parameter
// binding, body execution and return-value extraction.
func (f *Function) Call(interp *Interpreter, args []Value) (value Value, err error) {
	if len(args) != f.Arity() {
		return nil, runtimeErrorf(f.decl.NamePos, "expected %d arguments but got %d", f.Arity(), len(args))
	}

	env := newEnvironment(f.closure)
	for i, p := range f.decl.Params {
		env.define(p.Name, args[i])
	}

	defer func() {
		if r := recover(); r != nil {
			sig, ok := r.(returnSignal)
			if !ok {
				panic(r)
			}
			if f.isInitializer {
				value = f.closure.getAt(0, "this")
			} else {
				value = sig.value
			}
			err = nil
		}
	}()

	if execErr := interp.executeBlock(f.decl.Body.Stmts, env); execErr != nil {
		return nil, execErr
	}
	if f.isInitializer {
		return f.closure.getAt(0, "this"), nil
	}
	return nil, nil
}
