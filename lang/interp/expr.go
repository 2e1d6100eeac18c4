package interp

import (
	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/token"
)

func (interp *Interpreter) eval(expr ast.Expr) (Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil
	case *ast.Grouping:
		return interp.eval(e.Expr)
	case *ast.Unary:
		return interp.evalUnary(e)
	case *ast.Binary:
		return interp.evalBinary(e)
	case *ast.Logical:
		return interp.evalLogical(e)
	case *ast.Variable:
		return interp.lookupVariable(e, e.Name, e.NamePos)
	case *ast.Assign:
		return interp.evalAssign(e)
	case *ast.Call:
		return interp.evalCall(e)
	case *ast.Get:
		return interp.evalGet(e)
	case *ast.Set:
		return interp.evalSet(e)
	case *ast.This:
		return interp.lookupVariable(e, "this", e.Pos)
	case *ast.Super:
		return interp.evalSuper(e)
	default:
		panic("interp: unhandled expression type")
	}
}

// lookupVariable resolves name through the recorded depth for node, or
// falls through to the globals frame when node has no recorded depth
// (meaning the resolver found no enclosing local scope for it).
func (interp *Interpreter) lookupVariable(node ast.Node, name string, pos token.Pos) (Value, error) {
	if depth, ok := interp.depths[node]; ok {
		return interp.environment.getAt(depth, name), nil
	}
	if v, ok := interp.globals.get(name); ok {
		return v, nil
	}
	return nil, runtimeErrorf(pos, "undefined variable %q", name)
}

func (interp *Interpreter) evalUnary(e *ast.Unary) (Value, error) {
	right, err := interp.eval(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op {
	case token.BANG:
		return !isTruthy(right), nil
	case token.MINUS:
		n, ok := right.(float64)
		if !ok {
			return nil, runtimeErrorf(e.OpPos, "operand of unary '-' must be a number")
		}
		return -n, nil
	default:
		panic("interp: unhandled unary operator")
	}
}

func (interp *Interpreter) evalBinary(e *ast.Binary) (Value, error) {
	left, err := interp.eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := interp.eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op {
	case token.EQ_EQ, token.BANG_EQ:
		eq, ok := valuesEqual(left, right)
		if !ok {
			return nil, runtimeErrorf(e.OpPos, "cannot compare %s to %s", typeName(left), typeName(right))
		}
		if e.Op == token.BANG_EQ {
			return !eq, nil
		}
		return eq, nil
	case token.PLUS:
		return interp.evalPlus(e, left, right)
	case token.MINUS, token.STAR, token.SLASH, token.GT, token.GT_EQ, token.LT, token.LT_EQ:
		return interp.evalNumericBinary(e, left, right)
	default:
		panic("interp: unhandled binary operator")
	}
}

func (interp *Interpreter) evalPlus(e *ast.Binary, left, right Value) (Value, error) {
	if l, ok := left.(float64); ok {
		if r, ok := right.(float64); ok {
			return l + r, nil
		}
	}
	if l, ok := left.(string); ok {
		if r, ok := right.(string); ok {
			return l + r, nil
		}
	}
	return nil, runtimeErrorf(e.OpPos, "operands of '+' must both be numbers or both be strings")
}

func (interp *Interpreter) evalNumericBinary(e *ast.Binary, left, right Value) (Value, error) {
	l, lok := left.(float64)
	r, rok := right.(float64)
	if !lok || !rok {
		return nil, runtimeErrorf(e.OpPos, "operands of %s must both be numbers", e.Op.GoString())
	}
	switch e.Op {
	case token.MINUS:
		return l - r, nil
	case token.STAR:
		return l * r, nil
	case token.SLASH:
		return l / r, nil
	case token.GT:
		return l > r, nil
	case token.GT_EQ:
		return l >= r, nil
	case token.LT:
		return l < r, nil
	case token.LT_EQ:
		return l <= r, nil
	default:
		panic("interp: unhandled numeric binary operator")
	}
}

// evalLogical implements "and"/"or" short-circuiting: the right operand
// is only evaluated when the left doesn't already decide the result, and
// the value returned is whichever operand decided it, not a bool.
func (interp *Interpreter) evalLogical(e *ast.Logical) (Value, error) {
	left, err := interp.eval(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Op == token.OR {
		if isTruthy(left) {
			return left, nil
		}
	} else if !isTruthy(left) {
		return left, nil
	}
	return interp.eval(e.Right)
}

func (interp *Interpreter) evalAssign(e *ast.Assign) (Value, error) {
	v, err := interp.eval(e.Value)
	if err != nil {
		return nil, err
	}
	if depth, ok := interp.depths[e]; ok {
		interp.environment.assignAt(depth, e.Name, v)
		return v, nil
	}
	if interp.globals.assign(e.Name, v) {
		return v, nil
	}
	return nil, runtimeErrorf(e.NamePos, "undefined variable %q", e.Name)
}

func (interp *Interpreter) evalCall(e *ast.Call) (Value, error) {
	callee, err := interp.eval(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, len(e.Args))
	for i, a := range e.Args {
		v, err := interp.eval(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, runtimeErrorf(e.Rparen, "cannot call a value of type %s", typeName(callee))
	}
	if len(args) != fn.Arity() {
		return nil, runtimeErrorf(e.Rparen, "expected %d arguments but got %d", fn.Arity(), len(args))
	}
	return fn.Call(interp, args)
}

func (interp *Interpreter) evalGet(e *ast.Get) (Value, error) {
	obj, err := interp.eval(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*Instance)
	if !ok {
		return nil, runtimeErrorf(e.NamePos, "only instances have properties")
	}
	v, ok := instance.get(e.Name)
	if !ok {
		return nil, runtimeErrorf(e.NamePos, "undefined property %q", e.Name)
	}
	return v, nil
}

func (interp *Interpreter) evalSet(e *ast.Set) (Value, error) {
	obj, err := interp.eval(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*Instance)
	if !ok {
		return nil, runtimeErrorf(e.NamePos, "only instances have fields")
	}
	v, err := interp.eval(e.Value)
	if err != nil {
		return nil, err
	}
	instance.set(e.Name, v)
	return v, nil
}

// evalSuper resolves "super.method": super is bound one depth further
// out than the "this" belonging to the same method, by construction of
// the resolver's scope nesting (super's scope strictly encloses this's).
func (interp *Interpreter) evalSuper(e *ast.Super) (Value, error) {
	depth, ok := interp.depths[e]
	if !ok {
		return nil, runtimeErrorf(e.Pos, "cannot use 'super' outside of a class")
	}
	superclass := interp.environment.getAt(depth, "super").(*Class)
	instance := interp.environment.getAt(depth-1, "this").(*Instance)

	method := superclass.findMethod(e.Method)
	if method == nil {
		return nil, runtimeErrorf(e.MethodPos, "undefined property %q", e.Method)
	}
	return method.bind(instance), nil
}
