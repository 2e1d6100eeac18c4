package interp

import (
	"fmt"
	"strconv"

	"github.com/dolthub/swiss"

	"github.com/mna/lox/lang/ast"
)

// Value is any value a Lox expression can produce: nil, a bool, a
// float64, a string, or one of the callable/object types below. Go's
// dynamic typing plays the role the host runtime plays in the reference
// implementation; there is no boxed Value wrapper type.
type Value any

// Callable is implemented by every value that can appear as the callee
// of a call expression: user functions, bound methods and classes.
type Callable interface {
	Value
	Arity() int
	Call(interp *Interpreter, args []Value) (Value, error)
	callableName() string
}

// Function is a user-defined function or method, together with the
// closure environment it captured at declaration time and whether it is
// a class initializer.
type Function struct {
	decl          *ast.Function
	closure       *Environment
	isInitializer bool
}

var (
	_ Value    = (*Function)(nil)
	_ Callable = (*Function)(nil)
)

func (f *Function) Arity() int { return len(f.decl.Params) }

func (f *Function) callableName() string {
	if f.decl.Name == "" {
		return "anonymous function"
	}
	return f.decl.Name
}

func (f *Function) String() string { return fmt.Sprintf("<fn %s>", f.callableName()) }

// bind returns a new Function sharing decl and isInitializer but with a
// fresh closure whose parent is f's own closure and that defines "this"
// to instance. This is the "bound method" construction from the method
// lookup / super resolution rules.
func (f *Function) bind(instance *Instance) *Function {
	env := newEnvironment(f.closure)
	env.define("this", instance)
	return &Function{decl: f.decl, closure: env, isInitializer: f.isInitializer}
}

// Class is a Lox class value: a name, an optional superclass, and its
// own (unbound) methods.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

var (
	_ Value    = (*Class)(nil)
	_ Callable = (*Class)(nil)
)

func (c *Class) String() string       { return c.Name }
func (c *Class) callableName() string { return c.Name }
func (c *Class) findMethod(name string) *Function {
	if m, ok := c.Methods[name]; ok {
		return m
	}
	if c.Superclass != nil {
		return c.Superclass.findMethod(name)
	}
	return nil
}

// Arity is the arity of the "init" method found on the class or its
// ancestors, or 0 if none declares one (the default, no-argument
// constructor).
func (c *Class) Arity() int {
	if init := c.findMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

// Call constructs a new Instance and, if the class (or one of its
// ancestors) declares an "init" method, binds and invokes it.
func (c *Class) Call(interp *Interpreter, args []Value) (Value, error) {
	instance := &Instance{class: c, fields: swiss.NewMap[string, Value](4)}
	if init := c.findMethod("init"); init != nil {
		if _, err := init.bind(instance).Call(interp, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// Instance is an instance of a Lox class: a class pointer and a
// swiss-map-backed field table, following the machine package's choice
// of github.com/dolthub/swiss for its Map type.
type Instance struct {
	class  *Class
	fields *swiss.Map[string, Value]
}

var _ Value = (*Instance)(nil)

func (i *Instance) String() string { return i.class.Name + " instance" }

// get resolves a property access: fields shadow methods, and a method
// found on the class is returned bound to this instance.
func (i *Instance) get(name string) (Value, bool) {
	if v, ok := i.fields.Get(name); ok {
		return v, true
	}
	if m := i.class.findMethod(name); m != nil {
		return m.bind(i), true
	}
	return nil, false
}

func (i *Instance) set(name string, v Value) {
	i.fields.Put(name, v)
}

// isTruthy implements the broadened truthiness rule: false, nil, the
// number 0 and the empty string are falsy; everything else is truthy.
func isTruthy(v Value) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0
	case string:
		return x != ""
	default:
		return true
	}
}

// valuesEqual implements == / != . Two numbers, two strings or two
// booleans compare by value; nil compares equal only to nil. Any other
// pairing (a mixed-type comparison) is a caller-reported error via the
// ok return.
func valuesEqual(a, b Value) (equal bool, ok bool) {
	if a == nil || b == nil {
		return a == nil && b == nil, true
	}
	switch x := a.(type) {
	case float64:
		y, isFloat := b.(float64)
		return x == y, isFloat
	case string:
		y, isString := b.(string)
		return x == y, isString
	case bool:
		y, isBool := b.(bool)
		return x == y, isBool
	default:
		return false, false
	}
}

// stringify renders a Value the way "print" does: numbers use Go's
// default float formatting, booleans as true/false, nil as "Nil",
// strings verbatim. It returns !ok for any value "print" rejects.
func stringify(v Value) (s string, ok bool) {
	switch x := v.(type) {
	case nil:
		return "Nil", true
	case bool:
		if x {
			return "true", true
		}
		return "false", true
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), true
	case string:
		return x, true
	default:
		return "", false
	}
}

func typeName(v Value) string {
	switch v.(type) {
	case nil:
		return "nil"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case *Function:
		return "function"
	case *Class:
		return "class"
	case *Instance:
		return "instance"
	default:
		return fmt.Sprintf("%T", v)
	}
}
