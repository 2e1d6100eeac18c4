package interp

import (
	"fmt"

	"github.com/mna/lox/lang/token"
)

// RuntimeError is a single runtime failure: a type mismatch, an arity
// mismatch, a call on a non-callable value, a property access/set on a
// non-instance, an undefined variable or property, a non-printable value
// passed to print, or a non-class superclass value. Interpretation stops
// at the first one.
type RuntimeError struct {
	Pos token.Pos
	Msg string
}

func (e *RuntimeError) Error() string {
	line, col := e.Pos.LineCol()
	return fmt.Sprintf("%s in line %d column %d", e.Msg, line, col)
}

func runtimeErrorf(pos token.Pos, format string, args ...any) *RuntimeError {
	return &RuntimeError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// returnSignal unwinds the Go call stack from the point of a "return"
// statement to the enclosing Function.Call, carrying the returned value.
// A single mutable "return slot" on the interpreter would be overwritten
// by a return from a function called while evaluating the current
// return's own value expression (e.g. "return f();"); panicking with a
// per-call value instead threads the result out precisely to the call
// that is waiting for it, matching the reference semantics without the
// shared-mutable-state hazard.
type returnSignal struct {
	value Value
}
