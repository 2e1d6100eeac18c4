package interp_test

import (
	"bytes"
	"testing"

	"github.com/mna/lox/lang/interp"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/resolver"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, src string) (string, error) {
	t.Helper()
	prog, err := parser.Parse([]byte(src))
	require.NoError(t, err)
	depths, err := resolver.Resolve(prog)
	require.NoError(t, err)

	var buf bytes.Buffer
	it := interp.New(depths, &buf)
	err = it.Interpret(prog)
	return buf.String(), err
}

func TestArithmeticPrecedence(t *testing.T) {
	out, err := run(t, `print 1 + 2 * 3;`)
	require.NoError(t, err)
	require.Equal(t, "7\n", out)
}

func TestClosuresCaptureByReference(t *testing.T) {
	src := `
		fun mk() { var x = 0; fun inc() { x = x + 1; return x; } return inc; }
		var f = mk(); print f(); print f(); print f();
	`
	out, err := run(t, src)
	require.NoError(t, err)
	require.Equal(t, "1\n2\n3\n", out)
}

func TestClassInitAndMethod(t *testing.T) {
	src := `
		class Greeter { init(n) { this.n = n; }
			hi() { return "hi " + this.n; } }
		print Greeter("lox").hi();
	`
	out, err := run(t, src)
	require.NoError(t, err)
	require.Equal(t, "hi lox\n", out)
}

func TestInheritanceAndSuper(t *testing.T) {
	src := `
		class A { speak() { return "A"; } }
		class B < A { speak() { return super.speak() + "B"; } }
		print B().speak();
	`
	out, err := run(t, src)
	require.NoError(t, err)
	require.Equal(t, "AB\n", out)
}

func TestForLoopScoping(t *testing.T) {
	src := `
		var s = 0;
		for (var i = 0; i < 5; i = i + 1) { s = s + i; }
		print s;
	`
	out, err := run(t, src)
	require.NoError(t, err)
	require.Equal(t, "10\n", out)
}

func TestForLoopWithoutConditionNeverRuns(t *testing.T) {
	out, err := run(t, `var n = 1; for (;;) { n = 2; } print n;`)
	require.NoError(t, err)
	require.Equal(t, "1\n", out, "a for loop with no condition must never execute its body")
}

func TestSelfInheritanceIsAStaticError(t *testing.T) {
	prog, err := parser.Parse([]byte(`class Oroboros < Oroboros {}`))
	require.NoError(t, err)
	_, err = resolver.Resolve(prog)
	require.Error(t, err)
	require.Contains(t, err.Error(), "inherit from itself")
}

func TestPrintIsIdempotent(t *testing.T) {
	out, err := run(t, `print 42; print 42;`)
	require.NoError(t, err)
	require.Equal(t, "42\n42\n", out)
}

func TestTruthinessQuirks(t *testing.T) {
	out, err := run(t, `
		if (0) { print "zero is truthy"; } else { print "zero is falsy"; }
		if ("") { print "empty is truthy"; } else { print "empty is falsy"; }
	`)
	require.NoError(t, err)
	require.Equal(t, "zero is falsy\nempty is falsy\n", out)
}

func TestMixedTypeEqualityIsAnError(t *testing.T) {
	_, err := run(t, `print 1 == "1";`)
	require.Error(t, err)
}

func TestUndefinedVariableIsARuntimeError(t *testing.T) {
	_, err := run(t, `print nope;`)
	require.Error(t, err)
}

func TestArityMismatchIsARuntimeError(t *testing.T) {
	_, err := run(t, `fun f(a, b) { return a + b; } f(1);`)
	require.Error(t, err)
}

func TestCallOnNonCallableIsARuntimeError(t *testing.T) {
	_, err := run(t, `var x = 1; x();`)
	require.Error(t, err)
}

func TestGetOnNonInstanceIsARuntimeError(t *testing.T) {
	_, err := run(t, `var x = 1; print x.field;`)
	require.Error(t, err)
}

func TestUndefinedPropertyIsARuntimeError(t *testing.T) {
	_, err := run(t, `class Empty {} print Empty().nope;`)
	require.Error(t, err)
}

func TestSetOnNonInstanceIsARuntimeError(t *testing.T) {
	_, err := run(t, `var x = 1; x.field = 2;`)
	require.Error(t, err)
}

func TestPrintingANonPrintableValueIsARuntimeError(t *testing.T) {
	_, err := run(t, `fun f() {} print f;`)
	require.Error(t, err)
}

func TestSuperclassNotAClassIsARuntimeError(t *testing.T) {
	_, err := run(t, `var NotAClass = 1; class Sub < NotAClass {}`)
	require.Error(t, err)
}

func TestDivergentCaseOfGlobalFunctionRecursion(t *testing.T) {
	src := `
		fun fib(n) { if (n < 2) { return n; } return fib(n - 1) + fib(n - 2); }
		print fib(10);
	`
	out, err := run(t, src)
	require.NoError(t, err)
	require.Equal(t, "55\n", out)
}
