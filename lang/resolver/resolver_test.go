package resolver_test

import (
	"testing"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/resolver"
	"github.com/stretchr/testify/require"
)

func resolveSrc(t *testing.T, src string) (*ast.Program, resolver.Depths, error) {
	t.Helper()
	prog, err := parser.Parse([]byte(src))
	require.NoError(t, err)
	depths, err := resolver.Resolve(prog)
	return prog, depths, err
}

func TestResolveGlobalNotRecorded(t *testing.T) {
	_, depths, err := resolveSrc(t, `var x = 1; print x;`)
	require.NoError(t, err)
	require.Empty(t, depths)
}

func TestResolveClosureDepth(t *testing.T) {
	_, depths, err := resolveSrc(t, `
		{
			var a = 1;
			{
				print a;
			}
		}
	`)
	require.NoError(t, err)
	require.Len(t, depths, 1)
	for _, d := range depths {
		require.Equal(t, 1, d)
	}
}

func TestResolveOwnInitializerError(t *testing.T) {
	_, _, err := resolveSrc(t, `{ var a = a; }`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "own initializer")
}

func TestResolveReturnAtTopLevel(t *testing.T) {
	_, _, err := resolveSrc(t, `return 1;`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "top-level")
}

func TestResolveReturnValueFromInitializer(t *testing.T) {
	src := `class A { init() { return 1; } }`
	_, _, err := resolveSrc(t, src)
	require.Error(t, err)
	require.Contains(t, err.Error(), "initializer")
}

func TestResolveEmptyReturnAllowedInInitializer(t *testing.T) {
	src := `class A { init() { return; } }`
	_, _, err := resolveSrc(t, src)
	require.NoError(t, err)
}

func TestResolveThisOutsideClass(t *testing.T) {
	_, _, err := resolveSrc(t, `print this;`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "this")
}

func TestResolveSuperWithoutSuperclass(t *testing.T) {
	src := `class A { m() { return super.m(); } }`
	_, _, err := resolveSrc(t, src)
	require.Error(t, err)
	require.Contains(t, err.Error(), "superclass")
}

func TestResolveSelfInheritance(t *testing.T) {
	src := `class A < A { }`
	_, _, err := resolveSrc(t, src)
	require.Error(t, err)
	require.Contains(t, err.Error(), "inherit from itself")
}

func TestResolveValidInheritance(t *testing.T) {
	src := `
		class A { speak() { return "A"; } }
		class B < A { speak() { return super.speak() + "B"; } }
	`
	_, depths, err := resolveSrc(t, src)
	require.NoError(t, err)
	require.NotEmpty(t, depths)
}

func TestResolveForLoopSharedScope(t *testing.T) {
	src := `for (var i = 0; i < 10; i = i + 1) print i;`
	_, depths, err := resolveSrc(t, src)
	require.NoError(t, err)
	require.Len(t, depths, 4) // i (cond), i and the assign itself (post), i (body)
}
