package parser_test

import (
	"testing"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/parser"
	"github.com/stretchr/testify/require"
)

func TestParseArithmeticPrecedence(t *testing.T) {
	prog, err := parser.Parse([]byte(`print 1 + 2 * 3;`))
	require.NoError(t, err)
	require.Len(t, prog.Stmts, 1)

	pr, ok := prog.Stmts[0].(*ast.Print)
	require.True(t, ok)
	bin, ok := pr.Expr.(*ast.Binary)
	require.True(t, ok)
	_, ok = bin.Left.(*ast.Literal)
	require.True(t, ok, "left of + should be the literal 1")
	_, ok = bin.Right.(*ast.Binary)
	require.True(t, ok, "right of + should be the nested 2 * 3")
}

func TestParseAssignmentDesugaring(t *testing.T) {
	prog, err := parser.Parse([]byte(`x = 1;`))
	require.NoError(t, err)
	exprStmt := prog.Stmts[0].(*ast.Expression)
	_, ok := exprStmt.Expr.(*ast.Assign)
	require.True(t, ok)
}

func TestParseSetDesugaring(t *testing.T) {
	prog, err := parser.Parse([]byte(`obj.field = 1;`))
	require.NoError(t, err)
	exprStmt := prog.Stmts[0].(*ast.Expression)
	set, ok := exprStmt.Expr.(*ast.Set)
	require.True(t, ok)
	require.Equal(t, "field", set.Name)
}

func TestParseInvalidAssignmentTarget(t *testing.T) {
	_, err := parser.Parse([]byte(`1 + 2 = 3;`))
	require.Error(t, err)
}

func TestParseClassWithSuperclass(t *testing.T) {
	src := `class B < A { init() { this.x = 1; } }`
	prog, err := parser.Parse([]byte(src))
	require.NoError(t, err)
	cls, ok := prog.Stmts[0].(*ast.Class)
	require.True(t, ok)
	require.Equal(t, "B", cls.Name)
	require.NotNil(t, cls.Superclass)
	require.Equal(t, "A", cls.Superclass.Name)
	require.Len(t, cls.Methods, 1)
	require.Equal(t, "init", cls.Methods[0].Name)
}

func TestParseForLoop(t *testing.T) {
	src := `for (var i = 0; i < 10; i = i + 1) print i;`
	prog, err := parser.Parse([]byte(src))
	require.NoError(t, err)
	f, ok := prog.Stmts[0].(*ast.For)
	require.True(t, ok)
	require.NotNil(t, f.Init)
	require.NotNil(t, f.Cond)
	require.NotNil(t, f.Post)
}

func TestParseEmptyReturnDesugaring(t *testing.T) {
	src := `fun f() { return; }`
	prog, err := parser.Parse([]byte(src))
	require.NoError(t, err)
	fn := prog.Stmts[0].(*ast.Function)
	ret := fn.Body.Stmts[0].(*ast.Return)
	lit, ok := ret.Value.(*ast.Literal)
	require.True(t, ok)
	require.Nil(t, lit.Value)
}

func TestParseSuperCall(t *testing.T) {
	src := `class B < A { m() { return super.m(); } }`
	prog, err := parser.Parse([]byte(src))
	require.NoError(t, err)
	cls := prog.Stmts[0].(*ast.Class)
	ret := cls.Methods[0].Body.Stmts[0].(*ast.Return)
	call := ret.Value.(*ast.Call)
	_, ok := call.Callee.(*ast.Super)
	require.True(t, ok)
}

func TestParseErrorRecoverySynchronizes(t *testing.T) {
	src := `var x = ; var y = 1; print y;`
	prog, err := parser.Parse([]byte(src))
	require.Error(t, err)
	require.Len(t, prog.Stmts, 2)
}

func TestParseUnterminatedBlock(t *testing.T) {
	_, err := parser.Parse([]byte(`{ print 1;`))
	require.Error(t, err)
}
