package ast_test

import (
	"fmt"
	"testing"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/token"
	"github.com/stretchr/testify/require"
)

func TestWalkVisitsChildren(t *testing.T) {
	prog := &ast.Program{
		Stmts: []ast.Stmt{
			&ast.Print{
				Expr: &ast.Binary{
					Left:  &ast.Literal{Value: 1.0},
					Op:    token.PLUS,
					Right: &ast.Literal{Value: 2.0},
				},
			},
		},
	}

	var visited []ast.Node
	ast.Walk(ast.VisitorFunc(func(n ast.Node, dir ast.VisitDirection) ast.Visitor {
		if dir == ast.VisitEnter {
			visited = append(visited, n)
		}
		return ast.VisitorFunc(func(n ast.Node, dir ast.VisitDirection) ast.Visitor {
			if dir == ast.VisitEnter {
				visited = append(visited, n)
			}
			return nil
		})
	}), prog)

	require.Len(t, visited, 2)
	require.Equal(t, prog, visited[0])
}

func TestFormatLiteral(t *testing.T) {
	lit := &ast.Literal{Value: 42.0}
	require.Equal(t, "literal 42", fmt.Sprintf("%v", lit))
}

func TestFormatBinary(t *testing.T) {
	b := &ast.Binary{
		Left:  &ast.Literal{Value: 1.0},
		Op:    token.PLUS,
		Right: &ast.Literal{Value: 2.0},
	}
	require.Contains(t, fmt.Sprintf("%v", b), "binary")
}

func TestVariableIdentity(t *testing.T) {
	v1 := &ast.Variable{Name: "x"}
	v2 := &ast.Variable{Name: "x"}
	require.NotSame(t, v1, v2)
	m := map[ast.Node]int{v1: 0}
	_, ok := m[v2]
	require.False(t, ok, "distinct occurrences of the same name must not collide as map keys")
	_, ok = m[v1]
	require.True(t, ok)
}
