package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	for k := Kind(0); k < maxKind; k++ {
		require.NotEmpty(t, k.String(), "missing string representation of kind %d", k)
	}
}

func TestKindGoString(t *testing.T) {
	require.Equal(t, "identifier", IDENT.GoString())
	require.Equal(t, "'('", LPAREN.GoString())
	require.Equal(t, "'class'", CLASS.GoString())
}

func TestLookupKeyword(t *testing.T) {
	for lit, k := range keywords {
		require.Equal(t, k, LookupKeyword(lit))
	}
	require.Equal(t, IDENT, LookupKeyword("notAKeyword"))
	require.Equal(t, IDENT, LookupKeyword(""))
}

func TestIsUnop(t *testing.T) {
	require.True(t, BANG.IsUnop())
	require.True(t, MINUS.IsUnop())
	require.False(t, PLUS.IsUnop())
	require.False(t, IDENT.IsUnop())
}

func TestIsBinop(t *testing.T) {
	binops := []Kind{OR, AND, EQ_EQ, BANG_EQ, LT, LT_EQ, GT, GT_EQ, PLUS, MINUS, STAR, SLASH}
	for _, k := range binops {
		require.True(t, k.IsBinop(), "%s should be a binop", k)
	}
	nonBinops := []Kind{BANG, EQ, LPAREN, RPAREN, IDENT, NUMBER, STRING}
	for _, k := range nonBinops {
		require.False(t, k.IsBinop(), "%s should not be a binop", k)
	}
}
