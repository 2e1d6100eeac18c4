package scanner_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mna/lox/internal/filetest"
	"github.com/mna/lox/lang/scanner"
	"github.com/mna/lox/lang/token"
	"github.com/stretchr/testify/require"
)

func kinds(toks []scanner.TokenAndValue) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tv := range toks {
		out[i] = tv.Kind
	}
	return out
}

func TestScanPunctAndOperators(t *testing.T) {
	toks, err := scanner.ScanAll([]byte(`(){},.-+;*/ ! != = == < <= > >=`))
	require.NoError(t, err)
	require.Equal(t, []token.Kind{
		token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE, token.COMMA,
		token.DOT, token.MINUS, token.PLUS, token.SEMI, token.STAR, token.SLASH,
		token.BANG, token.BANG_EQ, token.EQ, token.EQ_EQ,
		token.LT, token.LT_EQ, token.GT, token.GT_EQ,
		token.EOF,
	}, kinds(toks))
}

func TestScanNumbers(t *testing.T) {
	toks, err := scanner.ScanAll([]byte(`123 45.67`))
	require.NoError(t, err)
	require.Len(t, toks, 3)
	require.Equal(t, token.NUMBER, toks[0].Kind)
	require.Equal(t, float64(123), toks[0].Value.Number)
	require.Equal(t, token.NUMBER, toks[1].Kind)
	require.Equal(t, 45.67, toks[1].Value.Number)
	require.Equal(t, token.EOF, toks[2].Kind)
}

func TestScanStrings(t *testing.T) {
	toks, err := scanner.ScanAll([]byte(`"hello" 'world'`))
	require.NoError(t, err)
	require.Len(t, toks, 3)
	require.Equal(t, token.STRING, toks[0].Kind)
	require.Equal(t, "hello", toks[0].Value.Str)
	require.Equal(t, token.STRING, toks[1].Kind)
	require.Equal(t, "world", toks[1].Value.Str)
}

func TestScanMultilineString(t *testing.T) {
	toks, err := scanner.ScanAll([]byte("\"line1\nline2\" var"))
	require.NoError(t, err)
	require.Equal(t, "line1\nline2", toks[0].Value.Str)
	_, col := toks[1].Value.Pos.LineCol()
	require.Equal(t, 8, col)
	line, _ := toks[1].Value.Pos.LineCol()
	require.Equal(t, 2, line)
}

func TestScanUnterminatedString(t *testing.T) {
	_, err := scanner.ScanAll([]byte(`"unterminated`))
	require.Error(t, err)
}

func TestScanKeywordsAndIdents(t *testing.T) {
	toks, err := scanner.ScanAll([]byte(`and class foo`))
	require.NoError(t, err)
	require.Equal(t, []token.Kind{token.AND, token.CLASS, token.IDENT, token.EOF}, kinds(toks))
}

func TestScanLineComment(t *testing.T) {
	toks, err := scanner.ScanAll([]byte("var x; // a comment\nvar y;"))
	require.NoError(t, err)
	require.Equal(t, []token.Kind{
		token.VAR, token.IDENT, token.SEMI,
		token.VAR, token.IDENT, token.SEMI,
		token.EOF,
	}, kinds(toks))
}

func TestScanIllegalCharacter(t *testing.T) {
	_, err := scanner.ScanAll([]byte(`@`))
	require.Error(t, err)
}

func TestScanEmptySource(t *testing.T) {
	toks, err := scanner.ScanAll(nil)
	require.NoError(t, err)
	require.Equal(t, []token.Kind{token.EOF}, kinds(toks))
}

// TestScanTestdataPrograms scans every fixture under testdata/, a small
// corpus of realistic Lox programs (arithmetic, closures, classes,
// control flow). Each one must scan cleanly end to end, and the last
// token produced must always be EOF.
func TestScanTestdataPrograms(t *testing.T) {
	for _, fi := range filetest.SourceFiles(t, "testdata", ".lox") {
		fi := fi
		t.Run(fi.Name(), func(t *testing.T) {
			src, err := os.ReadFile(filepath.Join("testdata", fi.Name()))
			require.NoError(t, err)

			toks, err := scanner.ScanAll(src)
			require.NoError(t, err)
			require.NotEmpty(t, toks)
			require.Equal(t, token.EOF, toks[len(toks)-1].Kind)
		})
	}
}
