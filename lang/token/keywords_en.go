//go:build !localized

package token

// keywords maps source-text keywords to their Kind. This is the default,
// English keyword table; build with the "localized" tag to select the
// Chinese table in keywords_zh.go instead. Exactly one table is compiled
// into a given binary.
var keywords = map[string]Kind{
	"and":    AND,
	"class":  CLASS,
	"else":   ELSE,
	"false":  FALSE,
	"fun":    FUN,
	"for":    FOR,
	"if":     IF,
	"nil":    NIL,
	"or":     OR,
	"print":  PRINT,
	"return": RETURN,
	"super":  SUPER,
	"this":   THIS,
	"true":   TRUE,
	"var":    VAR,
	"while":  WHILE,
}
