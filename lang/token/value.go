package token

// Value combines a token's kind with its source-level payload: the raw
// lexeme, its position, and, for NUMBER and STRING tokens, the already
// parsed literal value.
type Value struct {
	Kind   Kind
	Lexeme string // raw source text of the token
	Pos    Pos

	Number float64 // valid when Kind == NUMBER
	Str    string  // valid when Kind == STRING (the unescaped value)
}
