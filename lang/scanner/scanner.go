// Some of the scanner package is adapted from the Go source code:
// https://cs.opensource.google/go/go/+/refs/tags/go1.22.1:src/go/scanner/scanner.go
//
// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scanner

import (
	"fmt"
	gotoken "go/scanner"
	gotok "go/token"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mna/lox/lang/token"
)

type (
	// Error is a single scan, parse or resolve error, with its source
	// position and message.
	Error = gotoken.Error
	// ErrorList accumulates Errors, can be sorted by position and
	// formatted as a single error.
	ErrorList = gotoken.ErrorList
)

// TokenAndValue combines the token kind with its value for a single
// scanned token.
type TokenAndValue struct {
	Kind  token.Kind
	Value token.Value
}

// ScanAll tokenizes src in full and returns every token (including the
// trailing EOF), along with any lex errors collected along the way.
func ScanAll(src []byte) ([]TokenAndValue, error) {
	var (
		s      Scanner
		tokVal token.Value
		el     ErrorList
	)

	s.Init(src, func(pos gotok.Position, msg string) {
		el.Add(pos, msg)
	})

	var out []TokenAndValue
	for {
		kind := s.Scan(&tokVal)
		out = append(out, TokenAndValue{Kind: kind, Value: tokVal})
		if kind == token.EOF {
			break
		}
	}
	el.Sort()
	return out, el.Err()
}

// Scanner tokenizes Lox source for the parser to consume.
type Scanner struct {
	// immutable state after Init
	src []byte
	err func(pos gotok.Position, msg string)

	// mutable scanning state
	sb   strings.Builder // writes to Builder never fail, so errors are ignored
	cur  rune            // current character
	off  int             // byte offset of cur
	roff int             // reading offset in bytes (position after cur)
	line int             // 1-based line of cur
	col  int             // 1-based column of cur
}

// Init initializes the scanner to tokenize src, reporting errors (if any)
// through errHandler.
func (s *Scanner) Init(src []byte, errHandler func(gotok.Position, string)) {
	s.src = src
	s.err = errHandler

	s.sb.Reset()
	s.cur = ' '
	s.off = 0
	s.roff = 0
	s.line = 1
	s.col = 0

	s.advance()
}

// peek returns the byte following the most recently read character
// without advancing the scanner. If the scanner is at EOF, peek returns
// 0.
func (s *Scanner) peek() byte {
	if s.roff < len(s.src) {
		return s.src[s.roff]
	}
	return 0
}

// advance reads the next Unicode char into s.cur; s.cur < 0 means
// end-of-file.
func (s *Scanner) advance() {
	if s.cur == '\n' {
		s.line++
		s.col = 0
	}

	if s.roff >= len(s.src) {
		s.off = len(s.src)
		s.cur = -1
		s.col++
		return
	}

	s.off = s.roff
	r, w := rune(s.src[s.roff]), 1
	if r >= utf8.RuneSelf {
		r, w = utf8.DecodeRune(s.src[s.roff:])
		if r == utf8.RuneError && w == 1 {
			s.error("illegal UTF-8 encoding")
		}
	}
	s.roff += w
	s.cur = r
	s.col++
}

func (s *Scanner) pos() token.Pos {
	return token.MakePos(s.line, s.col)
}

func (s *Scanner) error(msg string) {
	if s.err != nil {
		s.err(gotok.Position{Line: s.line, Column: s.col}, msg)
	}
}

func (s *Scanner) errorf(format string, args ...any) {
	s.error(fmt.Sprintf(format, args...))
}

// advanceIf advances and returns true if the current char is b, otherwise
// it leaves the scanner untouched and returns false.
func (s *Scanner) advanceIf(b byte) bool {
	if s.cur == rune(b) {
		s.advance()
		return true
	}
	return false
}

// Scan returns the kind of the next token in the source and fills in
// tokVal with its value.
func (s *Scanner) Scan(tokVal *token.Value) token.Kind {
	s.skipWhitespace()

	pos := s.pos()

	switch cur := s.cur; {
	case isLetter(cur):
		lit := s.ident()
		kind := token.LookupKeyword(lit)
		*tokVal = token.Value{Kind: kind, Lexeme: lit, Pos: pos}
		return kind

	case isDigit(cur):
		lit := s.number()
		n, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			s.errorf("invalid number literal %q", lit)
		}
		*tokVal = token.Value{Kind: token.NUMBER, Lexeme: lit, Pos: pos, Number: n}
		return token.NUMBER

	case cur == '"' || cur == '\'':
		s.advance()
		lit, str := s.shortString(byte(cur))
		*tokVal = token.Value{Kind: token.STRING, Lexeme: lit, Pos: pos, Str: str}
		return token.STRING
	}

	cur0 := s.cur
	s.advance() // always make progress
	var kind token.Kind
	switch cur := cur0; cur {
	case '(':
		kind = token.LPAREN
	case ')':
		kind = token.RPAREN
	case '{':
		kind = token.LBRACE
	case '}':
		kind = token.RBRACE
	case ',':
		kind = token.COMMA
	case '.':
		kind = token.DOT
	case '-':
		kind = token.MINUS
	case '+':
		kind = token.PLUS
	case ';':
		kind = token.SEMI
	case '*':
		kind = token.STAR

	case '/':
		if s.advanceIf('/') {
			s.skipLineComment()
			return s.Scan(tokVal)
		}
		kind = token.SLASH

	case '!':
		kind = token.BANG
		if s.advanceIf('=') {
			kind = token.BANG_EQ
		}
	case '=':
		kind = token.EQ
		if s.advanceIf('=') {
			kind = token.EQ_EQ
		}
	case '<':
		kind = token.LT
		if s.advanceIf('=') {
			kind = token.LT_EQ
		}
	case '>':
		kind = token.GT
		if s.advanceIf('=') {
			kind = token.GT_EQ
		}

	case -1:
		kind = token.EOF

	default:
		s.errorf("unexpected character %#U", cur)
		kind = token.ILLEGAL
	}

	lex := kind.String()
	if kind == token.ILLEGAL {
		lex = string(cur0)
	}
	*tokVal = token.Value{Kind: kind, Lexeme: lex, Pos: pos}
	return kind
}

func (s *Scanner) ident() string {
	start := s.off
	for isLetter(s.cur) || isDigit(s.cur) {
		s.advance()
	}
	return string(s.src[start:s.off])
}

// number scans a NUMBER literal: digits, optionally followed by a '.'
// that must be followed by at least one digit.
func (s *Scanner) number() string {
	start := s.off
	for isDigit(s.cur) {
		s.advance()
	}
	if s.cur == '.' && isDigit(rune(s.peek())) {
		s.advance() // consume '.'
		for isDigit(s.cur) {
			s.advance()
		}
	}
	return string(s.src[start:s.off])
}

// shortString scans the body of a string literal delimited by quote
// (either `"` or `'`, already consumed); the terminating delimiter must
// match. Line breaks are permitted inside the literal and increment the
// line counter via advance.
func (s *Scanner) shortString(quote byte) (lit, val string) {
	start := s.off - 1 // include the opening quote already consumed
	s.sb.Reset()
	for {
		if s.cur == rune(quote) {
			s.advance()
			break
		}
		if s.cur == -1 {
			s.error("unterminated string")
			break
		}
		s.sb.WriteRune(s.cur)
		s.advance()
	}
	return string(s.src[start:s.off]), s.sb.String()
}

func (s *Scanner) skipLineComment() {
	for s.cur != '\n' && s.cur != -1 {
		s.advance()
	}
}

func (s *Scanner) skipWhitespace() {
	for isWhitespace(s.cur) {
		s.advance()
	}
}

func isWhitespace(rn rune) bool {
	return rn == ' ' || rn == '\t' || rn == '\r' || rn == '\n'
}

// isLetter reports whether rn can start or continue an identifier: ASCII
// letters, underscore, a CJK unified ideograph (U+4E00-U+9FA5), to allow
// the localized keyword set, or any other non-ASCII Unicode letter.
func isLetter(rn rune) bool {
	return 'a' <= rn && rn <= 'z' ||
		'A' <= rn && rn <= 'Z' ||
		rn == '_' ||
		(rn >= 0x4E00 && rn <= 0x9FA5) ||
		(rn >= utf8.RuneSelf && unicode.IsLetter(rn))
}

func isDigit(rn rune) bool {
	return '0' <= rn && rn <= '9'
}
