/*
File   : golox/internal/lexer/lexer_test.go
Package: lexer
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loxlang/golox/internal/token"
)

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func TestScan_Punctuation(t *testing.T) {
	l := New("(){},.-+;/*")
	got := kinds(l.Scan())
	assert.Empty(t, l.Errors)
	assert.Equal(t, []token.Kind{
		token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace,
		token.Comma, token.Dot, token.Minus, token.Plus, token.Semicolon,
		token.Slash, token.Star, token.EOF,
	}, got)
}

func TestScan_TwoCharOperatorsPreferLonger(t *testing.T) {
	l := New("! != = == > >= < <=")
	got := kinds(l.Scan())
	assert.Empty(t, l.Errors)
	assert.Equal(t, []token.Kind{
		token.Bang, token.BangEqual, token.Equal, token.EqualEqual,
		token.Greater, token.GreaterEqual, token.Less, token.LessEqual, token.EOF,
	}, got)
}

func TestScan_LineCommentSkippedToEndOfLine(t *testing.T) {
	l := New("1 // a comment\n2")
	tokens := l.Scan()
	assert.Empty(t, l.Errors)
	assert.Equal(t, []token.Kind{token.Number, token.Number, token.EOF}, kinds(tokens))
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 2, tokens[1].Line)
}

func TestScan_String(t *testing.T) {
	l := New(`"hello world"`)
	tokens := l.Scan()
	assert.Empty(t, l.Errors)
	assert.Equal(t, token.String, tokens[0].Kind)
	assert.Equal(t, "hello world", tokens[0].Literal)
}

func TestScan_MultilineStringAdvancesLine(t *testing.T) {
	l := New("\"a\nb\" 1")
	tokens := l.Scan()
	assert.Empty(t, l.Errors)
	assert.Equal(t, "a\nb", tokens[0].Literal)
	assert.Equal(t, 2, tokens[1].Line)
}

func TestScan_UnterminatedStringIsError(t *testing.T) {
	l := New(`"unterminated`)
	l.Scan()
	assert.Len(t, l.Errors, 1)
	assert.Contains(t, l.Errors[0].Error(), "Unterminated string")
}

func TestScan_Number(t *testing.T) {
	l := New("123 45.67")
	tokens := l.Scan()
	assert.Empty(t, l.Errors)
	assert.Equal(t, 123.0, tokens[0].Literal)
	assert.Equal(t, 45.67, tokens[1].Literal)
}

func TestScan_TrailingDotNotConsumed(t *testing.T) {
	// `1.` has no digit after the dot, so the dot is not part of the number.
	l := New("1.")
	tokens := l.Scan()
	assert.Empty(t, l.Errors)
	assert.Equal(t, []token.Kind{token.Number, token.Dot, token.EOF}, kinds(tokens))
}

func TestScan_IdentifiersAndKeywords(t *testing.T) {
	l := New("and class foo bar123 _underscore")
	tokens := l.Scan()
	assert.Empty(t, l.Errors)
	assert.Equal(t, []token.Kind{
		token.And, token.Class, token.Identifier, token.Identifier, token.Identifier, token.EOF,
	}, kinds(tokens))
}

func TestScan_UnrecognizedCharacterContinuesLexing(t *testing.T) {
	l := New("1 @ 2")
	tokens := l.Scan()
	assert.Len(t, l.Errors, 1)
	assert.Equal(t, []token.Kind{token.Number, token.Number, token.EOF}, kinds(tokens))
}

func TestScan_WhitespaceAndCarriageReturnSkipped(t *testing.T) {
	l := New("1\r\n2")
	tokens := l.Scan()
	assert.Empty(t, l.Errors)
	assert.Equal(t, 2, tokens[1].Line)
}
