package token

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Line is the unparsed remainder of one source line. Each extraction
// consumes text from the front.
type Line struct {
	text string
}

// NewLine wraps text for tokenizing.
func NewLine(text string) Line {
	return Line{text: text}
}

// Rest returns the unconsumed text.
func (ln *Line) Rest() string {
	return ln.text
}

// Empty reports whether only whitespace remains.
func (ln *Line) Empty() bool {
	return len(strings.TrimSpace(ln.text)) == 0
}

// Next extracts the next whitespace delimited token.
func (ln *Line) Next() (tok string, ok bool) {
	ln.text = strings.TrimLeftFunc(ln.text, unicode.IsSpace)
	if len(ln.text) == 0 {
		return
	}

	end := strings.IndexFunc(ln.text, unicode.IsSpace)
	if end < 0 {
		tok, ln.text = ln.text, ""
		return tok, true
	}

	tok, ln.text = ln.text[:end], ln.text[end:]
	return tok, true
}

func isSpaceOrComma(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}

// NextWsOrComma extracts the next token delimited by whitespace or a comma.
// The delimiter is consumed, and separators left over from a previous token
// are skipped, so "a , b,c" yields "a", "b", "c".
func (ln *Line) NextWsOrComma() (tok string, ok bool) {
	ln.text = strings.TrimLeftFunc(ln.text, isSpaceOrComma)
	if len(ln.text) == 0 {
		return
	}

	end := strings.IndexFunc(ln.text, isSpaceOrComma)
	if end < 0 {
		tok, ln.text = ln.text, ""
		return tok, true
	}

	_, size := utf8.DecodeRuneInString(ln.text[end:])
	tok, ln.text = ln.text[:end], ln.text[end+size:]
	return tok, true
}

// NextQuoted extracts a double-quoted string, which may contain whitespace.
// On failure (no opening quote, or no closing quote) nothing is consumed.
func (ln *Line) NextQuoted() (str string, ok bool) {
	text := strings.TrimLeftFunc(ln.text, unicode.IsSpace)
	if len(text) == 0 || text[0] != '"' {
		return
	}

	end := strings.IndexByte(text[1:], '"')
	if end < 0 {
		return
	}

	str = text[1 : 1+end]
	ln.text = text[2+end:]
	return str, true
}

// Tokens drains the line with NextWsOrComma.
func (ln *Line) Tokens() (toks []string) {
	for tok, ok := ln.NextWsOrComma(); ok; tok, ok = ln.NextWsOrComma() {
		toks = append(toks, tok)
	}
	return
}
