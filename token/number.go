package token

import (
	"strconv"
)

// Radix is the base of a numeric literal.
type Radix int

//go:generate go tool stringer -linecomment -type=Radix
const (
	RADIX_NONE    = Radix(0) // none
	RADIX_BINARY  = Radix(1) // binary
	RADIX_DECIMAL = Radix(2) // decimal
	RADIX_HEX     = Radix(3) // hex
)

// Base returns the numeric base, or 0 for RADIX_NONE.
func (radix Radix) Base() int {
	switch radix {
	case RADIX_BINARY:
		return 2
	case RADIX_DECIMAL:
		return 10
	case RADIX_HEX:
		return 16
	default:
		return 0
	}
}

// Classify determines the literal kind of tok from its prefix and returns the
// digits with the prefix removed. Tokens which do not look numeric at all
// return RADIX_NONE. The digits are not validated.
func (cfg Config) Classify(tok string) (radix Radix, digits string) {
	if len(tok) == 0 {
		return RADIX_NONE, tok
	}

	prefixes := []struct {
		key   byte
		radix Radix
	}{
		{key(cfg.Binary), RADIX_BINARY},
		{key(cfg.Decimal), RADIX_DECIMAL},
		{key(cfg.Hex), RADIX_HEX},
	}
	for _, prefix := range prefixes {
		if prefix.key != 0 && !isDigit(prefix.key) && tok[0] == prefix.key {
			return prefix.radix, tok[1:]
		}
	}

	if !isDigit(tok[0]) {
		return RADIX_NONE, tok
	}

	// 0x, 0h, 0b, 0d forms
	if len(tok) > 2 && tok[0] == '0' {
		switch tok[1] {
		case 'x', 'X', 'h', 'H':
			return RADIX_HEX, tok[2:]
		case 'b', 'B':
			return RADIX_BINARY, tok[2:]
		case 'd', 'D':
			return RADIX_DECIMAL, tok[2:]
		}
	}

	return RADIX_DECIMAL, tok
}

// IsNumber reports whether tok is written as a numeric literal.
func (cfg Config) IsNumber(tok string) bool {
	radix, _ := cfg.Classify(tok)
	return radix != RADIX_NONE
}

// ParseNumber parses a numeric literal in any supported radix.
func (cfg Config) ParseNumber(tok string) (value int, err error) {
	radix, digits := cfg.Classify(tok)
	if radix == RADIX_NONE || len(digits) == 0 {
		err = ErrNumber(tok)
		return
	}

	for n := range len(digits) {
		if !validDigit(radix, digits[n]) {
			err = ErrNumber(tok)
			return
		}
	}

	v64, err := strconv.ParseInt(digits, radix.Base(), 64)
	if err != nil {
		err = ErrNumber(tok)
		return
	}

	value = int(v64)
	return
}

func validDigit(radix Radix, c byte) bool {
	switch radix {
	case RADIX_BINARY:
		return c == '0' || c == '1'
	case RADIX_DECIMAL:
		return isDigit(c)
	case RADIX_HEX:
		return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
	}
	return false
}
