package token

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
)

func TestLine_Next(t *testing.T) {
	assert := assert.New(t)

	ln := NewLine("  register 8\tA, B")

	tok, ok := ln.Next()
	assert.True(ok)
	assert.Equal("register", tok)

	tok, ok = ln.Next()
	assert.True(ok)
	assert.Equal("8", tok)

	tok, ok = ln.Next()
	assert.True(ok)
	assert.Equal("A,", tok)

	tok, ok = ln.Next()
	assert.True(ok)
	assert.Equal("B", tok)

	_, ok = ln.Next()
	assert.False(ok)
	assert.True(ln.Empty())
}

func TestLine_NextWsOrComma(t *testing.T) {
	assert := assert.New(t)

	ln := NewLine("a,b , c  ,d,")
	assert.Equal([]string{"a", "b", "c", "d"}, ln.Tokens())

	ln = NewLine("")
	_, ok := ln.NextWsOrComma()
	assert.False(ok)

	ln = NewLine("x1: A | B")
	assert.Equal([]string{"x1:", "A", "|", "B"}, ln.Tokens())

	ln = NewLine("A\u00a0B\u2003C")
	tok, ok := ln.NextWsOrComma()
	assert.True(ok)
	assert.Equal("A", tok)
	assert.Equal("B\u2003C", ln.Rest())
	assert.Equal([]string{"B", "C"}, ln.Tokens())
}

func TestLine_NextQuoted(t *testing.T) {
	assert := assert.New(t)

	ln := NewLine(` "sub dir/file.arch"  `)
	str, ok := ln.NextQuoted()
	assert.True(ok)
	assert.Equal("sub dir/file.arch", str)
	assert.True(ln.Empty())

	ln = NewLine(`"a" trailing`)
	str, ok = ln.NextQuoted()
	assert.True(ok)
	assert.Equal("a", str)
	assert.False(ln.Empty())

	ln = NewLine(`"unterminated`)
	_, ok = ln.NextQuoted()
	assert.False(ok)
	assert.Equal(`"unterminated`, ln.Rest())

	ln = NewLine(`bare`)
	_, ok = ln.NextQuoted()
	assert.False(ok)
}

func TestConfig_StripComment(t *testing.T) {
	assert := assert.New(t)

	cfg := DefaultConfig()
	assert.Equal("flag Z ", cfg.StripComment("flag Z ; zero"))
	assert.Equal("flag Z", cfg.StripComment("flag Z"))

	cfg.Comment = ""
	assert.Equal("flag Z ; zero", cfg.StripComment("flag Z ; zero"))
}

func TestConfig_StripIndirect(t *testing.T) {
	assert := assert.New(t)

	cfg := DefaultConfig()

	inner, ok := cfg.StripIndirect("[R1]")
	assert.True(ok)
	assert.Equal("R1", inner)

	inner, ok = cfg.StripIndirect("[#]")
	assert.True(ok)
	assert.Equal("#", inner)

	inner, ok = cfg.StripIndirect("R1")
	assert.False(ok)
	assert.Equal("R1", inner)

	_, ok = cfg.StripIndirect("[")
	assert.False(ok)
}

func TestConfig_Classify(t *testing.T) {
	assert := assert.New(t)

	cfg := DefaultConfig()

	tests := []struct {
		tok    string
		radix  Radix
		digits string
	}{
		{"%1010", RADIX_BINARY, "1010"},
		{"$ff", RADIX_HEX, "ff"},
		{"42", RADIX_DECIMAL, "42"},
		{"0x10", RADIX_HEX, "10"},
		{"0h1F", RADIX_HEX, "1F"},
		{"0b0110", RADIX_BINARY, "0110"},
		{"0d99", RADIX_DECIMAL, "99"},
		{"0", RADIX_DECIMAL, "0"},
		{"A", RADIX_NONE, "A"},
		{"_B", RADIX_NONE, "_B"},
		{"", RADIX_NONE, ""},
	}

	for _, test := range tests {
		radix, digits := cfg.Classify(test.tok)
		assert.Equal(test.radix, radix, test.tok)
		assert.Equal(test.digits, digits, test.tok)
	}
}

func TestConfig_ParseNumber(t *testing.T) {
	assert := assert.New(t)

	cfg := DefaultConfig()

	good := map[string]int{
		"%1010":  10,
		"$FF":    255,
		"0x10":   16,
		"0b0110": 6,
		"0d12":   12,
		"1234":   1234,
	}
	for tok, expected := range good {
		value, err := cfg.ParseNumber(tok)
		assert.NoError(err, tok)
		assert.Equal(expected, value, tok)
	}

	for _, tok := range []string{"%102", "$G1", "12a", "0x", "%", "Z"} {
		_, err := cfg.ParseNumber(tok)
		var errNumber ErrNumber
		assert.True(errors.As(err, &errNumber), tok)
		assert.Equal(ErrNumber(tok), errNumber)
	}
}

func TestConfig_DisabledPrefix(t *testing.T) {
	assert := assert.New(t)

	cfg := DefaultConfig()
	cfg.Hex = " "

	assert.False(cfg.IsNumber("$FF"))
	assert.True(cfg.IsNumber("0xFF"))

	cfg.Decimal = "#"
	value, err := cfg.ParseNumber("#15")
	assert.NoError(err)
	assert.Equal(15, value)
}

func TestConfig_IsCommand(t *testing.T) {
	assert := assert.New(t)

	cfg := DefaultConfig()

	assert.True(cfg.IsCommand("opcode_alias"))
	assert.True(cfg.IsCommand("seq"))
	assert.False(cfg.IsCommand("___"))
	assert.False(cfg.IsCommand("9lives"))
	assert.False(cfg.IsCommand(".include"))
	assert.False(cfg.IsCommand(""))
}

func TestConfig_IsDirective(t *testing.T) {
	assert := assert.New(t)

	cfg := DefaultConfig()

	assert.True(cfg.IsDirective(".include"))
	assert.Equal("include", cfg.StripDirective(".include"))
	assert.False(cfg.IsDirective("."))
	assert.False(cfg.IsDirective("include"))
	assert.False(cfg.IsDirective(".in-clude"))
}

func TestLoadConfig(t *testing.T) {
	assert := assert.New(t)

	fsys := fstest.MapFS{
		"syntax.toml": &fstest.MapFile{Data: []byte("hex = \"&\"\ncomment = \"#\"\n")},
		"bad.toml":    &fstest.MapFile{Data: []byte("hex = \"0x\"\n")},
	}

	cfg, err := LoadConfig(fsys, "syntax.toml")
	assert.NoError(err)
	assert.Equal("&", cfg.Hex)
	assert.Equal("#", cfg.Comment)
	assert.Equal("%", cfg.Binary)

	value, err := cfg.ParseNumber("&1f")
	assert.NoError(err)
	assert.Equal(31, value)

	_, err = LoadConfig(fsys, "bad.toml")
	assert.Equal(ErrConfigKey("hex"), err)

	_, err = LoadConfig(fsys, "missing.toml")
	assert.Error(err)
}

func TestRadix_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("hex", RADIX_HEX.String())
	assert.Equal("Radix(9)", Radix(9).String())
	assert.Equal(16, RADIX_HEX.Base())
	assert.Equal(0, RADIX_NONE.Base())
}
