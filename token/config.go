package token

import (
	"io/fs"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"
)

// Config holds the one-character syntax keys. An empty or blank key disables
// the feature it controls.
type Config struct {
	Binary        string `toml:"binary"`         // Binary literal prefix.
	Decimal       string `toml:"decimal"`        // Decimal literal prefix.
	Hex           string `toml:"hex"`            // Hexadecimal literal prefix.
	Comment       string `toml:"comment"`        // Comment to end of line.
	Directive     string `toml:"directive"`      // Directive prefix.
	IndirectBegin string `toml:"indirect_begin"` // Opens a dereferenced operand.
	IndirectEnd   string `toml:"indirect_end"`   // Closes a dereferenced operand.
}

// DefaultConfig returns the stock syntax: %binary, $hex, plain decimal,
// ';' comments, '.' directives and [indirect] operands.
func DefaultConfig() Config {
	return Config{
		Binary:        "%",
		Decimal:       " ",
		Hex:           "$",
		Comment:       ";",
		Directive:     ".",
		IndirectBegin: "[",
		IndirectEnd:   "]",
	}
}

// LoadConfig reads a TOML syntax file. Keys missing from the file keep their
// DefaultConfig value.
func LoadConfig(fsys fs.FS, name string) (cfg Config, err error) {
	cfg = DefaultConfig()

	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return
	}

	err = toml.Unmarshal(data, &cfg)
	if err != nil {
		return
	}

	err = cfg.Validate()
	return
}

// Validate checks that every key is at most one character.
func (cfg Config) Validate() (err error) {
	keys := []struct {
		name  string
		value string
	}{
		{"binary", cfg.Binary},
		{"decimal", cfg.Decimal},
		{"hex", cfg.Hex},
		{"comment", cfg.Comment},
		{"directive", cfg.Directive},
		{"indirect_begin", cfg.IndirectBegin},
		{"indirect_end", cfg.IndirectEnd},
	}
	for _, key := range keys {
		if len(key.value) > 1 {
			err = ErrConfigKey(key.name)
			return
		}
	}

	return
}

// key returns the configured byte, or 0 when disabled.
func key(value string) byte {
	if len(value) == 0 || value[0] == ' ' {
		return 0
	}
	return value[0]
}

// StripComment removes everything from the comment key to end of line.
func (cfg Config) StripComment(line string) string {
	k := key(cfg.Comment)
	if k == 0 {
		return line
	}
	if pos := strings.IndexByte(line, k); pos >= 0 {
		return line[:pos]
	}
	return line
}

// StripIndirect removes a surrounding indirect wrapper, reporting whether one
// was present.
func (cfg Config) StripIndirect(tok string) (inner string, ok bool) {
	begin, end := key(cfg.IndirectBegin), key(cfg.IndirectEnd)
	if begin == 0 || end == 0 || len(tok) < 2 {
		return tok, false
	}
	if tok[0] != begin || tok[len(tok)-1] != end {
		return tok, false
	}
	return tok[1 : len(tok)-1], true
}

// IsCommand reports whether tok may be an architecture tag: alphanumerics and
// underscores, at least one alphanumeric, not starting with a digit.
func (cfg Config) IsCommand(tok string) bool {
	if len(tok) == 0 || isDigit(tok[0]) {
		return false
	}

	alnum := false
	for _, r := range tok {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			alnum = true
		case r == '_':
		default:
			return false
		}
	}

	return alnum
}

// IsDirective reports whether tok is the directive key followed by one or
// more alphanumerics.
func (cfg Config) IsDirective(tok string) bool {
	k := key(cfg.Directive)
	if k == 0 || len(tok) < 2 || tok[0] != k {
		return false
	}

	for _, r := range tok[1:] {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}

	return true
}

// StripDirective removes the directive key.
func (cfg Config) StripDirective(tok string) string {
	if cfg.IsDirective(tok) {
		return tok[1:]
	}
	return tok
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
