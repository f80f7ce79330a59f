package arch

import (
	"github.com/ezrec/uarch/token"
)

// StatementKind is the type of a definition statement.
type StatementKind int

//go:generate go tool stringer -linecomment -type=StatementKind
const (
	STATEMENT_NONE              = StatementKind(0)  // none
	STATEMENT_INSTRUCTION_WIDTH = StatementKind(1)  // instruction_width
	STATEMENT_ADDRESS_WIDTH     = StatementKind(2)  // address_width
	STATEMENT_DECODER_ROM       = StatementKind(3)  // decoder_rom
	STATEMENT_PROGRAM_ROM       = StatementKind(4)  // program_rom
	STATEMENT_REGISTER          = StatementKind(5)  // register
	STATEMENT_FLAG              = StatementKind(6)  // flag
	STATEMENT_DEVICE            = StatementKind(7)  // device
	STATEMENT_CONTROL           = StatementKind(8)  // control
	STATEMENT_OPCODE            = StatementKind(9)  // opcode
	STATEMENT_OPCODE_ALIAS      = StatementKind(10) // opcode_alias
	STATEMENT_SEQ               = StatementKind(11) // seq
	STATEMENT_SEQ_IF            = StatementKind(12) // seq_if
	STATEMENT_SEQ_ELSE          = StatementKind(13) // seq_else
	STATEMENT_DIRECTIVE         = StatementKind(14) // directive
)

// DirectiveKind is the type of a directive statement.
type DirectiveKind int

//go:generate go tool stringer -linecomment -type=DirectiveKind
const (
	DIRECTIVE_NONE    = DirectiveKind(0) // none
	DIRECTIVE_INCLUDE = DirectiveKind(1) // include
	DIRECTIVE_DEFINE  = DirectiveKind(2) // define
	DIRECTIVE_ORG     = DirectiveKind(3) // org
)

// archTagMap maps architecture tags to statement kinds.
var archTagMap = map[string]StatementKind{
	"instruction_width": STATEMENT_INSTRUCTION_WIDTH,
	"address_width":     STATEMENT_ADDRESS_WIDTH,
	"decoder_rom":       STATEMENT_DECODER_ROM,
	"program_rom":       STATEMENT_PROGRAM_ROM,
	"register":          STATEMENT_REGISTER,
	"flag":              STATEMENT_FLAG,
	"device":            STATEMENT_DEVICE,
	"control":           STATEMENT_CONTROL,
	"opcode":            STATEMENT_OPCODE,
	"opcode_alias":      STATEMENT_OPCODE_ALIAS,
	"seq":               STATEMENT_SEQ,
	"seq_if":            STATEMENT_SEQ_IF,
	"seq_else":          STATEMENT_SEQ_ELSE,
}

// directiveMap maps directive names, without the prefix, to directive kinds.
var directiveMap = map[string]DirectiveKind{
	"include": DIRECTIVE_INCLUDE,
	"define":  DIRECTIVE_DEFINE,
	"org":     DIRECTIVE_ORG,
}

// Statement is one classified definition line.
type Statement struct {
	Kind      StatementKind // Kind of statement.
	Directive DirectiveKind // Directive, for STATEMENT_DIRECTIVE.
	Label     string        // Leading token as written.
	Args      token.Line    // Unparsed remainder.
	File      string        // Source file.
	LineNo    int           // 0-based line within File.
}

// Classify determines the statement kind of a leading token. Architecture
// tags and registered directives are recognized; an unregistered directive is
// an error. Anything else is STATEMENT_NONE and is left to the assembly pass.
func Classify(cfg token.Config, label string) (kind StatementKind, directive DirectiveKind, err error) {
	switch {
	case cfg.IsCommand(label):
		kind = archTagMap[label]
	case cfg.IsDirective(label):
		name := cfg.StripDirective(label)
		directive = directiveMap[name]
		if directive == DIRECTIVE_NONE {
			err = ErrUnknownDirective(name)
			return
		}
		kind = STATEMENT_DIRECTIVE
	}

	return
}
